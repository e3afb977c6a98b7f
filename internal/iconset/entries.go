package iconset

// Entry is one icon in the set: its base file name, its edge length in
// pixels and the point size label it is declared for.
type Entry struct {
	Name   string
	Pixels int
	Points string
}

// Filename returns the PNG file name the entry is written to.
func (e Entry) Filename() string {
	return e.Name + ".png"
}

// DefaultEntries returns the iPhone, iPad and App Store icon sizes in
// manifest order.
func DefaultEntries() []Entry {
	return []Entry{
		// iPhone notification
		{"iphone-notification@2x", 40, "20pt"},
		{"iphone-notification@3x", 60, "20pt"},

		// iPhone settings
		{"iphone-settings@2x", 58, "29pt"},
		{"iphone-settings@3x", 87, "29pt"},

		// iPhone spotlight
		{"iphone-spotlight@2x", 80, "40pt"},
		{"iphone-spotlight@3x", 120, "40pt"},

		// iPhone app
		{"iphone-app@2x", 120, "60pt"},
		{"iphone-app@3x", 180, "60pt"},

		// iPad notification
		{"ipad-notification@1x", 20, "20pt"},
		{"ipad-notification@2x", 40, "20pt"},

		// iPad settings
		{"ipad-settings@1x", 29, "29pt"},
		{"ipad-settings@2x", 58, "29pt"},

		// iPad spotlight
		{"ipad-spotlight@1x", 40, "40pt"},
		{"ipad-spotlight@2x", 80, "40pt"},

		// iPad app
		{"ipad-app@1x", 76, "76pt"},
		{"ipad-app@2x", 152, "76pt"},
		{"ipad-pro-app@2x", 167, "83.5pt"},

		{"app-store", 1024, "1024pt"},
	}
}
