package iconset

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ManifestFilename is the asset catalog manifest written next to the icons.
const ManifestFilename = "Contents.json"

// Idioms.
const (
	IdiomIPhone    = "iphone"
	IdiomIPad      = "ipad"
	IdiomMarketing = "ios-marketing"
)

// Contents is the asset catalog manifest. Field order is the serialized order.
type Contents struct {
	Images []Record `json:"images"`
	Info   Info     `json:"info"`
}

// Record describes one image of the icon set.
type Record struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"`
	Size     string `json:"size"`
}

// Info identifies the tool format of the manifest.
type Info struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// storeListing is always appended after the per-entry records.
var storeListing = Record{
	Filename: "app-store.png",
	Idiom:    IdiomMarketing,
	Scale:    "1x",
	Size:     "1024x1024",
}

// Idiom classifies an icon name by device keyword. Names matching neither
// device are store listing artwork.
func Idiom(name string) string {
	switch {
	case strings.Contains(name, "iphone"):
		return IdiomIPhone
	case strings.Contains(name, "ipad"):
		return IdiomIPad
	default:
		return IdiomMarketing
	}
}

// Scale classifies an icon name by its @Nx suffix, defaulting to 1x.
func Scale(name string) string {
	switch {
	case strings.Contains(name, "@3x"):
		return "3x"
	case strings.Contains(name, "@2x"):
		return "2x"
	default:
		return "1x"
	}
}

// PointSize turns a point label such as "83.5pt" into "83.5x83.5".
func PointSize(label string) string {
	pt := strings.TrimSuffix(label, "pt")
	return pt + "x" + pt
}

// NewRecord derives the manifest record for an entry.
func NewRecord(e Entry) Record {
	return Record{
		Filename: e.Filename(),
		Idiom:    Idiom(e.Name),
		Scale:    Scale(e.Name),
		Size:     PointSize(e.Points),
	}
}

// BuildManifest returns one record per entry, in order, followed by the
// store listing record.
func BuildManifest(entries []Entry) Contents {
	images := make([]Record, 0, len(entries)+1)
	for _, e := range entries {
		images = append(images, NewRecord(e))
	}
	images = append(images, storeListing)

	return Contents{
		Images: images,
		Info:   Info{Author: "xcode", Version: 1},
	}
}

// Marshal serializes the manifest with two-space indentation.
func (c Contents) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return append(data, '\n'), nil
}
