package icon

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// LoadFont returns the first face of the font file at path. TTF, OTF and
// TTC/OTC collections are accepted. When path is empty, unreadable or not a
// font, the embedded Go Bold face is returned instead and a warning is
// logged; the caller never sees that failure.
//
// An error is returned only when the embedded face itself cannot be parsed,
// which means the renderer cannot work at all.
func LoadFont(path string, logger *slog.Logger) (*opentype.Font, error) {
	if path != "" {
		f, err := parseFontFile(path)
		if err == nil {
			logger.Debug("loaded label font", slog.String("path", path))
			return f, nil
		}
		logger.Warn("label font unavailable, falling back to built-in font",
			slog.String("path", path),
			slog.String("error", err.Error()))
	}

	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing built-in font: %w", err)
	}
	return f, nil
}

func parseFontFile(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: font path is operator supplied
	if err != nil {
		return nil, err
	}
	// ParseCollection also accepts single-font files as a one-entry collection.
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	f, err := coll.Font(0)
	if err != nil {
		return nil, fmt.Errorf("reading first face: %w", err)
	}
	return f, nil
}
