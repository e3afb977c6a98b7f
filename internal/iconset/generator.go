package iconset

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/sydlexius/appiconset/internal/filesystem"
)

// Renderer produces the artwork for one icon edge length.
type Renderer interface {
	Render(size int) (*image.NRGBA, error)
}

// Generator writes every entry's PNG and the manifest into one directory.
type Generator struct {
	renderer Renderer
	dir      string
	entries  []Entry
	progress io.Writer
	logger   *slog.Logger
}

// Result lists what a run wrote.
type Result struct {
	Dir      string
	Images   []string
	Manifest string
}

// NewGenerator returns a Generator writing entries into dir. Progress lines
// are printed to progress.
func NewGenerator(r Renderer, dir string, entries []Entry, progress io.Writer, logger *slog.Logger) *Generator {
	return &Generator{
		renderer: r,
		dir:      dir,
		entries:  entries,
		progress: progress,
		logger:   logger,
	}
}

// Run renders and writes the icons one at a time, then the manifest. The
// first failure stops the run; files written before it are left in place.
func (g *Generator) Run() (*Result, error) {
	res := &Result{Dir: g.dir}

	for _, e := range g.entries {
		fmt.Fprintf(g.progress, "Generating %s (%dx%d)\n", e.Filename(), e.Pixels, e.Pixels)

		path, err := g.writeIcon(e)
		if err != nil {
			return res, fmt.Errorf("generating %s: %w", e.Filename(), err)
		}
		res.Images = append(res.Images, path)
	}

	data, err := BuildManifest(g.entries).Marshal()
	if err != nil {
		return res, err
	}
	manifestPath := filepath.Join(g.dir, ManifestFilename)
	if err := filesystem.WriteFileAtomic(manifestPath, data, 0o644); err != nil {
		return res, fmt.Errorf("writing %s: %w", manifestPath, err)
	}
	res.Manifest = manifestPath
	g.logger.Debug("wrote manifest",
		slog.String("path", manifestPath),
		slog.Int("records", len(g.entries)+1))

	fmt.Fprintf(g.progress, "\nAll icons generated successfully!\n")
	fmt.Fprintf(g.progress, "Icons saved to: %s\n", g.dir)
	fmt.Fprintf(g.progress, "%s updated\n", ManifestFilename)

	return res, nil
}

func (g *Generator) writeIcon(e Entry) (string, error) {
	img, err := g.renderer.Render(e.Pixels)
	if err != nil {
		return "", fmt.Errorf("rendering: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encoding png: %w", err)
	}

	path := filepath.Join(g.dir, e.Filename())
	if err := filesystem.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	g.logger.Debug("saved icon",
		slog.String("path", path),
		slog.Int("pixels", e.Pixels),
		slog.Int("bytes", buf.Len()))
	return path, nil
}
