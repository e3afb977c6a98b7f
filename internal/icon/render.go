// Package icon draws the square app icon artwork: a vertical gradient,
// a centered label with a drop shadow, and rounded corners.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Proportions relative to the icon edge length.
const (
	cornerRatio       = 0.2237 // iOS corner radius ratio
	labelSizeRatio    = 0.4
	labelLiftRatio    = 0.05
	shadowOffsetRatio = 0.01
)

// Gradient endpoints: purple at the top row, blue at the bottom row.
var (
	GradientTop    = color.NRGBA{R: 88, G: 86, B: 214, A: 255}
	GradientBottom = color.NRGBA{R: 138, G: 186, B: 164, A: 255}
)

var (
	shadowColor = color.NRGBA{A: 100}
	labelColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Renderer draws icons with a fixed font and label.
type Renderer struct {
	font  *opentype.Font
	label string
}

// NewRenderer returns a Renderer drawing label in f.
func NewRenderer(f *opentype.Font, label string) *Renderer {
	return &Renderer{font: f, label: label}
}

// Render returns a size x size icon.
func (r *Renderer) Render(size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, size, size))
	fillGradient(canvas)

	if err := r.drawLabel(canvas); err != nil {
		return nil, err
	}

	// The mask is applied last so the label is clipped with the background.
	out := image.NewNRGBA(canvas.Bounds())
	mask := roundedMask(size, CornerRadius(size))
	draw.DrawMask(out, out.Bounds(), canvas, image.Point{}, mask, image.Point{}, draw.Src)
	return out, nil
}

// CornerRadius returns the rounded corner radius in pixels for an icon of
// the given edge length.
func CornerRadius(size int) int {
	return int(float64(size) * cornerRatio)
}

// GradientAt returns the background color of row y in an icon of the given
// size. Row 0 is GradientTop and row size-1 is GradientBottom.
func GradientAt(y, size int) color.NRGBA {
	t := 0.0
	if size > 1 {
		t = float64(y) / float64(size-1)
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return color.NRGBA{
		R: lerp(GradientTop.R, GradientBottom.R),
		G: lerp(GradientTop.G, GradientBottom.G),
		B: lerp(GradientTop.B, GradientBottom.B),
		A: 255,
	}
}

func fillGradient(img *image.NRGBA) {
	b := img.Bounds()
	size := b.Dy()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := image.Rect(b.Min.X, y, b.Max.X, y+1)
		draw.Draw(img, row, image.NewUniform(GradientAt(y-b.Min.Y, size)), image.Point{}, draw.Src)
	}
}

// drawLabel centers the label's ink bounds on the canvas, lifted slightly,
// and draws it twice: a translucent black shadow, then the white label.
func (r *Renderer) drawLabel(img *image.NRGBA) error {
	size := img.Bounds().Dx()

	fontSize := int(float64(size) * labelSizeRatio)
	if fontSize < 1 {
		fontSize = 1
	}
	face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    float64(fontSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("creating font face: %w", err)
	}
	defer face.Close() //nolint:errcheck

	bounds, _ := font.BoundString(face, r.label)
	textW := (bounds.Max.X - bounds.Min.X).Ceil()
	textH := (bounds.Max.Y - bounds.Min.Y).Ceil()

	x := (size-textW)/2 - bounds.Min.X.Floor()
	y := (size-textH)/2 - int(float64(size)*labelLiftRatio) - bounds.Min.Y.Floor()

	shadow := max(1, int(float64(size)*shadowOffsetRatio))

	d := &font.Drawer{Dst: img, Face: face}
	d.Src = image.NewUniform(shadowColor)
	d.Dot = fixed.P(x+shadow, y+shadow)
	d.DrawString(r.label)

	d.Src = image.NewUniform(labelColor)
	d.Dot = fixed.P(x, y)
	d.DrawString(r.label)
	return nil
}

// roundedMask returns an opaque-inside, transparent-outside mask for a
// rounded square. Pixels are sampled on the integer lattice spanning
// [0, size-1], so each corner pixel sits exactly on the square's corner and
// is outside the arc for any positive radius.
func roundedMask(size, radius int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, size, size))
	half := float64(size-1) / 2
	rad := math.Min(float64(radius), half)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if roundedBoxSDF(float64(x)-half, float64(y)-half, half, half, rad) <= 1e-9 {
				m.SetAlpha(x, y, color.Alpha{A: 255})
			}
		}
	}
	return m
}

// roundedBoxSDF returns the signed distance from (px, py) to a rounded rect
// centered at the origin. Negative = inside, positive = outside.
func roundedBoxSDF(px, py, bx, by, r float64) float64 {
	qx := math.Abs(px) - bx + r
	qy := math.Abs(py) - by + r
	return math.Hypot(math.Max(qx, 0), math.Max(qy, 0)) +
		math.Min(math.Max(qx, qy), 0) - r
}
