package icon

import (
	"image/color"
	"io"
	"log/slog"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// newTestRenderer returns a Renderer using the embedded Go Bold face.
func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		t.Fatalf("parsing gobold: %v", err)
	}
	return NewRenderer(f, "TX")
}

var testSizes = []int{1, 2, 3, 20, 29, 40, 58, 60, 76, 87, 120, 152, 167, 180, 1024}

func TestRender_Dimensions(t *testing.T) {
	r := newTestRenderer(t)
	for _, size := range testSizes {
		img, err := r.Render(size)
		if err != nil {
			t.Fatalf("Render(%d): %v", size, err)
		}
		b := img.Bounds()
		if b.Min.X != 0 || b.Min.Y != 0 || b.Dx() != size || b.Dy() != size {
			t.Errorf("Render(%d) bounds = %v", size, b)
		}
	}
}

func TestRender_InvalidSize(t *testing.T) {
	r := newTestRenderer(t)
	for _, size := range []int{0, -1, -180} {
		if _, err := r.Render(size); err == nil {
			t.Errorf("Render(%d): expected error", size)
		}
	}
}

func TestRender_CornersTransparent(t *testing.T) {
	r := newTestRenderer(t)
	for _, size := range testSizes {
		if CornerRadius(size) <= 0 {
			continue
		}
		img, err := r.Render(size)
		if err != nil {
			t.Fatalf("Render(%d): %v", size, err)
		}
		last := size - 1
		for _, p := range [][2]int{{0, 0}, {last, 0}, {0, last}, {last, last}} {
			if a := img.NRGBAAt(p[0], p[1]).A; a != 0 {
				t.Errorf("size %d: corner %v alpha = %d, want 0", size, p, a)
			}
		}
	}
}

func TestRender_GradientEndpoints(t *testing.T) {
	r := newTestRenderer(t)
	for _, size := range []int{20, 58, 180, 1024} {
		img, err := r.Render(size)
		if err != nil {
			t.Fatalf("Render(%d): %v", size, err)
		}
		mid := size / 2
		if got := img.NRGBAAt(mid, 0); got != GradientTop {
			t.Errorf("size %d: top row = %v, want %v", size, got, GradientTop)
		}
		if got := img.NRGBAAt(mid, size-1); got != GradientBottom {
			t.Errorf("size %d: bottom row = %v, want %v", size, got, GradientBottom)
		}
	}
}

func TestRender_BinaryAlpha(t *testing.T) {
	r := newTestRenderer(t)
	img, err := r.Render(120)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for y := 0; y < 120; y++ {
		for x := 0; x < 120; x++ {
			if a := img.NRGBAAt(x, y).A; a != 0 && a != 255 {
				t.Fatalf("pixel (%d,%d) alpha = %d, want 0 or 255", x, y, a)
			}
		}
	}
}

func TestRender_DrawsLabel(t *testing.T) {
	r := newTestRenderer(t)
	img, err := r.Render(180)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	var whites int
	for y := 0; y < 180; y++ {
		for x := 0; x < 180; x++ {
			if img.NRGBAAt(x, y) == white {
				whites++
			}
		}
	}
	if whites == 0 {
		t.Error("expected the label to leave fully white pixels")
	}
}

func TestRender_EmptyLabel(t *testing.T) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		t.Fatalf("parsing gobold: %v", err)
	}
	img, err := NewRenderer(f, "").Render(40)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := img.NRGBAAt(20, 20); got != GradientAt(20, 40) {
		t.Errorf("center = %v, want plain gradient %v", got, GradientAt(20, 40))
	}
}

func TestGradientAt(t *testing.T) {
	if got := GradientAt(0, 1); got != GradientTop {
		t.Errorf("GradientAt(0, 1) = %v, want top", got)
	}
	if got := GradientAt(0, 100); got != GradientTop {
		t.Errorf("GradientAt(0, 100) = %v, want top", got)
	}
	if got := GradientAt(99, 100); got != GradientBottom {
		t.Errorf("GradientAt(99, 100) = %v, want bottom", got)
	}
	// Channels move monotonically between the endpoints.
	prev := GradientAt(0, 50)
	for y := 1; y < 50; y++ {
		c := GradientAt(y, 50)
		if c.R < prev.R || c.G < prev.G || c.B > prev.B {
			t.Fatalf("row %d = %v not monotonic after %v", y, c, prev)
		}
		prev = c
	}
}

func TestCornerRadius(t *testing.T) {
	tests := []struct {
		size, want int
	}{
		{1, 0},
		{4, 0},
		{5, 1},
		{20, 4},
		{180, 40},
		{1024, 229},
	}
	for _, tt := range tests {
		if got := CornerRadius(tt.size); got != tt.want {
			t.Errorf("CornerRadius(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestRoundedMask_SmallRadius(t *testing.T) {
	m := roundedMask(5, 1)
	for _, p := range [][2]int{{0, 0}, {4, 0}, {0, 4}, {4, 4}} {
		if a := m.AlphaAt(p[0], p[1]).A; a != 0 {
			t.Errorf("corner %v alpha = %d, want 0", p, a)
		}
	}
	if a := m.AlphaAt(2, 0).A; a != 255 {
		t.Errorf("edge midpoint alpha = %d, want 255", a)
	}
	if a := m.AlphaAt(2, 2).A; a != 255 {
		t.Errorf("center alpha = %d, want 255", a)
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
