// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"image/color"
	"testing"

	"gocairo.org/cairo"
)

func newTestContext(t *testing.T, width, height int) (*cairo.ImageSurface, *cairo.Context) {
	t.Helper()
	surface := cairo.NewImageSurface(cairo.FormatARGB32, width, height)
	ctx := cairo.NewContext(surface.Surface)
	t.Cleanup(func() {
		ctx.Close()
		surface.Close()
	})
	return surface, ctx
}

func inkedPixels(t *testing.T, surface *cairo.ImageSurface) int {
	t.Helper()
	img, err := surface.Image()
	if err != nil {
		t.Fatalf("reading surface pixels: %v", err)
	}
	inked := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			inked++
		}
	}
	return inked
}

func TestDrawFillsPixels(t *testing.T) {
	surface, ctx := newTestContext(t, 160, 60)
	if got := inkedPixels(t, surface); got != 0 {
		t.Fatalf("fresh surface has %d inked pixels, want 0", got)
	}

	s := NewShaper()
	ctx.SetSourceRGB(0, 0, 0)
	runs := s.Draw(ctx, regular(t), 32, 10, 45, "Hi")
	if len(runs) != 1 {
		t.Fatalf("Draw returned %d runs, want 1", len(runs))
	}
	if got := inkedPixels(t, surface); got == 0 {
		t.Error("Draw left the surface blank")
	}
	if got := surface.PixelAt(159, 1); got != (color.RGBA{}) {
		t.Errorf("far corner pixel = %v, want transparent", got)
	}
}

func TestPathIncludesCurves(t *testing.T) {
	_, ctx := newTestContext(t, 100, 100)

	s := NewShaper()
	runs := s.Shape(regular(t), 48, 10, 80, "o")
	ctx.NewPath()
	s.Path(ctx, runs...)

	path := ctx.CopyPath()
	defer path.Close()
	elements := path.Elements()
	if len(elements) == 0 {
		t.Fatal("Path produced no elements")
	}
	var moves, curves, closes int
	for _, el := range elements {
		switch el.Kind {
		case cairo.PathMoveTo:
			moves++
		case cairo.PathCurveTo:
			curves++
		case cairo.PathClosePath:
			closes++
		}
	}
	if moves == 0 || closes == 0 {
		t.Errorf("path has %d moves and %d closes, want > 0 of each", moves, closes)
	}
	if curves == 0 {
		t.Error("outline of 'o' produced no curves")
	}
}

func TestPathWithinExtents(t *testing.T) {
	_, ctx := newTestContext(t, 400, 100)

	s := NewShaper()
	runs := s.Shape(regular(t), 20, 20, 50, "extents")
	ctx.NewPath()
	s.Path(ctx, runs...)

	x1, y1, x2, y2 := ctx.PathExtents()
	if x1 >= x2 || y1 >= y2 {
		t.Fatalf("degenerate path extents (%v, %v)-(%v, %v)", x1, y1, x2, y2)
	}
	var advance float64
	for _, run := range runs {
		advance += run.Advance
	}
	if x2 > 20+advance+20 {
		t.Errorf("path right edge %v far beyond pen advance %v", x2, 20+advance)
	}
	if y2 <= y1 || y1 < 50-runs[0].Ascent-1 {
		t.Errorf("path top %v above the run's ascent %v over the baseline", y1, runs[0].Ascent)
	}
}

func TestDrawAdvancesPen(t *testing.T) {
	surface, ctx := newTestContext(t, 300, 60)

	s := NewShaper()
	face := regular(t)
	ctx.SetSourceRGB(0, 0, 0)
	first := s.Draw(ctx, face, 24, 10, 40, "ab")
	pen := 10.0
	for _, run := range first {
		pen += run.Advance
	}
	second := s.Draw(ctx, face, 24, pen, 40, "cd")
	if len(second) != 1 {
		t.Fatalf("Draw returned %d runs, want 1", len(second))
	}
	if got := second[0].Glyphs[0].X; got != pen {
		t.Errorf("second draw starts at x=%v, want pen %v", got, pen)
	}
	if got := inkedPixels(t, surface); got == 0 {
		t.Error("Draw left the surface blank")
	}
}
