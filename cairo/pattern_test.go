// SPDX-License-Identifier: Unlicense OR MIT

package cairo

import "testing"

func TestSolidPattern(t *testing.T) {
	p := NewSolidPattern(0.25, 0.5, 0.75, 1)
	defer p.Close()
	if err := p.Err(); err != nil {
		t.Fatalf("solid pattern: %v", err)
	}
	if got := p.Type(); got != PatternTypeSolid {
		t.Errorf("Type() = %v, want solid", got)
	}
	r, g, b, a, err := p.RGBA()
	if err != nil {
		t.Fatalf("RGBA: %v", err)
	}
	if r != 0.25 || g != 0.5 || b != 0.75 || a != 1 {
		t.Errorf("RGBA = (%g, %g, %g, %g)", r, g, b, a)
	}
}

func TestPatternTypeMismatch(t *testing.T) {
	g := NewLinearGradient(0, 0, 1, 1)
	defer g.Close()
	if _, _, _, _, err := g.RGBA(); err == nil {
		t.Error("RGBA on a gradient did not fail")
	}
}

func TestSurfacePattern(t *testing.T) {
	s := NewImageSurface(FormatARGB32, 4, 4)
	defer s.Close()
	p := NewSurfacePattern(s.Surface)
	defer p.Close()
	if got := p.Type(); got != PatternTypeSurface {
		t.Errorf("Type() = %v, want surface", got)
	}
	back, err := p.Surface()
	if err != nil {
		t.Fatalf("Surface: %v", err)
	}
	defer back.Close()
	if back.Type() != SurfaceTypeImage {
		t.Errorf("pattern surface type = %v, want image", back.Type())
	}
}

func TestPatternStateRoundTrip(t *testing.T) {
	p := NewSolidPattern(0, 0, 0, 1)
	defer p.Close()
	p.SetExtend(ExtendReflect)
	if got := p.Extend(); got != ExtendReflect {
		t.Errorf("Extend = %v, want reflect", got)
	}
	p.SetFilter(FilterNearest)
	if got := p.Filter(); got != FilterNearest {
		t.Errorf("Filter = %v, want nearest", got)
	}
	p.SetMatrix(MatrixScale(2, 2))
	if got := p.Matrix(); got != MatrixScale(2, 2) {
		t.Errorf("Matrix = %+v", got)
	}
}

func TestLinearGradient(t *testing.T) {
	g := NewLinearGradient(0, 0, 10, 0)
	defer g.Close()
	if got := g.Type(); got != PatternTypeLinear {
		t.Errorf("Type() = %v, want linear", got)
	}
	g.AddColorStopRGB(0, 1, 0, 0)
	g.AddColorStopRGBA(1, 0, 0, 1, 0.5)
	n, err := g.ColorStopCount()
	if err != nil {
		t.Fatalf("ColorStopCount: %v", err)
	}
	if n != 2 {
		t.Fatalf("ColorStopCount = %d, want 2", n)
	}
	offset, r, _, b, a, err := g.ColorStopRGBA(1)
	if err != nil {
		t.Fatalf("ColorStopRGBA: %v", err)
	}
	if offset != 1 || r != 0 || b != 1 || a != 0.5 {
		t.Errorf("stop 1 = (%g, %g, _, %g, %g)", offset, r, b, a)
	}
	x0, y0, x1, y1, err := g.LinearPoints()
	if err != nil {
		t.Fatalf("LinearPoints: %v", err)
	}
	if x0 != 0 || y0 != 0 || x1 != 10 || y1 != 0 {
		t.Errorf("LinearPoints = (%g, %g, %g, %g)", x0, y0, x1, y1)
	}
}

func TestRadialGradient(t *testing.T) {
	g := NewRadialGradient(5, 5, 1, 5, 5, 4)
	defer g.Close()
	if got := g.Type(); got != PatternTypeRadial {
		t.Errorf("Type() = %v, want radial", got)
	}
	cx0, cy0, r0, cx1, cy1, r1, err := g.RadialCircles()
	if err != nil {
		t.Fatalf("RadialCircles: %v", err)
	}
	if cx0 != 5 || cy0 != 5 || r0 != 1 || cx1 != 5 || cy1 != 5 || r1 != 4 {
		t.Errorf("RadialCircles = (%g, %g, %g, %g, %g, %g)", cx0, cy0, r0, cx1, cy1, r1)
	}
}

func TestMesh(t *testing.T) {
	m := NewMesh()
	defer m.Close()
	m.BeginPatch()
	m.MoveTo(0, 0)
	m.LineTo(10, 0)
	m.LineTo(10, 10)
	m.LineTo(0, 10)
	m.SetCornerColorRGB(0, 1, 0, 0)
	m.SetCornerColorRGB(1, 0, 1, 0)
	m.SetCornerColorRGB(2, 0, 0, 1)
	m.SetCornerColorRGBA(3, 1, 1, 1, 0.5)
	m.EndPatch()
	if err := m.Err(); err != nil {
		t.Fatalf("mesh: %v", err)
	}
	n, err := m.PatchCount()
	if err != nil {
		t.Fatalf("PatchCount: %v", err)
	}
	if n != 1 {
		t.Fatalf("PatchCount = %d, want 1", n)
	}
	r, g, b, a, err := m.CornerColorRGBA(0, 2)
	if err != nil {
		t.Fatalf("CornerColorRGBA: %v", err)
	}
	if r != 0 || g != 0 || b != 1 || a != 1 {
		t.Errorf("corner 2 = (%g, %g, %g, %g)", r, g, b, a)
	}
	path := m.PatchPath(0)
	defer path.Close()
	if err := path.Err(); err != nil {
		t.Fatalf("PatchPath: %v", err)
	}
	if els := path.Elements(); len(els) == 0 {
		t.Error("patch path is empty")
	}
}
