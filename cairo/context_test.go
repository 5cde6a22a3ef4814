// SPDX-License-Identifier: Unlicense OR MIT

package cairo

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestContext(t *testing.T) (*ImageSurface, *Context) {
	t.Helper()
	s := NewImageSurface(FormatARGB32, 64, 64)
	if err := s.Err(); err != nil {
		t.Fatalf("surface: %v", err)
	}
	cr := NewContext(s.Surface)
	if err := cr.Err(); err != nil {
		t.Fatalf("context: %v", err)
	}
	t.Cleanup(func() {
		cr.Close()
		s.Close()
	})
	return s, cr
}

func TestContextTarget(t *testing.T) {
	s, cr := newTestContext(t)
	target := cr.Target()
	defer target.Close()
	if target.Type() != SurfaceTypeImage {
		t.Errorf("target type = %v, want image", target.Type())
	}
	// The target is the same native surface, seen through a second
	// wrapper.
	s.SetDeviceOffset(3, 5)
	if x, y := target.DeviceOffset(); x != 3 || y != 5 {
		t.Errorf("target device offset = (%g, %g), want (3, 5)", x, y)
	}
}

func TestContextSaveRestore(t *testing.T) {
	_, cr := newTestContext(t)
	cr.SetLineWidth(4)
	cr.Save()
	cr.SetLineWidth(8)
	if got := cr.LineWidth(); got != 8 {
		t.Errorf("line width = %g, want 8", got)
	}
	cr.Restore()
	if got := cr.LineWidth(); got != 4 {
		t.Errorf("line width after restore = %g, want 4", got)
	}
}

func TestContextStateRoundTrip(t *testing.T) {
	_, cr := newTestContext(t)
	cr.SetOperator(OperatorAdd)
	if got := cr.Operator(); got != OperatorAdd {
		t.Errorf("operator = %v, want %v", got, OperatorAdd)
	}
	cr.SetFillRule(FillRuleEvenOdd)
	if got := cr.FillRule(); got != FillRuleEvenOdd {
		t.Errorf("fill rule = %v, want %v", got, FillRuleEvenOdd)
	}
	cr.SetLineCap(LineCapRound)
	if got := cr.LineCap(); got != LineCapRound {
		t.Errorf("line cap = %v, want %v", got, LineCapRound)
	}
	cr.SetLineJoin(LineJoinBevel)
	if got := cr.LineJoin(); got != LineJoinBevel {
		t.Errorf("line join = %v, want %v", got, LineJoinBevel)
	}
	cr.SetMiterLimit(3)
	if got := cr.MiterLimit(); got != 3 {
		t.Errorf("miter limit = %g, want 3", got)
	}
	cr.SetTolerance(0.5)
	if got := cr.Tolerance(); got != 0.5 {
		t.Errorf("tolerance = %g, want 0.5", got)
	}
	cr.SetAntialias(AntialiasNone)
	if got := cr.Antialias(); got != AntialiasNone {
		t.Errorf("antialias = %v, want %v", got, AntialiasNone)
	}
}

func TestContextDash(t *testing.T) {
	_, cr := newTestContext(t)
	dashes, offset := cr.Dash()
	if len(dashes) != 0 || offset != 0 {
		t.Errorf("initial dash = %v, %g", dashes, offset)
	}
	cr.SetDash([]float64{2, 3}, 1)
	dashes, offset = cr.Dash()
	if diff := cmp.Diff([]float64{2, 3}, dashes); diff != "" {
		t.Errorf("dash pattern mismatch (-want +got):\n%s", diff)
	}
	if offset != 1 {
		t.Errorf("dash offset = %g, want 1", offset)
	}
	if n := cr.DashCount(); n != 2 {
		t.Errorf("dash count = %d, want 2", n)
	}
	cr.SetDash(nil, 0)
	if dashes, _ = cr.Dash(); len(dashes) != 0 {
		t.Errorf("dash after reset = %v", dashes)
	}
	if n := cr.DashCount(); n != 0 {
		t.Errorf("dash count after reset = %d", n)
	}
}

func TestContextPath(t *testing.T) {
	_, cr := newTestContext(t)
	if cr.HasCurrentPoint() {
		t.Error("fresh context has a current point")
	}
	cr.MoveTo(10, 20)
	cr.LineTo(30, 40)
	if !cr.HasCurrentPoint() {
		t.Fatal("no current point after LineTo")
	}
	if x, y := cr.CurrentPoint(); x != 30 || y != 40 {
		t.Errorf("current point = (%g, %g), want (30, 40)", x, y)
	}
	x1, y1, x2, y2 := cr.PathExtents()
	if x1 != 10 || y1 != 20 || x2 != 30 || y2 != 40 {
		t.Errorf("path extents = (%g, %g, %g, %g)", x1, y1, x2, y2)
	}
	cr.NewPath()
	if cr.HasCurrentPoint() {
		t.Error("current point survived NewPath")
	}
}

func TestContextInFill(t *testing.T) {
	_, cr := newTestContext(t)
	cr.Rectangle(10, 10, 20, 20)
	if !cr.InFill(15, 15) {
		t.Error("point inside rectangle not in fill")
	}
	if cr.InFill(5, 5) {
		t.Error("point outside rectangle in fill")
	}
}

func TestContextTransform(t *testing.T) {
	_, cr := newTestContext(t)
	cr.Translate(10, 0)
	cr.Scale(2, 2)
	x, y := cr.UserToDevice(1, 1)
	if x != 12 || y != 2 {
		t.Errorf("UserToDevice = (%g, %g), want (12, 2)", x, y)
	}
	x, y = cr.DeviceToUser(12, 2)
	if x != 1 || y != 1 {
		t.Errorf("DeviceToUser = (%g, %g), want (1, 1)", x, y)
	}
	dx, dy := cr.UserToDeviceDistance(1, 1)
	if dx != 2 || dy != 2 {
		t.Errorf("UserToDeviceDistance = (%g, %g), want (2, 2)", dx, dy)
	}
	cr.IdentityMatrix()
	if got := cr.Matrix(); got != MatrixIdentity() {
		t.Errorf("matrix after IdentityMatrix = %+v", got)
	}
}

func TestContextClip(t *testing.T) {
	_, cr := newTestContext(t)
	cr.Rectangle(8, 8, 16, 16)
	cr.Clip()
	rects, err := cr.ClipRectangleList()
	if err != nil {
		t.Fatalf("clip rectangle list: %v", err)
	}
	want := []Rectangle{{X: 8, Y: 8, Width: 16, Height: 16}}
	if diff := cmp.Diff(want, rects); diff != "" {
		t.Errorf("clip rectangles mismatch (-want +got):\n%s", diff)
	}
	cr.ResetClip()
	x1, y1, x2, y2 := cr.ClipExtents()
	if x1 != 0 || y1 != 0 || x2 != 64 || y2 != 64 {
		t.Errorf("clip extents after reset = (%g, %g, %g, %g)", x1, y1, x2, y2)
	}
}

func TestContextGroup(t *testing.T) {
	_, cr := newTestContext(t)
	cr.PushGroup()
	cr.SetSourceRGB(0, 1, 0)
	cr.Rectangle(0, 0, 8, 8)
	cr.Fill()
	p := cr.PopGroup()
	defer p.Close()
	if got := p.Type(); got != PatternTypeSurface {
		t.Errorf("group pattern type = %v, want surface", got)
	}
	if err := cr.Err(); err != nil {
		t.Errorf("context after group: %v", err)
	}
}

func TestContextRestoreUnderflow(t *testing.T) {
	_, cr := newTestContext(t)
	cr.Restore()
	err := cr.Err()
	if err == nil {
		t.Fatal("unbalanced Restore left no sticky error")
	}
	if !strings.Contains(err.Error(), "cairo:") {
		t.Errorf("error %q does not carry the package prefix", err)
	}
}

func TestContextClosedPanics(t *testing.T) {
	s := NewImageSurface(FormatARGB32, 8, 8)
	defer s.Close()
	cr := NewContext(s.Surface)
	if err := cr.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := cr.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("use after Close did not panic")
		}
	}()
	cr.MoveTo(0, 0)
}
