// SPDX-License-Identifier: Unlicense OR MIT

package cairo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegionEmpty(t *testing.T) {
	r := NewRegion()
	defer r.Close()
	if err := r.Err(); err != nil {
		t.Fatalf("new region: %v", err)
	}
	if !r.IsEmpty() {
		t.Error("new region is not empty")
	}
	if n := r.NumRectangles(); n != 0 {
		t.Errorf("NumRectangles = %d, want 0", n)
	}
}

func TestRegionRectangle(t *testing.T) {
	rect := RectangleInt{X: 10, Y: 20, Width: 30, Height: 40}
	r := NewRegionRectangle(rect)
	defer r.Close()
	if r.IsEmpty() {
		t.Fatal("region is empty")
	}
	if got := r.Extents(); got != rect {
		t.Errorf("Extents = %+v, want %+v", got, rect)
	}
	if !r.ContainsPoint(10, 20) {
		t.Error("top-left corner not contained")
	}
	if r.ContainsPoint(40, 60) {
		t.Error("bottom-right corner contained, bounds are exclusive")
	}
}

func TestRegionContainsRectangle(t *testing.T) {
	r := NewRegionRectangle(RectangleInt{Width: 100, Height: 100})
	defer r.Close()
	tests := []struct {
		rect RectangleInt
		want RegionOverlap
	}{
		{RectangleInt{X: 10, Y: 10, Width: 10, Height: 10}, RegionOverlapIn},
		{RectangleInt{X: 200, Y: 200, Width: 10, Height: 10}, RegionOverlapOut},
		{RectangleInt{X: 95, Y: 95, Width: 10, Height: 10}, RegionOverlapPart},
	}
	for _, test := range tests {
		if got := r.ContainsRectangle(test.rect); got != test.want {
			t.Errorf("ContainsRectangle(%+v) = %v, want %v", test.rect, got, test.want)
		}
	}
}

func TestRegionUnionSubtract(t *testing.T) {
	r := NewRegionRectangle(RectangleInt{Width: 10, Height: 10})
	defer r.Close()
	if err := r.UnionRectangle(RectangleInt{X: 20, Y: 0, Width: 10, Height: 10}); err != nil {
		t.Fatalf("union: %v", err)
	}
	if n := r.NumRectangles(); n != 2 {
		t.Fatalf("NumRectangles after union = %d, want 2", n)
	}
	want := []RectangleInt{
		{X: 0, Y: 0, Width: 10, Height: 10},
		{X: 20, Y: 0, Width: 10, Height: 10},
	}
	if diff := cmp.Diff(want, r.Rectangles()); diff != "" {
		t.Errorf("rectangles mismatch (-want +got):\n%s", diff)
	}
	if err := r.SubtractRectangle(RectangleInt{X: 20, Y: 0, Width: 10, Height: 10}); err != nil {
		t.Fatalf("subtract: %v", err)
	}
	if got := r.Extents(); got != (RectangleInt{Width: 10, Height: 10}) {
		t.Errorf("extents after subtract = %+v", got)
	}
}

func TestRegionIntersectXor(t *testing.T) {
	a := NewRegionRectangle(RectangleInt{Width: 20, Height: 20})
	defer a.Close()
	b := NewRegionRectangle(RectangleInt{X: 10, Y: 0, Width: 20, Height: 20})
	defer b.Close()
	inter := a.Copy()
	defer inter.Close()
	if err := inter.Intersect(b); err != nil {
		t.Fatalf("intersect: %v", err)
	}
	if got := inter.Extents(); got != (RectangleInt{X: 10, Y: 0, Width: 10, Height: 20}) {
		t.Errorf("intersection extents = %+v", got)
	}
	x := a.Copy()
	defer x.Close()
	if err := x.Xor(b); err != nil {
		t.Fatalf("xor: %v", err)
	}
	if x.ContainsPoint(15, 10) {
		t.Error("xor contains the shared area")
	}
	if !x.ContainsPoint(5, 10) || !x.ContainsPoint(25, 10) {
		t.Error("xor lost an exclusive area")
	}
}

func TestRegionTranslateEqual(t *testing.T) {
	a := NewRegionRectangle(RectangleInt{Width: 5, Height: 5})
	defer a.Close()
	b := NewRegionRectangle(RectangleInt{X: 3, Y: 4, Width: 5, Height: 5})
	defer b.Close()
	if a.Equal(b) {
		t.Error("distinct regions compare equal")
	}
	a.Translate(3, 4)
	if !a.Equal(b) {
		t.Error("translated region does not compare equal")
	}
}

func TestRegionRectangles(t *testing.T) {
	r := NewRegionRectangles(
		RectangleInt{Width: 10, Height: 10},
		RectangleInt{X: 10, Y: 0, Width: 10, Height: 10},
	)
	defer r.Close()
	// Adjacent rectangles coalesce into one band.
	if got := r.Extents(); got != (RectangleInt{Width: 20, Height: 10}) {
		t.Errorf("extents = %+v", got)
	}
	if n := r.NumRectangles(); n != 1 {
		t.Errorf("NumRectangles = %d, want 1", n)
	}
	if got := r.RectangleAt(0); got != (RectangleInt{Width: 20, Height: 10}) {
		t.Errorf("RectangleAt(0) = %+v", got)
	}
}

func TestRegionClosedPanics(t *testing.T) {
	r := NewRegion()
	if err := r.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("use after Close did not panic")
		}
	}()
	r.IsEmpty()
}
