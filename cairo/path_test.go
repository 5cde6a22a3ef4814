// SPDX-License-Identifier: Unlicense OR MIT

package cairo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCopyPath(t *testing.T) {
	_, cr := newTestContext(t)
	cr.MoveTo(1, 2)
	cr.LineTo(3, 4)
	cr.CurveTo(5, 6, 7, 8, 9, 10)
	cr.ClosePath()
	path := cr.CopyPath()
	defer path.Close()
	if err := path.Err(); err != nil {
		t.Fatalf("copy path: %v", err)
	}
	got := path.Elements()
	want := []PathElement{
		{Kind: PathMoveTo, Points: [3]Point{{X: 1, Y: 2}}},
		{Kind: PathLineTo, Points: [3]Point{{X: 3, Y: 4}}},
		{Kind: PathCurveTo, Points: [3]Point{{X: 5, Y: 6}, {X: 7, Y: 8}, {X: 9, Y: 10}}},
		{Kind: PathClosePath},
		// Closing re-establishes the current point.
		{Kind: PathMoveTo, Points: [3]Point{{X: 1, Y: 2}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("path elements mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyPathFlat(t *testing.T) {
	_, cr := newTestContext(t)
	cr.MoveTo(0, 0)
	cr.CurveTo(10, 0, 20, 10, 30, 10)
	path := cr.CopyPathFlat()
	defer path.Close()
	for _, el := range path.Elements() {
		if el.Kind == PathCurveTo {
			t.Fatal("flattened path still contains a curve")
		}
	}
}

func TestAppendPath(t *testing.T) {
	_, cr := newTestContext(t)
	cr.Rectangle(2, 2, 4, 4)
	path := cr.CopyPath()
	defer path.Close()
	cr.NewPath()
	cr.AppendPath(path)
	x1, y1, x2, y2 := cr.PathExtents()
	if x1 != 2 || y1 != 2 || x2 != 6 || y2 != 6 {
		t.Errorf("appended path extents = (%g, %g, %g, %g)", x1, y1, x2, y2)
	}
}

func TestPathEmpty(t *testing.T) {
	_, cr := newTestContext(t)
	path := cr.CopyPath()
	defer path.Close()
	if els := path.Elements(); len(els) != 0 {
		t.Errorf("empty path has %d elements", len(els))
	}
}
