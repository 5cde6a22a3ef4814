// SPDX-License-Identifier: Unlicense OR MIT

package cairo

/*
#include <cairo.h>
*/
import "C"

import (
	"runtime"
	"unsafe"
)

// RegionOverlap is the result of testing a rectangle against a
// region.
type RegionOverlap int

const (
	// RegionOverlapIn means the rectangle is entirely inside the region.
	RegionOverlapIn RegionOverlap = C.CAIRO_REGION_OVERLAP_IN
	// RegionOverlapOut means the rectangle is entirely outside the region.
	RegionOverlapOut RegionOverlap = C.CAIRO_REGION_OVERLAP_OUT
	// RegionOverlapPart means the rectangle is partially inside the region.
	RegionOverlapPart RegionOverlap = C.CAIRO_REGION_OVERLAP_PART
)

func (o RegionOverlap) String() string {
	switch o {
	case RegionOverlapIn:
		return "in"
	case RegionOverlapOut:
		return "out"
	case RegionOverlapPart:
		return "part"
	default:
		return "unknown"
	}
}

// Region is a set of integer rectangles kept in a canonical form,
// used for clip and damage arithmetic.
type Region struct {
	ptr     *C.cairo_region_t
	cleanup runtime.Cleanup
}

func releaseRegion(p unsafe.Pointer) {
	C.cairo_region_destroy((*C.cairo_region_t)(p))
}

// wrapRegion takes ownership of one native reference.
func wrapRegion(p *C.cairo_region_t) *Region {
	r := &Region{ptr: p}
	r.cleanup = addCleanup(r, "Region", unsafe.Pointer(p), releaseRegion)
	traceHandle("create", "Region", unsafe.Pointer(p))
	return r
}

// NewRegion creates an empty region.
func NewRegion() *Region {
	return wrapRegion(C.cairo_region_create())
}

// NewRegionRectangle creates a region covering one rectangle.
func NewRegionRectangle(rect RectangleInt) *Region {
	return wrapRegion(C.cairo_region_create_rectangle(rect.cPtr()))
}

// NewRegionRectangles creates a region covering the union of the
// given rectangles.
func NewRegionRectangles(rects ...RectangleInt) *Region {
	if len(rects) == 0 {
		return NewRegion()
	}
	return wrapRegion(C.cairo_region_create_rectangles(rects[0].cPtr(), C.int(len(rects))))
}

func (r *Region) handle() *C.cairo_region_t {
	if r.ptr == nil {
		closedPanic("Region")
	}
	return r.ptr
}

// Err returns the sticky status of the region as an error, or nil.
func (r *Region) Err() error {
	return statusErr(C.cairo_region_status(r.handle()))
}

// Close releases the native reference. Close is idempotent.
func (r *Region) Close() error {
	if r.ptr == nil {
		return nil
	}
	err := statusErr(C.cairo_region_status(r.ptr))
	r.cleanup.Stop()
	traceHandle("close", "Region", unsafe.Pointer(r.ptr))
	C.cairo_region_destroy(r.ptr)
	r.ptr = nil
	return err
}

// Copy returns an independent copy of the region.
func (r *Region) Copy() *Region {
	return wrapRegion(C.cairo_region_copy(r.handle()))
}

// Extents returns the bounding rectangle of the region.
func (r *Region) Extents() RectangleInt {
	var rect RectangleInt
	C.cairo_region_get_extents(r.handle(), rect.cPtr())
	return rect
}

// NumRectangles returns the number of rectangles the region is made
// of.
func (r *Region) NumRectangles() int {
	return int(C.cairo_region_num_rectangles(r.handle()))
}

// RectangleAt returns the i'th rectangle of the region.
func (r *Region) RectangleAt(i int) RectangleInt {
	var rect RectangleInt
	C.cairo_region_get_rectangle(r.handle(), C.int(i), rect.cPtr())
	return rect
}

// Rectangles returns all rectangles of the region.
func (r *Region) Rectangles() []RectangleInt {
	n := r.NumRectangles()
	if n == 0 {
		return nil
	}
	rects := make([]RectangleInt, n)
	for i := range rects {
		C.cairo_region_get_rectangle(r.handle(), C.int(i), rects[i].cPtr())
	}
	return rects
}

// IsEmpty reports whether the region covers no pixels.
func (r *Region) IsEmpty() bool {
	return C.cairo_region_is_empty(r.handle()) != 0
}

// ContainsPoint reports whether the point is inside the region.
func (r *Region) ContainsPoint(x, y int) bool {
	return C.cairo_region_contains_point(r.handle(), C.int(x), C.int(y)) != 0
}

// ContainsRectangle reports how the rectangle relates to the region.
func (r *Region) ContainsRectangle(rect RectangleInt) RegionOverlap {
	return RegionOverlap(C.cairo_region_contains_rectangle(r.handle(), rect.cPtr()))
}

// Equal reports whether both regions cover exactly the same area.
func (r *Region) Equal(other *Region) bool {
	return C.cairo_region_equal(r.handle(), other.handle()) != 0
}

// Translate moves the region by dx, dy.
func (r *Region) Translate(dx, dy int) {
	C.cairo_region_translate(r.handle(), C.int(dx), C.int(dy))
}

// Subtract removes other from r.
func (r *Region) Subtract(other *Region) error {
	return statusErr(C.cairo_region_subtract(r.handle(), other.handle()))
}

// SubtractRectangle removes rect from r.
func (r *Region) SubtractRectangle(rect RectangleInt) error {
	return statusErr(C.cairo_region_subtract_rectangle(r.handle(), rect.cPtr()))
}

// Intersect reduces r to the area covered by both regions.
func (r *Region) Intersect(other *Region) error {
	return statusErr(C.cairo_region_intersect(r.handle(), other.handle()))
}

// IntersectRectangle reduces r to the area also covered by rect.
func (r *Region) IntersectRectangle(rect RectangleInt) error {
	return statusErr(C.cairo_region_intersect_rectangle(r.handle(), rect.cPtr()))
}

// Union extends r by the area of other.
func (r *Region) Union(other *Region) error {
	return statusErr(C.cairo_region_union(r.handle(), other.handle()))
}

// UnionRectangle extends r by rect.
func (r *Region) UnionRectangle(rect RectangleInt) error {
	return statusErr(C.cairo_region_union_rectangle(r.handle(), rect.cPtr()))
}

// Xor reduces r to the area covered by exactly one of the regions.
func (r *Region) Xor(other *Region) error {
	return statusErr(C.cairo_region_xor(r.handle(), other.handle()))
}

// XorRectangle reduces r to the area covered by exactly one of r and
// rect.
func (r *Region) XorRectangle(rect RectangleInt) error {
	return statusErr(C.cairo_region_xor_rectangle(r.handle(), rect.cPtr()))
}
