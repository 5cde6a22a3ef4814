// SPDX-License-Identifier: Unlicense OR MIT

package cairo

/*
#include <cairo.h>
*/
import "C"

// RecordingSurface records drawing operations at the highest level
// and replays them against any target passed to SetSourceSurface or
// Context.Mask. Script devices and tests use it to capture drawing
// without rasterizing.
type RecordingSurface struct {
	*Surface
}

// NewRecordingSurface creates a recording surface holding content of
// the given kind. A nil extents records an unbounded surface.
func NewRecordingSurface(content Content, extents *Rectangle) *RecordingSurface {
	var cext *C.cairo_rectangle_t
	if extents != nil {
		r := *extents
		cext = r.cPtr()
	}
	p := C.cairo_recording_surface_create(C.cairo_content_t(content), cext)
	return &RecordingSurface{Surface: wrapSurface(p)}
}

// InkExtents returns the bounds of everything drawn so far, in the
// coordinate space the operations were recorded in.
func (s *RecordingSurface) InkExtents() Rectangle {
	var x, y, w, h C.double
	C.cairo_recording_surface_ink_extents(s.handle(), &x, &y, &w, &h)
	return Rectangle{X: float64(x), Y: float64(y), Width: float64(w), Height: float64(h)}
}

// Extents returns the recording bounds given at creation. ok is
// false for unbounded surfaces.
func (s *RecordingSurface) Extents() (r Rectangle, ok bool) {
	ok = C.cairo_recording_surface_get_extents(s.handle(), r.cPtr()) != 0
	return r, ok
}
