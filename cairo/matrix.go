// SPDX-License-Identifier: Unlicense OR MIT

package cairo

/*
#include <cairo.h>
*/
import "C"

import "unsafe"

// Matrix is an affine transformation mapping (x, y) to
//
//	xNew = XX*x + XY*y + X0
//	yNew = YX*x + YY*y + Y0
//
// The field layout mirrors cairo_matrix_t, so a *Matrix passes
// straight into native calls without copying.
type Matrix struct {
	XX, YX float64
	XY, YY float64
	X0, Y0 float64
}

func (m *Matrix) cPtr() *C.cairo_matrix_t {
	return (*C.cairo_matrix_t)(unsafe.Pointer(m))
}

// NewMatrix returns the transformation given by its six components.
func NewMatrix(xx, yx, xy, yy, x0, y0 float64) Matrix {
	var m Matrix
	C.cairo_matrix_init(m.cPtr(), C.double(xx), C.double(yx), C.double(xy), C.double(yy), C.double(x0), C.double(y0))
	return m
}

// MatrixIdentity returns the identity transformation.
func MatrixIdentity() Matrix {
	var m Matrix
	C.cairo_matrix_init_identity(m.cPtr())
	return m
}

// MatrixTranslate returns a transformation that translates by (tx, ty).
func MatrixTranslate(tx, ty float64) Matrix {
	var m Matrix
	C.cairo_matrix_init_translate(m.cPtr(), C.double(tx), C.double(ty))
	return m
}

// MatrixScale returns a transformation that scales by (sx, sy).
func MatrixScale(sx, sy float64) Matrix {
	var m Matrix
	C.cairo_matrix_init_scale(m.cPtr(), C.double(sx), C.double(sy))
	return m
}

// MatrixRotate returns a transformation that rotates by radians.
func MatrixRotate(radians float64) Matrix {
	var m Matrix
	C.cairo_matrix_init_rotate(m.cPtr(), C.double(radians))
	return m
}

// Translate applies a translation by (tx, ty) before m.
func (m *Matrix) Translate(tx, ty float64) {
	C.cairo_matrix_translate(m.cPtr(), C.double(tx), C.double(ty))
}

// Scale applies a scale by (sx, sy) before m.
func (m *Matrix) Scale(sx, sy float64) {
	C.cairo_matrix_scale(m.cPtr(), C.double(sx), C.double(sy))
}

// Rotate applies a rotation by radians before m.
func (m *Matrix) Rotate(radians float64) {
	C.cairo_matrix_rotate(m.cPtr(), C.double(radians))
}

// Invert replaces m with its inverse. It returns an error if m is
// singular, in which case m is unchanged.
func (m *Matrix) Invert() error {
	return statusErr(C.cairo_matrix_invert(m.cPtr()))
}

// Multiply sets m to the product a then b, so that applying m is
// equivalent to applying a followed by b.
func (m *Matrix) Multiply(a, b Matrix) {
	C.cairo_matrix_multiply(m.cPtr(), a.cPtr(), b.cPtr())
}

// TransformPoint maps the point (x, y) through m.
func (m *Matrix) TransformPoint(x, y float64) (float64, float64) {
	cx, cy := C.double(x), C.double(y)
	C.cairo_matrix_transform_point(m.cPtr(), &cx, &cy)
	return float64(cx), float64(cy)
}

// TransformDistance maps the distance vector (dx, dy) through m,
// ignoring its translation components.
func (m *Matrix) TransformDistance(dx, dy float64) (float64, float64) {
	cx, cy := C.double(dx), C.double(dy)
	C.cairo_matrix_transform_distance(m.cPtr(), &cx, &cy)
	return float64(cx), float64(cy)
}
