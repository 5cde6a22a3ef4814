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

// PatternType identifies the kind of a pattern.
type PatternType int

const (
	PatternTypeSolid        PatternType = C.CAIRO_PATTERN_TYPE_SOLID
	PatternTypeSurface      PatternType = C.CAIRO_PATTERN_TYPE_SURFACE
	PatternTypeLinear       PatternType = C.CAIRO_PATTERN_TYPE_LINEAR
	PatternTypeRadial       PatternType = C.CAIRO_PATTERN_TYPE_RADIAL
	PatternTypeMesh         PatternType = C.CAIRO_PATTERN_TYPE_MESH
	PatternTypeRasterSource PatternType = C.CAIRO_PATTERN_TYPE_RASTER_SOURCE
)

// Extend selects how a pattern is extended outside its natural area.
type Extend int

const (
	ExtendNone    Extend = C.CAIRO_EXTEND_NONE
	ExtendRepeat  Extend = C.CAIRO_EXTEND_REPEAT
	ExtendReflect Extend = C.CAIRO_EXTEND_REFLECT
	ExtendPad     Extend = C.CAIRO_EXTEND_PAD
)

// Filter selects the resampling filter for surface patterns.
type Filter int

const (
	FilterFast     Filter = C.CAIRO_FILTER_FAST
	FilterGood     Filter = C.CAIRO_FILTER_GOOD
	FilterBest     Filter = C.CAIRO_FILTER_BEST
	FilterNearest  Filter = C.CAIRO_FILTER_NEAREST
	FilterBilinear Filter = C.CAIRO_FILTER_BILINEAR
	FilterGaussian Filter = C.CAIRO_FILTER_GAUSSIAN
)

// Pattern is a paint source: a solid color, a gradient, a mesh or the
// contents of a surface.
type Pattern struct {
	ptr     *C.cairo_pattern_t
	cleanup runtime.Cleanup
}

func releasePattern(p unsafe.Pointer) {
	C.cairo_pattern_destroy((*C.cairo_pattern_t)(p))
}

// wrapPattern takes ownership of one native reference.
func wrapPattern(p *C.cairo_pattern_t) *Pattern {
	pat := &Pattern{ptr: p}
	pat.cleanup = addCleanup(pat, "Pattern", unsafe.Pointer(p), releasePattern)
	traceHandle("create", "Pattern", unsafe.Pointer(p))
	return pat
}

// wrapPatternBorrowed wraps a pointer owned by someone else, taking a
// fresh reference so Close stays uniform.
func wrapPatternBorrowed(p *C.cairo_pattern_t) *Pattern {
	return wrapPattern(C.cairo_pattern_reference(p))
}

func (p *Pattern) handle() *C.cairo_pattern_t {
	if p.ptr == nil {
		closedPanic("Pattern")
	}
	return p.ptr
}

// Err returns the sticky status of the pattern as an error, or nil.
func (p *Pattern) Err() error {
	return statusErr(C.cairo_pattern_status(p.handle()))
}

// Close releases the pattern's native reference. Close is idempotent.
func (p *Pattern) Close() error {
	if p.ptr == nil {
		return nil
	}
	err := statusErr(C.cairo_pattern_status(p.ptr))
	p.cleanup.Stop()
	traceHandle("close", "Pattern", unsafe.Pointer(p.ptr))
	C.cairo_pattern_destroy(p.ptr)
	p.ptr = nil
	return err
}

// Type returns the kind of the pattern.
func (p *Pattern) Type() PatternType {
	return PatternType(C.cairo_pattern_get_type(p.handle()))
}

// SetMatrix sets the transformation from user space to pattern
// space.
func (p *Pattern) SetMatrix(m Matrix) {
	C.cairo_pattern_set_matrix(p.handle(), m.cPtr())
}

// Matrix returns the pattern transformation.
func (p *Pattern) Matrix() Matrix {
	var m Matrix
	C.cairo_pattern_get_matrix(p.handle(), m.cPtr())
	return m
}

// SetExtend sets how the pattern continues outside its natural area.
func (p *Pattern) SetExtend(e Extend) {
	C.cairo_pattern_set_extend(p.handle(), C.cairo_extend_t(e))
}

// Extend returns the pattern's extend mode.
func (p *Pattern) Extend() Extend {
	return Extend(C.cairo_pattern_get_extend(p.handle()))
}

// SetFilter sets the resampling filter used when the pattern is read.
func (p *Pattern) SetFilter(f Filter) {
	C.cairo_pattern_set_filter(p.handle(), C.cairo_filter_t(f))
}

// Filter returns the pattern's resampling filter.
func (p *Pattern) Filter() Filter {
	return Filter(C.cairo_pattern_get_filter(p.handle()))
}

// NewSolidPattern returns a pattern painting a single translucent
// color.
func NewSolidPattern(r, g, b, a float64) *Pattern {
	return wrapPattern(C.cairo_pattern_create_rgba(C.double(r), C.double(g), C.double(b), C.double(a)))
}

// RGBA returns the color of a solid pattern. It fails with
// StatusPatternTypeMismatch on other pattern kinds.
func (p *Pattern) RGBA() (r, g, b, a float64, err error) {
	var cr, cg, cb, ca C.double
	s := C.cairo_pattern_get_rgba(p.handle(), &cr, &cg, &cb, &ca)
	return float64(cr), float64(cg), float64(cb), float64(ca), statusErr(s)
}

// NewSurfacePattern returns a pattern painting the contents of
// surface. The pattern holds its own reference to the surface.
func NewSurfacePattern(surface *Surface) *Pattern {
	return wrapPattern(C.cairo_pattern_create_for_surface(surface.handle()))
}

// Surface returns the surface of a surface pattern.
func (p *Pattern) Surface() (*Surface, error) {
	var sp *C.cairo_surface_t
	if err := statusErr(C.cairo_pattern_get_surface(p.handle(), &sp)); err != nil {
		return nil, err
	}
	return wrapSurfaceBorrowed(sp), nil
}

// Gradient is a linear or radial blend between color stops.
type Gradient struct {
	Pattern
}

// NewLinearGradient returns a gradient blending along the line from
// (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *Gradient {
	g := &Gradient{}
	g.ptr = C.cairo_pattern_create_linear(C.double(x0), C.double(y0), C.double(x1), C.double(y1))
	g.cleanup = addCleanup(g, "Gradient", unsafe.Pointer(g.ptr), releasePattern)
	traceHandle("create", "Gradient", unsafe.Pointer(g.ptr))
	return g
}

// NewRadialGradient returns a gradient blending between the circle at
// (cx0, cy0) with radius r0 and the circle at (cx1, cy1) with radius
// r1.
func NewRadialGradient(cx0, cy0, r0, cx1, cy1, r1 float64) *Gradient {
	g := &Gradient{}
	g.ptr = C.cairo_pattern_create_radial(C.double(cx0), C.double(cy0), C.double(r0), C.double(cx1), C.double(cy1), C.double(r1))
	g.cleanup = addCleanup(g, "Gradient", unsafe.Pointer(g.ptr), releasePattern)
	traceHandle("create", "Gradient", unsafe.Pointer(g.ptr))
	return g
}

// AddColorStopRGB adds an opaque color stop at the given offset in
// [0, 1].
func (g *Gradient) AddColorStopRGB(offset, r, gr, b float64) {
	C.cairo_pattern_add_color_stop_rgb(g.handle(), C.double(offset), C.double(r), C.double(gr), C.double(b))
}

// AddColorStopRGBA adds a translucent color stop at the given offset
// in [0, 1].
func (g *Gradient) AddColorStopRGBA(offset, r, gr, b, a float64) {
	C.cairo_pattern_add_color_stop_rgba(g.handle(), C.double(offset), C.double(r), C.double(gr), C.double(b), C.double(a))
}

// ColorStopCount returns the number of color stops.
func (g *Gradient) ColorStopCount() (int, error) {
	var n C.int
	err := statusErr(C.cairo_pattern_get_color_stop_count(g.handle(), &n))
	return int(n), err
}

// ColorStopRGBA returns the color stop at index i.
func (g *Gradient) ColorStopRGBA(i int) (offset, r, gr, b, a float64, err error) {
	var co, cr, cg, cb, ca C.double
	s := C.cairo_pattern_get_color_stop_rgba(g.handle(), C.int(i), &co, &cr, &cg, &cb, &ca)
	return float64(co), float64(cr), float64(cg), float64(cb), float64(ca), statusErr(s)
}

// LinearPoints returns the endpoints of a linear gradient.
func (g *Gradient) LinearPoints() (x0, y0, x1, y1 float64, err error) {
	var cx0, cy0, cx1, cy1 C.double
	s := C.cairo_pattern_get_linear_points(g.handle(), &cx0, &cy0, &cx1, &cy1)
	return float64(cx0), float64(cy0), float64(cx1), float64(cy1), statusErr(s)
}

// RadialCircles returns the circles of a radial gradient.
func (g *Gradient) RadialCircles() (cx0, cy0, r0, cx1, cy1, r1 float64, err error) {
	var a0, b0, c0, a1, b1, c1 C.double
	s := C.cairo_pattern_get_radial_circles(g.handle(), &a0, &b0, &c0, &a1, &b1, &c1)
	return float64(a0), float64(b0), float64(c0), float64(a1), float64(b1), float64(c1), statusErr(s)
}

// Mesh is a pattern made of tensor-product patches, each bounded by
// four Bézier sides with a color in every corner.
type Mesh struct {
	Pattern
}

// NewMesh returns an empty mesh pattern. Patches are added between
// BeginPatch and EndPatch calls.
func NewMesh() *Mesh {
	m := &Mesh{}
	m.ptr = C.cairo_pattern_create_mesh()
	m.cleanup = addCleanup(m, "Mesh", unsafe.Pointer(m.ptr), releasePattern)
	traceHandle("create", "Mesh", unsafe.Pointer(m.ptr))
	return m
}

// BeginPatch starts the definition of a new patch.
func (m *Mesh) BeginPatch() {
	C.cairo_mesh_pattern_begin_patch(m.handle())
}

// EndPatch completes the patch under definition.
func (m *Mesh) EndPatch() {
	C.cairo_mesh_pattern_end_patch(m.handle())
}

// MoveTo sets the starting corner of the patch under definition.
func (m *Mesh) MoveTo(x, y float64) {
	C.cairo_mesh_pattern_move_to(m.handle(), C.double(x), C.double(y))
}

// LineTo adds a straight side to the patch under definition.
func (m *Mesh) LineTo(x, y float64) {
	C.cairo_mesh_pattern_line_to(m.handle(), C.double(x), C.double(y))
}

// CurveTo adds a curved side to the patch under definition.
func (m *Mesh) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	C.cairo_mesh_pattern_curve_to(m.handle(), C.double(x1), C.double(y1), C.double(x2), C.double(y2), C.double(x3), C.double(y3))
}

// SetControlPoint moves one of the four inner control points of the
// patch under definition.
func (m *Mesh) SetControlPoint(point int, x, y float64) {
	C.cairo_mesh_pattern_set_control_point(m.handle(), C.uint(point), C.double(x), C.double(y))
}

// SetCornerColorRGB sets an opaque corner color of the patch under
// definition.
func (m *Mesh) SetCornerColorRGB(corner int, r, g, b float64) {
	C.cairo_mesh_pattern_set_corner_color_rgb(m.handle(), C.uint(corner), C.double(r), C.double(g), C.double(b))
}

// SetCornerColorRGBA sets a translucent corner color of the patch
// under definition.
func (m *Mesh) SetCornerColorRGBA(corner int, r, g, b, a float64) {
	C.cairo_mesh_pattern_set_corner_color_rgba(m.handle(), C.uint(corner), C.double(r), C.double(g), C.double(b), C.double(a))
}

// PatchCount returns the number of completed patches.
func (m *Mesh) PatchCount() (int, error) {
	var n C.uint
	err := statusErr(C.cairo_mesh_pattern_get_patch_count(m.handle(), &n))
	return int(n), err
}

// CornerColorRGBA returns a corner color of patch i.
func (m *Mesh) CornerColorRGBA(patch, corner int) (r, g, b, a float64, err error) {
	var cr, cg, cb, ca C.double
	s := C.cairo_mesh_pattern_get_corner_color_rgba(m.handle(), C.uint(patch), C.uint(corner), &cr, &cg, &cb, &ca)
	return float64(cr), float64(cg), float64(cb), float64(ca), statusErr(s)
}

// ControlPoint returns an inner control point of patch i.
func (m *Mesh) ControlPoint(patch, point int) (x, y float64, err error) {
	var cx, cy C.double
	s := C.cairo_mesh_pattern_get_control_point(m.handle(), C.uint(patch), C.uint(point), &cx, &cy)
	return float64(cx), float64(cy), statusErr(s)
}

// PatchPath returns the boundary path of patch i.
func (m *Mesh) PatchPath(patch int) *Path {
	return wrapPath(C.cairo_mesh_pattern_get_path(m.handle(), C.uint(patch)))
}
