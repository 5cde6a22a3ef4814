// SPDX-License-Identifier: Unlicense OR MIT

package cairo

/*
#include <cairo.h>
#include <stdlib.h>
*/
import "C"

import (
	"runtime"
	"unsafe"
)

// Operator sets the compositing operator for drawing operations.
type Operator int

const (
	OperatorClear         Operator = C.CAIRO_OPERATOR_CLEAR
	OperatorSource        Operator = C.CAIRO_OPERATOR_SOURCE
	OperatorOver          Operator = C.CAIRO_OPERATOR_OVER
	OperatorIn            Operator = C.CAIRO_OPERATOR_IN
	OperatorOut           Operator = C.CAIRO_OPERATOR_OUT
	OperatorAtop          Operator = C.CAIRO_OPERATOR_ATOP
	OperatorDest          Operator = C.CAIRO_OPERATOR_DEST
	OperatorDestOver      Operator = C.CAIRO_OPERATOR_DEST_OVER
	OperatorDestIn        Operator = C.CAIRO_OPERATOR_DEST_IN
	OperatorDestOut       Operator = C.CAIRO_OPERATOR_DEST_OUT
	OperatorDestAtop      Operator = C.CAIRO_OPERATOR_DEST_ATOP
	OperatorXor           Operator = C.CAIRO_OPERATOR_XOR
	OperatorAdd           Operator = C.CAIRO_OPERATOR_ADD
	OperatorSaturate      Operator = C.CAIRO_OPERATOR_SATURATE
	OperatorMultiply      Operator = C.CAIRO_OPERATOR_MULTIPLY
	OperatorScreen        Operator = C.CAIRO_OPERATOR_SCREEN
	OperatorOverlay       Operator = C.CAIRO_OPERATOR_OVERLAY
	OperatorDarken        Operator = C.CAIRO_OPERATOR_DARKEN
	OperatorLighten       Operator = C.CAIRO_OPERATOR_LIGHTEN
	OperatorColorDodge    Operator = C.CAIRO_OPERATOR_COLOR_DODGE
	OperatorColorBurn     Operator = C.CAIRO_OPERATOR_COLOR_BURN
	OperatorHardLight     Operator = C.CAIRO_OPERATOR_HARD_LIGHT
	OperatorSoftLight     Operator = C.CAIRO_OPERATOR_SOFT_LIGHT
	OperatorDifference    Operator = C.CAIRO_OPERATOR_DIFFERENCE
	OperatorExclusion     Operator = C.CAIRO_OPERATOR_EXCLUSION
	OperatorHSLHue        Operator = C.CAIRO_OPERATOR_HSL_HUE
	OperatorHSLSaturation Operator = C.CAIRO_OPERATOR_HSL_SATURATION
	OperatorHSLColor      Operator = C.CAIRO_OPERATOR_HSL_COLOR
	OperatorHSLLuminosity Operator = C.CAIRO_OPERATOR_HSL_LUMINOSITY
)

// Antialias selects the antialiasing mode for rasterization.
type Antialias int

const (
	AntialiasDefault  Antialias = C.CAIRO_ANTIALIAS_DEFAULT
	AntialiasNone     Antialias = C.CAIRO_ANTIALIAS_NONE
	AntialiasGray     Antialias = C.CAIRO_ANTIALIAS_GRAY
	AntialiasSubpixel Antialias = C.CAIRO_ANTIALIAS_SUBPIXEL
	AntialiasFast     Antialias = C.CAIRO_ANTIALIAS_FAST
	AntialiasGood     Antialias = C.CAIRO_ANTIALIAS_GOOD
	AntialiasBest     Antialias = C.CAIRO_ANTIALIAS_BEST
)

// FillRule selects how self-intersecting paths are filled.
type FillRule int

const (
	FillRuleWinding FillRule = C.CAIRO_FILL_RULE_WINDING
	FillRuleEvenOdd FillRule = C.CAIRO_FILL_RULE_EVEN_ODD
)

// LineCap selects the shape of stroked line endpoints.
type LineCap int

const (
	LineCapButt   LineCap = C.CAIRO_LINE_CAP_BUTT
	LineCapRound  LineCap = C.CAIRO_LINE_CAP_ROUND
	LineCapSquare LineCap = C.CAIRO_LINE_CAP_SQUARE
)

// LineJoin selects the shape of stroked line corners.
type LineJoin int

const (
	LineJoinMiter LineJoin = C.CAIRO_LINE_JOIN_MITER
	LineJoinRound LineJoin = C.CAIRO_LINE_JOIN_ROUND
	LineJoinBevel LineJoin = C.CAIRO_LINE_JOIN_BEVEL
)

// Context is the central drawing state of cairo. It records one
// source pattern, one path and a stack of graphics states, and draws
// onto the target surface it was created for.
type Context struct {
	ptr     *C.cairo_t
	cleanup runtime.Cleanup
}

func releaseContext(p unsafe.Pointer) {
	C.cairo_destroy((*C.cairo_t)(p))
}

func wrapContext(p *C.cairo_t) *Context {
	c := &Context{ptr: p}
	c.cleanup = addCleanup(c, "Context", unsafe.Pointer(p), releaseContext)
	traceHandle("create", "Context", unsafe.Pointer(p))
	return c
}

// NewContext creates a drawing context targeting surface. The context
// holds its own reference to the surface, so closing the surface
// wrapper does not invalidate the context.
//
// Creation only fails on exhaustion inside the native library; the
// failure is reported by Err on the returned context.
func NewContext(target *Surface) *Context {
	return wrapContext(C.cairo_create(target.handle()))
}

func (c *Context) handle() *C.cairo_t {
	if c.ptr == nil {
		closedPanic("Context")
	}
	return c.ptr
}

// Err returns the sticky status of the context as an error, or nil.
func (c *Context) Err() error {
	return statusErr(C.cairo_status(c.handle()))
}

// Close releases the context's reference to its native object and
// returns the sticky status. Close is idempotent.
func (c *Context) Close() error {
	if c.ptr == nil {
		return nil
	}
	err := statusErr(C.cairo_status(c.ptr))
	c.cleanup.Stop()
	traceHandle("close", "Context", unsafe.Pointer(c.ptr))
	C.cairo_destroy(c.ptr)
	c.ptr = nil
	return err
}

// Target returns the surface the context draws to.
func (c *Context) Target() *Surface {
	return wrapSurfaceBorrowed(C.cairo_get_target(c.handle()))
}

// GroupTarget returns the surface receiving drawing while a group
// pushed by PushGroup is open, or the target surface otherwise.
func (c *Context) GroupTarget() *Surface {
	return wrapSurfaceBorrowed(C.cairo_get_group_target(c.handle()))
}

// Save pushes a copy of the current graphics state onto the state
// stack. Restore returns to it.
func (c *Context) Save() {
	C.cairo_save(c.handle())
}

// Restore pops the state stack, restoring the state saved by the
// matching Save.
func (c *Context) Restore() {
	C.cairo_restore(c.handle())
}

// PushGroup redirects drawing to an intermediate surface with content
// ContentColorAlpha.
func (c *Context) PushGroup() {
	C.cairo_push_group(c.handle())
}

// PushGroupWithContent redirects drawing to an intermediate surface
// with the given content.
func (c *Context) PushGroupWithContent(content Content) {
	C.cairo_push_group_with_content(c.handle(), C.cairo_content_t(content))
}

// PopGroup ends the group started by the matching PushGroup and
// returns its contents as a pattern.
func (c *Context) PopGroup() *Pattern {
	return wrapPattern(C.cairo_pop_group(c.handle()))
}

// PopGroupToSource ends the group started by the matching PushGroup
// and installs its contents as the source pattern.
func (c *Context) PopGroupToSource() {
	C.cairo_pop_group_to_source(c.handle())
}

// SetSourceRGB installs an opaque color as the source pattern.
// Components are in the range [0, 1].
func (c *Context) SetSourceRGB(r, g, b float64) {
	C.cairo_set_source_rgb(c.handle(), C.double(r), C.double(g), C.double(b))
}

// SetSourceRGBA installs a translucent color as the source pattern.
func (c *Context) SetSourceRGBA(r, g, b, a float64) {
	C.cairo_set_source_rgba(c.handle(), C.double(r), C.double(g), C.double(b), C.double(a))
}

// SetSource installs p as the source pattern.
func (c *Context) SetSource(p *Pattern) {
	C.cairo_set_source(c.handle(), p.handle())
}

// SetSourceSurface installs surface as the source pattern, placing
// its origin at (x, y) in user space.
func (c *Context) SetSourceSurface(surface *Surface, x, y float64) {
	C.cairo_set_source_surface(c.handle(), surface.handle(), C.double(x), C.double(y))
}

// Source returns the current source pattern.
func (c *Context) Source() *Pattern {
	return wrapPatternBorrowed(C.cairo_get_source(c.handle()))
}

// SetOperator sets the compositing operator for drawing operations.
func (c *Context) SetOperator(op Operator) {
	C.cairo_set_operator(c.handle(), C.cairo_operator_t(op))
}

// Operator returns the current compositing operator.
func (c *Context) Operator() Operator {
	return Operator(C.cairo_get_operator(c.handle()))
}

// SetTolerance sets the permitted error when converting curves to
// lines, in device units.
func (c *Context) SetTolerance(tolerance float64) {
	C.cairo_set_tolerance(c.handle(), C.double(tolerance))
}

// Tolerance returns the current curve flattening tolerance.
func (c *Context) Tolerance() float64 {
	return float64(C.cairo_get_tolerance(c.handle()))
}

// SetAntialias sets the antialiasing mode for rasterization.
func (c *Context) SetAntialias(mode Antialias) {
	C.cairo_set_antialias(c.handle(), C.cairo_antialias_t(mode))
}

// Antialias returns the current antialiasing mode.
func (c *Context) Antialias() Antialias {
	return Antialias(C.cairo_get_antialias(c.handle()))
}

// SetFillRule sets the rule used by Fill and InFill.
func (c *Context) SetFillRule(rule FillRule) {
	C.cairo_set_fill_rule(c.handle(), C.cairo_fill_rule_t(rule))
}

// FillRule returns the current fill rule.
func (c *Context) FillRule() FillRule {
	return FillRule(C.cairo_get_fill_rule(c.handle()))
}

// SetLineWidth sets the width for stroked lines, in user units.
func (c *Context) SetLineWidth(width float64) {
	C.cairo_set_line_width(c.handle(), C.double(width))
}

// LineWidth returns the current line width.
func (c *Context) LineWidth() float64 {
	return float64(C.cairo_get_line_width(c.handle()))
}

// SetLineCap sets the shape of stroked line endpoints.
func (c *Context) SetLineCap(cap LineCap) {
	C.cairo_set_line_cap(c.handle(), C.cairo_line_cap_t(cap))
}

// LineCap returns the current line cap.
func (c *Context) LineCap() LineCap {
	return LineCap(C.cairo_get_line_cap(c.handle()))
}

// SetLineJoin sets the shape of stroked line corners.
func (c *Context) SetLineJoin(join LineJoin) {
	C.cairo_set_line_join(c.handle(), C.cairo_line_join_t(join))
}

// LineJoin returns the current line join.
func (c *Context) LineJoin() LineJoin {
	return LineJoin(C.cairo_get_line_join(c.handle()))
}

// SetMiterLimit sets the miter limit for LineJoinMiter joins.
func (c *Context) SetMiterLimit(limit float64) {
	C.cairo_set_miter_limit(c.handle(), C.double(limit))
}

// MiterLimit returns the current miter limit.
func (c *Context) MiterLimit() float64 {
	return float64(C.cairo_get_miter_limit(c.handle()))
}

// SetDash sets the dash pattern for stroking. Alternating entries
// give the lengths of on and off segments in user units; offset moves
// the start of the pattern along the path. An empty slice disables
// dashing. A pattern with a negative entry, or with all entries zero,
// puts the context into the StatusInvalidDash error state.
func (c *Context) SetDash(dashes []float64, offset float64) {
	if len(dashes) == 0 {
		C.cairo_set_dash(c.handle(), nil, 0, C.double(offset))
		return
	}
	C.cairo_set_dash(c.handle(), (*C.double)(unsafe.Pointer(&dashes[0])), C.int(len(dashes)), C.double(offset))
}

// Dash returns the current dash pattern and offset.
func (c *Context) Dash() ([]float64, float64) {
	n := int(C.cairo_get_dash_count(c.handle()))
	var offset C.double
	if n == 0 {
		C.cairo_get_dash(c.handle(), nil, &offset)
		return nil, float64(offset)
	}
	dashes := make([]float64, n)
	C.cairo_get_dash(c.handle(), (*C.double)(unsafe.Pointer(&dashes[0])), &offset)
	return dashes, float64(offset)
}

// DashCount returns the number of entries in the current dash pattern.
func (c *Context) DashCount() int {
	return int(C.cairo_get_dash_count(c.handle()))
}

// Translate adds a translation by (tx, ty) to the current
// transformation matrix.
func (c *Context) Translate(tx, ty float64) {
	C.cairo_translate(c.handle(), C.double(tx), C.double(ty))
}

// Scale adds a scale by (sx, sy) to the current transformation
// matrix.
func (c *Context) Scale(sx, sy float64) {
	C.cairo_scale(c.handle(), C.double(sx), C.double(sy))
}

// Rotate adds a rotation by radians to the current transformation
// matrix.
func (c *Context) Rotate(radians float64) {
	C.cairo_rotate(c.handle(), C.double(radians))
}

// Transform multiplies the current transformation matrix by m.
func (c *Context) Transform(m Matrix) {
	C.cairo_transform(c.handle(), m.cPtr())
}

// SetMatrix replaces the current transformation matrix with m.
func (c *Context) SetMatrix(m Matrix) {
	C.cairo_set_matrix(c.handle(), m.cPtr())
}

// Matrix returns the current transformation matrix.
func (c *Context) Matrix() Matrix {
	var m Matrix
	C.cairo_get_matrix(c.handle(), m.cPtr())
	return m
}

// IdentityMatrix resets the current transformation matrix.
func (c *Context) IdentityMatrix() {
	C.cairo_identity_matrix(c.handle())
}

// UserToDevice maps a point from user to device space.
func (c *Context) UserToDevice(x, y float64) (float64, float64) {
	cx, cy := C.double(x), C.double(y)
	C.cairo_user_to_device(c.handle(), &cx, &cy)
	return float64(cx), float64(cy)
}

// UserToDeviceDistance maps a distance vector from user to device
// space, ignoring translation.
func (c *Context) UserToDeviceDistance(dx, dy float64) (float64, float64) {
	cx, cy := C.double(dx), C.double(dy)
	C.cairo_user_to_device_distance(c.handle(), &cx, &cy)
	return float64(cx), float64(cy)
}

// DeviceToUser maps a point from device to user space.
func (c *Context) DeviceToUser(x, y float64) (float64, float64) {
	cx, cy := C.double(x), C.double(y)
	C.cairo_device_to_user(c.handle(), &cx, &cy)
	return float64(cx), float64(cy)
}

// DeviceToUserDistance maps a distance vector from device to user
// space, ignoring translation.
func (c *Context) DeviceToUserDistance(dx, dy float64) (float64, float64) {
	cx, cy := C.double(dx), C.double(dy)
	C.cairo_device_to_user_distance(c.handle(), &cx, &cy)
	return float64(cx), float64(cy)
}

// NewPath clears the current path.
func (c *Context) NewPath() {
	C.cairo_new_path(c.handle())
}

// NewSubPath begins a new sub-path without a current point. The next
// Arc then starts a fresh contour instead of connecting.
func (c *Context) NewSubPath() {
	C.cairo_new_sub_path(c.handle())
}

// MoveTo begins a new sub-path at (x, y).
func (c *Context) MoveTo(x, y float64) {
	C.cairo_move_to(c.handle(), C.double(x), C.double(y))
}

// LineTo adds a line from the current point to (x, y).
func (c *Context) LineTo(x, y float64) {
	C.cairo_line_to(c.handle(), C.double(x), C.double(y))
}

// CurveTo adds a cubic Bézier segment from the current point to
// (x3, y3) with control points (x1, y1) and (x2, y2).
func (c *Context) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	C.cairo_curve_to(c.handle(), C.double(x1), C.double(y1), C.double(x2), C.double(y2), C.double(x3), C.double(y3))
}

// Arc adds a clockwise circular arc around (xc, yc) from angle1 to
// angle2, connecting from the current point if there is one.
func (c *Context) Arc(xc, yc, radius, angle1, angle2 float64) {
	C.cairo_arc(c.handle(), C.double(xc), C.double(yc), C.double(radius), C.double(angle1), C.double(angle2))
}

// ArcNegative is Arc in the counterclockwise direction.
func (c *Context) ArcNegative(xc, yc, radius, angle1, angle2 float64) {
	C.cairo_arc_negative(c.handle(), C.double(xc), C.double(yc), C.double(radius), C.double(angle1), C.double(angle2))
}

// RelMoveTo begins a new sub-path offset by (dx, dy) from the current
// point.
func (c *Context) RelMoveTo(dx, dy float64) {
	C.cairo_rel_move_to(c.handle(), C.double(dx), C.double(dy))
}

// RelLineTo adds a line to the point offset by (dx, dy) from the
// current point.
func (c *Context) RelLineTo(dx, dy float64) {
	C.cairo_rel_line_to(c.handle(), C.double(dx), C.double(dy))
}

// RelCurveTo is CurveTo with all coordinates relative to the current
// point.
func (c *Context) RelCurveTo(dx1, dy1, dx2, dy2, dx3, dy3 float64) {
	C.cairo_rel_curve_to(c.handle(), C.double(dx1), C.double(dy1), C.double(dx2), C.double(dy2), C.double(dx3), C.double(dy3))
}

// Rectangle adds a closed rectangular sub-path.
func (c *Context) Rectangle(x, y, width, height float64) {
	C.cairo_rectangle(c.handle(), C.double(x), C.double(y), C.double(width), C.double(height))
}

// ClosePath closes the current sub-path with a line to its start.
func (c *Context) ClosePath() {
	C.cairo_close_path(c.handle())
}

// HasCurrentPoint reports whether the current path has a current
// point.
func (c *Context) HasCurrentPoint() bool {
	return C.cairo_has_current_point(c.handle()) != 0
}

// CurrentPoint returns the current point of the path. It is (0, 0)
// when HasCurrentPoint reports false.
func (c *Context) CurrentPoint() (float64, float64) {
	var x, y C.double
	C.cairo_get_current_point(c.handle(), &x, &y)
	return float64(x), float64(y)
}

// PathExtents returns the bounding box of the current path in user
// space.
func (c *Context) PathExtents() (x1, y1, x2, y2 float64) {
	var cx1, cy1, cx2, cy2 C.double
	C.cairo_path_extents(c.handle(), &cx1, &cy1, &cx2, &cy2)
	return float64(cx1), float64(cy1), float64(cx2), float64(cy2)
}

// Paint fills the whole clip region with the source.
func (c *Context) Paint() {
	C.cairo_paint(c.handle())
}

// PaintWithAlpha is Paint with the source faded by alpha.
func (c *Context) PaintWithAlpha(alpha float64) {
	C.cairo_paint_with_alpha(c.handle(), C.double(alpha))
}

// Mask paints the source using the alpha channel of pattern as a
// mask.
func (c *Context) Mask(pattern *Pattern) {
	C.cairo_mask(c.handle(), pattern.handle())
}

// MaskSurface paints the source using the alpha channel of surface,
// placed at (x, y), as a mask.
func (c *Context) MaskSurface(surface *Surface, x, y float64) {
	C.cairo_mask_surface(c.handle(), surface.handle(), C.double(x), C.double(y))
}

// Stroke strokes the current path and clears it.
func (c *Context) Stroke() {
	C.cairo_stroke(c.handle())
}

// StrokePreserve strokes the current path and keeps it.
func (c *Context) StrokePreserve() {
	C.cairo_stroke_preserve(c.handle())
}

// Fill fills the current path and clears it.
func (c *Context) Fill() {
	C.cairo_fill(c.handle())
}

// FillPreserve fills the current path and keeps it.
func (c *Context) FillPreserve() {
	C.cairo_fill_preserve(c.handle())
}

// CopyPage emits the current page of a paginated target without
// clearing it.
func (c *Context) CopyPage() {
	C.cairo_copy_page(c.handle())
}

// ShowPage emits the current page of a paginated target and starts a
// new one.
func (c *Context) ShowPage() {
	C.cairo_show_page(c.handle())
}

// InStroke reports whether (x, y) would be covered by stroking the
// current path.
func (c *Context) InStroke(x, y float64) bool {
	return C.cairo_in_stroke(c.handle(), C.double(x), C.double(y)) != 0
}

// InFill reports whether (x, y) would be covered by filling the
// current path.
func (c *Context) InFill(x, y float64) bool {
	return C.cairo_in_fill(c.handle(), C.double(x), C.double(y)) != 0
}

// InClip reports whether (x, y) is inside the current clip region.
func (c *Context) InClip(x, y float64) bool {
	return C.cairo_in_clip(c.handle(), C.double(x), C.double(y)) != 0
}

// StrokeExtents returns the user-space bounding box that stroking the
// current path would cover.
func (c *Context) StrokeExtents() (x1, y1, x2, y2 float64) {
	var cx1, cy1, cx2, cy2 C.double
	C.cairo_stroke_extents(c.handle(), &cx1, &cy1, &cx2, &cy2)
	return float64(cx1), float64(cy1), float64(cx2), float64(cy2)
}

// FillExtents returns the user-space bounding box that filling the
// current path would cover.
func (c *Context) FillExtents() (x1, y1, x2, y2 float64) {
	var cx1, cy1, cx2, cy2 C.double
	C.cairo_fill_extents(c.handle(), &cx1, &cy1, &cx2, &cy2)
	return float64(cx1), float64(cy1), float64(cx2), float64(cy2)
}

// Clip intersects the clip region with the current path and clears
// the path.
func (c *Context) Clip() {
	C.cairo_clip(c.handle())
}

// ClipPreserve intersects the clip region with the current path and
// keeps the path.
func (c *Context) ClipPreserve() {
	C.cairo_clip_preserve(c.handle())
}

// ResetClip removes all clipping.
func (c *Context) ResetClip() {
	C.cairo_reset_clip(c.handle())
}

// ClipExtents returns the user-space bounding box of the current clip
// region.
func (c *Context) ClipExtents() (x1, y1, x2, y2 float64) {
	var cx1, cy1, cx2, cy2 C.double
	C.cairo_clip_extents(c.handle(), &cx1, &cy1, &cx2, &cy2)
	return float64(cx1), float64(cy1), float64(cx2), float64(cy2)
}

// ClipRectangleList returns the current clip region as a list of user
// space rectangles. It fails with StatusClipNotRepresentable when the
// clip cannot be represented as rectangles.
func (c *Context) ClipRectangleList() ([]Rectangle, error) {
	list := C.cairo_copy_clip_rectangle_list(c.handle())
	defer C.cairo_rectangle_list_destroy(list)
	if err := statusErr(list.status); err != nil {
		return nil, err
	}
	n := int(list.num_rectangles)
	if n == 0 {
		return nil, nil
	}
	rects := make([]Rectangle, n)
	src := unsafe.Slice(list.rectangles, n)
	for i, r := range src {
		rects[i] = Rectangle{
			X:      float64(r.x),
			Y:      float64(r.y),
			Width:  float64(r.width),
			Height: float64(r.height),
		}
	}
	return rects, nil
}

// TagBegin opens a structure tag for paginated targets that support
// document structure, such as PDF. Well-known tag names are TagDest
// and TagLink; attributes use cairo's key=value syntax.
func (c *Context) TagBegin(name, attributes string) {
	cname := C.CString(name)
	defer freeString(cname)
	cattrs := C.CString(attributes)
	defer freeString(cattrs)
	C.cairo_tag_begin(c.handle(), cname, cattrs)
}

// TagEnd closes the structure tag opened with the same name.
func (c *Context) TagEnd(name string) {
	cname := C.CString(name)
	defer freeString(cname)
	C.cairo_tag_end(c.handle(), cname)
}

// Well-known tag names for TagBegin.
const (
	TagDest = "cairo.dest"
	TagLink = "Link"
)
