// SPDX-License-Identifier: Unlicense OR MIT

package cairo

/*
#cgo pkg-config: cairo-svg

#include <cairo-svg.h>
#include <stdint.h>

extern cairo_status_t gocairo_write(void *closure, unsigned char *data, unsigned int length);

static cairo_surface_t *
gocairo_svg_surface_create_stream(uintptr_t closure, double width, double height)
{
	return cairo_svg_surface_create_for_stream((cairo_write_func_t)gocairo_write, (void *)closure, width, height);
}
*/
import "C"

import (
	"fmt"
	"io"
	"unsafe"
)

// SVGVersion restricts the SVG version an SVG surface emits.
type SVGVersion int

const (
	SVGVersion11 SVGVersion = C.CAIRO_SVG_VERSION_1_1
	SVGVersion12 SVGVersion = C.CAIRO_SVG_VERSION_1_2
)

func (v SVGVersion) String() string {
	s := C.cairo_svg_version_to_string(C.cairo_svg_version_t(v))
	if s == nil {
		return fmt.Sprintf("svgversion(%d)", int(v))
	}
	return C.GoString(s)
}

// SVGVersions returns the SVG versions the library can emit.
func SVGVersions() []SVGVersion {
	var versions *C.cairo_svg_version_t
	var n C.int
	C.cairo_svg_get_versions(&versions, &n)
	if n <= 0 {
		return nil
	}
	out := make([]SVGVersion, int(n))
	for i, v := range unsafe.Slice(versions, int(n)) {
		out[i] = SVGVersion(v)
	}
	return out
}

// SVGUnit is the length unit written into the SVG document's width
// and height attributes.
type SVGUnit int

const (
	SVGUnitUser    SVGUnit = C.CAIRO_SVG_UNIT_USER
	SVGUnitEm      SVGUnit = C.CAIRO_SVG_UNIT_EM
	SVGUnitEx      SVGUnit = C.CAIRO_SVG_UNIT_EX
	SVGUnitPx      SVGUnit = C.CAIRO_SVG_UNIT_PX
	SVGUnitIn      SVGUnit = C.CAIRO_SVG_UNIT_IN
	SVGUnitCm      SVGUnit = C.CAIRO_SVG_UNIT_CM
	SVGUnitMm      SVGUnit = C.CAIRO_SVG_UNIT_MM
	SVGUnitPt      SVGUnit = C.CAIRO_SVG_UNIT_PT
	SVGUnitPc      SVGUnit = C.CAIRO_SVG_UNIT_PC
	SVGUnitPercent SVGUnit = C.CAIRO_SVG_UNIT_PERCENT
)

// SVGSurface is a surface emitting a single page SVG document. Sizes
// are in points (1/72 inch) unless SetDocumentUnit changes the unit.
type SVGSurface struct {
	*Surface
}

// NewSVGSurface creates an SVG surface writing to the given file.
func NewSVGSurface(path string, widthPt, heightPt float64) *SVGSurface {
	cpath := C.CString(path)
	defer freeString(cpath)
	p := C.cairo_svg_surface_create(cpath, C.double(widthPt), C.double(heightPt))
	return &SVGSurface{Surface: wrapSurface(p)}
}

// NewSVGSurfaceWriter creates an SVG surface emitting the document to
// w. Write errors surface from Close.
func NewSVGSurfaceWriter(w io.Writer, widthPt, heightPt float64) *SVGSurface {
	c := newWriteClosure(w)
	p := C.gocairo_svg_surface_create_stream(C.uintptr_t(c.closure()), C.double(widthPt), C.double(heightPt))
	return &SVGSurface{Surface: newSurface(p, c, nil)}
}

// RestrictToVersion limits the output to features of the given SVG
// version. Must be called before any drawing.
func (s *SVGSurface) RestrictToVersion(v SVGVersion) {
	C.cairo_svg_surface_restrict_to_version(s.handle(), C.cairo_svg_version_t(v))
}

// SetDocumentUnit sets the unit of the width and height attributes of
// the emitted document.
func (s *SVGSurface) SetDocumentUnit(u SVGUnit) {
	C.cairo_svg_surface_set_document_unit(s.handle(), C.cairo_svg_unit_t(u))
}

// DocumentUnit returns the unit of the emitted document.
func (s *SVGSurface) DocumentUnit() SVGUnit {
	return SVGUnit(C.cairo_svg_surface_get_document_unit(s.handle()))
}
