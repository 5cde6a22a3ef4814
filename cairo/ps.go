// SPDX-License-Identifier: Unlicense OR MIT

package cairo

/*
#cgo pkg-config: cairo-ps

#include <cairo-ps.h>
#include <stdint.h>

extern cairo_status_t gocairo_write(void *closure, unsigned char *data, unsigned int length);

static cairo_surface_t *
gocairo_ps_surface_create_stream(uintptr_t closure, double width, double height)
{
	return cairo_ps_surface_create_for_stream((cairo_write_func_t)gocairo_write, (void *)closure, width, height);
}
*/
import "C"

import (
	"fmt"
	"io"
	"unsafe"
)

// PSLevel restricts the PostScript language level a PS surface emits.
type PSLevel int

const (
	PSLevel2 PSLevel = C.CAIRO_PS_LEVEL_2
	PSLevel3 PSLevel = C.CAIRO_PS_LEVEL_3
)

func (l PSLevel) String() string {
	s := C.cairo_ps_level_to_string(C.cairo_ps_level_t(l))
	if s == nil {
		return fmt.Sprintf("pslevel(%d)", int(l))
	}
	return C.GoString(s)
}

// PSLevels returns the PostScript levels the library can emit.
func PSLevels() []PSLevel {
	var levels *C.cairo_ps_level_t
	var n C.int
	C.cairo_ps_get_levels(&levels, &n)
	if n <= 0 {
		return nil
	}
	out := make([]PSLevel, int(n))
	for i, l := range unsafe.Slice(levels, int(n)) {
		out[i] = PSLevel(l)
	}
	return out
}

// PSSurface is a paginated surface emitting PostScript. Sizes are in
// points (1/72 inch).
type PSSurface struct {
	*Surface
}

// NewPSSurface creates a PostScript surface writing to the given
// file.
func NewPSSurface(path string, widthPt, heightPt float64) *PSSurface {
	cpath := C.CString(path)
	defer freeString(cpath)
	p := C.cairo_ps_surface_create(cpath, C.double(widthPt), C.double(heightPt))
	return &PSSurface{Surface: wrapSurface(p)}
}

// NewPSSurfaceWriter creates a PostScript surface emitting the
// document to w. Write errors surface from Close.
func NewPSSurfaceWriter(w io.Writer, widthPt, heightPt float64) *PSSurface {
	c := newWriteClosure(w)
	p := C.gocairo_ps_surface_create_stream(C.uintptr_t(c.closure()), C.double(widthPt), C.double(heightPt))
	return &PSSurface{Surface: newSurface(p, c, nil)}
}

// RestrictToLevel limits the output to features of the given
// language level. Must be called before any drawing.
func (s *PSSurface) RestrictToLevel(l PSLevel) {
	C.cairo_ps_surface_restrict_to_level(s.handle(), C.cairo_ps_level_t(l))
}

// SetEPS switches the surface between Encapsulated PostScript (one
// page) and plain PostScript output.
func (s *PSSurface) SetEPS(eps bool) {
	v := C.cairo_bool_t(0)
	if eps {
		v = 1
	}
	C.cairo_ps_surface_set_eps(s.handle(), v)
}

// EPS reports whether the surface emits Encapsulated PostScript.
func (s *PSSurface) EPS() bool {
	return C.cairo_ps_surface_get_eps(s.handle()) != 0
}

// SetSize changes the page size. Takes effect from the next page; on
// a fresh surface or directly after ShowPage it applies to the
// current page.
func (s *PSSurface) SetSize(widthPt, heightPt float64) {
	C.cairo_ps_surface_set_size(s.handle(), C.double(widthPt), C.double(heightPt))
}

// DSCComment emits a document structuring convention comment into the
// output, into the section selected by DSCBeginSetup and
// DSCBeginPageSetup.
func (s *PSSurface) DSCComment(comment string) {
	ccomment := C.CString(comment)
	defer freeString(ccomment)
	C.cairo_ps_surface_dsc_comment(s.handle(), ccomment)
}

// DSCBeginSetup directs following DSCComment calls to the Setup
// section.
func (s *PSSurface) DSCBeginSetup() {
	C.cairo_ps_surface_dsc_begin_setup(s.handle())
}

// DSCBeginPageSetup directs following DSCComment calls to the
// PageSetup section of the current page.
func (s *PSSurface) DSCBeginPageSetup() {
	C.cairo_ps_surface_dsc_begin_page_setup(s.handle())
}
