// SPDX-License-Identifier: Unlicense OR MIT

package cairo

/*
#include <cairo.h>
*/
import "C"

import "unsafe"

// glyphsToC copies glyphs into a native array allocated by the
// library. The caller frees it with cairo_glyph_free. Copying keeps
// the Go type independent of the platform layout of cairo_glyph_t.
func glyphsToC(glyphs []Glyph) *C.cairo_glyph_t {
	if len(glyphs) == 0 {
		return nil
	}
	p := C.cairo_glyph_allocate(C.int(len(glyphs)))
	if p == nil {
		panic("cairo: glyph allocation failed")
	}
	cg := unsafe.Slice(p, len(glyphs))
	for i, g := range glyphs {
		cg[i].index = C.ulong(g.Index)
		cg[i].x = C.double(g.X)
		cg[i].y = C.double(g.Y)
	}
	return p
}

func glyphsFromC(p *C.cairo_glyph_t, n C.int) []Glyph {
	if p == nil || n <= 0 {
		return nil
	}
	glyphs := make([]Glyph, int(n))
	for i, g := range unsafe.Slice(p, int(n)) {
		glyphs[i] = Glyph{Index: uint64(g.index), X: float64(g.x), Y: float64(g.y)}
	}
	return glyphs
}

func clustersToC(clusters []TextCluster) *C.cairo_text_cluster_t {
	if len(clusters) == 0 {
		return nil
	}
	p := C.cairo_text_cluster_allocate(C.int(len(clusters)))
	if p == nil {
		panic("cairo: text cluster allocation failed")
	}
	cc := unsafe.Slice(p, len(clusters))
	for i, cl := range clusters {
		cc[i].num_bytes = C.int(cl.NumBytes)
		cc[i].num_glyphs = C.int(cl.NumGlyphs)
	}
	return p
}

func clustersFromC(p *C.cairo_text_cluster_t, n C.int) []TextCluster {
	if p == nil || n <= 0 {
		return nil
	}
	clusters := make([]TextCluster, int(n))
	for i, cl := range unsafe.Slice(p, int(n)) {
		clusters[i] = TextCluster{NumBytes: int(cl.num_bytes), NumGlyphs: int(cl.num_glyphs)}
	}
	return clusters
}

// SelectFontFace sets the font from a family name and style through
// the toy font API.
func (c *Context) SelectFontFace(family string, slant FontSlant, weight FontWeight) {
	cfamily := C.CString(family)
	defer freeString(cfamily)
	C.cairo_select_font_face(c.handle(), cfamily, C.cairo_font_slant_t(slant), C.cairo_font_weight_t(weight))
}

// SetFontSize sets the font matrix to a uniform scale of size user
// space units per em.
func (c *Context) SetFontSize(size float64) {
	C.cairo_set_font_size(c.handle(), C.double(size))
}

// SetFontMatrix sets the full glyph space to user space matrix.
func (c *Context) SetFontMatrix(m Matrix) {
	C.cairo_set_font_matrix(c.handle(), m.cPtr())
}

// FontMatrix returns the glyph space to user space matrix.
func (c *Context) FontMatrix() Matrix {
	var m Matrix
	C.cairo_get_font_matrix(c.handle(), m.cPtr())
	return m
}

// SetFontOptions sets the font rendering options.
func (c *Context) SetFontOptions(o *FontOptions) {
	C.cairo_set_font_options(c.handle(), o.handle())
}

// FontOptions returns the font rendering options set on the context,
// without the defaults the target surface would merge in.
func (c *Context) FontOptions() *FontOptions {
	o := NewFontOptions()
	C.cairo_get_font_options(c.handle(), o.handle())
	return o
}

// SetFontFace sets the font face, replacing any toy font selection.
func (c *Context) SetFontFace(f *FontFace) {
	C.cairo_set_font_face(c.handle(), f.handle())
}

// FontFace returns the current font face.
func (c *Context) FontFace() *FontFace {
	return wrapFontFaceBorrowed(C.cairo_get_font_face(c.handle()))
}

// SetScaledFont replaces font face, font matrix and font options with
// those of f.
func (c *Context) SetScaledFont(f *ScaledFont) {
	C.cairo_set_scaled_font(c.handle(), f.handle())
}

// ScaledFont returns the current scaled font.
func (c *Context) ScaledFont() *ScaledFont {
	return wrapScaledFontBorrowed(C.cairo_get_scaled_font(c.handle()))
}

// ShowText draws text with the current font at the current point,
// advancing it like a typewriter. Shaping is the font's own; complex
// scripts need a real shaper feeding ShowGlyphs.
func (c *Context) ShowText(text string) {
	ctext := C.CString(text)
	defer freeString(ctext)
	C.cairo_show_text(c.handle(), ctext)
}

// ShowGlyphs draws positioned glyphs with the current font.
func (c *Context) ShowGlyphs(glyphs []Glyph) {
	if len(glyphs) == 0 {
		return
	}
	cglyphs := glyphsToC(glyphs)
	defer C.cairo_glyph_free(cglyphs)
	C.cairo_show_glyphs(c.handle(), cglyphs, C.int(len(glyphs)))
}

// ShowTextGlyphs draws positioned glyphs and hands the backend the
// mapping back to the original text, letting PDF output stay
// searchable and copyable.
func (c *Context) ShowTextGlyphs(text string, glyphs []Glyph, clusters []TextCluster, flags TextClusterFlags) {
	ctext := C.CString(text)
	defer freeString(ctext)
	cglyphs := glyphsToC(glyphs)
	defer C.cairo_glyph_free(cglyphs)
	cclusters := clustersToC(clusters)
	defer C.cairo_text_cluster_free(cclusters)
	C.cairo_show_text_glyphs(
		c.handle(),
		ctext, C.int(len(text)),
		cglyphs, C.int(len(glyphs)),
		cclusters, C.int(len(clusters)),
		C.cairo_text_cluster_flags_t(flags),
	)
}

// TextPath adds the outlines of text to the current path.
func (c *Context) TextPath(text string) {
	ctext := C.CString(text)
	defer freeString(ctext)
	C.cairo_text_path(c.handle(), ctext)
}

// GlyphPath adds the outlines of the glyphs to the current path.
func (c *Context) GlyphPath(glyphs []Glyph) {
	if len(glyphs) == 0 {
		return
	}
	cglyphs := glyphsToC(glyphs)
	defer C.cairo_glyph_free(cglyphs)
	C.cairo_glyph_path(c.handle(), cglyphs, C.int(len(glyphs)))
}

// TextExtents returns the metrics of text under the current font.
func (c *Context) TextExtents(text string) TextExtents {
	ctext := C.CString(text)
	defer freeString(ctext)
	var e TextExtents
	C.cairo_text_extents(c.handle(), ctext, (*C.cairo_text_extents_t)(unsafe.Pointer(&e)))
	return e
}

// GlyphExtents returns the metrics of the glyphs under the current
// font.
func (c *Context) GlyphExtents(glyphs []Glyph) TextExtents {
	var e TextExtents
	if len(glyphs) == 0 {
		return e
	}
	cglyphs := glyphsToC(glyphs)
	defer C.cairo_glyph_free(cglyphs)
	C.cairo_glyph_extents(c.handle(), cglyphs, C.int(len(glyphs)), (*C.cairo_text_extents_t)(unsafe.Pointer(&e)))
	return e
}

// FontExtents returns the metrics of the current font.
func (c *Context) FontExtents() FontExtents {
	var e FontExtents
	C.cairo_font_extents(c.handle(), (*C.cairo_font_extents_t)(unsafe.Pointer(&e)))
	return e
}
