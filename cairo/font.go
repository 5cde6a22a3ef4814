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

// FontSlant is the slant of a toy font face.
type FontSlant int

const (
	FontSlantNormal  FontSlant = C.CAIRO_FONT_SLANT_NORMAL
	FontSlantItalic  FontSlant = C.CAIRO_FONT_SLANT_ITALIC
	FontSlantOblique FontSlant = C.CAIRO_FONT_SLANT_OBLIQUE
)

// FontWeight is the weight of a toy font face.
type FontWeight int

const (
	FontWeightNormal FontWeight = C.CAIRO_FONT_WEIGHT_NORMAL
	FontWeightBold   FontWeight = C.CAIRO_FONT_WEIGHT_BOLD
)

// FontType identifies the font backend behind a font face.
type FontType int

const (
	FontTypeToy    FontType = C.CAIRO_FONT_TYPE_TOY
	FontTypeFT     FontType = C.CAIRO_FONT_TYPE_FT
	FontTypeWin32  FontType = C.CAIRO_FONT_TYPE_WIN32
	FontTypeQuartz FontType = C.CAIRO_FONT_TYPE_QUARTZ
	FontTypeUser   FontType = C.CAIRO_FONT_TYPE_USER
)

// FontFace is an unscaled font. The toy API produces faces from
// family names; platform font backends produce them from font files.
type FontFace struct {
	ptr     *C.cairo_font_face_t
	cleanup runtime.Cleanup
}

func releaseFontFace(p unsafe.Pointer) {
	C.cairo_font_face_destroy((*C.cairo_font_face_t)(p))
}

// wrapFontFace takes ownership of one native reference.
func wrapFontFace(p *C.cairo_font_face_t) *FontFace {
	f := &FontFace{ptr: p}
	f.cleanup = addCleanup(f, "FontFace", unsafe.Pointer(p), releaseFontFace)
	traceHandle("create", "FontFace", unsafe.Pointer(p))
	return f
}

func wrapFontFaceBorrowed(p *C.cairo_font_face_t) *FontFace {
	return wrapFontFace(C.cairo_font_face_reference(p))
}

func (f *FontFace) handle() *C.cairo_font_face_t {
	if f.ptr == nil {
		closedPanic("FontFace")
	}
	return f.ptr
}

// Err returns the sticky status of the face as an error, or nil.
func (f *FontFace) Err() error {
	return statusErr(C.cairo_font_face_status(f.handle()))
}

// Close releases the native reference. Close is idempotent.
func (f *FontFace) Close() error {
	if f.ptr == nil {
		return nil
	}
	err := statusErr(C.cairo_font_face_status(f.ptr))
	f.cleanup.Stop()
	traceHandle("close", "FontFace", unsafe.Pointer(f.ptr))
	C.cairo_font_face_destroy(f.ptr)
	f.ptr = nil
	return err
}

// Type returns the backend the face belongs to.
func (f *FontFace) Type() FontType {
	return FontType(C.cairo_font_face_get_type(f.handle()))
}

// ToyFontFace is a font face selected by family name through the
// platform's font system.
type ToyFontFace struct {
	*FontFace
}

// NewToyFontFace creates a font face from a family name and style.
// The empty family selects the platform default.
func NewToyFontFace(family string, slant FontSlant, weight FontWeight) *ToyFontFace {
	cfamily := C.CString(family)
	defer freeString(cfamily)
	p := C.cairo_toy_font_face_create(cfamily, C.cairo_font_slant_t(slant), C.cairo_font_weight_t(weight))
	return &ToyFontFace{FontFace: wrapFontFace(p)}
}

// Family returns the family the face was selected by.
func (f *ToyFontFace) Family() string {
	return C.GoString(C.cairo_toy_font_face_get_family(f.handle()))
}

// Slant returns the slant the face was selected by.
func (f *ToyFontFace) Slant() FontSlant {
	return FontSlant(C.cairo_toy_font_face_get_slant(f.handle()))
}

// Weight returns the weight the face was selected by.
func (f *ToyFontFace) Weight() FontWeight {
	return FontWeight(C.cairo_toy_font_face_get_weight(f.handle()))
}

// ScaledFont is a font face scaled by a font matrix and a CTM, with
// rendering options applied. It is the object glyph metrics come
// from.
type ScaledFont struct {
	ptr     *C.cairo_scaled_font_t
	cleanup runtime.Cleanup
}

func releaseScaledFont(p unsafe.Pointer) {
	C.cairo_scaled_font_destroy((*C.cairo_scaled_font_t)(p))
}

// wrapScaledFont takes ownership of one native reference.
func wrapScaledFont(p *C.cairo_scaled_font_t) *ScaledFont {
	f := &ScaledFont{ptr: p}
	f.cleanup = addCleanup(f, "ScaledFont", unsafe.Pointer(p), releaseScaledFont)
	traceHandle("create", "ScaledFont", unsafe.Pointer(p))
	return f
}

func wrapScaledFontBorrowed(p *C.cairo_scaled_font_t) *ScaledFont {
	return wrapScaledFont(C.cairo_scaled_font_reference(p))
}

// NewScaledFont creates a scaled font from a face, the font matrix
// mapping glyph space to user space, the user to device matrix, and
// rendering options.
func NewScaledFont(face *FontFace, fontMatrix, ctm Matrix, options *FontOptions) *ScaledFont {
	return wrapScaledFont(C.cairo_scaled_font_create(face.handle(), fontMatrix.cPtr(), ctm.cPtr(), options.handle()))
}

func (f *ScaledFont) handle() *C.cairo_scaled_font_t {
	if f.ptr == nil {
		closedPanic("ScaledFont")
	}
	return f.ptr
}

// Err returns the sticky status of the scaled font as an error, or
// nil.
func (f *ScaledFont) Err() error {
	return statusErr(C.cairo_scaled_font_status(f.handle()))
}

// Close releases the native reference. Close is idempotent.
func (f *ScaledFont) Close() error {
	if f.ptr == nil {
		return nil
	}
	err := statusErr(C.cairo_scaled_font_status(f.ptr))
	f.cleanup.Stop()
	traceHandle("close", "ScaledFont", unsafe.Pointer(f.ptr))
	C.cairo_scaled_font_destroy(f.ptr)
	f.ptr = nil
	return err
}

// Type returns the backend the scaled font belongs to.
func (f *ScaledFont) Type() FontType {
	return FontType(C.cairo_scaled_font_get_type(f.handle()))
}

// FontFace returns the face the scaled font was created from.
func (f *ScaledFont) FontFace() *FontFace {
	return wrapFontFaceBorrowed(C.cairo_scaled_font_get_font_face(f.handle()))
}

// FontMatrix returns the glyph space to user space matrix.
func (f *ScaledFont) FontMatrix() Matrix {
	var m Matrix
	C.cairo_scaled_font_get_font_matrix(f.handle(), m.cPtr())
	return m
}

// CTM returns the user to device matrix the font was created with.
func (f *ScaledFont) CTM() Matrix {
	var m Matrix
	C.cairo_scaled_font_get_ctm(f.handle(), m.cPtr())
	return m
}

// ScaleMatrix returns the font matrix multiplied with the CTM, the
// full glyph space to device space transform.
func (f *ScaledFont) ScaleMatrix() Matrix {
	var m Matrix
	C.cairo_scaled_font_get_scale_matrix(f.handle(), m.cPtr())
	return m
}

// FontOptions returns the rendering options the font was created
// with.
func (f *ScaledFont) FontOptions() *FontOptions {
	o := NewFontOptions()
	C.cairo_scaled_font_get_font_options(f.handle(), o.handle())
	return o
}

// Extents returns the metrics of the font.
func (f *ScaledFont) Extents() FontExtents {
	var e FontExtents
	C.cairo_scaled_font_extents(f.handle(), (*C.cairo_font_extents_t)(unsafe.Pointer(&e)))
	return e
}

// TextExtents returns the metrics of text as it would be drawn.
func (f *ScaledFont) TextExtents(text string) TextExtents {
	ctext := C.CString(text)
	defer freeString(ctext)
	var e TextExtents
	C.cairo_scaled_font_text_extents(f.handle(), ctext, (*C.cairo_text_extents_t)(unsafe.Pointer(&e)))
	return e
}

// GlyphExtents returns the metrics of the glyphs as they would be
// drawn.
func (f *ScaledFont) GlyphExtents(glyphs []Glyph) TextExtents {
	var e TextExtents
	if len(glyphs) == 0 {
		return e
	}
	cglyphs := glyphsToC(glyphs)
	defer C.cairo_glyph_free(cglyphs)
	C.cairo_scaled_font_glyph_extents(f.handle(), cglyphs, C.int(len(glyphs)), (*C.cairo_text_extents_t)(unsafe.Pointer(&e)))
	return e
}

// TextToGlyphs converts text to positioned glyphs using the font's
// own shaping, starting at the glyph origin x, y. It also returns
// the cluster mapping consumed by Context.ShowTextGlyphs.
func (f *ScaledFont) TextToGlyphs(x, y float64, text string) ([]Glyph, []TextCluster, TextClusterFlags, error) {
	ctext := C.CString(text)
	defer freeString(ctext)
	var (
		cglyphs   *C.cairo_glyph_t
		nglyphs   C.int
		cclusters *C.cairo_text_cluster_t
		nclusters C.int
		flags     C.cairo_text_cluster_flags_t
	)
	status := C.cairo_scaled_font_text_to_glyphs(
		f.handle(), C.double(x), C.double(y),
		ctext, C.int(len(text)),
		&cglyphs, &nglyphs,
		&cclusters, &nclusters, &flags,
	)
	if err := statusErr(status); err != nil {
		return nil, nil, 0, err
	}
	defer C.cairo_glyph_free(cglyphs)
	defer C.cairo_text_cluster_free(cclusters)
	return glyphsFromC(cglyphs, nglyphs), clustersFromC(cclusters, nclusters), TextClusterFlags(flags), nil
}
