// SPDX-License-Identifier: Unlicense OR MIT

package cairo

/*
#include <cairo.h>
*/
import "C"

import "unsafe"

// Content describes which channels of a surface carry meaning.
// It is used when creating surfaces and transparency groups.
type Content int

const (
	ContentColor      Content = C.CAIRO_CONTENT_COLOR
	ContentAlpha      Content = C.CAIRO_CONTENT_ALPHA
	ContentColorAlpha Content = C.CAIRO_CONTENT_COLOR_ALPHA
)

// String returns the constant name of c.
func (c Content) String() string {
	switch c {
	case ContentColor:
		return "color"
	case ContentAlpha:
		return "alpha"
	case ContentColorAlpha:
		return "color-alpha"
	default:
		return "unknown"
	}
}

// Point is a location in user space.
type Point struct {
	X, Y float64
}

// Rectangle is an axis-aligned rectangle with floating point
// coordinates. The field layout mirrors cairo_rectangle_t so values
// pass to and from the native library unchanged.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

func (r *Rectangle) cPtr() *C.cairo_rectangle_t {
	return (*C.cairo_rectangle_t)(unsafe.Pointer(r))
}

// RectangleInt is an axis-aligned rectangle with integer coordinates.
// The field layout mirrors cairo_rectangle_int_t.
type RectangleInt struct {
	X, Y          int32
	Width, Height int32
}

func (r *RectangleInt) cPtr() *C.cairo_rectangle_int_t {
	return (*C.cairo_rectangle_int_t)(unsafe.Pointer(r))
}

// TextExtents describes the metrics of a span of rendered text.
// The field layout mirrors cairo_text_extents_t.
type TextExtents struct {
	XBearing, YBearing float64
	Width, Height      float64
	XAdvance, YAdvance float64
}

// FontExtents describes the metrics of a font at a particular scale.
// The field layout mirrors cairo_font_extents_t.
type FontExtents struct {
	Ascent, Descent float64
	Height          float64
	MaxXAdvance     float64
	MaxYAdvance     float64
}

// Glyph is a single glyph positioned in user space. Index names a
// glyph within the font; X and Y place its origin.
//
// Glyph slices are marshaled into native glyph arrays by copy, so the
// Go type does not need to mirror the platform-dependent layout of
// cairo_glyph_t.
type Glyph struct {
	Index uint64
	X, Y  float64
}

// TextCluster maps a run of UTF-8 bytes to a run of glyphs when
// showing text with ShowTextGlyphs.
type TextCluster struct {
	NumBytes  int
	NumGlyphs int
}

// TextClusterFlags alters the interpretation of a cluster mapping.
type TextClusterFlags int

const (
	// TextClusterBackward indicates that the glyphs in each cluster
	// run in reverse byte order, as for right-to-left scripts.
	TextClusterBackward TextClusterFlags = C.CAIRO_TEXT_CLUSTER_FLAG_BACKWARD
)
