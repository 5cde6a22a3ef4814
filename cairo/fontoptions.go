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

// SubpixelOrder is the order of color elements within a pixel, used
// for subpixel antialiasing.
type SubpixelOrder int

const (
	SubpixelOrderDefault SubpixelOrder = C.CAIRO_SUBPIXEL_ORDER_DEFAULT
	SubpixelOrderRGB     SubpixelOrder = C.CAIRO_SUBPIXEL_ORDER_RGB
	SubpixelOrderBGR     SubpixelOrder = C.CAIRO_SUBPIXEL_ORDER_BGR
	SubpixelOrderVRGB    SubpixelOrder = C.CAIRO_SUBPIXEL_ORDER_VRGB
	SubpixelOrderVBGR    SubpixelOrder = C.CAIRO_SUBPIXEL_ORDER_VBGR
)

// HintStyle is the amount of font outline hinting applied.
type HintStyle int

const (
	HintStyleDefault HintStyle = C.CAIRO_HINT_STYLE_DEFAULT
	HintStyleNone    HintStyle = C.CAIRO_HINT_STYLE_NONE
	HintStyleSlight  HintStyle = C.CAIRO_HINT_STYLE_SLIGHT
	HintStyleMedium  HintStyle = C.CAIRO_HINT_STYLE_MEDIUM
	HintStyleFull    HintStyle = C.CAIRO_HINT_STYLE_FULL
)

// HintMetrics controls whether font metrics are rounded to integer
// device units.
type HintMetrics int

const (
	HintMetricsDefault HintMetrics = C.CAIRO_HINT_METRICS_DEFAULT
	HintMetricsOff     HintMetrics = C.CAIRO_HINT_METRICS_OFF
	HintMetricsOn      HintMetrics = C.CAIRO_HINT_METRICS_ON
)

// FontOptions bundle the rendering choices applied when fonts are
// scaled and rasterized. Unlike the other handle types they are not
// reference counted; Copy makes independent clones.
type FontOptions struct {
	ptr     *C.cairo_font_options_t
	cleanup runtime.Cleanup
}

func releaseFontOptions(p unsafe.Pointer) {
	C.cairo_font_options_destroy((*C.cairo_font_options_t)(p))
}

func wrapFontOptions(p *C.cairo_font_options_t) *FontOptions {
	o := &FontOptions{ptr: p}
	o.cleanup = addCleanup(o, "FontOptions", unsafe.Pointer(p), releaseFontOptions)
	return o
}

// NewFontOptions creates font options with all fields set to their
// defaults.
func NewFontOptions() *FontOptions {
	return wrapFontOptions(C.cairo_font_options_create())
}

func (o *FontOptions) handle() *C.cairo_font_options_t {
	if o.ptr == nil {
		closedPanic("FontOptions")
	}
	return o.ptr
}

// Err returns the sticky status of the options as an error, or nil.
func (o *FontOptions) Err() error {
	return statusErr(C.cairo_font_options_status(o.handle()))
}

// Close frees the native object. Close is idempotent.
func (o *FontOptions) Close() error {
	if o.ptr == nil {
		return nil
	}
	err := statusErr(C.cairo_font_options_status(o.ptr))
	o.cleanup.Stop()
	C.cairo_font_options_destroy(o.ptr)
	o.ptr = nil
	return err
}

// Copy returns an independent copy of the options.
func (o *FontOptions) Copy() *FontOptions {
	return wrapFontOptions(C.cairo_font_options_copy(o.handle()))
}

// Merge overwrites every non-default field of o with the value from
// other.
func (o *FontOptions) Merge(other *FontOptions) {
	C.cairo_font_options_merge(o.handle(), other.handle())
}

// Equal reports whether both options hold the same values.
func (o *FontOptions) Equal(other *FontOptions) bool {
	return C.cairo_font_options_equal(o.handle(), other.handle()) != 0
}

// Hash returns a hash of the options. Equal options hash alike.
func (o *FontOptions) Hash() uint64 {
	return uint64(C.cairo_font_options_hash(o.handle()))
}

// SetAntialias sets the antialiasing mode.
func (o *FontOptions) SetAntialias(a Antialias) {
	C.cairo_font_options_set_antialias(o.handle(), C.cairo_antialias_t(a))
}

// Antialias returns the antialiasing mode.
func (o *FontOptions) Antialias() Antialias {
	return Antialias(C.cairo_font_options_get_antialias(o.handle()))
}

// SetSubpixelOrder sets the pixel element order assumed for subpixel
// antialiasing.
func (o *FontOptions) SetSubpixelOrder(order SubpixelOrder) {
	C.cairo_font_options_set_subpixel_order(o.handle(), C.cairo_subpixel_order_t(order))
}

// SubpixelOrder returns the pixel element order.
func (o *FontOptions) SubpixelOrder() SubpixelOrder {
	return SubpixelOrder(C.cairo_font_options_get_subpixel_order(o.handle()))
}

// SetHintStyle sets the outline hinting style.
func (o *FontOptions) SetHintStyle(style HintStyle) {
	C.cairo_font_options_set_hint_style(o.handle(), C.cairo_hint_style_t(style))
}

// HintStyle returns the outline hinting style.
func (o *FontOptions) HintStyle() HintStyle {
	return HintStyle(C.cairo_font_options_get_hint_style(o.handle()))
}

// SetHintMetrics sets whether metrics are hinted.
func (o *FontOptions) SetHintMetrics(m HintMetrics) {
	C.cairo_font_options_set_hint_metrics(o.handle(), C.cairo_hint_metrics_t(m))
}

// HintMetrics returns whether metrics are hinted.
func (o *FontOptions) HintMetrics() HintMetrics {
	return HintMetrics(C.cairo_font_options_get_hint_metrics(o.handle()))
}

// SetVariations sets OpenType variation axes as a comma separated
// list of axis-value pairs, for example "wght=200,wdth=140.5". An
// empty string clears them.
func (o *FontOptions) SetVariations(variations string) {
	if variations == "" {
		C.cairo_font_options_set_variations(o.handle(), nil)
		return
	}
	cvars := C.CString(variations)
	defer freeString(cvars)
	C.cairo_font_options_set_variations(o.handle(), cvars)
}

// Variations returns the OpenType variation axes, or "".
func (o *FontOptions) Variations() string {
	s := C.cairo_font_options_get_variations(o.handle())
	if s == nil {
		return ""
	}
	return C.GoString(s)
}
