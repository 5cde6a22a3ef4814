// SPDX-License-Identifier: Unlicense OR MIT

package cairo

/*
#include <cairo.h>
#include <stdlib.h>
#include <string.h>

static cairo_status_t
gocairo_surface_set_mime_data_copy(cairo_surface_t *surface, const char *mime,
                                   const unsigned char *data, unsigned long length)
{
	unsigned char *copy = NULL;
	if (length > 0) {
		copy = malloc(length);
		if (copy == NULL)
			return CAIRO_STATUS_NO_MEMORY;
		memcpy(copy, data, length);
	}
	return cairo_surface_set_mime_data(surface, mime, copy, length, free, copy);
}
*/
import "C"

import (
	"errors"
	"runtime"
	"runtime/cgo"
	"unsafe"
)

// SurfaceType identifies the backend of a surface.
type SurfaceType int

const (
	SurfaceTypeImage         SurfaceType = C.CAIRO_SURFACE_TYPE_IMAGE
	SurfaceTypePDF           SurfaceType = C.CAIRO_SURFACE_TYPE_PDF
	SurfaceTypePS            SurfaceType = C.CAIRO_SURFACE_TYPE_PS
	SurfaceTypeSVG           SurfaceType = C.CAIRO_SURFACE_TYPE_SVG
	SurfaceTypeRecording     SurfaceType = C.CAIRO_SURFACE_TYPE_RECORDING
	SurfaceTypeScript        SurfaceType = C.CAIRO_SURFACE_TYPE_SCRIPT
	SurfaceTypeSubsurface    SurfaceType = C.CAIRO_SURFACE_TYPE_SUBSURFACE
	SurfaceTypeXlib          SurfaceType = C.CAIRO_SURFACE_TYPE_XLIB
	SurfaceTypeXCB           SurfaceType = C.CAIRO_SURFACE_TYPE_XCB
	SurfaceTypeWin32         SurfaceType = C.CAIRO_SURFACE_TYPE_WIN32
	SurfaceTypeQuartz        SurfaceType = C.CAIRO_SURFACE_TYPE_QUARTZ
	SurfaceTypeWin32Printing SurfaceType = C.CAIRO_SURFACE_TYPE_WIN32_PRINTING
	SurfaceTypeQuartzImage   SurfaceType = C.CAIRO_SURFACE_TYPE_QUARTZ_IMAGE
)

// MIME types accepted by SetMIMEData.
const (
	MimeTypeJPEG           = "image/jpeg"
	MimeTypePNG            = "image/png"
	MimeTypeJP2            = "image/jp2"
	MimeTypeURI            = "text/x-uri"
	MimeTypeUniqueID       = "application/x-cairo.uuid"
	MimeTypeJBIG2          = "application/x-cairo.jbig2"
	MimeTypeJBIG2Global    = "application/x-cairo.jbig2-global"
	MimeTypeJBIG2GlobalID  = "application/x-cairo.jbig2-global-id"
	MimeTypeCCITTFax       = "image/g3fax"
	MimeTypeCCITTFaxParams = "application/x-cairo.ccitt.params"
	MimeTypeEPS            = "application/postscript"
	MimeTypeEPSParams      = "application/x-cairo.eps.params"
)

// pinnedData keeps a Go buffer pinned while the native library reads
// and writes it.
type pinnedData struct {
	pin  runtime.Pinner
	data []byte
}

// surfaceRelease is the state a surface cleanup needs when the
// wrapper is collected without Close: the native reference, the
// stream closure handle (if writer-backed) and the pinned buffer (if
// data-backed). The cleanup must not reference the wrapper itself.
type surfaceRelease struct {
	ptr    *C.cairo_surface_t
	stream cgo.Handle
	pin    *pinnedData
}

func (r surfaceRelease) release() {
	// Destroying a writer-backed surface finishes it, which can still
	// invoke the write callback, so the closure handle must outlive
	// the destroy call.
	C.cairo_surface_destroy(r.ptr)
	if r.stream != 0 {
		r.stream.Delete()
	}
	if r.pin != nil {
		r.pin.pin.Unpin()
	}
}

// Surface is the destination of drawing. Concrete constructors exist
// for image, PDF, PostScript, SVG, recording and script surfaces;
// surfaces of any backend obtained from other objects are represented
// by Surface itself.
type Surface struct {
	ptr     *C.cairo_surface_t
	cleanup runtime.Cleanup
	stream  *streamClosure
	pin     *pinnedData
}

// newSurface takes ownership of one native reference.
func newSurface(p *C.cairo_surface_t, stream *streamClosure, pin *pinnedData) *Surface {
	s := &Surface{ptr: p, stream: stream, pin: pin}
	rel := surfaceRelease{ptr: p, pin: pin}
	if stream != nil {
		rel.stream = stream.handle
	}
	s.cleanup = runtime.AddCleanup(s, func(r surfaceRelease) {
		logLeak("Surface", unsafe.Pointer(r.ptr))
		r.release()
	}, rel)
	traceHandle("create", "Surface", unsafe.Pointer(p))
	return s
}

func wrapSurface(p *C.cairo_surface_t) *Surface {
	return newSurface(p, nil, nil)
}

// wrapSurfaceBorrowed wraps a pointer owned by someone else, taking a
// fresh reference so Close stays uniform.
func wrapSurfaceBorrowed(p *C.cairo_surface_t) *Surface {
	return wrapSurface(C.cairo_surface_reference(p))
}

func (s *Surface) handle() *C.cairo_surface_t {
	if s.ptr == nil {
		closedPanic("Surface")
	}
	return s.ptr
}

// Err returns the sticky status of the surface as an error, or nil.
func (s *Surface) Err() error {
	return statusErr(C.cairo_surface_status(s.handle()))
}

// Close finishes the surface, releases its native reference and
// returns any sticky or output error. For surfaces writing to an
// io.Writer the returned error includes write failures that occurred
// while emitting buffered output. Close is idempotent.
func (s *Surface) Close() error {
	if s.ptr == nil {
		return nil
	}
	C.cairo_surface_finish(s.ptr)
	err := statusErr(C.cairo_surface_status(s.ptr))
	if s.stream != nil {
		err = errors.Join(s.stream.err, err)
	}
	s.cleanup.Stop()
	traceHandle("close", "Surface", unsafe.Pointer(s.ptr))
	C.cairo_surface_destroy(s.ptr)
	s.ptr = nil
	if s.stream != nil {
		s.stream.handle.Delete()
		s.stream = nil
	}
	if s.pin != nil {
		s.pin.pin.Unpin()
		s.pin = nil
	}
	return err
}

// Finish ends all drawing to the surface and flushes any pending
// output. The wrapper stays open: metadata queries keep working until
// Close.
func (s *Surface) Finish() {
	C.cairo_surface_finish(s.handle())
}

// Flush completes any pending drawing so the surface's backing store
// is consistent. Required before reading image data.
func (s *Surface) Flush() {
	C.cairo_surface_flush(s.handle())
}

// Type returns the backend type of the surface.
func (s *Surface) Type() SurfaceType {
	return SurfaceType(C.cairo_surface_get_type(s.handle()))
}

// Content returns which channels of the surface carry meaning.
func (s *Surface) Content() Content {
	return Content(C.cairo_surface_get_content(s.handle()))
}

// Device returns the device of the surface, or nil if it has none.
func (s *Surface) Device() *Device {
	d := C.cairo_surface_get_device(s.handle())
	if d == nil {
		return nil
	}
	return wrapDeviceBorrowed(d)
}

// MarkDirty tells cairo the surface contents were changed outside of
// cairo.
func (s *Surface) MarkDirty() {
	C.cairo_surface_mark_dirty(s.handle())
}

// MarkDirtyRectangle is MarkDirty restricted to a device-space
// rectangle.
func (s *Surface) MarkDirtyRectangle(x, y, width, height int) {
	C.cairo_surface_mark_dirty_rectangle(s.handle(), C.int(x), C.int(y), C.int(width), C.int(height))
}

// SetDeviceOffset translates the device-space origin of the surface.
func (s *Surface) SetDeviceOffset(x, y float64) {
	C.cairo_surface_set_device_offset(s.handle(), C.double(x), C.double(y))
}

// DeviceOffset returns the device-space translation of the surface.
func (s *Surface) DeviceOffset() (x, y float64) {
	var cx, cy C.double
	C.cairo_surface_get_device_offset(s.handle(), &cx, &cy)
	return float64(cx), float64(cy)
}

// SetDeviceScale scales the device-space of the surface.
func (s *Surface) SetDeviceScale(x, y float64) {
	C.cairo_surface_set_device_scale(s.handle(), C.double(x), C.double(y))
}

// DeviceScale returns the device-space scale of the surface.
func (s *Surface) DeviceScale() (x, y float64) {
	var cx, cy C.double
	C.cairo_surface_get_device_scale(s.handle(), &cx, &cy)
	return float64(cx), float64(cy)
}

// SetFallbackResolution sets the resolution, in pixels per inch, used
// when a vector backend falls back to rasterization.
func (s *Surface) SetFallbackResolution(xPPI, yPPI float64) {
	C.cairo_surface_set_fallback_resolution(s.handle(), C.double(xPPI), C.double(yPPI))
}

// FallbackResolution returns the fallback rasterization resolution.
func (s *Surface) FallbackResolution() (xPPI, yPPI float64) {
	var cx, cy C.double
	C.cairo_surface_get_fallback_resolution(s.handle(), &cx, &cy)
	return float64(cx), float64(cy)
}

// CopyPage emits the current page without clearing it. Only paginated
// backends react to it.
func (s *Surface) CopyPage() {
	C.cairo_surface_copy_page(s.handle())
}

// ShowPage emits the current page and starts a new one.
func (s *Surface) ShowPage() {
	C.cairo_surface_show_page(s.handle())
}

// HasShowTextGlyphs reports whether the backend keeps the text-to-
// glyph mapping passed to ShowTextGlyphs instead of reducing it to
// plain glyphs.
func (s *Surface) HasShowTextGlyphs() bool {
	return C.cairo_surface_has_show_text_glyphs(s.handle()) != 0
}

// FontOptions returns the font options that should be merged into
// font rendering on this surface.
func (s *Surface) FontOptions() *FontOptions {
	o := NewFontOptions()
	C.cairo_surface_get_font_options(s.handle(), o.handle())
	return o
}

// CreateSimilar creates a surface with the given content and size
// that is as compatible as possible with s.
func (s *Surface) CreateSimilar(content Content, width, height int) *Surface {
	return wrapSurface(C.cairo_surface_create_similar(s.handle(), C.cairo_content_t(content), C.int(width), C.int(height)))
}

// CreateSimilarImage creates an image surface with the given format
// and size that is as compatible as possible with s.
func (s *Surface) CreateSimilarImage(format Format, width, height int) *ImageSurface {
	p := C.cairo_surface_create_similar_image(s.handle(), C.cairo_format_t(format), C.int(width), C.int(height))
	return &ImageSurface{Surface: newSurface(p, nil, nil)}
}

// CreateForRectangle creates a subsurface limited to a rectangle of
// s, for cropped drawing or sources. The subsurface keeps a reference
// to s.
func (s *Surface) CreateForRectangle(x, y, width, height float64) *Surface {
	return wrapSurface(C.cairo_surface_create_for_rectangle(s.handle(), C.double(x), C.double(y), C.double(width), C.double(height)))
}

// SetMIMEData attaches already-encoded image data to the surface.
// Vector backends embed the encoded form instead of re-encoding
// pixels. The data is copied.
func (s *Surface) SetMIMEData(mime string, data []byte) error {
	cmime := C.CString(mime)
	defer freeString(cmime)
	var ptr *C.uchar
	if len(data) > 0 {
		ptr = (*C.uchar)(unsafe.Pointer(&data[0]))
	}
	return statusErr(C.gocairo_surface_set_mime_data_copy(s.handle(), cmime, ptr, C.ulong(len(data))))
}

// MIMEData returns a copy of the data attached for mime, or nil.
func (s *Surface) MIMEData(mime string) []byte {
	cmime := C.CString(mime)
	defer freeString(cmime)
	var data *C.uchar
	var length C.ulong
	C.cairo_surface_get_mime_data(s.handle(), cmime, &data, &length)
	if data == nil || length == 0 {
		return nil
	}
	return C.GoBytes(unsafe.Pointer(data), C.int(length))
}

// SupportsMIMEType reports whether the backend can embed data of the
// given MIME type.
func (s *Surface) SupportsMIMEType(mime string) bool {
	cmime := C.CString(mime)
	defer freeString(cmime)
	return C.cairo_surface_supports_mime_type(s.handle(), cmime) != 0
}
