// SPDX-License-Identifier: Unlicense OR MIT

package cairo

/*
#include <cairo.h>
*/
import "C"

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"unsafe"
)

// Format is the pixel layout of an image surface.
type Format int

const (
	FormatInvalid  Format = C.CAIRO_FORMAT_INVALID
	FormatARGB32   Format = C.CAIRO_FORMAT_ARGB32
	FormatRGB24    Format = C.CAIRO_FORMAT_RGB24
	FormatA8       Format = C.CAIRO_FORMAT_A8
	FormatA1       Format = C.CAIRO_FORMAT_A1
	FormatRGB16565 Format = C.CAIRO_FORMAT_RGB16_565
	FormatRGB30    Format = C.CAIRO_FORMAT_RGB30
)

func (f Format) String() string {
	switch f {
	case FormatInvalid:
		return "invalid"
	case FormatARGB32:
		return "argb32"
	case FormatRGB24:
		return "rgb24"
	case FormatA8:
		return "a8"
	case FormatA1:
		return "a1"
	case FormatRGB16565:
		return "rgb16-565"
	case FormatRGB30:
		return "rgb30"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// FormatStrideForWidth returns the row stride the library requires
// for an image of the given format and width, or a negative value if
// the format or width is not representable.
func FormatStrideForWidth(format Format, width int) int {
	return int(C.cairo_format_stride_for_width(C.cairo_format_t(format), C.int(width)))
}

// ImageSurface is a surface backed by a pixel buffer in main memory.
type ImageSurface struct {
	*Surface
}

// NewImageSurface creates an image surface of the given format and
// size, initially cleared to all zero. Failure is reported through
// the sticky status.
func NewImageSurface(format Format, width, height int) *ImageSurface {
	p := C.cairo_image_surface_create(C.cairo_format_t(format), C.int(width), C.int(height))
	return &ImageSurface{Surface: wrapSurface(p)}
}

// NewImageSurfaceForData creates an image surface drawing directly
// into data. The buffer is pinned until Close and must hold at least
// stride*height bytes; use FormatStrideForWidth to compute a stride
// the library accepts.
func NewImageSurfaceForData(data []byte, format Format, width, height, stride int) *ImageSurface {
	if len(data) < stride*height {
		panic("cairo: image data shorter than stride*height")
	}
	pin := &pinnedData{data: data}
	pin.pin.Pin(&data[0])
	p := C.cairo_image_surface_create_for_data(
		(*C.uchar)(unsafe.Pointer(&data[0])),
		C.cairo_format_t(format), C.int(width), C.int(height), C.int(stride),
	)
	return &ImageSurface{Surface: newSurface(p, nil, pin)}
}

// Width returns the width of the surface in pixels.
func (s *ImageSurface) Width() int {
	return int(C.cairo_image_surface_get_width(s.handle()))
}

// Height returns the height of the surface in pixels.
func (s *ImageSurface) Height() int {
	return int(C.cairo_image_surface_get_height(s.handle()))
}

// Stride returns the distance in bytes between rows.
func (s *ImageSurface) Stride() int {
	return int(C.cairo_image_surface_get_stride(s.handle()))
}

// Format returns the pixel format of the surface.
func (s *ImageSurface) Format() Format {
	return Format(C.cairo_image_surface_get_format(s.handle()))
}

// Data returns the surface's pixel buffer aliased as a Go slice. The
// slice is valid until the surface is closed. The surface is flushed
// first; callers that modify the buffer must MarkDirty before drawing
// through cairo again.
func (s *ImageSurface) Data() []byte {
	s.Flush()
	p := C.cairo_image_surface_get_data(s.handle())
	if p == nil {
		return nil
	}
	n := s.Stride() * s.Height()
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), n)
}

// NewImageSurfaceFromImage creates an ARGB32 image surface holding a
// copy of img.
func NewImageSurfaceFromImage(img image.Image) *ImageSurface {
	b := img.Bounds()
	s := NewImageSurface(FormatARGB32, b.Dx(), b.Dy())
	if s.Err() != nil {
		return s
	}
	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	data, stride := s.Data(), s.Stride()
	for y := 0; y < b.Dy(); y++ {
		off := rgba.PixOffset(rgba.Rect.Min.X, rgba.Rect.Min.Y+y)
		row := rgba.Pix[off : off+4*b.Dx()]
		dst := data[y*stride:]
		for x := 0; x < b.Dx(); x++ {
			r, g, bl, a := row[4*x], row[4*x+1], row[4*x+2], row[4*x+3]
			u := uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(bl)
			binary.NativeEndian.PutUint32(dst[4*x:], u)
		}
	}
	s.MarkDirty()
	return s
}

// Image returns a copy of the surface contents as an image.RGBA.
// Both cairo's ARGB32 and image.RGBA carry premultiplied alpha, so
// the copy is a channel shuffle. Only ARGB32 and RGB24 surfaces are
// supported.
func (s *ImageSurface) Image() (*image.RGBA, error) {
	format := s.Format()
	if format != FormatARGB32 && format != FormatRGB24 {
		return nil, fmt.Errorf("cairo: cannot convert %v image surface to RGBA", format)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	width, height, stride := s.Width(), s.Height(), s.Stride()
	data := s.Data()
	if data == nil {
		return nil, errors.New("cairo: image surface has no data")
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		src := data[y*stride:]
		row := img.Pix[y*img.Stride:]
		for x := 0; x < width; x++ {
			u := binary.NativeEndian.Uint32(src[4*x:])
			a := uint8(u >> 24)
			if format == FormatRGB24 {
				a = 0xff
			}
			row[4*x] = uint8(u >> 16)
			row[4*x+1] = uint8(u >> 8)
			row[4*x+2] = uint8(u)
			row[4*x+3] = a
		}
	}
	return img, nil
}

// SetPixel writes one premultiplied pixel of an ARGB32 or RGB24
// surface. It is a convenience for tests and small fills; bulk access
// should go through Data.
func (s *ImageSurface) SetPixel(x, y int, c color.RGBA) {
	data, stride := s.Data(), s.Stride()
	u := uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	binary.NativeEndian.PutUint32(data[y*stride+4*x:], u)
	s.MarkDirty()
}

// PixelAt reads one premultiplied pixel of an ARGB32 or RGB24
// surface.
func (s *ImageSurface) PixelAt(x, y int) color.RGBA {
	data, stride := s.Data(), s.Stride()
	u := binary.NativeEndian.Uint32(data[y*stride+4*x:])
	return color.RGBA{
		R: uint8(u >> 16),
		G: uint8(u >> 8),
		B: uint8(u),
		A: uint8(u >> 24),
	}
}
