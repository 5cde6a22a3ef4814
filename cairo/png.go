// SPDX-License-Identifier: Unlicense OR MIT

package cairo

/*
#cgo pkg-config: cairo-png

#include <cairo.h>
#include <stdint.h>

extern cairo_status_t gocairo_write(void *closure, unsigned char *data, unsigned int length);
extern cairo_status_t gocairo_read(void *closure, unsigned char *data, unsigned int length);

static cairo_status_t
gocairo_surface_write_png_stream(cairo_surface_t *surface, uintptr_t closure)
{
	return cairo_surface_write_to_png_stream(surface, (cairo_write_func_t)gocairo_write, (void *)closure);
}

static cairo_surface_t *
gocairo_image_surface_read_png_stream(uintptr_t closure)
{
	return cairo_image_surface_create_from_png_stream((cairo_read_func_t)gocairo_read, (void *)closure);
}
*/
import "C"

import (
	"fmt"
	"io"
)

// WriteToPNG writes the surface contents to a PNG file.
func (s *Surface) WriteToPNG(path string) error {
	cpath := C.CString(path)
	defer freeString(cpath)
	return statusErr(C.cairo_surface_write_to_png(s.handle(), cpath))
}

// WriteToPNGWriter encodes the surface contents as PNG to w.
func (s *Surface) WriteToPNGWriter(w io.Writer) error {
	c := newWriteClosure(w)
	defer c.handle.Delete()
	err := statusErr(C.gocairo_surface_write_png_stream(s.handle(), C.uintptr_t(c.closure())))
	if c.err != nil {
		return fmt.Errorf("cairo: writing PNG: %w", c.err)
	}
	return err
}

// NewImageSurfaceFromPNG loads a PNG file into a new image surface.
func NewImageSurfaceFromPNG(path string) (*ImageSurface, error) {
	cpath := C.CString(path)
	defer freeString(cpath)
	s := &ImageSurface{Surface: wrapSurface(C.cairo_image_surface_create_from_png(cpath))}
	if err := s.Err(); err != nil {
		s.Close()
		return nil, fmt.Errorf("cairo: reading PNG %q: %w", path, err)
	}
	return s, nil
}

// NewImageSurfaceFromPNGReader decodes PNG data from r into a new
// image surface.
func NewImageSurfaceFromPNGReader(r io.Reader) (*ImageSurface, error) {
	c := newReadClosure(r)
	defer c.handle.Delete()
	s := &ImageSurface{Surface: wrapSurface(C.gocairo_image_surface_read_png_stream(C.uintptr_t(c.closure())))}
	if err := s.Err(); err != nil {
		s.Close()
		if c.err != nil {
			return nil, fmt.Errorf("cairo: reading PNG: %w", c.err)
		}
		return nil, err
	}
	return s, nil
}
