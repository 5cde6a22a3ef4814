// SPDX-License-Identifier: Unlicense OR MIT

package cairo

/*
#include <cairo.h>
*/
import "C"

import (
	"io"
	"runtime/cgo"
	"unsafe"
)

// streamClosure carries an io.Writer or io.Reader across the C
// boundary. The native library stores only the cgo handle; the
// closure latches the first Go-side error so it can be reported from
// Close or the calling constructor after the native call returns.
type streamClosure struct {
	w      io.Writer
	r      io.Reader
	err    error
	handle cgo.Handle
}

func newWriteClosure(w io.Writer) *streamClosure {
	c := &streamClosure{w: w}
	c.handle = cgo.NewHandle(c)
	return c
}

func newReadClosure(r io.Reader) *streamClosure {
	c := &streamClosure{r: r}
	c.handle = cgo.NewHandle(c)
	return c
}

// closure is the value handed to the native library as the stream's
// void *closure argument. Call sites cast it to C.uintptr_t.
func (c *streamClosure) closure() uintptr {
	return uintptr(c.handle)
}

//export gocairo_write
func gocairo_write(closure unsafe.Pointer, data *C.uchar, length C.uint) C.cairo_status_t {
	c := cgo.Handle(uintptr(closure)).Value().(*streamClosure)
	if c.err != nil {
		return C.CAIRO_STATUS_WRITE_ERROR
	}
	if length == 0 {
		return C.CAIRO_STATUS_SUCCESS
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(data)), int(length))
	if _, err := c.w.Write(buf); err != nil {
		c.err = err
		return C.CAIRO_STATUS_WRITE_ERROR
	}
	return C.CAIRO_STATUS_SUCCESS
}

//export gocairo_read
func gocairo_read(closure unsafe.Pointer, data *C.uchar, length C.uint) C.cairo_status_t {
	c := cgo.Handle(uintptr(closure)).Value().(*streamClosure)
	if c.err != nil {
		return C.CAIRO_STATUS_READ_ERROR
	}
	if length == 0 {
		return C.CAIRO_STATUS_SUCCESS
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(data)), int(length))
	if _, err := io.ReadFull(c.r, buf); err != nil {
		c.err = err
		return C.CAIRO_STATUS_READ_ERROR
	}
	return C.CAIRO_STATUS_SUCCESS
}
