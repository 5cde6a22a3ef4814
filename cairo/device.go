// SPDX-License-Identifier: Unlicense OR MIT

package cairo

/*
#include <cairo.h>
*/
import "C"

import (
	"errors"
	"runtime"
	"runtime/cgo"
	"unsafe"
)

// DeviceType identifies the backend of a device.
type DeviceType int

const (
	DeviceTypeDRM     DeviceType = C.CAIRO_DEVICE_TYPE_DRM
	DeviceTypeGL      DeviceType = C.CAIRO_DEVICE_TYPE_GL
	DeviceTypeScript  DeviceType = C.CAIRO_DEVICE_TYPE_SCRIPT
	DeviceTypeXCB     DeviceType = C.CAIRO_DEVICE_TYPE_XCB
	DeviceTypeXlib    DeviceType = C.CAIRO_DEVICE_TYPE_XLIB
	DeviceTypeXML     DeviceType = C.CAIRO_DEVICE_TYPE_XML
	DeviceTypeCOGL    DeviceType = C.CAIRO_DEVICE_TYPE_COGL
	DeviceTypeWin32   DeviceType = C.CAIRO_DEVICE_TYPE_WIN32
	DeviceTypeInvalid DeviceType = C.CAIRO_DEVICE_TYPE_INVALID
)

type deviceRelease struct {
	ptr    *C.cairo_device_t
	stream cgo.Handle
}

func (r deviceRelease) release() {
	C.cairo_device_destroy(r.ptr)
	if r.stream != 0 {
		r.stream.Delete()
	}
}

// Device represents the driver interface a surface renders through.
// Most surface backends have none; script surfaces are created from
// one.
type Device struct {
	ptr     *C.cairo_device_t
	cleanup runtime.Cleanup
	stream  *streamClosure
}

// newDevice takes ownership of one native reference.
func newDevice(p *C.cairo_device_t, stream *streamClosure) *Device {
	d := &Device{ptr: p, stream: stream}
	rel := deviceRelease{ptr: p}
	if stream != nil {
		rel.stream = stream.handle
	}
	d.cleanup = runtime.AddCleanup(d, func(r deviceRelease) {
		logLeak("Device", unsafe.Pointer(r.ptr))
		r.release()
	}, rel)
	traceHandle("create", "Device", unsafe.Pointer(p))
	return d
}

func wrapDevice(p *C.cairo_device_t) *Device {
	return newDevice(p, nil)
}

// wrapDeviceBorrowed wraps a pointer owned by someone else, taking a
// fresh reference so Close stays uniform.
func wrapDeviceBorrowed(p *C.cairo_device_t) *Device {
	return wrapDevice(C.cairo_device_reference(p))
}

func (d *Device) handle() *C.cairo_device_t {
	if d.ptr == nil {
		closedPanic("Device")
	}
	return d.ptr
}

// Err returns the sticky status of the device as an error, or nil.
func (d *Device) Err() error {
	return statusErr(C.cairo_device_status(d.handle()))
}

// Close finishes the device, releases its native reference and
// returns any sticky or output error. Close is idempotent.
func (d *Device) Close() error {
	if d.ptr == nil {
		return nil
	}
	C.cairo_device_finish(d.ptr)
	err := statusErr(C.cairo_device_status(d.ptr))
	if d.stream != nil {
		err = errors.Join(d.stream.err, err)
	}
	d.cleanup.Stop()
	traceHandle("close", "Device", unsafe.Pointer(d.ptr))
	C.cairo_device_destroy(d.ptr)
	d.ptr = nil
	if d.stream != nil {
		d.stream.handle.Delete()
		d.stream = nil
	}
	return err
}

// Finish ends all use of the device and flushes pending output. The
// wrapper stays open until Close.
func (d *Device) Finish() {
	C.cairo_device_finish(d.handle())
}

// Flush completes any pending work on the device.
func (d *Device) Flush() {
	C.cairo_device_flush(d.handle())
}

// Type returns the backend type of the device.
func (d *Device) Type() DeviceType {
	return DeviceType(C.cairo_device_get_type(d.handle()))
}

// Acquire locks the device for direct use of its underlying API.
// Every successful Acquire must be paired with Release.
func (d *Device) Acquire() error {
	return statusErr(C.cairo_device_acquire(d.handle()))
}

// Release undoes one Acquire.
func (d *Device) Release() {
	C.cairo_device_release(d.handle())
}
