// SPDX-License-Identifier: Unlicense OR MIT

package cairo

/*
#cgo pkg-config: cairo-script

#include <cairo-script.h>
#include <stdint.h>

extern cairo_status_t gocairo_write(void *closure, unsigned char *data, unsigned int length);

static cairo_device_t *
gocairo_script_create_stream(uintptr_t closure)
{
	return cairo_script_create_for_stream((cairo_write_func_t)gocairo_write, (void *)closure);
}
*/
import "C"

import "io"

// ScriptMode selects the encoding of script output.
type ScriptMode int

const (
	ScriptModeASCII  ScriptMode = C.CAIRO_SCRIPT_MODE_ASCII
	ScriptModeBinary ScriptMode = C.CAIRO_SCRIPT_MODE_BINARY
)

// ScriptDevice records drawing operations as CairoScript, a readable
// replayable trace format. Surfaces created on the device write every
// operation through it.
type ScriptDevice struct {
	*Device
}

// NewScriptDevice creates a script device writing to the given file.
func NewScriptDevice(path string) *ScriptDevice {
	cpath := C.CString(path)
	defer freeString(cpath)
	return &ScriptDevice{Device: wrapDevice(C.cairo_script_create(cpath))}
}

// NewScriptDeviceWriter creates a script device emitting the trace to
// w. Write errors surface from Close.
func NewScriptDeviceWriter(w io.Writer) *ScriptDevice {
	c := newWriteClosure(w)
	return &ScriptDevice{Device: newDevice(C.gocairo_script_create_stream(C.uintptr_t(c.closure())), c)}
}

// SetMode switches between ASCII and binary output. Must be set
// before any surface is created on the device.
func (d *ScriptDevice) SetMode(m ScriptMode) {
	C.cairo_script_set_mode(d.handle(), C.cairo_script_mode_t(m))
}

// Mode returns the output encoding of the device.
func (d *ScriptDevice) Mode() ScriptMode {
	return ScriptMode(C.cairo_script_get_mode(d.handle()))
}

// WriteComment emits a comment into the trace.
func (d *ScriptDevice) WriteComment(comment string) {
	ccomment := C.CString(comment)
	defer freeString(ccomment)
	C.cairo_script_write_comment(d.handle(), ccomment, C.int(len(comment)))
}

// FromRecordingSurface replays a recording surface into the trace.
func (d *ScriptDevice) FromRecordingSurface(rec *RecordingSurface) error {
	return statusErr(C.cairo_script_from_recording_surface(d.handle(), rec.handle()))
}

// NewSurface creates a script surface of the given content and size.
// Drawing to it is recorded on the device.
func (d *ScriptDevice) NewSurface(content Content, width, height float64) *Surface {
	return wrapSurface(C.cairo_script_surface_create(d.handle(), C.cairo_content_t(content), C.double(width), C.double(height)))
}

// NewSurfaceForTarget creates a script surface that records drawing
// on the device and forwards it to target.
func (d *ScriptDevice) NewSurfaceForTarget(target *Surface) *Surface {
	return wrapSurface(C.cairo_script_surface_create_for_target(d.handle(), target.handle()))
}
