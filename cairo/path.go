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

// PathElementKind identifies one element of a captured path.
type PathElementKind int

const (
	PathMoveTo    PathElementKind = C.CAIRO_PATH_MOVE_TO
	PathLineTo    PathElementKind = C.CAIRO_PATH_LINE_TO
	PathCurveTo   PathElementKind = C.CAIRO_PATH_CURVE_TO
	PathClosePath PathElementKind = C.CAIRO_PATH_CLOSE_PATH
)

// PathElement is one step of a captured path. PathMoveTo and
// PathLineTo use Points[0]; PathCurveTo uses all three points;
// PathClosePath uses none.
type PathElement struct {
	Kind   PathElementKind
	Points [3]Point
}

// Path is a snapshot of a context's path, captured with CopyPath or
// CopyPathFlat. The snapshot lives in native memory until Close.
type Path struct {
	ptr     *C.cairo_path_t
	cleanup runtime.Cleanup
}

// cairo_path_data_t is a union; cgo exposes it as opaque bytes. The
// two views below mirror its header and point arms.
type pathDataHeader struct {
	kind   int32
	length int32
}

type pathDataPoint struct {
	x, y float64
}

func releasePath(p unsafe.Pointer) {
	C.cairo_path_destroy((*C.cairo_path_t)(p))
}

func wrapPath(p *C.cairo_path_t) *Path {
	path := &Path{ptr: p}
	path.cleanup = addCleanup(path, "Path", unsafe.Pointer(p), releasePath)
	traceHandle("create", "Path", unsafe.Pointer(p))
	return path
}

func (p *Path) handle() *C.cairo_path_t {
	if p.ptr == nil {
		closedPanic("Path")
	}
	return p.ptr
}

// Err returns the status the path was captured with as an error, or
// nil.
func (p *Path) Err() error {
	return statusErr(p.handle().status)
}

// Close frees the native snapshot. Close is idempotent.
func (p *Path) Close() error {
	if p.ptr == nil {
		return nil
	}
	err := statusErr(p.ptr.status)
	p.cleanup.Stop()
	traceHandle("close", "Path", unsafe.Pointer(p.ptr))
	C.cairo_path_destroy(p.ptr)
	p.ptr = nil
	return err
}

// Elements decodes the snapshot into path elements. The native
// representation is a packed array of unions: a header carrying the
// element kind and its total length, followed by zero or more points.
func (p *Path) Elements() []PathElement {
	h := p.handle()
	n := int(h.num_data)
	if n == 0 || h.data == nil {
		return nil
	}
	data := unsafe.Slice(h.data, n)
	var elems []PathElement
	for i := 0; i < n; {
		hdr := (*pathDataHeader)(unsafe.Pointer(&data[i]))
		el := PathElement{Kind: PathElementKind(hdr.kind)}
		for j := 0; j < int(hdr.length)-1 && j < 3; j++ {
			pt := (*pathDataPoint)(unsafe.Pointer(&data[i+1+j]))
			el.Points[j] = Point{X: pt.x, Y: pt.y}
		}
		elems = append(elems, el)
		i += int(hdr.length)
	}
	return elems
}

// CopyPath returns a snapshot of the current path.
func (c *Context) CopyPath() *Path {
	return wrapPath(C.cairo_copy_path(c.handle()))
}

// CopyPathFlat returns a snapshot of the current path with all curves
// replaced by piecewise linear approximations at the current
// tolerance.
func (c *Context) CopyPathFlat() *Path {
	return wrapPath(C.cairo_copy_path_flat(c.handle()))
}

// AppendPath appends a snapshot onto the current path.
func (c *Context) AppendPath(p *Path) {
	C.cairo_append_path(c.handle(), p.handle())
}
