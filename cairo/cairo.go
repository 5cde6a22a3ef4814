// SPDX-License-Identifier: Unlicense OR MIT

/*

Package cairo exposes the cairo 2D graphics library through cgo.

Every type in this package is a thin proxy for a native cairo object:
it holds the foreign pointer, converts method arguments into their C
representations, performs the downcall and converts results back. All
drawing, rasterization and document emission happens inside the native
library; no rendering is implemented on the Go side.

Drawing a red rectangle to a PNG file:

	surface := cairo.NewImageSurface(cairo.FormatARGB32, 256, 256)
	defer surface.Close()

	cr := cairo.NewContext(surface)
	defer cr.Close()

	cr.SetSourceRGB(1, 0, 0)
	cr.Rectangle(32, 32, 192, 192)
	cr.Fill()

	if err := surface.WriteToPNG("out.png"); err != nil {
		log.Fatal(err)
	}

Object lifetime

Wrappers own one reference to their native object. Close releases the
reference; it is idempotent and safe to defer. A wrapper that is
garbage collected without Close releases its reference from a runtime
cleanup as a backstop, but relying on the collector delays release of
native memory and, for document surfaces, of buffered output. Call
Close.

Methods on a closed wrapper panic. Wrappers are not safe for
concurrent use; this mirrors the thread model of the native objects
they stand for.

Errors

Cairo reports failure through a sticky status on each object rather
than through return values. Err returns the sticky status as an error,
or nil. Operations with out-of-band failure modes (file output, region
arithmetic, matrix inversion) additionally return an error directly.

*/
package cairo

/*
#cgo pkg-config: cairo
#include <cairo.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Version returns the version of the native cairo library encoded as
// a single integer, using the same encoding as VersionEncode.
func Version() int {
	return int(C.cairo_version())
}

// VersionString returns the version of the native cairo library as a
// human-readable string, for example "1.18.0".
func VersionString() string {
	return C.GoString(C.cairo_version_string())
}

// VersionEncode encodes a major, minor, micro triple into a single
// integer comparable with Version.
func VersionEncode(major, minor, micro int) int {
	return major*10000 + minor*100 + micro
}

// freeString releases a C string created with C.CString.
func freeString(s *C.char) {
	C.free(unsafe.Pointer(s))
}

// closedPanic reports use of a wrapper after Close.
func closedPanic(kind string) {
	panic(fmt.Sprintf("cairo: use of closed %s", kind))
}
