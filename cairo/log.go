// SPDX-License-Identifier: Unlicense OR MIT

package cairo

import (
	"context"
	"log/slog"
	"runtime"
	"sync/atomic"
	"unsafe"
)

// discardHandler drops all records. Enabled reports false so disabled
// logging costs one atomic load per call site.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

var activeLogger atomic.Pointer[slog.Logger]

func init() {
	activeLogger.Store(slog.New(discardHandler{}))
}

// SetLogger configures logging for the package. By default nothing is
// logged. Handle lifecycle events (create, close) are logged at
// LevelDebug; references released by the garbage collector backstop
// instead of Close are logged at LevelWarn, since they usually
// indicate a leaked wrapper.
//
// Passing nil restores the silent default. SetLogger may be called
// concurrently with any other function in the package.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discardHandler{})
	}
	activeLogger.Store(l)
}

func logger() *slog.Logger {
	return activeLogger.Load()
}

func traceHandle(event, kind string, ptr unsafe.Pointer) {
	l := logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("cairo: "+event, "kind", kind, "handle", uintptr(ptr))
}

func logLeak(kind string, ptr unsafe.Pointer) {
	l := logger()
	if !l.Enabled(context.Background(), slog.LevelWarn) {
		return
	}
	l.Warn("cairo: releasing leaked handle", "kind", kind, "handle", uintptr(ptr))
}

// addCleanup registers a garbage collector backstop that releases the
// native reference held through ptr if owner becomes unreachable
// before Close. The release function must not touch the owner.
func addCleanup[T any](owner *T, kind string, ptr unsafe.Pointer, release func(unsafe.Pointer)) runtime.Cleanup {
	return runtime.AddCleanup(owner, func(p unsafe.Pointer) {
		logLeak(kind, p)
		release(p)
	}, ptr)
}
