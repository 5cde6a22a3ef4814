// SPDX-License-Identifier: Unlicense OR MIT

package cairo

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	s := NewImageSurface(FormatARGB32, 4, 4)
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "cairo: create") || !strings.Contains(out, "kind=Surface") {
		t.Errorf("create event missing from log:\n%s", out)
	}
	if !strings.Contains(out, "cairo: close") {
		t.Errorf("close event missing from log:\n%s", out)
	}
}

func TestSetLoggerNilSilences(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	SetLogger(nil)
	s := NewImageSurface(FormatARGB32, 4, 4)
	s.Close()
	if buf.Len() != 0 {
		t.Errorf("silent logger still wrote: %s", buf.String())
	}
}
