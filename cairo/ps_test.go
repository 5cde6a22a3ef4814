// SPDX-License-Identifier: Unlicense OR MIT

package cairo

import (
	"bytes"
	"testing"
)

func TestPSSurfaceWriter(t *testing.T) {
	var buf bytes.Buffer
	s := NewPSSurfaceWriter(&buf, 612, 792)
	if err := s.Err(); err != nil {
		t.Fatalf("new ps surface: %v", err)
	}
	if got := s.Type(); got != SurfaceTypePS {
		t.Errorf("Type() = %v, want ps", got)
	}
	cr := NewContext(s.Surface)
	cr.Rectangle(72, 72, 72, 72)
	cr.Fill()
	cr.ShowPage()
	cr.Close()
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%!PS-Adobe-")) {
		t.Errorf("output does not start with a DSC header: %q", buf.Bytes()[:12])
	}
}

func TestPSEPS(t *testing.T) {
	var buf bytes.Buffer
	s := NewPSSurfaceWriter(&buf, 100, 100)
	s.SetEPS(true)
	if !s.EPS() {
		t.Error("EPS flag did not stick")
	}
	cr := NewContext(s.Surface)
	cr.ShowPage()
	cr.Close()
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("EPSF")) {
		t.Error("output does not declare EPSF conformance")
	}
}

func TestPSDSCComments(t *testing.T) {
	var buf bytes.Buffer
	s := NewPSSurfaceWriter(&buf, 100, 100)
	s.DSCComment("%%Title: test document")
	s.DSCBeginSetup()
	s.DSCComment("%%IncludeResource: font Nimbus")
	s.DSCBeginPageSetup()
	s.DSCComment("%%IncludeFeature: *PageSize Letter")
	cr := NewContext(s.Surface)
	cr.ShowPage()
	cr.Close()
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	for _, want := range []string{"%%Title: test document", "%%IncludeResource", "%%IncludeFeature"} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("comment %q missing from output", want)
		}
	}
}

func TestPSLevels(t *testing.T) {
	levels := PSLevels()
	if len(levels) == 0 {
		t.Fatal("no PostScript levels reported")
	}
	if got := PSLevel3.String(); got != "PS Level 3" {
		t.Errorf("PSLevel3.String() = %q", got)
	}
}
