// SPDX-License-Identifier: Unlicense OR MIT

package cairo

import (
	"bytes"
	"slices"
	"testing"
)

func TestPDFSurfaceWriter(t *testing.T) {
	var buf bytes.Buffer
	s := NewPDFSurfaceWriter(&buf, 595, 842)
	if err := s.Err(); err != nil {
		t.Fatalf("new pdf surface: %v", err)
	}
	if got := s.Type(); got != SurfaceTypePDF {
		t.Errorf("Type() = %v, want pdf", got)
	}
	cr := NewContext(s.Surface)
	cr.SetSourceRGB(0, 0, 1)
	cr.Rectangle(72, 72, 100, 100)
	cr.Fill()
	cr.ShowPage()
	if err := cr.Close(); err != nil {
		t.Fatalf("context close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("surface close: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output does not start with a PDF header: %q", buf.Bytes()[:8])
	}
	if buf.Len() < 500 {
		t.Errorf("suspiciously small document: %d bytes", buf.Len())
	}
}

func TestPDFRestrictToVersion(t *testing.T) {
	var buf bytes.Buffer
	s := NewPDFSurfaceWriter(&buf, 100, 100)
	s.RestrictToVersion(PDFVersion14)
	cr := NewContext(s.Surface)
	cr.ShowPage()
	cr.Close()
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-1.4")) {
		t.Errorf("header = %q, want a PDF 1.4 header", buf.Bytes()[:8])
	}
}

func TestPDFVersions(t *testing.T) {
	versions := PDFVersions()
	if len(versions) == 0 {
		t.Fatal("no PDF versions reported")
	}
	if !slices.Contains(versions, PDFVersion14) {
		t.Errorf("versions %v do not include 1.4", versions)
	}
	if got := PDFVersion14.String(); got != "PDF 1.4" {
		t.Errorf("PDFVersion14.String() = %q", got)
	}
}

func TestPDFMetadata(t *testing.T) {
	var buf bytes.Buffer
	s := NewPDFSurfaceWriter(&buf, 100, 100)
	s.SetMetadata(PDFMetadataTitle, "A plain title")
	s.SetMetadata(PDFMetadataCreator, "gocairo")
	cr := NewContext(s.Surface)
	cr.ShowPage()
	cr.Close()
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("A plain title")) {
		t.Error("title missing from document info")
	}
}

func TestPDFOutline(t *testing.T) {
	var buf bytes.Buffer
	s := NewPDFSurfaceWriter(&buf, 200, 200)
	cr := NewContext(s.Surface)
	cr.TagBegin(TagDest, "name='top'")
	cr.TagEnd(TagDest)
	cr.Rectangle(10, 10, 50, 50)
	cr.Fill()
	cr.ShowPage()
	cr.Close()
	id := s.AddOutline(PDFOutlineRoot, "Top of document", "dest='top'", PDFOutlineOpen)
	if id == 0 {
		t.Error("AddOutline returned the root id")
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("/Outlines")) {
		t.Error("document has no outline dictionary")
	}
}

func TestPDFPageSetup(t *testing.T) {
	var buf bytes.Buffer
	s := NewPDFSurfaceWriter(&buf, 100, 100)
	s.SetPageLabel("cover")
	s.SetThumbnailSize(16, 16)
	cr := NewContext(s.Surface)
	cr.ShowPage()
	s.SetSize(200, 400)
	cr.Rectangle(0, 0, 10, 10)
	cr.Fill()
	cr.ShowPage()
	cr.Close()
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("/MediaBox [ 0 0 200 400 ]")) {
		t.Error("resized page has no matching MediaBox")
	}
}
