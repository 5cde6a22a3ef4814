// SPDX-License-Identifier: Unlicense OR MIT

package cairo

/*
#cgo pkg-config: cairo-pdf

#include <cairo-pdf.h>
#include <stdint.h>

extern cairo_status_t gocairo_write(void *closure, unsigned char *data, unsigned int length);

static cairo_surface_t *
gocairo_pdf_surface_create_stream(uintptr_t closure, double width, double height)
{
	return cairo_pdf_surface_create_for_stream((cairo_write_func_t)gocairo_write, (void *)closure, width, height);
}
*/
import "C"

import (
	"fmt"
	"io"
	"unsafe"
)

// PDFVersion restricts the PDF version a PDF surface emits.
type PDFVersion int

const (
	PDFVersion14 PDFVersion = C.CAIRO_PDF_VERSION_1_4
	PDFVersion15 PDFVersion = C.CAIRO_PDF_VERSION_1_5
)

func (v PDFVersion) String() string {
	s := C.cairo_pdf_version_to_string(C.cairo_pdf_version_t(v))
	if s == nil {
		return fmt.Sprintf("pdfversion(%d)", int(v))
	}
	return C.GoString(s)
}

// PDFVersions returns the PDF versions the library can emit, in the
// library's order.
func PDFVersions() []PDFVersion {
	var versions *C.cairo_pdf_version_t
	var n C.int
	C.cairo_pdf_get_versions(&versions, &n)
	if n <= 0 {
		return nil
	}
	out := make([]PDFVersion, int(n))
	for i, v := range unsafe.Slice(versions, int(n)) {
		out[i] = PDFVersion(v)
	}
	return out
}

// PDFMetadata selects a document information field.
type PDFMetadata int

const (
	PDFMetadataTitle      PDFMetadata = C.CAIRO_PDF_METADATA_TITLE
	PDFMetadataAuthor     PDFMetadata = C.CAIRO_PDF_METADATA_AUTHOR
	PDFMetadataSubject    PDFMetadata = C.CAIRO_PDF_METADATA_SUBJECT
	PDFMetadataKeywords   PDFMetadata = C.CAIRO_PDF_METADATA_KEYWORDS
	PDFMetadataCreator    PDFMetadata = C.CAIRO_PDF_METADATA_CREATOR
	PDFMetadataCreateDate PDFMetadata = C.CAIRO_PDF_METADATA_CREATE_DATE
	PDFMetadataModDate    PDFMetadata = C.CAIRO_PDF_METADATA_MOD_DATE
)

// PDFOutlineFlags adjust how an outline item is displayed.
type PDFOutlineFlags int

const (
	PDFOutlineOpen   PDFOutlineFlags = C.CAIRO_PDF_OUTLINE_FLAG_OPEN
	PDFOutlineBold   PDFOutlineFlags = C.CAIRO_PDF_OUTLINE_FLAG_BOLD
	PDFOutlineItalic PDFOutlineFlags = C.CAIRO_PDF_OUTLINE_FLAG_ITALIC
)

// PDFOutlineRoot is the parent id of top level outline items.
const PDFOutlineRoot = C.CAIRO_PDF_OUTLINE_ROOT

// PDFSurface is a paginated surface emitting a PDF document. Sizes
// are in points (1/72 inch).
type PDFSurface struct {
	*Surface
}

// NewPDFSurface creates a PDF surface writing to the given file.
func NewPDFSurface(path string, widthPt, heightPt float64) *PDFSurface {
	cpath := C.CString(path)
	defer freeString(cpath)
	p := C.cairo_pdf_surface_create(cpath, C.double(widthPt), C.double(heightPt))
	return &PDFSurface{Surface: wrapSurface(p)}
}

// NewPDFSurfaceWriter creates a PDF surface emitting the document to
// w. Write errors surface from Close.
func NewPDFSurfaceWriter(w io.Writer, widthPt, heightPt float64) *PDFSurface {
	c := newWriteClosure(w)
	p := C.gocairo_pdf_surface_create_stream(C.uintptr_t(c.closure()), C.double(widthPt), C.double(heightPt))
	return &PDFSurface{Surface: newSurface(p, c, nil)}
}

// RestrictToVersion limits the output to features of the given PDF
// version. Must be called before any drawing.
func (s *PDFSurface) RestrictToVersion(v PDFVersion) {
	C.cairo_pdf_surface_restrict_to_version(s.handle(), C.cairo_pdf_version_t(v))
}

// SetSize changes the page size. Takes effect from the next page; on
// a fresh surface or directly after ShowPage it applies to the
// current page.
func (s *PDFSurface) SetSize(widthPt, heightPt float64) {
	C.cairo_pdf_surface_set_size(s.handle(), C.double(widthPt), C.double(heightPt))
}

// SetMetadata sets a document information field, UTF-8 encoded.
func (s *PDFSurface) SetMetadata(m PDFMetadata, value string) {
	cvalue := C.CString(value)
	defer freeString(cvalue)
	C.cairo_pdf_surface_set_metadata(s.handle(), C.cairo_pdf_metadata_t(m), cvalue)
}

// SetPageLabel names the current page for display in PDF viewers.
func (s *PDFSurface) SetPageLabel(label string) {
	clabel := C.CString(label)
	defer freeString(clabel)
	C.cairo_pdf_surface_set_page_label(s.handle(), clabel)
}

// SetThumbnailSize sets the pixel size of the thumbnail embedded for
// the current and following pages, or 0x0 for none.
func (s *PDFSurface) SetThumbnailSize(width, height int) {
	C.cairo_pdf_surface_set_thumbnail_size(s.handle(), C.int(width), C.int(height))
}

// AddOutline inserts an item into the document outline under
// parentID (PDFOutlineRoot for top level items) and returns the id of
// the new item. linkAttribs names the target like a TagLink attribute
// string, for example "dest='top'" or "page=3 pos=[0 792]".
func (s *PDFSurface) AddOutline(parentID int, text, linkAttribs string, flags PDFOutlineFlags) int {
	ctext := C.CString(text)
	defer freeString(ctext)
	cattribs := C.CString(linkAttribs)
	defer freeString(cattribs)
	return int(C.cairo_pdf_surface_add_outline(s.handle(), C.int(parentID), ctext, cattribs, C.cairo_pdf_outline_flags_t(flags)))
}
