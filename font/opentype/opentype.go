// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype parses OpenType font files into faces usable for text
// shaping and glyph outline extraction.
package opentype

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
)

// Face is a thread-safe representation of a loaded font. For efficiency,
// applications should construct a face for any given font file once, reusing
// it across different text shapers. The face retains the source bytes it was
// parsed from.
type Face struct {
	font   *font.Font
	sfnt   *sfnt.Font
	family string
}

// Parse constructs a Face from source bytes.
func Parse(src []byte) (*Face, error) {
	ft, err := font.ParseTTF(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("failed parsing truetype font: %w", err)
	}
	sf, err := sfnt.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("failed parsing truetype font: %w", err)
	}
	return newFace(ft.Font, sf), nil
}

// ParseCollection parses an OpenType font file, with support for collections.
// Single font files are supported, returning a slice with length 1.
func ParseCollection(src []byte) ([]*Face, error) {
	fts, err := font.ParseTTC(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("failed parsing font collection: %w", err)
	}
	coll, err := sfnt.ParseCollection(src)
	if err != nil {
		return nil, fmt.Errorf("failed parsing font collection: %w", err)
	}
	out := make([]*Face, len(fts))
	for i, ft := range fts {
		sf, err := coll.Font(i)
		if err != nil {
			return nil, fmt.Errorf("reading font %d of collection: %w", i, err)
		}
		out[i] = newFace(ft.Font, sf)
	}
	return out, nil
}

func newFace(ft *font.Font, sf *sfnt.Font) *Face {
	var buf sfnt.Buffer
	family, _ := sf.Name(&buf, sfnt.NameIDFamily)
	return &Face{font: ft, sfnt: sf, family: family}
}

// Family returns the font family name recorded in the face, or the empty
// string if the font does not record one.
func (f *Face) Family() string {
	return f.family
}

// NumGlyphs returns the number of glyphs in the face.
func (f *Face) NumGlyphs() int {
	return f.sfnt.NumGlyphs()
}

// ShapingFace returns a thread-unsafe handle suitable for use by a single
// shaper. ShapingFace may be invoked any number of times and is safe so long
// as each return value is only used by one goroutine.
func (f *Face) ShapingFace() *font.Face {
	return font.NewFace(f.font)
}

// Outlines returns the face's glyph outline and metric tables. The returned
// font is safe for concurrent use so long as each call provides a distinct
// sfnt.Buffer, or nil.
func (f *Face) Outlines() *sfnt.Font {
	return f.sfnt
}
