// SPDX-License-Identifier: Unlicense OR MIT

// Command pdfdoc produces a small multi-page, tagged PDF document:
// metadata, page labels, named destinations, an outline and a link,
// with all text shaped by gocairo.org/text and filled as outlines.
package main

import (
	"log"
	"strings"

	"gocairo.org/cairo"
	"gocairo.org/font"
	"gocairo.org/font/gofont"
	"gocairo.org/text"
)

const (
	pageWidth  = 612.0
	pageHeight = 792.0
	margin     = 72.0
)

var paragraphs = []string{
	"This document is produced by drawing every page through a cairo " +
		"PDF surface. Page labels, the outline on the left of your " +
		"viewer and the colored link below are all emitted by the " +
		"library rather than a PDF toolkit.",
	"Text is shaped with HarfBuzz, converted to glyph outlines and " +
		"filled as paths, so the page needs no embedded font. Line " +
		"breaks come from measuring each candidate line with the " +
		"shaper before committing it.",
	"The second section starts on its own page with a named " +
		"destination, which the outline entry and in-document links " +
		"can point at.",
}

func main() {
	pdf := cairo.NewPDFSurface("report.pdf", pageWidth, pageHeight)
	pdf.SetMetadata(cairo.PDFMetadataTitle, "A gocairo tour")
	pdf.SetMetadata(cairo.PDFMetadataAuthor, "The gocairo examples")
	pdf.SetMetadata(cairo.PDFMetadataSubject, "Vector pages from Go")
	pdf.SetMetadata(cairo.PDFMetadataCreator, "pdfdoc")

	ctx := cairo.NewContext(pdf.Surface)
	shaper := text.NewShaper()
	regular := gofont.Regular()[0].Face
	bold := faceFor(font.Font{Weight: font.Bold})

	// Cover.
	pdf.SetPageLabel("Cover")
	ctx.SetSourceRGB(0.11, 0.21, 0.34)
	shaper.Draw(bold, 40, margin, 300, "A gocairo tour")
	ctx.SetSourceRGB(0.3, 0.3, 0.3)
	shaper.Draw(regular, 16, margin, 336, "Vector pages from Go")
	ctx.ShowPage()

	// Body.
	pdf.SetPageLabel("1")
	ctx.TagBegin(cairo.TagDest, "name='overview'")
	ctx.TagEnd(cairo.TagDest)

	ascent, descent, gap := shaper.Metrics(regular, 12)
	leading := ascent + descent + gap
	y := margin + 24

	ctx.SetSourceRGB(0, 0, 0)
	shaper.Draw(bold, 24, margin, y, "Overview")
	y += 2 * leading

	for _, para := range paragraphs {
		ctx.TagBegin("P", "")
		for _, line := range wrap(shaper, regular, 12, pageWidth-2*margin, para) {
			y += leading
			shaper.Draw(regular, 12, margin, y, line)
			if y > pageHeight-margin {
				ctx.TagEnd("P")
				ctx.ShowPage()
				pdf.SetPageLabel("2")
				y = margin
				ctx.TagBegin("P", "")
			}
		}
		ctx.TagEnd("P")
		y += leading / 2
	}

	y += leading
	ctx.TagBegin(cairo.TagLink, "uri='https://www.cairographics.org/'")
	ctx.SetSourceRGB(0, 0.2, 0.8)
	shaper.Draw(regular, 12, margin, y, "The cairo graphics library")
	ctx.TagEnd(cairo.TagLink)
	ctx.ShowPage()

	// Colophon.
	pdf.SetPageLabel("Colophon")
	ctx.TagBegin(cairo.TagDest, "name='colophon'")
	ctx.TagEnd(cairo.TagDest)
	ctx.SetSourceRGB(0, 0, 0)
	shaper.Draw(bold, 24, margin, margin+24, "Colophon")
	shaper.Draw(regular, 12, margin, margin+24+2*leading,
		"Set in Go Regular and Go Bold, shaped at 12 points.")
	ctx.ShowPage()

	if err := ctx.Close(); err != nil {
		log.Fatal(err)
	}
	pdf.AddOutline(cairo.PDFOutlineRoot, "Overview", "dest='overview'", cairo.PDFOutlineOpen)
	pdf.AddOutline(cairo.PDFOutlineRoot, "Colophon", "dest='colophon'", 0)
	if err := pdf.Close(); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote report.pdf")
}

// faceFor returns the Go font face matching fnt's style and weight.
func faceFor(fnt font.Font) font.Face {
	fnt.Typeface = "Go"
	for _, ff := range gofont.Collection() {
		if ff.Font == fnt {
			return ff.Face
		}
	}
	panic("pdfdoc: no such face")
}

// wrap lays s out greedily into lines no wider than maxWidth points.
func wrap(shaper *text.Shaper, face font.Face, size, maxWidth float64, s string) []string {
	var lines []string
	var line string
	for _, word := range strings.Fields(s) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line != "" && shaper.Extents(face, size, candidate).XAdvance > maxWidth {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
