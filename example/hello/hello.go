// SPDX-License-Identifier: Unlicense OR MIT

// A minimal gocairo program: toy text on an image surface, written
// out as a PNG.
package main

import (
	"log"

	"gocairo.org/cairo"
)

func main() {
	log.Printf("cairo version %d (%s)", cairo.Version(), cairo.VersionString())

	surface := cairo.NewImageSurface(cairo.FormatRGB24, 640, 480)
	defer surface.Close()
	ctx := cairo.NewContext(surface.Surface)
	defer ctx.Close()

	ctx.SetSourceRGB(0, 0, 0)
	ctx.Paint()

	ctx.SetSourceRGB(1, 0, 0)
	ctx.SelectFontFace("monospace", cairo.FontSlantNormal, cairo.FontWeightNormal)
	ctx.SetFontSize(50)
	ctx.MoveTo(64, 240)
	ctx.ShowText("hello, world")

	if err := surface.WriteToPNG("hello.png"); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote hello.png")
}
