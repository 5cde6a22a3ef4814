// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"gocairo.org/cairo"
	"gocairo.org/font"
)

// Path appends the outlines of the runs' glyphs to ctx's current path.
// Outlines are emitted in user space at each glyph's position, so the
// result can be filled, stroked or clipped on any surface type.
func (s *Shaper) Path(ctx *cairo.Context, runs ...Run) {
	buf := s.bufs.Get().(*sfnt.Buffer)
	defer s.bufs.Put(buf)
	for _, run := range runs {
		if run.Face == nil {
			continue
		}
		outlines := run.Face.Outlines()
		ppem := fixed.Int26_6(run.Size * 64)
		for _, g := range run.Glyphs {
			segs, err := outlines.LoadGlyph(buf, sfnt.GlyphIndex(g.Index), ppem, nil)
			if err != nil || len(segs) == 0 {
				continue
			}
			appendOutline(ctx, segs, g.X, g.Y)
		}
	}
}

// Draw shapes text and fills it onto ctx with the current source. The
// pen for the visually leftmost glyph starts at (x, y) on the baseline.
// The shaped runs are returned so callers can continue from their
// positions or reuse them for further drawing.
func (s *Shaper) Draw(ctx *cairo.Context, face font.Face, size, x, y float64, text string) []Run {
	runs := s.Shape(face, size, x, y, text)
	ctx.NewPath()
	s.Path(ctx, runs...)
	ctx.Fill()
	return runs
}

// Metrics reports face's vertical metrics at size: ascent and descent as
// positive distances from the baseline, and the recommended gap between
// lines on top of them.
func (s *Shaper) Metrics(face font.Face, size float64) (ascent, descent, lineGap float64) {
	buf := s.bufs.Get().(*sfnt.Buffer)
	defer s.bufs.Put(buf)
	m, err := face.Outlines().Metrics(buf, fixed.Int26_6(size*64), xfont.HintingNone)
	if err != nil {
		return 0, 0, 0
	}
	ascent = float64(m.Ascent) / 64
	descent = float64(m.Descent) / 64
	// Height is ascent + descent + line gap.
	lineGap = float64(m.Height-m.Ascent-m.Descent) / 64
	return ascent, descent, lineGap
}

// appendOutline replays one glyph outline offset to (dx, dy). Quadratic
// segments are promoted to the cubic curves cairo paths are made of.
func appendOutline(ctx *cairo.Context, segs sfnt.Segments, dx, dy float64) {
	pt := func(p fixed.Point26_6) (float64, float64) {
		return dx + float64(p.X)/64, dy + float64(p.Y)/64
	}
	var curX, curY float64
	started := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if started {
				ctx.ClosePath()
			}
			curX, curY = pt(seg.Args[0])
			ctx.MoveTo(curX, curY)
			started = true
		case sfnt.SegmentOpLineTo:
			curX, curY = pt(seg.Args[0])
			ctx.LineTo(curX, curY)
		case sfnt.SegmentOpQuadTo:
			qx, qy := pt(seg.Args[0])
			x, y := pt(seg.Args[1])
			ctx.CurveTo(
				curX+2*(qx-curX)/3, curY+2*(qy-curY)/3,
				x+2*(qx-x)/3, y+2*(qy-y)/3,
				x, y,
			)
			curX, curY = x, y
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(seg.Args[0])
			c2x, c2y := pt(seg.Args[1])
			x, y := pt(seg.Args[2])
			ctx.CurveTo(c1x, c1y, c2x, c2y, x, y)
			curX, curY = x, y
		}
	}
	if started {
		ctx.ClosePath()
	}
}
