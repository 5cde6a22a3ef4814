// SPDX-License-Identifier: Unlicense OR MIT

// Package text shapes Unicode text into positioned glyphs for drawing
// with the cairo package.
//
// Shaping runs entirely in Go via the go-text/typesetting HarfBuzz port,
// so the glyph indices produced here belong to the shaped face rather
// than to whichever font cairo selected. Use Shaper.Path or Shaper.Draw
// to render runs as vector outlines, which works on every surface type.
// Context.ShowTextGlyphs may be used instead when the context's scaled
// font resolves the same glyph indices as the shaped face.
package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"gocairo.org/cairo"
	"gocairo.org/font"
)

// Direction is the dominant progression of a paragraph of text.
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

// A Run is a maximal piece of shaped text with a single direction and
// script. Its glyphs are in visual order and positioned in user space,
// ready for Shaper.Path or Context.ShowTextGlyphs.
type Run struct {
	// Text is the slice of the shaped string covered by this run.
	Text string
	// Glyphs are the run's glyphs in visual order.
	Glyphs []cairo.Glyph
	// Clusters maps Text's bytes onto Glyphs, in logical order.
	Clusters []cairo.TextCluster
	// Flags is TextClusterBackward for right-to-left runs.
	Flags cairo.TextClusterFlags
	// Face and Size identify what the run was shaped with.
	Face font.Face
	Size float64
	// Advance is the horizontal distance the run moves the pen.
	Advance float64
	// Ascent and Descent are the face's vertical extents for the run,
	// both positive distances from the baseline.
	Ascent, Descent float64

	rtl bool
}

// Shaper converts strings into positioned glyph runs. A Shaper is safe
// for concurrent use. Construct one with NewShaper; the zero value is
// not usable.
type Shaper struct {
	lang language.Language
	dir  Direction

	// HarfbuzzShaper and sfnt.Buffer both carry per-call scratch state,
	// so concurrent shapes each take their own from a pool.
	shapers sync.Pool
	bufs    sync.Pool
}

// Option configures a Shaper.
type Option func(*Shaper)

// WithLanguage sets the BCP 47 language tag used to select shaping
// rules. The default is "en".
func WithLanguage(lang string) Option {
	return func(s *Shaper) {
		s.lang = language.NewLanguage(lang)
	}
}

// WithDirection sets the dominant direction assumed for paragraphs with
// no strong directional characters, and the direction runs are laid out
// in. The default is LeftToRight.
func WithDirection(dir Direction) Option {
	return func(s *Shaper) {
		s.dir = dir
	}
}

// NewShaper returns a Shaper ready for use.
func NewShaper(opts ...Option) *Shaper {
	s := &Shaper{
		lang: language.NewLanguage("en"),
		shapers: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		bufs: sync.Pool{
			New: func() any { return new(sfnt.Buffer) },
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Shape shapes text with face at the given size, placing the pen for the
// visually leftmost glyph at (x, y) on the baseline. The string is split
// into runs on direction and script boundaries; runs are returned in
// visual order with positions already advanced, so showing each run in
// sequence renders the whole string.
func (s *Shaper) Shape(face font.Face, size, x, y float64, text string) []Run {
	if face == nil || text == "" {
		return nil
	}
	runes := []rune(text)
	outs, inputs := s.shapeRuns(face, size, text, runes)

	byteOff := runeByteOffsets(text, runes)
	runs := make([]Run, len(inputs))
	for i, in := range inputs {
		runs[i] = buildRun(outs[i], in, text, byteOff, face, size)
	}

	ordered := make([]Run, 0, len(runs))
	pen := x
	for _, idx := range visualOrder(runs, s.dir) {
		run := runs[idx]
		for i := range run.Glyphs {
			run.Glyphs[i].X += pen
			run.Glyphs[i].Y += y
		}
		pen += run.Advance
		ordered = append(ordered, run)
	}
	return ordered
}

// Extents measures text the way Context.TextExtents measures toy text,
// without drawing anything. Bearings are relative to a pen at the
// origin of the visually leftmost glyph.
func (s *Shaper) Extents(face font.Face, size float64, text string) cairo.TextExtents {
	if face == nil || text == "" {
		return cairo.TextExtents{}
	}
	outs, _ := s.shapeRuns(face, size, text, []rune(text))

	var ext cairo.TextExtents
	var minX, minY, maxX, maxY float64
	pen, inked := 0.0, false
	for _, out := range outs {
		gp := pen
		for _, g := range out.Glyphs {
			if g.Width != 0 && g.Height != 0 {
				left := gp + float64(g.XOffset+g.XBearing)/64
				top := -float64(g.YOffset+g.YBearing) / 64
				right := left + float64(g.Width)/64
				bottom := top - float64(g.Height)/64
				if !inked {
					minX, minY, maxX, maxY = left, top, right, bottom
					inked = true
				} else {
					minX = min(minX, left)
					minY = min(minY, top)
					maxX = max(maxX, right)
					maxY = max(maxY, bottom)
				}
			}
			gp += float64(g.XAdvance) / 64
		}
		pen += float64(out.Advance) / 64
	}
	if inked {
		ext.XBearing = minX
		ext.YBearing = minY
		ext.Width = maxX - minX
		ext.Height = maxY - minY
	}
	ext.XAdvance = pen
	return ext
}

// shapeRuns runs the splitting and shaping pipeline, returning one
// output per input run in logical order.
func (s *Shaper) shapeRuns(face font.Face, size float64, text string, runes []rune) ([]shaping.Output, []shaping.Input) {
	input := shaping.Input{
		Text:     runes,
		RunStart: 0,
		RunEnd:   len(runes),
		Face:     face.ShapingFace(),
		Size:     fixed.Int26_6(size * 64),
		Language: s.lang,
	}
	inputs := splitByDirection(input, text, s.dir)
	inputs = splitByScript(inputs)

	hb := s.shapers.Get().(*shaping.HarfbuzzShaper)
	defer s.shapers.Put(hb)

	outs := make([]shaping.Output, len(inputs))
	for i, in := range inputs {
		outs[i] = hb.Shape(in)
	}
	return outs, inputs
}

// buildRun converts one shaping output into a Run positioned relative to
// a pen at the origin.
func buildRun(out shaping.Output, in shaping.Input, text string, byteOff []int, face font.Face, size float64) Run {
	run := Run{
		Text:    text[byteOff[in.RunStart]:byteOff[in.RunEnd]],
		Face:    face,
		Size:    size,
		Advance: float64(out.Advance) / 64,
		Ascent:  float64(out.LineBounds.Ascent) / 64,
		Descent: float64(-out.LineBounds.Descent) / 64,
		rtl:     in.Direction == di.DirectionRTL,
	}
	if run.rtl {
		run.Flags = cairo.TextClusterBackward
	}
	run.Glyphs = make([]cairo.Glyph, len(out.Glyphs))
	var pen float64
	for i, g := range out.Glyphs {
		run.Glyphs[i] = cairo.Glyph{
			Index: uint64(g.GlyphID),
			X:     pen + float64(g.XOffset)/64,
			Y:     -float64(g.YOffset) / 64,
		}
		pen += float64(g.XAdvance) / 64
	}
	run.Clusters = buildClusters(out.Glyphs, byteOff, run.rtl)
	return run
}

// buildClusters converts harfbuzz cluster annotations into cairo text
// clusters. Cairo wants clusters in logical byte order; for a
// right-to-left run the glyph array is in visual order, so its groups
// are walked from the end and the Backward flag lets cairo map them.
func buildClusters(glyphs []shaping.Glyph, byteOff []int, rtl bool) []cairo.TextCluster {
	clusters := make([]cairo.TextCluster, 0, len(glyphs))
	cluster := func(g shaping.Glyph) cairo.TextCluster {
		return cairo.TextCluster{
			NumBytes:  byteOff[g.ClusterIndex+g.RuneCount] - byteOff[g.ClusterIndex],
			NumGlyphs: g.GlyphCount,
		}
	}
	if rtl {
		for i := len(glyphs); i > 0; i -= glyphs[i-1].GlyphCount {
			clusters = append(clusters, cluster(glyphs[i-1]))
		}
	} else {
		for i := 0; i < len(glyphs); i += glyphs[i].GlyphCount {
			clusters = append(clusters, cluster(glyphs[i]))
		}
	}
	return clusters
}

// bidiLevels returns the direction parity of each rune, 0 for
// left-to-right and 1 for right-to-left.
func bidiLevels(text string, runes []rune, base Direction) []int {
	levels := make([]int, len(runes))
	def := bidi.LeftToRight
	if base == RightToLeft {
		def = bidi.RightToLeft
	}
	var p bidi.Paragraph
	p.SetString(text, bidi.DefaultDirection(def))
	order, err := p.Order()
	if err != nil {
		return levels
	}
	// run.Pos() reports rune indices with an inclusive end.
	for i := 0; i < order.NumRuns(); i++ {
		run := order.Run(i)
		start, end := run.Pos()
		level := 0
		if run.Direction() == bidi.RightToLeft {
			level = 1
		}
		for j := start; j <= end && j < len(levels); j++ {
			levels[j] = level
		}
	}
	return levels
}

// splitByDirection divides the input into new, smaller inputs on
// direction boundaries and sets the text direction per run.
func splitByDirection(input shaping.Input, text string, base Direction) []shaping.Input {
	runes := input.Text
	if input.RunStart == input.RunEnd {
		return []shaping.Input{input}
	}
	levels := bidiLevels(text, runes, base)
	var split []shaping.Input
	start := input.RunStart
	for i := start + 1; i <= input.RunEnd; i++ {
		if i < input.RunEnd && levels[i] == levels[start] {
			continue
		}
		current := input
		current.RunStart = start
		current.RunEnd = i
		if levels[start] == 1 {
			current.Direction = di.DirectionRTL
		} else {
			current.Direction = di.DirectionLTR
		}
		split = append(split, current)
		start = i
	}
	return split
}

// splitByScript divides the inputs into new, smaller inputs on script
// boundaries. Runes of the Common script extend whatever run they
// follow, so punctuation and digits do not break runs apart.
func splitByScript(inputs []shaping.Input) []shaping.Input {
	split := make([]shaping.Input, 0, len(inputs))
	for _, input := range inputs {
		split = appendScriptRuns(split, input)
	}
	return split
}

func appendScriptRuns(split []shaping.Input, input shaping.Input) []shaping.Input {
	if input.RunStart == input.RunEnd {
		return append(split, input)
	}
	firstNonCommon := input.RunStart
	for i := firstNonCommon; i < input.RunEnd; i++ {
		if language.LookupScript(input.Text[i]) != language.Common {
			firstNonCommon = i
			break
		}
	}
	current := input
	current.Script = language.LookupScript(input.Text[firstNonCommon])
	for i := firstNonCommon + 1; i < input.RunEnd; i++ {
		runeScript := language.LookupScript(input.Text[i])
		if runeScript == language.Common || runeScript == current.Script {
			continue
		}
		current.RunEnd = i
		split = append(split, current)
		current = input
		current.RunStart = i
		current.Script = runeScript
	}
	current.RunEnd = input.RunEnd
	return append(split, current)
}

// visualOrder returns run indices in display order. Contiguous groups of
// runs counter to the base direction are reversed, so embedded segments
// read correctly inside the surrounding text.
func visualOrder(runs []Run, base Direction) []int {
	order := make([]int, len(runs))
	visPos := func(logical int) int {
		if base == RightToLeft {
			return len(runs) - 1 - logical
		}
		return logical
	}
	const none = -1
	groupStart := none
	resolve := func(start, end int) {
		firstVisual := end - 1
		for i := start; i < end; i++ {
			order[visPos(firstVisual)] = i
			firstVisual--
		}
	}
	for i, run := range runs {
		if run.rtl != (base == RightToLeft) {
			if groupStart == none {
				groupStart = i
			}
			continue
		}
		if groupStart != none {
			resolve(groupStart, i)
			groupStart = none
		}
		order[visPos(i)] = i
	}
	if groupStart != none {
		resolve(groupStart, len(runs))
	}
	return order
}

// runeByteOffsets returns the byte offset of each rune in text, with one
// extra entry holding len(text).
func runeByteOffsets(text string, runes []rune) []int {
	offsets := make([]int, 0, len(runes)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	return append(offsets, len(text))
}
