// SPDX-License-Identifier: Unlicense OR MIT

package cairo

import "testing"

func TestToyFontFace(t *testing.T) {
	f := NewToyFontFace("serif", FontSlantItalic, FontWeightBold)
	defer f.Close()
	if err := f.Err(); err != nil {
		t.Fatalf("toy font face: %v", err)
	}
	if got := f.Type(); got != FontTypeToy {
		t.Errorf("Type() = %v, want toy", got)
	}
	if got := f.Family(); got != "serif" {
		t.Errorf("Family() = %q, want serif", got)
	}
	if got := f.Slant(); got != FontSlantItalic {
		t.Errorf("Slant() = %v, want italic", got)
	}
	if got := f.Weight(); got != FontWeightBold {
		t.Errorf("Weight() = %v, want bold", got)
	}
}

func newTestScaledFont(t *testing.T, size float64) *ScaledFont {
	t.Helper()
	face := NewToyFontFace("", FontSlantNormal, FontWeightNormal)
	opts := NewFontOptions()
	sf := NewScaledFont(face.FontFace, MatrixScale(size, size), MatrixIdentity(), opts)
	if err := sf.Err(); err != nil {
		t.Fatalf("scaled font: %v", err)
	}
	t.Cleanup(func() {
		sf.Close()
		opts.Close()
		face.Close()
	})
	return sf
}

func TestScaledFontExtents(t *testing.T) {
	sf := newTestScaledFont(t, 16)
	ext := sf.Extents()
	if ext.Ascent <= 0 {
		t.Errorf("Ascent = %g, want > 0", ext.Ascent)
	}
	if ext.Height < ext.Ascent {
		t.Errorf("Height = %g < Ascent = %g", ext.Height, ext.Ascent)
	}
	te := sf.TextExtents("mm")
	if te.Width <= 0 || te.XAdvance <= 0 {
		t.Errorf("TextExtents(mm) = %+v", te)
	}
}

func TestScaledFontMatrices(t *testing.T) {
	sf := newTestScaledFont(t, 12)
	if got := sf.FontMatrix(); got != MatrixScale(12, 12) {
		t.Errorf("FontMatrix = %+v", got)
	}
	if got := sf.CTM(); got != MatrixIdentity() {
		t.Errorf("CTM = %+v", got)
	}
	if got := sf.ScaleMatrix(); got != MatrixScale(12, 12) {
		t.Errorf("ScaleMatrix = %+v", got)
	}
	face := sf.FontFace()
	defer face.Close()
	if got := face.Type(); got != FontTypeToy {
		t.Errorf("FontFace().Type() = %v, want toy", got)
	}
}

func TestTextToGlyphs(t *testing.T) {
	sf := newTestScaledFont(t, 16)
	glyphs, clusters, flags, err := sf.TextToGlyphs(0, 0, "ab")
	if err != nil {
		t.Fatalf("TextToGlyphs: %v", err)
	}
	if len(glyphs) != 2 {
		t.Fatalf("len(glyphs) = %d, want 2", len(glyphs))
	}
	if glyphs[0].Index == 0 || glyphs[1].Index == 0 {
		t.Errorf("glyphs map to .notdef: %+v", glyphs)
	}
	if glyphs[1].X <= glyphs[0].X {
		t.Errorf("glyph positions do not advance: %+v", glyphs)
	}
	if len(clusters) != 2 {
		t.Errorf("len(clusters) = %d, want 2", len(clusters))
	}
	for i, cl := range clusters {
		if cl.NumBytes != 1 || cl.NumGlyphs != 1 {
			t.Errorf("cluster %d = %+v, want 1 byte and 1 glyph", i, cl)
		}
	}
	if flags != 0 {
		t.Errorf("flags = %v, want 0", flags)
	}
	ext := sf.GlyphExtents(glyphs)
	if ext.Width <= 0 {
		t.Errorf("GlyphExtents = %+v", ext)
	}
}

func TestContextShowText(t *testing.T) {
	rec := NewRecordingSurface(ContentColorAlpha, nil)
	defer rec.Close()
	cr := NewContext(rec.Surface)
	defer cr.Close()
	cr.SelectFontFace("sans", FontSlantNormal, FontWeightNormal)
	cr.SetFontSize(20)
	cr.MoveTo(5, 25)
	cr.ShowText("hi")
	if err := cr.Err(); err != nil {
		t.Fatalf("ShowText: %v", err)
	}
	if ink := rec.InkExtents(); ink.Width <= 0 || ink.Height <= 0 {
		t.Errorf("text left no ink: %+v", ink)
	}
	ext := cr.FontExtents()
	if ext.Ascent <= 0 {
		t.Errorf("FontExtents = %+v", ext)
	}
	te := cr.TextExtents("hi")
	if te.XAdvance <= 0 {
		t.Errorf("TextExtents = %+v", te)
	}
}

func TestContextShowGlyphs(t *testing.T) {
	sf := newTestScaledFont(t, 16)
	glyphs, clusters, flags, err := sf.TextToGlyphs(5, 20, "go")
	if err != nil {
		t.Fatalf("TextToGlyphs: %v", err)
	}
	rec := NewRecordingSurface(ContentColorAlpha, nil)
	defer rec.Close()
	cr := NewContext(rec.Surface)
	defer cr.Close()
	cr.SetScaledFont(sf)
	cr.ShowGlyphs(glyphs)
	cr.ShowTextGlyphs("go", glyphs, clusters, flags)
	if err := cr.Err(); err != nil {
		t.Fatalf("show glyphs: %v", err)
	}
	if ink := rec.InkExtents(); ink.Width <= 0 {
		t.Errorf("glyphs left no ink: %+v", ink)
	}
	if got := cr.GlyphExtents(glyphs); got.Width <= 0 {
		t.Errorf("GlyphExtents = %+v", got)
	}
}

func TestContextTextPath(t *testing.T) {
	_, cr := newTestContext(t)
	cr.SelectFontFace("sans", FontSlantNormal, FontWeightNormal)
	cr.SetFontSize(24)
	cr.MoveTo(2, 30)
	cr.TextPath("o")
	x1, y1, x2, y2 := cr.PathExtents()
	if x2-x1 <= 0 || y2-y1 <= 0 {
		t.Errorf("text path extents = (%g, %g, %g, %g)", x1, y1, x2, y2)
	}
}

func TestContextFontState(t *testing.T) {
	_, cr := newTestContext(t)
	cr.SetFontMatrix(MatrixScale(10, 12))
	if got := cr.FontMatrix(); got != MatrixScale(10, 12) {
		t.Errorf("FontMatrix = %+v", got)
	}
	face := NewToyFontFace("monospace", FontSlantNormal, FontWeightNormal)
	defer face.Close()
	cr.SetFontFace(face.FontFace)
	got := cr.FontFace()
	defer got.Close()
	if got.Type() != FontTypeToy {
		t.Errorf("FontFace type = %v, want toy", got.Type())
	}
	sf := cr.ScaledFont()
	defer sf.Close()
	if err := sf.Err(); err != nil {
		t.Errorf("ScaledFont: %v", err)
	}
}

func TestFontOptionsRoundTrip(t *testing.T) {
	o := NewFontOptions()
	defer o.Close()
	if err := o.Err(); err != nil {
		t.Fatalf("new font options: %v", err)
	}
	o.SetAntialias(AntialiasSubpixel)
	if got := o.Antialias(); got != AntialiasSubpixel {
		t.Errorf("Antialias = %v", got)
	}
	o.SetSubpixelOrder(SubpixelOrderBGR)
	if got := o.SubpixelOrder(); got != SubpixelOrderBGR {
		t.Errorf("SubpixelOrder = %v", got)
	}
	o.SetHintStyle(HintStyleFull)
	if got := o.HintStyle(); got != HintStyleFull {
		t.Errorf("HintStyle = %v", got)
	}
	o.SetHintMetrics(HintMetricsOff)
	if got := o.HintMetrics(); got != HintMetricsOff {
		t.Errorf("HintMetrics = %v", got)
	}
	o.SetVariations("wght=600")
	if got := o.Variations(); got != "wght=600" {
		t.Errorf("Variations = %q", got)
	}
}

func TestFontOptionsMergeEqual(t *testing.T) {
	a := NewFontOptions()
	defer a.Close()
	b := NewFontOptions()
	defer b.Close()
	if !a.Equal(b) {
		t.Error("default options are not equal")
	}
	b.SetHintStyle(HintStyleNone)
	if a.Equal(b) {
		t.Error("distinct options compare equal")
	}
	a.Merge(b)
	if !a.Equal(b) {
		t.Error("options differ after merge")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal options hash differently")
	}
	c := a.Copy()
	defer c.Close()
	if !c.Equal(a) {
		t.Error("copy is not equal to the original")
	}
}
