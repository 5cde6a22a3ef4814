// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"math"
	"strings"

	"gocairo.org/cairo"
	"gocairo.org/font"
	"gocairo.org/font/gofont"
	"gocairo.org/text"
)

// render draws the scene and writes it to scene.Output.Path. The
// output format must already be resolved.
func render(scene Scene) error {
	tgt, err := newTarget(scene.Output, scene.Page)
	if err != nil {
		return err
	}

	ctx := cairo.NewContext(tgt.surface)
	if tgt.scale != 1 {
		ctx.Scale(tgt.scale, tgt.scale)
	}
	if err := drawScene(ctx, scene); err != nil {
		ctx.Close()
		tgt.discard()
		return err
	}
	ctx.ShowPage()
	if err := ctx.Close(); err != nil {
		tgt.discard()
		return err
	}
	return tgt.flush()
}

// target couples a surface with the format-specific teardown that
// makes the output durable.
type target struct {
	surface *cairo.Surface
	scale   float64
	flush   func() error
	discard func()
}

func newTarget(out Output, page Page) (*target, error) {
	w, h := page.Width, page.Height
	switch out.Format {
	case formatPNG:
		scale := out.DPI / 72
		img := cairo.NewImageSurface(cairo.FormatARGB32, int(math.Ceil(w*scale)), int(math.Ceil(h*scale)))
		return &target{
			surface: img.Surface,
			scale:   scale,
			flush: func() error {
				if err := img.WriteToPNG(out.Path); err != nil {
					img.Close()
					return err
				}
				return img.Close()
			},
			discard: func() { img.Close() },
		}, nil
	case formatPDF:
		pdf := cairo.NewPDFSurface(out.Path, w, h)
		if out.PDF.Restrict {
			pdf.RestrictToVersion(out.PDF.Version)
		}
		setPDFMetadata(pdf, out.PDF)
		return &target{
			surface: pdf.Surface,
			scale:   1,
			flush:   pdf.Close,
			discard: func() { pdf.Close() },
		}, nil
	case formatSVG:
		svg := cairo.NewSVGSurface(out.Path, w, h)
		if out.SVG.SetUnit {
			svg.SetDocumentUnit(out.SVG.Unit)
		}
		return &target{
			surface: svg.Surface,
			scale:   1,
			flush:   svg.Close,
			discard: func() { svg.Close() },
		}, nil
	case formatPS:
		ps := cairo.NewPSSurface(out.Path, w, h)
		if out.PS.Restrict {
			ps.RestrictToLevel(out.PS.Level)
		}
		if out.PS.EPS {
			ps.SetEPS(true)
		}
		return &target{
			surface: ps.Surface,
			scale:   1,
			flush:   ps.Close,
			discard: func() { ps.Close() },
		}, nil
	case formatScript:
		dev := cairo.NewScriptDevice(out.Path)
		surface := dev.NewSurface(cairo.ContentColorAlpha, w, h)
		return &target{
			surface: surface,
			scale:   1,
			flush: func() error {
				if err := surface.Close(); err != nil {
					dev.Close()
					return err
				}
				return dev.Close()
			},
			discard: func() {
				surface.Close()
				dev.Close()
			},
		}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", out.Format)
	}
}

func setPDFMetadata(pdf *cairo.PDFSurface, o PDFOptions) {
	set := func(m cairo.PDFMetadata, v string) {
		if v != "" {
			pdf.SetMetadata(m, v)
		}
	}
	set(cairo.PDFMetadataTitle, o.Title)
	set(cairo.PDFMetadataAuthor, o.Author)
	set(cairo.PDFMetadataSubject, o.Subject)
	set(cairo.PDFMetadataKeywords, o.Keywords)
	set(cairo.PDFMetadataCreator, o.Creator)
	if o.PageLabel != "" {
		pdf.SetPageLabel(o.PageLabel)
	}
}

func drawScene(ctx *cairo.Context, scene Scene) error {
	if bg := scene.Page.Background; bg != nil {
		ctx.SetSourceRGBA(bg.R, bg.G, bg.B, bg.A)
		ctx.Paint()
	}

	var shaper *text.Shaper
	for i, shape := range scene.Shapes {
		ctx.Save()
		ctx.NewPath()
		if shape.Kind == kindText {
			if shaper == nil {
				shaper = text.NewShaper()
			}
			if err := traceText(ctx, shaper, shape); err != nil {
				ctx.Restore()
				return fmt.Errorf("shapes[%d]: %w", i, err)
			}
		} else {
			traceShape(ctx, shape)
		}
		paintShape(ctx, shape)
		ctx.Restore()
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("shapes[%d]: %w", i, err)
		}
	}
	return nil
}

func traceShape(ctx *cairo.Context, shape Shape) {
	switch shape.Kind {
	case kindRect:
		ctx.Rectangle(shape.X, shape.Y, shape.Width, shape.Height)
	case kindCircle:
		ctx.Arc(shape.CX, shape.CY, shape.Radius, 0, 2*math.Pi)
	case kindLine:
		ctx.MoveTo(shape.Points[0][0], shape.Points[0][1])
		for _, p := range shape.Points[1:] {
			ctx.LineTo(p[0], p[1])
		}
		if shape.Closed {
			ctx.ClosePath()
		}
	case kindPath:
		for _, seg := range shape.Segments {
			switch seg.Op {
			case opMove:
				ctx.MoveTo(seg.To[0], seg.To[1])
			case opLine:
				ctx.LineTo(seg.To[0], seg.To[1])
			case opCurve:
				ctx.CurveTo(seg.C1[0], seg.C1[1], seg.C2[0], seg.C2[1], seg.To[0], seg.To[1])
			case opClose:
				ctx.ClosePath()
			}
		}
	}
}

func traceText(ctx *cairo.Context, shaper *text.Shaper, shape Shape) error {
	face, err := lookupFace(shape.Family, shape.Bold, shape.Italic)
	if err != nil {
		return err
	}
	runs := shaper.Shape(face, shape.Size, shape.X, shape.Y, shape.Text)
	shaper.Path(ctx, runs...)
	return nil
}

func lookupFace(family string, bold, italic bool) (font.Face, error) {
	style := font.Regular
	if italic {
		style = font.Italic
	}
	weight := font.Normal
	if bold {
		weight = font.Bold
	}
	for _, ff := range gofont.Collection() {
		if !strings.EqualFold(faceName(ff.Font), family) {
			continue
		}
		if ff.Font.Style == style && ff.Font.Weight == weight {
			return ff.Face, nil
		}
	}
	return nil, fmt.Errorf("no face for family %q bold=%t italic=%t", family, bold, italic)
}

func faceName(f font.Font) string {
	if f.Variant != "" {
		return string(f.Typeface) + " " + string(f.Variant)
	}
	return string(f.Typeface)
}

func paintShape(ctx *cairo.Context, shape Shape) {
	fill, stroke := shape.Fill, shape.Stroke
	if fill != nil {
		setSource(ctx, fill)
		if stroke != nil {
			ctx.FillPreserve()
		} else {
			ctx.Fill()
		}
	}
	if stroke != nil {
		setSource(ctx, &stroke.Paint)
		ctx.SetLineWidth(stroke.Width)
		ctx.SetLineCap(stroke.Cap)
		ctx.SetLineJoin(stroke.Join)
		if stroke.MiterLimit > 0 {
			ctx.SetMiterLimit(stroke.MiterLimit)
		}
		if len(stroke.Dash) > 0 {
			ctx.SetDash(stroke.Dash, stroke.DashOffset)
		}
		ctx.Stroke()
	}
}

func setSource(ctx *cairo.Context, p *Paint) {
	if p.Color != nil {
		ctx.SetSourceRGBA(p.Color.R, p.Color.G, p.Color.B, p.Color.A)
		return
	}
	g := p.Gradient
	var grad *cairo.Gradient
	if g.Linear {
		grad = cairo.NewLinearGradient(g.X0, g.Y0, g.X1, g.Y1)
	} else {
		grad = cairo.NewRadialGradient(g.X0, g.Y0, g.R0, g.X1, g.Y1, g.R1)
	}
	for _, s := range g.Stops {
		grad.AddColorStopRGBA(s.Offset, s.Color.R, s.Color.G, s.Color.B, s.Color.A)
	}
	grad.SetExtend(g.Extend)
	ctx.SetSource(&grad.Pattern)
	grad.Close()
}
