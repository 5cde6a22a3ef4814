// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"gocairo.org/cairo"
)

// Scene is a validated drawing description loaded from a TOML file.
type Scene struct {
	Page   Page
	Output Output
	Shapes []Shape
}

// Page describes the drawing area in points and its background fill.
type Page struct {
	Width      float64
	Height     float64
	Background *Color
}

// Format selects the output backend.
type Format string

const (
	formatPNG    Format = "png"
	formatPDF    Format = "pdf"
	formatSVG    Format = "svg"
	formatPS     Format = "ps"
	formatScript Format = "script"
)

// Output holds the target path, the backend and its per-format
// options. Format may be empty after loading; resolveFormat fills it
// in from the path once flag overrides have been applied.
type Output struct {
	Path   string
	Format Format

	DPI float64

	PDF PDFOptions
	PS  PSOptions
	SVG SVGOptions
}

type PDFOptions struct {
	Version   cairo.PDFVersion
	Restrict  bool
	Title     string
	Author    string
	Subject   string
	Keywords  string
	Creator   string
	PageLabel string
}

type PSOptions struct {
	Level    cairo.PSLevel
	Restrict bool
	EPS      bool
}

type SVGOptions struct {
	Unit    cairo.SVGUnit
	SetUnit bool
}

// ShapeKind names the geometry carried by a Shape.
type ShapeKind string

const (
	kindRect   ShapeKind = "rect"
	kindCircle ShapeKind = "circle"
	kindLine   ShapeKind = "line"
	kindPath   ShapeKind = "path"
	kindText   ShapeKind = "text"
)

// Shape is one drawing instruction. Which geometry fields are
// meaningful depends on Kind; loadScene validates them.
type Shape struct {
	Kind ShapeKind

	// rect
	X, Y          float64
	Width, Height float64

	// circle
	CX, CY, Radius float64

	// line
	Points [][2]float64
	Closed bool

	// path
	Segments []Segment

	// text
	Text   string
	Family string
	Size   float64
	Bold   bool
	Italic bool

	Fill   *Paint
	Stroke *Stroke
}

// SegmentOp is one path construction step.
type SegmentOp string

const (
	opMove  SegmentOp = "move"
	opLine  SegmentOp = "line"
	opCurve SegmentOp = "curve"
	opClose SegmentOp = "close"
)

type Segment struct {
	Op     SegmentOp
	To     [2]float64
	C1, C2 [2]float64
}

// Paint is a fill source: either a solid color or a gradient.
type Paint struct {
	Color    *Color
	Gradient *Gradient
}

// Stroke is a paint plus pen parameters.
type Stroke struct {
	Paint
	Width      float64
	Cap        cairo.LineCap
	Join       cairo.LineJoin
	MiterLimit float64
	Dash       []float64
	DashOffset float64
}

type Gradient struct {
	Linear         bool
	X0, Y0, X1, Y1 float64
	R0, R1         float64
	Extend         cairo.Extend
	Stops          []Stop
}

type Stop struct {
	Offset float64
	Color  Color
}

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

var black = Color{A: 1}

// File schema. Colors and enums stay strings here; loadScene parses
// them into the runtime types above.
type sceneFile struct {
	Page   pageConfig    `toml:"page"`
	Output outputConfig  `toml:"output"`
	Shapes []shapeConfig `toml:"shapes"`
}

type pageConfig struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Background string  `toml:"background"`
}

type outputConfig struct {
	Path   string    `toml:"path"`
	Format string    `toml:"format"`
	PNG    pngConfig `toml:"png"`
	PDF    pdfConfig `toml:"pdf"`
	PS     psConfig  `toml:"ps"`
	SVG    svgConfig `toml:"svg"`
}

type pngConfig struct {
	DPI float64 `toml:"dpi"`
}

type pdfConfig struct {
	Version   string `toml:"version"`
	Title     string `toml:"title"`
	Author    string `toml:"author"`
	Subject   string `toml:"subject"`
	Keywords  string `toml:"keywords"`
	Creator   string `toml:"creator"`
	PageLabel string `toml:"page_label"`
}

type psConfig struct {
	Level int  `toml:"level"`
	EPS   bool `toml:"eps"`
}

type svgConfig struct {
	Unit string `toml:"unit"`
}

type shapeConfig struct {
	Kind     string          `toml:"kind"`
	X        float64         `toml:"x"`
	Y        float64         `toml:"y"`
	Width    float64         `toml:"width"`
	Height   float64         `toml:"height"`
	CX       float64         `toml:"cx"`
	CY       float64         `toml:"cy"`
	Radius   float64         `toml:"radius"`
	Points   [][]float64     `toml:"points"`
	Closed   bool            `toml:"closed"`
	Segments []segmentConfig `toml:"segments"`
	Text     string          `toml:"text"`
	Family   string          `toml:"family"`
	Size     float64         `toml:"size"`
	Bold     bool            `toml:"bold"`
	Italic   bool            `toml:"italic"`
	Fill     *paintConfig    `toml:"fill"`
	Stroke   *strokeConfig   `toml:"stroke"`
}

type segmentConfig struct {
	Op string    `toml:"op"`
	To []float64 `toml:"to"`
	C1 []float64 `toml:"c1"`
	C2 []float64 `toml:"c2"`
}

type paintConfig struct {
	Color    string          `toml:"color"`
	Gradient *gradientConfig `toml:"gradient"`
}

type strokeConfig struct {
	Color      string          `toml:"color"`
	Gradient   *gradientConfig `toml:"gradient"`
	Width      float64         `toml:"width"`
	Cap        string          `toml:"cap"`
	Join       string          `toml:"join"`
	MiterLimit float64         `toml:"miter_limit"`
	Dash       []float64       `toml:"dash"`
	DashOffset float64         `toml:"dash_offset"`
}

type gradientConfig struct {
	Kind   string       `toml:"kind"`
	From   []float64    `toml:"from"`
	To     []float64    `toml:"to"`
	R0     float64      `toml:"radius0"`
	R1     float64      `toml:"radius1"`
	Extend string       `toml:"extend"`
	Stops  []stopConfig `toml:"stops"`
}

type stopConfig struct {
	Offset float64 `toml:"offset"`
	Color  string  `toml:"color"`
}

func loadScene(path string) (Scene, error) {
	var raw sceneFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Scene{}, fmt.Errorf("load scene: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Scene{}, fmt.Errorf("load scene: unknown key %q", undecoded[0].String())
	}

	var scene Scene

	scene.Page = Page{Width: 612, Height: 792}
	if meta.IsDefined("page", "width") {
		scene.Page.Width = raw.Page.Width
	}
	if meta.IsDefined("page", "height") {
		scene.Page.Height = raw.Page.Height
	}
	if scene.Page.Width <= 0 || scene.Page.Height <= 0 {
		return Scene{}, fmt.Errorf("page size %gx%g: dimensions must be positive", scene.Page.Width, scene.Page.Height)
	}
	if raw.Page.Background != "" {
		c, err := parseColor(raw.Page.Background)
		if err != nil {
			return Scene{}, fmt.Errorf("page background: %w", err)
		}
		scene.Page.Background = &c
	}

	out, err := buildOutput(raw.Output, meta)
	if err != nil {
		return Scene{}, err
	}
	scene.Output = out

	scene.Shapes = make([]Shape, 0, len(raw.Shapes))
	for i, sc := range raw.Shapes {
		shape, err := buildShape(sc)
		if err != nil {
			return Scene{}, fmt.Errorf("shapes[%d]: %w", i, err)
		}
		scene.Shapes = append(scene.Shapes, shape)
	}
	return scene, nil
}

func buildOutput(raw outputConfig, meta toml.MetaData) (Output, error) {
	out := Output{
		Path: strings.TrimSpace(raw.Path),
		DPI:  96,
	}
	if f := strings.TrimSpace(raw.Format); f != "" {
		switch Format(f) {
		case formatPNG, formatPDF, formatSVG, formatPS, formatScript:
			out.Format = Format(f)
		default:
			return Output{}, fmt.Errorf("output format %q: want png, pdf, svg, ps or script", f)
		}
	}
	if meta.IsDefined("output", "png", "dpi") {
		if raw.PNG.DPI <= 0 {
			return Output{}, fmt.Errorf("output png dpi %g: must be positive", raw.PNG.DPI)
		}
		out.DPI = raw.PNG.DPI
	}

	switch v := strings.TrimSpace(raw.PDF.Version); v {
	case "":
	case "1.4":
		out.PDF.Version, out.PDF.Restrict = cairo.PDFVersion14, true
	case "1.5":
		out.PDF.Version, out.PDF.Restrict = cairo.PDFVersion15, true
	default:
		return Output{}, fmt.Errorf("output pdf version %q: want 1.4 or 1.5", v)
	}
	out.PDF.Title = raw.PDF.Title
	out.PDF.Author = raw.PDF.Author
	out.PDF.Subject = raw.PDF.Subject
	out.PDF.Keywords = raw.PDF.Keywords
	out.PDF.Creator = raw.PDF.Creator
	out.PDF.PageLabel = raw.PDF.PageLabel

	switch raw.PS.Level {
	case 0:
	case 2:
		out.PS.Level, out.PS.Restrict = cairo.PSLevel2, true
	case 3:
		out.PS.Level, out.PS.Restrict = cairo.PSLevel3, true
	default:
		return Output{}, fmt.Errorf("output ps level %d: want 2 or 3", raw.PS.Level)
	}
	out.PS.EPS = raw.PS.EPS

	if u := strings.TrimSpace(raw.SVG.Unit); u != "" {
		unit, err := parseSVGUnit(u)
		if err != nil {
			return Output{}, err
		}
		out.SVG.Unit, out.SVG.SetUnit = unit, true
	}
	return out, nil
}

// resolveFormat decides the backend, preferring an explicit format
// over the path extension. An .eps extension also flips the EPS
// switch on the PostScript options.
func resolveFormat(out *Output) error {
	if out.Path == "" {
		return fmt.Errorf("no output path: set output.path in the scene or pass -o")
	}
	if out.Format != "" {
		return nil
	}
	switch ext := strings.ToLower(filepath.Ext(out.Path)); ext {
	case ".png":
		out.Format = formatPNG
	case ".pdf":
		out.Format = formatPDF
	case ".svg":
		out.Format = formatSVG
	case ".ps":
		out.Format = formatPS
	case ".eps":
		out.Format = formatPS
		out.PS.EPS = true
	case ".cs":
		out.Format = formatScript
	default:
		return fmt.Errorf("cannot infer format from %q: use a known extension or set output.format", out.Path)
	}
	return nil
}

func buildShape(raw shapeConfig) (Shape, error) {
	shape := Shape{Kind: ShapeKind(raw.Kind)}
	switch shape.Kind {
	case kindRect:
		if raw.Width <= 0 || raw.Height <= 0 {
			return Shape{}, fmt.Errorf("rect size %gx%g: dimensions must be positive", raw.Width, raw.Height)
		}
		shape.X, shape.Y = raw.X, raw.Y
		shape.Width, shape.Height = raw.Width, raw.Height
	case kindCircle:
		if raw.Radius <= 0 {
			return Shape{}, fmt.Errorf("circle radius %g: must be positive", raw.Radius)
		}
		shape.CX, shape.CY, shape.Radius = raw.CX, raw.CY, raw.Radius
	case kindLine:
		if len(raw.Points) < 2 {
			return Shape{}, fmt.Errorf("line with %d points: need at least 2", len(raw.Points))
		}
		shape.Points = make([][2]float64, len(raw.Points))
		for i, p := range raw.Points {
			if len(p) != 2 {
				return Shape{}, fmt.Errorf("line point %d has %d coordinates: want 2", i, len(p))
			}
			shape.Points[i] = [2]float64{p[0], p[1]}
		}
		shape.Closed = raw.Closed
	case kindPath:
		if len(raw.Segments) == 0 {
			return Shape{}, fmt.Errorf("path without segments")
		}
		if SegmentOp(raw.Segments[0].Op) != opMove {
			return Shape{}, fmt.Errorf("path must start with a move segment, got %q", raw.Segments[0].Op)
		}
		shape.Segments = make([]Segment, len(raw.Segments))
		for i, sc := range raw.Segments {
			seg, err := buildSegment(sc)
			if err != nil {
				return Shape{}, fmt.Errorf("segment %d: %w", i, err)
			}
			shape.Segments[i] = seg
		}
	case kindText:
		if raw.Text == "" {
			return Shape{}, fmt.Errorf("text shape without text")
		}
		shape.X, shape.Y = raw.X, raw.Y
		shape.Text = raw.Text
		shape.Family = raw.Family
		if shape.Family == "" {
			shape.Family = "Go"
		}
		shape.Size = raw.Size
		if shape.Size == 0 {
			shape.Size = 12
		}
		if shape.Size < 0 {
			return Shape{}, fmt.Errorf("text size %g: must be positive", raw.Size)
		}
		shape.Bold, shape.Italic = raw.Bold, raw.Italic
	default:
		return Shape{}, fmt.Errorf("unknown kind %q: want rect, circle, line, path or text", raw.Kind)
	}

	if raw.Fill != nil {
		p, err := buildPaint(*raw.Fill)
		if err != nil {
			return Shape{}, fmt.Errorf("fill: %w", err)
		}
		shape.Fill = &p
	}
	if raw.Stroke != nil {
		st, err := buildStroke(*raw.Stroke)
		if err != nil {
			return Shape{}, fmt.Errorf("stroke: %w", err)
		}
		shape.Stroke = &st
	}
	if shape.Fill == nil && shape.Stroke == nil {
		c := black
		shape.Fill = &Paint{Color: &c}
	}
	return shape, nil
}

func buildSegment(raw segmentConfig) (Segment, error) {
	seg := Segment{Op: SegmentOp(raw.Op)}
	point := func(name string, coords []float64) ([2]float64, error) {
		if len(coords) != 2 {
			return [2]float64{}, fmt.Errorf("%s has %d coordinates: want 2", name, len(coords))
		}
		return [2]float64{coords[0], coords[1]}, nil
	}
	var err error
	switch seg.Op {
	case opMove, opLine:
		seg.To, err = point("to", raw.To)
	case opCurve:
		if seg.C1, err = point("c1", raw.C1); err != nil {
			return Segment{}, err
		}
		if seg.C2, err = point("c2", raw.C2); err != nil {
			return Segment{}, err
		}
		seg.To, err = point("to", raw.To)
	case opClose:
		if len(raw.To) != 0 || len(raw.C1) != 0 || len(raw.C2) != 0 {
			return Segment{}, fmt.Errorf("close takes no coordinates")
		}
	default:
		return Segment{}, fmt.Errorf("unknown op %q: want move, line, curve or close", raw.Op)
	}
	return seg, err
}

func buildPaint(raw paintConfig) (Paint, error) {
	if raw.Color != "" && raw.Gradient != nil {
		return Paint{}, fmt.Errorf("color and gradient are mutually exclusive")
	}
	switch {
	case raw.Gradient != nil:
		g, err := buildGradient(*raw.Gradient)
		if err != nil {
			return Paint{}, err
		}
		return Paint{Gradient: &g}, nil
	case raw.Color != "":
		c, err := parseColor(raw.Color)
		if err != nil {
			return Paint{}, err
		}
		return Paint{Color: &c}, nil
	default:
		c := black
		return Paint{Color: &c}, nil
	}
}

func buildStroke(raw strokeConfig) (Stroke, error) {
	paint, err := buildPaint(paintConfig{Color: raw.Color, Gradient: raw.Gradient})
	if err != nil {
		return Stroke{}, err
	}
	st := Stroke{
		Paint:      paint,
		Width:      raw.Width,
		MiterLimit: raw.MiterLimit,
		DashOffset: raw.DashOffset,
	}
	if st.Width == 0 {
		st.Width = 1
	}
	if st.Width < 0 {
		return Stroke{}, fmt.Errorf("width %g: must be positive", raw.Width)
	}
	switch strings.TrimSpace(raw.Cap) {
	case "", "butt":
		st.Cap = cairo.LineCapButt
	case "round":
		st.Cap = cairo.LineCapRound
	case "square":
		st.Cap = cairo.LineCapSquare
	default:
		return Stroke{}, fmt.Errorf("cap %q: want butt, round or square", raw.Cap)
	}
	switch strings.TrimSpace(raw.Join) {
	case "", "miter":
		st.Join = cairo.LineJoinMiter
	case "round":
		st.Join = cairo.LineJoinRound
	case "bevel":
		st.Join = cairo.LineJoinBevel
	default:
		return Stroke{}, fmt.Errorf("join %q: want miter, round or bevel", raw.Join)
	}
	for _, d := range raw.Dash {
		if d < 0 {
			return Stroke{}, fmt.Errorf("dash segment %g: must not be negative", d)
		}
	}
	st.Dash = raw.Dash
	return st, nil
}

func buildGradient(raw gradientConfig) (Gradient, error) {
	g := Gradient{Extend: cairo.ExtendPad}
	point := func(name string, coords []float64) ([2]float64, error) {
		if len(coords) != 2 {
			return [2]float64{}, fmt.Errorf("gradient %s has %d coordinates: want 2", name, len(coords))
		}
		return [2]float64{coords[0], coords[1]}, nil
	}
	from, err := point("from", raw.From)
	if err != nil {
		return Gradient{}, err
	}
	to, err := point("to", raw.To)
	if err != nil {
		return Gradient{}, err
	}
	g.X0, g.Y0 = from[0], from[1]
	g.X1, g.Y1 = to[0], to[1]

	switch strings.TrimSpace(raw.Kind) {
	case "", "linear":
		g.Linear = true
		if raw.R0 != 0 || raw.R1 != 0 {
			return Gradient{}, fmt.Errorf("linear gradient takes no radii")
		}
	case "radial":
		if raw.R0 < 0 || raw.R1 <= 0 {
			return Gradient{}, fmt.Errorf("radial gradient radii %g, %g: want radius1 positive", raw.R0, raw.R1)
		}
		g.R0, g.R1 = raw.R0, raw.R1
	default:
		return Gradient{}, fmt.Errorf("gradient kind %q: want linear or radial", raw.Kind)
	}

	switch strings.TrimSpace(raw.Extend) {
	case "", "pad":
		g.Extend = cairo.ExtendPad
	case "none":
		g.Extend = cairo.ExtendNone
	case "repeat":
		g.Extend = cairo.ExtendRepeat
	case "reflect":
		g.Extend = cairo.ExtendReflect
	default:
		return Gradient{}, fmt.Errorf("gradient extend %q: want pad, none, repeat or reflect", raw.Extend)
	}

	if len(raw.Stops) < 2 {
		return Gradient{}, fmt.Errorf("gradient with %d stops: need at least 2", len(raw.Stops))
	}
	g.Stops = make([]Stop, len(raw.Stops))
	for i, sc := range raw.Stops {
		if sc.Offset < 0 || sc.Offset > 1 {
			return Gradient{}, fmt.Errorf("stop %d offset %g: want [0, 1]", i, sc.Offset)
		}
		c, err := parseColor(sc.Color)
		if err != nil {
			return Gradient{}, fmt.Errorf("stop %d: %w", i, err)
		}
		g.Stops[i] = Stop{Offset: sc.Offset, Color: c}
	}
	return g, nil
}

// parseColor reads #rgb, #rgba, #rrggbb and #rrggbbaa hex colors.
func parseColor(s string) (Color, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return Color{}, fmt.Errorf("color %q: want a #-prefixed hex color", s)
	}
	if n := len(hex); n == 3 || n == 4 {
		var wide strings.Builder
		for _, r := range hex {
			wide.WriteRune(r)
			wide.WriteRune(r)
		}
		hex = wide.String()
	}
	var alpha bool
	switch len(hex) {
	case 6:
	case 8:
		alpha = true
	default:
		return Color{}, fmt.Errorf("color %q: want 3, 4, 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	c := Color{A: 1}
	if alpha {
		c.A = float64(v&0xff) / 255
		v >>= 8
	}
	c.B = float64(v&0xff) / 255
	c.G = float64(v>>8&0xff) / 255
	c.R = float64(v>>16&0xff) / 255
	return c, nil
}

func parseSVGUnit(s string) (cairo.SVGUnit, error) {
	switch s {
	case "user":
		return cairo.SVGUnitUser, nil
	case "em":
		return cairo.SVGUnitEm, nil
	case "ex":
		return cairo.SVGUnitEx, nil
	case "px":
		return cairo.SVGUnitPx, nil
	case "in":
		return cairo.SVGUnitIn, nil
	case "cm":
		return cairo.SVGUnitCm, nil
	case "mm":
		return cairo.SVGUnitMm, nil
	case "pt":
		return cairo.SVGUnitPt, nil
	case "pc":
		return cairo.SVGUnitPc, nil
	case "percent":
		return cairo.SVGUnitPercent, nil
	default:
		return 0, fmt.Errorf("svg unit %q: want user, em, ex, px, in, cm, mm, pt, pc or percent", s)
	}
}
