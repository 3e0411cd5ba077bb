// Package render turns a rectangle set into drawing commands. It has no
// dependency on a graphics toolkit; the UI replays the commands on a Fyne
// canvas and tests assert on them directly.
package render

import (
	"image/color"
	"math"

	"LocalMeasure/internal/geometry"
)

const (
	GridSize     = 20.0
	CornerRadius = 4.0
	StrokeWidth  = 2.0
	CenterRadius = 3.0
	DashOn       = 5.0
	DashOff      = 5.0
)

var (
	GridColor = color.NRGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}
	LineColor = color.NRGBA{R: 0x63, G: 0x66, B: 0xF1, A: 0xFF}

	// Palette is indexed by rectangle position: primary, then secondary.
	Palette = []Style{
		{
			Stroke: color.NRGBA{R: 0x4F, G: 0x46, B: 0xE5, A: 0xFF},
			Fill:   color.NRGBA{R: 79, G: 70, B: 229, A: 38},
		},
		{
			Stroke: color.NRGBA{R: 0x93, G: 0x33, B: 0xEA, A: 0xFF},
			Fill:   color.NRGBA{R: 147, G: 51, B: 234, A: 38},
		},
	}
)

// Style is the color pair of one rectangle.
type Style struct {
	Stroke color.NRGBA
	Fill   color.NRGBA
}

// Kind identifies a drawing primitive.
type Kind int

const (
	KindGridLine Kind = iota
	KindBox
	KindCenter
	KindDashedLine
)

func (k Kind) String() string {
	switch k {
	case KindGridLine:
		return "grid"
	case KindBox:
		return "box"
	case KindCenter:
		return "center"
	case KindDashedLine:
		return "dashed"
	}
	return "unknown"
}

// Command is one drawing primitive in backing coordinates.
//
// Lines use From/To, boxes use Rect, center dots use From and Radius.
type Command struct {
	Kind   Kind
	Index  int // rectangle index for boxes and center dots
	From   geometry.Point
	To     geometry.Point
	Rect   geometry.Rectangle
	Radius float64
	Width  float64
	Stroke color.NRGBA
	Fill   color.NRGBA
	Dash   []float64
}

// StyleFor returns the palette entry for a rectangle index.
func StyleFor(index int) Style {
	return Palette[index%len(Palette)]
}

// Render draws the reference grid, every rectangle with its center, and the
// dashed connector when exactly two rectangles are present.
func Render(rects []geometry.Rectangle, size geometry.Size) []Command {
	cmds := Grid(size)

	for i, r := range rects {
		st := StyleFor(i)
		cmds = append(cmds,
			Command{
				Kind:   KindBox,
				Index:  i,
				Rect:   r,
				Radius: CornerRadius,
				Width:  StrokeWidth,
				Stroke: st.Stroke,
				Fill:   st.Fill,
			},
			Command{
				Kind:   KindCenter,
				Index:  i,
				From:   geometry.Center(r),
				Radius: CenterRadius,
				Fill:   st.Stroke,
			},
		)
	}

	if len(rects) == 2 {
		cmds = append(cmds, Command{
			Kind:   KindDashedLine,
			From:   geometry.Center(rects[0]),
			To:     geometry.Center(rects[1]),
			Width:  1,
			Stroke: LineColor,
			Dash:   []float64{DashOn, DashOff},
		})
	}
	return cmds
}

// Grid returns vertical then horizontal grid lines covering size,
// inclusive of the far edge.
func Grid(size geometry.Size) []Command {
	var cmds []Command
	for x := 0.0; x <= size.Width; x += GridSize {
		cmds = append(cmds, gridLine(geometry.Point{X: x}, geometry.Point{X: x, Y: size.Height}))
	}
	for y := 0.0; y <= size.Height; y += GridSize {
		cmds = append(cmds, gridLine(geometry.Point{Y: y}, geometry.Point{X: size.Width, Y: y}))
	}
	return cmds
}

func gridLine(from, to geometry.Point) Command {
	return Command{Kind: KindGridLine, From: from, To: to, Width: 1, Stroke: GridColor}
}

// Segment is a solid piece of a dashed line.
type Segment struct {
	From, To geometry.Point
}

// DashSegments splits the line from a to b into solid dashes of length on
// separated by gaps of length off. The last dash is clipped at b.
func DashSegments(a, b geometry.Point, on, off float64) []Segment {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	if on <= 0 || on+off <= 0 {
		return []Segment{{From: a, To: b}}
	}
	ux, uy := dx/length, dy/length
	at := func(d float64) geometry.Point {
		return geometry.Point{X: a.X + ux*d, Y: a.Y + uy*d}
	}

	var segs []Segment
	for d := 0.0; d < length; d += on + off {
		end := math.Min(d+on, length)
		segs = append(segs, Segment{From: at(d), To: at(end)})
	}
	return segs
}
