package state

import (
	"LocalMeasure/internal/geometry"
)

// DefaultCanvasSize is the backing resolution of the drawing surface.
var DefaultCanvasSize = geometry.Size{Width: 800, Height: 600}

// Viewport maps between displayed (widget) coordinates and the fixed
// backing coordinate space that rectangles are stored in.
type Viewport struct {
	Backing   geometry.Size
	Displayed geometry.Size
}

// Scale returns the displayed-to-backing scale factor per axis.
// An empty axis reports 1 so points pass through unscaled.
func (v Viewport) Scale() (sx, sy float64) {
	sx, sy = 1, 1
	if v.Backing.Width > 0 && v.Displayed.Width > 0 {
		sx = v.Displayed.Width / v.Backing.Width
	}
	if v.Backing.Height > 0 && v.Displayed.Height > 0 {
		sy = v.Displayed.Height / v.Backing.Height
	}
	return sx, sy
}

// ToCanvas converts a displayed position into backing coordinates.
func (v Viewport) ToCanvas(p geometry.Point) geometry.Point {
	sx, sy := v.Scale()
	return geometry.Point{X: p.X / sx, Y: p.Y / sy}
}

// ToDisplay converts a backing position into displayed coordinates.
func (v Viewport) ToDisplay(p geometry.Point) geometry.Point {
	sx, sy := v.Scale()
	return geometry.Point{X: p.X * sx, Y: p.Y * sy}
}

// RectToDisplay scales a backing rectangle into displayed coordinates.
func (v Viewport) RectToDisplay(r geometry.Rectangle) geometry.Rectangle {
	sx, sy := v.Scale()
	return geometry.Rectangle{X: r.X * sx, Y: r.Y * sy, Width: r.Width * sx, Height: r.Height * sy}
}
