// Package geometry holds the rectangle math used for measurements.
package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a coordinate in canvas pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rectangle is an axis-aligned box. X,Y is the top-left corner.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (p Point) vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

// Center returns the midpoint of the rectangle.
func Center(r Rectangle) Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Distance returns the Euclidean distance between the centers of a and b.
func Distance(a, b Rectangle) float64 {
	return r2.Norm(r2.Sub(Center(b).vec(), Center(a).vec()))
}

// FromPoints builds the normalized bounding box of two corner points.
// Dragging up or left never yields a negative width or height.
func FromPoints(start, end Point) Rectangle {
	return Rectangle{
		X:      math.Min(start.X, end.X),
		Y:      math.Min(start.Y, end.Y),
		Width:  math.Abs(end.X - start.X),
		Height: math.Abs(end.Y - start.Y),
	}
}

// FormatDistance renders a distance with two decimals.
func FormatDistance(d float64) string {
	return fmt.Sprintf("%.2f", d)
}

// FormatDimensions renders "W×H" with two decimals each.
func FormatDimensions(r Rectangle) string {
	return fmt.Sprintf("%.2f×%.2f", r.Width, r.Height)
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
