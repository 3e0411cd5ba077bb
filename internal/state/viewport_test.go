package state

import (
	"testing"

	"LocalMeasure/internal/geometry"

	"github.com/stretchr/testify/assert"
)

func TestViewportMapsDisplayedToBacking(t *testing.T) {
	v := Viewport{
		Backing:   geometry.Size{Width: 800, Height: 600},
		Displayed: geometry.Size{Width: 400, Height: 300},
	}

	assert.Equal(t, geometry.Point{X: 200, Y: 100}, v.ToCanvas(geometry.Point{X: 100, Y: 50}))
	assert.Equal(t, geometry.Point{X: 100, Y: 50}, v.ToDisplay(geometry.Point{X: 200, Y: 100}))
	assert.Equal(t,
		geometry.Rectangle{X: 5, Y: 10, Width: 50, Height: 25},
		v.RectToDisplay(geometry.Rectangle{X: 10, Y: 20, Width: 100, Height: 50}))
}

func TestViewportNonUniformScale(t *testing.T) {
	v := Viewport{
		Backing:   geometry.Size{Width: 800, Height: 600},
		Displayed: geometry.Size{Width: 1600, Height: 300},
	}
	p := geometry.Point{X: 321, Y: 123}

	assert.Equal(t, geometry.Point{X: 160.5, Y: 246}, v.ToCanvas(p))
	assert.Equal(t, p, v.ToDisplay(v.ToCanvas(p)))
}

func TestViewportEmptyDisplayPassesThrough(t *testing.T) {
	v := Viewport{Backing: DefaultCanvasSize}
	p := geometry.Point{X: 7, Y: 9}

	assert.Equal(t, p, v.ToCanvas(p))
	sx, sy := v.Scale()
	assert.Equal(t, 1.0, sx)
	assert.Equal(t, 1.0, sy)
}
