package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"LocalMeasure/internal/geometry"
	"LocalMeasure/internal/state"
)

// BoardWidget is the measuring canvas. It forwards pointer input to a
// state.Surface in backing coordinates and draws whatever the surface holds.
type BoardWidget struct {
	widget.BaseWidget
	surface *state.Surface
	backing geometry.Size
	last    geometry.Point

	// OnChanged fires after the widget redraws for a surface change.
	OnChanged func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ mobile.Touchable = (*BoardWidget)(nil)

func NewBoardWidget(s *state.Surface, backing geometry.Size) *BoardWidget {
	b := &BoardWidget{surface: s, backing: backing}
	s.OnChanged = func() {
		b.Refresh()
		if b.OnChanged != nil {
			b.OnChanged()
		}
	}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Surface() *state.Surface { return b.surface }

// Viewport maps the widget's current size onto the backing canvas.
func (b *BoardWidget) Viewport() state.Viewport {
	size := b.Size()
	return state.Viewport{
		Backing:   b.backing,
		Displayed: geometry.Size{Width: float64(size.Width), Height: float64(size.Height)},
	}
}

func (b *BoardWidget) toCanvas(pos fyne.Position) geometry.Point {
	b.last = b.Viewport().ToCanvas(geometry.Point{X: float64(pos.X), Y: float64(pos.Y)})
	return b.last
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.surface.PointerDown(b.toCanvas(e.Position))
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.surface.PointerUp(b.toCanvas(e.Position))
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.surface.PointerMove(b.toCanvas(e.Position))
}

// DragEnd commits at the last known position when the release happened
// somewhere MouseUp was not delivered.
func (b *BoardWidget) DragEnd() {
	b.surface.PointerUp(b.last)
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	if b.surface.Drawing() {
		b.surface.PointerMove(b.toCanvas(e.Position))
	}
}

// MouseOut abandons a gesture that leaves the canvas.
func (b *BoardWidget) MouseOut() {
	b.surface.PointerLeave()
}

func (b *BoardWidget) TouchDown(e *mobile.TouchEvent) {
	b.surface.PointerDown(b.toCanvas(e.Position))
}

func (b *BoardWidget) TouchUp(e *mobile.TouchEvent) {
	b.surface.PointerUp(b.toCanvas(e.Position))
}

// TouchCancel drops the gesture when the system takes the touch away.
func (b *BoardWidget) TouchCancel(*mobile.TouchEvent) {
	b.surface.Cancel()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return newBoardRenderer(b)
}
