package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"LocalMeasure/internal/geometry"
	"LocalMeasure/internal/render"
	"LocalMeasure/internal/state"
)

type boardRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func newBoardRenderer(b *BoardWidget) *boardRenderer {
	r := &boardRenderer{board: b, background: canvas.NewRectangle(color.White)}
	r.rebuild()
	return r
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return append([]fyne.CanvasObject{r.background}, r.objects...)
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.rebuild()
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(float32(r.board.backing.Width/2), float32(r.board.backing.Height/2))
}

func (r *boardRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Destroy() {}

// rebuild replays the render commands for the visible set, scaled to the
// widget's size.
func (r *boardRenderer) rebuild() {
	vp := r.board.Viewport()
	cmds := render.Render(r.board.surface.Visible(), r.board.backing)

	objs := make([]fyne.CanvasObject, 0, len(cmds))
	for _, c := range cmds {
		objs = append(objs, commandObjects(c, vp)...)
	}
	r.objects = objs
}

func commandObjects(c render.Command, vp state.Viewport) []fyne.CanvasObject {
	switch c.Kind {
	case render.KindGridLine:
		return []fyne.CanvasObject{newLine(c.Stroke, c.Width, vp.ToDisplay(c.From), vp.ToDisplay(c.To))}
	case render.KindBox:
		d := vp.RectToDisplay(c.Rect)
		box := canvas.NewRectangle(c.Fill)
		box.StrokeColor = c.Stroke
		box.StrokeWidth = float32(c.Width)
		box.CornerRadius = float32(c.Radius)
		box.Move(fyne.NewPos(float32(d.X), float32(d.Y)))
		box.Resize(fyne.NewSize(float32(d.Width), float32(d.Height)))
		return []fyne.CanvasObject{box}
	case render.KindCenter:
		p := vp.ToDisplay(c.From)
		dot := canvas.NewCircle(c.Fill)
		dot.Move(fyne.NewPos(float32(p.X-c.Radius), float32(p.Y-c.Radius)))
		dot.Resize(fyne.NewSize(float32(2*c.Radius), float32(2*c.Radius)))
		return []fyne.CanvasObject{dot}
	case render.KindDashedLine:
		on, off := render.DashOn, render.DashOff
		if len(c.Dash) == 2 {
			on, off = c.Dash[0], c.Dash[1]
		}
		var objs []fyne.CanvasObject
		for _, s := range render.DashSegments(vp.ToDisplay(c.From), vp.ToDisplay(c.To), on, off) {
			objs = append(objs, newLine(c.Stroke, c.Width, s.From, s.To))
		}
		return objs
	}
	return nil
}

func newLine(c color.Color, width float64, from, to geometry.Point) *canvas.Line {
	l := canvas.NewLine(c)
	l.StrokeWidth = float32(width)
	l.Position1 = fyne.NewPos(float32(from.X), float32(from.Y))
	l.Position2 = fyne.NewPos(float32(to.X), float32(to.Y))
	return l
}
