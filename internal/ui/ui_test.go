package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalMeasure/internal/config"
	"LocalMeasure/internal/geometry"
	"LocalMeasure/internal/state"
	"LocalMeasure/internal/store"
	"LocalMeasure/internal/store/kv"
)

var backing = geometry.Size{Width: 800, Height: 600}

func mouse(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func drawOn(b *BoardWidget, x1, y1, x2, y2 float32) {
	b.MouseDown(mouse(x1, y1))
	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x2, y2)}})
	b.MouseUp(mouse(x2, y2))
	b.DragEnd()
}

func newBoard(t *testing.T) (*BoardWidget, *state.Surface) {
	t.Helper()
	test.NewApp()
	s := state.NewSurface(state.DefaultHistoryLimit)
	b := NewBoardWidget(s, backing)
	b.Resize(fyne.NewSize(400, 300))
	return b, s
}

func TestBoardMapsPointerToBacking(t *testing.T) {
	b, s := newBoard(t)

	drawOn(b, 60, 70, 10, 20)

	require.Len(t, s.Rectangles(), 1)
	assert.Equal(t, geometry.Rectangle{X: 20, Y: 40, Width: 100, Height: 100}, s.Rectangles()[0])
}

func TestBoardMouseOutCancels(t *testing.T) {
	b, s := newBoard(t)

	b.MouseDown(mouse(10, 10))
	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(50, 50)}})
	b.MouseOut()
	b.DragEnd()

	assert.False(t, s.Drawing())
	assert.Empty(t, s.Rectangles())
}

func touch(x, y float32) *mobile.TouchEvent {
	return &mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestBoardTouchGesture(t *testing.T) {
	b, s := newBoard(t)

	b.TouchDown(touch(10, 20))
	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(60, 70)}})
	b.TouchUp(touch(60, 70))

	require.Len(t, s.Rectangles(), 1)
	assert.Equal(t, geometry.Rectangle{X: 20, Y: 40, Width: 100, Height: 100}, s.Rectangles()[0])
}

func TestBoardTouchCancelDropsGesture(t *testing.T) {
	b, s := newBoard(t)

	b.TouchDown(touch(10, 10))
	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(50, 50)}})
	require.True(t, s.Drawing())

	b.TouchCancel(touch(50, 50))
	b.DragEnd()

	assert.False(t, s.Drawing())
	assert.Empty(t, s.Rectangles())
	_, previewing := s.Preview()
	assert.False(t, previewing)
}

func TestBoardIgnoresSecondaryButton(t *testing.T) {
	b, s := newBoard(t)

	e := mouse(10, 10)
	e.Button = desktop.MouseButtonSecondary
	b.MouseDown(e)

	assert.False(t, s.Drawing())
}

func TestBoardRendererObjects(t *testing.T) {
	b, _ := newBoard(t)
	drawOn(b, 0, 0, 50, 50)
	drawOn(b, 50, 0, 100, 50)

	var rects, circles, lines int
	for _, o := range test.WidgetRenderer(b).Objects() {
		switch o.(type) {
		case *canvas.Rectangle:
			rects++
		case *canvas.Circle:
			circles++
		case *canvas.Line:
			lines++
		}
	}
	// background and two boxes
	assert.Equal(t, 3, rects)
	assert.Equal(t, 2, circles)
	// 41+31 grid lines plus five dashes over the 50px connector
	assert.Equal(t, 77, lines)
}

func listRecords() []store.Record {
	at := time.Date(2025, 1, 16, 9, 0, 0, 0, time.UTC)
	sq := geometry.Rectangle{Width: 100, Height: 100}
	return []store.Record{
		store.NewRecord("far", sq, geometry.Rectangle{X: 100, Y: 100, Width: 100, Height: 100}, at),
		store.NewRecord("near", sq, geometry.Rectangle{X: 50, Y: 50, Width: 100, Height: 100}, at.Add(time.Hour)),
		store.NewRecord("wide", sq, geometry.Rectangle{X: 300, Width: 40, Height: 20}, at.Add(2*time.Hour)),
	}
}

func ids(records []store.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestRecordListSortAndSearch(t *testing.T) {
	test.NewApp()
	l := NewRecordList()
	l.SetRecords(listRecords())

	assert.Equal(t, []string{"wide", "near", "far"}, ids(l.Shown()))

	test.Tap(l.byDist)
	assert.Equal(t, []string{"near", "far", "wide"}, ids(l.Shown()))
	assert.Equal(t, "Distance ▲", l.byDist.Text)
	assert.Equal(t, "Time", l.byTime.Text)

	test.Tap(l.byDist)
	assert.Equal(t, []string{"wide", "far", "near"}, ids(l.Shown()))

	test.Type(l.search, "40×20")
	assert.Equal(t, []string{"wide"}, ids(l.Shown()))
}

func TestRecordListSelection(t *testing.T) {
	test.NewApp()
	l := NewRecordList()
	l.SetRecords(listRecords())

	var picked []string
	l.OnSelect = func(r store.Record) { picked = append(picked, r.ID) }

	l.SetSelected("far")
	assert.Empty(t, picked)

	l.list.Select(0)
	assert.Equal(t, []string{"wide"}, picked)
}

func TestMainViewSaveAndDelete(t *testing.T) {
	test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()

	cfg := config.Default()
	cfg.Backend = config.BackendMemory
	st := store.New(kv.NewMemory(), store.DefaultKey)
	v := NewMainView(w, cfg, st)
	draw := func(x1, y1, x2, y2 float64) {
		v.Surface.PointerDown(geometry.Point{X: x1, Y: y1})
		v.Surface.PointerUp(geometry.Point{X: x2, Y: y2})
	}

	v.Save()
	assert.Equal(t, "Draw two rectangles before saving", v.Status.Text)

	draw(0, 0, 100, 100)
	assert.Equal(t, "Draw 1 more rectangle(s)", v.Toolbar.Distance.Text)
	draw(100, 100, 200, 200)
	assert.Equal(t, "Distance: 141.42 px", v.Toolbar.Distance.Text)

	v.Save()
	assert.Equal(t, "Saved measurement: 141.42 px", v.Status.Text)
	assert.Empty(t, v.Surface.Rectangles())
	require.Len(t, st.List(), 1)
	require.Len(t, v.Records.Shown(), 1)

	id := st.List()[0].ID
	require.True(t, v.Controller.Select(id))
	assert.True(t, v.Surface.ReadOnly())
	assert.Len(t, v.Surface.Rectangles(), 2)

	v.Delete(id)
	assert.Empty(t, st.List())
	assert.Empty(t, v.Records.Shown())
	assert.False(t, v.Surface.ReadOnly())
	assert.Empty(t, v.Surface.Rectangles())
}
