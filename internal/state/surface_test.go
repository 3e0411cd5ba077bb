package state

import (
	"testing"

	"LocalMeasure/internal/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type surfaceEvents struct {
	committed []geometry.Rectangle
	restored  []RectangleSet
	cleared   int
	changed   int
}

func newRecordedSurface() (*Surface, *surfaceEvents) {
	ev := &surfaceEvents{}
	s := NewSurface(0)
	s.OnRectangleCommitted = func(r geometry.Rectangle) { ev.committed = append(ev.committed, r) }
	s.OnRestored = func(set RectangleSet) { ev.restored = append(ev.restored, set) }
	s.OnCleared = func() { ev.cleared++ }
	s.OnChanged = func() { ev.changed++ }
	return s, ev
}

func drag(s *Surface, x1, y1, x2, y2 float64) {
	s.PointerDown(geometry.Point{X: x1, Y: y1})
	s.PointerMove(geometry.Point{X: (x1 + x2) / 2, Y: (y1 + y2) / 2})
	s.PointerUp(geometry.Point{X: x2, Y: y2})
}

func TestSurfaceDrawCommits(t *testing.T) {
	s, ev := newRecordedSurface()

	drag(s, 100, 100, 0, 0)

	want := geometry.Rectangle{X: 0, Y: 0, Width: 100, Height: 100}
	require.Len(t, ev.committed, 1)
	assert.Equal(t, want, ev.committed[0])
	assert.Equal(t, RectangleSet{want}, s.Rectangles())
	assert.False(t, s.Drawing())
	assert.True(t, s.CanUndo())
}

func TestSurfacePreviewDoesNotTouchHistory(t *testing.T) {
	s, ev := newRecordedSurface()

	s.PointerDown(geometry.Point{X: 10, Y: 10})
	s.PointerMove(geometry.Point{X: 5, Y: 30})

	p, ok := s.Preview()
	require.True(t, ok)
	assert.Equal(t, geometry.Rectangle{X: 5, Y: 10, Width: 5, Height: 20}, p)
	assert.Empty(t, s.Rectangles())
	assert.False(t, s.CanUndo())
	assert.Equal(t, RectangleSet{p}, s.Visible())
	assert.Empty(t, ev.committed)
	assert.Equal(t, 2, ev.changed)
}

func TestSurfaceThirdRectangleIgnored(t *testing.T) {
	s, ev := newRecordedSurface()
	drag(s, 0, 0, 10, 10)
	drag(s, 20, 20, 30, 30)
	before := s.Rectangles()

	drag(s, 40, 40, 50, 50)

	assert.Len(t, ev.committed, 2)
	assert.Equal(t, before, s.Rectangles())
	assert.False(t, s.CanDraw())
}

func TestSurfaceZeroSizeCountsTowardLimit(t *testing.T) {
	s, ev := newRecordedSurface()
	s.PointerDown(geometry.Point{X: 42, Y: 7})
	s.PointerUp(geometry.Point{X: 42, Y: 7})
	s.PointerDown(geometry.Point{X: 1, Y: 1})
	s.PointerUp(geometry.Point{X: 1, Y: 1})

	require.Len(t, ev.committed, 2)
	assert.Equal(t, geometry.Rectangle{X: 42, Y: 7}, ev.committed[0])
	assert.True(t, s.Rectangles().Full())

	drag(s, 5, 5, 50, 50)
	assert.Len(t, ev.committed, 2)
}

func TestSurfaceUndoRedo(t *testing.T) {
	s, ev := newRecordedSurface()
	drag(s, 0, 0, 100, 100)

	assert.True(t, s.Undo())
	assert.Empty(t, s.Rectangles())
	assert.True(t, s.CanRedo())
	require.Len(t, ev.restored, 1)
	assert.Empty(t, ev.restored[0])

	assert.True(t, s.Redo())
	assert.Equal(t, RectangleSet{{Width: 100, Height: 100}}, s.Rectangles())
	require.Len(t, ev.restored, 2)
	assert.Equal(t, RectangleSet{{Width: 100, Height: 100}}, ev.restored[1])
}

func TestSurfaceDrawAfterUndoClearsRedo(t *testing.T) {
	s, ev := newRecordedSurface()
	drag(s, 0, 0, 10, 10)
	s.Undo()
	drag(s, 20, 20, 30, 30)

	assert.False(t, s.CanRedo())
	assert.False(t, s.Redo())
	assert.Len(t, ev.restored, 1)
	assert.Equal(t, RectangleSet{{X: 20, Y: 20, Width: 10, Height: 10}}, s.Rectangles())
}

func TestSurfacePointerLeaveDiscards(t *testing.T) {
	s, ev := newRecordedSurface()
	s.PointerDown(geometry.Point{X: 0, Y: 0})
	s.PointerMove(geometry.Point{X: 50, Y: 50})
	s.PointerLeave()
	s.PointerUp(geometry.Point{X: 60, Y: 60})

	assert.Empty(t, ev.committed)
	assert.Empty(t, s.Rectangles())
	_, ok := s.Preview()
	assert.False(t, ok)
}

func TestSurfaceClear(t *testing.T) {
	s, ev := newRecordedSurface()
	drag(s, 0, 0, 10, 10)
	drag(s, 20, 20, 30, 30)

	s.Clear()
	assert.Equal(t, 1, ev.cleared)
	assert.Empty(t, s.Rectangles())
	assert.False(t, s.CanRedo())

	assert.True(t, s.Undo())
	assert.Len(t, s.Rectangles(), 2)
}

func TestSurfaceReadOnly(t *testing.T) {
	s, ev := newRecordedSurface()
	s.Load(RectangleSet{rectA}, true)

	drag(s, 200, 200, 300, 300)
	s.Clear()
	assert.False(t, s.Undo())
	assert.False(t, s.Redo())

	assert.Empty(t, ev.committed)
	assert.Zero(t, ev.cleared)
	assert.Equal(t, RectangleSet{rectA}, s.Rectangles())
	assert.False(t, s.CanUndo())
}

func TestSurfaceLoadResetsHistory(t *testing.T) {
	s, _ := newRecordedSurface()
	drag(s, 0, 0, 10, 10)
	s.PointerDown(geometry.Point{X: 1, Y: 1})

	s.Load(RectangleSet{rectA, rectB}, false)

	assert.False(t, s.Drawing())
	assert.False(t, s.CanUndo())
	assert.Equal(t, RectangleSet{rectA, rectB}, s.Rectangles())
}

func TestShortcutAction(t *testing.T) {
	cases := []struct {
		key             string
		shortcut, shift bool
		want            Action
	}{
		{"Z", true, false, ActionUndo},
		{"z", true, true, ActionRedo},
		{"Z", false, false, ActionNone},
		{"Y", true, false, ActionNone},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ShortcutAction(tc.key, tc.shortcut, tc.shift), tc)
	}

	s, _ := newRecordedSurface()
	drag(s, 0, 0, 10, 10)
	assert.True(t, s.Apply(ShortcutAction("Z", true, false)))
	assert.True(t, s.Apply(ShortcutAction("Z", true, true)))
	assert.False(t, s.Apply(ActionNone))
}
