package state

import (
	"LocalMeasure/internal/geometry"
)

// Surface is the drawing state machine behind the canvas widget.
//
// It is Idle or Drawing. A press starts a gesture when fewer than two
// rectangles exist and the surface is editable; moving updates the preview;
// release commits the normalized rectangle. All points are in backing
// (canvas) coordinates.
type Surface struct {
	history  *History
	readOnly bool

	drawing bool
	start   geometry.Point
	preview *geometry.Rectangle

	// OnRectangleCommitted fires after a gesture adds a rectangle.
	OnRectangleCommitted func(r geometry.Rectangle)
	// OnCleared fires after Clear empties the surface.
	OnCleared func()
	// OnRestored fires after undo or redo with the new present set.
	// An empty set means nothing is left on the surface.
	OnRestored func(set RectangleSet)
	// OnChanged fires whenever the surface needs to be redrawn.
	OnChanged func()
}

// NewSurface creates an empty editable surface.
func NewSurface(historyLimit int) *Surface {
	return &Surface{history: NewHistory(historyLimit)}
}

// Load replaces the surface content. History is reset and any gesture in
// progress is dropped.
func (s *Surface) Load(set RectangleSet, readOnly bool) {
	if len(set) > MaxRectangles {
		set = set[:MaxRectangles]
	}
	s.history.Reset(set)
	s.readOnly = readOnly
	s.cancel()
	s.changed()
}

func (s *Surface) Rectangles() RectangleSet { return s.history.Present() }
func (s *Surface) ReadOnly() bool           { return s.readOnly }
func (s *Surface) Drawing() bool            { return s.drawing }
func (s *Surface) CanUndo() bool            { return !s.readOnly && s.history.CanUndo() }
func (s *Surface) CanRedo() bool            { return !s.readOnly && s.history.CanRedo() }

// CanDraw reports whether a new gesture would be accepted.
func (s *Surface) CanDraw() bool {
	return !s.readOnly && !s.history.present.Full()
}

// Preview returns the rectangle being dragged, if any.
func (s *Surface) Preview() (geometry.Rectangle, bool) {
	if s.preview == nil {
		return geometry.Rectangle{}, false
	}
	return *s.preview, true
}

// Visible returns the committed set with the live preview appended.
func (s *Surface) Visible() RectangleSet {
	set := s.history.Present()
	if s.preview != nil {
		set = set.With(*s.preview)
	}
	return set
}

// PointerDown starts a gesture at p.
func (s *Surface) PointerDown(p geometry.Point) {
	if s.drawing || !s.CanDraw() {
		return
	}
	s.drawing = true
	s.start = p
	r := geometry.FromPoints(p, p)
	s.preview = &r
	s.changed()
}

// PointerMove updates the preview while a gesture is in progress.
func (s *Surface) PointerMove(p geometry.Point) {
	if !s.drawing {
		return
	}
	r := geometry.FromPoints(s.start, p)
	s.preview = &r
	s.changed()
}

// PointerUp ends the gesture at p and commits the rectangle.
func (s *Surface) PointerUp(p geometry.Point) {
	if !s.drawing {
		return
	}
	r := geometry.FromPoints(s.start, p)
	s.drawing = false
	s.preview = nil

	s.history.Commit(s.history.present.With(r))
	s.changed()
	if s.OnRectangleCommitted != nil {
		s.OnRectangleCommitted(r)
	}
}

// PointerLeave abandons the gesture without committing.
func (s *Surface) PointerLeave() {
	if !s.drawing {
		return
	}
	s.cancel()
	s.changed()
}

// Cancel is an alias of PointerLeave for touch cancellation.
func (s *Surface) Cancel() {
	s.PointerLeave()
}

// Undo steps the history back once.
func (s *Surface) Undo() bool {
	if s.readOnly || !s.history.Undo() {
		return false
	}
	s.restored()
	return true
}

// Redo steps the history forward once.
func (s *Surface) Redo() bool {
	if s.readOnly || !s.history.Redo() {
		return false
	}
	s.restored()
	return true
}

// Clear empties the surface as an undoable step.
func (s *Surface) Clear() {
	if s.readOnly {
		return
	}
	s.cancel()
	s.history.Commit(RectangleSet{})
	s.changed()
	if s.OnCleared != nil {
		s.OnCleared()
	}
}

// Apply runs a keyboard action and reports whether anything changed.
func (s *Surface) Apply(a Action) bool {
	switch a {
	case ActionUndo:
		return s.Undo()
	case ActionRedo:
		return s.Redo()
	}
	return false
}

func (s *Surface) restored() {
	s.cancel()
	s.changed()
	if s.OnRestored != nil {
		s.OnRestored(s.history.Present())
	}
}

func (s *Surface) cancel() {
	s.drawing = false
	s.preview = nil
}

func (s *Surface) changed() {
	if s.OnChanged != nil {
		s.OnChanged()
	}
}
