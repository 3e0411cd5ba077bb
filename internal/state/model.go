package state

import (
	"LocalMeasure/internal/geometry"
)

// MaxRectangles is how many rectangles a measurement holds.
const MaxRectangles = 2

// RectangleSet is the ordered list of rectangles on the surface.
// Index 0 is the primary rectangle, index 1 the secondary.
type RectangleSet []geometry.Rectangle

// Full reports whether no more rectangles may be drawn.
func (s RectangleSet) Full() bool {
	return len(s) >= MaxRectangles
}

// Complete reports whether the set is ready to be measured.
func (s RectangleSet) Complete() bool {
	return len(s) == MaxRectangles
}

// Clone returns a copy that does not share the backing array.
func (s RectangleSet) Clone() RectangleSet {
	if s == nil {
		return RectangleSet{}
	}
	out := make(RectangleSet, len(s))
	copy(out, s)
	return out
}

// With returns a new set with r appended.
func (s RectangleSet) With(r geometry.Rectangle) RectangleSet {
	out := make(RectangleSet, len(s), len(s)+1)
	copy(out, s)
	return append(out, r)
}

// Last returns the most recently added rectangle.
func (s RectangleSet) Last() (geometry.Rectangle, bool) {
	if len(s) == 0 {
		return geometry.Rectangle{}, false
	}
	return s[len(s)-1], true
}

// Distance returns the center distance of a complete set.
func (s RectangleSet) Distance() (float64, bool) {
	if !s.Complete() {
		return 0, false
	}
	return geometry.Distance(s[0], s[1]), true
}
