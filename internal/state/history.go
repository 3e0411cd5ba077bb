package state

// DefaultHistoryLimit bounds how many undo steps are kept.
const DefaultHistoryLimit = 50

// History is a linear undo history of rectangle sets.
//
// Undo moves present to the front of future and pops the tail of past into
// present. Redo is the mirror. Commit truncates future.
type History struct {
	past    []RectangleSet
	present RectangleSet
	future  []RectangleSet
	limit   int
}

// NewHistory creates an empty history keeping at most limit undo steps.
// A non-positive limit falls back to DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{present: RectangleSet{}, limit: limit}
}

// Present returns a copy of the current set.
func (h *History) Present() RectangleSet {
	return h.present.Clone()
}

// Commit makes next the present state and drops any redo steps.
func (h *History) Commit(next RectangleSet) {
	h.pushPast(h.present)
	h.present = next.Clone()
	h.future = nil
}

// Undo steps back once. It returns false when there is nothing to undo.
func (h *History) Undo() bool {
	if len(h.past) == 0 {
		return false
	}
	prev := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append([]RectangleSet{h.present}, h.future...)
	h.present = prev
	return true
}

// Redo steps forward once. It returns false when there is nothing to redo.
func (h *History) Redo() bool {
	if len(h.future) == 0 {
		return false
	}
	next := h.future[0]
	h.future = h.future[1:]
	h.pushPast(h.present)
	h.present = next
	return true
}

// Reset replaces the whole history with a single present state.
func (h *History) Reset(set RectangleSet) {
	h.past = nil
	h.future = nil
	h.present = set.Clone()
}

func (h *History) CanUndo() bool { return len(h.past) > 0 }
func (h *History) CanRedo() bool { return len(h.future) > 0 }

// Depth returns the number of undo and redo steps available.
func (h *History) Depth() (past, future int) {
	return len(h.past), len(h.future)
}

func (h *History) pushPast(set RectangleSet) {
	h.past = append(h.past, set)
	if over := len(h.past) - h.limit; over > 0 {
		h.past = append([]RectangleSet(nil), h.past[over:]...)
	}
}
