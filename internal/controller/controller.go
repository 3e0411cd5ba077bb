// Package controller connects the drawing surface to the record store.
package controller

import (
	"fmt"
	"log"

	"LocalMeasure/internal/geometry"
	"LocalMeasure/internal/state"
	"LocalMeasure/internal/store"
)

// Surface is the part of the drawing surface the controller drives.
type Surface interface {
	Load(set state.RectangleSet, readOnly bool)
}

// RecordStore is the persistence the controller needs.
type RecordStore interface {
	Save(r store.Record) error
	List() []store.Record
	Delete(id string) error
	ClearAll() error
}

// Observer is told about every change to the record log.
type Observer interface {
	RecordSaved(r store.Record)
	RecordDeleted(id string)
	RecordsCleared()
}

// Controller owns the working rectangle set, the selected record and the
// cached record list. All methods run on the UI goroutine.
type Controller struct {
	store   RecordStore
	surface Surface

	// Clock and NewID default to the wall clock and UUIDs.
	Clock state.Clock
	NewID func() string

	rects     state.RectangleSet
	selected  string
	records   []store.Record
	observers []Observer

	OnRecordsChanged   func(records []store.Record)
	OnSelectionChanged func(id string)
	OnWorkingChanged   func(set state.RectangleSet)
}

// New creates a controller and loads the current record list.
func New(s RecordStore) *Controller {
	c := &Controller{
		store: s,
		Clock: state.SystemClock,
		NewID: state.NewID,
		rects: state.RectangleSet{},
	}
	c.records = s.List()
	return c
}

// Bind attaches the controller to a surface so drawing events flow in.
func (c *Controller) Bind(s *state.Surface) {
	c.surface = s
	s.OnRectangleCommitted = c.HandleCommitted
	s.OnRestored = c.HandleRestored
	s.OnCleared = c.HandleCleared
}

// Subscribe registers an observer of the record log.
func (c *Controller) Subscribe(o Observer) {
	c.observers = append(c.observers, o)
}

func (c *Controller) Rectangles() state.RectangleSet { return c.rects.Clone() }
func (c *Controller) Selected() string                { return c.selected }

// CanSave reports whether Save would create a record.
func (c *Controller) CanSave() bool {
	return c.rects.Complete()
}

// Records returns the cached record list in insertion order.
func (c *Controller) Records() []store.Record {
	out := make([]store.Record, len(c.records))
	copy(out, c.records)
	return out
}

// HandleCommitted adds a freshly drawn rectangle to the working set.
func (c *Controller) HandleCommitted(r geometry.Rectangle) {
	if c.rects.Full() {
		return
	}
	c.rects = c.rects.With(r)
	c.workingChanged()
}

// HandleRestored adopts the surface's set after undo or redo.
func (c *Controller) HandleRestored(set state.RectangleSet) {
	c.rects = set.Clone()
	c.workingChanged()
}

// HandleCleared empties the working set.
func (c *Controller) HandleCleared() {
	c.rects = state.RectangleSet{}
	c.setSelected("")
	c.workingChanged()
}

// Save stores the two working rectangles as a new record and starts a new
// measurement. With fewer than two rectangles it does nothing and reports
// false.
func (c *Controller) Save() (store.Record, bool, error) {
	if !c.rects.Complete() {
		return store.Record{}, false, nil
	}
	rec := store.NewRecord(c.NewID(), c.rects[0], c.rects[1], c.Clock())
	if err := c.store.Save(rec); err != nil {
		return store.Record{}, false, fmt.Errorf("save measurement: %w", err)
	}
	log.Printf("[CTRL] Saved measurement %s: %s", rec.ID, geometry.FormatDistance(rec.Distance))

	c.reset()
	c.refresh()
	for _, o := range c.observers {
		o.RecordSaved(rec)
	}
	return rec, true, nil
}

// Select shows a saved record on the surface, read-only. Unknown ids are
// ignored.
func (c *Controller) Select(id string) bool {
	rec, ok := c.find(id)
	if !ok {
		return false
	}
	c.rects = state.RectangleSet{rec.Rectangles[0], rec.Rectangles[1]}
	c.setSelected(id)
	c.load(true)
	return true
}

// NewMeasurement discards the working rectangles and any selection.
func (c *Controller) NewMeasurement() {
	c.reset()
}

// Delete removes a record. Deleting the selected record clears the working
// state; unknown ids are ignored.
func (c *Controller) Delete(id string) error {
	c.records = c.store.List()
	if _, ok := c.find(id); !ok {
		return nil
	}
	if err := c.store.Delete(id); err != nil {
		return fmt.Errorf("delete measurement: %w", err)
	}
	if c.selected == id {
		c.reset()
	}
	c.refresh()
	for _, o := range c.observers {
		o.RecordDeleted(id)
	}
	return nil
}

// ClearAll deletes every record.
func (c *Controller) ClearAll() error {
	if err := c.store.ClearAll(); err != nil {
		return fmt.Errorf("clear measurements: %w", err)
	}
	if c.selected != "" {
		c.reset()
	}
	c.refresh()
	for _, o := range c.observers {
		o.RecordsCleared()
	}
	return nil
}

// Reload re-reads the store after an outside change. A selected record
// that disappeared is deselected.
func (c *Controller) Reload() {
	c.refresh()
	if c.selected == "" {
		return
	}
	if _, ok := c.find(c.selected); !ok {
		c.reset()
	}
}

func (c *Controller) find(id string) (store.Record, bool) {
	for _, r := range c.records {
		if r.ID == id {
			return r, true
		}
	}
	return store.Record{}, false
}

func (c *Controller) reset() {
	c.rects = state.RectangleSet{}
	c.setSelected("")
	c.load(false)
}

func (c *Controller) load(readOnly bool) {
	if c.surface != nil {
		c.surface.Load(c.rects.Clone(), readOnly)
	}
	c.workingChanged()
}

func (c *Controller) refresh() {
	c.records = c.store.List()
	if c.OnRecordsChanged != nil {
		c.OnRecordsChanged(c.Records())
	}
}

func (c *Controller) setSelected(id string) {
	if c.selected == id {
		return
	}
	c.selected = id
	if c.OnSelectionChanged != nil {
		c.OnSelectionChanged(id)
	}
}

func (c *Controller) workingChanged() {
	if c.OnWorkingChanged != nil {
		c.OnWorkingChanged(c.Rectangles())
	}
}
