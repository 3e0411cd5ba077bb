package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalMeasure/internal/geometry"
	"LocalMeasure/internal/store"
)

// RecordList shows saved measurements with search and sortable columns.
type RecordList struct {
	widget.BaseWidget
	content fyne.CanvasObject

	all      []store.Record
	shown    []store.Record
	query    store.Query
	selected string
	syncing  bool

	list      *widget.List
	search    *widget.Entry
	byTime    *widget.Button
	byDist    *widget.Button
	emptyNote *widget.Label

	OnSelect func(r store.Record)
	OnDelete func(id string)
}

func NewRecordList() *RecordList {
	l := &RecordList{query: store.DefaultQuery()}

	l.search = widget.NewEntry()
	l.search.SetPlaceHolder("Search distance, time or size")
	l.search.OnChanged = func(text string) {
		l.query.Search = text
		l.apply()
	}

	l.byTime = widget.NewButton("", func() { l.toggle(store.SortByTimestamp) })
	l.byDist = widget.NewButton("", func() { l.toggle(store.SortByDistance) })

	l.list = widget.NewList(
		func() int { return len(l.shown) },
		func() fyne.CanvasObject {
			del := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)
			del.Importance = widget.LowImportance
			return container.NewBorder(nil, nil, nil, del, widget.NewLabel(""))
		},
		func(id widget.ListItemID, o fyne.CanvasObject) {
			if id >= len(l.shown) {
				return
			}
			r := l.shown[id]
			row := o.(*fyne.Container)
			row.Objects[0].(*widget.Label).SetText(rowText(r))
			row.Objects[1].(*widget.Button).OnTapped = func() {
				if l.OnDelete != nil {
					l.OnDelete(r.ID)
				}
			}
		},
	)
	l.list.OnSelected = func(id widget.ListItemID) {
		if l.syncing || id >= len(l.shown) {
			return
		}
		if l.OnSelect != nil {
			l.OnSelect(l.shown[id])
		}
	}

	l.emptyNote = widget.NewLabel("No measurements yet")
	l.updateHeaders()

	header := container.NewVBox(
		widget.NewLabelWithStyle("Measurements", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		l.search,
		container.NewGridWithColumns(2, l.byTime, l.byDist),
	)
	l.content = container.NewBorder(header, l.emptyNote, nil, nil, l.list)
	l.ExtendBaseWidget(l)
	return l
}

func (l *RecordList) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(l.content)
}

func rowText(r store.Record) string {
	return fmt.Sprintf("%s px   %s   %s, %s", geometry.FormatDistance(r.Distance), r.DisplayTime(),
		geometry.FormatDimensions(r.Rectangles[0]), geometry.FormatDimensions(r.Rectangles[1]))
}

// SetRecords replaces the listed records.
func (l *RecordList) SetRecords(records []store.Record) {
	l.all = records
	l.apply()
}

// SetSelected highlights the record with id, or clears the highlight.
func (l *RecordList) SetSelected(id string) {
	l.selected = id
	l.syncSelection()
}

// Shown returns the records as currently filtered and sorted.
func (l *RecordList) Shown() []store.Record {
	out := make([]store.Record, len(l.shown))
	copy(out, l.shown)
	return out
}

func (l *RecordList) toggle(field store.SortField) {
	l.query = l.query.Toggle(field)
	l.updateHeaders()
	l.apply()
}

func (l *RecordList) apply() {
	l.shown = l.query.Apply(l.all)
	switch {
	case len(l.all) == 0:
		l.emptyNote.SetText("No measurements yet")
		l.emptyNote.Show()
	case len(l.shown) == 0:
		l.emptyNote.SetText("No measurements match")
		l.emptyNote.Show()
	default:
		l.emptyNote.Hide()
	}
	l.list.Refresh()
	l.syncSelection()
}

func (l *RecordList) syncSelection() {
	l.syncing = true
	defer func() { l.syncing = false }()

	for i, r := range l.shown {
		if r.ID == l.selected {
			l.list.Select(i)
			return
		}
	}
	l.list.UnselectAll()
}

func (l *RecordList) updateHeaders() {
	l.byTime.SetText("Time" + l.arrow(store.SortByTimestamp))
	l.byDist.SetText("Distance" + l.arrow(store.SortByDistance))
}

func (l *RecordList) arrow(field store.SortField) string {
	if l.query.Field != field {
		return ""
	}
	if l.query.Order == store.Ascending {
		return " ▲"
	}
	return " ▼"
}
