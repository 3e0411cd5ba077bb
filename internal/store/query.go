package store

import (
	"sort"
	"strings"

	"LocalMeasure/internal/geometry"
)

// SortField selects the column records are ordered by.
type SortField int

const (
	SortByTimestamp SortField = iota
	SortByDistance
)

// SortOrder is ascending or descending.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// Query is the list view's search and sort state.
type Query struct {
	Search string
	Field  SortField
	Order  SortOrder
}

// DefaultQuery shows the newest records first.
func DefaultQuery() Query {
	return Query{Field: SortByTimestamp, Order: Descending}
}

// Toggle applies a click on a column header: the active column flips its
// order, a new column starts ascending.
func (q Query) Toggle(field SortField) Query {
	if q.Field == field {
		if q.Order == Ascending {
			q.Order = Descending
		} else {
			q.Order = Ascending
		}
		return q
	}
	q.Field = field
	q.Order = Ascending
	return q
}

// Apply filters then sorts records without modifying the input.
func (q Query) Apply(records []Record) []Record {
	return Sort(Filter(records, q.Search), q.Field, q.Order)
}

// Filter keeps records whose formatted distance, display time or rectangle
// dimensions contain query, case-insensitively.
func Filter(records []Record, query string) []Record {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if query == "" || matches(r, query) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r Record, query string) bool {
	fields := []string{
		geometry.FormatDistance(r.Distance),
		r.DisplayTime(),
		dimensions(r.Rectangles[0]),
		dimensions(r.Rectangles[1]),
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// dimensions uses the raw numbers so "100×50" matches a 100 by 50 box.
func dimensions(r geometry.Rectangle) string {
	return formatNumber(r.Width) + "×" + formatNumber(r.Height)
}

func formatNumber(v float64) string {
	s := strings.TrimRight(geometry.FormatDistance(v), "0")
	return strings.TrimSuffix(s, ".")
}

// Sort returns a sorted copy. Ties keep insertion order.
func Sort(records []Record, field SortField, order SortOrder) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		var cmp int
		switch field {
		case SortByDistance:
			cmp = compareFloat(out[i].Distance, out[j].Distance)
		default:
			cmp = out[i].Created().Compare(out[j].Created())
		}
		if order == Descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
