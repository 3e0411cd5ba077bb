package store

import (
	"time"

	"LocalMeasure/internal/geometry"
)

// TimestampLayout matches JavaScript's Date.toISOString so logs written by
// other clients of the same key stay readable.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Record is a saved measurement between two rectangles.
type Record struct {
	ID         string                `json:"id"`
	Rectangles [2]geometry.Rectangle `json:"rectangles"`
	Distance   float64               `json:"distance"`
	CreatedAt  string                `json:"createdAt"`
}

// NewRecord builds a record for a and b, computing their distance.
func NewRecord(id string, a, b geometry.Rectangle, at time.Time) Record {
	return Record{
		ID:         id,
		Rectangles: [2]geometry.Rectangle{a, b},
		Distance:   geometry.Distance(a, b),
		CreatedAt:  FormatTimestamp(at),
	}
}

// FormatTimestamp renders t in UTC with millisecond precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp accepts TimestampLayout or any RFC 3339 string.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(TimestampLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

// Created returns the parsed creation time, or the zero time when the
// stored string is unreadable.
func (r Record) Created() time.Time {
	t, err := ParseTimestamp(r.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DisplayTime formats the creation time in the local zone.
func (r Record) DisplayTime() string {
	t := r.Created()
	if t.IsZero() {
		return r.CreatedAt
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
