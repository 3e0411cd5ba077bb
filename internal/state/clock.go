package state

import (
	"time"

	"github.com/google/uuid"
)

// Clock supplies the current time. Tests swap it for a fixed one.
type Clock func() time.Time

// SystemClock reads the wall clock.
func SystemClock() time.Time {
	return time.Now()
}

// NewID returns a fresh unique record id.
func NewID() string {
	return uuid.NewString()
}
