// Package clock supplies the timestamp and id generators the repository
// layer depends on. Both are plain functions so tests can substitute fixed
// values without any global state.
package clock

import (
	"time"

	"github.com/google/uuid"
)

// ISO8601Millis is the stored timestamp layout: UTC wall-clock with
// millisecond precision, e.g. "2024-01-15T10:30:00.000Z".
const ISO8601Millis = "2006-01-02T15:04:05.000Z07:00"

// NowISO returns the current UTC instant formatted per ISO8601Millis.
func NowISO() string {
	return time.Now().UTC().Format(ISO8601Millis)
}

// NewID returns a random unique document id.
func NewID() string {
	return uuid.New().String()
}
