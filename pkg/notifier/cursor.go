package notifier

import (
	"fmt"
	"strings"
	"time"
)

// List cursors encode the (createdAt, id) position of the last row on
// a page. Creation times alone are not unique: fan-out writes whole
// batches with one timestamp, so the id breaks ties and keeps every
// row reachable across page boundaries.

func encodeCursor(createdAt time.Time, id string) string {
	return createdAt.Format(time.RFC3339Nano) + "|" + id
}

func decodeCursor(cursor string) (time.Time, string, error) {
	ts, id, ok := strings.Cut(cursor, "|")
	if !ok || id == "" {
		return time.Time{}, "", fmt.Errorf("invalid cursor %q", cursor)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid cursor %q: %w", cursor, err)
	}
	return createdAt, id, nil
}
