package notifier

import (
	"context"
)

// DefaultBatchLimit is the atomic-write ceiling of the reference
// document store. Storage implementations report their own limit via
// BatchLimit; bulk delivery chunks writes accordingly.
const DefaultBatchLimit = 500

// ListOptions filters and paginates notification listings. Results are
// always ordered by creation time, newest first.
type ListOptions struct {
	Limit      int      // Maximum notifications per page (0 = no limit)
	Cursor     string   // Opaque cursor from a previous page ("" = first page)
	Category   Category // If set, only this category
	OnlyUnread bool     // If true, only unread notifications
}

// Page is one page of a notification listing. NextCursor is empty on
// the last page.
type Page struct {
	Notifications []Notification
	NextCursor    string
}

// Storage is the persistence collaborator for notifications. Write
// failures are fail-closed: implementations return them unmasked so
// callers never believe a lost delivery succeeded.
//
// A zero ExpiresAt means the notification never expires. List,
// CountUnread, and DeleteExpired must treat such records as live.
type Storage interface {
	// Create stores a single notification.
	Create(ctx context.Context, n Notification) error

	// CreateBatch stores up to BatchLimit notifications as one atomic
	// write. Larger slices are rejected.
	CreateBatch(ctx context.Context, ns []Notification) error

	// BatchLimit returns the maximum cardinality of one atomic batch.
	BatchLimit() int

	// Get retrieves a single notification owned by the user.
	Get(ctx context.Context, userID, notifID string) (*Notification, error)

	// List returns a page of the user's notifications.
	List(ctx context.Context, userID string, opts ListOptions) (Page, error)

	// CountUnread returns the user's unread, unexpired notification
	// count without fetching records.
	CountUnread(ctx context.Context, userID string) (int, error)

	// CountByCategory returns per-category counts across the user's
	// stored notifications.
	CountByCategory(ctx context.Context, userID string, onlyUnread bool) (map[Category]int, error)

	// MarkRead marks the given notifications as read.
	MarkRead(ctx context.Context, userID string, notifIDs ...string) error

	// MarkAllRead marks every unread notification as read, optionally
	// restricted to one category ("" = all categories).
	MarkAllRead(ctx context.Context, userID string, category Category) error

	// Delete removes the given notifications.
	Delete(ctx context.Context, userID string, notifIDs ...string) error

	// DeleteRead removes every notification the user has read.
	DeleteRead(ctx context.Context, userID string) error

	// DeleteExpired removes every notification past its expiry.
	DeleteExpired(ctx context.Context, userID string) error
}
