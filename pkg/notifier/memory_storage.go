package notifier

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// MemoryStorage is an in-memory implementation of the Storage
// interface. Suitable for development and testing.
type MemoryStorage struct {
	notifications map[string][]Notification // userID -> notifications
	batchLimit    int
	mu            sync.RWMutex
}

// MemoryStorageOption configures a MemoryStorage.
type MemoryStorageOption func(*MemoryStorage)

// WithMemoryBatchLimit overrides the simulated atomic-batch ceiling.
func WithMemoryBatchLimit(limit int) MemoryStorageOption {
	return func(s *MemoryStorage) {
		if limit > 0 {
			s.batchLimit = limit
		}
	}
}

// NewMemoryStorage creates a new in-memory notification storage.
func NewMemoryStorage(opts ...MemoryStorageOption) *MemoryStorage {
	s := &MemoryStorage{
		notifications: make(map[string][]Notification),
		batchLimit:    DefaultBatchLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStorage) BatchLimit() int {
	return s.batchLimit
}

func (s *MemoryStorage) Create(ctx context.Context, n Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store(n)
}

func (s *MemoryStorage) CreateBatch(ctx context.Context, ns []Notification) error {
	if len(ns) > s.batchLimit {
		return fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(ns), s.batchLimit)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Validate everything up front so the batch commits atomically.
	for _, n := range ns {
		if n.ID == "" {
			return fmt.Errorf("notification ID is required")
		}
		if n.UserID == "" {
			return fmt.Errorf("user ID is required")
		}
	}
	for _, n := range ns {
		if err := s.store(n); err != nil {
			return err
		}
	}
	return nil
}

func (s *MemoryStorage) store(n Notification) error {
	if n.ID == "" {
		return fmt.Errorf("notification ID is required")
	}
	if n.UserID == "" {
		return fmt.Errorf("user ID is required")
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	s.notifications[n.UserID] = append(s.notifications[n.UserID], n)
	return nil
}

func (s *MemoryStorage) Get(ctx context.Context, userID, notifID string) (*Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.notifications[userID] {
		if n.ID == notifID {
			// Return a copy to prevent external mutation of stored data.
			notif := n
			return &notif, nil
		}
	}
	return nil, ErrNotificationNotFound
}

func (s *MemoryStorage) List(ctx context.Context, userID string, opts ListOptions) (Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()

	var cursorTime time.Time
	var cursorID string
	if opts.Cursor != "" {
		t, id, err := decodeCursor(opts.Cursor)
		if err != nil {
			return Page{}, err
		}
		cursorTime, cursorID = t, id
	}

	var filtered []Notification
	for _, n := range s.notifications[userID] {
		if n.isExpiredAt(now) {
			continue
		}
		if opts.OnlyUnread && n.Read {
			continue
		}
		if opts.Category != "" && n.Category != opts.Category {
			continue
		}
		if !cursorTime.IsZero() {
			// Keep only rows strictly after the cursor position in
			// (createdAt desc, id desc) order.
			if n.CreatedAt.After(cursorTime) {
				continue
			}
			if n.CreatedAt.Equal(cursorTime) && n.ID >= cursorID {
				continue
			}
		}
		filtered = append(filtered, n)
	}

	// Newest first, id breaks creation-time ties.
	sort.SliceStable(filtered, func(i, j int) bool {
		if !filtered[i].CreatedAt.Equal(filtered[j].CreatedAt) {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		}
		return filtered[i].ID > filtered[j].ID
	})

	page := Page{Notifications: filtered}
	if opts.Limit > 0 && len(filtered) > opts.Limit {
		page.Notifications = filtered[:opts.Limit]
		last := page.Notifications[opts.Limit-1]
		page.NextCursor = encodeCursor(last.CreatedAt, last.ID)
	}
	if page.Notifications == nil {
		page.Notifications = []Notification{}
	}
	return page, nil
}

func (s *MemoryStorage) CountUnread(ctx context.Context, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	count := 0
	for _, n := range s.notifications[userID] {
		if !n.Read && !n.isExpiredAt(now) {
			count++
		}
	}
	return count, nil
}

func (s *MemoryStorage) CountByCategory(ctx context.Context, userID string, onlyUnread bool) (map[Category]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[Category]int)
	for _, n := range s.notifications[userID] {
		if onlyUnread && n.Read {
			continue
		}
		counts[n.Category]++
	}
	return counts, nil
}

func (s *MemoryStorage) MarkRead(ctx context.Context, userID string, notifIDs ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idSet := make(map[string]bool, len(notifIDs))
	for _, id := range notifIDs {
		idSet[id] = true
	}

	notifications := s.notifications[userID]
	for i := range notifications {
		if idSet[notifications[i].ID] {
			notifications[i].MarkAsRead()
		}
	}
	return nil
}

func (s *MemoryStorage) MarkAllRead(ctx context.Context, userID string, category Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notifications := s.notifications[userID]
	for i := range notifications {
		if notifications[i].Read {
			continue
		}
		if category != "" && notifications[i].Category != category {
			continue
		}
		notifications[i].MarkAsRead()
	}
	return nil
}

func (s *MemoryStorage) Delete(ctx context.Context, userID string, notifIDs ...string) error {
	idSet := make(map[string]bool, len(notifIDs))
	for _, id := range notifIDs {
		idSet[id] = true
	}
	s.deleteWhere(userID, func(n Notification) bool { return idSet[n.ID] })
	return nil
}

func (s *MemoryStorage) DeleteRead(ctx context.Context, userID string) error {
	s.deleteWhere(userID, func(n Notification) bool { return n.Read })
	return nil
}

func (s *MemoryStorage) DeleteExpired(ctx context.Context, userID string) error {
	now := time.Now()
	s.deleteWhere(userID, func(n Notification) bool { return n.isExpiredAt(now) })
	return nil
}

func (s *MemoryStorage) deleteWhere(userID string, match func(Notification) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var kept []Notification
	for _, n := range s.notifications[userID] {
		if !match(n) {
			kept = append(kept, n)
		}
	}
	s.notifications[userID] = kept
}
