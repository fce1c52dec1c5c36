package notifier

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedNotification(i int, userID string, category Category, read bool) Notification {
	n := Notification{
		ID:        "n-" + strconv.Itoa(i),
		UserID:    userID,
		Kind:      KindGradePosted,
		Category:  category,
		Priority:  PriorityMedium,
		Title:     "t",
		Message:   "m",
		Read:      read,
		CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	return n
}

func TestMemoryStorage_CreateValidation(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	err := s.Create(ctx, Notification{UserID: "u1"})
	assert.Error(t, err, "missing id")

	err = s.Create(ctx, Notification{ID: "n1"})
	assert.Error(t, err, "missing user id")
}

func TestMemoryStorage_Get(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, seedNotification(1, "u1", CategoryGrades, false)))

	n, err := s.Get(ctx, "u1", "n-1")
	require.NoError(t, err)
	assert.Equal(t, "n-1", n.ID)

	_, err = s.Get(ctx, "u1", "missing")
	assert.ErrorIs(t, err, ErrNotificationNotFound)

	_, err = s.Get(ctx, "other-user", "n-1")
	assert.ErrorIs(t, err, ErrNotificationNotFound, "ownership is part of the key")
}

func TestMemoryStorage_CountUnread(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	for i := range 5 {
		require.NoError(t, s.Create(ctx, seedNotification(i, "u1", CategoryGrades, false)))
	}
	require.NoError(t, s.MarkRead(ctx, "u1", "n-0", "n-1"))

	count, err := s.CountUnread(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestMemoryStorage_CountUnread_SkipsExpired(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	expired := seedNotification(1, "u1", CategoryGrades, false)
	expired.ExpiresAt = time.Now().Add(-time.Hour)
	require.NoError(t, s.Create(ctx, expired))
	require.NoError(t, s.Create(ctx, seedNotification(2, "u1", CategoryGrades, false)))

	count, err := s.CountUnread(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMemoryStorage_CountByCategory(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, seedNotification(1, "u1", CategoryGrades, false)))
	require.NoError(t, s.Create(ctx, seedNotification(2, "u1", CategoryGrades, true)))
	require.NoError(t, s.Create(ctx, seedNotification(3, "u1", CategoryMessages, false)))

	all, err := s.CountByCategory(ctx, "u1", false)
	require.NoError(t, err)
	assert.Equal(t, map[Category]int{CategoryGrades: 2, CategoryMessages: 1}, all)

	unread, err := s.CountByCategory(ctx, "u1", true)
	require.NoError(t, err)
	assert.Equal(t, map[Category]int{CategoryGrades: 1, CategoryMessages: 1}, unread)
}

func TestMemoryStorage_List(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, seedNotification(1, "u1", CategoryGrades, false)))
	require.NoError(t, s.Create(ctx, seedNotification(2, "u1", CategoryMessages, true)))
	require.NoError(t, s.Create(ctx, seedNotification(3, "u1", CategoryGrades, false)))

	t.Run("newest first", func(t *testing.T) {
		page, err := s.List(ctx, "u1", ListOptions{})
		require.NoError(t, err)
		require.Len(t, page.Notifications, 3)
		assert.Equal(t, "n-3", page.Notifications[0].ID)
		assert.Equal(t, "n-1", page.Notifications[2].ID)
		assert.Empty(t, page.NextCursor)
	})

	t.Run("category filter", func(t *testing.T) {
		page, err := s.List(ctx, "u1", ListOptions{Category: CategoryMessages})
		require.NoError(t, err)
		require.Len(t, page.Notifications, 1)
		assert.Equal(t, "n-2", page.Notifications[0].ID)
	})

	t.Run("only unread", func(t *testing.T) {
		page, err := s.List(ctx, "u1", ListOptions{OnlyUnread: true})
		require.NoError(t, err)
		assert.Len(t, page.Notifications, 2)
	})

	t.Run("unknown user yields empty page", func(t *testing.T) {
		page, err := s.List(ctx, "nobody", ListOptions{})
		require.NoError(t, err)
		assert.Empty(t, page.Notifications)
	})

	t.Run("invalid cursor", func(t *testing.T) {
		_, err := s.List(ctx, "u1", ListOptions{Cursor: "not-a-cursor"})
		assert.Error(t, err)
	})
}

func TestMemoryStorage_List_CursorPagination(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	for i := range 5 {
		require.NoError(t, s.Create(ctx, seedNotification(i, "u1", CategoryGrades, false)))
	}

	var seen []string
	cursor := ""
	for {
		page, err := s.List(ctx, "u1", ListOptions{Limit: 2, Cursor: cursor})
		require.NoError(t, err)
		for _, n := range page.Notifications {
			seen = append(seen, n.ID)
		}
		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	assert.Equal(t, []string{"n-4", "n-3", "n-2", "n-1", "n-0"}, seen,
		"pages walk the full set newest first without overlap")
}

func TestMemoryStorage_List_CursorPagination_CreationTimeTies(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	// Bulk delivery stamps a whole batch with one creation time, so
	// paging must not lose records that share a timestamp.
	batchTime := time.Now()
	for i := range 3 {
		n := seedNotification(i, "u1", CategoryGrades, false)
		n.CreatedAt = batchTime
		require.NoError(t, s.Create(ctx, n))
	}

	var seen []string
	cursor := ""
	for {
		page, err := s.List(ctx, "u1", ListOptions{Limit: 1, Cursor: cursor})
		require.NoError(t, err)
		for _, n := range page.Notifications {
			seen = append(seen, n.ID)
		}
		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	assert.Equal(t, []string{"n-2", "n-1", "n-0"}, seen,
		"every record with a tied creation time stays reachable")
}

func TestMemoryStorage_ZeroExpiryNeverExpires(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	n := seedNotification(1, "u1", CategoryGrades, false)
	n.ExpiresAt = time.Time{}
	require.NoError(t, s.Create(ctx, n))

	page, err := s.List(ctx, "u1", ListOptions{})
	require.NoError(t, err)
	assert.Len(t, page.Notifications, 1)

	count, err := s.CountUnread(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, s.DeleteExpired(ctx, "u1"))
	_, err = s.Get(ctx, "u1", "n-1")
	assert.NoError(t, err)
}

func TestMemoryStorage_MarkAllRead(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, seedNotification(1, "u1", CategoryGrades, false)))
	require.NoError(t, s.Create(ctx, seedNotification(2, "u1", CategoryMessages, false)))

	t.Run("restricted to category", func(t *testing.T) {
		require.NoError(t, s.MarkAllRead(ctx, "u1", CategoryGrades))

		n, err := s.Get(ctx, "u1", "n-1")
		require.NoError(t, err)
		assert.True(t, n.Read)
		assert.NotNil(t, n.ReadAt)

		n, err = s.Get(ctx, "u1", "n-2")
		require.NoError(t, err)
		assert.False(t, n.Read)
	})

	t.Run("all categories", func(t *testing.T) {
		require.NoError(t, s.MarkAllRead(ctx, "u1", ""))

		count, err := s.CountUnread(ctx, "u1")
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestMemoryStorage_DeleteRead(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, seedNotification(1, "u1", CategoryGrades, true)))
	require.NoError(t, s.Create(ctx, seedNotification(2, "u1", CategoryGrades, false)))
	require.NoError(t, s.Create(ctx, seedNotification(3, "u1", CategoryGrades, true)))

	require.NoError(t, s.DeleteRead(ctx, "u1"))

	page, err := s.List(ctx, "u1", ListOptions{})
	require.NoError(t, err)
	require.Len(t, page.Notifications, 1, "only read notifications are removed")
	assert.Equal(t, "n-2", page.Notifications[0].ID)
}

func TestMemoryStorage_DeleteExpired(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	expired := seedNotification(1, "u1", CategoryGrades, false)
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, s.Create(ctx, expired))
	require.NoError(t, s.Create(ctx, seedNotification(2, "u1", CategoryGrades, false)))

	require.NoError(t, s.DeleteExpired(ctx, "u1"))

	_, err := s.Get(ctx, "u1", "n-1")
	assert.ErrorIs(t, err, ErrNotificationNotFound)
	_, err = s.Get(ctx, "u1", "n-2")
	assert.NoError(t, err)
}

func TestMemoryStorage_Delete(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, seedNotification(1, "u1", CategoryGrades, false)))
	require.NoError(t, s.Create(ctx, seedNotification(2, "u1", CategoryGrades, false)))

	require.NoError(t, s.Delete(ctx, "u1", "n-1"))

	_, err := s.Get(ctx, "u1", "n-1")
	assert.ErrorIs(t, err, ErrNotificationNotFound)
	_, err = s.Get(ctx, "u1", "n-2")
	assert.NoError(t, err)
}

func TestMemoryStorage_CreateBatch(t *testing.T) {
	t.Run("stores every record", func(t *testing.T) {
		s := NewMemoryStorage()
		ctx := context.Background()

		batch := []Notification{
			seedNotification(1, "u1", CategoryGrades, false),
			seedNotification(2, "u2", CategoryGrades, false),
		}
		require.NoError(t, s.CreateBatch(ctx, batch))

		for _, n := range batch {
			got, err := s.Get(ctx, n.UserID, n.ID)
			require.NoError(t, err)
			assert.Equal(t, n.ID, got.ID)
		}
	})

	t.Run("rejects oversized batches", func(t *testing.T) {
		s := NewMemoryStorage(WithMemoryBatchLimit(2))
		ctx := context.Background()

		batch := []Notification{
			seedNotification(1, "u1", CategoryGrades, false),
			seedNotification(2, "u1", CategoryGrades, false),
			seedNotification(3, "u1", CategoryGrades, false),
		}
		assert.ErrorIs(t, s.CreateBatch(ctx, batch), ErrBatchTooLarge)
	})

	t.Run("rejects invalid records before storing any", func(t *testing.T) {
		s := NewMemoryStorage()
		ctx := context.Background()

		batch := []Notification{
			seedNotification(1, "u1", CategoryGrades, false),
			{ID: "", UserID: "u1"},
		}
		require.Error(t, s.CreateBatch(ctx, batch))

		_, err := s.Get(ctx, "u1", "n-1")
		assert.ErrorIs(t, err, ErrNotificationNotFound, "a failed batch commits nothing")
	})
}
