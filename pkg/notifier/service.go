package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/campuskit/campuskit/pkg/logger"
)

// Service runs the notification pipeline: classify, render, gate,
// expire, link, persist. Storage and Directory are injected so the
// pipeline is testable with fakes.
type Service struct {
	storage   Storage
	directory Directory
	logger    *slog.Logger
	now       func() time.Time
	loc       *time.Location
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger for the Service.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source. Used by tests to pin "now".
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the time zone quiet hours are evaluated in.
// Defaults to the server's local zone, which assumes a single-timezone
// institution.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// NewService creates a notification service. A nil directory is valid
// and behaves as permissive defaults: no preferences, no role prefix
// on links.
func NewService(storage Storage, directory Directory, opts ...Option) *Service {
	s := &Service{
		storage:   storage,
		directory: directory,
		logger:    slog.Default(),
		now:       time.Now,
		loc:       time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create delivers one notification. The returned id is empty when the
// recipient's preferences suppressed the delivery; nothing is persisted
// in that case and no error is reported.
//
// Classification, template rendering, expiry and link resolution all
// yield defaults that explicit fields override. Persistence failures
// propagate to the caller.
func (s *Service) Create(ctx context.Context, userID string, kind Kind, fields Fields, payload Payload) (string, error) {
	if userID == "" {
		return "", ErrMissingRecipient
	}
	if payload != nil && payload.Kind() != kind {
		return "", fmt.Errorf("%w: payload %s, kind %s", ErrKindMismatch, payload.Kind(), kind)
	}

	category := kind.Category()
	if fields.Category != "" {
		category = fields.Category
	}
	priority := kind.DefaultPriority()
	if fields.Priority != "" {
		priority = fields.Priority
	}

	// Gate before assembling so suppressed deliveries skip the role lookup.
	if !s.allowed(ctx, userID, category, priority) {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "Notification suppressed by recipient preferences",
			logger.UserID(userID),
			logger.Kind(string(kind)),
			logger.Category(string(category)),
		)
		return "", nil
	}

	n := s.assemble(ctx, userID, kind, fields, payload)

	if err := s.storage.Create(ctx, n); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "Failed to store notification",
			logger.NotificationID(n.ID),
			logger.UserID(userID),
			logger.Error(err),
		)
		return "", fmt.Errorf("failed to store notification: %w", err)
	}

	return n.ID, nil
}

// CreateBulk fans one notification out to many recipients. Recipient
// ids are de-duplicated, then written in atomic batches sized to the
// storage's batch limit, one commit per chunk, sequentially. A failure
// partway leaves earlier chunks committed.
//
// Bulk delivery does not consult recipient preferences; only single
// delivery does. Links are still resolved per recipient since roles
// differ.
func (s *Service) CreateBulk(ctx context.Context, userIDs []string, kind Kind, fields Fields, payload Payload) error {
	if payload != nil && payload.Kind() != kind {
		return fmt.Errorf("%w: payload %s, kind %s", ErrKindMismatch, payload.Kind(), kind)
	}

	recipients := dedupe(userIDs)
	if len(recipients) == 0 {
		return nil
	}

	limit := s.storage.BatchLimit()
	if limit <= 0 {
		limit = DefaultBatchLimit
	}

	for start := 0; start < len(recipients); start += limit {
		end := min(start+limit, len(recipients))

		batch := make([]Notification, 0, end-start)
		for _, userID := range recipients[start:end] {
			batch = append(batch, s.assemble(ctx, userID, kind, fields, payload))
		}

		if err := s.storage.CreateBatch(ctx, batch); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelError, "Failed to commit notification batch",
				logger.Kind(string(kind)),
				logger.BatchSize(len(batch)),
				slog.Int("committed_before", start),
				logger.Error(err),
			)
			return fmt.Errorf("failed to commit notification batch: %w", err)
		}
	}

	return nil
}

// assemble builds the full notification record for one recipient,
// applying the merge rule: explicit fields win over template output,
// which wins over classification defaults.
func (s *Service) assemble(ctx context.Context, userID string, kind Kind, fields Fields, payload Payload) Notification {
	now := s.now()

	n := Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Kind:      kind,
		Category:  kind.Category(),
		Priority:  kind.DefaultPriority(),
		Title:     fields.Title,
		Message:   fields.Message,
		RelatedID: fields.RelatedID,
		Link:      fields.Link,
		Icon:      fields.Icon,
		Color:     fields.Color,
		Actions:   fields.Actions,
		Metadata:  fields.Metadata,
		SendPush:  fields.SendPush,
		Read:      false,
		CreatedAt: now,
		ExpiresAt: fields.ExpiresAt,
	}

	if payload != nil {
		t := Render(payload)
		if n.Title == "" {
			n.Title = t.Title
		}
		if n.Message == "" {
			n.Message = t.Message
		}
		if n.Icon == "" {
			n.Icon = t.Icon
		}
		if n.Color == "" {
			n.Color = t.Color
		}
		if n.Actions == nil {
			n.Actions = t.Actions
		}
	}

	if fields.Category != "" {
		n.Category = fields.Category
	}
	if fields.Priority != "" {
		n.Priority = fields.Priority
	}
	if n.ExpiresAt.IsZero() {
		n.ExpiresAt = ExpiryFor(n.Priority, now)
	}
	if n.Link == "" {
		n.Link = ResolveLink(kind, n.RelatedID, s.profile(ctx, userID))
	}

	return n
}

// allowed asks the preference gate whether delivery may proceed.
// Directory failures are fail-open: a broken preference record must
// never swallow a notification.
func (s *Service) allowed(ctx context.Context, userID string, category Category, priority Priority) bool {
	if s.directory == nil {
		return true
	}
	prefs, err := s.directory.Preferences(ctx, userID)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "Failed to load notification preferences, delivering anyway",
			logger.UserID(userID),
			logger.Error(err),
		)
		return true
	}
	return prefs.Allows(category, priority, s.now().In(s.loc))
}

// profile resolves the recipient's role and organization for link
// routing. Lookup failures degrade to an empty profile, which drops
// the role prefix from the link.
func (s *Service) profile(ctx context.Context, userID string) Profile {
	if s.directory == nil {
		return Profile{}
	}
	p, err := s.directory.Profile(ctx, userID)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "Failed to load recipient profile, omitting role prefix",
			logger.UserID(userID),
			logger.Error(err),
		)
		return Profile{}
	}
	return p
}

// Get retrieves a single notification.
func (s *Service) Get(ctx context.Context, userID, notifID string) (*Notification, error) {
	return s.storage.Get(ctx, userID, notifID)
}

// List returns a page of the user's notifications, newest first.
func (s *Service) List(ctx context.Context, userID string, opts ListOptions) (Page, error) {
	return s.storage.List(ctx, userID, opts)
}

// CountUnread returns the user's unread notification count.
func (s *Service) CountUnread(ctx context.Context, userID string) (int, error) {
	return s.storage.CountUnread(ctx, userID)
}

// CountByCategory returns per-category notification counts.
func (s *Service) CountByCategory(ctx context.Context, userID string, onlyUnread bool) (map[Category]int, error) {
	return s.storage.CountByCategory(ctx, userID, onlyUnread)
}

// MarkRead marks the given notifications as read.
func (s *Service) MarkRead(ctx context.Context, userID string, notifIDs ...string) error {
	return s.storage.MarkRead(ctx, userID, notifIDs...)
}

// MarkAllRead marks all unread notifications as read, optionally
// restricted to one category ("" = all).
func (s *Service) MarkAllRead(ctx context.Context, userID string, category Category) error {
	return s.storage.MarkAllRead(ctx, userID, category)
}

// Delete removes the given notifications.
func (s *Service) Delete(ctx context.Context, userID string, notifIDs ...string) error {
	return s.storage.Delete(ctx, userID, notifIDs...)
}

// DeleteRead removes every notification the user has already read.
func (s *Service) DeleteRead(ctx context.Context, userID string) error {
	return s.storage.DeleteRead(ctx, userID)
}

// DeleteExpired removes every notification past its expiry deadline.
func (s *Service) DeleteExpired(ctx context.Context, userID string) error {
	return s.storage.DeleteExpired(ctx, userID)
}

// Storage returns the underlying notification storage.
func (s *Service) Storage() Storage {
	return s.storage
}

// dedupe removes duplicate ids while preserving first-seen order.
// Empty ids are dropped.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
