package notifier

import (
	"time"
)

// Role of the recipient inside the institution. Roles prefix deep links
// so the client app routes to the correct area.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleParent  Role = "parent"
	RoleAdmin   Role = "admin"
)

// Action is a call-to-action button attached to a notification.
type Action struct {
	Label       string `json:"label" bson:"label"`
	URL         string `json:"url,omitempty" bson:"url,omitempty"`
	ActionToken string `json:"action_token,omitempty" bson:"actionToken,omitempty"`
	Icon        string `json:"icon,omitempty" bson:"icon,omitempty"`
}

// Notification is the persisted record of a delivered event. Immutable
// after creation except for the read flag.
type Notification struct {
	ID        string         `json:"id" bson:"_id"`
	UserID    string         `json:"user_id" bson:"userId"`
	Kind      Kind           `json:"kind" bson:"kind"`
	Category  Category       `json:"category" bson:"category"`
	Priority  Priority       `json:"priority" bson:"priority"`
	Title     string         `json:"title" bson:"title"`
	Message   string         `json:"message" bson:"message"`
	RelatedID string         `json:"related_id,omitempty" bson:"relatedId,omitempty"`
	Link      string         `json:"link" bson:"link"`
	Icon      string         `json:"icon,omitempty" bson:"icon,omitempty"`
	Color     string         `json:"color,omitempty" bson:"color,omitempty"`
	Actions   []Action       `json:"actions,omitempty" bson:"actions,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty" bson:"metadata,omitempty"`
	SendPush  bool           `json:"send_push,omitempty" bson:"sendPush,omitempty"`
	Read      bool           `json:"read" bson:"read"`
	ReadAt    *time.Time     `json:"read_at,omitempty" bson:"readAt,omitempty"`
	CreatedAt time.Time      `json:"created_at" bson:"createdAt"`
	ExpiresAt time.Time      `json:"expires_at" bson:"expiresAt"`
}

// IsExpired returns true if the notification is past its expiry deadline.
func (n *Notification) IsExpired() bool {
	return n.isExpiredAt(time.Now())
}

func (n *Notification) isExpiredAt(now time.Time) bool {
	return !n.ExpiresAt.IsZero() && now.After(n.ExpiresAt)
}

// MarkAsRead flips the read flag and records the read timestamp.
func (n *Notification) MarkAsRead() {
	n.Read = true
	now := time.Now()
	n.ReadAt = &now
}

// Fields carries the caller-supplied overrides for a delivery. Every
// non-zero field wins over the value the template catalog would have
// produced, letting callers use templates as defaults while pinning
// specific fields.
type Fields struct {
	Title     string
	Message   string
	Category  Category
	Priority  Priority
	Icon      string
	Color     string
	Link      string
	RelatedID string
	Actions   []Action
	Metadata  map[string]any
	SendPush  bool
	ExpiresAt time.Time
}
