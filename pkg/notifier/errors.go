package notifier

import "errors"

var (
	// ErrNotificationNotFound is returned when a notification does not
	// exist or belongs to another user.
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrBatchTooLarge is returned when a batch write exceeds the
	// storage's atomic-batch ceiling.
	ErrBatchTooLarge = errors.New("batch exceeds storage batch limit")

	// ErrKindMismatch is returned when a payload's kind disagrees with
	// the kind passed to delivery.
	ErrKindMismatch = errors.New("payload kind does not match notification kind")

	// ErrMissingRecipient is returned when delivery is invoked without
	// a recipient id.
	ErrMissingRecipient = errors.New("recipient user id is required")
)
