package directory

import "errors"

// ErrUserNotFound is returned when no user document exists for the id.
var ErrUserNotFound = errors.New("user not found")
