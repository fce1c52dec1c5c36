package notifier

import "context"

// Profile is the slice of a user's identity record the pipeline needs:
// the role drives link routing and the organization id feeds the parent
// dashboard path.
type Profile struct {
	Role  Role   `json:"role" bson:"role"`
	OrgID string `json:"org_id,omitempty" bson:"orgId,omitempty"`
}

// Directory is the identity collaborator. Implementations look up a
// user's profile and notification preferences by id.
//
// Both lookups are consulted on fail-open paths: callers treat every
// error (and a nil Preferences) as permissive defaults, so a broken
// directory record never blocks a delivery.
type Directory interface {
	// Profile returns the user's role and organization.
	Profile(ctx context.Context, userID string) (Profile, error)

	// Preferences returns the user's notification preferences, or
	// (nil, nil) when the user has none stored.
	Preferences(ctx context.Context, userID string) (*Preferences, error)
}
