package directory

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/campuskit/campuskit/pkg/notifier"
)

// Reader implements notifier.Directory over the user-profile
// collection of the document store.
type Reader struct {
	coll *mongo.Collection
}

// NewReader creates a directory reader over the given collection.
func NewReader(coll *mongo.Collection) *Reader {
	return &Reader{coll: coll}
}

// userDoc is the slice of the user document the pipeline reads.
type userDoc struct {
	ID          string                `bson:"_id"`
	Role        notifier.Role         `bson:"role"`
	OrgID       string                `bson:"orgId"`
	Preferences *notifier.Preferences `bson:"notificationPreferences"`
}

// Profile returns the user's role and organization.
func (r *Reader) Profile(ctx context.Context, userID string) (notifier.Profile, error) {
	var doc userDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return notifier.Profile{}, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
		}
		return notifier.Profile{}, fmt.Errorf("failed to fetch user profile: %w", err)
	}
	return notifier.Profile{Role: doc.Role, OrgID: doc.OrgID}, nil
}

// Preferences returns the user's notification preferences. A missing
// user or a user without a stored preference record yields (nil, nil),
// which the pipeline treats as "everything enabled".
func (r *Reader) Preferences(ctx context.Context, userID string) (*notifier.Preferences, error) {
	var doc userDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user preferences: %w", err)
	}
	return doc.Preferences, nil
}
