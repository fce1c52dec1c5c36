package notifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestExpiryFilters_ZeroMeansNeverExpires(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, bson.M{"$or": bson.A{
		bson.M{"expiresAt": bson.M{"$gt": now}},
		bson.M{"expiresAt": time.Time{}},
	}}, notExpiredFilter(now), "zero-expiry records stay listable")

	assert.Equal(t, bson.M{
		"expiresAt": bson.M{"$gt": time.Time{}, "$lte": now},
	}, expiredFilter(now), "cleanup never touches zero-expiry records")
}
