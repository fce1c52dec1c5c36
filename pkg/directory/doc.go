// Package directory implements the identity collaborator of the
// notification pipeline: role and preference lookups by user id.
//
// Reader serves lookups straight from the user-profile collection.
// Cached decorates any notifier.Directory with a redis cache so bulk
// fan-out does not issue one profile read per recipient per send.
//
//	users := directory.NewReader(db.Collection("users"))
//	cached := directory.NewCached(users, redisClient, directory.WithTTL(10*time.Minute))
//	svc := notifier.NewService(storage, cached)
package directory
