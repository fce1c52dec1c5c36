package notifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoStorage is a document-store implementation of the Storage
// interface backed by a MongoDB collection. One document per
// notification, keyed by the uuid the service assigns.
type MongoStorage struct {
	coll       *mongo.Collection
	batchLimit int
	now        func() time.Time
}

// MongoStorageOption configures a MongoStorage.
type MongoStorageOption func(*MongoStorage)

// WithMongoBatchLimit overrides the atomic-batch ceiling.
func WithMongoBatchLimit(limit int) MongoStorageOption {
	return func(s *MongoStorage) {
		if limit > 0 {
			s.batchLimit = limit
		}
	}
}

// WithMongoClock overrides the time source used for expiry filtering.
func WithMongoClock(now func() time.Time) MongoStorageOption {
	return func(s *MongoStorage) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMongoStorage creates a notification storage over the given
// collection.
func NewMongoStorage(coll *mongo.Collection, opts ...MongoStorageOption) *MongoStorage {
	s := &MongoStorage{
		coll:       coll,
		batchLimit: DefaultBatchLimit,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MongoStorage) BatchLimit() int {
	return s.batchLimit
}

func (s *MongoStorage) Create(ctx context.Context, n Notification) error {
	if _, err := s.coll.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

func (s *MongoStorage) CreateBatch(ctx context.Context, ns []Notification) error {
	if len(ns) == 0 {
		return nil
	}
	if len(ns) > s.batchLimit {
		return fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(ns), s.batchLimit)
	}

	docs := make([]any, len(ns))
	for i, n := range ns {
		docs[i] = n
	}
	if _, err := s.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return fmt.Errorf("failed to insert notification batch: %w", err)
	}
	return nil
}

func (s *MongoStorage) Get(ctx context.Context, userID, notifID string) (*Notification, error) {
	var n Notification
	err := s.coll.FindOne(ctx, bson.M{"_id": notifID, "userId": userID}).Decode(&n)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to fetch notification: %w", err)
	}
	return &n, nil
}

// notExpiredFilter matches notifications that are still live at now.
// A zero expiresAt means the notification never expires, matching
// Notification.IsExpired.
func notExpiredFilter(now time.Time) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"expiresAt": bson.M{"$gt": now}},
		bson.M{"expiresAt": time.Time{}},
	}}
}

// expiredFilter is the complement of notExpiredFilter.
func expiredFilter(now time.Time) bson.M {
	return bson.M{"expiresAt": bson.M{"$gt": time.Time{}, "$lte": now}}
}

func (s *MongoStorage) List(ctx context.Context, userID string, opts ListOptions) (Page, error) {
	conds := bson.A{
		bson.M{"userId": userID},
		notExpiredFilter(s.now()),
	}
	if opts.Category != "" {
		conds = append(conds, bson.M{"category": opts.Category})
	}
	if opts.OnlyUnread {
		conds = append(conds, bson.M{"read": false})
	}
	if opts.Cursor != "" {
		cursorTime, cursorID, err := decodeCursor(opts.Cursor)
		if err != nil {
			return Page{}, err
		}
		// Rows strictly after the cursor position in
		// (createdAt desc, _id desc) order.
		conds = append(conds, bson.M{"$or": bson.A{
			bson.M{"createdAt": bson.M{"$lt": cursorTime}},
			bson.M{"createdAt": cursorTime, "_id": bson.M{"$lt": cursorID}},
		}})
	}
	filter := bson.M{"$and": conds}

	findOpts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	})
	if opts.Limit > 0 {
		// Fetch one extra record to learn whether another page exists.
		findOpts = findOpts.SetLimit(int64(opts.Limit) + 1)
	}

	cur, err := s.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return Page{}, fmt.Errorf("failed to list notifications: %w", err)
	}

	var results []Notification
	if err := cur.All(ctx, &results); err != nil {
		return Page{}, fmt.Errorf("failed to decode notifications: %w", err)
	}

	page := Page{Notifications: results}
	if opts.Limit > 0 && len(results) > opts.Limit {
		page.Notifications = results[:opts.Limit]
		last := page.Notifications[opts.Limit-1]
		page.NextCursor = encodeCursor(last.CreatedAt, last.ID)
	}
	if page.Notifications == nil {
		page.Notifications = []Notification{}
	}
	return page, nil
}

func (s *MongoStorage) CountUnread(ctx context.Context, userID string) (int, error) {
	count, err := s.coll.CountDocuments(ctx, bson.M{"$and": bson.A{
		bson.M{"userId": userID, "read": false},
		notExpiredFilter(s.now()),
	}})
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return int(count), nil
}

func (s *MongoStorage) CountByCategory(ctx context.Context, userID string, onlyUnread bool) (map[Category]int, error) {
	filter := bson.M{"userId": userID}
	if onlyUnread {
		filter["read"] = false
	}

	cur, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to scan notifications: %w", err)
	}
	defer cur.Close(ctx)

	counts := make(map[Category]int)
	for cur.Next(ctx) {
		var n Notification
		if err := cur.Decode(&n); err != nil {
			return nil, fmt.Errorf("failed to decode notification: %w", err)
		}
		counts[n.Category]++
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan notifications: %w", err)
	}
	return counts, nil
}

func (s *MongoStorage) MarkRead(ctx context.Context, userID string, notifIDs ...string) error {
	if len(notifIDs) == 0 {
		return nil
	}
	_, err := s.coll.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": notifIDs}, "userId": userID},
		bson.M{"$set": bson.M{"read": true, "readAt": s.now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

func (s *MongoStorage) MarkAllRead(ctx context.Context, userID string, category Category) error {
	filter := bson.M{"userId": userID, "read": false}
	if category != "" {
		filter["category"] = category
	}
	_, err := s.coll.UpdateMany(ctx, filter,
		bson.M{"$set": bson.M{"read": true, "readAt": s.now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

func (s *MongoStorage) Delete(ctx context.Context, userID string, notifIDs ...string) error {
	if len(notifIDs) == 0 {
		return nil
	}
	_, err := s.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": notifIDs}, "userId": userID})
	if err != nil {
		return fmt.Errorf("failed to delete notifications: %w", err)
	}
	return nil
}

func (s *MongoStorage) DeleteRead(ctx context.Context, userID string) error {
	_, err := s.coll.DeleteMany(ctx, bson.M{"userId": userID, "read": true})
	if err != nil {
		return fmt.Errorf("failed to delete read notifications: %w", err)
	}
	return nil
}

func (s *MongoStorage) DeleteExpired(ctx context.Context, userID string) error {
	_, err := s.coll.DeleteMany(ctx, bson.M{"$and": bson.A{
		bson.M{"userId": userID},
		expiredFilter(s.now()),
	}})
	if err != nil {
		return fmt.Errorf("failed to delete expired notifications: %w", err)
	}
	return nil
}
