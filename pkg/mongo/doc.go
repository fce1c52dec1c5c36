// Package mongo manages the connection to the platform's document
// store.
//
// Configuration is environment-driven (see Config) so the same binary
// runs unchanged across development, staging and production. Connect
// retries transient failures, which matters for managed clusters where
// brief unavailability during failover is normal.
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongo.ConnectDatabase(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	storage := notifier.NewMongoStorage(db.Collection("notifications"))
package mongo
