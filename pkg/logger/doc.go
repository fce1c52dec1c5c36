// Package logger builds configured log/slog loggers for the campus
// platform and provides typed attribute helpers so log keys stay
// consistent across packages.
//
// The factory defaults to JSON at info level for log aggregation;
// WithDevelopment switches to human-readable text at debug level.
// Context extractors inject request-scoped attributes (request ids,
// tenant ids) into every record logged with a matching context.
//
//	log := logger.New(logger.WithProduction("campuskit"))
//	logger.SetAsDefault(log)
//
//	log.LogAttrs(ctx, slog.LevelInfo, "Notification stored",
//	    logger.UserID(userID),
//	    logger.NotificationID(id),
//	)
package logger
