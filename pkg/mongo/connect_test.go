package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_Unreachable(t *testing.T) {
	cfg := Config{
		// Nothing listens on port 1; the short server selection
		// timeout keeps the ping failure fast.
		ConnectionURL:  "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200",
		ConnectTimeout: time.Second,
		RetryAttempts:  1,
		RetryInterval:  10 * time.Second,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	_, err := Connect(ctx, cfg)
	elapsed := time.Since(start)

	require.ErrorIs(t, err, ErrConnectionFailed)
	assert.NotEqual(t, ErrConnectionFailed.Error(), err.Error(),
		"the last ping failure is attached to the error")
	assert.Less(t, elapsed, cfg.RetryInterval,
		"no retry pause after the final attempt")
}
