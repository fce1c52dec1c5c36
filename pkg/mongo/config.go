package mongo

import "time"

// Config holds the connection settings for the document store.
type Config struct {
	ConnectionURL   string        `env:"MONGODB_URL,required"`                         // Connection string, e.g. "mongodb://localhost:27017".
	Database        string        `env:"MONGODB_DATABASE" envDefault:"campus"`         // Default database name.
	ConnectTimeout  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`     // Timeout for the initial connection.
	MaxPoolSize     uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`       // Upper bound of the connection pool.
	MinPoolSize     uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"1"`         // Lower bound of the connection pool.
	MaxConnIdleTime time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"` // Idle time before a pooled connection is dropped.
	RetryWrites     bool          `env:"MONGODB_RETRY_WRITES" envDefault:"true"`       // Retry write operations on transient failures.
	RetryReads      bool          `env:"MONGODB_RETRY_READS" envDefault:"true"`        // Retry read operations on transient failures.
	RetryAttempts   int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`        // Connection attempts before giving up.
	RetryInterval   time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"`       // Pause between connection attempts.
}
