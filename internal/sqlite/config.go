package sqlite

import (
	"time"
)

// Config describes the seed database. An empty DatabasePath means no
// database is used and the built-in demo account book is loaded
// instead.
type Config struct {
	DatabasePath    string        `envconfig:"DATABASE_PATH" default:""`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"5m"`
	ConnMaxIdleTime time.Duration `envconfig:"CONN_MAX_IDLE_TIME" default:"1m"`
	BusyTimeout     time.Duration `envconfig:"BUSY_TIMEOUT" default:"30s"` // Time to wait for lock acquisition
	EnableWAL       bool          `envconfig:"ENABLE_WAL" default:"false"`
}
