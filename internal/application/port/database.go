// Package port defines the interfaces use cases need from infrastructure.
package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the profile database connection.
type DatabaseProvider interface {
	// DB opens the database on first use.
	DB(ctx context.Context) (*sql.DB, error)
	Close() error
	IsInitialized() bool
}
