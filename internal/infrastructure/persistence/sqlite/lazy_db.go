package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/fontstack/internal/application/port"
	"github.com/bnema/fontstack/internal/logging"
)

// ErrClosed is returned by DB after Close.
var ErrClosed = errors.New("profile database closed")

// LazyDB implements port.DatabaseProvider. The first DB call opens the file,
// compiles the SQLite module and migrates; commands that never read
// profiles pay nothing.
type LazyDB struct {
	path string

	mu     sync.Mutex
	db     *sql.DB
	err    error // sticky open failure
	closed bool
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB creates a provider for the database at path.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB returns the connection, opening it on first use. A failed open is
// reported again on every later call.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case l.closed:
		return nil, ErrClosed
	case l.db != nil:
		return l.db, nil
	case l.err != nil:
		return nil, l.err
	}

	log := logging.FromContext(ctx)
	log.Debug().Str("path", l.path).Msg("opening profile database")
	db, err := NewConnection(ctx, l.path)
	if err != nil {
		l.err = fmt.Errorf("database initialization failed: %w", err)
		log.Error().Err(err).Msg("profile database unavailable")
		return nil, l.err
	}
	l.db = db
	return db, nil
}

// Close closes the connection if it was opened. Later DB calls fail.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// IsInitialized reports whether the connection is open.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.path
}
