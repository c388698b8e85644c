package sqlite_test

import (
	"context"
	"database/sql"
	"io"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontstack/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/fontstack/internal/logging"
)

func testCtx() context.Context {
	logger := logging.New(logging.Config{Level: zerolog.DebugLevel, Format: "console", Output: io.Discard})
	return logging.WithContext(context.Background(), logger)
}

func newLazyDB(t *testing.T) *sqlite.LazyDB {
	t.Helper()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "profiles", "fontstack.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })
	return lazy
}

func TestLazyDB_OpensOnFirstAccess(t *testing.T) {
	lazy := newLazyDB(t)
	assert.False(t, lazy.IsInitialized())

	db, err := lazy.DB(testCtx())
	require.NoError(t, err)
	require.NotNil(t, db)
	assert.True(t, lazy.IsInitialized())

	var one int
	require.NoError(t, db.QueryRowContext(testCtx(), "SELECT 1").Scan(&one))
	assert.Equal(t, 1, one)
}

func TestLazyDB_ConcurrentCallersShareConnection(t *testing.T) {
	lazy := newLazyDB(t)
	ctx := testCtx()

	const callers = 8
	dbs := make([]*sql.DB, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dbs[i], errs[i] = lazy.DB(ctx)
		}()
	}
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		assert.Same(t, dbs[0], dbs[i])
	}
}

func TestLazyDB_FailureIsSticky(t *testing.T) {
	lazy := sqlite.NewLazyDB("")

	_, err := lazy.DB(testCtx())
	require.Error(t, err)
	_, err = lazy.DB(testCtx())
	require.Error(t, err)
	assert.False(t, lazy.IsInitialized())
}

func TestLazyDB_CloseBeforeInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unused.sqlite")
	lazy := sqlite.NewLazyDB(path)

	assert.NoError(t, lazy.Close())
	assert.Equal(t, path, lazy.Path())
	assert.NoFileExists(t, path)
}

func TestLazyDB_DBAfterClose(t *testing.T) {
	lazy := newLazyDB(t)
	_, err := lazy.DB(testCtx())
	require.NoError(t, err)

	require.NoError(t, lazy.Close())

	_, err = lazy.DB(testCtx())
	require.ErrorIs(t, err, sqlite.ErrClosed)
	assert.False(t, lazy.IsInitialized())
	assert.NoError(t, lazy.Close())
}

func TestLazyDB_UsesWAL(t *testing.T) {
	db, err := newLazyDB(t).DB(testCtx())
	require.NoError(t, err)

	var mode string
	require.NoError(t, db.QueryRowContext(testCtx(), "PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := testCtx()
	db, err := newLazyDB(t).DB(ctx)
	require.NoError(t, err)

	require.NoError(t, sqlite.RunMigrations(ctx, db))
	version, err := sqlite.SchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}
