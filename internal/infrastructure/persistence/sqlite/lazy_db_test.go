package sqlite_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/workbench/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_OpensOnFirstAccess(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "layout.sqlite"))
	assert.False(t, lazy.IsInitialized())

	db, err := lazy.DB(ctx)

	require.NoError(t, err)
	require.NotNil(t, db)
	assert.True(t, lazy.IsInitialized())

	version, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, version)

	require.NoError(t, lazy.Close())
	assert.False(t, lazy.IsInitialized())
}

func TestLazyDB_ConcurrentCallersShareConnection(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "layout.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	const callers = 8
	dbs := make([]*sql.DB, callers)
	var g errgroup.Group
	for i := range callers {
		g.Go(func() error {
			db, err := lazy.DB(ctx)
			dbs[i] = db
			return err
		})
	}
	require.NoError(t, g.Wait())

	for _, db := range dbs[1:] {
		assert.Same(t, dbs[0], db)
	}
}

func TestLazyDB_EmptyPath(t *testing.T) {
	lazy := sqlite.NewLazyDB("")

	_, err := lazy.DB(testCtx())

	require.Error(t, err)
	assert.ErrorIs(t, err, sqlite.ErrEmptyPath)
	assert.False(t, lazy.IsInitialized())
}

func TestLazyDB_CloseBeforeOpen(t *testing.T) {
	lazy := sqlite.NewLazyDB("/unused/layout.sqlite")

	assert.NoError(t, lazy.Close())
	assert.Equal(t, "/unused/layout.sqlite", lazy.Path())
}
