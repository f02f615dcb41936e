package records

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/catboard/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE records (
  id          TEXT PRIMARY KEY,
  collection  TEXT NOT NULL,
  name        TEXT NOT NULL,
  created_at  INTEGER NOT NULL
);`)
	require.NoError(t, err)
	return db
}

// tickClock makes every Insert a millisecond later than the previous one.
func tickClock(t *testing.T) {
	t.Helper()
	orig := now
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now = func() time.Time {
		base = base.Add(time.Millisecond)
		return base
	}
	t.Cleanup(func() { now = orig })
}

func TestSQLiteRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupSQLite(t))
	tickClock(t)

	first, err := repo.Insert(ctx, "users", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := repo.Insert(ctx, "users", "")
	require.NoError(t, err)

	_, err = repo.Insert(ctx, "cats", "Tom")
	require.NoError(t, err)

	list, err := repo.List(ctx, "users")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, "alice", list[0].Name)
	assert.Equal(t, "", list[1].Name)
	assert.Equal(t, first.CreatedAt, list[0].CreatedAt)

	name := "Bob"
	require.NoError(t, repo.Update(ctx, "users", second.ID, Fields{Name: &name}))

	require.NoError(t, repo.Update(ctx, "users", first.ID, Fields{}))

	list, err = repo.List(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, "alice", list[0].Name, "nil field must not overwrite")
	assert.Equal(t, "Bob", list[1].Name)

	require.NoError(t, repo.Delete(ctx, "users", first.ID))
	require.NoError(t, repo.Delete(ctx, "users", first.ID), "deleting twice is fine")

	list, err = repo.List(ctx, "users")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)

	cats, err := repo.List(ctx, "cats")
	require.NoError(t, err)
	assert.Len(t, cats, 1)
}

func TestSQLiteRepository_UpdateMissing(t *testing.T) {
	repo := NewSQLiteRepository(setupSQLite(t))
	name := "x"

	err := repo.Update(context.Background(), "users", "ghost", Fields{Name: &name})
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSQLiteRepository_CollectionIsolation(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupSQLite(t))

	rec, err := repo.Insert(ctx, "cats", "Tom")
	require.NoError(t, err)

	name := "Jerry"
	err = repo.Update(ctx, "users", rec.ID, Fields{Name: &name})
	require.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, repo.Delete(ctx, "users", rec.ID))
	cats, err := repo.List(ctx, "cats")
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Tom", cats[0].Name)
}
