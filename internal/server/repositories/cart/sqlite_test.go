package cart

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// one connection, so every statement sees the same in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE cart (
  id INTEGER PRIMARY KEY,
  productname TEXT,
  price REAL
);
`)
	require.NoError(t, err)

	return db
}

func TestAdd_CreatesNewLineEveryTime(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	// same product twice -> two lines, no quantity aggregation
	require.NoError(t, r.Add(ctx, "Pears", 25))
	require.NoError(t, r.Add(ctx, "Pears", 25))

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Pears", got[0].ProductName)
	assert.Equal(t, 25.0, got[0].Price)
	assert.Greater(t, got[1].ID, got[0].ID)
}

func TestAdd_PriceIsSnapshot(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, "Apples", 60))
	require.NoError(t, r.Add(ctx, "Apples", 55))

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 60.0, got[0].Price)
	assert.Equal(t, 55.0, got[1].Price, "each line keeps the price it was added with")
}

func TestRemoveByName_RemovesAllMatching(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, "Pears", 25))
	require.NoError(t, r.Add(ctx, "Pears", 25))
	require.NoError(t, r.Add(ctx, "Apples", 60))

	require.NoError(t, r.RemoveByName(ctx, "Pears"))

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Apples", got[0].ProductName)
}

func TestRemoveByName_NoMatchStillSucceeds(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, "Apples", 60))

	require.NoError(t, r.RemoveByName(ctx, "Durian"), "zero matches is not an error")

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1, "cart must be unchanged")
}

func TestRemoveByName_ExactMatchOnly(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, "Pears", 25))
	require.NoError(t, r.Add(ctx, "pears", 25))

	require.NoError(t, r.RemoveByName(ctx, "Pears"))

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "pears", got[0].ProductName)
}

func TestGetAll_EmptyCart(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	got, err := r.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
