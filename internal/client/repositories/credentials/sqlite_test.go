package credentials

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE auth_state (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestLoad_Empty_ReturnsEmptyString(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	token, err := r.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, "abc123"))

	token, err := r.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "abc123", token)
}

func TestSave_OverwritesPreviousToken(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, "old"))
	require.NoError(t, r.Save(ctx, "new"))

	token, err := r.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "new", token)
}

func TestDelete_RemovesToken(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, "abc123"))
	require.NoError(t, r.Delete(ctx))

	token, err := r.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestDelete_NoToken_IsNoop(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	require.NoError(t, r.Delete(context.Background()))
}
