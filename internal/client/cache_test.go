package client

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"likelemba/internal/authflow"
)

func openTestCache(t *testing.T) *SQLiteCache {
	t.Helper()
	c, err := OpenCache(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestSQLiteCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := openTestCache(t)

	s, err := c.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, s, "empty cache must load nil")

	want := &Session{
		AccessToken: "tok-1",
		ExpiresAt:   time.Unix(1900000000, 0).UTC(),
		User: authflow.User{
			ID: "u1", Name: "Membre 5678", Phone: "+243812345678",
			CreatedAt: time.Unix(1800000000, 0).UTC(),
		},
	}
	require.NoError(t, c.Save(ctx, want))

	got, err := c.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)

	want.AccessToken = "tok-2"
	require.NoError(t, c.Save(ctx, want), "save must replace the single row")
	got, err = c.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-2", got.AccessToken)

	require.NoError(t, c.Clear(ctx))
	got, err = c.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestOpenCache_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	c, err := OpenCache(ctx, path)
	require.NoError(t, err)
	require.NoError(t, c.Save(ctx, &Session{AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, c.Close())

	c, err = OpenCache(ctx, path)
	require.NoError(t, err, "migrations must be idempotent")
	defer c.Close()
	s, err := c.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, s)
	require.Equal(t, "tok", s.AccessToken)
}
