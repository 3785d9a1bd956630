package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, path, ns string) *Store {
	t.Helper()
	s, err := Open(context.Background(), Config{Path: path, Namespace: ns})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(context.Background(), Config{Path: "  "})
	require.Error(t, err)
}

func TestStoreRoundTripAndUpsert(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t, filepath.Join(t.TempDir(), "bm.db"), "durable")

	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", []byte("one")))
	require.NoError(t, s.Set(ctx, "k", []byte("two")))

	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "two", string(v))

	has, err := s.Has(ctx, "k")
	require.NoError(t, err)
	require.True(t, has)

	require.NoError(t, s.Del(ctx, "k"))
	has, err = s.Has(ctx, "k")
	require.NoError(t, err)
	require.False(t, has)
}

func TestNamespacesSharingAFileAreIsolated(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "shared.db")
	durable := openTestStore(t, path, "durable")
	session := openTestStore(t, path, "session")

	require.NoError(t, durable.Set(ctx, "b", []byte("1")))
	require.NoError(t, durable.Set(ctx, "a", []byte("1")))
	require.NoError(t, session.Set(ctx, "c", []byte("1")))

	keys, err := durable.Keys(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, keys)

	require.NoError(t, durable.Clear(ctx))
	keys, err = durable.Keys(ctx)
	require.NoError(t, err)
	require.Empty(t, keys)

	keys, err = session.Keys(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"c"}, keys)
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reopen.db")

	s, err := Open(ctx, Config{Path: path})
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "k", []byte("kept")))
	require.NoError(t, s.Close(ctx))

	s2 := openTestStore(t, path, "")
	v, ok, err := s2.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "kept", string(v))
}
