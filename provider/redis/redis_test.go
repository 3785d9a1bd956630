package redis

import (
	"context"
	"sort"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, root string) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	p, err := New(Config{Client: client, Root: root, CloseClient: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close(context.Background()) })
	return p, mr
}

func TestRedisRequiresClientAndRoot(t *testing.T) {
	_, err := New(Config{Root: "x"})
	require.ErrorIs(t, err, ErrNilClient)

	mr := miniredis.RunT(t)
	_, err = New(Config{Client: goredis.NewClient(&goredis.Options{Addr: mr.Addr()})})
	require.ErrorIs(t, err, ErrEmptyRoot)
}

func TestRedisGetSetHasDel(t *testing.T) {
	ctx := context.Background()
	p, mr := newTestProvider(t, "bm:durable")

	_, ok, err := p.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, p.Set(ctx, "k", []byte(`{"a":1}`)))
	require.True(t, mr.Exists("bm:durable:k"))

	v, ok, err := p.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{"a":1}`, string(v))

	has, err := p.Has(ctx, "k")
	require.NoError(t, err)
	require.True(t, has)

	require.NoError(t, p.Del(ctx, "k"))
	has, err = p.Has(ctx, "k")
	require.NoError(t, err)
	require.False(t, has)
}

func TestRedisKeysAndClearStayUnderRoot(t *testing.T) {
	ctx := context.Background()
	p, mr := newTestProvider(t, "bm:session")

	require.NoError(t, p.Set(ctx, "app-x", []byte("1")))
	require.NoError(t, p.Set(ctx, "app-y", []byte("2")))
	require.NoError(t, mr.Set("unrelated:z", "3"))

	keys, err := p.Keys(ctx)
	require.NoError(t, err)
	sort.Strings(keys)
	require.Equal(t, []string{"app-x", "app-y"}, keys)

	require.NoError(t, p.Clear(ctx))
	keys, err = p.Keys(ctx)
	require.NoError(t, err)
	require.Empty(t, keys)
	require.True(t, mr.Exists("unrelated:z"))
}

func TestEscapeGlob(t *testing.T) {
	require.Equal(t, `a\*b\?c\[d\]:`, escapeGlob("a*b?c[d]:"))
}
