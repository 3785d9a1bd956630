package redis

import (
	"context"
	"errors"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	pr "github.com/unkn0wn-root/brainmem/provider"
)

var (
	ErrNilClient = errors.New("redis provider: nil client")
	ErrEmptyRoot = errors.New("redis provider: root is required")
)

// Redis stores one namespace under "<root>:" inside a shared Redis keyspace.
// Keys and Clear only ever touch keys below that root.
type Redis struct {
	rdb         goredis.UniversalClient
	root        string
	scanCount   int64
	closeClient bool
}

var (
	_ pr.Provider = (*Redis)(nil)
	_ pr.Exister  = (*Redis)(nil)
)

type Config struct {
	Client      goredis.UniversalClient
	Root        string // e.g. "brainmem:durable"
	ScanCount   int64  // SCAN hint; 0 => 256
	CloseClient bool   // set true only if this provider exclusively owns the client
}

func New(cfg Config) (*Redis, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	if strings.TrimSpace(cfg.Root) == "" {
		return nil, ErrEmptyRoot
	}
	sc := cfg.ScanCount
	if sc <= 0 {
		sc = 256
	}
	return &Redis{rdb: cfg.Client, root: cfg.Root + ":", scanCount: sc, closeClient: cfg.CloseClient}, nil
}

func (p *Redis) key(k string) string { return p.root + k }

func (p *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := p.rdb.Get(ctx, p.key(key)).Bytes()
	if err == goredis.Nil {
		return nil, false, nil // miss
	}
	if err != nil {
		return nil, false, err // transport/server error
	}
	return b, true, nil
}

func (p *Redis) Set(ctx context.Context, key string, value []byte) error {
	return p.rdb.Set(ctx, p.key(key), value, 0).Err()
}

func (p *Redis) Has(ctx context.Context, key string) (bool, error) {
	n, err := p.rdb.Exists(ctx, p.key(key)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (p *Redis) Del(ctx context.Context, key string) error {
	return p.rdb.Del(ctx, p.key(key)).Err()
}

// Keys walks the root with SCAN; the result is stripped of the root.
func (p *Redis) Keys(ctx context.Context) ([]string, error) {
	var out []string
	it := p.rdb.Scan(ctx, 0, escapeGlob(p.root)+"*", p.scanCount).Iterator()
	for it.Next(ctx) {
		out = append(out, strings.TrimPrefix(it.Val(), p.root))
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Clear deletes every key below the root. Other roots in the same database survive.
func (p *Redis) Clear(ctx context.Context) error {
	it := p.rdb.Scan(ctx, 0, escapeGlob(p.root)+"*", p.scanCount).Iterator()
	batch := make([]string, 0, p.scanCount)
	for it.Next(ctx) {
		batch = append(batch, it.Val())
		if int64(len(batch)) >= p.scanCount {
			if err := p.rdb.Del(ctx, batch...).Err(); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := it.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		return p.rdb.Del(ctx, batch...).Err()
	}
	return nil
}

// Close releases the underlying redis client only when this provider owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (p *Redis) Close(context.Context) error {
	if p.closeClient {
		if err := p.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}

func escapeGlob(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)
	return r.Replace(s)
}
