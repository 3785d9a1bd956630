// Package config builds a brainmem.Host from environment variables.
package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/brainmem"
	c "github.com/unkn0wn-root/brainmem/codec"
	pr "github.com/unkn0wn-root/brainmem/provider"
	"github.com/unkn0wn-root/brainmem/provider/bigcache"
	"github.com/unkn0wn-root/brainmem/provider/memory"
	"github.com/unkn0wn-root/brainmem/provider/redis"
	"github.com/unkn0wn-root/brainmem/provider/ristretto"
	"github.com/unkn0wn-root/brainmem/provider/sqlite"
)

// Config selects the store behind each namespace and the shared codec.
type Config struct {
	DurableDriver string `env:"BRAINMEM_DURABLE_DRIVER" envDefault:"memory"`
	SessionDriver string `env:"BRAINMEM_SESSION_DRIVER" envDefault:"memory"`
	Codec         string `env:"BRAINMEM_CODEC" envDefault:"json"`
	MaxDecode     int    `env:"BRAINMEM_MAX_DECODE_BYTES"`
	Prefix        string `env:"BRAINMEM_PREFIX"`

	SQLitePath string `env:"BRAINMEM_SQLITE_PATH" envDefault:"brainmem.db"`

	RedisAddr     string `env:"BRAINMEM_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"BRAINMEM_REDIS_PASSWORD"`
	RedisDB       int    `env:"BRAINMEM_REDIS_DB"`
	RedisRoot     string `env:"BRAINMEM_REDIS_ROOT" envDefault:"brainmem"`

	BigCacheLife   time.Duration `env:"BRAINMEM_BIGCACHE_LIFE"`
	RistrettoMaxMB int64         `env:"BRAINMEM_RISTRETTO_MAX_MB" envDefault:"64"`
}

// FromEnv loads Config from the process environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// NewCodec resolves the configured codec name.
func (cfg Config) NewCodec() (c.Codec, error) {
	var cd c.Codec
	switch strings.ToLower(cfg.Codec) {
	case "", "json":
		cd = c.JSON{}
	case "cbor":
		cb, err := c.NewCBOR(false)
		if err != nil {
			return nil, err
		}
		cd = cb
	case "msgpack":
		cd = c.Msgpack{}
	case "protobuf":
		cd = c.Protobuf{}
	default:
		return nil, fmt.Errorf("unknown codec %q", cfg.Codec)
	}
	if cfg.MaxDecode > 0 {
		cd = c.Limit{Inner: cd, MaxDecode: cfg.MaxDecode}
	}
	return cd, nil
}

// NewHost opens the configured stores. On failure anything already opened is closed.
func NewHost(ctx context.Context, cfg Config, log brainmem.Logger, hooks brainmem.Hooks) (*brainmem.Host, error) {
	cd, err := cfg.NewCodec()
	if err != nil {
		return nil, err
	}
	durable, err := cfg.openStore(ctx, cfg.DurableDriver, brainmem.Durable)
	if err != nil {
		return nil, fmt.Errorf("durable store: %w", err)
	}
	session, err := cfg.openStore(ctx, cfg.SessionDriver, brainmem.Session)
	if err != nil {
		_ = durable.Close(ctx)
		return nil, fmt.Errorf("session store: %w", err)
	}
	return &brainmem.Host{
		DurableStore: durable,
		SessionStore: session,
		Codec:        cd,
		Logger:       log,
		Hooks:        hooks,
	}, nil
}

func (cfg Config) openStore(ctx context.Context, driver string, ns brainmem.Namespace) (pr.Provider, error) {
	switch strings.ToLower(driver) {
	case "", "memory":
		return memory.New(), nil
	case "sqlite":
		return sqlite.Open(ctx, sqlite.Config{Path: filepath.Clean(cfg.SQLitePath), Namespace: ns.String()})
	case "redis":
		rdb := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
		}
		return redis.New(redis.Config{
			Client:      rdb,
			Root:        cfg.RedisRoot + ":" + ns.String(),
			CloseClient: true,
		})
	case "bigcache":
		return bigcache.New(ctx, bigcache.Config{LifeWindow: cfg.BigCacheLife})
	case "ristretto":
		maxCost := cfg.RistrettoMaxMB << 20
		return ristretto.New(ristretto.Config{
			NumCounters: 1e6,
			MaxCost:     maxCost,
			BufferItems: 64,
		})
	}
	return nil, fmt.Errorf("unknown driver %q", driver)
}

// Open opens a façade on ns using the configured default prefix.
func (cfg Config) Open(h *brainmem.Host, ns brainmem.Namespace) (brainmem.Memory, error) {
	return h.Open(ns, cfg.Prefix)
}
