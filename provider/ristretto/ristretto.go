package ristretto

import (
	"context"
	"errors"
	"sort"
	"sync"

	rc "github.com/dgraph-io/ristretto"

	pr "github.com/unkn0wn-root/brainmem/provider"
)

// Provider is a cost-bounded session store. Ristretto cannot enumerate its
// entries, so the provider keeps a side index of written keys and prunes it
// lazily when an entry turns out to be evicted.
type Provider struct {
	c *rc.Cache

	mu    sync.Mutex
	index map[string]struct{}
}

var _ pr.Provider = (*Provider)(nil)

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
	// Cost is the byte length of each value.
}

func New(cfg Config) (*Provider, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Provider{c: c, index: make(map[string]struct{})}, nil
}

func (p *Provider) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := p.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		// self-heal: drop unexpected entry shape
		p.c.Del(key)
		p.forget(key)
		return nil, false, nil
	}
	return b, true, nil
}

// Set waits for the write buffer to drain so the value is visible to the next Get.
func (p *Provider) Set(_ context.Context, key string, value []byte) error {
	cp := append([]byte(nil), value...)
	if !p.c.Set(key, cp, int64(len(cp))+1) {
		return pr.ErrRejected
	}
	p.c.Wait()
	p.mu.Lock()
	p.index[key] = struct{}{}
	p.mu.Unlock()
	return nil
}

func (p *Provider) Del(_ context.Context, key string) error {
	p.c.Del(key)
	p.forget(key)
	return nil
}

func (p *Provider) Clear(_ context.Context) error {
	p.c.Clear()
	p.mu.Lock()
	p.index = make(map[string]struct{})
	p.mu.Unlock()
	return nil
}

func (p *Provider) Keys(_ context.Context) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.index))
	for k := range p.index {
		if _, ok := p.c.Get(k); !ok {
			delete(p.index, k) // evicted
			continue
		}
		out = append(out, k)
	}
	sort.Strings(out)
	return out, nil
}

func (p *Provider) Close(_ context.Context) error {
	p.c.Wait()
	p.c.Close()
	return nil
}

// Metrics exposes ristretto counters when Config.Metrics is set.
func (p *Provider) Metrics() *rc.Metrics { return p.c.Metrics }

func (p *Provider) forget(key string) {
	p.mu.Lock()
	delete(p.index, key)
	p.mu.Unlock()
}
