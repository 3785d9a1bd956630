// Package memory is an in-process provider. It is the default session store and
// the fake most tests run against.
package memory

import (
	"context"
	"sort"
	"sync"

	pr "github.com/unkn0wn-root/brainmem/provider"
)

type Memory struct {
	mu sync.RWMutex
	m  map[string][]byte
}

var (
	_ pr.Provider = (*Memory)(nil)
	_ pr.Exister  = (*Memory)(nil)
)

func New() *Memory { return &Memory{m: make(map[string][]byte)} }

func (p *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	p.mu.RLock()
	v, ok := p.m[key]
	p.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (p *Memory) Set(_ context.Context, key string, value []byte) error {
	cp := append([]byte(nil), value...)
	p.mu.Lock()
	p.m[key] = cp
	p.mu.Unlock()
	return nil
}

func (p *Memory) Has(_ context.Context, key string) (bool, error) {
	p.mu.RLock()
	_, ok := p.m[key]
	p.mu.RUnlock()
	return ok, nil
}

func (p *Memory) Del(_ context.Context, key string) error {
	p.mu.Lock()
	delete(p.m, key)
	p.mu.Unlock()
	return nil
}

func (p *Memory) Clear(_ context.Context) error {
	p.mu.Lock()
	p.m = make(map[string][]byte)
	p.mu.Unlock()
	return nil
}

// Keys returns keys in ascending order so enumeration is deterministic.
func (p *Memory) Keys(_ context.Context) ([]string, error) {
	p.mu.RLock()
	out := make([]string, 0, len(p.m))
	for k := range p.m {
		out = append(out, k)
	}
	p.mu.RUnlock()
	sort.Strings(out)
	return out, nil
}

func (p *Memory) Close(_ context.Context) error { return nil }

// Len is handy in tests.
func (p *Memory) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.m)
}
