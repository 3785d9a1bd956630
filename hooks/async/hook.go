// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    DecodeFallbackEvery: 10, // sample logs: ~every 10th fallback
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	host := &brainmem.Host{
//	    DurableStore: durable,
//	    SessionStore: session,
//	    Hooks:        hooks, // or `raw` if you don't want async
//	}
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/brainmem"
)

// Hooks forwards events to inner on worker goroutines. When the queue is
// full the event is dropped and counted.
type Hooks struct {
	inner   brainmem.Hooks
	q       chan func()
	wg      sync.WaitGroup
	once    sync.Once
	dropped atomic.Uint64
}

var _ brainmem.Hooks = (*Hooks)(nil)

func New(inner brainmem.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Events sent after Close are dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

// Dropped reports how many events were discarded because the queue was full.
func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	defer func() {
		// send on closed queue after Close
		if recover() != nil {
			h.dropped.Add(1)
		}
	}()
	select {
	case h.q <- f:
	default:
		h.dropped.Add(1)
	}
}

func (h *Hooks) DecodeFallback(k string, err error) { h.try(func() { h.inner.DecodeFallback(k, err) }) }
func (h *Hooks) LookupFault(k string, err error)    { h.try(func() { h.inner.LookupFault(k, err) }) }
func (h *Hooks) DefaultRecorded(k string)           { h.try(func() { h.inner.DefaultRecorded(k) }) }
func (h *Hooks) RecordReplaced(k string)            { h.try(func() { h.inner.RecordReplaced(k) }) }
func (h *Hooks) Cleared(ns, prefix string, n int) {
	h.try(func() { h.inner.Cleared(ns, prefix, n) })
}
