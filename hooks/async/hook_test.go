package asynchook

import (
	"sync"
	"testing"

	"github.com/unkn0wn-root/brainmem"
)

type countingHooks struct {
	brainmem.NopHooks
	mu       sync.Mutex
	defaults int
	block    chan struct{}
}

func (c *countingHooks) DefaultRecorded(string) {
	if c.block != nil {
		<-c.block
	}
	c.mu.Lock()
	c.defaults++
	c.mu.Unlock()
}

func TestEventsAreDeliveredBeforeClose(t *testing.T) {
	inner := &countingHooks{}
	h := New(inner, 2, 16)
	for i := 0; i < 10; i++ {
		h.DefaultRecorded("k")
	}
	h.Close()
	if inner.defaults != 10 {
		t.Fatalf("want 10 delivered, got %d", inner.defaults)
	}
	if h.Dropped() != 0 {
		t.Fatalf("nothing should be dropped, got %d", h.Dropped())
	}
}

func TestFullQueueDrops(t *testing.T) {
	inner := &countingHooks{block: make(chan struct{})}
	h := New(inner, 1, 1)

	// first event occupies the worker; the next fills the queue; the rest drop
	for i := 0; i < 10; i++ {
		h.DefaultRecorded("k")
	}
	if h.Dropped() < 8 {
		t.Fatalf("want at least 8 dropped, got %d", h.Dropped())
	}
	close(inner.block)
	h.Close()
}

func TestSendAfterCloseIsDropped(t *testing.T) {
	h := New(brainmem.NopHooks{}, 1, 1)
	h.Close()
	h.RecordReplaced("k")
	if h.Dropped() != 1 {
		t.Fatalf("want 1 dropped, got %d", h.Dropped())
	}
}
