package brainmem

import (
	"context"
	"errors"
	"fmt"

	c "github.com/unkn0wn-root/brainmem/codec"
	pr "github.com/unkn0wn-root/brainmem/provider"
)

// Namespace selects one of the two host stores.
type Namespace uint8

const (
	Durable Namespace = iota + 1 // survives restarts
	Session                      // lives as long as the host session
)

func (n Namespace) Valid() bool { return n == Durable || n == Session }

func (n Namespace) String() string {
	switch n {
	case Durable:
		return "durable"
	case Session:
		return "session"
	}
	return fmt.Sprintf("namespace(%d)", uint8(n))
}

// Host holds the two injected namespace stores and the shared settings every
// façade opened from it uses. A nil store means the host lacks that capability.
type Host struct {
	DurableStore pr.Provider
	SessionStore pr.Provider

	Codec  c.Codec
	Logger Logger
	Hooks  Hooks
}

// Open returns a façade bound to ns. The capability check happens here, once.
func (h *Host) Open(ns Namespace, prefix string) (Memory, error) {
	var store pr.Provider
	switch ns {
	case Durable:
		store = h.DurableStore
	case Session:
		store = h.SessionStore
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidNamespace, ns)
	}
	if store == nil {
		return nil, fmt.Errorf("%w: host has no %s store", ErrCapabilityUnavailable, ns)
	}
	return New(Options{
		Namespace: ns,
		Provider:  store,
		Prefix:    prefix,
		Codec:     h.Codec,
		Logger:    h.Logger,
		Hooks:     h.Hooks,
	})
}

func (h *Host) Durable(prefix string) (Memory, error) { return h.Open(Durable, prefix) }
func (h *Host) Session(prefix string) (Memory, error) { return h.Open(Session, prefix) }

// Permanent and Temporary are alternative names for Durable and Session.
func (h *Host) Permanent(prefix string) (Memory, error) { return h.Durable(prefix) }
func (h *Host) Temporary(prefix string) (Memory, error) { return h.Session(prefix) }

// Close closes both stores (best effort) and joins their errors.
func (h *Host) Close(ctx context.Context) error {
	var errs []error
	stores := []pr.Provider{h.DurableStore}
	if h.SessionStore != h.DurableStore {
		stores = append(stores, h.SessionStore)
	}
	for _, s := range stores {
		if s == nil {
			continue
		}
		if err := s.Close(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
