// Package provider defines the storage namespace abstraction used by brainmem.
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly the
// same []byte that was previously passed to Set for a key. brainmem owns
// prefixing and (de)serialization; a provider only moves bytes.
//
// A provider instance backs exactly one namespace (durable or session). Several
// brainmem façades with different prefixes may share it, so Clear wipes every
// key in the namespace regardless of prefix.
package provider

import (
	"context"
	"errors"
)

// ErrRejected is returned by Set when the store refused the write (admission/pressure).
var ErrRejected = errors.New("provider: write rejected")

// Provider is a minimal enumerable byte store.
type Provider interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Del removes a key. Missing keys are not an error.
	Del(ctx context.Context, key string) error

	// Clear removes every key in the namespace.
	Clear(ctx context.Context) error

	// Keys enumerates every key currently stored.
	Keys(ctx context.Context) ([]string, error)

	// Close releases resources.
	Close(ctx context.Context) error
}

// Exister is an optional fast existence check. Callers fall back to Keys
// membership when a provider does not implement it.
type Exister interface {
	Has(ctx context.Context, key string) (bool, error)
}
