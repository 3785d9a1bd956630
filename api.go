package brainmem

import (
	"context"

	c "github.com/unkn0wn-root/brainmem/codec"
	pr "github.com/unkn0wn-root/brainmem/provider"
)

// Memory is the key-value façade over one storage namespace.
// Keys may be simple ("settings") or dot paths ("settings.theme.color").
type Memory interface {
	Namespace() Namespace

	// Prefix
	Prefix() string
	HasPrefix() bool
	SetPrefix(p string) error

	HasRecord(ctx context.Context, key string) bool

	// Write
	Record(ctx context.Context, key string, value any, opts ...RecordOption) error
	Update(ctx context.Context, key string, value any) error

	// Read
	RecallOne(ctx context.Context, key string, opts ...RecallOption) (any, error)
	Recall(ctx context.Context, keys []string, opts ...RecallOption) (*Records, error)
	RecallMany(ctx context.Context, keys []string, opts ...RecallOption) (*Records, error)
	RecallExcept(ctx context.Context, excluded []string, opts ...RecallOption) (*Records, error)
	RecallAll(ctx context.Context) (*Records, error)

	// Delete
	Forget(ctx context.Context, keys ...string) error
	ForgetExcept(ctx context.Context, keys ...string) error
	ForgetAll(ctx context.Context, condition bool) (bool, error)
}

// Options configure a façade. Provider is required; Namespace must be Durable
// or Session. The rest have sensible defaults.
type Options struct {
	Namespace Namespace
	Provider  pr.Provider
	Prefix    string  // "" => keys are used as-is
	Codec     c.Codec // nil => codec.JSON{}
	Logger    Logger  // nil => NopLogger
	Hooks     Hooks   // nil => NopHooks
}

func New(opts Options) (Memory, error) {
	return newMemory(opts)
}
