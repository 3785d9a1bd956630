package brainmem

import (
	"context"
	"errors"
	"fmt"
	"strings"

	c "github.com/unkn0wn-root/brainmem/codec"
	"github.com/unkn0wn-root/brainmem/internal/util"
	pr "github.com/unkn0wn-root/brainmem/provider"
)

// memory holds no buffered state: every call goes straight to the provider,
// so out-of-band writes are always visible. SetPrefix is not synchronized;
// set the prefix before sharing the façade.
type memory struct {
	ns       Namespace
	provider pr.Provider
	codec    c.Codec
	log      Logger
	hooks    Hooks

	prefix string
}

func newMemory(opts Options) (*memory, error) {
	if !opts.Namespace.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidNamespace, opts.Namespace)
	}
	if opts.Provider == nil {
		return nil, fmt.Errorf("%w: no %s store", ErrCapabilityUnavailable, opts.Namespace)
	}

	m := &memory{
		ns:       opts.Namespace,
		provider: opts.Provider,
	}
	m.codec = coalesce[c.Codec](opts.Codec, c.JSON{})
	m.log = coalesce[Logger](opts.Logger, NopLogger{})
	m.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})

	if opts.Prefix != "" {
		if err := m.SetPrefix(opts.Prefix); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *memory) Namespace() Namespace { return m.ns }

func (m *memory) Prefix() string { return m.prefix }

func (m *memory) HasPrefix() bool { return m.prefix != "" }

func (m *memory) SetPrefix(p string) error {
	if strings.TrimSpace(p) == "" {
		return invalidArg("prefix must be a non-empty string")
	}
	m.prefix = p
	return nil
}

// HasRecord checks the exact physical key first, so keys that contain a dot
// but were stored literally are found. Only then is key read as a path.
func (m *memory) HasRecord(ctx context.Context, key string) bool {
	if m.exists(ctx, m.storageKey(key)) {
		return true
	}
	head, segs := util.SplitPath(key)
	if len(segs) == 0 || head == "" {
		return false
	}
	sk := m.storageKey(head)
	v, ok, err := m.load(ctx, sk)
	if err != nil {
		m.lookupFault(sk, err)
		return false
	}
	if !ok {
		return false
	}
	_, found := lookupPath(v, segs)
	return found
}

func (m *memory) Record(ctx context.Context, key string, value any, opts ...RecordOption) error {
	o := recordOptions{rewrite: true}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	head, segs := util.SplitPath(key)
	if head == "" {
		return invalidArg("key %q has an empty head", key)
	}
	sk := m.storageKey(head)

	out := value
	if len(segs) > 0 {
		var existing any
		var found bool
		if !o.rewrite {
			var err error
			existing, found, err = m.load(ctx, sk)
			if err != nil {
				return fmt.Errorf("brainmem: record %q: %w", key, err)
			}
		}
		if found {
			merged, err := setPath(existing, key, segs, value)
			if err != nil {
				return err
			}
			out = merged
		} else {
			out = buildNested(segs, value)
			if o.rewrite {
				m.hooks.RecordReplaced(sk)
			}
		}
	}
	return m.store(ctx, sk, out)
}

func (m *memory) Update(ctx context.Context, key string, value any) error {
	return m.Record(ctx, key, value, Rewrite(false))
}

func (m *memory) RecallOne(ctx context.Context, key string, opts ...RecallOption) (any, error) {
	o, err := newRecallOptions(opts)
	if err != nil {
		return nil, err
	}
	return m.recallOne(ctx, key, o.def, o.persistAll)
}

func (m *memory) Recall(ctx context.Context, keys []string, opts ...RecallOption) (*Records, error) {
	o, err := newRecallOptions(opts)
	if err != nil {
		return nil, err
	}
	r := newRecords(m, len(keys), o.hasDefaults)
	for _, k := range keys {
		if _, seen := r.Lookup(k); seen {
			continue
		}
		v, err := m.recallOne(ctx, k, o.defaultFor(k), o.persistFor(k))
		if err != nil {
			return nil, err
		}
		r.put(k, v)
	}
	return r, nil
}

func (m *memory) RecallMany(ctx context.Context, keys []string, opts ...RecallOption) (*Records, error) {
	return m.Recall(ctx, keys, opts...)
}

func (m *memory) RecallExcept(ctx context.Context, excluded []string, opts ...RecallOption) (*Records, error) {
	all, err := m.logicalKeys(ctx)
	if err != nil {
		return nil, err
	}
	return m.Recall(ctx, util.Without(all, excluded), opts...)
}

func (m *memory) RecallAll(ctx context.Context) (*Records, error) {
	all, err := m.logicalKeys(ctx)
	if err != nil {
		return nil, err
	}
	return m.Recall(ctx, all)
}

// Forget removes each key's physical record. Empty keys are skipped.
// It keeps going after a provider error and returns all of them joined.
func (m *memory) Forget(ctx context.Context, keys ...string) error {
	var errs []error
	for _, k := range keys {
		if k == "" {
			continue
		}
		sk := m.storageKey(k)
		if err := m.provider.Del(ctx, sk); err != nil {
			errs = append(errs, fmt.Errorf("brainmem: forget %q: %w", k, err))
		}
	}
	return errors.Join(errs...)
}

func (m *memory) ForgetExcept(ctx context.Context, keys ...string) error {
	all, err := m.logicalKeys(ctx)
	if err != nil {
		return err
	}
	return m.Forget(ctx, util.Without(all, keys)...)
}

// ForgetAll with a prefix removes only that prefix's keys; without one it
// clears the whole namespace. It reports whether it ran.
func (m *memory) ForgetAll(ctx context.Context, condition bool) (bool, error) {
	if !condition {
		return false, nil
	}
	if !m.HasPrefix() {
		if err := m.provider.Clear(ctx); err != nil {
			return true, fmt.Errorf("brainmem: clear %s: %w", m.ns, err)
		}
		m.log.Info("namespace cleared", Fields{"ns": m.ns.String()})
		m.hooks.Cleared(m.ns.String(), "", -1)
		return true, nil
	}
	keys, err := m.logicalKeys(ctx)
	if err != nil {
		return true, err
	}
	if err := m.Forget(ctx, keys...); err != nil {
		return true, err
	}
	m.log.Info("prefix cleared", Fields{"ns": m.ns.String(), "prefix": m.prefix, "removed": len(keys)})
	m.hooks.Cleared(m.ns.String(), m.prefix, len(keys))
	return true, nil
}

func (m *memory) recallOne(ctx context.Context, key string, def any, persist bool) (any, error) {
	if key == "" {
		return nil, invalidArg("key is empty")
	}
	head, segs := util.SplitPath(key)
	if len(segs) > 0 {
		// literal dotted keys win over path resolution
		v, ok, err := m.load(ctx, m.storageKey(key))
		if err != nil {
			return nil, fmt.Errorf("brainmem: recall %q: %w", key, err)
		}
		if ok {
			return v, nil
		}
	}
	if head == "" {
		return nil, invalidArg("key %q has an empty head", key)
	}
	sk := m.storageKey(head)
	v, ok, err := m.load(ctx, sk)
	if err != nil {
		return nil, fmt.Errorf("brainmem: recall %q: %w", key, err)
	}
	if ok {
		if len(segs) == 0 {
			return v, nil
		}
		if sub, found := lookupPath(v, segs); found {
			return sub, nil
		}
	}
	if persist {
		if err := m.persistDefault(ctx, key, sk, v, ok && len(segs) > 0, def); err != nil {
			return nil, err
		}
	}
	return def, nil
}

// persistDefault writes def for an absent key. A path default keeps its
// siblings when the head record is a mapping; a head holding a scalar or raw
// text is replaced, since nothing can be nested into it. A path that runs
// into a scalar deeper down is left unwritten.
func (m *memory) persistDefault(ctx context.Context, key, sk string, head any, headFound bool, def any) error {
	rewrite := headFound && !isContainer(head)
	err := m.Record(ctx, key, def, Rewrite(rewrite))
	var pe *PathError
	if errors.As(err, &pe) {
		m.log.Warn("default not recorded", Fields{"key": sk, "err": err})
		return nil
	}
	if err != nil {
		return err
	}
	m.log.Debug("default recorded", Fields{"key": sk})
	m.hooks.DefaultRecorded(sk)
	return nil
}

func (m *memory) storageKey(logical string) string {
	return util.WithPrefix(logical, m.prefix)
}

// logicalKeys enumerates the namespace, keeping only this façade's prefix and
// stripping it from the survivors.
func (m *memory) logicalKeys(ctx context.Context) ([]string, error) {
	all, err := m.provider.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("brainmem: enumerate %s: %w", m.ns, err)
	}
	if !m.HasPrefix() {
		return all, nil
	}
	return util.Unprefixed(all, m.prefix), nil
}

func (m *memory) exists(ctx context.Context, sk string) bool {
	if ex, ok := m.provider.(pr.Exister); ok {
		has, err := ex.Has(ctx, sk)
		if err != nil {
			m.lookupFault(sk, err)
			return false
		}
		return has
	}
	keys, err := m.provider.Keys(ctx)
	if err != nil {
		m.lookupFault(sk, err)
		return false
	}
	for _, k := range keys {
		if k == sk {
			return true
		}
	}
	return false
}

// load reads and decodes one physical record. Bytes the codec rejects come
// back as the raw string.
func (m *memory) load(ctx context.Context, sk string) (any, bool, error) {
	raw, ok, err := m.provider.Get(ctx, sk)
	if err != nil || !ok {
		return nil, false, err
	}
	v, err := m.codec.Decode(raw)
	if err != nil {
		m.log.Debug("stored value returned raw", Fields{"key": sk, "codec": m.codec.Name(), "err": err})
		m.hooks.DecodeFallback(sk, err)
		return string(raw), true, nil
	}
	return v, true, nil
}

func (m *memory) store(ctx context.Context, sk string, v any) error {
	b, err := m.codec.Encode(v)
	if err != nil {
		return invalidArg("encode %q with %s: %v", sk, m.codec.Name(), err)
	}
	if err := m.provider.Set(ctx, sk, b); err != nil {
		return fmt.Errorf("brainmem: write %q: %w", sk, err)
	}
	return nil
}

func (m *memory) lookupFault(sk string, err error) {
	m.log.Warn("existence check failed; treating as absent", Fields{"key": sk, "err": err})
	m.hooks.LookupFault(sk, err)
}
