package brainmem

import "context"

// Records is the result of a batch recall. It owns a copy of the resolved
// values and remembers the façade that produced them.
type Records struct {
	m           *memory
	keys        []string
	values      map[string]any
	hasDefaults bool
}

func newRecords(m *memory, n int, hasDefaults bool) *Records {
	return &Records{
		m:           m,
		keys:        make([]string, 0, n),
		values:      make(map[string]any, n),
		hasDefaults: hasDefaults,
	}
}

func (r *Records) put(key string, v any) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

// Get returns the resolved value for key, or nil when key was not requested.
func (r *Records) Get(key string) any {
	return r.values[key]
}

// Lookup is Get with a presence flag.
func (r *Records) Lookup(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the requested keys in request order, duplicates removed.
func (r *Records) Keys() []string { return append([]string(nil), r.keys...) }

func (r *Records) Len() int { return len(r.keys) }

// Map returns a shallow copy of the key/value mapping.
func (r *Records) Map() map[string]any {
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// HasDefaults reports whether the recall was given default values, i.e.
// whether RecordDefaults is available.
func (r *Records) HasDefaults() bool { return r.hasDefaults }

// RecordDefaults writes the currently resolved value of each key back to
// storage; with no keys, every key in the result is written. Path keys keep
// their siblings.
func (r *Records) RecordDefaults(ctx context.Context, keys ...string) error {
	if !r.hasDefaults {
		return ErrNoDefaults
	}
	if len(keys) == 0 {
		keys = r.keys
	}
	for _, k := range keys {
		if err := r.m.Record(ctx, k, r.Get(k), Rewrite(false)); err != nil {
			return err
		}
	}
	return nil
}
