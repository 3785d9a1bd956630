package brainmem

// RecordOption tunes a single Record call.
type RecordOption func(*recordOptions)

type recordOptions struct {
	rewrite bool
}

// Rewrite controls path writes. true (the default) replaces the whole record
// at the head key with a fresh nested structure; false loads the existing
// record and sets only the addressed field, keeping its siblings.
func Rewrite(b bool) RecordOption {
	return func(o *recordOptions) { o.rewrite = b }
}

// RecallOption tunes RecallOne / Recall.
type RecallOption func(*recallOptions)

type recallOptions struct {
	def         any
	defaults    map[string]any
	hasDefaults bool
	persistAll  bool
	persistKeys map[string]struct{}
	err         error
}

// Default is the fallback for an absent key. In batch recalls it applies to
// keys missing from Defaults.
func Default(v any) RecallOption {
	return func(o *recallOptions) {
		o.def = v
		o.hasDefaults = true
	}
}

// Defaults supplies per-key fallbacks for batch recalls. The map is copied.
func Defaults(m map[string]any) RecallOption {
	return func(o *recallOptions) {
		o.defaults = make(map[string]any, len(m))
		for k, v := range m {
			o.defaults[k] = v
		}
		o.hasDefaults = true
	}
}

// PersistDefault writes the fallback back to storage whenever it is returned.
func PersistDefault() RecallOption {
	return func(o *recallOptions) { o.persistAll = true }
}

// PersistDefaultsFor persists fallbacks only for the listed keys.
func PersistDefaultsFor(keys ...string) RecallOption {
	return func(o *recallOptions) {
		if o.persistKeys == nil {
			o.persistKeys = make(map[string]struct{}, len(keys))
		}
		for _, k := range keys {
			o.persistKeys[k] = struct{}{}
		}
	}
}

// PersistDefaultIf takes a loosely-typed flag: a []string behaves like
// PersistDefaultsFor, anything else goes through CoerceBool ("1", "true", 0 ...).
// A flag that does not coerce to a boolean fails the recall with ErrInvalidArgument.
func PersistDefaultIf(flag any) RecallOption {
	return func(o *recallOptions) {
		if keys, ok := flag.([]string); ok {
			PersistDefaultsFor(keys...)(o)
			return
		}
		b, err := asBool(flag)
		if err != nil {
			o.err = err
			return
		}
		o.persistAll = b
	}
}

func newRecallOptions(opts []RecallOption) (recallOptions, error) {
	var o recallOptions
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o, o.err
}

func (o recallOptions) defaultFor(key string) any {
	if v, ok := o.defaults[key]; ok {
		return v
	}
	return o.def
}

func (o recallOptions) persistFor(key string) bool {
	if o.persistAll {
		return true
	}
	_, ok := o.persistKeys[key]
	return ok
}
