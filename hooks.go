package brainmem

// Hooks are lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking; they run inline on every call.
type Hooks interface {
	// Stored bytes failed to decode and the raw text was returned instead.
	DecodeFallback(storageKey string, err error)

	// An existence check failed and the key was treated as absent.
	LookupFault(storageKey string, err error)

	// A recall on an absent key persisted its default value.
	DefaultRecorded(storageKey string)

	// A rewrite path write replaced the whole record at storageKey.
	RecordReplaced(storageKey string)

	// ForgetAll ran. prefix == "" means the namespace was cleared wholesale
	// and removed is -1.
	Cleared(namespace, prefix string, removed int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) DecodeFallback(string, error) {}
func (NopHooks) LookupFault(string, error)    {}
func (NopHooks) DefaultRecorded(string)       {}
func (NopHooks) RecordReplaced(string)        {}
func (NopHooks) Cleared(string, string, int)  {}
