package brainmem

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks a parameter that breaks a type contract
	// (empty key, blank prefix (empty or whitespace only), non-boolean flag,
	// unencodable value).
	ErrInvalidArgument = errors.New("brainmem: invalid argument")
	// ErrCapabilityUnavailable means the host has no store for the requested namespace.
	ErrCapabilityUnavailable = errors.New("brainmem: storage capability unavailable")
	// ErrInvalidNamespace means the namespace is neither Durable nor Session.
	ErrInvalidNamespace = errors.New("brainmem: invalid namespace")
	// ErrNoDefaults is returned by Records.RecordDefaults when the recall had no defaults.
	ErrNoDefaults = errors.New("brainmem: recall carried no default values")
)

// PathError reports a path write that cannot descend into the stored record.
type PathError struct {
	Key     string // logical key as given by the caller
	Segment string // segment that failed
	Reason  string
}

func (e *PathError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("brainmem: path %q: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("brainmem: path %q at %q: %s", e.Key, e.Segment, e.Reason)
}

func (e *PathError) Unwrap() error { return ErrInvalidArgument }

func invalidArg(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}
