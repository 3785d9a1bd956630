package util

import "strings"

const (
	// Sep joins a prefix to a logical key.
	Sep = "-"
	// PathSep splits a logical key into head and path segments.
	PathSep = "."
)

// NormalizePrefix returns p ending with exactly one trailing Sep.
// An empty prefix stays empty (no namespacing).
func NormalizePrefix(p string) string {
	if p == "" || strings.HasSuffix(p, Sep) {
		return p
	}
	return p + Sep
}

// WithPrefix prepends the normalized prefix to key unless key already carries it.
func WithPrefix(key, prefix string) string {
	np := NormalizePrefix(prefix)
	if np == "" || strings.HasPrefix(key, np) {
		return key
	}
	return np + key
}

// StripPrefix removes one leading occurrence of the normalized prefix.
func StripPrefix(key, prefix string) string {
	np := NormalizePrefix(prefix)
	if np == "" {
		return key
	}
	return strings.TrimPrefix(key, np)
}

// HasPrefix reports whether key lives under prefix. Every key matches an empty prefix.
func HasPrefix(key, prefix string) bool {
	np := NormalizePrefix(prefix)
	return np == "" || strings.HasPrefix(key, np)
}

// SplitPath splits "a.b.c" into head "a" and segments ["b","c"].
// A key without PathSep yields no segments.
func SplitPath(key string) (head string, segments []string) {
	if !strings.Contains(key, PathSep) {
		return key, nil
	}
	parts := strings.Split(key, PathSep)
	return parts[0], parts[1:]
}

// Unprefixed filters keys down to those under prefix and strips it from the survivors.
func Unprefixed(keys []string, prefix string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if HasPrefix(k, prefix) {
			out = append(out, StripPrefix(k, prefix))
		}
	}
	return out
}

// Without returns keys minus every member of excluded, order preserved.
func Without(keys, excluded []string) []string {
	if len(excluded) == 0 {
		return append([]string(nil), keys...)
	}
	drop := make(map[string]struct{}, len(excluded))
	for _, k := range excluded {
		drop[k] = struct{}{}
	}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := drop[k]; !ok {
			out = append(out, k)
		}
	}
	return out
}
