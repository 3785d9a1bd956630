package util

import (
	"reflect"
	"testing"
)

func TestWithPrefixIdempotent(t *testing.T) {
	cases := []struct{ key, prefix string }{
		{"settings", "app"},
		{"app-settings", "app"},
		{"x", "app-"},
		{"", "app"},
		{"settings", ""},
		{"a.b.c", "p"},
	}
	for _, tc := range cases {
		once := WithPrefix(tc.key, tc.prefix)
		twice := WithPrefix(once, tc.prefix)
		if once != twice {
			t.Fatalf("WithPrefix(%q,%q) not idempotent: %q -> %q", tc.key, tc.prefix, once, twice)
		}
	}
}

func TestWithPrefixForms(t *testing.T) {
	if got := WithPrefix("k", "app"); got != "app-k" {
		t.Fatalf("got %q want app-k", got)
	}
	if got := WithPrefix("k", "app-"); got != "app-k" {
		t.Fatalf("trailing separator should not double: got %q", got)
	}
	if got := WithPrefix("k", ""); got != "k" {
		t.Fatalf("empty prefix must be a no-op, got %q", got)
	}
}

func TestStripPrefix(t *testing.T) {
	if got := StripPrefix("app-k", "app"); got != "k" {
		t.Fatalf("got %q want k", got)
	}
	if got := StripPrefix("app-app-k", "app"); got != "app-k" {
		t.Fatalf("strip must remove exactly one occurrence, got %q", got)
	}
	if got := StripPrefix("other-k", "app"); got != "other-k" {
		t.Fatalf("foreign key must be unchanged, got %q", got)
	}
}

func TestSplitPath(t *testing.T) {
	head, segs := SplitPath("settings.theme.color")
	if head != "settings" || !reflect.DeepEqual(segs, []string{"theme", "color"}) {
		t.Fatalf("got head=%q segs=%v", head, segs)
	}
	head, segs = SplitPath("plain")
	if head != "plain" || segs != nil {
		t.Fatalf("simple key: head=%q segs=%v", head, segs)
	}
	_, segs = SplitPath("a..b")
	if !reflect.DeepEqual(segs, []string{"", "b"}) {
		t.Fatalf("empty segment must be kept, got %v", segs)
	}
}

func TestUnprefixedAndWithout(t *testing.T) {
	keys := []string{"app-x", "app-y", "other-z"}
	got := Unprefixed(keys, "app")
	if !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Fatalf("Unprefixed: %v", got)
	}
	if got := Unprefixed(keys, ""); !reflect.DeepEqual(got, keys) {
		t.Fatalf("Unprefixed without prefix should keep all, got %v", got)
	}
	if got := Without([]string{"a", "b", "c"}, []string{"b"}); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("Without: %v", got)
	}
}
