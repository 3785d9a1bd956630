package brainmem

import "testing"

func TestCoerceBool(t *testing.T) {
	truthy := []any{"true", "1", " true ", 1, int64(1), uint8(1), 1.0, true}
	for _, v := range truthy {
		if got := CoerceBool(v); got != true {
			t.Fatalf("CoerceBool(%#v) = %#v want true", v, got)
		}
	}
	falsy := []any{"false", "0", 0, int32(0), 0.0, false}
	for _, v := range falsy {
		if got := CoerceBool(v); got != false {
			t.Fatalf("CoerceBool(%#v) = %#v want false", v, got)
		}
	}
	passthrough := []any{"yes", "", 2, 0.5, nil}
	for _, v := range passthrough {
		if got := CoerceBool(v); got != v {
			t.Fatalf("CoerceBool(%#v) = %#v want unchanged", v, got)
		}
	}
}

func TestAsBool(t *testing.T) {
	if b, err := asBool("1"); err != nil || !b {
		t.Fatalf("asBool(1) = %v %v", b, err)
	}
	if _, err := asBool("nope"); err == nil {
		t.Fatalf("asBool(nope) should fail")
	}
}
