package brainmem

import (
	"context"
	"errors"
	"testing"
)

func TestHostOpensBothNamespaces(t *testing.T) {
	ctx := context.Background()
	durable, session := newMemProvider(), newMemProvider()
	h := &Host{DurableStore: durable, SessionStore: session}

	d, err := h.Durable("app")
	if err != nil {
		t.Fatalf("Durable: %v", err)
	}
	s, err := h.Temporary("")
	if err != nil {
		t.Fatalf("Temporary: %v", err)
	}
	if d.Namespace() != Durable || s.Namespace() != Session {
		t.Fatalf("namespaces: %s %s", d.Namespace(), s.Namespace())
	}
	if s.HasPrefix() {
		t.Fatalf("empty prefix should leave the façade unprefixed")
	}

	_ = d.Record(ctx, "k", "durable")
	_ = s.Record(ctx, "k", "session")
	if string(durable.m["app-k"]) != "durable" || string(session.m["k"]) != "session" {
		t.Fatalf("writes landed in the wrong store: %v / %v", durable.m, session.m)
	}
}

func TestHostCapabilityUnavailable(t *testing.T) {
	h := &Host{DurableStore: newMemProvider()}
	if _, err := h.Session("x"); !errors.Is(err, ErrCapabilityUnavailable) {
		t.Fatalf("want ErrCapabilityUnavailable, got %v", err)
	}
	if _, err := h.Permanent("x"); err != nil {
		t.Fatalf("Permanent: %v", err)
	}
}

func TestHostInvalidNamespace(t *testing.T) {
	h := &Host{DurableStore: newMemProvider(), SessionStore: newMemProvider()}
	if _, err := h.Open(Namespace(0), ""); !errors.Is(err, ErrInvalidNamespace) {
		t.Fatalf("want ErrInvalidNamespace, got %v", err)
	}
}

func TestNamespaceString(t *testing.T) {
	if Durable.String() != "durable" || Session.String() != "session" {
		t.Fatalf("bad names")
	}
	if Namespace(7).Valid() {
		t.Fatalf("7 is not a namespace")
	}
}

type closeCounter struct {
	*memProvider
	closes int
	err    error
}

func (p *closeCounter) Close(context.Context) error {
	p.closes++
	return p.err
}

func TestHostCloseSharedStoreOnce(t *testing.T) {
	shared := &closeCounter{memProvider: newMemProvider()}
	h := &Host{DurableStore: shared, SessionStore: shared}
	if err := h.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if shared.closes != 1 {
		t.Fatalf("shared store closed %d times", shared.closes)
	}
}

func TestHostCloseJoinsErrors(t *testing.T) {
	boom := errors.New("boom")
	d := &closeCounter{memProvider: newMemProvider(), err: boom}
	s := &closeCounter{memProvider: newMemProvider()}
	h := &Host{DurableStore: d, SessionStore: s}
	if err := h.Close(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
	if s.closes != 1 {
		t.Fatalf("session store should still close")
	}
}
