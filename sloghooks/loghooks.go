package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/brainmem"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	DecodeFallbackEvery uint64
	LookupFaultEvery    uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	fallbackCtr atomic.Uint64
	faultCtr    atomic.Uint64
}

var _ brainmem.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) DecodeFallback(storageKey string, err error) {
	if h.l == nil || !sample(h.opts.DecodeFallbackEvery, &h.fallbackCtr) {
		return
	}
	h.l.Debug("brainmem.decode_fallback",
		"key", h.redact(storageKey),
		"err", err)
}

func (h *Hooks) LookupFault(storageKey string, err error) {
	if h.l == nil || !sample(h.opts.LookupFaultEvery, &h.faultCtr) {
		return
	}
	h.l.Warn("brainmem.lookup_fault",
		"key", h.redact(storageKey),
		"err", err)
}

func (h *Hooks) DefaultRecorded(storageKey string) {
	if h.l == nil {
		return
	}
	h.l.Debug("brainmem.default_recorded",
		"key", h.redact(storageKey))
}

func (h *Hooks) RecordReplaced(storageKey string) {
	if h.l == nil {
		return
	}
	h.l.Debug("brainmem.record_replaced",
		"key", h.redact(storageKey))
}

func (h *Hooks) Cleared(ns, prefix string, removed int) {
	if h.l == nil {
		return
	}
	h.l.Info("brainmem.cleared",
		"ns", ns,
		"prefix", prefix,
		"removed", removed)
}
