package slog

import (
	"bytes"
	stdslog "log/slog"
	"strings"
	"testing"

	"github.com/unkn0wn-root/brainmem"
)

func TestLoggerWritesSortedFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(stdslog.New(stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug})))

	l.Warn("existence check failed", brainmem.Fields{"key": "app-x", "err": "boom"})
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, `msg="brainmem: existence check failed"`) {
		t.Fatalf("unexpected output: %s", out)
	}
	if strings.Index(out, "err=") > strings.Index(out, "key=") {
		t.Fatalf("fields should be sorted: %s", out)
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(stdslog.New(stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelInfo})))
	l.Debug("hidden", nil)
	if buf.Len() != 0 {
		t.Fatalf("debug should be filtered, got %s", buf.String())
	}
}
