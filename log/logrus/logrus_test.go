package logrus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/unkn0wn-root/brainmem"
)

func TestLogrusLoggerTagsComponent(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	l := New(base)

	l.Info("prefix cleared", brainmem.Fields{"prefix": "app", "removed": 2})

	e := hook.LastEntry()
	if e == nil {
		t.Fatalf("no entry logged")
	}
	if e.Message != "prefix cleared" || e.Level != logrus.InfoLevel {
		t.Fatalf("entry: %v %v", e.Message, e.Level)
	}
	if e.Data["component"] != "brainmem" || e.Data["prefix"] != "app" || e.Data["removed"] != 2 {
		t.Fatalf("fields: %v", e.Data)
	}
}
