package sinks

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/vsnam19/vsnlogger/pkg/codes"
)

type fakeSyslog struct {
	severities []string
	messages   []string
}

func (f *fakeSyslog) record(sev, m string) error {
	f.severities = append(f.severities, sev)
	f.messages = append(f.messages, m)
	return nil
}

func (f *fakeSyslog) Debug(m string) error   { return f.record("debug", m) }
func (f *fakeSyslog) Info(m string) error    { return f.record("info", m) }
func (f *fakeSyslog) Warning(m string) error { return f.record("warning", m) }
func (f *fakeSyslog) Err(m string) error     { return f.record("err", m) }
func (f *fakeSyslog) Crit(m string) error    { return f.record("crit", m) }
func (f *fakeSyslog) Close() error           { return nil }

func newFakeSyslogSink(t *testing.T, formatting bool) (*Sink, *fakeSyslog) {
	t.Helper()
	fake := &fakeSyslog{}
	restore := dialSyslog
	dialSyslog = func(int, string) (syslogWriter, error) { return fake, nil }
	t.Cleanup(func() { dialSyslog = restore })

	s, c := NewSyslog("testapp", 0, 0, formatting)
	if c != codes.OK {
		t.Fatalf("NewSyslog: %v", c)
	}
	t.Cleanup(func() { s.Release() })
	return s, fake
}

func TestSyslogCoreSeverity(t *testing.T) {
	s, fake := newFakeSyslogSink(t, false)
	core := s.Build("default", TraceLevel)

	entries := []struct {
		level zapcore.Level
		want  string
	}{
		{TraceLevel, "debug"},
		{zapcore.DebugLevel, "debug"},
		{zapcore.InfoLevel, "info"},
		{zapcore.WarnLevel, "warning"},
		{zapcore.ErrorLevel, "err"},
		{CriticalLevel, "crit"},
	}
	for _, e := range entries {
		if err := core.Write(zapcore.Entry{Level: e.level, Message: "m"}, nil); err != nil {
			t.Fatalf("write %v: %v", e.level, err)
		}
	}
	for i, e := range entries {
		if fake.severities[i] != e.want {
			t.Errorf("entry %d severity = %q, want %q", i, fake.severities[i], e.want)
		}
	}
}

func TestSyslogCoreFormatting(t *testing.T) {
	s, fake := newFakeSyslogSink(t, true)
	core := s.Build("default", zapcore.InfoLevel)
	if err := core.Write(zapcore.Entry{
		Level:      zapcore.WarnLevel,
		LoggerName: "app_a",
		Message:    "low disk",
	}, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := fake.messages[0]; got != "[warn] [app_a] low disk" {
		t.Fatalf("formatted message = %q", got)
	}
}

func TestSyslogCoreLevelGate(t *testing.T) {
	s, fake := newFakeSyslogSink(t, false)
	core := s.Build("default", zapcore.WarnLevel)
	ce := core.Check(zapcore.Entry{Level: zapcore.InfoLevel, Message: "m"}, nil)
	if ce != nil {
		ce.Write()
	}
	if len(fake.messages) != 0 {
		t.Fatalf("info entry should be gated below warn")
	}
}
