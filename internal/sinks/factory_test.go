package sinks

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/vsnam19/vsnlogger/pkg/codes"
)

func TestConsoleSink(t *testing.T) {
	before := LiveCount()
	s, c := NewConsole(true)
	if c != codes.OK {
		t.Fatalf("NewConsole: %v", c)
	}
	if s.Kind() != KindConsole || !s.Colored() {
		t.Fatalf("descriptor: kind=%v colored=%v", s.Kind(), s.Colored())
	}
	if LiveCount() != before+1 {
		t.Fatalf("live = %d, want %d", LiveCount(), before+1)
	}
	if err := s.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	if LiveCount() != before {
		t.Fatalf("live after release = %d, want %d", LiveCount(), before)
	}
	// Double release must not underflow.
	_ = s.Release()
	if LiveCount() != before {
		t.Fatalf("live after double release = %d", LiveCount())
	}
}

func TestFileSinkCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app", "deep", "app.log")
	s, c := NewFile(path, false, 0, 0)
	if c != codes.OK {
		t.Fatalf("NewFile: %v", c)
	}
	t.Cleanup(func() { s.Release() })

	core := s.Build("default", zapcore.InfoLevel)
	if err := core.Write(zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Message:    "hello",
		LoggerName: "app",
	}, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("log file is empty")
	}
}

func TestFileSinkDefaultsAndClamps(t *testing.T) {
	dir := t.TempDir()

	s, c := NewFile(filepath.Join(dir, "a.log"), true, 0, 0)
	if c != codes.OK {
		t.Fatalf("NewFile defaults: %v", c)
	}
	t.Cleanup(func() { s.Release() })
	if s.MaxSize() != DefaultMaxFileSize || s.MaxFiles() != DefaultMaxFiles {
		t.Fatalf("defaults = %d/%d", s.MaxSize(), s.MaxFiles())
	}

	s2, c := NewFile(filepath.Join(dir, "b.log"), true, MaxFileSize*4, MaxFiles*4)
	if c != codes.OK {
		t.Fatalf("NewFile clamp: %v", c)
	}
	t.Cleanup(func() { s2.Release() })
	if s2.MaxSize() != MaxFileSize || s2.MaxFiles() != MaxFiles {
		t.Fatalf("clamped = %d/%d", s2.MaxSize(), s2.MaxFiles())
	}

	if _, c := NewFile("", false, 0, 0); c != codes.InvalidParameter {
		t.Fatalf("empty path: %v", c)
	}
}

func TestAllocationCap(t *testing.T) {
	var held []*Sink
	t.Cleanup(func() {
		for _, s := range held {
			s.Release()
		}
	})
	for LiveCount() < MaxLive {
		s, c := NewNull()
		if c != codes.OK {
			t.Fatalf("NewNull at %d: %v", LiveCount(), c)
		}
		held = append(held, s)
	}
	if _, c := NewNull(); c != codes.ResourceUnavailable {
		t.Fatalf("past cap: %v, want RESOURCE_UNAVAILABLE", c)
	}
	if _, c := NewConsole(false); c != codes.ResourceUnavailable {
		t.Fatalf("console past cap: %v", c)
	}
	// Releasing one frees a slot again.
	held[0].Release()
	s, c := NewConsole(false)
	if c != codes.OK {
		t.Fatalf("after release: %v", c)
	}
	held[0] = s
}

func TestMultiSinkOrder(t *testing.T) {
	restore := dialSyslog
	dialSyslog = func(int, string) (syslogWriter, error) { return &fakeSyslog{}, nil }
	t.Cleanup(func() { dialSyslog = restore })

	path := filepath.Join(t.TempDir(), "x.log")
	out, c := NewMulti(true, path, true)
	if c != codes.OK {
		t.Fatalf("NewMulti: %v", c)
	}
	t.Cleanup(func() {
		for _, s := range out {
			s.Release()
		}
	})
	if len(out) != 3 {
		t.Fatalf("sinks = %d, want 3", len(out))
	}
	wantOrder := []Kind{KindConsole, KindFile, KindSyslog}
	for i, k := range wantOrder {
		if out[i].Kind() != k {
			t.Errorf("sink[%d] = %v, want %v", i, out[i].Kind(), k)
		}
	}
}

func TestMultiSinkFallback(t *testing.T) {
	out, c := NewMulti(false, "", false)
	if c != codes.OK {
		t.Fatalf("NewMulti: %v", c)
	}
	t.Cleanup(func() {
		for _, s := range out {
			s.Release()
		}
	})
	if len(out) != 1 || out[0].Kind() != KindConsole || !out[0].Colored() {
		t.Fatalf("fallback = %+v", out)
	}
}

func TestSyslogIdentRules(t *testing.T) {
	var gotIdent string
	restore := dialSyslog
	dialSyslog = func(_ int, ident string) (syslogWriter, error) {
		gotIdent = ident
		return &fakeSyslog{}, nil
	}
	t.Cleanup(func() { dialSyslog = restore })

	s, c := NewSyslog("", 0, 0, false)
	if c != codes.OK {
		t.Fatalf("NewSyslog: %v", c)
	}
	s.Release()
	if gotIdent != "vsnlogger" {
		t.Fatalf("default ident = %q", gotIdent)
	}

	long := "a-very-long-identifier-well-past-thirty-two-bytes"
	s, c = NewSyslog(long, 0, 0, false)
	if c != codes.OK {
		t.Fatalf("NewSyslog long: %v", c)
	}
	s.Release()
	if gotIdent != long[:32] {
		t.Fatalf("truncated ident = %q", gotIdent)
	}
}
