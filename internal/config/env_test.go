package config

import (
	"testing"

	"github.com/vsnam19/vsnlogger/pkg/codes"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("VSNLOG_GLOBAL_LOG_LEVEL", "debug")
	t.Setenv("VSNLOG_APP_FORMAT", "json")
	s := NewStore()
	if c := s.LoadFromEnv(); c != codes.OK {
		t.Fatalf("LoadFromEnv: %v", c)
	}
	if got := s.GetString("global", "log_level", ""); got != "debug" {
		t.Fatalf("global.log_level = %q, want debug", got)
	}
	if got := s.GetString("app", "format", ""); got != "json" {
		t.Fatalf("app.format = %q, want json", got)
	}
}

func TestLoadFromEnvIgnoresUnknown(t *testing.T) {
	// Not part of the fixed prefix/option cross product.
	t.Setenv("VSNLOG_APP_UNRELATED", "x")
	t.Setenv("VSNLOG_OTHER_LOG_LEVEL", "debug")
	s := NewStore()
	if c := s.LoadFromEnv(); c != codes.NotInitialized {
		t.Fatalf("LoadFromEnv: %v, want NOT_INITIALIZED", c)
	}
	if got := s.GetString("app", "unrelated", ""); got != "" {
		t.Fatalf("unexpected stored value %q", got)
	}
}

func TestLoadFromEnvOverridesFile(t *testing.T) {
	t.Setenv("VSNLOG_GLOBAL_LOG_LEVEL", "error")
	s := NewStore()
	path := writeConfig(t, "log_level=info\n")
	if c := s.LoadFromFile(path); c != codes.OK {
		t.Fatalf("file: %v", c)
	}
	if c := s.LoadFromEnv(); c != codes.OK {
		t.Fatalf("env: %v", c)
	}
	if got := s.GetString("global", "log_level", ""); got != "error" {
		t.Fatalf("log_level = %q, want error (env wins)", got)
	}
}
