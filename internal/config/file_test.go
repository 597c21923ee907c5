package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vsnam19/vsnlogger/pkg/codes"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vsnlogger.conf")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	s := NewStore()
	path := writeConfig(t, "[app]\nlevel=debug\n")
	if c := s.LoadFromFile(path); c != codes.OK {
		t.Fatalf("load: %v", c)
	}
	if got := s.GetString("app", "level", "info"); got != "debug" {
		t.Fatalf("app.level = %q, want debug", got)
	}
	// "global" has no level key, so no fallback applies.
	if got := s.GetString("other", "level", "info"); got != "info" {
		t.Fatalf("other.level = %q, want info", got)
	}
}

func TestLoadFromFileComments(t *testing.T) {
	s := NewStore()
	path := writeConfig(t, strings.Join([]string{
		"# comment",
		"; also a comment",
		"",
		"  log_dir = /var/log  ",
		"[app_a]",
		"console_output = yes",
		"not a key value line",
	}, "\n"))
	if c := s.LoadFromFile(path); c != codes.OK {
		t.Fatalf("load: %v", c)
	}
	if got := s.GetString(GlobalSection, "log_dir", ""); got != "/var/log" {
		t.Fatalf("log_dir = %q, want /var/log (trimmed)", got)
	}
	if !s.GetBool("app_a", "console_output", false) {
		t.Fatalf("console_output should parse as true")
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	s := NewStore()
	if c := s.LoadFromFile(""); c != codes.InvalidParameter {
		t.Fatalf("empty path: %v", c)
	}
	if c := s.LoadFromFile(filepath.Join(t.TempDir(), "missing.conf")); c != codes.FileError {
		t.Fatalf("missing file: %v", c)
	}
}

func TestLoadFromFileSectionCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < MaxSections; i++ { // 31 fit beside global, the rest overflow
		fmt.Fprintf(&b, "[sect%02d]\nk=v\n", i)
	}
	s := NewStore()
	path := writeConfig(t, b.String())
	if c := s.LoadFromFile(path); c != codes.ResourceUnavailable {
		t.Fatalf("load past cap: %v, want RESOURCE_UNAVAILABLE", c)
	}
	// Prior state intact: the sections parsed before the cap remain.
	if got := s.SectionCount(); got != MaxSections {
		t.Fatalf("sections = %d, want %d", got, MaxSections)
	}
	if got := s.GetString("sect00", "k", ""); got != "v" {
		t.Fatalf("sect00.k = %q, want v", got)
	}
}

func TestLoadFromFileTruncates(t *testing.T) {
	longKey := strings.Repeat("k", MaxKeyLen+10)
	longValue := strings.Repeat("v", MaxValueLen+10)
	s := NewStore()
	path := writeConfig(t, longKey+"="+longValue+"\n")
	if c := s.LoadFromFile(path); c != codes.OK {
		t.Fatalf("load: %v", c)
	}
	got := s.GetString(GlobalSection, longKey[:MaxKeyLen], "")
	if len(got) != MaxValueLen {
		t.Fatalf("value length = %d, want %d", len(got), MaxValueLen)
	}
}
