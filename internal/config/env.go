package config

import (
	"os"
	"strings"

	"github.com/vsnam19/vsnlogger/pkg/codes"
)

// The environment scan is a fixed cross product, not an open-ended walk
// of the process environment.
var (
	envPrefixes = []string{"GLOBAL", "APP"}
	envOptions  = []string{"LOG_LEVEL", "FORMAT", "FILE_PATH", "MAX_SIZE"}
)

// LoadFromEnv overlays VSNLOG_<PREFIX>_<OPTION> environment variables
// onto the store. Matches are stored lower-cased: VSNLOG_APP_LOG_LEVEL
// lands in section "app" under key "log_level". Returns NotInitialized
// when no variable was set.
func (s *Store) LoadFromEnv() codes.Code {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, prefix := range envPrefixes {
		for _, option := range envOptions {
			v, ok := os.LookupEnv("VSNLOG_" + prefix + "_" + option)
			if !ok {
				continue
			}
			section := strings.ToLower(prefix)
			key := strings.ToLower(option)
			if c := s.openSection(section); c != codes.OK {
				return c
			}
			if c := s.store(section, key, v); c != codes.OK {
				return c
			}
			found = true
		}
	}
	if !found {
		return codes.NotInitialized
	}
	return codes.OK
}
