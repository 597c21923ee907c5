package config

import (
	"strconv"
	"strings"
	"sync"

	"github.com/vsnam19/vsnlogger/pkg/codes"
)

// GlobalSection is the reserved fallback section. It exists from store
// construction and is consulted whenever a key is missing from the
// requested section.
const GlobalSection = "global"

// Storage bounds. The store is admission-controlled: once a cap is
// reached, writes are rejected or dropped rather than evicting.
const (
	MaxSections       = 32
	MaxEntriesPerSect = 64
	MaxKeyLen         = 64
	MaxValueLen       = 256
)

// Store is a bounded section/key/value configuration map. All methods
// are safe for concurrent use; a single lock serializes access.
type Store struct {
	mu   sync.Mutex
	data map[string]map[string]string
}

// NewStore returns an empty store containing only the global section.
func NewStore() *Store {
	return &Store{
		data: map[string]map[string]string{
			GlobalSection: {},
		},
	}
}

// Set stores value under (section, key). Unlike the bulk loaders, Set
// rejects over-length keys and values instead of truncating: loaders
// must make progress over foreign files, while Set callers control
// their inputs.
func (s *Store) Set(section, key, value string) codes.Code {
	if section == "" || key == "" {
		return codes.InvalidParameter
	}
	if len(key) > MaxKeyLen || len(value) > MaxValueLen {
		return codes.InvalidParameter
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sect, ok := s.data[section]
	if !ok {
		if len(s.data) >= MaxSections {
			return codes.ResourceUnavailable
		}
		sect = make(map[string]string)
		s.data[section] = sect
	}
	if _, exists := sect[key]; !exists && len(sect) >= MaxEntriesPerSect {
		return codes.ResourceUnavailable
	}
	sect[key] = value
	return codes.OK
}

// GetString looks up (section, key), falling back to the global section
// when the key is absent and section is not itself global. Returns def
// when the key resolves nowhere.
func (s *Store) GetString(section, key, def string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sect, ok := s.data[section]; ok {
		if v, ok := sect[key]; ok {
			return v
		}
	}
	if section != GlobalSection {
		if v, ok := s.data[GlobalSection][key]; ok {
			return v
		}
	}
	return def
}

// GetInt resolves like GetString and converts; conversion failure
// returns def.
func (s *Store) GetInt(section, key string, def int) int {
	v := s.GetString(section, key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// GetBool resolves like GetString. The true vocabulary is the
// case-insensitive set {"true", "yes", "1", "on"}; any other present
// value is false.
func (s *Store) GetBool(section, key string, def bool) bool {
	v := s.GetString(section, key, "")
	if v == "" {
		return def
	}
	switch strings.ToLower(v) {
	case "true", "yes", "1", "on":
		return true
	}
	return false
}

// SectionCount reports the number of distinct sections, including
// global.
func (s *Store) SectionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// store writes a loader-sourced entry under the caps: keys and values
// are truncated, a full section drops the entry silently, and a new
// section past the section cap is refused. Caller holds s.mu.
func (s *Store) store(section, key, value string) codes.Code {
	if len(key) > MaxKeyLen {
		key = key[:MaxKeyLen]
	}
	if len(value) > MaxValueLen {
		value = value[:MaxValueLen]
	}
	sect, ok := s.data[section]
	if !ok {
		if len(s.data) >= MaxSections {
			return codes.ResourceUnavailable
		}
		sect = make(map[string]string)
		s.data[section] = sect
	}
	if _, exists := sect[key]; !exists && len(sect) >= MaxEntriesPerSect {
		return codes.OK // full section: drop silently
	}
	sect[key] = value
	return codes.OK
}

// openSection switches the loader's current section, creating it when
// absent. Caller holds s.mu.
func (s *Store) openSection(name string) codes.Code {
	if _, ok := s.data[name]; ok {
		return codes.OK
	}
	if len(s.data) >= MaxSections {
		return codes.ResourceUnavailable
	}
	s.data[name] = make(map[string]string)
	return codes.OK
}
