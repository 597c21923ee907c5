package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/vsnam19/vsnlogger/pkg/codes"
)

// LoadFromFile parses an INI-style configuration file into the store.
// Blank lines and lines starting with '#' or ';' are skipped, "[name]"
// switches the current section, and "key=value" lines are trimmed and
// stored under the loader caps. Lines matching neither form are
// ignored. Entries already in the store are overwritten.
func (s *Store) LoadFromFile(path string) codes.Code {
	if path == "" {
		return codes.InvalidParameter
	}
	f, err := os.Open(path)
	if err != nil {
		return codes.FileError
	}
	defer f.Close()

	s.mu.Lock()
	defer s.mu.Unlock()

	current := GlobalSection
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			name := line[1 : len(line)-1]
			if c := s.openSection(name); c != codes.OK {
				return c
			}
			current = name
			continue
		}
		if eq := strings.Index(line, "="); eq >= 0 {
			key := strings.TrimSpace(line[:eq])
			value := strings.TrimSpace(line[eq+1:])
			if key == "" {
				continue
			}
			if c := s.store(current, key, value); c != codes.OK {
				return c
			}
		}
	}
	if sc.Err() != nil {
		return codes.FileError
	}
	return codes.OK
}
