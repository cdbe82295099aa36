package walker

import (
	"fmt"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// matcher decides which relative paths are left out of a walk.
type matcher struct {
	patterns []string
	ignore   *ignore.GitIgnore
}

func newMatcher(patterns []string, ignoreFile string) (*matcher, error) {
	m := &matcher{}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		// Match reports a malformed pattern even against an empty name.
		if _, err := filepath.Match(p, ""); err != nil {
			return nil, fmt.Errorf("exclude pattern %q: %w", p, err)
		}
		m.patterns = append(m.patterns, p)
	}
	if ignoreFile != "" {
		gi, err := ignore.CompileIgnoreFile(ignoreFile)
		if err != nil {
			return nil, fmt.Errorf("load ignore file: %w", err)
		}
		m.ignore = gi
	}
	return m, nil
}

// excluded matches rel against the glob patterns (full relative path and
// base name) and the ignore file. Directories are matched with a trailing
// slash so "dir/" ignore rules apply.
func (m *matcher) excluded(rel string, isDir bool) bool {
	norm := filepath.ToSlash(rel)
	for _, p := range m.patterns {
		if matched, _ := filepath.Match(p, norm); matched {
			return true
		}
		if matched, _ := filepath.Match(p, filepath.Base(norm)); matched {
			return true
		}
	}
	if m.ignore != nil {
		if isDir {
			norm += "/"
		}
		if m.ignore.MatchesPath(norm) {
			return true
		}
	}
	return false
}
