// Package settings persists the NeoLT dark-mode preference and derives the
// colour theme from it.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	settingsFileName = "settings.txt"

	darkOnLine  = "dark=true"
	darkOffLine = "dark=false"
)

// Store reads and writes settings.txt.
type Store struct {
	dir string
}

// NewStore returns a store rooted at the given configuration directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the location of settings.txt.
func (s *Store) Path() string {
	return filepath.Join(s.dir, settingsFileName)
}

// Load returns the saved dark-mode flag. A missing file means false.
func (s *Store) Load() (bool, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read settings file: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == darkOnLine {
			return true, nil
		}
	}
	return false, nil
}

// Save overwrites the settings file with a single dark=true|false line.
func (s *Store) Save(darkMode bool) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", s.dir, err)
	}

	line := darkOffLine
	if darkMode {
		line = darkOnLine
	}
	if err := os.WriteFile(s.Path(), []byte(line+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
