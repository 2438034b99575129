// Package account persists NeoLT login credentials as plain
// "username:password" lines in the configuration directory.
package account

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultUsername and DefaultPassword form the record written on first run.
	DefaultUsername = "admin"
	DefaultPassword = "admin"

	// usersFileName is the name of the account file inside the configuration directory.
	usersFileName = "users.txt"
)

// Account is a single username/password record. Passwords are stored and
// compared verbatim.
type Account struct {
	Username string
	Password string
}

// Line returns the serialized form of the record (without newline).
func (a Account) Line() string {
	return a.Username + ":" + a.Password
}

// Store is the append-only account file.
type Store struct {
	dir string
}

// NewStore returns a store rooted at the given configuration directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the configuration directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the location of users.txt.
func (s *Store) Path() string {
	return filepath.Join(s.dir, usersFileName)
}

// EnsureInitialized creates the configuration directory and, when no account
// file exists yet, writes the default admin record. Safe to call on every launch.
func (s *Store) EnsureInitialized() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", s.dir, err)
	}

	f, err := os.OpenFile(s.Path(), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil
		}
		return fmt.Errorf("failed to create account file: %w", err)
	}
	defer f.Close()

	defaultAccount := Account{Username: DefaultUsername, Password: DefaultPassword}
	if _, err := f.WriteString(defaultAccount.Line() + "\n"); err != nil {
		return fmt.Errorf("failed to write default account: %w", err)
	}
	return nil
}

// Verify reports whether some line of the account file equals
// "username:password" once surrounding whitespace is trimmed. A missing file
// verifies nothing.
func (s *Store) Verify(username, password string) (bool, error) {
	want := Account{Username: username, Password: password}.Line()

	found := false
	err := s.scan(func(line string) bool {
		if strings.TrimSpace(line) == want {
			found = true
			return false
		}
		return true
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// Register appends a new record. Duplicates and empty values are accepted.
func (s *Store) Register(username, password string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", s.dir, err)
	}

	f, err := os.OpenFile(s.Path(), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open account file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(Account{Username: username, Password: password}.Line() + "\n"); err != nil {
		return fmt.Errorf("failed to append account: %w", err)
	}
	return nil
}

// HasOnlyDefaultAccount reports whether the account file holds nothing but
// the first-run admin record.
func (s *Store) HasOnlyDefaultAccount() (bool, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read account file: %w", err)
	}
	defaultLine := Account{Username: DefaultUsername, Password: DefaultPassword}.Line()
	return strings.TrimSpace(string(data)) == defaultLine, nil
}

// Accounts returns every record that has a colon separator, in file order.
// The line is split on its first colon.
func (s *Store) Accounts() ([]Account, error) {
	var accounts []Account
	err := s.scan(func(line string) bool {
		username, password, ok := strings.Cut(strings.TrimSpace(line), ":")
		if ok {
			accounts = append(accounts, Account{Username: username, Password: password})
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// scan calls fn for each line of the account file until fn returns false.
// A missing file is treated as empty.
func (s *Store) scan(fn func(line string) bool) error {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read account file: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		if !fn(line) {
			return nil
		}
	}
	return nil
}
