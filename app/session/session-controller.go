// Package session sequences the account and settings stores into the NeoLT
// login lifecycle: start, login, logout, user registration, theme changes and
// the powerwash reset.
package session

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Guerrilla-Interactive/neolt/app/account"
	"github.com/Guerrilla-Interactive/neolt/app/settings"
	"github.com/google/uuid"
)

var (
	// ErrAuthenticationFailed is returned for any rejected login; it does not
	// say whether the username or the password was wrong.
	ErrAuthenticationFailed = errors.New("incorrect username or password")
	ErrNotAuthenticated     = errors.New("not logged in")
	ErrTerminated           = errors.New("session controller terminated")
	ErrNotStarted           = errors.New("session controller not started")
)

// State of the controller.
type State int

const (
	StateNew State = iota
	StateUnauthenticated
	StateAuthenticated
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	case StateTerminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Session identifies an authenticated user for the lifetime of a login.
type Session struct {
	ID        string
	Username  string
	StartedAt time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithOpenRegistration allows AddUser while nobody is logged in.
func WithOpenRegistration(open bool) Option {
	return func(c *Controller) { c.openRegistration = open }
}

// WithClock overrides time.Now for session timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// Controller owns the login state machine. It is not safe for concurrent use;
// NeoLT drives it from the single UI update loop.
type Controller struct {
	accounts *account.Store
	settings *settings.Store

	openRegistration bool
	now              func() time.Time

	state   State
	session *Session
	theme   settings.Theme
}

// NewController wires the two stores. Call Start before anything else.
func NewController(accounts *account.Store, settingsStore *settings.Store, opts ...Option) *Controller {
	c := &Controller{
		accounts: accounts,
		settings: settingsStore,
		now:      time.Now,
		state:    StateNew,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start initializes the configuration directory and loads the settings once.
// The theme captured here is used for the whole run.
func (c *Controller) Start() error {
	switch c.state {
	case StateTerminated:
		return ErrTerminated
	case StateNew:
	default:
		return nil
	}

	if err := c.accounts.EnsureInitialized(); err != nil {
		return err
	}
	dark, err := c.settings.Load()
	if err != nil {
		return err
	}
	c.theme = settings.ThemeFor(dark)
	c.state = StateUnauthenticated
	log.Printf("session: started in %s (theme %s)", c.accounts.Dir(), c.theme.Name())
	return nil
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Session returns the active session, if any.
func (c *Controller) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// Theme returns the theme loaded at Start.
func (c *Controller) Theme() settings.Theme {
	return c.theme
}

// OpenRegistration reports whether users may be added from the login gate.
func (c *Controller) OpenRegistration() bool {
	return c.openRegistration
}

// Dir returns the configuration directory managed by the controller.
func (c *Controller) Dir() string {
	return c.accounts.Dir()
}

// Accounts exposes the account store for read-only tooling.
func (c *Controller) Accounts() *account.Store {
	return c.accounts
}

// Settings exposes the settings store for read-only tooling.
func (c *Controller) Settings() *settings.Store {
	return c.settings
}

// DefaultHint reports whether the login gate should show the default
// admin/admin credentials.
func (c *Controller) DefaultHint() (bool, error) {
	if err := c.checkRunning(); err != nil {
		return false, err
	}
	return c.accounts.HasOnlyDefaultAccount()
}

// Login verifies the credentials and opens a session. Any number of attempts
// is allowed.
func (c *Controller) Login(username, password string) (Session, error) {
	if err := c.checkRunning(); err != nil {
		return Session{}, err
	}

	ok, err := c.accounts.Verify(username, password)
	if err != nil {
		return Session{}, err
	}
	if !ok {
		log.Printf("session: login rejected")
		return Session{}, ErrAuthenticationFailed
	}

	c.session = &Session{
		ID:        uuid.New().String(),
		Username:  username,
		StartedAt: c.now(),
	}
	c.state = StateAuthenticated
	log.Printf("session: %s logged in (session %s)", username, c.session.ID)
	return *c.session, nil
}

// Logout closes the active session.
func (c *Controller) Logout() error {
	if err := c.checkRunning(); err != nil {
		return err
	}
	if c.state != StateAuthenticated {
		return ErrNotAuthenticated
	}
	log.Printf("session: %s logged out", c.session.Username)
	c.session = nil
	c.state = StateUnauthenticated
	return nil
}

// AddUser registers new credentials as given. Without open registration a
// logged-in user is required.
func (c *Controller) AddUser(username, password string) error {
	if err := c.checkRunning(); err != nil {
		return err
	}
	if c.state != StateAuthenticated && !c.openRegistration {
		return ErrNotAuthenticated
	}
	if err := c.accounts.Register(username, password); err != nil {
		return err
	}
	log.Printf("session: registered user %q", username)
	return nil
}

// SetDarkMode saves the preference. The running theme is left alone; the new
// colours apply after a restart.
func (c *Controller) SetDarkMode(dark bool) error {
	if err := c.checkRunning(); err != nil {
		return err
	}
	if c.state != StateAuthenticated {
		return ErrNotAuthenticated
	}
	return c.settings.Save(dark)
}

// Powerwash deletes the whole configuration directory when confirmed and
// terminates the controller. An unconfirmed call changes nothing.
func (c *Controller) Powerwash(confirmed bool) error {
	if err := c.checkRunning(); err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	dir := c.accounts.Dir()
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove config directory %s: %w", dir, err)
	}
	log.Printf("session: powerwash removed %s", dir)
	c.session = nil
	c.state = StateTerminated
	return nil
}

func (c *Controller) checkRunning() error {
	switch c.state {
	case StateNew:
		return ErrNotStarted
	case StateTerminated:
		return ErrTerminated
	}
	return nil
}
