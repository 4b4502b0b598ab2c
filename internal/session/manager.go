package session

import (
	"context"
	"net/url"
	"sync"
	"time"

	"shopfront/internal/logger"

	"go.uber.org/zap"
)

type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateResolved
)

// Revalidator fetches the current profile for a persisted token. The auth
// service satisfies this; the indirection keeps session free of a cycle.
type Revalidator interface {
	CurrentUser(ctx context.Context) (*User, error)
}

// Navigator receives forced navigations, e.g. the 401 login redirect. The
// CLI front end renders them; a test records them.
type Navigator interface {
	Navigate(to string)
}

// LoginRedirect builds the login route carrying route as return target.
func LoginRedirect(route string) string {
	return "/auth/login?redirect=" + url.QueryEscape(route)
}

// Manager owns the in-memory session mirror and its lifecycle
// (uninitialized -> loading -> resolved). It is constructed once at startup
// and passed to whatever needs it; there is no package-level singleton.
type Manager struct {
	store      *Store
	revalidate Revalidator
	nav        Navigator

	mu    sync.Mutex
	state State
	token string
	user  *User
}

func NewManager(store *Store, revalidate Revalidator, nav Navigator) *Manager {
	return &Manager{
		store:      store,
		revalidate: revalidate,
		nav:        nav,
		state:      StateUninitialized,
	}
}

// Bootstrap loads persisted credentials and revalidates them against the
// backend. Any failure wipes the store and resolves the session anonymous;
// Bootstrap itself only errors when the wipe does.
func (m *Manager) Bootstrap(ctx context.Context) error {
	m.mu.Lock()
	m.state = StateLoading
	m.mu.Unlock()

	token, user := m.store.Load()
	if token == "" || user == nil {
		return m.resolveAnonymous()
	}

	if tokenExpired(token, time.Now()) {
		logger.FromCtx(ctx).Info("persisted token expired, treating session as anonymous")
		return m.resolveAnonymous()
	}

	// Optimistically mirror the stored user while revalidating.
	m.mu.Lock()
	m.token = token
	m.user = user
	m.mu.Unlock()

	fresh, err := m.revalidate.CurrentUser(ctx)
	if err != nil {
		logger.FromCtx(ctx).Warn("session revalidation failed", zap.Error(err))
		return m.resolveAnonymous()
	}

	m.mu.Lock()
	m.user = fresh
	m.state = StateResolved
	m.mu.Unlock()
	return nil
}

func (m *Manager) resolveAnonymous() error {
	err := m.store.Clear()

	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.state = StateResolved
	m.mu.Unlock()
	return err
}

// Establish records a fresh login/register result.
func (m *Manager) Establish(token string, user *User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.user = user
	m.state = StateResolved
}

// Expire handles an upstream 401: wipe the store, drop the mirror and
// force navigation to the login route with route as return target.
func (m *Manager) Expire(route string) {
	if err := m.resolveAnonymous(); err != nil {
		logger.L().Warn("failed to clear session store", zap.Error(err))
	}
	if m.nav != nil {
		m.nav.Navigate(LoginRedirect(route))
	}
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Current returns the session user and whether the visitor is authenticated.
func (m *Manager) Current() (*User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user, m.user != nil && m.token != ""
}

// Decision is the outcome of a capability check for a protected view.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// RequireAuth gates a view on an authenticated session.
func (m *Manager) RequireAuth(route string) Decision {
	if _, ok := m.Current(); !ok {
		return Decision{RedirectTo: LoginRedirect(route)}
	}
	return Decision{Allowed: true}
}

// RequireAdmin gates a view on an authenticated admin session. A signed-in
// non-admin is sent home rather than to login.
func (m *Manager) RequireAdmin(route string) Decision {
	user, ok := m.Current()
	if !ok {
		return Decision{RedirectTo: LoginRedirect(route)}
	}
	if !user.IsAdmin() {
		return Decision{RedirectTo: "/"}
	}
	return Decision{Allowed: true}
}
