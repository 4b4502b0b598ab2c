package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRevalidator struct {
	mock.Mock
}

func (m *MockRevalidator) CurrentUser(ctx context.Context) (*User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

type recordingNavigator struct {
	targets []string
}

func (n *recordingNavigator) Navigate(to string) {
	n.targets = append(n.targets, to)
}

// --- Helpers ---

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"exp":     expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

// --- Tests ---

func TestManager_Bootstrap(t *testing.T) {
	ctx := context.Background()

	t.Run("NoPersistedSession", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "session.json"))
		m := NewManager(store, new(MockRevalidator), nil)

		require.NoError(t, m.Bootstrap(ctx))

		assert.Equal(t, StateResolved, m.State())
		_, ok := m.Current()
		assert.False(t, ok)
	})

	t.Run("ValidSessionRevalidated", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "session.json"))
		stale := &User{ID: "u-1", Email: "old@example.com", Role: RoleCustomer}
		require.NoError(t, store.Save(signedToken(t, time.Now().Add(time.Hour)), stale))

		fresh := &User{ID: "u-1", Email: "new@example.com", Role: RoleCustomer}
		reval := new(MockRevalidator)
		reval.On("CurrentUser", ctx).Return(fresh, nil)

		m := NewManager(store, reval, nil)
		require.NoError(t, m.Bootstrap(ctx))

		user, ok := m.Current()
		require.True(t, ok)
		assert.Equal(t, "new@example.com", user.Email)
		reval.AssertExpectations(t)
	})

	t.Run("RevalidationFailureWipesStore", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "session.json"))
		require.NoError(t, store.Save(signedToken(t, time.Now().Add(time.Hour)), &User{ID: "u-1"}))

		reval := new(MockRevalidator)
		reval.On("CurrentUser", ctx).Return(nil, assert.AnError)

		m := NewManager(store, reval, nil)
		require.NoError(t, m.Bootstrap(ctx))

		_, ok := m.Current()
		assert.False(t, ok)
		assert.Empty(t, store.Token())
	})

	t.Run("ExpiredTokenSkipsRevalidation", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "session.json"))
		require.NoError(t, store.Save(signedToken(t, time.Now().Add(-time.Hour)), &User{ID: "u-1"}))

		reval := new(MockRevalidator)

		m := NewManager(store, reval, nil)
		require.NoError(t, m.Bootstrap(ctx))

		_, ok := m.Current()
		assert.False(t, ok)
		assert.Empty(t, store.Token())
		reval.AssertNotCalled(t, "CurrentUser", mock.Anything)
	})

	t.Run("MalformedTokenTreatedAsExpired", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "session.json"))
		require.NoError(t, store.Save("not-a-jwt", &User{ID: "u-1"}))

		m := NewManager(store, new(MockRevalidator), nil)
		require.NoError(t, m.Bootstrap(ctx))

		_, ok := m.Current()
		assert.False(t, ok)
	})
}

func TestManager_Expire(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, store.Save("tok", &User{ID: "u-1"}))

	nav := &recordingNavigator{}
	m := NewManager(store, new(MockRevalidator), nav)
	m.Establish("tok", &User{ID: "u-1"})

	m.Expire("/orders/17")

	_, ok := m.Current()
	assert.False(t, ok)
	assert.Empty(t, store.Token())
	assert.Equal(t, []string{"/auth/login?redirect=%2Forders%2F17"}, nav.targets)
}

func TestManager_Guards(t *testing.T) {
	newResolved := func(user *User, token string) *Manager {
		m := NewManager(NewStore(filepath.Join(t.TempDir(), "session.json")), nil, nil)
		if user != nil {
			m.Establish(token, user)
		} else {
			_ = m.resolveAnonymous()
		}
		return m
	}

	t.Run("AnonymousRedirectedToLogin", func(t *testing.T) {
		m := newResolved(nil, "")

		d := m.RequireAuth("/cart")
		assert.False(t, d.Allowed)
		assert.Equal(t, "/auth/login?redirect=%2Fcart", d.RedirectTo)

		d = m.RequireAdmin("/admin")
		assert.False(t, d.Allowed)
		assert.Equal(t, "/auth/login?redirect=%2Fadmin", d.RedirectTo)
	})

	t.Run("CustomerAllowedButNotAdmin", func(t *testing.T) {
		m := newResolved(&User{ID: "u-1", Role: RoleCustomer}, "tok")

		assert.True(t, m.RequireAuth("/cart").Allowed)

		d := m.RequireAdmin("/admin/users")
		assert.False(t, d.Allowed)
		assert.Equal(t, "/", d.RedirectTo)
	})

	t.Run("AdminAllowedEverywhere", func(t *testing.T) {
		m := newResolved(&User{ID: "u-2", Role: RoleAdmin}, "tok")

		assert.True(t, m.RequireAuth("/cart").Allowed)
		assert.True(t, m.RequireAdmin("/admin/users").Allowed)
	})
}
