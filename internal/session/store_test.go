package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestStore_SaveLoad(t *testing.T) {
	s := testStore(t)

	user := &User{ID: "u-1", Email: "jo@example.com", Role: RoleCustomer}
	require.NoError(t, s.Save("tok-abc", user))

	token, loaded := s.Load()
	assert.Equal(t, "tok-abc", token)
	require.NotNil(t, loaded)
	assert.Equal(t, "jo@example.com", loaded.Email)
	assert.Equal(t, RoleCustomer, loaded.Role)
}

func TestStore_Clear(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Save("tok-abc", &User{ID: "u-1"}))

	require.NoError(t, s.Clear())

	token, user := s.Load()
	assert.Empty(t, token)
	assert.Nil(t, user)

	// Clearing an already-empty store is fine.
	assert.NoError(t, s.Clear())
}

func TestStore_LoadMissingOrCorrupt(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		s := testStore(t)
		token, user := s.Load()
		assert.Empty(t, token)
		assert.Nil(t, user)
	})

	t.Run("CorruptFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		s := NewStore(path)
		token, user := s.Load()
		assert.Empty(t, token)
		assert.Nil(t, user)
	})
}

func TestStore_TokenSource(t *testing.T) {
	s := testStore(t)
	assert.Empty(t, s.Token())

	require.NoError(t, s.Save("tok-xyz", &User{ID: "u-1"}))
	assert.Equal(t, "tok-xyz", s.Token())
}
