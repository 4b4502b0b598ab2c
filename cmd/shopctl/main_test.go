package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"shopfront/internal/config"
	"shopfront/internal/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func newTestApp(t *testing.T, handler http.Handler) (*app, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	cfg := &config.Config{
		APIBaseURL:  srv.URL,
		AppEnv:      "test",
		HTTPTimeout: 5 * time.Second,
		SessionFile: filepath.Join(t.TempDir(), "session.json"),
	}
	return newApp(cfg, &out), &out
}

func TestRun_UnknownCommand(t *testing.T) {
	a, _ := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	err := a.run(context.Background(), []string{"frobnicate"})
	assert.ErrorContains(t, err, "unknown command")
}

func TestRun_NoArgsPrintsUsage(t *testing.T) {
	a, out := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	require.NoError(t, a.run(context.Background(), nil))
	assert.Contains(t, out.String(), "usage: shopctl")
}

func TestRun_GuardsBlockAnonymousCart(t *testing.T) {
	var apiCalls []string
	a, out := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiCalls = append(apiCalls, r.URL.Path)
		w.Write([]byte(`{}`))
	}))

	require.NoError(t, a.run(context.Background(), []string{"cart"}))
	assert.Contains(t, out.String(), "/auth/login?redirect=%2Fcart")
	assert.Empty(t, apiCalls)
}

func TestRun_WhoamiWithSavedSession(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/me", r.URL.Path)
		w.Write([]byte(`{"id": "u-1", "email": "jo@example.com", "firstName": "Jo", "lastName": "Soap", "role": "customer"}`))
	})

	a, out := newTestApp(t, handler)
	user := &session.User{ID: "u-1", Email: "jo@example.com", Role: session.RoleCustomer}
	require.NoError(t, a.store.Save(signedToken(t, time.Now().Add(time.Hour)), user))

	require.NoError(t, a.run(context.Background(), []string{"whoami"}))
	assert.Contains(t, out.String(), "jo@example.com")
}

func TestRun_HomeRendersConcurrentFetches(t *testing.T) {
	a, out := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/content/homepage":
			w.Write([]byte(`{"hero": {"title": "Big Sale", "subtitle": "Everything must go"}}`))
		case "/api/content/testimonials":
			w.Write([]byte(`[{"id": 1, "name": "Sam", "company": "Acme", "content": "Great store"}]`))
		case "/api/products/featured":
			w.Write([]byte(`[{"id": "p-1", "name": "Widget", "price": "9.99", "stock": 3}]`))
		default:
			w.Write([]byte(`[]`))
		}
	}))

	require.NoError(t, a.run(context.Background(), []string{"home"}))
	assert.Contains(t, out.String(), "Big Sale")
	assert.Contains(t, out.String(), "Great store")
	assert.Contains(t, out.String(), "Widget")
}

func TestRun_AdminRequiresAdminRole(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/me" {
			w.Write([]byte(`{"id": "u-1", "email": "jo@example.com", "role": "customer"}`))
			return
		}
		t.Errorf("unexpected call to %s", r.URL.Path)
	})

	a, out := newTestApp(t, handler)
	user := &session.User{ID: "u-1", Email: "jo@example.com", Role: session.RoleCustomer}
	require.NoError(t, a.store.Save(signedToken(t, time.Now().Add(time.Hour)), user))

	require.NoError(t, a.run(context.Background(), []string{"admin", "stats"}))
	assert.Contains(t, out.String(), "not allowed")
}
