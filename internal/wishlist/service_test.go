package wishlist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopfront/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixture(t *testing.T, handler http.Handler) Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewService(api.New(api.Config{BaseURL: srv.URL}))
}

func TestService_AddItem(t *testing.T) {
	t.Run("MutatesThenReloads", func(t *testing.T) {
		var calls []string
		svc := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, r.Method+" "+r.URL.Path)

			if r.Method == http.MethodPost {
				var body map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "p-1", body["productId"])
				w.Write([]byte(`{}`))
				return
			}
			w.Write([]byte(`{"id": "wl-1", "items": [{"id": "i-1", "product_id": "p-1", "name": "Widget", "price": "9.99"}]}`))
		}))

		w, err := svc.AddItem(context.Background(), "p-1")
		require.NoError(t, err)
		assert.Equal(t, 1, w.TotalItems)
		assert.Equal(t, []string{"POST /api/wishlist/items", "GET /api/wishlist"}, calls)
	})

	t.Run("MissingProductIDRejected", func(t *testing.T) {
		svc := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("no request expected")
		}))

		_, err := svc.AddItem(context.Background(), "")
		assert.ErrorIs(t, err, ErrMissingProductID)
	})
}

func TestService_Contains(t *testing.T) {
	svc := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "wl-1", "items": [{"id": "i-1", "product_id": "p-7", "name": "Widget", "price": 1}]}`))
	}))

	saved, err := svc.Contains(context.Background(), "p-7")
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = svc.Contains(context.Background(), "p-8")
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestService_RemoveItem(t *testing.T) {
	var calls []string
	svc := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		w.Write([]byte(`{"id": "wl-1", "items": []}`))
	}))

	w, err := svc.RemoveItem(context.Background(), "i-1")
	require.NoError(t, err)
	assert.Equal(t, 0, w.TotalItems)
	assert.Equal(t, []string{"DELETE /api/wishlist/items/i-1", "GET /api/wishlist"}, calls)
}
