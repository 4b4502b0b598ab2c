package product

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
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

func failingBackend(t *testing.T) Service {
	t.Helper()
	return newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
}

func TestService_GetProducts(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/products", r.URL.Path)
			assert.Equal(t, "Hosting", r.URL.Query().Get("category"))
			assert.Equal(t, "2", r.URL.Query().Get("page"))

			w.Write([]byte(`[{"id": "p-1", "name": "Web Hosting Plus", "price": "79.99", "category": "Hosting", "stock": 75}]`))
		}))

		products, err := svc.GetProducts(context.Background(), Filter{Category: "Hosting", Page: 2})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, 79.99, products[0].Price.Float64())
	})

	t.Run("FallsBackToDefaults", func(t *testing.T) {
		products, err := failingBackend(t).GetProducts(context.Background(), Filter{})
		require.NoError(t, err)
		assert.Len(t, products, len(defaultProducts))
	})
}

func TestService_GetProduct(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/products/p-9", r.URL.Path)
			w.Write([]byte(`{"id": "p-9", "name": "Widget", "price": 5, "stock": 1}`))
		}))

		p, err := svc.GetProduct(context.Background(), "p-9")
		require.NoError(t, err)
		assert.Equal(t, "Widget", p.Name)
		assert.True(t, p.InStock())
	})

	t.Run("FallsBackToMatchingDefault", func(t *testing.T) {
		p, err := failingBackend(t).GetProduct(context.Background(), "3")
		require.NoError(t, err)
		assert.Equal(t, "Web Hosting Plus", p.Name)
	})

	t.Run("UnknownIDStillErrors", func(t *testing.T) {
		_, err := failingBackend(t).GetProduct(context.Background(), "does-not-exist")
		assert.Error(t, err)
	})
}

func TestService_Categories(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`["Books", "Games"]`))
		}))

		cats, err := svc.Categories(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Books", "Games"}, cats)
	})

	t.Run("FallsBackToDefaults", func(t *testing.T) {
		cats, err := failingBackend(t).Categories(context.Background())
		require.NoError(t, err)
		assert.Equal(t, defaultCategories, cats)
	})
}

func TestService_Search(t *testing.T) {
	t.Run("QueryEscaped", func(t *testing.T) {
		svc := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/products/search", r.URL.Path)
			assert.Equal(t, "ssl & domains", r.URL.Query().Get("q"))
			w.Write([]byte(`[]`))
		}))

		_, err := svc.Search(context.Background(), "ssl & domains")
		assert.NoError(t, err)
	})

	t.Run("FallbackFiltersDefaults", func(t *testing.T) {
		matches, err := failingBackend(t).Search(context.Background(), "hosting")
		require.NoError(t, err)
		require.NotEmpty(t, matches)
		for _, p := range matches {
			assert.True(t, containsFold(p.Name, "hosting") || containsFold(p.Description, "hosting"))
		}
	})
}

func TestService_Featured(t *testing.T) {
	t.Run("FallbackRespectsLimit", func(t *testing.T) {
		products, err := failingBackend(t).Featured(context.Background(), 3)
		require.NoError(t, err)
		assert.Len(t, products, 3)
	})

	t.Run("FallbackLimitClamped", func(t *testing.T) {
		products, err := failingBackend(t).Featured(context.Background(), 100)
		require.NoError(t, err)
		assert.Len(t, products, len(defaultProducts))
	})
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
