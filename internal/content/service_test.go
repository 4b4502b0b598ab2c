package content

import (
	"context"
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

func failingBackend(t *testing.T) Service {
	t.Helper()
	return newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
}

func TestService_Homepage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/content/homepage", r.URL.Path)
			w.Write([]byte(`{"hero": {"title": "Big Sale", "ctaText": "Buy", "ctaLink": "/sale"}, "stats": [], "featuredProducts": []}`))
		}))

		page, err := svc.Homepage(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Big Sale", page.Hero.Title)
	})

	t.Run("FallsBackToDefaults", func(t *testing.T) {
		page, err := failingBackend(t).Homepage(context.Background())
		require.NoError(t, err)
		assert.NotEmpty(t, page.Hero.Title)
		assert.Len(t, page.Stats, 4)
	})
}

func TestService_FallbackGetters(t *testing.T) {
	svc := failingBackend(t)
	ctx := context.Background()

	about, err := svc.About(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, about.Mission)

	features, err := svc.Features(ctx)
	require.NoError(t, err)
	assert.Len(t, features, 3)

	testimonials, err := svc.Testimonials(ctx)
	require.NoError(t, err)
	assert.Len(t, testimonials, 2)

	faqs, err := svc.FAQs(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, faqs)
}

func TestService_Banners(t *testing.T) {
	t.Run("FiltersInactive", func(t *testing.T) {
		svc := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[
				{"id": 1, "title": "Sale", "type": "info", "active": true},
				{"id": 2, "title": "Old promo", "type": "info", "active": false}
			]`))
		}))

		banners, err := svc.Banners(context.Background())
		require.NoError(t, err)
		require.Len(t, banners, 1)
		assert.Equal(t, "Sale", banners[0].Title)
	})

	t.Run("FailureYieldsNone", func(t *testing.T) {
		banners, err := failingBackend(t).Banners(context.Background())
		require.NoError(t, err)
		assert.Empty(t, banners)
	})
}
