package product

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"shopfront/internal/api"
	"shopfront/internal/logger"

	"go.uber.org/zap"
)

// Service maps the backend catalog resource. Reads never fail hard: on any
// backend error they fall back to the built-in default catalog so the
// storefront still renders.
type Service interface {
	GetProducts(ctx context.Context, filter Filter) ([]*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	Categories(ctx context.Context) ([]string, error)
	Search(ctx context.Context, query string) ([]*Product, error)
	Featured(ctx context.Context, limit int) ([]*Product, error)
}

type service struct {
	client *api.Client
}

func NewService(client *api.Client) Service {
	return &service{client: client}
}

func (s *service) GetProducts(ctx context.Context, filter Filter) ([]*Product, error) {
	params := url.Values{}
	if filter.Category != "" {
		params.Set("category", filter.Category)
	}
	if filter.Search != "" {
		params.Set("search", filter.Search)
	}
	if filter.Page > 0 {
		params.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		params.Set("limit", strconv.Itoa(filter.Limit))
	}

	path := "/api/products"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var products []*Product
	if err := s.client.Get(ctx, path, &products); err != nil {
		logger.FromCtx(ctx).Warn("catalog fetch failed, serving defaults", zap.Error(err))
		return defaultProducts, nil
	}
	return products, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	var p Product
	if err := s.client.Get(ctx, "/api/products/"+id, &p); err != nil {
		logger.FromCtx(ctx).Warn("product fetch failed, checking defaults",
			zap.String("product_id", id), zap.Error(err))
		for _, d := range defaultProducts {
			if d.ID.String() == id {
				return d, nil
			}
		}
		return nil, err
	}
	return &p, nil
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := s.client.Get(ctx, "/api/products/categories", &categories); err != nil {
		logger.FromCtx(ctx).Warn("categories fetch failed, serving defaults", zap.Error(err))
		return defaultCategories, nil
	}
	return categories, nil
}

func (s *service) Search(ctx context.Context, query string) ([]*Product, error) {
	var products []*Product
	path := "/api/products/search?q=" + url.QueryEscape(query)
	if err := s.client.Get(ctx, path, &products); err != nil {
		logger.FromCtx(ctx).Warn("search failed, filtering defaults", zap.Error(err))
		return searchDefaults(query), nil
	}
	return products, nil
}

func (s *service) Featured(ctx context.Context, limit int) ([]*Product, error) {
	if limit <= 0 {
		limit = 8
	}

	var products []*Product
	path := "/api/products/featured?limit=" + strconv.Itoa(limit)
	if err := s.client.Get(ctx, path, &products); err != nil {
		logger.FromCtx(ctx).Warn("featured fetch failed, serving defaults", zap.Error(err))
		if limit > len(defaultProducts) {
			limit = len(defaultProducts)
		}
		return defaultProducts[:limit], nil
	}
	return products, nil
}

func searchDefaults(query string) []*Product {
	q := strings.ToLower(query)
	var matches []*Product
	for _, p := range defaultProducts {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			matches = append(matches, p)
		}
	}
	return matches
}
