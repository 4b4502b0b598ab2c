package content

import (
	"context"

	"shopfront/internal/api"
	"shopfront/internal/logger"

	"go.uber.org/zap"
)

// Service maps the backend content resource. Every getter degrades to
// hardcoded defaults on failure; banners degrade to none.
type Service interface {
	Homepage(ctx context.Context) (*Homepage, error)
	About(ctx context.Context) (*About, error)
	Features(ctx context.Context) ([]Feature, error)
	Testimonials(ctx context.Context) ([]Testimonial, error)
	FAQs(ctx context.Context) ([]FAQItem, error)
	Banners(ctx context.Context) ([]Banner, error)
}

type service struct {
	client *api.Client
}

func NewService(client *api.Client) Service {
	return &service{client: client}
}

func (s *service) Homepage(ctx context.Context) (*Homepage, error) {
	var page Homepage
	if err := s.client.Get(ctx, "/api/content/homepage", &page); err != nil {
		logger.FromCtx(ctx).Warn("homepage content fetch failed, serving defaults", zap.Error(err))
		return defaultHomepage(), nil
	}
	return &page, nil
}

func (s *service) About(ctx context.Context) (*About, error) {
	var about About
	if err := s.client.Get(ctx, "/api/content/about", &about); err != nil {
		logger.FromCtx(ctx).Warn("about content fetch failed, serving defaults", zap.Error(err))
		return defaultAbout(), nil
	}
	return &about, nil
}

func (s *service) Features(ctx context.Context) ([]Feature, error) {
	var features []Feature
	if err := s.client.Get(ctx, "/api/content/features", &features); err != nil {
		logger.FromCtx(ctx).Warn("features fetch failed, serving defaults", zap.Error(err))
		return defaultFeatures(), nil
	}
	return features, nil
}

func (s *service) Testimonials(ctx context.Context) ([]Testimonial, error) {
	var testimonials []Testimonial
	if err := s.client.Get(ctx, "/api/content/testimonials", &testimonials); err != nil {
		logger.FromCtx(ctx).Warn("testimonials fetch failed, serving defaults", zap.Error(err))
		return defaultTestimonials(), nil
	}
	return testimonials, nil
}

func (s *service) FAQs(ctx context.Context) ([]FAQItem, error) {
	var faqs []FAQItem
	if err := s.client.Get(ctx, "/api/content/faq", &faqs); err != nil {
		logger.FromCtx(ctx).Warn("faq fetch failed, serving defaults", zap.Error(err))
		return defaultFAQs(), nil
	}
	return faqs, nil
}

// Banners returns only active banners. There is no default banner; a
// failed fetch simply renders none.
func (s *service) Banners(ctx context.Context) ([]Banner, error) {
	var banners []Banner
	if err := s.client.Get(ctx, "/api/content/banners", &banners); err != nil {
		logger.FromCtx(ctx).Warn("banners fetch failed", zap.Error(err))
		return nil, nil
	}

	active := banners[:0]
	for _, b := range banners {
		if b.Active {
			active = append(active, b)
		}
	}
	return active, nil
}
