package wishlist

import (
	"context"
	"errors"

	"shopfront/internal/api"
)

var ErrMissingProductID = errors.New("product id is required")

// Service maps the backend wishlist resource; mutations reload the list.
type Service interface {
	GetWishlist(ctx context.Context) (*Wishlist, error)
	AddItem(ctx context.Context, productID string) (*Wishlist, error)
	RemoveItem(ctx context.Context, itemID string) (*Wishlist, error)
	Clear(ctx context.Context) error
	Contains(ctx context.Context, productID string) (bool, error)
}

type service struct {
	client *api.Client
}

func NewService(client *api.Client) Service {
	return &service{client: client}
}

func (s *service) GetWishlist(ctx context.Context) (*Wishlist, error) {
	var row wishlistRow
	if err := s.client.Get(ctx, "/api/wishlist", &row); err != nil {
		return nil, err
	}
	return mapWishlist(&row), nil
}

func (s *service) AddItem(ctx context.Context, productID string) (*Wishlist, error) {
	if productID == "" {
		return nil, ErrMissingProductID
	}

	body := map[string]string{"productId": productID}
	if err := s.client.Post(ctx, "/api/wishlist/items", body, nil); err != nil {
		return nil, err
	}
	return s.GetWishlist(ctx)
}

func (s *service) RemoveItem(ctx context.Context, itemID string) (*Wishlist, error) {
	if err := s.client.Delete(ctx, "/api/wishlist/items/"+itemID, nil); err != nil {
		return nil, err
	}
	return s.GetWishlist(ctx)
}

func (s *service) Clear(ctx context.Context) error {
	return s.client.Delete(ctx, "/api/wishlist", nil)
}

// Contains backs the product page's "Saved" state.
func (s *service) Contains(ctx context.Context, productID string) (bool, error) {
	w, err := s.GetWishlist(ctx)
	if err != nil {
		return false, err
	}
	return w.Contains(productID), nil
}
