package cart

import (
	"context"
	"errors"
	"fmt"

	"shopfront/internal/api"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrEmptyCode       = errors.New("discount code is empty")
)

// Service maps the backend cart resource. Every mutation is followed by a
// full reload of the cart; there is no local merge.
type Service interface {
	GetCart(ctx context.Context) (*Cart, error)
	AddItem(ctx context.Context, productID string, quantity int) (*Cart, error)
	UpdateItem(ctx context.Context, itemID string, quantity int) (*Cart, error)
	RemoveItem(ctx context.Context, itemID string) (*Cart, error)
	Clear(ctx context.Context) error
	ApplyDiscount(ctx context.Context, code string) (*Cart, error)
	RemoveDiscount(ctx context.Context) (*Cart, error)
}

type service struct {
	client *api.Client
}

func NewService(client *api.Client) Service {
	return &service{client: client}
}

func (s *service) GetCart(ctx context.Context) (*Cart, error) {
	var row cartRow
	if err := s.client.Get(ctx, "/api/cart", &row); err != nil {
		return nil, err
	}
	return mapCart(&row), nil
}

func (s *service) AddItem(ctx context.Context, productID string, quantity int) (*Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	body := map[string]any{"productId": productID, "quantity": quantity}
	if err := s.client.Post(ctx, "/api/cart/items", body, nil); err != nil {
		return nil, err
	}
	return s.GetCart(ctx)
}

func (s *service) UpdateItem(ctx context.Context, itemID string, quantity int) (*Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	body := map[string]any{"quantity": quantity}
	if err := s.client.Put(ctx, "/api/cart/items/"+itemID, body, nil); err != nil {
		return nil, err
	}
	return s.GetCart(ctx)
}

func (s *service) RemoveItem(ctx context.Context, itemID string) (*Cart, error) {
	if err := s.client.Delete(ctx, "/api/cart/items/"+itemID, nil); err != nil {
		return nil, err
	}
	return s.GetCart(ctx)
}

func (s *service) Clear(ctx context.Context) error {
	return s.client.Delete(ctx, "/api/cart", nil)
}

func (s *service) ApplyDiscount(ctx context.Context, code string) (*Cart, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}

	body := map[string]string{"code": code}
	if err := s.client.Post(ctx, "/api/cart/discount", body, nil); err != nil {
		return nil, fmt.Errorf("apply discount %s: %w", code, err)
	}
	return s.GetCart(ctx)
}

func (s *service) RemoveDiscount(ctx context.Context) (*Cart, error) {
	if err := s.client.Delete(ctx, "/api/cart/discount", nil); err != nil {
		return nil, err
	}
	return s.GetCart(ctx)
}
