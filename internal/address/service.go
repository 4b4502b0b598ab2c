package address

import (
	"context"
	"errors"
	"fmt"

	"shopfront/internal/api"
)

var ErrIncomplete = errors.New("address is incomplete")

// Service maps the backend account address book.
type Service interface {
	List(ctx context.Context) ([]*Address, error)
	Get(ctx context.Context, id string) (*Address, error)

	Create(ctx context.Context, input Input) (*Address, error)
	Update(ctx context.Context, id string, input Input) (*Address, error)
	Delete(ctx context.Context, id string) error

	SetDefault(ctx context.Context, id string) (*Address, error)
}

type service struct {
	client *api.Client
}

func NewService(client *api.Client) Service {
	return &service{client: client}
}

func (s *service) List(ctx context.Context) ([]*Address, error) {
	var addresses []*Address
	if err := s.client.Get(ctx, "/api/account/addresses", &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (s *service) Get(ctx context.Context, id string) (*Address, error) {
	var a Address
	if err := s.client.Get(ctx, "/api/account/addresses/"+id, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func validate(input Input) error {
	for field, value := range map[string]string{
		"name":         input.Name,
		"addressLine1": input.AddressLine1,
		"city":         input.City,
		"postalCode":   input.PostalCode,
		"country":      input.Country,
	} {
		if value == "" {
			return fmt.Errorf("%w: %s is required", ErrIncomplete, field)
		}
	}
	return nil
}

func (s *service) Create(ctx context.Context, input Input) (*Address, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	var a Address
	if err := s.client.Post(ctx, "/api/account/addresses", input, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *service) Update(ctx context.Context, id string, input Input) (*Address, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	var a Address
	if err := s.client.Put(ctx, "/api/account/addresses/"+id, input, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/api/account/addresses/"+id, nil)
}

func (s *service) SetDefault(ctx context.Context, id string) (*Address, error) {
	var a Address
	if err := s.client.Patch(ctx, "/api/account/addresses/"+id+"/default", struct{}{}, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
