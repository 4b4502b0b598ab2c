package payment

import (
	"context"
	"errors"

	"shopfront/internal/api"
)

var ErrMissingOrderID = errors.New("order id is required")

type Method struct {
	ID        api.ID `json:"id"`
	Type      string `json:"type"`
	Brand     string `json:"brand,omitempty"`
	Last4     string `json:"last4,omitempty"`
	ExpiryMon int    `json:"expiryMonth,omitempty"`
	ExpiryYr  int    `json:"expiryYear,omitempty"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

type Intent struct {
	ID           api.ID     `json:"id"`
	OrderID      api.ID     `json:"orderId"`
	Amount       api.Amount `json:"amount"`
	Currency     string     `json:"currency"`
	Status       string     `json:"status"`
	ClientSecret string     `json:"clientSecret,omitempty"`
}

type Confirmation struct {
	Success bool           `json:"success"`
	Order   map[string]any `json:"order"`
}

// Service maps the backend payment resource. All money movement happens
// server-side; this layer only creates and confirms intents.
type Service interface {
	Methods(ctx context.Context) ([]*Method, error)
	CreateIntent(ctx context.Context, orderID string) (*Intent, error)
	Confirm(ctx context.Context, intentID, methodID string) (*Confirmation, error)
	AddMethod(ctx context.Context, method *Method) (*Method, error)
	RemoveMethod(ctx context.Context, id string) error
}

type service struct {
	client *api.Client
}

func NewService(client *api.Client) Service {
	return &service{client: client}
}

func (s *service) Methods(ctx context.Context) ([]*Method, error) {
	var methods []*Method
	if err := s.client.Get(ctx, "/api/payments/methods", &methods); err != nil {
		return nil, err
	}
	return methods, nil
}

func (s *service) CreateIntent(ctx context.Context, orderID string) (*Intent, error) {
	if orderID == "" {
		return nil, ErrMissingOrderID
	}

	var intent Intent
	body := map[string]string{"orderId": orderID}
	if err := s.client.Post(ctx, "/api/payments/intent", body, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

func (s *service) Confirm(ctx context.Context, intentID, methodID string) (*Confirmation, error) {
	var conf Confirmation
	body := map[string]string{
		"paymentIntentId": intentID,
		"paymentMethodId": methodID,
	}
	if err := s.client.Post(ctx, "/api/payments/confirm", body, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (s *service) AddMethod(ctx context.Context, method *Method) (*Method, error) {
	var created Method
	if err := s.client.Post(ctx, "/api/payments/methods", method, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *service) RemoveMethod(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/api/payments/methods/"+id, nil)
}
