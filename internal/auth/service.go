package auth

import (
	"context"
	"errors"

	"shopfront/internal/api"
	"shopfront/internal/logger"
	"shopfront/internal/session"

	"go.uber.org/zap"
)

var ErrMissingCredentials = errors.New("email and password are required")

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// authPayload is the backend's login/register response.
type authPayload struct {
	User  *session.User `json:"user"`
	Token string        `json:"token"`
}

// Service maps the backend auth resource. Login and Register persist the
// returned session; Logout wipes it before telling the backend.
type Service interface {
	Login(ctx context.Context, creds Credentials) (*session.User, error)
	Register(ctx context.Context, input RegisterInput) (*session.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*session.User, error)
	RefreshToken(ctx context.Context) (string, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type service struct {
	client *api.Client
	store  *session.Store
}

func NewService(client *api.Client, store *session.Store) Service {
	return &service{client: client, store: store}
}

func (s *service) Login(ctx context.Context, creds Credentials) (*session.User, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, ErrMissingCredentials
	}

	var payload authPayload
	if err := s.client.Post(ctx, "/api/auth/login", creds, &payload); err != nil {
		return nil, err
	}

	if payload.Token != "" {
		if err := s.store.Save(payload.Token, payload.User); err != nil {
			return nil, err
		}
	}

	logger.FromCtx(ctx).Info("user logged in", zap.String("email", creds.Email))
	return payload.User, nil
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*session.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, ErrMissingCredentials
	}

	var payload authPayload
	if err := s.client.Post(ctx, "/api/auth/register", input, &payload); err != nil {
		return nil, err
	}

	if payload.Token != "" {
		if err := s.store.Save(payload.Token, payload.User); err != nil {
			return nil, err
		}
	}
	return payload.User, nil
}

// Logout clears local credentials first so the visitor is signed out even
// when the backend call fails.
func (s *service) Logout(ctx context.Context) error {
	if err := s.store.Clear(); err != nil {
		return err
	}
	return s.client.Post(ctx, "/api/auth/logout", nil, nil)
}

func (s *service) CurrentUser(ctx context.Context) (*session.User, error) {
	var user session.User
	if err := s.client.Get(ctx, "/api/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// RefreshToken exchanges the current token for a fresh one and persists it
// alongside the already-stored user.
func (s *service) RefreshToken(ctx context.Context) (string, error) {
	var payload struct {
		Token string `json:"token"`
	}
	if err := s.client.Post(ctx, "/api/auth/refresh", nil, &payload); err != nil {
		return "", err
	}

	if payload.Token != "" {
		_, user := s.store.Load()
		if err := s.store.Save(payload.Token, user); err != nil {
			return "", err
		}
	}
	return payload.Token, nil
}

func (s *service) RequestPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return s.client.Post(ctx, "/api/auth/forgot-password", body, nil)
}

func (s *service) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "newPassword": newPassword}
	return s.client.Post(ctx, "/api/auth/reset-password", body, nil)
}
