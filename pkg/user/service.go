package user

import (
	"context"
	"fmt"
	"strings"
)

type ServiceInterface interface {
	Register(ctx context.Context, email, password string) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	Logout(ctx context.Context, userID string) error
}

type Service struct {
	Provider IdentityProvider
}

func NewService(provider IdentityProvider) *Service {
	return &Service{Provider: provider}
}

func (s *Service) Register(ctx context.Context, email, password string) (*User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	u, err := s.Provider.SignUp(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}
	return u, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	u, err := s.Provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	return u, nil
}

func (s *Service) Logout(ctx context.Context, userID string) error {
	if err := s.Provider.SignOut(ctx, userID); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}
