package user

import (
	"context"
	"errors"
	"net/http"

	"blogapp/internal/supabase"
)

// SupabaseProvider delegates accounts to Supabase Auth.
type SupabaseProvider struct {
	client *supabase.Client
}

func NewSupabaseProvider(client *supabase.Client) *SupabaseProvider {
	return &SupabaseProvider{client: client}
}

func (p *SupabaseProvider) SignUp(ctx context.Context, email, password string) (*User, error) {
	au, err := p.client.SignUp(ctx, email, password)
	if err != nil {
		return nil, translate(err)
	}
	if au == nil {
		return nil, nil
	}
	return &User{ID: au.ID, Email: au.Email}, nil
}

func (p *SupabaseProvider) SignIn(ctx context.Context, email, password string) (*User, error) {
	au, err := p.client.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, translate(err)
	}
	return &User{ID: au.ID, Email: au.Email}, nil
}

func (p *SupabaseProvider) SignOut(ctx context.Context, userID string) error {
	return p.client.SignOut(ctx, userID)
}

// translate turns 4xx answers into ProviderError; anything else stays an
// unexpected failure.
func translate(err error) error {
	var apiErr *supabase.APIError
	if errors.As(err, &apiErr) && apiErr.Status >= http.StatusBadRequest && apiErr.Status < http.StatusInternalServerError {
		return &ProviderError{Message: apiErr.Message}
	}
	return err
}
