package user

import (
	"context"
	"errors"
)

var ErrMissingCredentials = errors.New("email and password are required")

// User is the identity kept in a browser session. It never carries a
// password or token.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// IdentityProvider is the external system that owns accounts.
type IdentityProvider interface {
	// SignUp returns a nil user and nil error when the account was created
	// but needs email confirmation before it can sign in.
	SignUp(ctx context.Context, email, password string) (*User, error)
	SignIn(ctx context.Context, email, password string) (*User, error)
	SignOut(ctx context.Context, userID string) error
}

// ProviderError is a refusal by the identity provider (bad credentials,
// duplicate account). Its message is safe to show to the user.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}
