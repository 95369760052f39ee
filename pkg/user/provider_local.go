package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgAlreadyRegistered  = "User already registered"
	msgInvalidCredentials = "Invalid login credentials"
)

// LocalProvider keeps accounts in the blog's own MySQL database. Used when
// no hosted identity service is available.
type LocalProvider struct {
	Repo Repository
}

func NewLocalProvider(repo Repository) *LocalProvider {
	return &LocalProvider{Repo: repo}
}

func (p *LocalProvider) SignUp(ctx context.Context, email, password string) (*User, error) {
	email = strings.ToLower(email)

	exist, err := p.Repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("lookup account: %w", err)
	}
	if exist != nil {
		return nil, &ProviderError{Message: msgAlreadyRegistered}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password error: %w", err)
	}

	acc := &Account{
		User:         User{ID: uuid.NewString(), Email: email},
		PasswordHash: string(hashed),
	}
	if err := p.Repo.Create(ctx, acc); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	u := acc.User
	return &u, nil
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*User, error) {
	acc, err := p.Repo.FindByEmail(ctx, strings.ToLower(email))
	if errors.Is(err, ErrNotFound) {
		return nil, &ProviderError{Message: msgInvalidCredentials}
	}
	if err != nil {
		return nil, fmt.Errorf("lookup account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return nil, &ProviderError{Message: msgInvalidCredentials}
	}

	u := acc.User
	return &u, nil
}

// SignOut has nothing to revoke; local accounts hold no remote sessions.
func (p *LocalProvider) SignOut(context.Context, string) error {
	return nil
}
