package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"blogapp/pkg/claims"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/tidwall/gjson"
)

const signOutTokenTTL = time.Minute

// AuthUser is the part of a GoTrue user the blog keeps.
type AuthUser struct {
	ID    string
	Email string
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp registers a new account. A nil user with a nil error means the
// project requires email confirmation and no session was issued.
func (c *Client) SignUp(ctx context.Context, email, password string) (*AuthUser, error) {
	body, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/v1/signup",
		apiKey: c.publicKey,
		body:   credentials{Email: email, Password: password},
	})
	if err != nil {
		return nil, err
	}

	res := gjson.ParseBytes(body)
	if !res.Get("access_token").Exists() {
		return nil, nil
	}

	return userFrom(res.Get("user"))
}

func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*AuthUser, error) {
	body, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/v1/token",
		query:  url.Values{"grant_type": {"password"}},
		apiKey: c.publicKey,
		body:   credentials{Email: email, Password: password},
	})
	if err != nil {
		return nil, err
	}

	return userFrom(gjson.GetBytes(body, "user"))
}

// SignOut revokes every refresh token of the user. It needs a user token,
// which the blog never stores, so one is minted with the project JWT secret.
// Without a secret there is nothing to revoke remotely.
func (c *Client) SignOut(ctx context.Context, userID string) error {
	if c.jwtSecret == "" || userID == "" {
		return nil
	}

	token, err := c.userToken(userID)
	if err != nil {
		return err
	}

	_, err = c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/v1/logout",
		query:  url.Values{"scope": {"global"}},
		apiKey: c.publicKey,
		bearer: token,
	})
	return err
}

func (c *Client) userToken(userID string) (string, error) {
	now := time.Now().UTC()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims.Claims{
		Role: claims.RoleAuthenticated,
		StandardClaims: jwt.StandardClaims{
			Subject:   userID,
			Audience:  claims.RoleAuthenticated,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(signOutTokenTTL).Unix(),
		},
	})

	signed, err := tok.SignedString([]byte(c.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("sign user token: %w", err)
	}
	return signed, nil
}

func userFrom(u gjson.Result) (*AuthUser, error) {
	id := u.Get("id").String()
	if id == "" {
		return nil, errors.New("supabase response has no user id")
	}
	return &AuthUser{ID: id, Email: u.Get("email").String()}, nil
}
