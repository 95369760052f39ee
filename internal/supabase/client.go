// Package supabase is a small client for the two Supabase services the blog
// talks to: GoTrue (auth/v1) and PostgREST (rest/v1).
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

type Config struct {
	URL        string
	ServiceKey string
	// PublicKey is used for auth calls. Defaults to ServiceKey.
	PublicKey string
	// JWTSecret signs short-lived user tokens for sign-out. Optional.
	JWTSecret string
	Timeout   time.Duration
	Client    *http.Client
}

type Client struct {
	baseURL    string
	serviceKey string
	publicKey  string
	jwtSecret  string
	http       *http.Client
}

func New(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	if baseURL == "" {
		return nil, errors.New("supabase url is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid supabase url: %w", err)
	}
	if cfg.ServiceKey == "" {
		return nil, errors.New("supabase service key is required")
	}

	publicKey := cfg.PublicKey
	if publicKey == "" {
		publicKey = cfg.ServiceKey
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    baseURL,
		serviceKey: cfg.ServiceKey,
		publicKey:  publicKey,
		jwtSecret:  cfg.JWTSecret,
		http:       hc,
	}, nil
}

// APIError is a non-2xx answer from Supabase.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("supabase %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("supabase %d: %s", e.Status, e.Message)
}

type request struct {
	method  string
	path    string
	query   url.Values
	apiKey  string
	bearer  string
	body    any
	headers map[string]string
}

func (c *Client) do(ctx context.Context, r request) ([]byte, error) {
	endpoint := c.baseURL + r.path
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	var reader io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	bearer := r.bearer
	if bearer == "" {
		bearer = r.apiKey
	}
	req.Header.Set("apikey", r.apiKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", r.method, r.path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeError(resp.StatusCode, body)
	}

	return body, nil
}

// decodeError understands both GoTrue ({msg, error_code} or
// {error, error_description}) and PostgREST ({code, message}) bodies.
func decodeError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}

	if !gjson.ValidBytes(body) {
		apiErr.Message = strings.TrimSpace(string(body))
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(status)
		}
		return apiErr
	}

	res := gjson.ParseBytes(body)
	for _, key := range []string{"msg", "error_description", "message", "error"} {
		if v := res.Get(key); v.Exists() && v.String() != "" {
			apiErr.Message = v.String()
			break
		}
	}
	for _, key := range []string{"error_code", "code"} {
		if v := res.Get(key); v.Exists() && v.String() != "" {
			apiErr.Code = v.String()
			break
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}

	return apiErr
}
