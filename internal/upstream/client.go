// Package upstream is the HTTP client for the seller API. It owns the bearer
// credential handling: the token is read from the session store per request,
// and a 401 clears it and signals the composition root. The client itself
// never redirects or navigates.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/session"
)

var (
	// ErrUnauthenticated means the seller API rejected the credential.
	// The stored token is already cleared when this is returned.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrFetchFailed covers every other non-2xx answer.
	ErrFetchFailed = errors.New("fetch failed")
)

type Client struct {
	baseURL string
	tokens  session.TokenStore
	httpc   *http.Client

	onUnauthenticated func()
}

func New(baseURL string, tokens session.TokenStore, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		httpc: &http.Client{
			Timeout: timeout,
		},
	}
}

// WithUnauthenticatedHook registers a callback fired after a 401 cleared the
// stored credential. The composition root decides what to do with it.
func (c *Client) WithUnauthenticatedHook(fn func()) *Client {
	c.onUnauthenticated = fn
	return c
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

// GetJSON fetches path, strips the {"data": ...} transport envelope and
// decodes the body into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return errors.Wrap(err, "parse base url")
	}
	u.Path = path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return errors.Wrap(err, "new request")
	}
	req.Header.Set("Content-Type", "application/json")

	if c.tokens != nil {
		tok, ok, err := c.tokens.Token(ctx)
		if err != nil {
			return errors.Wrap(err, "read token")
		}
		if ok {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return errors.Wrap(err, "do request")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.tokens != nil {
			_ = c.tokens.Clear(ctx)
		}
		if c.onUnauthenticated != nil {
			c.onUnauthenticated()
		}
		return errors.Wrap(ErrUnauthenticated, "seller api 401")
	}
	if resp.StatusCode/100 != 2 {
		return errors.Wrap(ErrFetchFailed, fmt.Sprintf("seller api http %d", resp.StatusCode))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return errors.Wrap(err, "decode envelope")
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.Wrap(err, "decode data")
	}
	return nil
}
