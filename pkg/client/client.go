// Package client is a Go SDK for the SkillShare API. It mirrors what the
// web frontend needs: a thin authenticated HTTP wrapper, a session store,
// role resolution from token claims, the registration wizard flow, and a
// submission-confirmation state machine for forms.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

// APIError is a status-coded failure returned by the remote API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client wraps outbound requests to the SkillShare API. It attaches a
// bearer token when the session holds a live credential and logs failures.
// It adds no timeout of its own: cancellation belongs to the caller's
// context.
type Client struct {
	baseURL string
	http    *http.Client
	session *Session
	log     zerolog.Logger
}

// Options configures a Client.
type Options struct {
	// BaseURL is the API root, e.g. "https://api.skillshare.example".
	BaseURL string
	// HTTPClient overrides the transport. Defaults to http.DefaultClient.
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// New creates a Client with a fresh, empty session.
func New(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{
		baseURL: opts.BaseURL,
		http:    hc,
		session: NewSession(),
		log:     opts.Logger,
	}
}

// Session returns the client's session store.
func (c *Client) Session() *Session {
	return c.session
}

// do performs one JSON round trip. A non-2xx response decodes into an
// *APIError; when out is non-nil a 2xx body is decoded into it.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var envelope struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error != "" {
			apiErr.Message = envelope.Error
		}
		c.log.Debug().Int("status", resp.StatusCode).Str("path", path).Msg("api error")
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
