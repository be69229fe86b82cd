package client

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyCredentials is returned by Login before any network call when
// either field is blank.
var ErrEmptyCredentials = errors.New("please fill in all fields")

// Claims is the decoded, unverified payload of a session token.
type Claims struct {
	Subject  string
	Role     string
	IssuedAt float64
	Expiry   float64
}

// Session holds the bearer credential with an explicit expiry. An expired
// credential is indistinguishable from an absent one: Token returns ""
// either way.
type Session struct {
	mu     sync.Mutex
	token  string
	expiry time.Time

	now func() time.Time // test hook
}

func NewSession() *Session {
	return &Session{now: time.Now}
}

// Token returns the stored token, or "" when none is stored or the stored
// one has expired.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" || !s.now().Before(s.expiry) {
		return ""
	}
	return s.token
}

// SetToken stores a credential valid for the given lifetime.
func (s *Session) SetToken(token string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.expiry = s.now().Add(ttl)
}

// Clear discards the stored credential. Purely local; the server keeps no
// session state to invalidate.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.expiry = time.Time{}
}

// Claims decodes the stored token's payload without verifying its
// signature. Returns nil for an absent, expired, or malformed token;
// never panics.
func (s *Session) Claims() *Claims {
	return decodeClaims(s.Token())
}

// decodeClaims parses a JWT payload without checking the signature.
// Verification is the server's job; the client only needs to read role
// and expiry hints.
func decodeClaims(token string) *Claims {
	if token == "" {
		return nil
	}
	raw := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, raw); err != nil {
		return nil
	}

	claims := &Claims{}
	claims.Subject, _ = raw["sub"].(string)
	claims.Role, _ = raw["role"].(string)
	claims.IssuedAt, _ = raw["iat"].(float64)
	claims.Expiry, _ = raw["exp"].(float64)
	return claims
}

const sessionTTL = time.Hour

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a token and stores it with a one hour
// expiry. Blank fields fail locally before any network call.
func (c *Client) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return ErrEmptyCredentials
	}

	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return err
	}

	c.session.SetToken(resp.Token, sessionTTL)
	return nil
}

// Logout clears the local credential.
func (c *Client) Logout() {
	c.session.Clear()
}

// Register submits a completed wizard draft.
func (c *Client) Register(ctx context.Context, draft Draft) error {
	return c.do(ctx, http.MethodPost, "/auth/register", draft, nil)
}
