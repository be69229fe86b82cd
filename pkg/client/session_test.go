package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// fakeToken builds an unsigned JWT-shaped token with the given claims.
func fakeToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatal(err)
	}
	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".sig"
}

func TestSession_ExpiredTokenIsAbsent(t *testing.T) {
	s := NewSession()
	s.SetToken("tok", time.Hour)
	if s.Token() != "tok" {
		t.Fatalf("live token missing")
	}

	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if s.Token() != "" {
		t.Fatalf("expired token should read as absent")
	}
	if s.Claims() != nil {
		t.Fatalf("expired token should have no claims")
	}
}

func TestSession_ClaimsDecoding(t *testing.T) {
	s := NewSession()
	s.SetToken(fakeToken(t, map[string]any{"sub": "u1", "role": "provider"}), time.Hour)

	claims := s.Claims()
	if claims == nil || claims.Subject != "u1" || claims.Role != "provider" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestSession_MalformedTokenNeverPanics(t *testing.T) {
	for _, tok := range []string{"", "a", "a.b", "a.!!!.c", "a." + base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".c"} {
		s := NewSession()
		s.SetToken(tok, time.Hour)
		if tok != "" && s.Claims() != nil {
			t.Fatalf("malformed token %q produced claims", tok)
		}
	}
}

func TestLogin_EmptyPasswordBlocksNetworkCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, Logger: zerolog.Nop()})
	err := c.Login(context.Background(), "alice@example.com", "")
	if !errors.Is(err, ErrEmptyCredentials) {
		t.Fatalf("expected ErrEmptyCredentials, got %v", err)
	}
	if called {
		t.Fatalf("network call made despite local validation failure")
	}
}

func TestLogin_StoresTokenWithHourExpiry(t *testing.T) {
	token := fakeToken(t, map[string]any{"sub": "u1", "role": "user"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"token": token})
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, Logger: zerolog.Nop()})
	if err := c.Login(context.Background(), "alice@example.com", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}

	if c.Session().Token() != token {
		t.Fatalf("token not stored")
	}

	// Still live just inside the hour, absent just past it.
	c.Session().now = func() time.Time { return time.Now().Add(59 * time.Minute) }
	if c.Session().Token() == "" {
		t.Fatalf("token expired too early")
	}
	c.Session().now = func() time.Time { return time.Now().Add(61 * time.Minute) }
	if c.Session().Token() != "" {
		t.Fatalf("token outlived its hour")
	}
}

func TestLogin_UnauthorizedSurfacesStatusCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, Logger: zerolog.Nop()})
	err := c.Login(context.Background(), "alice@example.com", "wrong")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Message != "invalid credentials" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
	if c.Session().Token() != "" {
		t.Fatalf("failed login stored a token")
	}
}

func TestLogout_ClearsCredential(t *testing.T) {
	c := New(Options{Logger: zerolog.Nop()})
	c.Session().SetToken("tok", time.Hour)
	c.Logout()
	if c.Session().Token() != "" {
		t.Fatalf("logout left a token behind")
	}
}
