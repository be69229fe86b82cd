package client

import (
	"testing"
	"time"
)

func TestRoleResolver_ClaimIsSourceOfTruth(t *testing.T) {
	s := NewSession()
	s.SetToken(fakeToken(t, map[string]any{"sub": "p1", "role": "provider"}), time.Hour)

	cache := &MemoryHintCache{}
	cache.Set("user") // stale hint must lose to the live claim

	r := NewRoleResolver(s, cache)
	if got := r.Role(); got != "provider" {
		t.Fatalf("expected provider, got %q", got)
	}

	// Reading through the claim refreshes the hint.
	if hint, ok := cache.Get(); !ok || hint != "provider" {
		t.Fatalf("hint not refreshed: %q %v", hint, ok)
	}
}

func TestRoleResolver_HintOnlyWithoutCredential(t *testing.T) {
	cache := &MemoryHintCache{}
	cache.Set("provider")

	r := NewRoleResolver(NewSession(), cache)
	if got := r.Role(); got != "provider" {
		t.Fatalf("expected cached hint, got %q", got)
	}
}

func TestRoleResolver_DefaultsToUser(t *testing.T) {
	r := NewRoleResolver(NewSession(), nil)
	if got := r.Role(); got != DefaultRole {
		t.Fatalf("expected %q, got %q", DefaultRole, got)
	}
}

func TestRoleResolver_UnrecognisedClaimFallsThrough(t *testing.T) {
	s := NewSession()
	s.SetToken(fakeToken(t, map[string]any{"sub": "x", "role": "admin"}), time.Hour)

	r := NewRoleResolver(s, nil)
	if got := r.Role(); got != DefaultRole {
		t.Fatalf("unrecognised role should default, got %q", got)
	}
}

func TestRoleResolver_ExpiredCredentialUsesHint(t *testing.T) {
	s := NewSession()
	s.SetToken(fakeToken(t, map[string]any{"role": "provider"}), time.Hour)
	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	cache := &MemoryHintCache{}
	cache.Set("provider")

	r := NewRoleResolver(s, cache)
	if got := r.Role(); got != "provider" {
		t.Fatalf("expected hint fallback, got %q", got)
	}
}
