package auth

import (
	"testing"
	"time"
)

func TestSessionStore_CreateAndLookup(t *testing.T) {
	store := NewSessionStore(time.Hour)

	sess := store.Create("alice")
	if sess.Token == "" {
		t.Fatal("Create() returned empty token")
	}
	if sess.Username != "alice" {
		t.Fatalf("Create() username = %q, want alice", sess.Username)
	}

	got, ok := store.Lookup(sess.Token)
	if !ok {
		t.Fatal("Lookup() should find a freshly created session")
	}
	if got.Username != "alice" {
		t.Errorf("Lookup() username = %q, want alice", got.Username)
	}

	if _, ok := store.Lookup("not-a-token"); ok {
		t.Error("Lookup() should miss an unknown token")
	}
}

func TestSessionStore_TokensAreUnique(t *testing.T) {
	store := NewSessionStore(time.Hour)

	a := store.Create("alice")
	b := store.Create("alice")
	if a.Token == b.Token {
		t.Error("two sessions for the same user must have distinct tokens")
	}
	if store.Len() != 2 {
		t.Errorf("Len() = %d, want 2", store.Len())
	}
}

func TestSessionStore_Destroy(t *testing.T) {
	store := NewSessionStore(time.Hour)

	sess := store.Create("alice")
	store.Destroy(sess.Token)

	if _, ok := store.Lookup(sess.Token); ok {
		t.Error("Lookup() should miss a destroyed session")
	}

	// Destroying twice is a no-op.
	store.Destroy(sess.Token)
}

func TestSessionStore_Expiry(t *testing.T) {
	store := NewSessionStore(-time.Second)

	sess := store.Create("alice")
	if _, ok := store.Lookup(sess.Token); ok {
		t.Error("Lookup() should miss an expired session")
	}

	// The expired entry is collected on lookup.
	if store.Len() != 0 {
		t.Errorf("Len() after expired lookup = %d, want 0", store.Len())
	}
}
