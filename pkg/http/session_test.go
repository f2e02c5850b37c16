package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreExpiry(t *testing.T) {
	store := NewSessionStore(time.Hour)

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	store.clock = func() time.Time { return now }

	session := store.Create(1, "admin")
	require.NotEmpty(t, session.Token)

	got, ok := store.Get(session.Token)
	require.True(t, ok)
	assert.Equal(t, "admin", got.Username)

	// Advance past the TTL; the token reads as unknown and is dropped.
	now = now.Add(time.Hour + time.Second)
	_, ok = store.Get(session.Token)
	assert.False(t, ok)

	now = now.Add(-2 * time.Hour)
	_, ok = store.Get(session.Token)
	assert.False(t, ok, "expired sessions are deleted, not resurrected")
}

func TestSessionStoreDelete(t *testing.T) {
	store := NewSessionStore(0)
	assert.Equal(t, int(DefaultSessionTTL/time.Second), store.TTLSeconds())

	session := store.Create(1, "admin")
	store.Delete(session.Token)

	_, ok := store.Get(session.Token)
	assert.False(t, ok)
}

func TestSessionStoreDistinctTokens(t *testing.T) {
	store := NewSessionStore(time.Hour)

	first := store.Create(1, "admin")
	second := store.Create(1, "admin")
	assert.NotEqual(t, first.Token, second.Token)
}
