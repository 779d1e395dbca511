package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrogbot/phrogbot/internal/domain/entities"
)

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()
	key := entities.SessionKey{ChatID: 1, UserID: 2}

	session, err := store.Create(key, "@soggy")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, key, session.Key)
	assert.Equal(t, 1, store.Len())

	got, ok := store.Get(key)
	require.True(t, ok)
	assert.Same(t, session, got)

	store.Remove(key)
	_, ok = store.Get(key)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())

	// Removing again is a no-op.
	store.Remove(key)
}

func TestSessionStoreRejectsDuplicateKey(t *testing.T) {
	store := NewSessionStore()
	key := entities.SessionKey{ChatID: 1, UserID: 2}

	first, err := store.Create(key, "@soggy")
	require.NoError(t, err)

	_, err = store.Create(key, "@soggy")
	assert.ErrorIs(t, err, entities.ErrQuizAlreadyActive)

	got, ok := store.Get(key)
	require.True(t, ok)
	assert.Same(t, first, got, "the failed create must not replace the session")
}

func TestSessionStoreKeysAreIndependent(t *testing.T) {
	store := NewSessionStore()

	_, err := store.Create(entities.SessionKey{ChatID: 1, UserID: 2}, "@a")
	require.NoError(t, err)

	// Same user in another chat, same chat with another user.
	_, err = store.Create(entities.SessionKey{ChatID: 9, UserID: 2}, "@a")
	assert.NoError(t, err)
	_, err = store.Create(entities.SessionKey{ChatID: 1, UserID: 3}, "@b")
	assert.NoError(t, err)

	assert.Equal(t, 3, store.Len())
}
