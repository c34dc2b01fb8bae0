package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionStoreCreateAndGet(t *testing.T) {
	store := NewSessionStore(time.Hour)

	sess, err := store.Create()
	assert.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Zero(t, sess.UserID, "new sessions start anonymous")
	assert.Zero(t, sess.Visits)

	got, ok := store.Get(sess.ID)
	assert.True(t, ok)
	assert.Equal(t, sess.ID, got.ID)
}

func TestSessionStoreGetUnknownID(t *testing.T) {
	store := NewSessionStore(time.Hour)

	_, ok := store.Get("no-such-session")
	assert.False(t, ok)

	_, ok = store.Get("")
	assert.False(t, ok)
}

func TestSessionStoreSavePersistsState(t *testing.T) {
	store := NewSessionStore(time.Hour)

	sess, err := store.Create()
	assert.NoError(t, err)

	sess.UserID = 42
	sess.Visits = 3
	store.Save(sess)

	got, ok := store.Get(sess.ID)
	assert.True(t, ok)
	assert.Equal(t, uint(42), got.UserID)
	assert.Equal(t, 3, got.Visits)
}

func TestSessionStoreDelete(t *testing.T) {
	store := NewSessionStore(time.Hour)

	sess, err := store.Create()
	assert.NoError(t, err)

	store.Delete(sess.ID)
	_, ok := store.Get(sess.ID)
	assert.False(t, ok, "deleted sessions must not resolve")
}

func TestSessionStoreIDsAreUnique(t *testing.T) {
	store := NewSessionStore(time.Hour)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		sess, err := store.Create()
		assert.NoError(t, err)
		assert.False(t, seen[sess.ID], "session IDs must be unique")
		seen[sess.ID] = true
	}
}

func TestSessionStoreTTL(t *testing.T) {
	store := NewSessionStore(30 * time.Minute)
	assert.Equal(t, 30*time.Minute, store.TTL())
}
