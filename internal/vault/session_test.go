package vault

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_WipesSourceKey(t *testing.T) {
	key := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	s := newSession("alice", key, nil)
	defer s.Lock()

	assert.Equal(t, make([]byte, 8), key)

	err := s.withKey(func(k []byte) error {
		assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, k)
		return nil
	})
	require.NoError(t, err)
}

func TestSession_LockIsFinal(t *testing.T) {
	s := newSession("alice", []byte("0123456789abcdef0123456789abcdef"), nil)
	require.True(t, s.Unlocked())

	s.remember(0, "hunter2", time.Minute)
	s.Lock()
	s.Lock()

	assert.False(t, s.Unlocked())
	err := s.withKey(func([]byte) error { return nil })
	assert.ErrorIs(t, err, common.ErrKeyUnavailable)
	_, _, ok := s.recall(0)
	assert.False(t, ok)
}

func TestSession_Nil(t *testing.T) {
	var s *Session
	assert.False(t, s.Unlocked())
	assert.Empty(t, s.ID())
	assert.Empty(t, s.Username())
	assert.ErrorIs(t, s.withKey(func([]byte) error { return nil }), common.ErrKeyUnavailable)
	s.Lock()
	s.forget(1)
	s.forgetAll()
}

func TestSession_RememberEmptySecret(t *testing.T) {
	s := newSession("alice", []byte("0123456789abcdef0123456789abcdef"), nil)
	defer s.Lock()

	s.remember(3, "", time.Minute)
	v, _, ok := s.recall(3)
	assert.True(t, ok)
	assert.Empty(t, v)
}
