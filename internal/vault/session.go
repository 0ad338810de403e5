package vault

import (
	"sync"
	"time"

	"github.com/awnumar/memguard"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/google/uuid"
)

// Session is an unlocked view of the vault. It owns the derived key and any
// secrets currently revealed for display, both kept in guarded memory.
//
// A Session is safe for concurrent use. Lock destroys its contents; a locked
// or nil Session refuses every operation that needs the key.
type Session struct {
	id       string
	username string
	now      func() time.Time

	mu       sync.RWMutex
	key      *memguard.LockedBuffer
	revealed map[int]*revealedSecret
}

type revealedSecret struct {
	value *memguard.LockedBuffer // nil for an empty secret
	until time.Time
}

func (r *revealedSecret) destroy() {
	if r.value != nil {
		r.value.Destroy()
	}
}

// newSession moves key into guarded memory; the caller's slice is wiped.
func newSession(username string, key []byte, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	buf := memguard.NewBufferFromBytes(key)
	buf.Freeze()
	return &Session{
		id:       uuid.NewString(),
		username: username,
		now:      now,
		key:      buf,
		revealed: make(map[int]*revealedSecret),
	}
}

// ID identifies the session in logs.
func (s *Session) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

// Username is the user that unlocked the session.
func (s *Session) Username() string {
	if s == nil {
		return ""
	}
	return s.username
}

// Unlocked reports whether the session still holds a key.
func (s *Session) Unlocked() bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key != nil && s.key.IsAlive()
}

// Lock destroys the key and every revealed secret. It is idempotent.
func (s *Session) Lock() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key != nil {
		s.key.Destroy()
		s.key = nil
	}
	for i, r := range s.revealed {
		r.destroy()
		delete(s.revealed, i)
	}
}

// withKey runs fn with the key bytes. The slice must not be retained.
func (s *Session) withKey(fn func(key []byte) error) error {
	if s == nil {
		return common.ErrKeyUnavailable
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.key == nil || !s.key.IsAlive() {
		return common.ErrKeyUnavailable
	}
	return fn(s.key.Bytes())
}

func (s *Session) remember(index int, plaintext string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.revealed[index]; ok {
		old.destroy()
	}
	r := &revealedSecret{until: s.now().Add(ttl)}
	if plaintext != "" {
		r.value = memguard.NewBufferFromBytes([]byte(plaintext))
	}
	s.revealed[index] = r
}

// recall returns a revealed secret and its remaining display time.
// Expired values are destroyed.
func (s *Session) recall(index int) (string, time.Duration, bool) {
	if s == nil {
		return "", 0, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.revealed[index]
	if !ok {
		return "", 0, false
	}
	left := r.until.Sub(s.now())
	if left <= 0 {
		r.destroy()
		delete(s.revealed, index)
		return "", 0, false
	}
	if r.value == nil {
		return "", left, true
	}
	return string(r.value.Bytes()), left, true
}

func (s *Session) forget(index int) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := s.revealed[index]; ok {
		r.destroy()
		delete(s.revealed, index)
	}
}

func (s *Session) forgetAll() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.revealed {
		r.destroy()
		delete(s.revealed, i)
	}
}
