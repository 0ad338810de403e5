package vault

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/logging"
)

// DefaultRevealTimeout is how long a revealed secret stays readable.
const DefaultRevealTimeout = 10 * time.Second

// Repository persists the vault document.
//
// Load returns an empty document (not an error) when nothing has been stored
// yet. Save replaces the stored document as a whole.
type Repository interface {
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc *Document) error
}

// State is the lifecycle state of the vault as seen by one session.
type State int

const (
	StateUninitialized State = iota
	StateLocked
	StateUnlocked
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLocked:
		return "locked"
	case StateUnlocked:
		return "unlocked"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Option configures a Keeper.
type Option func(*Keeper)

// WithRevealTimeout sets how long Reveal keeps a secret readable.
// Non-positive values are ignored.
func WithRevealTimeout(d time.Duration) Option {
	return func(k *Keeper) {
		if d > 0 {
			k.revealTimeout = d
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(k *Keeper) {
		if now != nil {
			k.now = now
		}
	}
}

// Keeper owns the in-memory document and writes every change through its
// Repository. Operations that need the encryption key take an explicit
// *Session; any number of sessions may exist at once.
type Keeper struct {
	repo Repository
	log  logging.Logger

	revealTimeout time.Duration
	now           func() time.Time

	mu  sync.RWMutex
	doc *Document
}

// NewKeeper returns a Keeper over repo holding an empty document.
// Call Load to read the persisted state.
func NewKeeper(repo Repository, log logging.Logger, opts ...Option) *Keeper {
	if log == nil {
		log = logging.Nop()
	}
	k := &Keeper{
		repo:          repo,
		log:           log,
		revealTimeout: DefaultRevealTimeout,
		now:           time.Now,
		doc:           NewDocument(),
	}
	for _, o := range opts {
		o(k)
	}
	return k
}

// Load reads the document from the repository. A read failure is logged and
// leaves the vault empty, so the application always starts.
func (k *Keeper) Load(ctx context.Context) {
	doc, err := k.repo.Load(ctx)
	if err != nil || doc == nil {
		k.log.Warn(ctx, "vault could not be loaded, starting empty", "error", common.LogDetail(err))
		doc = NewDocument()
	}

	k.mu.Lock()
	k.doc = doc.Normalize()
	k.mu.Unlock()

	k.log.Debug(ctx, "vault loaded", "user", doc.User != nil, "entries", len(doc.Secrets))
}

// Snapshot returns a deep copy of the current document.
func (k *Keeper) Snapshot() *Document {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.doc.Clone()
}

// State reports the vault state for s, which may be nil.
func (k *Keeper) State(s *Session) State {
	k.mu.RLock()
	hasUser := k.doc.User != nil
	k.mu.RUnlock()

	switch {
	case !hasUser:
		return StateUninitialized
	case s.Unlocked():
		return StateUnlocked
	default:
		return StateLocked
	}
}

// Username returns the registered user name, or "" before registration.
func (k *Keeper) Username() string {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.doc.User == nil {
		return ""
	}
	return k.doc.User.Username
}

// Register creates the single user and returns an unlocked session.
// It fails with a validation error if a user already exists.
func (k *Keeper) Register(ctx context.Context, username string, password, confirm []byte) (*Session, error) {
	if err := ValidateRegistration(username, password, confirm); err != nil {
		return nil, err
	}
	if k.Username() != "" {
		return nil, common.Validation("username", "a user is already registered")
	}

	cred, key, err := NewCredential(username, password)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	err = k.update(ctx, func(d *Document) error {
		if d.User != nil {
			return common.Validation("username", "a user is already registered")
		}
		d.User = cred
		return nil
	})
	if err != nil {
		return nil, err
	}

	s := newSession(cred.Username, key, k.now)
	k.log.Info(ctx, "user registered", "session", s.ID())
	return s, nil
}

// Login verifies the credentials and returns an unlocked session.
// Every mismatch, including a vault with no user, yields common.ErrAuth.
func (k *Keeper) Login(ctx context.Context, username string, password []byte) (*Session, error) {
	k.mu.RLock()
	var cred *Credential
	if k.doc.User != nil {
		c := *k.doc.User
		cred = &c
	}
	k.mu.RUnlock()

	if cred == nil {
		return nil, common.Wrap(common.KindAuth, "", errors.New("no user registered"))
	}

	key, err := cred.Authenticate(username, password)
	if err != nil {
		k.log.Warn(ctx, "login failed", "error", common.LogDetail(err))
		return nil, err
	}
	defer common.WipeByteArray(key)

	s := newSession(cred.Username, key, k.now)
	k.log.Info(ctx, "vault unlocked", "session", s.ID())
	return s, nil
}

// Logout locks s, destroying its key and revealed secrets.
func (k *Keeper) Logout(ctx context.Context, s *Session) {
	if s == nil {
		return
	}
	s.Lock()
	k.log.Info(ctx, "vault locked", "session", s.ID())
}

// update applies fn to a copy of the document, persists it and only then
// makes it current. On any error the in-memory document is unchanged.
func (k *Keeper) update(ctx context.Context, fn func(d *Document) error) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	next := k.doc.Clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := k.repo.Save(ctx, next); err != nil {
		k.log.Error(ctx, "vault save failed", "error", err)
		return fmt.Errorf("save vault: %w", err)
	}
	k.doc = next
	return nil
}
