package vault

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/common"
)

// EntryView is the plaintext part of an entry, safe to list while locked.
type EntryView struct {
	Index   int
	Name    string
	Account string
}

// EntryStatus is an EntryView plus whether its secret can be decrypted with
// the session key.
type EntryStatus struct {
	EntryView
	Available bool
}

// EditRequest changes the secret of the entry called Name. Account replaces
// the stored account only when non-empty.
type EditRequest struct {
	Name    string
	Account string
	Secret  []byte
	Confirm []byte
}

func view(i int, e Entry) EntryView {
	return EntryView{Index: i, Name: e.Name, Account: e.Account}
}

// Add encrypts secret under the session key and appends a new entry.
func (k *Keeper) Add(ctx context.Context, s *Session, name, account string, secret []byte) (EntryView, error) {
	name = strings.TrimSpace(name)
	account = strings.TrimSpace(account)
	if name == "" || len(secret) == 0 {
		return EntryView{}, common.Validation("name", "service name and password are required")
	}

	var e Entry
	err := s.withKey(func(key []byte) error {
		var err error
		e, err = SealEntry(name, account, secret, key)
		return err
	})
	if err != nil {
		return EntryView{}, err
	}

	var idx int
	err = k.update(ctx, func(d *Document) error {
		d.Secrets = append(d.Secrets, e)
		idx = len(d.Secrets) - 1
		return nil
	})
	if err != nil {
		return EntryView{}, err
	}

	k.log.Info(ctx, "entry added", "session", s.ID(), "index", idx)
	return view(idx, e), nil
}

// Edit replaces the secret of the entry whose name matches req.Name
// case-insensitively. The first match wins.
func (k *Keeper) Edit(ctx context.Context, s *Session, req EditRequest) (EntryView, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(req.Secret) == 0 || len(req.Confirm) == 0 {
		return EntryView{}, common.Validation("name", "service name, new password and confirmation are required")
	}
	if string(req.Secret) != string(req.Confirm) {
		return EntryView{}, common.Validation("confirm", "passwords do not match")
	}

	idx := k.find(name)
	if idx < 0 {
		return EntryView{}, &common.Error{Kind: common.KindNotFound, Field: "name", Message: fmt.Sprintf("service %q not found", name)}
	}

	var ct, nonce string
	err := s.withKey(func(key []byte) error {
		var err error
		ct, nonce, err = EncryptSecret(req.Secret, key)
		return err
	})
	if err != nil {
		return EntryView{}, err
	}

	account := strings.TrimSpace(req.Account)
	var out Entry
	err = k.update(ctx, func(d *Document) error {
		// the list may have changed since find
		if idx >= len(d.Secrets) || !strings.EqualFold(d.Secrets[idx].Name, name) {
			idx = findIn(d.Secrets, name)
			if idx < 0 {
				return &common.Error{Kind: common.KindNotFound, Field: "name", Message: fmt.Sprintf("service %q not found", name)}
			}
		}
		e := &d.Secrets[idx]
		if account != "" {
			e.Account = account
		}
		e.Ciphertext = ct
		e.Nonce = nonce
		out = *e
		return nil
	})
	if err != nil {
		return EntryView{}, err
	}

	s.forget(idx)
	k.log.Info(ctx, "entry updated", "session", s.ID(), "index", idx)
	return view(idx, out), nil
}

// Delete removes the entry at index. The session must be unlocked.
func (k *Keeper) Delete(ctx context.Context, s *Session, index int) (EntryView, error) {
	if !s.Unlocked() {
		return EntryView{}, common.ErrKeyUnavailable
	}

	var removed Entry
	err := k.update(ctx, func(d *Document) error {
		if index < 0 || index >= len(d.Secrets) {
			return notFound(index)
		}
		removed = d.Secrets[index]
		d.Secrets = append(d.Secrets[:index], d.Secrets[index+1:]...)
		return nil
	})
	if err != nil {
		return EntryView{}, err
	}

	// positions shift after a delete
	s.forgetAll()
	k.log.Info(ctx, "entry deleted", "session", s.ID(), "index", index)
	return view(index, removed), nil
}

// Entries lists the plaintext metadata of every entry in stored order.
func (k *Keeper) Entries() []EntryView {
	k.mu.RLock()
	defer k.mu.RUnlock()

	out := make([]EntryView, 0, len(k.doc.Secrets))
	for i, e := range k.doc.Secrets {
		out = append(out, view(i, e))
	}
	return out
}

// Search returns entries whose name or account contains query, ignoring
// case. An empty query matches everything.
func (k *Keeper) Search(query string) []EntryView {
	q := strings.ToLower(strings.TrimSpace(query))

	k.mu.RLock()
	defer k.mu.RUnlock()

	out := []EntryView{}
	for i, e := range k.doc.Secrets {
		if strings.Contains(strings.ToLower(e.Name), q) || strings.Contains(strings.ToLower(e.Account), q) {
			out = append(out, view(i, e))
		}
	}
	return out
}

// Entry returns the metadata of the entry at index.
func (k *Keeper) Entry(index int) (EntryView, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if index < 0 || index >= len(k.doc.Secrets) {
		return EntryView{}, notFound(index)
	}
	return view(index, k.doc.Secrets[index]), nil
}

// Decrypt returns the secret of the entry at index. A failure only concerns
// that entry.
func (k *Keeper) Decrypt(s *Session, index int) (string, error) {
	k.mu.RLock()
	if index < 0 || index >= len(k.doc.Secrets) {
		k.mu.RUnlock()
		return "", notFound(index)
	}
	e := k.doc.Secrets[index]
	k.mu.RUnlock()

	var out string
	err := s.withKey(func(key []byte) error {
		var err error
		out, err = DecryptSecret(e, key)
		return err
	})
	return out, err
}

// Statuses probes every entry with the session key.
func (k *Keeper) Statuses(s *Session) ([]EntryStatus, error) {
	k.mu.RLock()
	secrets := append([]Entry(nil), k.doc.Secrets...)
	k.mu.RUnlock()

	out := make([]EntryStatus, 0, len(secrets))
	err := s.withKey(func(key []byte) error {
		for i, e := range secrets {
			_, derr := DecryptSecret(e, key)
			out = append(out, EntryStatus{EntryView: view(i, e), Available: derr == nil})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Reveal decrypts the entry at index and keeps it readable through Revealed
// for the reveal timeout.
func (k *Keeper) Reveal(ctx context.Context, s *Session, index int) (string, error) {
	plain, err := k.Decrypt(s, index)
	if err != nil {
		k.log.Warn(ctx, "reveal failed", "session", s.ID(), "index", index, "error", common.LogDetail(err))
		return "", err
	}
	s.remember(index, plain, k.revealTimeout)
	return plain, nil
}

// Revealed returns a previously revealed secret and how long it stays
// visible. ok is false once it expired or was hidden.
func (k *Keeper) Revealed(s *Session, index int) (value string, left time.Duration, ok bool) {
	if !s.Unlocked() {
		return "", 0, false
	}
	return s.recall(index)
}

// Hide drops a revealed secret before its timeout.
func (k *Keeper) Hide(s *Session, index int) {
	s.forget(index)
}

// DarkMode reports the display preference.
func (k *Keeper) DarkMode() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.doc.DarkModeEnabled()
}

// SetDarkMode persists the display preference.
func (k *Keeper) SetDarkMode(ctx context.Context, dark bool) error {
	return k.update(ctx, func(d *Document) error {
		d.DarkMode = &dark
		return nil
	})
}

// ToggleDarkMode flips the display preference and returns the new value.
func (k *Keeper) ToggleDarkMode(ctx context.Context) (bool, error) {
	var dark bool
	err := k.update(ctx, func(d *Document) error {
		dark = !d.DarkModeEnabled()
		d.DarkMode = &dark
		return nil
	})
	return dark, err
}

func (k *Keeper) find(name string) int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return findIn(k.doc.Secrets, name)
}

func findIn(secrets []Entry, name string) int {
	for i, e := range secrets {
		if strings.EqualFold(e.Name, name) {
			return i
		}
	}
	return -1
}

func notFound(index int) error {
	return &common.Error{Kind: common.KindNotFound, Field: "index", Message: fmt.Sprintf("no entry #%d", index+1)}
}
