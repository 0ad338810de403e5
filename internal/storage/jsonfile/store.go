// Package jsonfile stores the vault document as a single JSON file.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/gophvault/internal/filex"
	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/dmitrijs2005/gophvault/internal/vault"
)

// FileMode is the permission of the vault file.
const FileMode os.FileMode = 0o600

// Store is a vault.Repository backed by one JSON file.
type Store struct {
	path string
	log  logging.Logger
}

var _ vault.Repository = (*Store)(nil)

// New returns a Store for path. The file is not touched until Load or Save.
func New(path string, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{path: path, log: log.With("path", path)}
}

// Path returns the file location.
func (s *Store) Path() string { return s.path }

// Load reads the document. A missing file yields an empty document; an
// unreadable or unparsable one also yields an empty document and a warning.
func (s *Store) Load(ctx context.Context) (*vault.Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Debug(ctx, "vault file not found, starting empty")
		} else {
			s.log.Warn(ctx, "vault file unreadable, starting empty", "error", err)
		}
		return vault.NewDocument(), nil
	}

	var doc vault.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.log.Warn(ctx, "vault file corrupt, starting empty", "error", err)
		return vault.NewDocument(), nil
	}
	return doc.Normalize(), nil
}

// Save writes the whole document atomically.
func (s *Store) Save(_ context.Context, doc *vault.Document) error {
	raw, err := json.MarshalIndent(doc.Clone(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode vault: %w", err)
	}
	if err := filex.EnsureParentDir(s.path); err != nil {
		return err
	}
	if err := filex.WriteFileAtomic(s.path, raw, FileMode); err != nil {
		return fmt.Errorf("write vault: %w", err)
	}
	return nil
}
