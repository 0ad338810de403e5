// Package sqlite stores the vault document in a SQLite database.
//
// The document maps onto three tables: credential (at most one row),
// secrets (ordered by pos) and settings (key/value). Save rewrites all of
// them in one transaction.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/gophvault/internal/dbx"
	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/dmitrijs2005/gophvault/internal/vault"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

const settingDarkMode = "dark_mode"

// Store is a vault.Repository backed by SQLite.
type Store struct {
	db  *sql.DB
	log logging.Logger
}

var _ vault.Repository = (*Store)(nil)

// Open connects to dsn and applies migrations.
func Open(ctx context.Context, dsn string, log logging.Logger) (*Store, error) {
	if log == nil {
		log = logging.Nop()
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	// SQLite has a single writer
	db.SetMaxOpenConns(1)
	return &Store{db: db, log: log.With("backend", "sqlite")}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the document. Query or scan failures are logged and produce an
// empty document, the same way a corrupt JSON file does.
func (s *Store) Load(ctx context.Context) (*vault.Document, error) {
	doc, err := s.load(ctx, s.db)
	if err != nil {
		s.log.Warn(ctx, "vault database unreadable, starting empty", "error", err)
		return vault.NewDocument(), nil
	}
	return doc, nil
}

func (s *Store) load(ctx context.Context, q dbx.DBTX) (*vault.Document, error) {
	doc := vault.NewDocument()

	var c vault.Credential
	err := q.QueryRowContext(ctx,
		`SELECT username, login_hash, login_salt, key_salt FROM credential WHERE id = 1`,
	).Scan(&c.Username, &c.LoginHash, &c.LoginSalt, &c.KeySalt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("load credential: %w", err)
	default:
		doc.User = &c
	}

	rows, err := q.QueryContext(ctx, `SELECT name, account, ciphertext, nonce FROM secrets ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("load secrets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e vault.Entry
		if err := rows.Scan(&e.Name, &e.Account, &e.Ciphertext, &e.Nonce); err != nil {
			return nil, fmt.Errorf("scan secret: %w", err)
		}
		doc.Secrets = append(doc.Secrets, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate secrets: %w", err)
	}

	var v string
	err = q.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, settingDarkMode).Scan(&v)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("load settings: %w", err)
	default:
		dark, perr := strconv.ParseBool(v)
		if perr != nil {
			return nil, fmt.Errorf("parse %s: %w", settingDarkMode, perr)
		}
		doc.DarkMode = &dark
	}

	return doc, nil
}

// Save replaces the stored document.
func (s *Store) Save(ctx context.Context, doc *vault.Document) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, table := range []string{"credential", "secrets", "settings"} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		if u := doc.User; u != nil {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO credential (id, username, login_hash, login_salt, key_salt) VALUES (1, ?, ?, ?, ?)`,
				u.Username, u.LoginHash, u.LoginSalt, u.KeySalt)
			if err != nil {
				return fmt.Errorf("save credential: %w", err)
			}
		}

		for i, e := range doc.Secrets {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO secrets (pos, name, account, ciphertext, nonce) VALUES (?, ?, ?, ?, ?)`,
				i, e.Name, e.Account, e.Ciphertext, e.Nonce)
			if err != nil {
				return fmt.Errorf("save secret %d: %w", i, err)
			}
		}

		if doc.DarkMode != nil {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO settings (key, value) VALUES (?, ?)`,
				settingDarkMode, strconv.FormatBool(*doc.DarkMode))
			if err != nil {
				return fmt.Errorf("save settings: %w", err)
			}
		}
		return nil
	})
}
