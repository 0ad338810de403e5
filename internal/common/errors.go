// Package common defines the error taxonomy and the low-level byte helpers
// shared by the crypto core, the vault store and the command line. Callers
// should branch on error kinds with errors.Is / errors.As rather than on text.
package common

import (
	"errors"
	"fmt"
)

// Kind classifies a failure. The set is closed: every error produced by the
// core carries exactly one of these kinds.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindValidation covers empty fields, confirmation mismatch and short passwords.
	KindValidation
	// KindAuth is a failed login. It never says which check failed.
	KindAuth
	// KindEncryption is a cipher initialization or sealing failure.
	KindEncryption
	// KindDecrypt covers tag failures, malformed ciphertext/nonce and invalid UTF-8.
	KindDecrypt
	// KindKeyUnavailable means an encrypt/decrypt was attempted while locked.
	KindKeyUnavailable
	// KindCorrupt marks persisted data that cannot be used as stored (e.g. a malformed salt).
	KindCorrupt
	// KindNotFound is returned for unknown entry names or out-of-range positions.
	KindNotFound
)

var kindNames = map[Kind]string{
	KindUnknown:        "unknown",
	KindValidation:     "validation",
	KindAuth:           "auth",
	KindEncryption:     "encryption",
	KindDecrypt:        "decrypt",
	KindKeyUnavailable: "key unavailable",
	KindCorrupt:        "corrupt",
	KindNotFound:       "not found",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// user-facing text for kinds whose details must stay internal
var kindMessages = map[Kind]string{
	KindValidation:     "invalid input",
	KindAuth:           "invalid username or password",
	KindEncryption:     "could not encrypt secret",
	KindDecrypt:        "secret unavailable",
	KindKeyUnavailable: "vault is locked",
	KindCorrupt:        "vault data is corrupted",
	KindNotFound:       "not found",
}

// Error is a classified failure.
//
// Message is shown to the user as is, so it must never contain library
// output or secret material. Err keeps the internal cause for logging.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

// Error returns the user-safe message only. The wrapped cause is omitted.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if m, ok := kindMessages[e.Kind]; ok {
		return m
	}
	return "unexpected error"
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind. A target with a
// non-empty Field only matches errors about that field.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Field == "" || t.Field == e.Field
}

// Detail renders the kind, field and internal cause for structured logs.
func (e *Error) Detail() string {
	s := e.Kind.String()
	if e.Field != "" {
		s += " [" + e.Field + "]"
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrValidation     = &Error{Kind: KindValidation}
	ErrAuth           = &Error{Kind: KindAuth}
	ErrEncryption     = &Error{Kind: KindEncryption}
	ErrDecrypt        = &Error{Kind: KindDecrypt}
	ErrKeyUnavailable = &Error{Kind: KindKeyUnavailable}
	ErrCorrupt        = &Error{Kind: KindCorrupt}
	ErrNotFound       = &Error{Kind: KindNotFound}
)

// Validation builds a validation error whose message is shown verbatim.
func Validation(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// Wrap classifies err under kind. The resulting message is the generic one
// for that kind; err is only reachable through Unwrap.
func Wrap(kind Kind, field string, err error) *Error {
	return &Error{Kind: kind, Field: field, Err: err}
}

// KindOf returns the kind of err, or KindUnknown for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// UserMessage converts any error into text that is safe to display.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return "unexpected error"
}

// LogDetail returns the most useful internal description of err for logs.
func LogDetail(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Detail()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
