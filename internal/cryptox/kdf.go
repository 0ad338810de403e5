package cryptox

import (
	"encoding/base64"
	"fmt"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	// SaltSize is the length in bytes of both the login salt and the key salt.
	SaltSize = 16

	// KeySize is the length of the derived AES-256 key.
	KeySize = 32
)

// KDFParams describes an Argon2id parameter set. Stored vaults carry no
// parameters, so a set must never change once released; add a new one
// instead.
type KDFParams struct {
	Time    uint32 // iterations
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
}

// KDFv1 is the Argon2id (version 0x13) parameter set every vault is
// derived with: 19 MiB, 2 passes, 1 lane, 32-byte output.
var KDFv1 = KDFParams{
	Time:    2,
	Memory:  19 * 1024,
	Threads: 1,
	KeyLen:  KeySize,
}

// NewSalt returns SaltSize fresh random bytes encoded for storage.
func NewSalt() string {
	return EncodeText(common.RandomBytes(SaltSize))
}

// DecodeSalt parses a persisted salt. Anything that is not valid base64 of
// exactly SaltSize bytes is reported as corrupt data; the raw text is never
// substituted.
func DecodeSalt(field, salt string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return nil, common.Wrap(common.KindCorrupt, field, fmt.Errorf("decode salt: %w", err))
	}
	if len(b) != SaltSize {
		return nil, common.Wrap(common.KindCorrupt, field, fmt.Errorf("salt is %d bytes; want %d", len(b), SaltSize))
	}
	return b, nil
}

// DeriveKey turns the master password and the persisted key salt into the
// 32-byte encryption key using KDFv1. The result is deterministic for the
// same inputs.
func DeriveKey(password []byte, keySalt string) ([]byte, error) {
	salt, err := DecodeSalt("key_salt", keySalt)
	if err != nil {
		return nil, err
	}
	return DeriveKeyWithParams(password, salt, KDFv1), nil
}

// DeriveKeyWithParams runs Argon2id over raw salt bytes with explicit parameters.
func DeriveKeyWithParams(password, salt []byte, p KDFParams) []byte {
	return argon2.IDKey(password, salt, p.Time, p.Memory, p.Threads, p.KeyLen)
}
