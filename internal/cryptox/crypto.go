package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"

	"github.com/dmitrijs2005/gophvault/internal/common"
)

// NonceSize is the standard AES-GCM nonce length.
const NonceSize = 12

// EncodeText encodes binary data for the persisted file.
func EncodeText(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeText is the inverse of EncodeText.
func DecodeText(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("invalid key length %d; want %d", len(key), KeySize)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cannot create aes block cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cannot create gcm cipher: %w", err)
	}
	return gcm, nil
}

// Encrypt seals plaintext with AES-256-GCM under key.
//
// A new random 12-byte nonce is generated for every call; callers cannot
// supply one. The ciphertext includes the 16-byte authentication tag.
//
// Returns a KindEncryption error if the key is not 32 bytes.
func Encrypt(plaintext, key []byte) (ciphertext, nonce []byte, err error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, common.Wrap(common.KindEncryption, "key", err)
	}

	nonce = common.RandomBytes(gcm.NonceSize())
	ciphertext = gcm.Seal(nil, nonce, plaintext, nil)

	return ciphertext, nonce, nil
}

// Decrypt opens a ciphertext produced by Encrypt.
//
// Every failure (wrong key, wrong key length, malformed nonce, truncated or
// tampered ciphertext) yields the same KindDecrypt error. No partial
// plaintext is ever returned.
func Decrypt(ciphertext, nonce, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, common.Wrap(common.KindDecrypt, "", err)
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, common.Wrap(common.KindDecrypt, "", fmt.Errorf("nonce is %d bytes; want %d", len(nonce), gcm.NonceSize()))
	}
	if len(ciphertext) < gcm.Overhead() {
		return nil, common.Wrap(common.KindDecrypt, "", fmt.Errorf("ciphertext is truncated"))
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, common.Wrap(common.KindDecrypt, "", err)
	}
	return plaintext, nil
}
