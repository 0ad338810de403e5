package vault

import (
	"errors"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/cryptox"
)

// EncryptSecret encrypts a secret value under key and returns the
// text-encoded ciphertext and its fresh nonce.
func EncryptSecret(plaintext, key []byte) (ciphertext, nonce string, err error) {
	ct, n, err := cryptox.Encrypt(plaintext, key)
	if err != nil {
		return "", "", err
	}
	return cryptox.EncodeText(ct), cryptox.EncodeText(n), nil
}

// SealEntry builds a complete entry for name/account holding plaintext.
func SealEntry(name, account string, plaintext, key []byte) (Entry, error) {
	ct, nonce, err := EncryptSecret(plaintext, key)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Name: name, Account: account, Ciphertext: ct, Nonce: nonce}, nil
}

// DecryptSecret recovers the secret value of e. Malformed base64, a failed
// authentication check and invalid UTF-8 all produce the same KindDecrypt
// error.
func DecryptSecret(e Entry, key []byte) (string, error) {
	ct, err := cryptox.DecodeText(e.Ciphertext)
	if err != nil {
		return "", common.Wrap(common.KindDecrypt, "", err)
	}
	nonce, err := cryptox.DecodeText(e.Nonce)
	if err != nil {
		return "", common.Wrap(common.KindDecrypt, "", err)
	}

	pt, err := cryptox.Decrypt(ct, nonce, key)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pt)

	if !utf8.Valid(pt) {
		return "", common.Wrap(common.KindDecrypt, "", errors.New("plaintext is not valid UTF-8"))
	}
	return string(pt), nil
}
