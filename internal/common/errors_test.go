package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_IsMatchesByKind(t *testing.T) {
	err := Wrap(KindDecrypt, "ciphertext", errors.New("cipher: message authentication failed"))

	assert.ErrorIs(t, err, ErrDecrypt)
	assert.NotErrorIs(t, err, ErrAuth)
	assert.NotErrorIs(t, err, ErrEncryption)

	wrapped := fmt.Errorf("reveal entry 3: %w", err)
	assert.ErrorIs(t, wrapped, ErrDecrypt)
	assert.Equal(t, KindDecrypt, KindOf(wrapped))
}

func TestError_FieldSpecificTarget(t *testing.T) {
	err := Validation("password", "passwords do not match")

	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, &Error{Kind: KindValidation, Field: "password"})
	assert.NotErrorIs(t, err, &Error{Kind: KindValidation, Field: "username"})
}

func TestError_MessageHidesCause(t *testing.T) {
	cause := errors.New("crypto/aes: invalid key size 7")
	err := Wrap(KindEncryption, "", cause)

	assert.Equal(t, "could not encrypt secret", err.Error())
	assert.NotContains(t, err.Error(), "aes")
	assert.Contains(t, err.Detail(), "invalid key size 7")
	assert.Same(t, cause, errors.Unwrap(err))
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"validation verbatim", Validation("username", "username and password are required"), "username and password are required"},
		{"auth generic", Wrap(KindAuth, "", errors.New("hash mismatch")), "invalid username or password"},
		{"locked", ErrKeyUnavailable, "vault is locked"},
		{"unclassified", errors.New("open /etc/shadow: permission denied"), "unexpected error"},
		{"wrapped", fmt.Errorf("x: %w", ErrDecrypt), "secret unavailable"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, UserMessage(tc.err))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "decrypt", KindDecrypt.String())
	assert.Equal(t, "key unavailable", KindKeyUnavailable.String())
	assert.Equal(t, "kind(200)", Kind(200).String())
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
}

func TestLogDetail(t *testing.T) {
	assert.Equal(t, "", LogDetail(nil))
	assert.Equal(t, "plain", LogDetail(errors.New("plain")))
	assert.Equal(t, "corrupt [key_salt]: bad length", LogDetail(Wrap(KindCorrupt, "key_salt", errors.New("bad length"))))
}
