package vault

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/cryptox"
)

// MinPasswordLength is the minimum master password length in characters.
const MinPasswordLength = 6

// ValidateRegistration checks the registration form. Messages are shown to
// the user verbatim.
func ValidateRegistration(username string, password, confirm []byte) error {
	if strings.TrimSpace(username) == "" || len(password) == 0 {
		return common.Validation("username", "username and password are required")
	}
	if !bytes.Equal(password, confirm) {
		return common.Validation("confirm", "passwords do not match")
	}
	if utf8.RuneCount(password) < MinPasswordLength {
		return common.Validation("password", "password must be at least 6 characters")
	}
	return nil
}

// NewCredential creates the credential record for a new user and derives
// the session key. The login salt and key salt are generated independently.
func NewCredential(username string, password []byte) (*Credential, []byte, error) {
	if err := ValidateRegistration(username, password, password); err != nil {
		return nil, nil, err
	}

	loginSalt := cryptox.NewSalt()
	keySalt := cryptox.NewSalt()
	for keySalt == loginSalt {
		keySalt = cryptox.NewSalt()
	}

	key, err := cryptox.DeriveKey(password, keySalt)
	if err != nil {
		return nil, nil, err
	}

	c := &Credential{
		Username:  strings.TrimSpace(username),
		LoginHash: cryptox.HashLogin(password, loginSalt),
		LoginSalt: loginSalt,
		KeySalt:   keySalt,
	}
	return c, key, nil
}

// Authenticate checks a login attempt and, on success, derives the key.
//
// Username and verifier are both compared in constant time and a mismatch
// of either yields the same KindAuth error. A malformed key salt is reported
// as KindCorrupt, but only after the password has been verified.
func (c *Credential) Authenticate(username string, password []byte) ([]byte, error) {
	userOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(username)), []byte(c.Username))
	hashOK := 0
	if cryptox.VerifyLogin(password, c.LoginSalt, c.LoginHash) {
		hashOK = 1
	}
	if userOK&hashOK != 1 {
		return nil, common.Wrap(common.KindAuth, "", errors.New("login verifier mismatch"))
	}

	return cryptox.DeriveKey(password, c.KeySalt)
}
