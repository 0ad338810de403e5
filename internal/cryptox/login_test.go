package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashLogin_KnownVector(t *testing.T) {
	// base64(sha256("secret1" + "AAECAwQFBgcICQoLDA0ODw=="))
	want := "trp3PWfzGXzgCrV9NseB263UW9qIIArCP6RdtGlafzw="
	assert.Equal(t, want, HashLogin([]byte("secret1"), fixedSalt))
}

func TestHashLogin_SaltMatters(t *testing.T) {
	pw := []byte("secret1")
	assert.NotEqual(t, HashLogin(pw, NewSalt()), HashLogin(pw, NewSalt()))
}

func TestVerifyLogin(t *testing.T) {
	salt := NewSalt()
	digest := HashLogin([]byte("secret1"), salt)

	assert.True(t, VerifyLogin([]byte("secret1"), salt, digest))
	assert.False(t, VerifyLogin([]byte("wrong"), salt, digest))
	assert.False(t, VerifyLogin([]byte("secret1"), NewSalt(), digest))
	assert.False(t, VerifyLogin([]byte("secret1"), salt, ""))
	assert.False(t, VerifyLogin([]byte("secret1"), salt, digest[:10]))
}
