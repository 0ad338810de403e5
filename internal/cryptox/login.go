package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
)

// HashLogin computes the login verifier: base64(SHA-256(password || salt)),
// where salt is the stored text form. It is never used to derive key
// material.
func HashLogin(password []byte, salt string) string {
	h := sha256.New()
	h.Write(password)
	h.Write([]byte(salt))
	return EncodeText(h.Sum(nil))
}

// VerifyLogin recomputes the verifier for password and compares it with the
// stored digest in constant time.
func VerifyLogin(password []byte, salt, digest string) bool {
	candidate := HashLogin(password, salt)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(digest)) == 1
}
