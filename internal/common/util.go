package common

import (
	"crypto/rand"
)

// RandomBytes returns n bytes from the operating system's CSPRNG.
//
// There is no fallback: crypto/rand.Read never returns an error and crashes
// the program irrecoverably if the OS source fails.
func RandomBytes(n int) []byte {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return b
}

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// This is useful for removing sensitive data such as passwords or cryptographic
// keys from memory after use.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	clear(b)
}
