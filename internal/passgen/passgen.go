// Package passgen generates random passwords and diceware passphrases.
package passgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/sethvargo/go-diceware/diceware"
)

const (
	// DefaultLength is the length of a generated password.
	DefaultLength = 12
	// DefaultWords is the number of words in a generated passphrase.
	DefaultWords = 6
)

const (
	alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	symbols      = "!@#$%^&*()-_=+[]{};:,.<>?"
	upper        = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// each position draws from one of these classes with equal probability,
// so alphanumerics are picked twice as often as symbols or capitals
var classes = []string{alphanumeric, alphanumeric, symbols, upper}

// Generate returns a random password of length characters.
func Generate(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("password length must be positive, got %d", length)
	}

	var b strings.Builder
	b.Grow(length)
	for range length {
		class := classes[randIndex(len(classes))]
		b.WriteByte(class[randIndex(len(class))])
	}
	return b.String(), nil
}

// Passphrase returns words diceware words joined with "-".
func Passphrase(words int) (string, error) {
	if words <= 0 {
		return "", fmt.Errorf("word count must be positive, got %d", words)
	}
	list, err := diceware.Generate(words)
	if err != nil {
		return "", fmt.Errorf("generate passphrase: %w", err)
	}
	return strings.Join(list, "-"), nil
}

func randIndex(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("passgen: system randomness unavailable: %v", err))
	}
	return int(v.Int64())
}
