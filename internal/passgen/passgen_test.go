package passgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_LengthAndAlphabet(t *testing.T) {
	allowed := alphanumeric + symbols

	for _, n := range []int{1, DefaultLength, 64} {
		pw, err := Generate(n)
		require.NoError(t, err)
		assert.Len(t, pw, n)
		for _, r := range pw {
			assert.True(t, strings.ContainsRune(allowed, r), "unexpected character %q", r)
		}
	}
}

func TestGenerate_Distinct(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 200; i++ {
		pw, err := Generate(DefaultLength)
		require.NoError(t, err)
		_, dup := seen[pw]
		require.False(t, dup, "generated the same password twice")
		seen[pw] = struct{}{}
	}
}

func TestGenerate_InvalidLength(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := Generate(n)
		assert.Error(t, err)
	}
}

func TestPassphrase(t *testing.T) {
	p, err := Passphrase(DefaultWords)
	require.NoError(t, err)

	// some list words carry their own hyphen
	words := strings.Split(p, "-")
	assert.GreaterOrEqual(t, len(words), DefaultWords)
	assert.NotContains(t, p, " ")

	_, err = Passphrase(0)
	assert.Error(t, err)
}
