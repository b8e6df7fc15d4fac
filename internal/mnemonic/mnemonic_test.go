package mnemonic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip16(t *testing.T) {
	entropy := make([]byte, 16)
	for i := range entropy {
		entropy[i] = byte(i)
	}
	phrase, err := Encode(entropy)
	require.NoError(t, err)

	back, err := Decode(phrase)
	require.NoError(t, err)
	require.Equal(t, entropy, back)
}

func TestRoundTrip32(t *testing.T) {
	entropy := make([]byte, 32)
	for i := range entropy {
		entropy[i] = byte(255 - i)
	}
	phrase, err := Encode(entropy)
	require.NoError(t, err)

	back, err := Decode(phrase)
	require.NoError(t, err)
	require.Equal(t, entropy, back)
}

func TestEncodeRejectsUnsupportedLength(t *testing.T) {
	_, err := Encode(make([]byte, 20))
	require.ErrorIs(t, err, ErrUnsupportedBitsize)
}

func TestDetectTyposFindsMisspelling(t *testing.T) {
	entropy := make([]byte, 16)
	phrase, err := Encode(entropy)
	require.NoError(t, err)

	words := strings.Fields(phrase)
	words[0] = words[0][:len(words[0])-1] + "x"
	typos := DetectTypos(strings.Join(words, " "))
	require.NotEmpty(t, typos)
	require.Equal(t, 0, typos[0].Index)
}

func TestSuggestWordFindsNearMiss(t *testing.T) {
	require.Equal(t, "abandon", SuggestWord("abandn"))
}
