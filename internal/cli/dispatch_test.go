package cli

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gendx/horcrux/internal/gf2n"
)

func TestSplitReconstructRoundTrip(t *testing.T) {
	for _, bitsize := range gf2n.SupportedBitsizes {
		for _, scheme := range []string{"compact", "random"} {
			secretBytes := make([]byte, bitsize/8)
			_, err := rand.Read(secretBytes)
			require.NoError(t, err)
			secretHex := hex.EncodeToString(secretBytes)

			lines, err := splitHex(bitsize, scheme, secretHex, 5, 3, rand.Reader)
			require.NoError(t, err)
			require.Len(t, lines, 5)

			got, err := reconstructHex(bitsize, scheme, lines[:3], 3, "")
			require.NoError(t, err)
			require.Equal(t, secretHex, got)
		}
	}
}

func TestSplitRejectsUnsupportedBitsize(t *testing.T) {
	_, err := splitHex(100, "compact", "aa", 3, 2, rand.Reader)
	require.Error(t, err)
}
