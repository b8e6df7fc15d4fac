// Package mnemonic formats and parses the 128-bit and 256-bit field
// elements as BIP-39 phrases, purely as an alternate wire encoding for the
// CLI. It never participates in the split/reconstruct grammar in
// internal/shamir: a mnemonic phrase is converted to entropy bytes, which
// are then fed through the same gf2n.FromBytes every hex-encoded share goes
// through.
package mnemonic

import (
	"fmt"

	"github.com/tyler-smith/go-bip39"
)

// ErrUnsupportedBitsize is returned for any bitsize other than 128 or 256,
// the two sizes BIP-39 entropy lengths (16 and 32 bytes) map onto directly.
var ErrUnsupportedBitsize = fmt.Errorf("mnemonic: only 128-bit and 256-bit fields support mnemonic encoding")

// Supported reports whether bitsize can round-trip through a BIP-39 phrase.
func Supported(bitsize int) bool {
	return bitsize == 128 || bitsize == 256
}

// Encode renders entropy (16 or 32 bytes) as its BIP-39 mnemonic phrase.
func Encode(entropy []byte) (string, error) {
	if len(entropy) != 16 && len(entropy) != 32 {
		return "", ErrUnsupportedBitsize
	}
	return bip39.NewMnemonic(entropy)
}

// Decode parses a BIP-39 phrase back into its entropy bytes.
func Decode(phrase string) ([]byte, error) {
	entropy, err := bip39.EntropyFromMnemonic(phrase)
	if err != nil {
		return nil, fmt.Errorf("mnemonic: decode: %w", err)
	}
	return entropy, nil
}
