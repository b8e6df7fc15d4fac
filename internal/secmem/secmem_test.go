package secmem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomBytesLength(t *testing.T) {
	b, err := RandomBytes(32)
	require.NoError(t, err)
	require.Len(t, b, 32)
}

func TestSecureBytesDestroyZeroes(t *testing.T) {
	data := []byte("top secret shard")
	s := New(data)
	require.Equal(t, len(data), s.Len())
	require.Equal(t, data, s.Bytes())

	s.Destroy()
	for _, b := range s.Bytes() {
		require.Equal(t, byte(0), b)
	}

	// Idempotent.
	s.Destroy()
}
