package shamir

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gendx/horcrux/internal/gf2n"
)

func rngFor(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func randomSecret[W gf2n.Word](t *testing.T, p *gf2n.Params[W], r *rand.Rand) gf2n.Element[W] {
	t.Helper()
	e, err := gf2n.Uniform(p, r)
	require.NoError(t, err)
	return e
}

func TestCompactRoundTrip(t *testing.T) {
	r := rngFor(1)
	p := gf2n.GF128
	secret := randomSecret(t, p, r)

	shares, err := CompactSplit(p, secret, 5, 3, r)
	require.NoError(t, err)
	require.Len(t, shares, 5)

	got, err := CompactReconstruct(p, shares[1:4], 3)
	require.NoError(t, err)
	require.True(t, got.Equal(secret))
}

func TestCompactSubsetIndependence(t *testing.T) {
	r := rngFor(2)
	p := gf2n.GF256
	secret := randomSecret(t, p, r)

	shares, err := CompactSplit(p, secret, 6, 4, r)
	require.NoError(t, err)

	subsets := [][]int{{0, 1, 2, 3}, {2, 3, 4, 5}, {0, 2, 4, 5}}
	for _, idx := range subsets {
		sub := make([]CompactShare[uint64], len(idx))
		for i, j := range idx {
			sub[i] = shares[j]
		}
		got, err := CompactReconstruct(p, sub, 4)
		require.NoError(t, err)
		require.True(t, got.Equal(secret))
	}
}

func TestCompactReconstructAtMintsConsistentShare(t *testing.T) {
	r := rngFor(3)
	p := gf2n.GF128
	secret := randomSecret(t, p, r)

	shares, err := CompactSplit(p, secret, 5, 3, r)
	require.NoError(t, err)

	minted, err := CompactReconstructAt(p, shares[:3], 3, 200)
	require.NoError(t, err)

	withMinted := append(append([]CompactShare[uint64]{}, shares[3:]...), CompactShare[uint64]{X: 200, Y: minted})
	got, err := CompactReconstruct(p, withMinted, 3)
	require.NoError(t, err)
	require.True(t, got.Equal(secret))
}

func TestCompactTooFewSharesFails(t *testing.T) {
	r := rngFor(4)
	p := gf2n.GF64
	secret := randomSecret(t, p, r)

	shares, err := CompactSplit(p, secret, 5, 4, r)
	require.NoError(t, err)

	_, err = CompactReconstruct(p, shares[:3], 4)
	require.ErrorIs(t, err, ErrThreshold)
}

func TestCompactFormatRoundTrip(t *testing.T) {
	r := rngFor(5)
	p := gf2n.GF128
	secret := randomSecret(t, p, r)

	shares, err := CompactSplit(p, secret, 4, 2, r)
	require.NoError(t, err)

	for _, s := range shares {
		parsed, err := ParseCompactShare(p, s.String())
		require.NoError(t, err)
		require.Equal(t, s.X, parsed.X)
		require.True(t, s.Y.Equal(parsed.Y))
	}
}

func TestRandomRoundTrip(t *testing.T) {
	r := rngFor(6)
	p := gf2n.GF256
	secret := randomSecret(t, p, r)

	shares, err := RandomSplit(p, secret, 5, 3, r)
	require.NoError(t, err)
	require.Len(t, shares, 5)

	got, err := RandomReconstruct(p, shares[:3], 3)
	require.NoError(t, err)
	require.True(t, got.Equal(secret))
}

func TestRandomFormatRoundTrip(t *testing.T) {
	r := rngFor(7)
	p := gf2n.GF128
	secret := randomSecret(t, p, r)

	shares, err := RandomSplit(p, secret, 4, 2, r)
	require.NoError(t, err)

	for _, s := range shares {
		parsed, err := ParseRandomShare(p, s.String())
		require.NoError(t, err)
		require.True(t, s.X.Equal(parsed.X))
		require.True(t, s.Y.Equal(parsed.Y))
	}
}

func TestRandomDuplicateXRejected(t *testing.T) {
	p := gf2n.GF64
	x := gf2n.FromByte(p, 7)
	shares := []RandomShare[uint64]{
		{X: x, Y: gf2n.FromByte(p, 1)},
		{X: x, Y: gf2n.FromByte(p, 2)},
	}
	_, err := RandomReconstruct(p, shares, 2)
	require.ErrorIs(t, err, ErrDuplicateX)
}

func TestCompactZeroXRejected(t *testing.T) {
	p := gf2n.GF64
	shares := []CompactShare[uint64]{
		{X: 0, Y: gf2n.FromByte(p, 1)},
		{X: 1, Y: gf2n.FromByte(p, 2)},
	}
	_, err := CompactReconstruct(p, shares, 2)
	require.ErrorIs(t, err, ErrZeroX)
}

func TestCompactTooManySharesRejected(t *testing.T) {
	r := rngFor(8)
	p := gf2n.GF64
	secret := randomSecret(t, p, r)
	_, err := CompactSplit(p, secret, 256, 2, r)
	require.ErrorIs(t, err, ErrTooManyShares)
}

func TestMalformedShareRejected(t *testing.T) {
	p := gf2n.GF64
	_, err := ParseCompactShare(p, "not-a-share")
	require.ErrorIs(t, err, ErrMalformedShare)

	_, err = ParseRandomShare(p, "zz|11")
	require.ErrorIs(t, err, ErrMalformedShare)
}
