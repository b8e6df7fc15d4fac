package gf2n

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// rngFor returns a deterministic, test-only source of field elements.
// Production callers of Uniform must pass a real CSPRNG; these unit tests
// need reproducible failures instead, so they seed their own source.
func rngFor(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func randomElement[W Word](t *testing.T, p *Params[W], r *rand.Rand) Element[W] {
	t.Helper()
	buf := make([]byte, p.NBytes())
	_, err := r.Read(buf)
	require.NoError(t, err)
	e, ok := FromBytes(p, buf)
	require.True(t, ok)
	return e
}

func TestAdditiveGroupLaws(t *testing.T) {
	r := rngFor(1)
	for _, p := range []*Params[uint64]{GF64, GF128, GF256} {
		a := randomElement(t, p, r)
		b := randomElement(t, p, r)
		c := randomElement(t, p, r)
		zero := Zero(p)

		require.True(t, a.Add(zero).Equal(a))
		require.True(t, a.Add(a).Equal(zero))
		require.True(t, a.Add(b).Equal(b.Add(a)))
		require.True(t, a.Add(b).Add(c).Equal(a.Add(b.Add(c))))
	}
}

func TestMultiplicativeLaws(t *testing.T) {
	r := rngFor(2)
	for _, p := range []*Params[uint64]{GF64, GF128, GF192, GF256, GF384} {
		a := randomElement(t, p, r)
		b := randomElement(t, p, r)
		one := One(p)

		require.True(t, Mul(a, one).Equal(a))
		require.True(t, Mul(a, b).Equal(Mul(b, a)))
	}
}

func TestShiftConsistency(t *testing.T) {
	r := rngFor(3)
	for _, p := range []*Params[uint64]{GF64, GF128, GF256} {
		e := randomElement(t, p, r)

		byOne := e
		for i := 0; i < p.WordBits; i++ {
			byOne = Shl1(byOne)
		}
		require.True(t, byOne.Equal(ShlWord(e)))
		require.True(t, byOne.Equal(Shlt(e, p.WordBits)))

		require.True(t, Shlt(e, 5).Equal(Shl1(Shl1(Shl1(Shl1(Shl1(e)))))))
	}
}

func TestMulStrategiesAgree(t *testing.T) {
	r := rngFor(4)
	for _, p := range []*Params[uint64]{GF128, GF192, GF256, GF384, GF512} {
		a := randomElement(t, p, r)
		b := randomElement(t, p, r)
		require.True(t, mulAsAdd(a, b).Equal(mulFusedCarry(a, b)))
	}
}

func TestMulCLMULAgreesWithSoftware(t *testing.T) {
	r := rngFor(5)
	for i := 0; i < 32; i++ {
		a := randomElement(t, GF64, r)
		b := randomElement(t, GF64, r)

		hw := mulCLMUL(a, b)
		soft := mulAsAdd(a, b)
		require.True(t, hw.Equal(soft), "clmul disagreed with software mul for %s * %s", a, b)

		prodLo, prodHi := softClmul64(a.words[0], b.words[0])
		hwLo, hwHi := clmul64(a.words[0], b.words[0])
		require.Equal(t, prodLo, hwLo)
		require.Equal(t, prodHi, hwHi)
	}
}

func TestFromDiff(t *testing.T) {
	for _, p := range []*Params[uint64]{GF64, GF128} {
		for u := 0; u < 256; u += 37 {
			for v := 0; v < 256; v += 53 {
				got := FromDiff(p, byte(u), byte(v))
				want := FromByte(p, byte(u)).Add(FromByte(p, byte(v)))
				require.True(t, got.Equal(want))
			}
		}
	}
}

func TestInvert(t *testing.T) {
	r := rngFor(6)
	for _, p := range []*Params[uint64]{GF64, GF128, GF256, GF512} {
		for i := 0; i < 8; i++ {
			a := randomElement(t, p, r)
			if a.IsZero() {
				continue
			}
			inv := Invert(a)
			require.True(t, Mul(a, inv).Equal(One(p)))
		}
	}
}

func TestBytesRoundTrip(t *testing.T) {
	r := rngFor(7)
	for _, p := range []*Params[uint64]{GF64, GF128, GF256, GF2048} {
		e := randomElement(t, p, r)
		back, ok := FromBytes(p, e.Bytes())
		require.True(t, ok)
		require.True(t, e.Equal(back))
	}
}

func TestBytesEncodingIsBigEndian(t *testing.T) {
	// The constant-term byte (x^0..x^7) must land at the end of the byte
	// encoding and the highest-degree byte at the start, matching the
	// convention a hex string reads in: most significant first.
	bs := make([]byte, GF128.NBytes())
	bs[len(bs)-1] = 0x01 // just the x^0 bit
	e, ok := FromBytes(GF128, bs)
	require.True(t, ok)
	require.True(t, e.Equal(One(GF128)))

	bs2 := make([]byte, GF128.NBytes())
	bs2[0] = 0x80 // the highest bit of the highest-degree byte
	e2, ok := FromBytes(GF128, bs2)
	require.True(t, ok)
	require.Equal(t, "80"+strings.Repeat("0", 30), e2.String())
}

func TestSmallWordFields(t *testing.T) {
	r := rngFor(8)

	a8 := randomElement(t, GF8, r)
	b8 := randomElement(t, GF8, r)
	require.True(t, Mul(a8, b8).Equal(Mul(b8, a8)))

	a16 := randomElement(t, GF16, r)
	b16 := randomElement(t, GF16, r)
	require.True(t, Mul(a16, b16).Equal(Mul(b16, a16)))

	a32 := randomElement(t, GF32, r)
	b32 := randomElement(t, GF32, r)
	require.True(t, Mul(a32, b32).Equal(Mul(b32, a32)))
}
