package gf2n

// testBitWords / clearBitWords / xorBitWords operate on a little-endian (word
// 0 = least significant) word slice at an absolute bit position, independent
// of any particular Element's NWords. They back the bit-of-b scans in
// mulAsAdd and mulFusedCarry and the bit-by-bit reduction in
// propagateCarries.

func testBitWords[W Word](words []W, wordBits, pos int) bool {
	idx := pos / wordBits
	off := uint(pos % wordBits)
	return (words[idx]>>off)&1 == 1
}

func clearBitWords[W Word](words []W, wordBits, pos int) {
	idx := pos / wordBits
	off := uint(pos % wordBits)
	words[idx] &^= W(1) << off
}

func xorBitWords[W Word](words []W, wordBits, pos int) {
	idx := pos / wordBits
	off := uint(pos % wordBits)
	words[idx] ^= W(1) << off
}

// shlRaw1 shifts a word slice left by one bit as a plain binary integer: no
// modular reduction, and the bit shifted out of the most significant word is
// dropped. Callers either size the slice so that bit never carries meaningful
// information (mulFusedCarry sizes its buffer to 2*NWords words for inputs
// of at most N-1 bits of useful shift) or read that bit themselves before
// shifting (Shl1).
func shlRaw1[W Word](words []W, wordBits int) []W {
	out := make([]W, len(words))
	var carry W
	for i := 0; i < len(words); i++ {
		out[i] = (words[i] << 1) | carry
		carry = words[i] >> uint(wordBits-1)
	}
	return out
}

// Shl1 returns e * x, reduced modulo e's field's reduction tetranomial
// x^N + x^A + x^B + x^C + 1. This is the base operation the other shifts
// and the double-and-add multiplication (mulAsAdd) build on.
func Shl1[W Word](e Element[W]) Element[W] {
	p := e.p
	words := shlRaw1(e.words, p.WordBits)
	overflow := e.words[p.NWords-1] >> uint(p.WordBits-1)
	if overflow != 0 {
		words[0] ^= 1 ^ (W(1) << uint(p.A)) ^ (W(1) << uint(p.B)) ^ (W(1) << uint(p.C))
	}
	return Element[W]{words: words, p: p}
}

// Shlt returns e * x^t, reduced. t must be non-negative.
func Shlt[W Word](e Element[W], t int) Element[W] {
	for i := 0; i < t; i++ {
		e = Shl1(e)
	}
	return e
}

// ShlWord returns e * x^WordBits, reduced. It is a convenience form of
// Shlt(e, WordBits).
func ShlWord[W Word](e Element[W]) Element[W] {
	return Shlt(e, e.p.WordBits)
}

// mulAsAdd multiplies by the schoolbook "double and add" method: walk the
// bits of b from least to most significant, conditionally adding the
// (repeatedly doubled) value of a. Every doubling goes through Shl1, so
// reduction happens one bit at a time, interleaved with the accumulation.
//
// This is the simplest correct multiplication and the reference every other
// strategy is checked against.
func mulAsAdd[W Word](a, b Element[W]) Element[W] {
	p := a.p
	result := Zero(p)
	cur := a
	for i := 0; i < p.N; i++ {
		if testBitWords(b.words, p.WordBits, i) {
			result = result.Add(cur)
		}
		if i != p.N-1 {
			cur = Shl1(cur)
		}
	}
	return result
}

// mulFusedCarry multiplies by first forming the full, unreduced 2N-bit
// carryless product of a and b, then folding the high N bits down modulo the
// reduction tetranomial in a single top-down pass. Unlike mulAsAdd, which
// reduces after every one of the N doublings, the reduction work here is
// batched into one pass over the high half of the product — the "carries"
// from the high words are propagated down in one sweep rather than as they
// are generated.
func mulFusedCarry[W Word](a, b Element[W]) Element[W] {
	p := a.p
	n := p.N
	wordBits := p.WordBits
	nwords := p.NWords

	prod := make([]W, 2*nwords)
	shifted := make([]W, 2*nwords)
	copy(shifted, a.words)
	for i := 0; i < n; i++ {
		if testBitWords(b.words, wordBits, i) {
			for j := range prod {
				prod[j] ^= shifted[j]
			}
		}
		if i != n-1 {
			shifted = shlRaw1(shifted, wordBits)
		}
	}

	propagateCarries(prod, n, p.A, p.B, p.C, wordBits)

	return Element[W]{words: prod[:nwords], p: p}
}

// propagateCarries reduces a 2*n-bit double-width carryless product in place
// modulo x^n + x^a + x^b + x^c + 1, by substituting
// x^n = x^a + x^b + x^c + 1 for every set bit at or above position n,
// processing from the highest bit down so that every substitution only ever
// targets a strictly lower, not-yet-finalized position.
func propagateCarries[W Word](prod []W, n, a, b, c, wordBits int) {
	for pos := 2*n - 1; pos >= n; pos-- {
		if !testBitWords(prod, wordBits, pos) {
			continue
		}
		clearBitWords(prod, wordBits, pos)
		shift := pos - n
		xorBitWords(prod, wordBits, shift)
		xorBitWords(prod, wordBits, shift+a)
		xorBitWords(prod, wordBits, shift+b)
		xorBitWords(prod, wordBits, shift+c)
	}
}

// Mul returns a * b, dispatching to the fastest available strategy:
//   - the hardware PCLMULQDQ carryless multiply, for the single-word GF64
//     field on amd64 CPUs that support it (a 64x64->128 bit carryless
//     multiply covers the whole product in one instruction; combining
//     several PCLMULQDQ results for multi-word fields needs a Karatsuba-style
//     split this package does not implement, so the fast path stops at GF64);
//   - the generic fused-carry multiply for every other multi-word field;
//   - the simple double-and-add for single-word fields with no hardware
//     support, where the fused-carry buffer overhead isn't worth it.
//
// Go has no monomorphization to pick the CLMUL path at compile time for the
// specific instantiation Mul[uint64], so the check is a runtime type
// assertion on the generic parameter — the safe, checked analogue of the
// reference implementation's unsafe transmute.
func Mul[W Word](a, b Element[W]) Element[W] {
	if hasCLMUL && a.p.NWords == 1 {
		if a64, ok := any(a).(Element[uint64]); ok {
			b64 := any(b).(Element[uint64])
			r64 := mulCLMUL(a64, b64)
			return any(r64).(Element[W])
		}
	}
	if a.p.NWords <= 1 {
		return mulAsAdd(a, b)
	}
	return mulFusedCarry(a, b)
}
