package gf2n

// mulCLMUL multiplies two GF64 elements (the single-word uint64
// instantiation) using the hardware carryless multiply when available
// (clmul_amd64.go), falling back to the portable bit-by-bit implementation
// otherwise (clmul_generic.go). Both paths return bit-identical results; the
// hardware path exists purely for speed.
func mulCLMUL(a, b Element[uint64]) Element[uint64] {
	p := a.p
	lo, hi := clmul64(a.words[0], b.words[0])
	prod := []uint64{lo, hi}
	propagateCarries(prod, p.N, p.A, p.B, p.C, p.WordBits)
	return Element[uint64]{words: prod[:1], p: p}
}
