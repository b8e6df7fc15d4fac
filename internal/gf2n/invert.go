package gf2n

// Invert returns e^-1, the multiplicative inverse of e in its field.
//
// Every nonzero element of GF(2^n) satisfies e^(2^n-1) = 1, so
// e^-1 = e^(2^n-2). This computes that power by right-to-left
// square-and-multiply: the exponent 2^n-2 is, in binary, n-1 one bits
// followed by a single zero bit, so every squaring of the running base
// except the very first contributes to the result.
//
// Inverting the zero element is undefined; per this package's contract it
// returns One(e.Params()) rather than panicking, so that callers that can
// statically guarantee e != 0 don't pay for a runtime check they don't need.
// Misusing this on a zero element is a caller bug, not a recoverable error.
func Invert[W Word](e Element[W]) Element[W] {
	p := e.p
	if e.IsZero() {
		return One(p)
	}
	result := One(p)
	base := e
	for i := 0; i < p.N; i++ {
		if i > 0 {
			result = Mul(result, base)
		}
		base = Mul(base, base)
	}
	return result
}
