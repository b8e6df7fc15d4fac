package shamir

import (
	"io"

	"github.com/gendx/horcrux/internal/gf2n"
)

// generatePolynomial builds the coefficients of a degree-(k-1) polynomial
// whose constant term is secret and whose remaining k-1 coefficients are
// drawn uniformly from rng. k is the reconstruction threshold: k shares
// determine the polynomial (and so the secret) completely, k-1 shares
// reveal nothing about it.
func generatePolynomial[W gf2n.Word](p *gf2n.Params[W], secret gf2n.Element[W], k int, rng io.Reader) ([]gf2n.Element[W], error) {
	coeffs := make([]gf2n.Element[W], k)
	coeffs[0] = secret
	for i := 1; i < k; i++ {
		e, err := gf2n.Uniform(p, rng)
		if err != nil {
			return nil, err
		}
		coeffs[i] = e
	}
	return coeffs, nil
}

// evalPolynomial evaluates coeffs (constant term first) at x via Horner's
// method.
func evalPolynomial[W gf2n.Word](coeffs []gf2n.Element[W], x gf2n.Element[W]) gf2n.Element[W] {
	result := gf2n.Zero(coeffs[0].Params())
	for i := len(coeffs) - 1; i >= 0; i-- {
		result = gf2n.Mul(result, x).Add(coeffs[i])
	}
	return result
}
