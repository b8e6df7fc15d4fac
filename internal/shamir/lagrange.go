package shamir

import "github.com/gendx/horcrux/internal/gf2n"

// point is a (x, y) pair on the shared polynomial, with both coordinates as
// field elements. The random scheme converts its shares to points before
// interpolating; the compact scheme does not use this type and interpolates
// its byte x-coordinates directly (compactInterpolateAt).
type point[W gf2n.Word] struct {
	x gf2n.Element[W]
	y gf2n.Element[W]
}

// interpolateAt evaluates the unique degree-(len(pts)-1) polynomial through
// pts at X, via Lagrange interpolation:
//
//	f(X) = sum_i y_i * prod_{j != i} (X - x_j) / (x_i - x_j)
//
// Subtraction is XOR in characteristic 2, so "X - x_j" and "x_i - x_j" are
// written as Sub but compute the same bits as Add.
func interpolateAt[W gf2n.Word](p *gf2n.Params[W], pts []point[W], x gf2n.Element[W]) gf2n.Element[W] {
	result := gf2n.Zero(p)
	for i, pi := range pts {
		num := gf2n.One(p)
		den := gf2n.One(p)
		for j, pj := range pts {
			if i == j {
				continue
			}
			num = gf2n.Mul(num, x.Sub(pj.x))
			den = gf2n.Mul(den, pi.x.Sub(pj.x))
		}
		term := gf2n.Mul(pi.y, gf2n.Mul(num, gf2n.Invert(den)))
		result = result.Add(term)
	}
	return result
}

// interpolateAtZero is interpolateAt specialized to X=0 (secret
// reconstruction): X - x_j collapses to x_j itself in characteristic 2,
// since 0 - x_j = x_j.
func interpolateAtZero[W gf2n.Word](p *gf2n.Params[W], pts []point[W]) gf2n.Element[W] {
	result := gf2n.Zero(p)
	for i, pi := range pts {
		num := gf2n.One(p)
		den := gf2n.One(p)
		for j, pj := range pts {
			if i == j {
				continue
			}
			num = gf2n.Mul(num, pj.x)
			den = gf2n.Mul(den, pi.x.Sub(pj.x))
		}
		term := gf2n.Mul(pi.y, gf2n.Mul(num, gf2n.Invert(den)))
		result = result.Add(term)
	}
	return result
}

// checkDistinctNonzeroX validates the x-coordinate preconditions of the
// random scheme's reconstruct operations: no zero or duplicate x-coordinate
// among pts. It does not know what k is; callers check len(pts) >= k
// themselves.
func checkDistinctNonzeroX[W gf2n.Word](pts []point[W]) error {
	seen := make(map[string]struct{}, len(pts))
	for _, pt := range pts {
		if pt.x.IsZero() {
			return ErrZeroX
		}
		key := pt.x.String()
		if _, dup := seen[key]; dup {
			return ErrDuplicateX
		}
		seen[key] = struct{}{}
	}
	return nil
}
