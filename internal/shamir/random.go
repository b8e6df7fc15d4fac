package shamir

import (
	"encoding/hex"
	"fmt"
	"io"
	"regexp"

	"github.com/gendx/horcrux/internal/gf2n"
)

// randomShareRe matches the random scheme's wire grammar: two hex-encoded
// field elements separated by a pipe. Unlike the compact scheme, the
// x-coordinate here is a full field element, not a small decimal byte.
var randomShareRe = regexp.MustCompile(`^([0-9a-fA-F]+)\|([0-9a-fA-F]+)$`)

// maxRejectionAttempts bounds the rejection-sampling loop that draws fresh
// x-coordinates. Failing this many draws in a row without finding a value
// that is both nonzero and distinct from every x already chosen means rng
// is not behaving like a CSPRNG; it is not a bound real runs ever hit (even
// the smallest supported field, GF8, has 255 usable x-coordinates and this
// package never splits into more than 255 shares for the same reason the
// compact scheme is capped there).
const maxRejectionAttempts = 10000

// RandomShare is one share of the random scheme: the x-coordinate is a
// uniformly sampled field element rather than a small sequential byte,
// trading a larger wire encoding for not revealing how many shares exist or
// in what order they were generated.
type RandomShare[W gf2n.Word] struct {
	X gf2n.Element[W]
	Y gf2n.Element[W]
}

// String renders a share in the "x|y" wire grammar, both sides lowercase
// hex.
func (s RandomShare[W]) String() string {
	return fmt.Sprintf("%s|%s", s.X, s.Y)
}

// ParseRandomShare parses a share previously produced by String.
func ParseRandomShare[W gf2n.Word](p *gf2n.Params[W], s string) (RandomShare[W], error) {
	m := randomShareRe.FindStringSubmatch(s)
	if m == nil {
		return RandomShare[W]{}, ErrMalformedShare
	}
	xBytes, err := hex.DecodeString(m[1])
	if err != nil {
		return RandomShare[W]{}, ErrMalformedShare
	}
	yBytes, err := hex.DecodeString(m[2])
	if err != nil {
		return RandomShare[W]{}, ErrMalformedShare
	}
	x, ok := gf2n.FromBytes(p, xBytes)
	if !ok {
		return RandomShare[W]{}, ErrMalformedShare
	}
	y, ok := gf2n.FromBytes(p, yBytes)
	if !ok {
		return RandomShare[W]{}, ErrMalformedShare
	}
	return RandomShare[W]{X: x, Y: y}, nil
}

// drawDistinctX draws a fresh, nonzero field element not already present in
// used, by rejection sampling from rng.
func drawDistinctX[W gf2n.Word](p *gf2n.Params[W], used map[string]struct{}, rng io.Reader) (gf2n.Element[W], error) {
	for attempt := 0; attempt < maxRejectionAttempts; attempt++ {
		x, err := gf2n.Uniform(p, rng)
		if err != nil {
			return gf2n.Element[W]{}, err
		}
		if x.IsZero() {
			continue
		}
		key := x.String()
		if _, dup := used[key]; dup {
			continue
		}
		used[key] = struct{}{}
		return x, nil
	}
	return gf2n.Element[W]{}, ErrRNGExhausted
}

// RandomSplit splits secret into n random shares, k of which reconstruct it.
// x-coordinates are drawn uniformly from the field, rejecting zero and any
// value already assigned to another share in this split. n must not exceed
// 255.
func RandomSplit[W gf2n.Word](p *gf2n.Params[W], secret gf2n.Element[W], n, k int, rng io.Reader) ([]RandomShare[W], error) {
	if k < 1 || k > n {
		return nil, ErrThreshold
	}
	if n > 255 {
		return nil, ErrTooManyShares
	}
	coeffs, err := generatePolynomial(p, secret, k, rng)
	if err != nil {
		return nil, err
	}
	used := make(map[string]struct{}, n)
	shares := make([]RandomShare[W], n)
	for i := 0; i < n; i++ {
		x, err := drawDistinctX(p, used, rng)
		if err != nil {
			return nil, err
		}
		shares[i] = RandomShare[W]{X: x, Y: evalPolynomial(coeffs, x)}
	}
	return shares, nil
}

func toPoints[W gf2n.Word](shares []RandomShare[W]) []point[W] {
	pts := make([]point[W], len(shares))
	for i, s := range shares {
		pts[i] = point[W]{x: s.X, y: s.Y}
	}
	return pts
}

// RandomReconstruct recovers the secret from k or more random shares.
func RandomReconstruct[W gf2n.Word](p *gf2n.Params[W], shares []RandomShare[W], k int) (gf2n.Element[W], error) {
	if len(shares) < k {
		return gf2n.Element[W]{}, ErrThreshold
	}
	pts := toPoints(shares)
	if err := checkDistinctNonzeroX(pts); err != nil {
		return gf2n.Element[W]{}, err
	}
	return interpolateAtZero(p, pts), nil
}

// RandomReconstructAt evaluates the shared polynomial at an arbitrary field
// element instead of recovering the secret.
func RandomReconstructAt[W gf2n.Word](p *gf2n.Params[W], shares []RandomShare[W], k int, at gf2n.Element[W]) (gf2n.Element[W], error) {
	if len(shares) < k {
		return gf2n.Element[W]{}, ErrThreshold
	}
	pts := toPoints(shares)
	if err := checkDistinctNonzeroX(pts); err != nil {
		return gf2n.Element[W]{}, err
	}
	return interpolateAt(p, pts, at), nil
}
