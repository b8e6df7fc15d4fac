package shamir

import (
	"encoding/hex"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/gendx/horcrux/internal/gf2n"
)

// compactShareRe matches the compact scheme's wire grammar: a decimal
// x-coordinate in 1..255, a pipe, and a hex-encoded field element.
var compactShareRe = regexp.MustCompile(`^([0-9]+)\|([0-9a-fA-F]+)$`)

// CompactShare is one share of the compact scheme: x ranges over the 255
// nonzero byte values, so at most 255 shares of a compact split exist and
// the x-coordinate costs at most three decimal digits instead of a full
// field element.
type CompactShare[W gf2n.Word] struct {
	X byte
	Y gf2n.Element[W]
}

// String renders a share in the "x|y" wire grammar, y as lowercase hex.
func (s CompactShare[W]) String() string {
	return fmt.Sprintf("%d|%s", s.X, s.Y)
}

// ParseCompactShare parses a share previously produced by String.
func ParseCompactShare[W gf2n.Word](p *gf2n.Params[W], s string) (CompactShare[W], error) {
	m := compactShareRe.FindStringSubmatch(s)
	if m == nil {
		return CompactShare[W]{}, ErrMalformedShare
	}
	xVal, err := strconv.Atoi(m[1])
	if err != nil || xVal < 1 || xVal > 255 {
		return CompactShare[W]{}, ErrMalformedShare
	}
	yBytes, err := hex.DecodeString(m[2])
	if err != nil {
		return CompactShare[W]{}, ErrMalformedShare
	}
	y, ok := gf2n.FromBytes(p, yBytes)
	if !ok {
		return CompactShare[W]{}, ErrMalformedShare
	}
	return CompactShare[W]{X: byte(xVal), Y: y}, nil
}

// CompactSplit splits secret into n compact shares, k of which reconstruct
// it. x-coordinates are assigned sequentially as 1, 2, ..., n, so n must not
// exceed 255.
func CompactSplit[W gf2n.Word](p *gf2n.Params[W], secret gf2n.Element[W], n, k int, rng io.Reader) ([]CompactShare[W], error) {
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
	shares := make([]CompactShare[W], n)
	for i := 0; i < n; i++ {
		x := byte(i + 1)
		xe := gf2n.FromByte(p, x)
		shares[i] = CompactShare[W]{X: x, Y: evalPolynomial(coeffs, xe)}
	}
	return shares, nil
}

// compactInterpolateAt is the compact scheme's Lagrange interpolation,
// evaluated at the field element whose only nonzero byte is atX. Because
// every x-coordinate in this scheme is a single byte, every "X - x_j"
// subterm collapses to a one-byte XOR (FromDiff) instead of a full-width
// field subtraction.
func compactInterpolateAt[W gf2n.Word](p *gf2n.Params[W], shares []CompactShare[W], atX byte) gf2n.Element[W] {
	result := gf2n.Zero(p)
	for i, si := range shares {
		num := gf2n.One(p)
		den := gf2n.One(p)
		for j, sj := range shares {
			if i == j {
				continue
			}
			num = gf2n.Mul(num, gf2n.FromDiff(p, atX, sj.X))
			den = gf2n.Mul(den, gf2n.FromDiff(p, si.X, sj.X))
		}
		term := gf2n.Mul(si.Y, gf2n.Mul(num, gf2n.Invert(den)))
		result = result.Add(term)
	}
	return result
}

func checkCompactShares[W gf2n.Word](shares []CompactShare[W], k int) error {
	if len(shares) < k {
		return ErrThreshold
	}
	seen := make(map[byte]struct{}, len(shares))
	for _, s := range shares {
		if s.X == 0 {
			return ErrZeroX
		}
		if _, dup := seen[s.X]; dup {
			return ErrDuplicateX
		}
		seen[s.X] = struct{}{}
	}
	return nil
}

// CompactReconstruct recovers the secret from k or more compact shares.
// Extra shares beyond k are not dropped: every supplied share enters the
// interpolation. No consistency check is made, so if the supplied shares do
// not all lie on one degree-(k-1) polynomial the result is not the secret
// and no error is returned.
func CompactReconstruct[W gf2n.Word](p *gf2n.Params[W], shares []CompactShare[W], k int) (gf2n.Element[W], error) {
	if err := checkCompactShares(shares, k); err != nil {
		return gf2n.Element[W]{}, err
	}
	return compactInterpolateAt(p, shares, 0), nil
}

// CompactReconstructAt evaluates the shared polynomial at an arbitrary
// x-coordinate instead of recovering the secret (which is the polynomial's
// value at x=0). This lets a coalition of k shares mint an additional share
// without ever reconstructing the secret itself.
func CompactReconstructAt[W gf2n.Word](p *gf2n.Params[W], shares []CompactShare[W], k int, atX byte) (gf2n.Element[W], error) {
	if err := checkCompactShares(shares, k); err != nil {
		return gf2n.Element[W]{}, err
	}
	return compactInterpolateAt(p, shares, atX), nil
}
