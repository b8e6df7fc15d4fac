// Package shamir implements Shamir's Secret Sharing over the binary
// extension fields defined in internal/gf2n, in two share encodings: compact
// (x-coordinates are small bytes 1..255) and random (x-coordinates are
// uniformly sampled field elements).
package shamir

import "errors"

var (
	// ErrThreshold is returned when the requested threshold k is not in the
	// range [1, n], or when fewer than k shares are supplied for
	// reconstruction.
	ErrThreshold = errors.New("shamir: threshold must satisfy 1 <= k <= n")

	// ErrTooManyShares is returned by CompactSplit and RandomSplit when n
	// exceeds 255, the number of distinct nonzero byte x-coordinates (and of
	// nonzero elements of the smallest field, GF8).
	ErrTooManyShares = errors.New("shamir: at most 255 shares are supported")

	// ErrDuplicateX is returned when two shares passed to a reconstruct
	// operation carry the same x-coordinate.
	ErrDuplicateX = errors.New("shamir: duplicate share x-coordinate")

	// ErrZeroX is returned when a share's x-coordinate is the zero element;
	// x=0 would leak the secret directly (the polynomial's constant term)
	// and is never valid.
	ErrZeroX = errors.New("shamir: share x-coordinate must be nonzero")

	// ErrMalformedShare is returned when a share's text encoding doesn't
	// match its scheme's grammar.
	ErrMalformedShare = errors.New("shamir: malformed share text")

	// ErrRNGExhausted is returned by the random scheme's x-coordinate
	// rejection sampler if it fails to draw a fresh nonzero, non-duplicate
	// value within a bounded number of attempts — astronomically unlikely
	// for any field this package supports, and only reachable if rng is
	// degenerate.
	ErrRNGExhausted = errors.New("shamir: rng exhausted while sampling a distinct x-coordinate")
)
