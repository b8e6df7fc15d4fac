//go:build !amd64 || purego

package gf2n

// hasCLMUL is always false outside amd64 (or under the purego build tag):
// there is no portable hardware carryless-multiply instruction this package
// knows how to reach from other architectures.
var hasCLMUL = false

// clmul64 falls back to the pure Go carryless multiply on every
// architecture other than amd64.
func clmul64(a, b uint64) (lo, hi uint64) {
	return softClmul64(a, b)
}
