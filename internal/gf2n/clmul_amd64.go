//go:build amd64 && !purego

package gf2n

import "golang.org/x/sys/cpu"

// hasCLMUL reports whether the PCLMULQDQ fast path is usable on this CPU. It
// is checked once at package init, mirroring the reference implementation's
// runtime feature probe rather than a compile-time assumption about the
// target machine.
var hasCLMUL = cpu.X86.HasPCLMULQDQ

// clmul64 computes the 128-bit carryless product of a and b via the
// PCLMULQDQ instruction (see clmul_amd64.s) when the CPU supports it, and
// falls back to the portable implementation otherwise.
func clmul64(a, b uint64) (lo, hi uint64) {
	if hasCLMUL {
		return clmulAsm(a, b)
	}
	return softClmul64(a, b)
}

// clmulAsm is implemented in clmul_amd64.s. It must only be called after
// confirming cpu.X86.HasPCLMULQDQ.
func clmulAsm(a, b uint64) (lo, hi uint64)
