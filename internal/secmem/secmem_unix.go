//go:build unix

package secmem

import "golang.org/x/sys/unix"

// mlock attempts to lock buf's pages against swapping, returning whether it
// succeeded. Failure (e.g. RLIMIT_MEMLOCK too low) is not fatal: the buffer
// is still used and zeroed on Destroy, just without the swap guarantee.
func mlock(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}
	return unix.Mlock(buf) == nil
}

func munlock(buf []byte) {
	if len(buf) == 0 {
		return
	}
	_ = unix.Munlock(buf)
}
