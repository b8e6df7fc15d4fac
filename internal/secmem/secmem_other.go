//go:build !unix

package secmem

// mlock is a no-op on platforms without an mlock(2) equivalent wired up
// here; SecureBytes still zeroes its buffer on Destroy, it just can't also
// promise the pages never hit swap.
func mlock(buf []byte) bool {
	return false
}

func munlock(buf []byte) {}
