// Package secmem holds secrets in memory the way the CLI boundary is
// expected to: mlock'd where the platform supports it, always zeroed on
// release. internal/gf2n and internal/shamir are value-typed per their
// design and never use this package directly; it exists for the CLI layer,
// which is the only place a parsed secret or an assembled share set lives
// as a plain byte buffer outside the field-element abstraction.
package secmem

import (
	"crypto/rand"
	"fmt"
	"runtime"
)

// RandomBytes returns n cryptographically secure random bytes, read from
// crypto/rand.Reader. Core split/uniform calls never bind a default CSPRNG:
// they take their io.Reader explicitly (see gf2n.Uniform), and the CLI is
// what supplies crypto/rand.Reader at that boundary.
func RandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("secmem: read random bytes: %w", err)
	}
	return buf, nil
}

// SecureBytes is a byte buffer that is best-effort mlock'd against swapping
// and is always zeroed before it's released. Zero value is not usable; use
// New.
type SecureBytes struct {
	buf      []byte
	locked   bool
	destroyed bool
}

// New copies data into a freshly allocated, best-effort mlock'd buffer. The
// caller retains ownership of data; New does not zero it.
func New(data []byte) *SecureBytes {
	buf := make([]byte, len(data))
	copy(buf, data)
	s := &SecureBytes{buf: buf}
	s.locked = mlock(buf)
	runtime.SetFinalizer(s, (*SecureBytes).Destroy)
	return s
}

// Bytes returns the underlying buffer. The returned slice aliases s's
// storage and becomes invalid after Destroy.
func (s *SecureBytes) Bytes() []byte {
	return s.buf
}

// Len returns the buffer length.
func (s *SecureBytes) Len() int {
	return len(s.buf)
}

// Destroy zeroes the buffer and releases its memory lock. It is safe to
// call more than once.
func (s *SecureBytes) Destroy() {
	if s.destroyed {
		return
	}
	for i := range s.buf {
		s.buf[i] = 0
	}
	if s.locked {
		munlock(s.buf)
		s.locked = false
	}
	s.destroyed = true
	runtime.SetFinalizer(s, nil)
}
