package memzero

import "runtime"

// Secret owns a sensitive byte buffer. The buffer is overwritten by Wipe, and
// again when the Secret itself becomes unreachable, so a forgotten Wipe does
// not leave key material behind until the memory is reused.
//
// A Secret must not be copied after first use; pass *Secret around.
type Secret struct {
	buf []byte
}

// NewSecret takes ownership of b. Callers must not keep other references to b.
func NewSecret(b []byte) *Secret {
	s := &Secret{buf: b}
	if len(b) > 0 {
		runtime.AddCleanup(s, Zero, b)
	}
	return s
}

// Bytes returns the underlying buffer, or nil once wiped.
func (s *Secret) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.buf
}

// Len reports the buffer length (0 once wiped).
func (s *Secret) Len() int { return len(s.Bytes()) }

// Wipe zeroes the buffer and drops it. Safe to call more than once.
func (s *Secret) Wipe() {
	if s == nil || s.buf == nil {
		return
	}
	Zero(s.buf)
	s.buf = nil
}
