package cryptox

import "github.com/dmitrijs2005/otpkeeper/internal/common"

// SecretBuffer owns a byte slice holding a password or key.
//
// The zero value is an empty, already wiped buffer. Code that creates a
// SecretBuffer is responsible for calling Wipe, normally with defer in the
// same function.
type SecretBuffer struct {
	b []byte
}

// NewSecretBuffer takes ownership of b. The caller must not keep using b.
func NewSecretBuffer(b []byte) *SecretBuffer {
	return &SecretBuffer{b: b}
}

// CopySecretBuffer returns a buffer holding a private copy of b.
func CopySecretBuffer(b []byte) *SecretBuffer {
	c := make([]byte, len(b))
	copy(c, b)
	return &SecretBuffer{b: c}
}

// Bytes returns the underlying slice. It is only valid until Wipe.
func (s *SecretBuffer) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.b
}

// Len returns the number of bytes held.
func (s *SecretBuffer) Len() int {
	if s == nil {
		return 0
	}
	return len(s.b)
}

// Wipe zeroes and releases the buffer. It is safe to call more than once.
func (s *SecretBuffer) Wipe() {
	if s == nil {
		return
	}
	common.WipeByteArray(s.b)
	s.b = nil
}

// Wiped reports whether Wipe has been called (or the buffer was never filled).
func (s *SecretBuffer) Wiped() bool {
	return s == nil || s.b == nil
}
