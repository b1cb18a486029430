// Package base32x decodes user-supplied TOTP secrets.
//
// Secrets are accepted the way authenticator setup pages show them: any case,
// grouped with spaces or hyphens. The decoder is strict. It never skips a bad
// character or guesses what a damaged secret was meant to be.
package base32x

import (
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/otpkeeper/internal/common"
)

// Alphabet is the RFC 4648 Base32 alphabet.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

var encoding = base32.NewEncoding(Alphabet).WithPadding(base32.NoPadding)

var cleaner = strings.NewReplacer(" ", "", "-", "")

// Normalize strips spaces and hyphens and upper-cases ASCII letters in s.
// Other runes are left alone so Decode can reject them; Unicode case folding
// would turn 'ı' into 'I' and 'ſ' into 'S'.
func Normalize(s string) string {
	return strings.Map(asciiUpper, cleaner.Replace(s))
}

func asciiUpper(r rune) rune {
	if 'a' <= r && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

// Decode returns the raw key bytes encoded in secret.
//
// It fails with common.ErrInvalidSecretFormat when the cleaned input is empty,
// contains a character outside Alphabet (padding '=' included), leaves a
// trailing group of 5 to 7 bits, or decodes to zero bytes.
func Decode(secret string) ([]byte, error) {
	s := Normalize(secret)
	if s == "" {
		return nil, fmt.Errorf("%w: empty secret", common.ErrInvalidSecretFormat)
	}

	for i, r := range s {
		if !strings.ContainsRune(Alphabet, r) {
			return nil, fmt.Errorf("%w: illegal character at position %d", common.ErrInvalidSecretFormat, i)
		}
	}

	// 5 bits per character; a tail of 5..7 bits cannot come from a real encoder.
	if rem := (len(s) * 5) % 8; rem >= 5 {
		return nil, fmt.Errorf("%w: invalid length %d", common.ErrInvalidSecretFormat, len(s))
	}

	key, err := encoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidSecretFormat, err)
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: secret decodes to no bytes", common.ErrInvalidSecretFormat)
	}

	return key, nil
}

// Encode returns the unpadded Base32 form of key.
func Encode(key []byte) string {
	return encoding.EncodeToString(key)
}
