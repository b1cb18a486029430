// Package totp computes RFC 6238 time-based one-time passwords:
// HMAC-SHA1, 6 digits, 30 second steps.
//
// The *At functions are pure functions of their arguments. The others read
// the wall clock through the package-level now variable.
package totp

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/dmitrijs2005/otpkeeper/internal/base32x"
)

const (
	Period = 30 // seconds per time step
	Digits = 6
)

const modulus = 1_000_000 // 10^Digits

// now is a test seam for the wall clock.
var now = time.Now

// CounterAt returns floor(unix(t) / Period).
func CounterAt(t time.Time) int64 {
	sec := t.Unix()
	c := sec / Period
	if sec%Period < 0 {
		c--
	}
	return c
}

// RemainingSecondsAt returns the number of seconds left in the step that
// contains t. The result is in [1, Period] and equals Period right at a step
// boundary.
func RemainingSecondsAt(t time.Time) int {
	elapsed := t.Unix() % Period
	if elapsed < 0 {
		elapsed += Period
	}
	return Period - int(elapsed)
}

// CurrentCounter is CounterAt for the current time.
func CurrentCounter() int64 {
	return CounterAt(now())
}

// RemainingSeconds is RemainingSecondsAt for the current time.
func RemainingSeconds() int {
	return RemainingSecondsAt(now())
}

// HOTP implements RFC 4226 for a raw key and counter, truncated to Digits.
func HOTP(key []byte, counter int64) string {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], uint64(counter))

	mac := hmac.New(sha1.New, key)
	mac.Write(msg[:])
	hash := mac.Sum(nil)

	offset := hash[len(hash)-1] & 0x0f
	truncated := (uint32(hash[offset]&0x7f) << 24) |
		(uint32(hash[offset+1]) << 16) |
		(uint32(hash[offset+2]) << 8) |
		uint32(hash[offset+3])

	return fmt.Sprintf("%0*d", Digits, truncated%modulus)
}

// GenerateCodeAt decodes secret and returns the code for the step containing t.
// The only failure is common.ErrInvalidSecretFormat from the decoder.
func GenerateCodeAt(secret string, t time.Time) (string, error) {
	key, err := base32x.Decode(secret)
	if err != nil {
		return "", err
	}
	return HOTP(key, CounterAt(t)), nil
}

// GenerateCode returns the code for secret at the current time.
func GenerateCode(secret string) (string, error) {
	return GenerateCodeAt(secret, now())
}
