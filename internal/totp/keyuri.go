package totp

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/otpkeeper/internal/base32x"
	"github.com/pquerna/otp"
)

// ErrUnsupportedKey is returned for otpauth URIs describing keys this engine
// cannot generate codes for (HOTP, non-SHA1, other digit counts or periods).
var ErrUnsupportedKey = errors.New("totp: unsupported key")

// KeyURI builds an otpauth://totp URI for name and secret, following the
// Key Uri Format used by authenticator apps. Spaces and hyphens are removed
// from the secret; it is otherwise exported as stored.
func KeyURI(name, secret string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: empty account name", ErrUnsupportedKey)
	}
	if _, err := base32x.Decode(secret); err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("secret", base32x.Normalize(secret))
	query.Set("algorithm", "SHA1")
	query.Set("digits", strconv.Itoa(Digits))
	query.Set("period", strconv.Itoa(Period))

	return fmt.Sprintf("otpauth://totp/%s?%s", url.PathEscape(name), query.Encode()), nil
}

// ParseKeyURI extracts an account name and secret from an otpauth URI.
//
// The name is "issuer:account" when the URI carries an issuer, else the
// account label alone. The secret is validated with the strict decoder.
func ParseKeyURI(uri string) (name, secret string, err error) {
	key, err := otp.NewKeyFromURL(strings.TrimSpace(uri))
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrUnsupportedKey, err)
	}

	if key.Type() != "totp" {
		return "", "", fmt.Errorf("%w: type %q", ErrUnsupportedKey, key.Type())
	}
	if alg := key.Algorithm(); alg != otp.AlgorithmSHA1 {
		return "", "", fmt.Errorf("%w: algorithm %s", ErrUnsupportedKey, alg)
	}
	if d := key.Digits(); d != otp.DigitsSix {
		return "", "", fmt.Errorf("%w: %d digits", ErrUnsupportedKey, d.Length())
	}
	if p := key.Period(); p != Period {
		return "", "", fmt.Errorf("%w: period %ds", ErrUnsupportedKey, p)
	}

	secret = key.Secret()
	if _, err := base32x.Decode(secret); err != nil {
		return "", "", err
	}

	name = key.AccountName()
	if issuer := key.Issuer(); issuer != "" {
		if name == "" {
			name = issuer
		} else {
			name = issuer + ":" + name
		}
	}
	if strings.TrimSpace(name) == "" {
		return "", "", fmt.Errorf("%w: no account name", ErrUnsupportedKey)
	}

	return name, secret, nil
}
