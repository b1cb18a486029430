// Package common defines the sentinel errors shared by the codec, vault,
// repository and CLI layers of otpkeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Secret validation errors. Recoverable: the caller should re-prompt.
	ErrInvalidSecretFormat = errors.New("invalid secret format")

	// Vault errors.
	//
	// ErrMalformedEnvelope is reported by envelope parsing only. At the vault
	// boundary it is folded into ErrVaultUnreadable, so a wrong password and a
	// corrupted file look the same to the caller.
	ErrMalformedEnvelope = errors.New("malformed vault envelope")
	ErrVaultUnreadable   = errors.New("invalid password or corrupted database")

	// Storage errors (permissions, disk full, bad path). Never retried.
	ErrIoFailure = errors.New("storage failure")
)
