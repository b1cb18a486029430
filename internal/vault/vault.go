// Package vault encrypts the account list under a master password and
// defines the on-disk envelope.
//
// Each Encrypt draws a fresh random salt and IV, derives an AES-256 key with
// PBKDF2-HMAC-SHA256 and encrypts with AES-256-CBC. The derived key never
// leaves the call that derived it and is wiped before returning.
//
// Decryption failures are opaque: a wrong password, a damaged
// ciphertext and a malformed file all surface as common.ErrVaultUnreadable
// from LoadList.
//
// There is no file locking. Two processes saving the same vault race and the
// last writer wins.
package vault

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/dmitrijs2005/otpkeeper/internal/common"
	"github.com/dmitrijs2005/otpkeeper/internal/cryptox"
	"github.com/dmitrijs2005/otpkeeper/internal/filex"
	"github.com/dmitrijs2005/otpkeeper/internal/models"
)

// FileMode is the permission used for vault files.
const FileMode = 0o600

// randBytes is a test seam for the random source.
var randBytes = common.GenerateRandByteArray

// Encrypt seals plaintext under password into a new Envelope.
func Encrypt(plaintext string, password []byte) (*Envelope, error) {
	salt, err := randBytes(cryptox.SaltSize)
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	iv, err := randBytes(cryptox.IVSize)
	if err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}

	key := cryptox.DeriveKey(password, salt)
	defer key.Wipe()

	pt := cryptox.NewSecretBuffer([]byte(plaintext))
	defer pt.Wipe()

	ciphertext, err := cryptox.EncryptCBC(key.Bytes(), iv, pt.Bytes())
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}

	return &Envelope{
		Salt: base64.StdEncoding.EncodeToString(salt),
		Iv:   base64.StdEncoding.EncodeToString(iv),
		Data: base64.StdEncoding.EncodeToString(ciphertext),
	}, nil
}

// Decrypt opens env with password.
//
// A structurally invalid envelope yields common.ErrMalformedEnvelope. Any
// cryptographic failure, including a wrong password, yields
// common.ErrVaultUnreadable with no further detail. Plaintext that is not
// valid UTF-8 counts as a cryptographic failure.
func Decrypt(env *Envelope, password []byte) (string, error) {
	d, err := env.decode()
	if err != nil {
		return "", err
	}

	key := cryptox.DeriveKey(password, d.salt)
	defer key.Wipe()

	plaintext, err := cryptox.DecryptCBC(key.Bytes(), d.iv, d.data)
	if err != nil {
		return "", common.ErrVaultUnreadable
	}
	defer common.WipeByteArray(plaintext)

	// A wrong key still passes the padding check about once in 256 tries;
	// the stored list is always UTF-8, random bytes almost never are.
	if !utf8.Valid(plaintext) {
		return "", common.ErrVaultUnreadable
	}

	return string(plaintext), nil
}

// LoadList reads and decrypts the account list stored at path.
//
// A missing file is a first run and returns an empty list. I/O errors are
// wrapped with common.ErrIoFailure; every parse, decrypt or decode failure is
// common.ErrVaultUnreadable.
func LoadList(path string, password []byte) ([]models.Account, error) {
	raw, err := readFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.Account{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", common.ErrIoFailure, path, err)
	}

	env, err := ParseEnvelope(raw)
	if err != nil {
		return nil, common.ErrVaultUnreadable
	}

	plaintext, err := Decrypt(env, password)
	if err != nil {
		return nil, common.ErrVaultUnreadable
	}

	var accounts []models.Account
	if err := json.Unmarshal([]byte(plaintext), &accounts); err != nil {
		return nil, common.ErrVaultUnreadable
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	return accounts, nil
}

// SaveList encrypts accounts under password with a fresh salt and IV and
// atomically replaces the file at path.
func SaveList(path string, password []byte, accounts []models.Account) error {
	if accounts == nil {
		accounts = []models.Account{}
	}

	plaintext, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}
	defer common.WipeByteArray(plaintext)

	env, err := Encrypt(string(plaintext), password)
	if err != nil {
		return err
	}

	data, err := env.Marshal()
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}

	if err := filex.WriteFileAtomic(path, data, FileMode); err != nil {
		return fmt.Errorf("%w: %w", common.ErrIoFailure, err)
	}
	return nil
}

// readFile reads at most MaxEnvelopeSize+1 bytes, enough for ParseEnvelope
// to reject an oversized file without loading all of it.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(io.LimitReader(f, MaxEnvelopeSize+1))
}
