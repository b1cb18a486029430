// Package cryptox holds the primitives behind the vault file: PBKDF2 key
// derivation and AES-256-CBC with PKCS#7 padding.
package cryptox

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"errors"

	"github.com/dmitrijs2005/otpkeeper/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	SaltSize   = 16
	IVSize     = aes.BlockSize
	KeySize    = 32 // AES-256
	Iterations = 100_000
)

var (
	ErrInvalidKeySize = errors.New("invalid key size")
	ErrInvalidIVSize  = errors.New("invalid iv size")
	ErrBadCiphertext  = errors.New("ciphertext is not a whole number of blocks")
	ErrBadPadding     = errors.New("invalid padding")
)

// DeriveKey derives a KeySize key from password and salt with
// PBKDF2-HMAC-SHA256 and Iterations rounds. The caller must Wipe the result.
func DeriveKey(password, salt []byte) *SecretBuffer {
	return NewSecretBuffer(pbkdf2.Key(password, salt, Iterations, KeySize, sha256.New))
}

// EncryptCBC pads plaintext with PKCS#7 and encrypts it with AES-256-CBC.
func EncryptCBC(key, iv, plaintext []byte) ([]byte, error) {
	block, err := newBlock(key, iv)
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	defer common.WipeByteArray(padded)

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)
	return ciphertext, nil
}

// DecryptCBC reverses EncryptCBC. A wrong key almost always shows up as
// ErrBadPadding.
func DecryptCBC(key, iv, ciphertext []byte) ([]byte, error) {
	block, err := newBlock(key, iv)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, ErrBadCiphertext
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	plaintext, err := pkcs7Unpad(padded, aes.BlockSize)
	if err != nil {
		common.WipeByteArray(padded)
		return nil, err
	}
	return plaintext, nil
}

func newBlock(key, iv []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}
	if len(iv) != IVSize {
		return nil, ErrInvalidIVSize
	}
	return aes.NewCipher(key)
}

func pkcs7Pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	out := make([]byte, len(b), len(b)+n)
	copy(out, b)
	return append(out, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte, blockSize int) ([]byte, error) {
	if len(b) == 0 || len(b)%blockSize != 0 {
		return nil, ErrBadPadding
	}
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize {
		return nil, ErrBadPadding
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, ErrBadPadding
		}
	}
	return b[:len(b)-n], nil
}
