package cryptox

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt-16byt")

	key1 := DeriveKey(password, salt)
	defer key1.Wipe()
	key2 := DeriveKey(password, salt)
	defer key2.Wipe()

	require.Equal(t, KeySize, key1.Len())
	if !bytes.Equal(key1.Bytes(), key2.Bytes()) {
		t.Errorf("expected same result for same inputs, got different")
	}
}

func TestDeriveKey_DifferentInputs(t *testing.T) {
	password := []byte("secret-password")

	key1 := DeriveKey(password, []byte("salt-1"))
	defer key1.Wipe()
	key2 := DeriveKey(password, []byte("salt-2"))
	defer key2.Wipe()
	key3 := DeriveKey([]byte("other-password"), []byte("salt-1"))
	defer key3.Wipe()

	assert.NotEqual(t, key1.Bytes(), key2.Bytes(), "different salts must give different keys")
	assert.NotEqual(t, key1.Bytes(), key3.Bytes(), "different passwords must give different keys")
}

func TestEncryptCBC_NISTVector(t *testing.T) {
	// SP 800-38A F.2.5, first block; PKCS#7 appends one full padding block.
	key := mustHex(t, "603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4")
	iv := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	plaintext := mustHex(t, "6bc1bee22e409f96e93d7e117393172a")

	ct, err := EncryptCBC(key, iv, plaintext)
	require.NoError(t, err)
	require.Len(t, ct, 32)
	assert.Equal(t, "f58c4c04d6e5f1ba779eabfb5f7bfbd6", hex.EncodeToString(ct[:16]))

	pt, err := DecryptCBC(key, iv, ct)
	require.NoError(t, err)
	assert.Equal(t, plaintext, pt)
}

func TestEncryptDecryptCBC_Lengths(t *testing.T) {
	key := bytes.Repeat([]byte{7}, KeySize)
	iv := bytes.Repeat([]byte{9}, IVSize)

	for _, n := range []int{0, 1, 15, 16, 17, 31, 32, 100} {
		plaintext := bytes.Repeat([]byte{'x'}, n)
		ct, err := EncryptCBC(key, iv, plaintext)
		require.NoError(t, err)
		require.Equal(t, 0, len(ct)%IVSize)
		require.Greater(t, len(ct), n)

		pt, err := DecryptCBC(key, iv, ct)
		require.NoError(t, err)
		require.Equal(t, plaintext, pt, "n=%d", n)
	}
}

func TestDecryptCBC_Errors(t *testing.T) {
	key := bytes.Repeat([]byte{7}, KeySize)
	iv := bytes.Repeat([]byte{9}, IVSize)
	ct, err := EncryptCBC(key, iv, []byte("hello"))
	require.NoError(t, err)

	_, err = DecryptCBC(key[:16], iv, ct)
	assert.ErrorIs(t, err, ErrInvalidKeySize)

	_, err = DecryptCBC(key, iv[:8], ct)
	assert.ErrorIs(t, err, ErrInvalidIVSize)

	_, err = DecryptCBC(key, iv, ct[:10])
	assert.ErrorIs(t, err, ErrBadCiphertext)

	_, err = DecryptCBC(key, iv, nil)
	assert.ErrorIs(t, err, ErrBadCiphertext)

	wrongKey := bytes.Repeat([]byte{8}, KeySize)
	pt, err := DecryptCBC(wrongKey, iv, ct)
	if err == nil {
		// a wrong key can, rarely, still produce valid padding
		assert.NotEqual(t, []byte("hello"), pt)
	}
}

func TestPKCS7Unpad(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		want    []byte
		wantErr bool
	}{
		{name: "one byte", in: append(bytes.Repeat([]byte{'a'}, 15), 1), want: bytes.Repeat([]byte{'a'}, 15)},
		{name: "full block", in: bytes.Repeat([]byte{16}, 16), want: []byte{}},
		{name: "zero pad byte", in: append(bytes.Repeat([]byte{'a'}, 15), 0), wantErr: true},
		{name: "pad larger than block", in: append(bytes.Repeat([]byte{'a'}, 15), 17), wantErr: true},
		{name: "inconsistent pad", in: append(bytes.Repeat([]byte{'a'}, 14), 3, 2), wantErr: true},
		{name: "empty", in: nil, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pkcs7Unpad(tt.in, 16)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrBadPadding)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
