package totp

import (
	"testing"

	"github.com/dmitrijs2005/otpkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyURI(t *testing.T) {
	uri, err := KeyURI("github", "gezd-gnbv gy3t-qojq")
	require.NoError(t, err)
	assert.Equal(t, "otpauth://totp/github?algorithm=SHA1&digits=6&period=30&secret=GEZDGNBVGY3TQOJQ", uri)

	_, err = KeyURI("", "GEZDGNBVGY3TQOJQ")
	assert.ErrorIs(t, err, ErrUnsupportedKey)

	_, err = KeyURI("github", "!!")
	assert.ErrorIs(t, err, common.ErrInvalidSecretFormat)
}

func TestParseKeyURI(t *testing.T) {
	tests := []struct {
		name       string
		uri        string
		wantName   string
		wantSecret string
		wantErr    error
	}{
		{
			name:       "plain label",
			uri:        "otpauth://totp/github?secret=GEZDGNBVGY3TQOJQ",
			wantName:   "github",
			wantSecret: "GEZDGNBVGY3TQOJQ",
		},
		{
			name:       "issuer and account",
			uri:        "otpauth://totp/ACME%20Co:john@example.com?secret=GEZDGNBVGY3TQOJQ&issuer=ACME%20Co&algorithm=SHA1&digits=6&period=30",
			wantName:   "ACME Co:john@example.com",
			wantSecret: "GEZDGNBVGY3TQOJQ",
		},
		{
			name:    "hotp rejected",
			uri:     "otpauth://hotp/github?secret=GEZDGNBVGY3TQOJQ&counter=1",
			wantErr: ErrUnsupportedKey,
		},
		{
			name:    "sha256 rejected",
			uri:     "otpauth://totp/github?secret=GEZDGNBVGY3TQOJQ&algorithm=SHA256",
			wantErr: ErrUnsupportedKey,
		},
		{
			name:    "eight digits rejected",
			uri:     "otpauth://totp/github?secret=GEZDGNBVGY3TQOJQ&digits=8",
			wantErr: ErrUnsupportedKey,
		},
		{
			name:    "60s period rejected",
			uri:     "otpauth://totp/github?secret=GEZDGNBVGY3TQOJQ&period=60",
			wantErr: ErrUnsupportedKey,
		},
		{
			name:    "bad secret",
			uri:     "otpauth://totp/github?secret=ABC1",
			wantErr: common.ErrInvalidSecretFormat,
		},
		{
			name:    "missing secret",
			uri:     "otpauth://totp/github",
			wantErr: common.ErrInvalidSecretFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, secret, err := ParseKeyURI(tt.uri)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantSecret, secret)
		})
	}
}

func TestKeyURI_ParseBack(t *testing.T) {
	uri, err := KeyURI("ACME:alice", "GEZDGNBVGY3TQOJQ")
	require.NoError(t, err)

	name, secret, err := ParseKeyURI(uri)
	require.NoError(t, err)
	assert.Equal(t, "ACME:alice", name)
	assert.Equal(t, "GEZDGNBVGY3TQOJQ", secret)
}
