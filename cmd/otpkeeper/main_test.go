package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/otpkeeper/internal/models"
	"github.com/dmitrijs2005/otpkeeper/internal/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"OTPKEEPER_VAULT", "OTPKEEPER_LOG_LEVEL", "OTPKEEPER_CLIPBOARD_CLEAR_AFTER"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestRun_NewVaultSession(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "vault.json")

	var stdout, stderr bytes.Buffer
	stdin := strings.NewReader("pw\nadd\ngithub\nGEZDGNBVGY3TQOJQ\ny\nlist\nexit\n")

	code := run(context.Background(), []string{"-f", path, "-l", "error"}, stdin, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Account added successfully!")
	assert.Contains(t, stdout.String(), "1. github")

	list, err := vault.LoadList(path, []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, []models.Account{{Name: "github", Secret: "GEZDGNBVGY3TQOJQ"}}, list)
}

func TestRun_WrongPassword(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "vault.json")
	require.NoError(t, vault.SaveList(path, []byte("right"), []models.Account{{Name: "a", Secret: "GEZDGNBVGY3TQOJQ"}}))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{path}, strings.NewReader("wrong\n"), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Invalid password or corrupted database")
}

func TestRun_CorruptedVault(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "vault.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	var stderr bytes.Buffer
	code := run(context.Background(), []string{"-f", path}, strings.NewReader("pw\n"), &bytes.Buffer{}, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Invalid password or corrupted database")
}

func TestRun_EnvelopeMissingFields(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "vault.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Salt":"AAAAAAAAAAAAAAAAAAAAAA=="}`), 0o600))

	var stderr bytes.Buffer
	code := run(context.Background(), []string{"-f", path, "-l", "error"}, strings.NewReader("pw\n"), &bytes.Buffer{}, &stderr)

	assert.Equal(t, 1, code)
	assert.Equal(t, "Invalid password or corrupted database\n", stderr.String())
}

func TestRun_BadConfig(t *testing.T) {
	clearEnv(t)
	var stderr bytes.Buffer
	code := run(context.Background(), []string{"-x", "abc"}, strings.NewReader(""), &bytes.Buffer{}, &stderr)
	assert.Equal(t, 2, code)
}

func TestRun_NoPassword(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "vault.json")
	code := run(context.Background(), []string{"-f", path}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	assert.Equal(t, 1, code)
}
