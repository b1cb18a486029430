package config

import (
	"os"
	"path/filepath"
	"time"
)

// DefaultVaultFile is the vault file name used under the user's home
// directory when no path is configured.
const DefaultVaultFile = "otp-accounts.json"

// Config holds runtime settings for the otpkeeper CLI.
//
// Fields:
//   - VaultPath: location of the encrypted accounts file.
//   - LogLevel: debug, info, warn or error.
//   - ClipboardClearAfter: delay before a copied code is wiped from the
//     clipboard; zero disables clearing.
type Config struct {
	VaultPath           string        `env:"OTPKEEPER_VAULT"`
	LogLevel            string        `env:"OTPKEEPER_LOG_LEVEL"`
	ClipboardClearAfter time.Duration `env:"OTPKEEPER_CLIPBOARD_CLEAR_AFTER"`
}

var userHomeDir = os.UserHomeDir

// LoadDefaults populates c with sensible defaults. If the home directory
// cannot be resolved the vault lives in the working directory.
func (c *Config) LoadDefaults() {
	home, err := userHomeDir()
	if err != nil {
		home = "."
	}
	c.VaultPath = filepath.Join(home, DefaultVaultFile)
	c.LogLevel = "info"
	c.ClipboardClearAfter = 20 * time.Second
}

// LoadConfig constructs a Config from defaults, then overlays the JSON file,
// the environment and finally args (usually os.Args[1:]). Later sources take
// precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, nil); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
