package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/otpkeeper/internal/flagx"
	"github.com/dmitrijs2005/otpkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "empty".
type JsonConfig struct {
	VaultPath           *string         `json:"vault_path"`
	LogLevel            *string         `json:"log_level"`
	ClipboardClearAfter *timex.Duration `json:"clipboard_clear_after"`
}

// parseJSON overlays cfg with values from the file named by -c/-config in
// args. Without either flag nothing happens.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.VaultPath != nil {
		cfg.VaultPath = *jc.VaultPath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.ClipboardClearAfter != nil {
		cfg.ClipboardClearAfter = jc.ClipboardClearAfter.Duration
	}
	return nil
}
