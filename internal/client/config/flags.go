package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/otpkeeper/internal/flagx"
)

var valueFlags = []string{"-f", "-l", "-x", "-c", "-config"}

// parseFlags populates Config fields from command-line flags.
//
//	-f string   vault file path
//	-l string   log level
//	-x int      clipboard clear delay in seconds
//
// Only these flags are parsed; args is filtered through flagx.FilterArgs so
// flags owned by other loaders do not cause errors. A positional argument
// sets the vault path unless -f is also given.
func parseFlags(cfg *Config, args []string) error {
	if pos := flagx.Positional(args, valueFlags); len(pos) > 0 {
		cfg.VaultPath = pos[0]
	}

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.VaultPath, "f", cfg.VaultPath, "path to the vault file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	clearAfter := fs.Int("x", int(cfg.ClipboardClearAfter.Seconds()), "clipboard clear delay (in seconds)")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-f", "-l", "-x"})); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if *clearAfter < 0 {
		return fmt.Errorf("parse flags: negative clipboard delay %d", *clearAfter)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "x" {
			cfg.ClipboardClearAfter = time.Duration(*clearAfter) * time.Second
		}
	})
	return nil
}
