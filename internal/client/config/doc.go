// Package config loads runtime configuration for the otpkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables OTPKEEPER_VAULT, OTPKEEPER_LOG_LEVEL and
//     OTPKEEPER_CLIPBOARD_CLEAR_AFTER.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-f string   path to the vault file
//	-l string   log level (debug, info, warn, error)
//	-x int      clipboard clear delay in seconds, 0 disables
//
// A single positional argument is accepted as the vault path, so
// "otpkeeper ~/work.json" works like "otpkeeper -f ~/work.json". When both
// are given, -f wins.
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "20s" or integer
// nanoseconds:
//
//	{
//	  "vault_path": "/home/me/otp-accounts.json",
//	  "log_level": "debug",
//	  "clipboard_clear_after": "20s"
//	}
//
// Fields missing from the file keep their previous value.
package config
