package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	base := Config{VaultPath: "/default.json", LogLevel: "info", ClipboardClearAfter: 1500 * time.Millisecond}

	tests := []struct {
		name    string
		args    []string
		want    Config
		wantErr bool
	}{
		{
			name: "no args keeps values",
			args: nil,
			want: base,
		},
		{
			name: "all flags",
			args: []string{"-f", "/a.json", "-l", "debug", "-x", "10"},
			want: Config{VaultPath: "/a.json", LogLevel: "debug", ClipboardClearAfter: 10 * time.Second},
		},
		{
			name: "positional vault path",
			args: []string{"-l", "warn", "/pos.json"},
			want: Config{VaultPath: "/pos.json", LogLevel: "warn", ClipboardClearAfter: base.ClipboardClearAfter},
		},
		{
			name: "flag beats positional",
			args: []string{"/pos.json", "-f", "/flag.json"},
			want: Config{VaultPath: "/flag.json", LogLevel: "info", ClipboardClearAfter: base.ClipboardClearAfter},
		},
		{
			name: "config flag is not positional",
			args: []string{"-c", "/cfg.json"},
			want: base,
		},
		{
			name:    "bad delay",
			args:    []string{"-x", "abc"},
			wantErr: true,
		},
		{
			name:    "negative delay",
			args:    []string{"-x=-3"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			err := parseFlags(&cfg, tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.want, cfg))
		})
	}
}
