package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/dmitrijs2005/otpkeeper/internal/totp"
)

// Clipboard and timer seams; tests replace them to avoid touching the
// system clipboard or waiting on real timers.
var (
	writeClipboard = clipboard.WriteAll
	readClipboard  = clipboard.ReadAll
	afterFunc      = func(d time.Duration, f func()) stopper { return time.AfterFunc(d, f) }
)

type stopper interface {
	Stop() bool
}

type pendingClear struct {
	code  string
	timer stopper
}

// Copy puts the current code of the selected account on the clipboard and
// schedules it to be cleared.
func (a *App) Copy(ctx context.Context, args []string) error {
	acc, err := a.selectAccount(ctx, args)
	if err != nil {
		return err
	}
	code, err := totp.GenerateCode(acc.Secret)
	if err != nil {
		return err
	}
	if err := writeClipboard(code); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}

	a.scheduleClear(ctx, code)
	fmt.Fprintf(a.out, "Code for %s copied to clipboard!\n", acc.Name)
	return nil
}

// scheduleClear replaces any pending clear with one for code. A zero delay
// leaves the clipboard alone.
func (a *App) scheduleClear(ctx context.Context, code string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.pending != nil {
		a.pending.timer.Stop()
		a.pending = nil
	}

	delay := a.config.ClipboardClearAfter
	if delay <= 0 {
		return
	}

	p := &pendingClear{code: code}
	a.pending = p
	p.timer = afterFunc(delay, func() {
		a.mu.Lock()
		if a.pending == p {
			a.pending = nil
		}
		a.mu.Unlock()
		a.clearIfUnchanged(ctx, code)
	})
}

// flushClipboard runs a pending clear immediately.
func (a *App) flushClipboard(ctx context.Context) {
	a.mu.Lock()
	p := a.pending
	a.pending = nil
	a.mu.Unlock()

	if p == nil {
		return
	}
	if p.timer.Stop() {
		a.clearIfUnchanged(ctx, p.code)
	}
}

// clearIfUnchanged empties the clipboard only while it still holds code,
// so anything the user copied in the meantime survives.
func (a *App) clearIfUnchanged(ctx context.Context, code string) {
	current, err := readClipboard()
	if err != nil {
		a.log.Warn(ctx, "read clipboard", "error", err)
		return
	}
	if current != code {
		return
	}
	if err := writeClipboard(""); err != nil {
		a.log.Warn(ctx, "clear clipboard", "error", err)
		return
	}
	a.log.Debug(ctx, "clipboard cleared")
}
