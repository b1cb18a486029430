package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/otpkeeper/internal/client/config"
	"github.com/dmitrijs2005/otpkeeper/internal/logging"
	"github.com/dmitrijs2005/otpkeeper/internal/services"
)

type App struct {
	config   *config.Config
	accounts services.AccountService
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer

	mu      sync.Mutex
	pending *pendingClear
}

// NewApp builds an App reading commands from in and writing to out.
// A nil in or out means os.Stdin or os.Stdout. Passing a *bufio.Reader lets
// the caller prompt on the same buffered stream before Run starts.
func NewApp(c *config.Config, svc services.AccountService, log logging.Logger, in io.Reader, out io.Writer) *App {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &App{
		config:   c,
		accounts: svc,
		log:      log,
		reader:   bufio.NewReader(in),
		out:      out,
	}
}

// Run prints the banner and the account list, then blocks in the REPL until
// the user exits. Any code still waiting to be cleared from the clipboard is
// cleared before Run returns.
func (a *App) Run(ctx context.Context) {
	defer a.flushClipboard(ctx)

	fmt.Fprintln(a.out, "otpkeeper - one-time password generator (type 'help' for commands)")
	fmt.Fprintln(a.out, a.databaseInfo())
	if err := a.List(ctx); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
	}

	runREPL(ctx, a, a.reader, a.out)
}

func (a *App) databaseInfo() string {
	status := ""
	if _, err := os.Stat(a.config.VaultPath); err != nil {
		status = " (new)"
	}
	return fmt.Sprintf("Database: %s%s", a.config.VaultPath, status)
}
