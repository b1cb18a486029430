package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Import(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Copy(ctx context.Context, args []string) error
	QR(ctx context.Context, args []string) error
}

const helpText = `Available commands:
  (l)ist                 list accounts
  (s)how <n|name>        show the current code
  (a)dd                  add an account
  import <otpauth-uri>   add an account from a URI
  (d)elete <n|name>      remove an account
  (c)opy <n|name>        copy the current code to the clipboard
  qr <n|name> <file>     save the account as a QR code PNG
  help                   show this help
  exit | quit            leave the program`

// runREPL reads commands line by line from reader and dispatches them to a,
// writing prompts and messages to w. Errors returned by handlers are printed
// and the loop continues. The loop exits on EOF, on "exit" or "quit", or when
// ctx is cancelled.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, w io.Writer) {
	say := func(args ...any) { fmt.Fprintln(w, args...) }

	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprint(w, "otp> ")
		line, err := readLine(reader)
		if err != nil {
			say()
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help", "?":
			say(helpText)
		case "l", "list":
			err = a.List(ctx)
		case "s", "show":
			err = a.Show(ctx, args)
		case "a", "add":
			err = a.Add(ctx)
		case "import":
			err = a.Import(ctx, args)
		case "d", "delete":
			err = a.Delete(ctx, args)
		case "c", "copy":
			err = a.Copy(ctx, args)
		case "qr":
			err = a.QR(ctx, args)
		case "exit", "quit", "q":
			say("Bye!")
			return
		default:
			say("Unknown command:", cmd)
		}

		if err != nil {
			say("Error:", err)
		}
	}
}
