package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/dmitrijs2005/otpkeeper/internal/common"
)

// readPassword and isTerminal are test seams for golang.org/x/term.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The line is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	return readLine(reader)
}

// Confirm asks a yes/no question and reports whether the answer starts
// with 'y' or 'Y'. Anything else, including EOF, is a no.
func Confirm(reader *bufio.Reader, question string, w io.Writer) bool {
	if _, err := fmt.Fprintf(w, "%s (y/n): ", question); err != nil {
		return false
	}
	answer, err := readLine(reader)
	if err != nil {
		return false
	}
	return strings.HasPrefix(answer, "y") || strings.HasPrefix(answer, "Y")
}

// GetPassword prints a password prompt to w and reads the master password.
// src is the stream reader wraps. When src is a terminal the input is read
// from it without echo; otherwise a plain line is read from reader so the
// program can be driven from a pipe.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(reader *bufio.Reader, src io.Reader, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter master password: "); err != nil {
		return nil, err
	}

	f, ok := src.(interface{ Fd() uintptr })
	if !ok || !isTerminal(int(f.Fd())) {
		return readSecretLine(reader)
	}

	pw, err := readPassword(int(f.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// readSecretLine reads one line as bytes, never as a string, and returns a
// trimmed copy. The raw line is wiped before returning.
func readSecretLine(reader *bufio.Reader) ([]byte, error) {
	raw, err := reader.ReadBytes('\n')
	defer common.WipeByteArray(raw)
	if err != nil && !(errors.Is(err, io.EOF) && len(raw) > 0) {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	out := make([]byte, len(trimmed))
	copy(out, trimmed)
	return out, nil
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
