package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/otpkeeper/internal/models"
	"github.com/dmitrijs2005/otpkeeper/internal/totp"
)

var ErrNoSuchAccount = errors.New("no such account")

const nameWidth = 20

// List prints every account with a masked code and the time left in the
// current window.
func (a *App) List(ctx context.Context) error {
	list, err := a.accounts.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No accounts found. Add your first account!")
		return nil
	}

	fmt.Fprintf(a.out, "Time to new codes: %2ds\n", totp.RemainingSeconds())
	for i, acc := range list {
		fmt.Fprintf(a.out, "%d. %-*s ******\n", i+1, nameWidth, acc.Name)
	}
	return nil
}

// Show prints the current code of the selected account.
func (a *App) Show(ctx context.Context, args []string) error {
	acc, err := a.selectAccount(ctx, args)
	if err != nil {
		return err
	}
	code, err := totp.GenerateCode(acc.Secret)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s: %s (%ds left)\n", acc.Name, code, totp.RemainingSeconds())
	return nil
}

// Add prompts for a name and a secret, shows a preview code and stores the
// account once the user confirms it matches the issuer.
func (a *App) Add(ctx context.Context) error {
	fmt.Fprintln(a.out, "--- Add New Account ---")
	name, err := GetSimpleText(a.reader, "Account name:", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		fmt.Fprintln(a.out, "Invalid name.")
		return nil
	}

	secret, err := GetSimpleText(a.reader, "Secret key (Base32):", a.out)
	if err != nil {
		return err
	}
	secret = strings.NewReplacer(" ", "", "-", "").Replace(secret)
	if secret == "" {
		fmt.Fprintln(a.out, "Invalid secret.")
		return nil
	}

	return a.confirmAndAdd(ctx, name, secret)
}

// Import adds an account described by an otpauth://totp URI.
func (a *App) Import(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: import <otpauth-uri>")
	}
	name, secret, err := totp.ParseKeyURI(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "ERROR: Invalid or unsupported otpauth URI.")
		a.log.Debug(ctx, "import rejected", "error", err)
		return nil
	}
	return a.confirmAndAdd(ctx, name, secret)
}

func (a *App) confirmAndAdd(ctx context.Context, name, secret string) error {
	if !a.accounts.ValidateSecret(secret) {
		fmt.Fprintln(a.out, "ERROR: Invalid secret key format.")
		return nil
	}
	code, err := a.accounts.TestCode(secret)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Test code: %s\n", code)
	if !Confirm(a.reader, "Does this match your authenticator app?", a.out) {
		fmt.Fprintln(a.out, "Account not added.")
		return nil
	}

	ok, err := a.accounts.Add(ctx, name, secret)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(a.out, "ERROR: Failed to add account %q (name already in use?).\n", name)
		return nil
	}
	fmt.Fprintln(a.out, "Account added successfully!")
	return nil
}

// Delete removes the selected account after confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	acc, err := a.selectAccount(ctx, args)
	if err != nil {
		return err
	}
	if !Confirm(a.reader, fmt.Sprintf("Remove account %q?", acc.Name), a.out) {
		fmt.Fprintln(a.out, "Account removal cancelled.")
		return nil
	}

	ok, err := a.accounts.Remove(ctx, acc.Name)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "ERROR: Failed to remove account.")
		return nil
	}
	fmt.Fprintln(a.out, "Account removed successfully!")
	return nil
}

// selectAccount resolves args to an account: a number is a 1-based position
// in the list, anything else is a name matched ignoring case.
func (a *App) selectAccount(ctx context.Context, args []string) (models.Account, error) {
	if len(args) == 0 {
		return models.Account{}, errors.New("account number or name required")
	}
	list, err := a.accounts.List(ctx)
	if err != nil {
		return models.Account{}, err
	}
	return resolve(list, strings.Join(args, " "))
}

func resolve(list []models.Account, ref string) (models.Account, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(list) {
			return models.Account{}, fmt.Errorf("%w: %d (have %d)", ErrNoSuchAccount, n, len(list))
		}
		return list[n-1], nil
	}
	if i := models.IndexOf(list, ref); i >= 0 {
		return list[i], nil
	}
	return models.Account{}, fmt.Errorf("%w: %q", ErrNoSuchAccount, ref)
}
