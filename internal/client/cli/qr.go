package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/skip2/go-qrcode"

	"github.com/dmitrijs2005/otpkeeper/internal/filex"
	"github.com/dmitrijs2005/otpkeeper/internal/totp"
)

const qrSize = 256

// QR writes the selected account's otpauth URI as a PNG so it can be scanned
// into another authenticator. The image carries the secret, so the file is
// created with owner-only permissions.
func (a *App) QR(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: qr <n|name> <file.png>")
	}
	path := args[len(args)-1]

	acc, err := a.selectAccount(ctx, args[:len(args)-1])
	if err != nil {
		return err
	}
	uri, err := totp.KeyURI(acc.Name, acc.Secret)
	if err != nil {
		return err
	}

	png, err := qrcode.Encode(uri, qrcode.Medium, qrSize)
	if err != nil {
		return fmt.Errorf("encode qr: %w", err)
	}
	if err := filex.WriteFileAtomic(path, png, 0o600); err != nil {
		return err
	}

	a.log.Info(ctx, "qr code written", "account", acc.Name, "path", path)
	fmt.Fprintf(a.out, "QR code for %s saved to %s\n", acc.Name, path)
	return nil
}
