package accounts

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/otpkeeper/internal/cryptox"
	"github.com/dmitrijs2005/otpkeeper/internal/models"
	"github.com/dmitrijs2005/otpkeeper/internal/vault"
)

var ErrClosed = errors.New("repository is closed")

// VaultRepository stores the list in an encrypted vault file.
type VaultRepository struct {
	path     string
	password *cryptox.SecretBuffer
}

// NewVaultRepository copies password into a buffer owned by the repository;
// the caller may wipe its own slice immediately. Close wipes the copy.
func NewVaultRepository(path string, password []byte) *VaultRepository {
	return &VaultRepository{path: path, password: cryptox.CopySecretBuffer(password)}
}

// Path returns the vault file location.
func (r *VaultRepository) Path() string {
	return r.path
}

func (r *VaultRepository) Load(ctx context.Context) ([]models.Account, error) {
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	return vault.LoadList(r.path, r.password.Bytes())
}

func (r *VaultRepository) Save(ctx context.Context, accounts []models.Account) error {
	if err := r.check(ctx); err != nil {
		return err
	}
	return vault.SaveList(r.path, r.password.Bytes(), accounts)
}

func (r *VaultRepository) Close() error {
	r.password.Wipe()
	return nil
}

func (r *VaultRepository) check(ctx context.Context) error {
	if r.password.Wiped() {
		return ErrClosed
	}
	return ctx.Err()
}
