package accounts

import (
	"context"

	"github.com/dmitrijs2005/otpkeeper/internal/models"
)

type Repository interface {
	// Load returns a fresh copy of the stored list. A store that has never
	// been saved returns an empty list.
	Load(ctx context.Context) ([]models.Account, error)
	// Save replaces the stored list.
	Save(ctx context.Context, accounts []models.Account) error
	// Close releases resources, including any held password.
	Close() error
}
