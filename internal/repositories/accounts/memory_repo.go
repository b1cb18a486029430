package accounts

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/otpkeeper/internal/models"
)

// MemoryRepository keeps the list in memory. Load and Save copy the slice,
// so callers never share state with the store.
type MemoryRepository struct {
	mu       sync.Mutex
	accounts []models.Account
	saves    int
	closed   bool
}

func NewMemoryRepository(initial ...models.Account) *MemoryRepository {
	return &MemoryRepository{accounts: slices.Clone(initial)}
}

func (r *MemoryRepository) Load(ctx context.Context) ([]models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, ErrClosed
	}
	out := make([]models.Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}

func (r *MemoryRepository) Save(ctx context.Context, accounts []models.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	r.accounts = slices.Clone(accounts)
	r.saves++
	return nil
}

// Saves returns how many times Save succeeded.
func (r *MemoryRepository) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

func (r *MemoryRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}
