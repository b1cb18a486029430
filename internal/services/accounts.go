// Package services contains the application services used by the CLI.
// This file defines the account service: listing, adding and removing TOTP
// accounts, and previewing codes before an account is stored.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/otpkeeper/internal/logging"
	"github.com/dmitrijs2005/otpkeeper/internal/models"
	"github.com/dmitrijs2005/otpkeeper/internal/repositories/accounts"
	"github.com/dmitrijs2005/otpkeeper/internal/totp"
)

// AccountService manages the account list.
//
// Expected outcomes (blank input, invalid secret, duplicate name, name not
// found) are reported through the boolean result with a nil error. A non-nil
// error always means a real fault: storage I/O or an unreadable vault.
//
// Every call is a complete load, modify, save cycle; List reflects a fresh
// load each time.
type AccountService interface {
	List(ctx context.Context) ([]models.Account, error)
	Add(ctx context.Context, name, secret string) (bool, error)
	Remove(ctx context.Context, name string) (bool, error)
	ValidateSecret(secret string) bool
	TestCode(secret string) (string, error)
	Close() error
}

type accountService struct {
	repo accounts.Repository
	log  logging.Logger
}

// NewAccountService constructs an AccountService on top of repo.
func NewAccountService(repo accounts.Repository, log logging.Logger) AccountService {
	return &accountService{repo: repo, log: log.With("component", "accounts")}
}

func (s *accountService) List(ctx context.Context) ([]models.Account, error) {
	list, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	s.log.Debug(ctx, "accounts loaded", "count", len(list))
	return list, nil
}

// Add validates name and secret, then appends the account and saves.
// Names are unique ignoring case; a duplicate is rejected without saving.
func (s *accountService) Add(ctx context.Context, name, secret string) (bool, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(secret) == "" {
		return false, nil
	}
	if !s.ValidateSecret(secret) {
		s.log.Info(ctx, "rejected account with invalid secret", "name", name)
		return false, nil
	}

	list, err := s.repo.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("load accounts: %w", err)
	}
	if models.IndexOf(list, name) >= 0 {
		s.log.Info(ctx, "rejected duplicate account", "name", name)
		return false, nil
	}

	list = append(list, models.Account{Name: name, Secret: secret})
	if err := s.repo.Save(ctx, list); err != nil {
		return false, fmt.Errorf("save accounts: %w", err)
	}

	s.log.Info(ctx, "account added", "name", name, "count", len(list))
	return true, nil
}

// Remove deletes the first account whose name matches ignoring case.
func (s *accountService) Remove(ctx context.Context, name string) (bool, error) {
	if strings.TrimSpace(name) == "" {
		return false, nil
	}

	list, err := s.repo.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("load accounts: %w", err)
	}

	i := models.IndexOf(list, name)
	if i < 0 {
		return false, nil
	}
	removed := list[i].Name
	list = append(list[:i], list[i+1:]...)

	if err := s.repo.Save(ctx, list); err != nil {
		return false, fmt.Errorf("save accounts: %w", err)
	}

	s.log.Info(ctx, "account removed", "name", removed, "count", len(list))
	return true, nil
}

// ValidateSecret reports whether a code can be generated from secret.
func (s *accountService) ValidateSecret(secret string) bool {
	_, err := totp.GenerateCode(secret)
	return err == nil
}

// TestCode returns the current code for secret so the user can compare it
// with the issuing site before committing an Add.
func (s *accountService) TestCode(secret string) (string, error) {
	return totp.GenerateCode(secret)
}

func (s *accountService) Close() error {
	return s.repo.Close()
}
