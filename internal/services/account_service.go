package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"expensehero/internal/auth"
	"expensehero/internal/core"
	"expensehero/internal/storage"
)

// AccountService owns the credential workflows: registration, login and
// the display currency preference.
type AccountService struct {
	repo *storage.SQLiteRepository
}

func NewAccountService(repo *storage.SQLiteRepository) *AccountService {
	return &AccountService{repo: repo}
}

// Register validates the email shape and password length, hashes the
// password and creates the account with the default currency. A taken
// email yields core.ErrDuplicateAccount with no side effect.
func (s *AccountService) Register(ctx context.Context, email, password string) (core.Account, error) {
	if err := core.ValidateEmail(email); err != nil {
		return core.Account{}, err
	}
	if err := core.ValidatePassword(password); err != nil {
		return core.Account{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return core.Account{}, fmt.Errorf("hash password: %w", err)
	}

	acc := core.Account{
		Email:        email,
		PasswordHash: hash,
		Currency:     core.DefaultCurrency,
	}
	if err := s.repo.CreateAccount(ctx, acc); err != nil {
		return core.Account{}, err
	}

	slog.InfoContext(ctx, "Account registered", "email", email)
	return acc, nil
}

// Authenticate checks email and password against the stored record.
// A missing account and a wrong password both come back as
// core.ErrInvalidCredentials; the caller cannot tell which field was wrong.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (core.Account, error) {
	acc, err := s.repo.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return core.Account{}, core.ErrInvalidCredentials
		}
		return core.Account{}, fmt.Errorf("authenticate: %w", err)
	}

	if !auth.CheckPassword(password, acc.PasswordHash) {
		return core.Account{}, core.ErrInvalidCredentials
	}

	slog.InfoContext(ctx, "Account authenticated", "email", email)
	return acc, nil
}

// SetCurrency validates the symbol against the closed set and persists
// it. Callers update their session only after this returns, so the
// session never claims a currency the store did not record.
func (s *AccountService) SetCurrency(ctx context.Context, email, symbol string) (core.Currency, error) {
	cur, err := core.ParseCurrency(symbol)
	if err != nil {
		return "", err
	}
	if err := s.repo.UpdateAccountCurrency(ctx, email, cur); err != nil {
		return "", err
	}
	return cur, nil
}
