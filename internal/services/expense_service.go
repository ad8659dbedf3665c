package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"expensehero/internal/core"
	"expensehero/internal/storage"
)

// ExpenseService enforces boundary validation in front of the expense
// store; the store itself persists whatever it is given.
type ExpenseService struct {
	repo *storage.SQLiteRepository
}

func NewExpenseService(repo *storage.SQLiteRepository) *ExpenseService {
	return &ExpenseService{repo: repo}
}

// Add validates and saves one expense. The date defaults to today when
// the caller leaves it zero.
func (s *ExpenseService) Add(ctx context.Context, e core.Expense) (int64, error) {
	e.Item = strings.TrimSpace(e.Item)
	if e.Date.IsZero() {
		e.Date = core.Today()
	}
	if err := e.Validate(); err != nil {
		return 0, err
	}

	id, err := s.repo.CreateExpense(ctx, e)
	if err != nil {
		return 0, fmt.Errorf("add expense: %w", err)
	}
	return id, nil
}

// List returns the owner's expenses, newest first.
func (s *ExpenseService) List(ctx context.Context, owner string) ([]core.Expense, error) {
	return s.repo.ListExpenses(ctx, owner)
}

// DeleteLastByName removes the most recently added expense with that
// item name. No match is a silent no-op.
func (s *ExpenseService) DeleteLastByName(ctx context.Context, owner, item string) error {
	item = strings.TrimSpace(item)
	if item == "" {
		return core.ErrEmptyItem
	}
	if err := s.repo.DeleteLastExpenseByName(ctx, owner, item); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}

	slog.InfoContext(ctx, "Delete requested", "email", owner, "item", item)
	return nil
}

// Overview returns the owner's expenses together with their aggregate
// summary, in one fetch.
func (s *ExpenseService) Overview(ctx context.Context, owner string) ([]core.Expense, core.Summary, error) {
	expenses, err := s.repo.ListExpenses(ctx, owner)
	if err != nil {
		return nil, core.Summary{}, fmt.Errorf("overview: %w", err)
	}
	return expenses, core.Summarize(expenses), nil
}
