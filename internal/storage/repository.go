package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"expensehero/internal/core"

	_ "modernc.org/sqlite"
)

// ErrAccountNotFound is returned when a lookup matches no account row.
// Callers decide how much of that to reveal to the user.
var ErrAccountNotFound = errors.New("account not found")

// SQLiteRepository is the persistence layer for accounts and expenses.
// Each operation is a single bounded statement over the shared
// database/sql pool.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" && !strings.HasPrefix(dbPath, ":memory:") {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// An in-memory database exists per connection; cap the pool so tests
	// see one coherent store.
	if strings.Contains(dbPath, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// CreateAccount inserts a new account row. A duplicate email maps to
// core.ErrDuplicateAccount and leaves the stored row unchanged.
func (r *SQLiteRepository) CreateAccount(ctx context.Context, acc core.Account) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (email, password_hash, currency) VALUES (?, ?, ?)`,
		acc.Email, acc.PasswordHash, string(acc.Currency),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("create account %s: %w", acc.Email, core.ErrDuplicateAccount)
		}
		return fmt.Errorf("create account: %w", err)
	}

	slog.InfoContext(ctx, "Account created", "email", acc.Email, "currency", acc.Currency)
	return nil
}

// GetAccountByEmail looks up a single account. A missing row yields
// ErrAccountNotFound.
func (r *SQLiteRepository) GetAccountByEmail(ctx context.Context, email string) (core.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT email, password_hash, currency FROM accounts WHERE email = ?`, email)

	var acc core.Account
	var currency string
	if err := row.Scan(&acc.Email, &acc.PasswordHash, &currency); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Account{}, ErrAccountNotFound
		}
		return core.Account{}, fmt.Errorf("get account: %w", err)
	}
	acc.Currency = core.Currency(currency)
	return acc, nil
}

// UpdateAccountCurrency persists a display currency change. An unknown
// email updates nothing and is not an error.
func (r *SQLiteRepository) UpdateAccountCurrency(ctx context.Context, email string, cur core.Currency) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET currency = ? WHERE email = ?`, string(cur), email)
	if err != nil {
		return fmt.Errorf("update account currency: %w", err)
	}

	slog.InfoContext(ctx, "Account currency updated", "email", email, "currency", cur)
	return nil
}

// CreateExpense inserts a row and returns the assigned id. Input
// validation happens at the service boundary, not here.
func (r *SQLiteRepository) CreateExpense(ctx context.Context, e core.Expense) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (email, item, cost_cents, entry_date) VALUES (?, ?, ?, ?)`,
		e.Owner, e.Item, e.Cost.Cents, e.Date.String(),
	)
	if err != nil {
		return 0, fmt.Errorf("create expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("expense insert id: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved",
		"expense_id", id,
		"email", e.Owner,
		"item", e.Item,
		"cost_cents", e.Cost.Cents,
		"entry_date", e.Date.String())

	return id, nil
}

// ListExpenses returns all of one owner's expenses, newest-first by id.
// The result is fully materialized.
func (r *SQLiteRepository) ListExpenses(ctx context.Context, email string) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, email, item, cost_cents, entry_date FROM expenses WHERE email = ? ORDER BY id DESC`,
		email,
	)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []core.Expense
	for rows.Next() {
		var e core.Expense
		var entryDate string
		if err := rows.Scan(&e.ID, &e.Owner, &e.Item, &e.Cost.Cents, &entryDate); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		d, err := core.ParseDate(entryDate)
		if err != nil {
			return nil, fmt.Errorf("parse expense date %q: %w", entryDate, err)
		}
		e.Date = d
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}

	return expenses, nil
}

// DeleteLastExpenseByName removes the most recently added expense matching
// owner and item name, by id ordering. No match is a silent no-op.
func (r *SQLiteRepository) DeleteLastExpenseByName(ctx context.Context, email, item string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM expenses WHERE id = (
			SELECT id FROM expenses WHERE email = ? AND item = ? ORDER BY id DESC LIMIT 1
		)`,
		email, item,
	)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n > 0 {
		slog.InfoContext(ctx, "Expense deleted", "email", email, "item", item)
	}
	return nil
}
