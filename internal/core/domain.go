package core

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 4

const dateLayout = "2006-01-02"

type (
	// Date is a calendar date without a time component.
	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Account is a registered user: unique email, one-way password hash,
	// and the display currency preference.
	Account struct {
		Email        string
		PasswordHash string
		Currency     Currency
	}

	// Expense is one recorded spending entry owned by an account.
	Expense struct {
		ID    int64
		Owner string // account email
		Item  string
		Cost  Money
		Date  Date
	}
)

var (
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrEmptyItem          = errors.New("empty item name")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidCurrency    = errors.New("unsupported currency")
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidateEmail checks the address against the standard local@domain.tld shape.
// The store itself performs no format validation.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword enforces the minimum plaintext length before hashing.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (e Expense) Validate() error {
	if len(strings.TrimSpace(e.Item)) == 0 {
		return ErrEmptyItem
	}
	if len(e.Item) > 200 {
		return errors.New("item name too long (max 200 characters)")
	}
	if err := e.Cost.Validate(); err != nil {
		return err
	}
	if err := e.Date.Validate(); err != nil {
		return err
	}
	return nil
}
