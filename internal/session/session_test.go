package session

import (
	"testing"

	"expensehero/internal/core"
)

func TestNewSessionIsAnonymous(t *testing.T) {
	s := New()
	if s.Authenticated() {
		t.Fatalf("fresh session must be anonymous")
	}
	if s.Email() != "" {
		t.Fatalf("anonymous session must have empty email, got %q", s.Email())
	}
	if s.Currency() != core.DefaultCurrency {
		t.Fatalf("anonymous session currency = %q, want %q", s.Currency(), core.DefaultCurrency)
	}
}

func TestLoginLogout(t *testing.T) {
	s := New()
	s.Login(core.Account{Email: "a@b.com", Currency: "€"})

	if !s.Authenticated() {
		t.Fatalf("session should be authenticated after login")
	}
	if s.Email() != "a@b.com" {
		t.Fatalf("email = %q", s.Email())
	}
	if s.Currency() != "€" {
		t.Fatalf("currency = %q, want account's preference", s.Currency())
	}

	s.Logout()
	if s.Authenticated() || s.Email() != "" || s.Currency() != core.DefaultCurrency {
		t.Fatalf("logout must reset all fields: auth=%v email=%q currency=%q",
			s.Authenticated(), s.Email(), s.Currency())
	}
}

func TestEmailNonEmptyIffAuthenticated(t *testing.T) {
	s := New()
	check := func() {
		t.Helper()
		if s.Authenticated() != (s.Email() != "") {
			t.Fatalf("invariant broken: auth=%v email=%q", s.Authenticated(), s.Email())
		}
	}
	check()
	s.Login(core.Account{Email: "a@b.com", Currency: core.DefaultCurrency})
	check()
	s.UpdateCurrency("£")
	check()
	s.Logout()
	check()
}

func TestUpdateCurrency(t *testing.T) {
	s := New()
	s.Login(core.Account{Email: "a@b.com", Currency: core.DefaultCurrency})

	s.UpdateCurrency("¥")
	if s.Currency() != "¥" {
		t.Fatalf("currency = %q, want ¥", s.Currency())
	}
	if !s.Authenticated() || s.Email() != "a@b.com" {
		t.Fatalf("currency update must not touch the auth state")
	}
}

func TestUpdateCurrencyIgnoredWhenAnonymous(t *testing.T) {
	s := New()
	s.UpdateCurrency("¥")
	if s.Currency() != core.DefaultCurrency {
		t.Fatalf("anonymous session must not accept currency changes")
	}
}
