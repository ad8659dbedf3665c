package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"expensehero/internal/core"
	"expensehero/internal/session"
)

type expenseRow struct {
	ID     int64
	Item   string
	Amount string
	Date   string
}

type chartRow struct {
	Item   string
	Amount string
	Width  int
}

type currencyOption struct {
	Symbol   string
	Selected bool
}

type dashboardViewModel struct {
	Email      string
	Currency   string
	Total      string
	Count      int
	Average    string
	HasAverage bool
	Rows       []expenseRow
	Chart      []chartRow
	Currencies []currencyOption
	Error      string
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	expenses, summary, err := s.expenses.Overview(r.Context(), sess.Email())
	if err != nil {
		slog.ErrorContext(r.Context(), "Overview error", "error", err, "email", sess.Email())
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	cur := sess.Currency()
	vm := dashboardViewModel{
		Email:    sess.Email(),
		Currency: cur.String(),
		Total:    summary.Total.Format(cur),
		Count:    summary.Count,
		Error:    flashMessage(r.URL.Query().Get("error")),
	}
	if avg, ok := summary.Average(); ok {
		vm.Average = avg.Format(cur)
		vm.HasAverage = true
	}

	for _, e := range expenses {
		vm.Rows = append(vm.Rows, expenseRow{
			ID:     e.ID,
			Item:   e.Item,
			Amount: e.Cost.Format(cur),
			Date:   e.Date.String(),
		})
	}

	var maxCents int64
	for _, ia := range summary.ByItem {
		if ia.Amount.Cents > maxCents {
			maxCents = ia.Amount.Cents
		}
	}
	for _, ia := range summary.ByItem {
		vm.Chart = append(vm.Chart, chartRow{
			Item:   ia.Item,
			Amount: ia.Amount.Format(cur),
			Width:  barWidth(ia.Amount.Cents, maxCents),
		})
	}

	for _, c := range core.SupportedCurrencies {
		vm.Currencies = append(vm.Currencies, currencyOption{
			Symbol:   c.String(),
			Selected: c == cur,
		})
	}

	s.render(w, r, "index.html", vm)
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "url", r.URL.Path)
		http.Redirect(w, r, "/?error=form", http.StatusSeeOther)
		return
	}

	item := sanitizeInput(r.Form.Get("item"))
	amountStr := strings.TrimSpace(r.Form.Get("amount"))

	cents, err := core.ParseDecimalToCents(amountStr)
	if err != nil {
		http.Redirect(w, r, "/?error=amount", http.StatusSeeOther)
		return
	}

	date := core.Today()
	if v := strings.TrimSpace(r.Form.Get("date")); v != "" {
		d, err := core.ParseDate(v)
		if err != nil {
			http.Redirect(w, r, "/?error=date", http.StatusSeeOther)
			return
		}
		date = d
	}

	exp := core.Expense{
		Owner: sess.Email(),
		Item:  item,
		Cost:  core.Money{Cents: cents},
		Date:  date,
	}
	id, err := s.expenses.Add(r.Context(), exp)
	if err != nil {
		http.Redirect(w, r, "/?error="+expenseErrorCode(err), http.StatusSeeOther)
		return
	}

	slog.InfoContext(r.Context(), "Expense created",
		"expense_id", id,
		"email", exp.Owner,
		"item", exp.Item,
		"cost_cents", exp.Cost.Cents)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/?error=form", http.StatusSeeOther)
		return
	}

	item := sanitizeInput(r.Form.Get("item"))
	if err := s.expenses.DeleteLastByName(r.Context(), sess.Email(), item); err != nil {
		http.Redirect(w, r, "/?error="+expenseErrorCode(err), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleSetCurrency(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/?error=form", http.StatusSeeOther)
		return
	}

	// Persist first; only then mirror the change into the session.
	cur, err := s.accounts.SetCurrency(r.Context(), sess.Email(), r.Form.Get("currency"))
	if err != nil {
		if !errors.Is(err, core.ErrInvalidCurrency) {
			slog.ErrorContext(r.Context(), "Set currency failed", "error", err, "email", sess.Email())
		}
		http.Redirect(w, r, "/?error=currency", http.StatusSeeOther)
		return
	}
	sess.UpdateCurrency(cur)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// expenseErrorCode turns a validation failure into a flash code carried
// through the redirect.
func expenseErrorCode(err error) string {
	switch {
	case errors.Is(err, core.ErrEmptyItem):
		return "item"
	case errors.Is(err, core.ErrInvalidAmount):
		return "amount"
	case errors.Is(err, core.ErrInvalidDate):
		return "date"
	default:
		return "internal"
	}
}

func flashMessage(code string) string {
	switch code {
	case "":
		return ""
	case "amount":
		return "Cost must be a positive amount."
	case "item":
		return "Item name cannot be empty."
	case "date":
		return "Date must be in YYYY-MM-DD format."
	case "currency":
		return "Unsupported currency."
	case "form":
		return "Invalid form submission."
	default:
		return "Something went wrong. Please try again."
	}
}
