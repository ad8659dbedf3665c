package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"expensehero/internal/core"
)

// authViewModel feeds the login and register templates.
type authViewModel struct {
	Error  string
	Notice string
	Email  string
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if sess, ok := s.currentSession(r); ok && sess.Authenticated() {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		vm := authViewModel{}
		if r.URL.Query().Get("registered") == "1" {
			vm.Notice = "Account created! Please log in."
		}
		s.render(w, r, "login.html", vm)

	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			s.render(w, r, "login.html", authViewModel{Error: "Invalid form submission"})
			return
		}

		email := strings.TrimSpace(r.FormValue("email"))
		password := r.FormValue("password")
		if email == "" || password == "" {
			s.render(w, r, "login.html", authViewModel{Error: "Email and password are required", Email: email})
			return
		}

		acc, err := s.accounts.Authenticate(r.Context(), email, password)
		if err != nil {
			if !errors.Is(err, core.ErrInvalidCredentials) {
				slog.ErrorContext(r.Context(), "Authentication failed", "error", err)
			}
			s.render(w, r, "login.html", authViewModel{Error: "Invalid email or password", Email: email})
			return
		}

		token, sess := s.sessions.Create()
		sess.Login(acc)
		s.setSessionCookie(w, token)

		slog.InfoContext(r.Context(), "Login succeeded", "email", acc.Email)
		http.Redirect(w, r, "/", http.StatusFound)

	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.render(w, r, "register.html", authViewModel{})

	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			s.render(w, r, "register.html", authViewModel{Error: "Invalid form submission"})
			return
		}

		email := strings.TrimSpace(r.FormValue("email"))
		password := r.FormValue("password")

		if _, err := s.accounts.Register(r.Context(), email, password); err != nil {
			s.render(w, r, "register.html", authViewModel{Error: registerErrorMessage(err), Email: email})
			return
		}

		http.Redirect(w, r, "/login?registered=1", http.StatusFound)

	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if sess, ok := s.sessions.Get(cookie.Value); ok {
			sess.Logout()
		}
		s.sessions.Delete(cookie.Value)
	}
	s.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}

// registerErrorMessage maps registration failures to the message shown
// on the form. Each invalid input gets a specific message; only the
// login failure stays deliberately vague.
func registerErrorMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrDuplicateAccount):
		return "This email is already registered."
	case errors.Is(err, core.ErrInvalidEmail):
		return "Please use a valid email address."
	case errors.Is(err, core.ErrPasswordTooShort):
		return "Password must be at least 4 characters."
	default:
		return "An error occurred. Please try again."
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "template", name)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution failed", "error", err, "template", name)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
