package http

import (
	"context"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"expensehero/internal/middleware/ratelimit"
	"expensehero/internal/services"
	"expensehero/internal/session"
	appweb "expensehero/web"
)

const sessionCookieName = "session"

// Server wires the presentation layer: routes, templates, session
// cookies and the middleware stack.
type Server struct {
	http.Server
	templates *template.Template

	accounts *services.AccountService
	expenses *services.ExpenseService
	sessions *session.Store
	limiter  *ratelimit.Limiter

	secureCookies bool
	shutdownOnce  sync.Once
}

// Options carries the tunables NewServer needs beyond its collaborators.
type Options struct {
	SecureCookies      bool
	RateLimitPerMinute int
}

// NewServer configures routes and templates, returning a ready-to-run http.Server.
func NewServer(addr string, accounts *services.AccountService, expenses *services.ExpenseService, sessions *session.Store, opts Options) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		accounts:      accounts,
		expenses:      expenses,
		sessions:      sessions,
		secureCookies: opts.SecureCookies,
		limiter: ratelimit.NewLimiter(ratelimit.Config{
			RequestsPerMinute: opts.RateLimitPerMinute,
		}),
	}

	// Parse embedded templates at startup.
	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		slog.Warn("Failed parsing templates", "error", err)
	}
	s.templates = t

	// Static assets (served from embedded FS)
	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=3600, immutable")
			static.ServeHTTP(w, r)
		}))
	} else {
		slog.Warn("Failed to mount embedded static FS", "error", err)
	}

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)

	// Credential endpoints carry the rate limit; everything else only the
	// security/logging middleware.
	mux.HandleFunc("/login", s.withSecurityHeaders(s.withCredentialRateLimit(s.handleLogin)))
	mux.HandleFunc("/register", s.withSecurityHeaders(s.withCredentialRateLimit(s.handleRegister)))
	mux.HandleFunc("/logout", s.withSecurityHeaders(s.handleLogout))

	mux.HandleFunc("/", s.withSecurityHeaders(s.requireSession(s.handleDashboard)))
	mux.HandleFunc("/expenses", s.withSecurityHeaders(s.requireSession(s.handleCreateExpense)))
	mux.HandleFunc("/expenses/delete", s.withSecurityHeaders(s.requireSession(s.handleDeleteExpense)))
	mux.HandleFunc("/currency", s.withSecurityHeaders(s.requireSession(s.handleSetCurrency)))

	return s
}

// Shutdown gracefully shuts down the server and its background routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		if s.limiter != nil {
			s.limiter.Stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}

// withSecurityHeaders adds security headers and request logging to responses.
func (s *Server) withSecurityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		clientIP := clientIP(r)

		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		r = r.WithContext(ctx)

		slog.InfoContext(ctx, "Request started",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"client_ip", clientIP,
			"user_agent", r.Header.Get("User-Agent"))

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		duration := time.Since(start)
		slog.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"client_ip", clientIP)
	}
}

// withCredentialRateLimit throttles POSTs to the login/register forms.
func (s *Server) withCredentialRateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && !s.limiter.Allow(clientIP(r)) {
			slog.WarnContext(r.Context(), "Rate limit exceeded", "client_ip", clientIP(r), "url", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			http.Error(w, "Too many attempts. Please try again later.", http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}

// requireSession resolves the session cookie and rejects anonymous
// visitors back to the login page.
func (s *Server) requireSession(next func(w http.ResponseWriter, r *http.Request, sess *session.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := s.currentSession(r)
		if !ok || !sess.Authenticated() {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next(w, r, sess)
	}
}

func (s *Server) currentSession(r *http.Request) (*session.Session, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	return s.sessions.Get(cookie.Value)
}

func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
