// Package http wires the application services to their routes: static page
// delivery for the browser flows and JSON/CSV endpoints for the API ones.
package http

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/petrusjohannesmaas/zaimu/internal/auth"
	applog "github.com/petrusjohannesmaas/zaimu/internal/log"
	"github.com/petrusjohannesmaas/zaimu/internal/middleware/security"
	"github.com/petrusjohannesmaas/zaimu/internal/services"
	"github.com/petrusjohannesmaas/zaimu/web"
)

const sessionCookieName = "zaimu_session"

type Server struct {
	http.Server

	auth         *services.AuthService
	transactions *services.TransactionService
	settings     *services.SettingsService
	export       *services.ExportService
	sessions     *auth.SessionStore
	logger       *applog.Logger

	pages map[string][]byte
}

// NewServer configures routes and embedded pages, returning a
// ready-to-run http.Server.
func NewServer(
	addr string,
	authSvc *services.AuthService,
	txSvc *services.TransactionService,
	settingsSvc *services.SettingsService,
	exportSvc *services.ExportService,
	sessions *auth.SessionStore,
	logger *applog.Logger,
) *Server {
	r := chi.NewRouter()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: r,
		},
		auth:         authSvc,
		transactions: txSvc,
		settings:     settingsSvc,
		export:       exportSvc,
		sessions:     sessions,
		logger:       logger.WithComponent("http"),
	}

	// Load embedded pages at startup so a missing page fails fast.
	s.pages = make(map[string][]byte)
	for _, name := range []string{"login.html", "register.html", "home.html", "settings.html", "metrics.html"} {
		data, err := web.PagesFS.ReadFile("pages/" + name)
		if err != nil {
			panic(fmt.Sprintf("missing embedded page %s: %v", name, err))
		}
		s.pages[name] = data
	}

	r.Use(chimiddleware.RequestID)
	r.Use(applog.Middleware(s.logger))
	r.Use(s.requestLogger)
	r.Use(security.Middleware(security.DefaultHeadersConfig()))

	// Static assets (served from embedded FS)
	if sub, err := fs.Sub(web.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		r.Handle("/static/*", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=3600")
			static.ServeHTTP(w, r)
		}))
	} else {
		slog.Warn("Failed to mount embedded static FS", "error", err)
	}

	// Unauthenticated flows
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusFound)
	})
	r.Get("/healthz", handleHealth)
	r.Get("/login", s.servePage("login.html"))
	r.Get("/register", s.servePage("register.html"))
	r.Post("/register", s.handleRegister)
	r.Post("/login", s.handleLogin)
	r.Post("/logout", s.handleLogout)
	r.Get("/user-info", s.handleUserInfo)

	// Browser pages: redirect to /login without a session
	r.Get("/home", s.requirePage(s.servePage("home.html")))
	r.Get("/settings", s.requirePage(s.servePage("settings.html")))
	r.Get("/metrics", s.requirePage(s.servePage("metrics.html")))

	// API routes: 401 without a session
	r.Post("/update-settings", s.requireUser(s.handleUpdateSettings))
	r.Post("/add-transaction", s.requireUser(s.handleAddTransaction))
	r.Get("/get-transactions", s.requireUser(s.handleListTransactions))
	r.Get("/get-transactions/{month}", s.requireUser(s.handleListMonth))
	r.Get("/export-csv/{month}", s.requireUser(s.handleExportCSV))

	return s
}

func (s *Server) servePage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(s.pages[name])
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
