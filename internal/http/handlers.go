package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/petrusjohannesmaas/zaimu/internal/core"
	applog "github.com/petrusjohannesmaas/zaimu/internal/log"
)

// handleRegister creates a new account and sends the browser back to the
// login page. A taken username is a 400 with the same message the form
// users have always seen.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		http.Error(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	estIncome, ok := p.GetFloat("est_income")
	if !ok {
		http.Error(w, "Invalid estimated income.", http.StatusBadRequest)
		return
	}
	savingsGoal, ok := p.GetFloat("savings_goal")
	if !ok {
		http.Error(w, "Invalid savings goal.", http.StatusBadRequest)
		return
	}

	err := s.auth.Register(r.Context(), p.Get("username"), p.Get("password"), estIncome, savingsGoal)
	if errors.Is(err, core.ErrUsernameTaken) {
		http.Error(w, "Username already exists.", http.StatusBadRequest)
		return
	}
	if err != nil {
		s.serverError(w, r, "register failed", err)
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		http.Error(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	user, err := s.auth.Login(r.Context(), p.Get("username"), p.Get("password"))
	if errors.Is(err, core.ErrInvalidCredentials) {
		http.Error(w, "Invalid credentials.", http.StatusBadRequest)
		return
	}
	if err != nil {
		s.serverError(w, r, "login failed", err)
		return
	}

	sess := s.sessions.Create(user.Username)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sess.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

// handleLogout destroys the session unconditionally; logging out while
// logged out still lands on the login page.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		s.sessions.Destroy(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// handleUserInfo is the one identity endpoint the pages can always call:
// anonymous visitors get {"username":null} instead of a 401.
func (s *Server) handleUserInfo(w http.ResponseWriter, r *http.Request) {
	username, ok := s.currentUsername(r)
	if !ok {
		s.respondJSON(w, r, map[string]interface{}{"username": nil})
		return
	}

	settings, err := s.settings.Get(r.Context(), username)
	if err != nil {
		s.serverError(w, r, "read settings failed", err)
		return
	}
	s.respondJSON(w, r, settings)
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		http.Error(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	estIncome, ok := p.GetFloat("est_income")
	if !ok {
		http.Error(w, "Invalid estimated income.", http.StatusBadRequest)
		return
	}
	savingsGoal, ok := p.GetFloat("savings_goal")
	if !ok {
		http.Error(w, "Invalid savings goal.", http.StatusBadRequest)
		return
	}

	if err := s.settings.Update(r.Context(), usernameFrom(r.Context()), estIncome, savingsGoal); err != nil {
		s.serverError(w, r, "update settings failed", err)
		return
	}

	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

func (s *Server) respondJSON(w http.ResponseWriter, r *http.Request, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Failed to encode response", "error", err)
	}
}

// serverError is the catch-all for unexpected storage failures: log the
// cause, answer with a generic 500.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	applog.FromContext(r.Context()).ErrorContext(r.Context(), "Request failed",
		"error", err, "detail", msg, "path", r.URL.Path)
	http.Error(w, "Internal server error.", http.StatusInternalServerError)
}
