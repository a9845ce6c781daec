package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/petrusjohannesmaas/zaimu/internal/core"
)

func (s *Server) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		http.Error(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	amount, ok := p.GetFloat("amount")
	if !ok {
		http.Error(w, "Invalid amount.", http.StatusBadRequest)
		return
	}

	// Type, category, description and date go to storage exactly as
	// submitted.
	tx := core.Transaction{
		Amount:      amount,
		Type:        p.Get("type"),
		Category:    p.Get("category"),
		Description: p.Get("description"),
		Date:        p.Get("date"),
	}

	if err := s.transactions.Add(r.Context(), usernameFrom(r.Context()), tx); err != nil {
		s.serverError(w, r, "add transaction failed", err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Transaction saved!"))
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := s.transactions.List(r.Context(), usernameFrom(r.Context()))
	if err != nil {
		s.serverError(w, r, "list transactions failed", err)
		return
	}
	s.respondJSON(w, r, transactions)
}

func (s *Server) handleListMonth(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")

	entries, err := s.transactions.ListMonth(r.Context(), usernameFrom(r.Context()), month)
	if err != nil {
		s.serverError(w, r, "list month failed", err)
		return
	}
	s.respondJSON(w, r, entries)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")

	export, err := s.export.ExportMonth(r.Context(), usernameFrom(r.Context()), month)
	if errors.Is(err, core.ErrNoTransactions) {
		http.Error(w, "No transactions found for this month.", http.StatusNotFound)
		return
	}
	if err != nil {
		s.serverError(w, r, "export failed", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	_, _ = w.Write(export.Data)
}
