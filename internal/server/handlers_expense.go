package server

import (
	"net/http"

	"bucketsplit/internal/service"
)

func (s *Server) handleRecordExpense(w http.ResponseWriter, r *http.Request) {
	var req service.ExpenseInput
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	expense, err := s.svc.RecordExpense(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.svc.ListExpenses(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}

func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	var req service.ExpenseInput
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	expense, err := s.svc.UpdateExpense(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expense)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteExpense(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
