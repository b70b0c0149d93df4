package server

import (
	"net/http"

	"bucketsplit/internal/service"
)

func (s *Server) handleRecordCredit(w http.ResponseWriter, r *http.Request) {
	var req service.CreditInput
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	credit, err := s.svc.RecordCredit(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, credit)
}

func (s *Server) handleListCredits(w http.ResponseWriter, r *http.Request) {
	credits, err := s.svc.ListCredits(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, credits)
}

func (s *Server) handleUpdateCredit(w http.ResponseWriter, r *http.Request) {
	var req service.CreditInput
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	credit, err := s.svc.UpdateCredit(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, credit)
}

func (s *Server) handleDeleteCredit(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteCredit(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
