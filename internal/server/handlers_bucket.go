package server

import (
	"net/http"
)

type bucketRequest struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

type participantRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

func (s *Server) handleCreateBucket(w http.ResponseWriter, r *http.Request) {
	var req bucketRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	bucket, err := s.svc.CreateBucket(r.Context(), req.Name, req.Currency)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, bucket)
}

func (s *Server) handleListBuckets(w http.ResponseWriter, r *http.Request) {
	buckets, err := s.svc.ListBuckets(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, buckets)
}

func (s *Server) handleGetBucket(w http.ResponseWriter, r *http.Request) {
	bucket, err := s.svc.GetBucket(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bucket)
}

func (s *Server) handleUpdateBucket(w http.ResponseWriter, r *http.Request) {
	var req bucketRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	bucket, err := s.svc.UpdateBucket(r.Context(), r.PathValue("id"), req.Name, req.Currency)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bucket)
}

func (s *Server) handleDeleteBucket(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteBucket(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddParticipant(w http.ResponseWriter, r *http.Request) {
	var req participantRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	participant, err := s.svc.AddParticipant(r.Context(), r.PathValue("id"), req.Email, req.DisplayName)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, participant)
}

func (s *Server) handleRemoveParticipant(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.RemoveParticipant(r.Context(), r.PathValue("id"), r.PathValue("uid")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.svc.Summary(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
