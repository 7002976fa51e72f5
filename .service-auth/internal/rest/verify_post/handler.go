package verify_post

import (
	"encoding/json"
	"log"
	"net/http"
)

type Handler struct {
	store TokenStore
}

func New(store TokenStore) *Handler {
	return &Handler{
		store: store,
	}
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	SubjectID string `json:"subject_id"`
	Role      string `json:"role"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	subjectID, role, ok := h.store.Resolve(req.Token)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(verifyResponse{
		SubjectID: subjectID,
		Role:      role,
	}); err != nil {
		log.Printf("from verify POST: %v", err)
	}
}
