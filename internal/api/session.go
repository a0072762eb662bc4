package api

import (
	"net/http"

	"github.com/xburian/volejbal-app-v2/internal/models"
)

type createSessionRequest struct {
	UserID string `json:"userId"`
}

type createSessionResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// handleCreateSession selects the active user. There is no credential check
// beyond the user existing; the token just makes "who am I" explicit on
// later requests instead of living in client-side globals.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	user, err := s.users.GetUser(r.Context(), req.UserID)
	if err != nil {
		respondError(w, err)
		return
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, createSessionResponse{Token: token, User: *user})
}
