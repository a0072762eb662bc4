package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xburian/volejbal-app-v2/internal/calculator"
	"github.com/xburian/volejbal-app-v2/internal/middleware"
	"github.com/xburian/volejbal-app-v2/internal/models"
	"github.com/xburian/volejbal-app-v2/internal/payment"
	"github.com/xburian/volejbal-app-v2/internal/service"
)

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.events.GetEvents(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, events)
}

// handleCreateEvent decodes into the stored Event form, so a participants
// field in the payload is stripped by construction.
func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var event models.Event
	if err := decode(r, &event); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	refreshed, err := s.events.CreateEvent(r.Context(), event)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, refreshed)
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	var upd service.EventUpdate
	if err := decode(r, &upd); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	refreshed, err := s.events.UpdateEvent(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, refreshed)
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	refreshed, err := s.events.DeleteEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, refreshed)
}

type updateAttendanceRequest struct {
	Status  models.Status `json:"status"`
	HasPaid *bool         `json:"hasPaid,omitempty"`
}

func (s *Server) handleUpdateAttendance(w http.ResponseWriter, r *http.Request) {
	var req updateAttendanceRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	err := s.events.UpdateAttendance(r.Context(),
		chi.URLParam(r, "id"),
		chi.URLParam(r, "userID"),
		req.Status,
		req.HasPaid,
	)
	if err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type ibanResponse struct {
	IBAN string `json:"iban"`
}

func (s *Server) handleEventIBAN(w http.ResponseWriter, r *http.Request) {
	event, err := s.events.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	iban, err := payment.ConvertToCZIBAN(event.AccountNumber)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ibanResponse{IBAN: iban})
}

type debtsResponse struct {
	Items []models.DebtItem `json:"items"`
	Total int               `json:"total"`
}

func (s *Server) handleDebts(w http.ResponseWriter, r *http.Request) {
	events, err := s.events.GetEvents(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	items := calculator.Debts(events, middleware.GetUserID(r.Context()), time.Now())
	respondJSON(w, http.StatusOK, debtsResponse{
		Items: items,
		Total: calculator.Total(items),
	})
}
