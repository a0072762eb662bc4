// Package api exposes the application over a JSON REST surface. It is a
// thin controller: decode, call the service layer, map errors to statuses.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/xburian/volejbal-app-v2/internal/auth"
	"github.com/xburian/volejbal-app-v2/internal/middleware"
	"github.com/xburian/volejbal-app-v2/internal/payment"
	"github.com/xburian/volejbal-app-v2/internal/service"
)

// Server bundles the services behind the HTTP surface.
type Server struct {
	users  *service.UserService
	events *service.EventService
	tokens *auth.JWTManager
}

// New creates a Server over the given services.
func New(users *service.UserService, events *service.EventService, tokens *auth.JWTManager) *Server {
	return &Server{users: users, events: events, tokens: tokens}
}

// Routes builds the router with the full middleware stack.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	r.Use(middleware.Session(s.tokens))
	r.Use(middleware.Logging)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", middleware.MetricsHandler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/users", s.handleListUsers)
		r.Post("/users", s.handleCreateUser)
		r.Get("/users/{id}", s.handleGetUser)
		r.Patch("/users/{id}", s.handleUpdateUser)
		r.Delete("/users/{id}", s.handleDeleteUser)

		r.Get("/events", s.handleListEvents)
		r.Post("/events", s.handleCreateEvent)
		r.Patch("/events/{id}", s.handleUpdateEvent)
		r.Delete("/events/{id}", s.handleDeleteEvent)
		r.Get("/events/{id}/iban", s.handleEventIBAN)
		r.Put("/events/{id}/attendance/{userID}", s.handleUpdateAttendance)

		r.Post("/session", s.handleCreateSession)
		r.With(middleware.RequireUser).Get("/debts", s.handleDebts)
	})

	return r
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps service errors onto HTTP statuses.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrEventNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrDuplicateName):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrEmptyName):
		status = http.StatusBadRequest
	case errors.Is(err, payment.ErrInvalidAccount):
		status = http.StatusUnprocessableEntity
	}
	respondJSON(w, status, errorResponse{Error: err.Error()})
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	respondJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
