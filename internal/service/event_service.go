package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xburian/volejbal-app-v2/internal/models"
	"github.com/xburian/volejbal-app-v2/internal/storage"
)

// fallbackName is the display name used when an attendance record references
// a user that no longer exists.
const fallbackName = "unknown"

// EventService owns event CRUD, the attendance mutator, and the join that
// hydrates events with their participant lists.
type EventService struct {
	store storage.Store
	now   func() time.Time
}

// NewEventService creates an EventService with the given storage backend.
func NewEventService(store storage.Store) *EventService {
	return &EventService{store: store, now: time.Now}
}

// EventUpdate carries the fields of a partial event update. Nil fields are
// left untouched. Participants are derived data and deliberately have no
// place here; they can never be written through an event update.
type EventUpdate struct {
	Title         *string  `json:"title,omitempty"`
	Date          *string  `json:"date,omitempty"`
	Time          *string  `json:"time,omitempty"`
	Location      *string  `json:"location,omitempty"`
	TotalCost     *float64 `json:"totalCost,omitempty"`
	AccountNumber *string  `json:"accountNumber,omitempty"`
	Description   *string  `json:"description,omitempty"`
}

// GetEvents reconstructs the denormalized event view from the three stored
// collections. Always reads fresh state; nothing is cached between calls, so
// any prior mutation is visible.
//
// The three fetches have no ordering dependency and run concurrently. Reads
// degrade to empty per the storage contract, so a missing users collection
// yields events whose participants carry the fallback name, and a missing
// attendance collection yields events with empty participant lists.
func (s *EventService) GetEvents(ctx context.Context) ([]models.VolleyballEvent, error) {
	var (
		events []models.Event
		recs   []models.AttendanceRecord
		users  []models.User
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		var err error
		if events, err = s.store.ListEvents(ctx); err != nil {
			slog.Warn("event fetch failed, joining with empty set", "error", err)
			events = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if recs, err = s.store.ListAttendance(ctx); err != nil {
			slog.Warn("attendance fetch failed, joining with empty set", "error", err)
			recs = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if users, err = s.store.ListUsers(ctx); err != nil {
			slog.Warn("user fetch failed, joining with empty set", "error", err)
			users = nil
		}
	}()
	wg.Wait()

	// Index attendance by event and users by id; appending in iteration
	// order keeps the participant list order equal to storage order, which
	// the UI relies on for stability.
	recsByEvent := make(map[string][]models.AttendanceRecord, len(events))
	for _, rec := range recs {
		recsByEvent[rec.EventID] = append(recsByEvent[rec.EventID], rec)
	}
	usersByID := make(map[string]models.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	hydrated := make([]models.VolleyballEvent, 0, len(events))
	for _, ev := range events {
		matching := recsByEvent[ev.ID]
		participants := make([]models.Participant, 0, len(matching))
		for _, rec := range matching {
			p := models.Participant{
				UserID:  rec.UserID,
				Name:    fallbackName,
				Status:  rec.Status,
				HasPaid: rec.HasPaid,
			}
			if u, ok := usersByID[rec.UserID]; ok {
				p.Name = u.Name
				p.PhotoURL = u.PhotoURL
			}
			participants = append(participants, p)
		}
		hydrated = append(hydrated, models.VolleyballEvent{
			Event:        ev,
			Participants: participants,
		})
	}
	return hydrated, nil
}

// GetEvent returns the stored (non-hydrated) event with the given ID or
// ErrEventNotFound.
func (s *EventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.store.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// CreateEvent stores a new event, assigning an ID when absent, and returns
// the refreshed denormalized list.
func (s *EventService) CreateEvent(ctx context.Context, event models.Event) ([]models.VolleyballEvent, error) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if err := s.store.UpsertEvent(ctx, &event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	slog.Info("event created", "event_id", event.ID, "title", event.Title, "date", event.Date)
	return s.GetEvents(ctx)
}

// UpdateEvent merges the provided fields onto the stored event and returns
// the refreshed denormalized list. Fails with ErrEventNotFound if the ID is
// unknown.
func (s *EventService) UpdateEvent(ctx context.Context, id string, upd EventUpdate) ([]models.VolleyballEvent, error) {
	event, err := s.store.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	if upd.Title != nil {
		event.Title = *upd.Title
	}
	if upd.Date != nil {
		event.Date = *upd.Date
	}
	if upd.Time != nil {
		event.Time = *upd.Time
	}
	if upd.Location != nil {
		event.Location = *upd.Location
	}
	if upd.TotalCost != nil {
		event.TotalCost = *upd.TotalCost
	}
	if upd.AccountNumber != nil {
		event.AccountNumber = *upd.AccountNumber
	}
	if upd.Description != nil {
		event.Description = *upd.Description
	}

	if err := s.store.UpsertEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return s.GetEvents(ctx)
}

// DeleteEvent removes an event, cascades to its attendance records, and
// returns the refreshed denormalized list. All cascaded deletes are awaited
// before the delete is considered done.
func (s *EventService) DeleteEvent(ctx context.Context, id string) ([]models.VolleyballEvent, error) {
	event, err := s.store.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	recs, err := s.store.ListAttendanceByEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		if err := s.store.DeleteAttendance(ctx, rec.EventID, rec.UserID); err != nil {
			return nil, fmt.Errorf("failed to cascade attendance delete: %w", err)
		}
	}

	if err := s.store.DeleteEvent(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete event: %w", err)
	}

	slog.Info("event deleted", "event_id", id, "cascaded_attendance", len(recs))
	return s.GetEvents(ctx)
}

// UpdateAttendance upserts the attendance record for (eventID, userID).
//
// Merge semantics: status is always written; hasPaid is written only when
// provided. A nil hasPaid on an existing record preserves the stored value,
// so marking yourself "joined" again never silently clears a payment. On a
// brand-new record a nil hasPaid means false. Every write stamps a fresh
// timestamp; last write wins, no conflict detection.
//
// Callers observe the change through a subsequent GetEvents call.
func (s *EventService) UpdateAttendance(ctx context.Context, eventID, userID string, status models.Status, hasPaid *bool) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	rec, err := s.store.GetAttendance(ctx, eventID, userID)
	if err != nil {
		return err
	}
	if rec == nil {
		rec = &models.AttendanceRecord{EventID: eventID, UserID: userID}
	}

	rec.Status = status
	if hasPaid != nil {
		rec.HasPaid = *hasPaid
	}
	rec.Timestamp = s.now().UnixMilli()

	if err := s.store.UpsertAttendance(ctx, rec); err != nil {
		return fmt.Errorf("failed to upsert attendance: %w", err)
	}

	slog.Debug("attendance updated",
		"event_id", eventID,
		"user_id", userID,
		"status", status,
		"has_paid", rec.HasPaid,
	)
	return nil
}
