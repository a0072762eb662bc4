package localstore

import (
	"context"

	"github.com/xburian/volejbal-app-v2/internal/models"
)

// ListEvents returns all stored events in storage order.
func (s *LocalStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := s.readCollection(ctx, collectionEvents, &events); err != nil {
		warnEmpty(collectionEvents, err)
		return []models.Event{}, nil
	}
	return events, nil
}

// GetEvent retrieves an event by ID. Returns (nil, nil) if not found.
func (s *LocalStore) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	events, err := s.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].ID == id {
			return &events[i], nil
		}
	}
	return nil, nil
}

// UpsertEvent inserts or replaces the event identified by event.ID.
func (s *LocalStore) UpsertEvent(ctx context.Context, event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var events []models.Event
	if err := s.readCollection(ctx, collectionEvents, &events); err != nil {
		return err
	}

	replaced := false
	for i := range events {
		if events[i].ID == event.ID {
			events[i] = *event
			replaced = true
			break
		}
	}
	if !replaced {
		events = append(events, *event)
	}
	return s.writeCollection(ctx, collectionEvents, events)
}

// DeleteEvent removes the event with the given ID.
func (s *LocalStore) DeleteEvent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var events []models.Event
	if err := s.readCollection(ctx, collectionEvents, &events); err != nil {
		return err
	}

	kept := events[:0]
	for _, ev := range events {
		if ev.ID != id {
			kept = append(kept, ev)
		}
	}
	return s.writeCollection(ctx, collectionEvents, kept)
}
