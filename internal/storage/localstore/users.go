package localstore

import (
	"context"

	"github.com/xburian/volejbal-app-v2/internal/models"
)

// ListUsers returns all stored users in storage order.
func (s *LocalStore) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.readCollection(ctx, collectionUsers, &users); err != nil {
		warnEmpty(collectionUsers, err)
		return []models.User{}, nil
	}
	return users, nil
}

// GetUser retrieves a user by ID. Returns (nil, nil) if not found.
func (s *LocalStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// UpsertUser inserts or replaces the user identified by user.ID.
func (s *LocalStore) UpsertUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []models.User
	if err := s.readCollection(ctx, collectionUsers, &users); err != nil {
		return err
	}

	replaced := false
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = *user
			replaced = true
			break
		}
	}
	if !replaced {
		users = append(users, *user)
	}
	return s.writeCollection(ctx, collectionUsers, users)
}

// DeleteUser removes the user with the given ID. Deleting an absent user is
// a no-op; existence checks belong to the service layer.
func (s *LocalStore) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []models.User
	if err := s.readCollection(ctx, collectionUsers, &users); err != nil {
		return err
	}

	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	return s.writeCollection(ctx, collectionUsers, kept)
}
