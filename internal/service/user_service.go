package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/xburian/volejbal-app-v2/internal/models"
	"github.com/xburian/volejbal-app-v2/internal/storage"
)

// UserService manages the group's member roster.
type UserService struct {
	store storage.Store
}

// NewUserService creates a UserService with the given storage backend.
func NewUserService(store storage.Store) *UserService {
	return &UserService{store: store}
}

// UserUpdate carries the fields of a partial user update. Nil fields are
// left untouched.
type UserUpdate struct {
	Name     *string `json:"name,omitempty"`
	PhotoURL *string `json:"photoUrl,omitempty"`
}

// GetUsers returns all registered users.
func (s *UserService) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.store.ListUsers(ctx)
}

// GetUser returns the user with the given ID or ErrUserNotFound.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// CreateUser registers a new user. Names are stored trimmed and must be
// unique under case-insensitive, whitespace-trimmed comparison; a collision
// fails with ErrDuplicateName.
func (s *UserService) CreateUser(ctx context.Context, name, photoURL string) (*models.User, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyName
	}

	existing, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range existing {
		if strings.EqualFold(strings.TrimSpace(u.Name), trimmed) {
			return nil, ErrDuplicateName
		}
	}

	user := &models.User{
		ID:       uuid.New().String(),
		Name:     trimmed,
		PhotoURL: photoURL,
	}
	if err := s.store.UpsertUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("user created", "user_id", user.ID, "name", user.Name)
	return user, nil
}

// UpdateUser merges the provided fields onto the stored user.
// Fails with ErrUserNotFound if the ID is unknown.
func (s *UserService) UpdateUser(ctx context.Context, id string, upd UserUpdate) (*models.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		trimmed := strings.TrimSpace(*upd.Name)
		if trimmed == "" {
			return nil, ErrEmptyName
		}
		user.Name = trimmed
	}
	if upd.PhotoURL != nil {
		user.PhotoURL = *upd.PhotoURL
	}

	if err := s.store.UpsertUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteUser removes a user and cascades to every attendance record the
// user appears in. All cascaded deletes are awaited before the delete is
// considered done; a failure mid-cascade propagates and may leave some
// records behind (best-effort model, no transaction).
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}

	recs, err := s.store.ListAttendanceByUser(ctx, id)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		if err := s.store.DeleteAttendance(ctx, rec.EventID, rec.UserID); err != nil {
			return fmt.Errorf("failed to cascade attendance delete: %w", err)
		}
	}

	if err := s.store.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	slog.Info("user deleted", "user_id", id, "cascaded_attendance", len(recs))
	return nil
}
