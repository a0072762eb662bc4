// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/xburian/volejbal-app-v2/internal/models"
)

// Store defines the uniform contract over the three record collections.
// Two backends implement it (Mongo document store, local SQLite blob store)
// and must be indistinguishable to callers.
//
// Read operations (List*, Get*) degrade gracefully: when the backend is
// unreachable or misconfigured they log the failure and return an empty
// result set rather than an error. Write operations (Upsert*, Delete*)
// always propagate failures so callers never assume a write succeeded.
//
// Get* operations return (nil, nil) when the entity does not exist;
// not-found handling is the service layer's job.
type Store interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpsertUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id string) error

	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	UpsertEvent(ctx context.Context, event *models.Event) error
	DeleteEvent(ctx context.Context, id string) error

	ListAttendance(ctx context.Context) ([]models.AttendanceRecord, error)
	GetAttendance(ctx context.Context, eventID, userID string) (*models.AttendanceRecord, error)
	UpsertAttendance(ctx context.Context, rec *models.AttendanceRecord) error
	DeleteAttendance(ctx context.Context, eventID, userID string) error

	// Equality-filtered queries used by cascade deletes. Both backends
	// must return the same logical result set.
	ListAttendanceByEvent(ctx context.Context, eventID string) ([]models.AttendanceRecord, error)
	ListAttendanceByUser(ctx context.Context, userID string) ([]models.AttendanceRecord, error)

	// Close releases any resources held by the store.
	Close() error
}
