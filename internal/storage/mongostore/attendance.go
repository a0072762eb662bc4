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

// attendanceDoc wraps an AttendanceRecord with the composite document key so
// upserts address exactly one document per (eventId, userId) pair.
type attendanceDoc struct {
	ID                      string `bson:"_id"`
	models.AttendanceRecord `bson:",inline"`
}

// ListAttendance returns all attendance records in the collection.
func (s *MongoStore) ListAttendance(ctx context.Context) ([]models.AttendanceRecord, error) {
	recs := []models.AttendanceRecord{}
	findAll(ctx, s.attendance, bson.M{}, &recs)
	return recs, nil
}

// GetAttendance retrieves the record for (eventID, userID).
// Returns (nil, nil) if not found.
func (s *MongoStore) GetAttendance(ctx context.Context, eventID, userID string) (*models.AttendanceRecord, error) {
	var rec models.AttendanceRecord
	err := s.attendance.FindOne(ctx, bson.M{"_id": models.AttendanceKey(eventID, userID)}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		slog.Warn("mongo read failed, treating as missing", "collection", "attendance", "error", err)
		return nil, nil
	}
	return &rec, nil
}

// UpsertAttendance inserts or replaces the record keyed by
// (rec.EventID, rec.UserID).
func (s *MongoStore) UpsertAttendance(ctx context.Context, rec *models.AttendanceRecord) error {
	doc := attendanceDoc{ID: rec.Key(), AttendanceRecord: *rec}
	_, err := s.attendance.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, replaceOpts())
	if err != nil {
		return fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return nil
}

// DeleteAttendance removes the record for (eventID, userID).
func (s *MongoStore) DeleteAttendance(ctx context.Context, eventID, userID string) error {
	_, err := s.attendance.DeleteOne(ctx, bson.M{"_id": models.AttendanceKey(eventID, userID)})
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return nil
}

// ListAttendanceByEvent returns all records matching the eventId filter.
func (s *MongoStore) ListAttendanceByEvent(ctx context.Context, eventID string) ([]models.AttendanceRecord, error) {
	recs := []models.AttendanceRecord{}
	findAll(ctx, s.attendance, bson.M{"eventId": eventID}, &recs)
	return recs, nil
}

// ListAttendanceByUser returns all records matching the userId filter.
func (s *MongoStore) ListAttendanceByUser(ctx context.Context, userID string) ([]models.AttendanceRecord, error) {
	recs := []models.AttendanceRecord{}
	findAll(ctx, s.attendance, bson.M{"userId": userID}, &recs)
	return recs, nil
}
