package localstore

import (
	"context"

	"github.com/xburian/volejbal-app-v2/internal/models"
)

// ListAttendance returns all attendance records in storage order.
func (s *LocalStore) ListAttendance(ctx context.Context) ([]models.AttendanceRecord, error) {
	var recs []models.AttendanceRecord
	if err := s.readCollection(ctx, collectionAttendance, &recs); err != nil {
		warnEmpty(collectionAttendance, err)
		return []models.AttendanceRecord{}, nil
	}
	return recs, nil
}

// GetAttendance retrieves the record for (eventID, userID).
// Returns (nil, nil) if not found.
func (s *LocalStore) GetAttendance(ctx context.Context, eventID, userID string) (*models.AttendanceRecord, error) {
	recs, err := s.ListAttendance(ctx)
	if err != nil {
		return nil, err
	}
	key := models.AttendanceKey(eventID, userID)
	for i := range recs {
		if recs[i].Key() == key {
			return &recs[i], nil
		}
	}
	return nil, nil
}

// UpsertAttendance inserts or replaces the record keyed by
// (rec.EventID, rec.UserID).
func (s *LocalStore) UpsertAttendance(ctx context.Context, rec *models.AttendanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var recs []models.AttendanceRecord
	if err := s.readCollection(ctx, collectionAttendance, &recs); err != nil {
		return err
	}

	replaced := false
	for i := range recs {
		if recs[i].Key() == rec.Key() {
			recs[i] = *rec
			replaced = true
			break
		}
	}
	if !replaced {
		recs = append(recs, *rec)
	}
	return s.writeCollection(ctx, collectionAttendance, recs)
}

// DeleteAttendance removes the record for (eventID, userID).
func (s *LocalStore) DeleteAttendance(ctx context.Context, eventID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var recs []models.AttendanceRecord
	if err := s.readCollection(ctx, collectionAttendance, &recs); err != nil {
		return err
	}

	key := models.AttendanceKey(eventID, userID)
	kept := recs[:0]
	for _, r := range recs {
		if r.Key() != key {
			kept = append(kept, r)
		}
	}
	return s.writeCollection(ctx, collectionAttendance, kept)
}

// ListAttendanceByEvent returns all records whose EventID matches, filtered
// in memory, preserving storage order.
func (s *LocalStore) ListAttendanceByEvent(ctx context.Context, eventID string) ([]models.AttendanceRecord, error) {
	recs, err := s.ListAttendance(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]models.AttendanceRecord, 0)
	for _, r := range recs {
		if r.EventID == eventID {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

// ListAttendanceByUser returns all records whose UserID matches.
func (s *LocalStore) ListAttendanceByUser(ctx context.Context, userID string) ([]models.AttendanceRecord, error) {
	recs, err := s.ListAttendance(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]models.AttendanceRecord, 0)
	for _, r := range recs {
		if r.UserID == userID {
			matched = append(matched, r)
		}
	}
	return matched, nil
}
