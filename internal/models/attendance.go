package models

// Status is a user's attendance state for an event.
type Status string

const (
	StatusJoined   Status = "joined"
	StatusDeclined Status = "declined"
	StatusMaybe    Status = "maybe"
)

// Valid reports whether s is one of the three known states.
func (s Status) Valid() bool {
	switch s {
	case StatusJoined, StatusDeclined, StatusMaybe:
		return true
	}
	return false
}

// AttendanceRecord is the persisted unit recording one user's status for one
// event. Exactly one logical record exists per (EventID, UserID) pair; upserts
// overwrite by that key, last write wins.
type AttendanceRecord struct {
	EventID string `json:"eventId" bson:"eventId"`
	UserID  string `json:"userId" bson:"userId"`

	// Status is one of joined/declined/maybe.
	Status Status `json:"status" bson:"status"`

	// HasPaid records whether the user has settled their share of the
	// event cost.
	HasPaid bool `json:"hasPaid" bson:"hasPaid"`

	// Timestamp is the Unix milliseconds of the last write.
	Timestamp int64 `json:"timestamp" bson:"timestamp"`
}

// Key returns the composite identity used to address the record in storage.
func (a AttendanceRecord) Key() string {
	return AttendanceKey(a.EventID, a.UserID)
}

// AttendanceKey forms the deterministic composite key for an
// (eventID, userID) pair.
func AttendanceKey(eventID, userID string) string {
	return eventID + "_" + userID
}

// Participant is the per-event view of a user's attendance, produced by
// joining an AttendanceRecord against the User it references.
type Participant struct {
	UserID string `json:"userId"`

	// Name is the user's display name, or a fallback when the referenced
	// user no longer exists.
	Name string `json:"name"`

	PhotoURL string `json:"photoUrl,omitempty"`
	Status   Status `json:"status"`
	HasPaid  bool   `json:"hasPaid"`
}
