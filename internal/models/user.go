package models

// User represents a registered member of the group.
//
// Identity is the ID; display names are additionally kept unique by the
// service layer (case-insensitive, whitespace-trimmed) so two "Honza"s
// can't sign up by accident. The storage layer does not enforce this.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id" bson:"_id"`

	// Name is the display name of the user.
	Name string `json:"name" bson:"name"`

	// PhotoURL is an optional avatar URL.
	PhotoURL string `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
}
