package models

// Event is the stored form of a scheduled game.
//
// Participants are never persisted on the event record; they live in the
// attendance collection and are joined in on read (see VolleyballEvent).
type Event struct {
	// ID is the unique identifier for the event (UUID format).
	ID string `json:"id" bson:"_id"`

	// Title is the human-readable name of the event.
	Title string `json:"title" bson:"title"`

	// Date is the calendar date in ISO form (YYYY-MM-DD).
	Date string `json:"date" bson:"date"`

	// Time is the start time as entered by the organizer (e.g. "19:00").
	Time string `json:"time" bson:"time"`

	// Location is where the game takes place.
	Location string `json:"location" bson:"location"`

	// TotalCost is the court rental cost in CZK, split among joined
	// participants when computing debts. Always >= 0.
	TotalCost float64 `json:"totalCost" bson:"totalCost"`

	// AccountNumber is the organizer's bank account in local notation
	// ("[prefix-]number/bankCode") or IBAN form.
	AccountNumber string `json:"accountNumber" bson:"accountNumber"`

	// Description is optional free text.
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

// VolleyballEvent is an Event hydrated with its participant list.
// It is assembled fresh on every read and never persisted.
type VolleyballEvent struct {
	Event

	// Participants holds one entry per attendance record referencing this
	// event, in storage order.
	Participants []Participant `json:"participants"`
}
