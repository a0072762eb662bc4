package models

// DebtItem represents money a user owes for one overdue, unpaid event.
// Computed at view time, never stored.
type DebtItem struct {
	// Event is the hydrated event the debt belongs to.
	Event VolleyballEvent `json:"event"`

	// Amount is the user's share of the event cost in CZK, rounded up to
	// a whole crown.
	Amount int `json:"amount"`

	// DaysOverdue is the number of whole calendar days between the event
	// date and now.
	DaysOverdue int `json:"daysOverdue"`
}
