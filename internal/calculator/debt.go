// Package calculator derives payment obligations from hydrated events.
// All functions are pure; "now" is passed in so callers and tests control it.
package calculator

import (
	"math"
	"time"

	"github.com/xburian/volejbal-app-v2/internal/models"
)

// OverdueAfterDays is the grace period after an event's date. An event counts
// as overdue once strictly more than this many whole calendar days have
// passed. Fixed business rule, not configurable per event.
const OverdueAfterDays = 1

// dateLayout is the ISO form events store their date in.
const dateLayout = "2006-01-02"

// Debts returns one DebtItem per event where the given user joined, has not
// paid, and the event is overdue. Order follows the input event list.
//
// The per-person share is ceil(totalCost / joinedCount), rounding up so the
// organizer is never left short. A zero joined count yields amount 0; it
// cannot happen for a real debt (the debtor themselves joined) but the
// calculator is usable on arbitrary event sets.
func Debts(events []models.VolleyballEvent, userID string, now time.Time) []models.DebtItem {
	items := []models.DebtItem{}
	for _, ev := range events {
		days, ok := daysOverdue(ev.Date, now)
		if !ok || days <= OverdueAfterDays {
			continue
		}

		var me *models.Participant
		joined := 0
		for i := range ev.Participants {
			p := &ev.Participants[i]
			if p.Status == models.StatusJoined {
				joined++
			}
			if p.UserID == userID {
				me = p
			}
		}
		if me == nil || me.Status != models.StatusJoined || me.HasPaid {
			continue
		}

		amount := 0
		if joined > 0 {
			amount = int(math.Ceil(ev.TotalCost / float64(joined)))
		}

		items = append(items, models.DebtItem{
			Event:       ev,
			Amount:      amount,
			DaysOverdue: days,
		})
	}
	return items
}

// Total sums the amounts of the given debt items.
func Total(items []models.DebtItem) int {
	total := 0
	for _, it := range items {
		total += it.Amount
	}
	return total
}

// daysOverdue computes the whole-calendar-day difference between the event
// date and now. Crossing midnight counts as a day even when fewer than 24
// hours have elapsed. Returns ok=false for unparseable dates.
func daysOverdue(date string, now time.Time) (int, bool) {
	eventDay, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return 0, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// Round instead of truncate so DST shifts don't lose a day.
	return int(math.Round(today.Sub(eventDay).Hours() / 24)), true
}
