// Package streak computes consecutive-day spending and no-spending streaks
// anchored at today.
package streak

import (
	"math"
	"time"

	"quickspend/internal/models"
)

// Data holds the two mutually exclusive streak counters. For any "today"
// exactly one of the counters is non-zero, except when there is no history
// at all, in which case NoExpenseStreak counts today itself.
type Data struct {
	SpendingStreak  int `json:"spending_streak"`
	NoExpenseStreak int `json:"no_expense_streak"`
}

// Compute walks backward from today one calendar day at a time. It is a pure
// function of the transaction list and the injected now; day boundaries are
// taken in now's location. Multiple transactions on the same day collapse to
// a single streak day, and malformed records are skipped.
func Compute(txs []models.Transaction, now time.Time) Data {
	loc := now.Location()

	expenseDays := make(map[time.Time]struct{})
	var earliest time.Time
	hasAny := false
	for _, t := range txs {
		if t.Amount <= 0 || math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
			continue
		}
		day := dayOf(t.Date.In(loc))
		if !hasAny || day.Before(earliest) {
			earliest = day
			hasAny = true
		}
		if t.Type == models.TransactionTypeExpense {
			expenseDays[day] = struct{}{}
		}
	}

	today := dayOf(now)

	if _, spent := expenseDays[today]; spent {
		n := 0
		for d := today; ; d = d.AddDate(0, 0, -1) {
			if _, ok := expenseDays[d]; !ok {
				break
			}
			n++
		}
		return Data{SpendingStreak: n}
	}

	// Today has no expense; an empty history still counts today itself.
	if !hasAny {
		return Data{NoExpenseStreak: 1}
	}

	n := 0
	for d := today; ; d = d.AddDate(0, 0, -1) {
		if _, ok := expenseDays[d]; ok {
			break
		}
		n++
		if !d.After(earliest) {
			break
		}
	}
	return Data{NoExpenseStreak: n}
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
