// Package analytics derives dashboard aggregates from the transaction
// collection. Every computation here is a pure function of the transactions,
// a reference period, and an injected now; identical inputs always produce
// identical output. Calendar boundaries (days, weeks, months) are taken in
// now's location, and weeks start on Monday.
package analytics

import (
	"time"
)

// PeriodType enumerates the caller-selectable date windows.
type PeriodType string

const (
	PeriodThisMonth PeriodType = "this_month"
	PeriodLastMonth PeriodType = "last_month"
	PeriodThisYear  PeriodType = "this_year"
	PeriodLastYear  PeriodType = "last_year"
	PeriodAllTime   PeriodType = "all_time"
	PeriodCustom    PeriodType = "custom"
)

// Period is a caller-selected date window used to scope aggregation. Start
// and End are only consulted for PeriodCustom; End is inclusive at day
// granularity.
type Period struct {
	Type  PeriodType `json:"type"`
	Start time.Time  `json:"start,omitempty"`
	End   time.Time  `json:"end,omitempty"`
}

// ParsePeriodType validates a period string from the transport layer.
func ParsePeriodType(s string) (PeriodType, bool) {
	switch PeriodType(s) {
	case PeriodThisMonth, PeriodLastMonth, PeriodThisYear, PeriodLastYear,
		PeriodAllTime, PeriodCustom:
		return PeriodType(s), true
	}
	return "", false
}

// Key returns a stable cache-key fragment for the period.
func (p Period) Key() string {
	if p.Type == PeriodCustom {
		return string(p.Type) + ":" + p.Start.Format("2006-01-02") + ":" + p.End.Format("2006-01-02")
	}
	return string(p.Type)
}

// bounds resolves the half-open [start, end) window for a period. All-time
// has no fixed start; callers resolve it against the earliest transaction
// via allTimeBounds.
func (p Period) bounds(now time.Time) (time.Time, time.Time, bool) {
	loc := now.Location()
	switch p.Type {
	case PeriodThisMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 1, 0), true
	case PeriodLastMonth:
		end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return end.AddDate(0, -1, 0), end, true
	case PeriodThisYear:
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(1, 0, 0), true
	case PeriodLastYear:
		start := time.Date(now.Year()-1, 1, 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(1, 0, 0), true
	case PeriodCustom:
		start := dayStart(p.Start.In(loc))
		end := dayStart(p.End.In(loc)).AddDate(0, 0, 1)
		if end.Before(start) {
			end = start
		}
		return start, end, true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// previousBounds returns the immediately preceding window of identical
// length and type. All-time has no predecessor.
func (p Period) previousBounds(now time.Time) (time.Time, time.Time, bool) {
	start, end, ok := p.bounds(now)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	switch p.Type {
	case PeriodThisMonth, PeriodLastMonth:
		return start.AddDate(0, -1, 0), start, true
	case PeriodThisYear, PeriodLastYear:
		return start.AddDate(-1, 0, 0), start, true
	default:
		span := end.Sub(start)
		if span <= 0 {
			return time.Time{}, time.Time{}, false
		}
		return start.Add(-span), start, true
	}
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekStart returns the Monday 00:00 of the week containing t.
func weekStart(t time.Time) time.Time {
	d := dayStart(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}
