package schedule

import "time"

// OccursOn reports whether e occurs on day d, with e's anchor interpreted in loc.
//
// The anchor day always matches. Days before the anchor never match. Days
// after it match according to the recurrence rule: every day, the same
// weekday, or the same day-of-month (no rollover into short months).
func OccursOn(e Entry, d Date, loc *time.Location) bool {
	anchor := e.AnchorDate(loc)

	if d == anchor {
		return true
	}
	if !d.After(anchor) {
		return false
	}

	switch e.Recurrence {
	case RecurrenceDaily:
		return true
	case RecurrenceWeekly:
		return d.Weekday() == anchor.Weekday()
	case RecurrenceMonthly:
		return d.Day == anchor.Day
	default:
		return false
	}
}
