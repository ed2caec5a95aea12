package pregnancy

import (
	"fmt"
	"strings"
	"time"
)

const (
	// GestationDays is the length of a pregnancy counted from the first day
	// of the last menstrual period.
	GestationDays = 280

	// TermWeeks is the week count the progress bar is drawn against.
	TermWeeks = 40
)

// CalculateDueDate returns the estimated due date for a pregnancy whose
// last menstrual period started on lmp: exactly 280 calendar days later,
// keeping lmp's clock time and location.
func CalculateDueDate(lmp time.Time) time.Time {
	return lmp.AddDate(0, 0, GestationDays)
}

// Status is the user's current journey stage. The string values are the
// persisted tags.
type Status string

const (
	StatusPregnant   Status = "Pregnant"
	StatusTTC        Status = "Trying to Conceive"
	StatusPostpartum Status = "Postpartum"
	StatusLoss       Status = "Miscarriage/Loss"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusPregnant, StatusTTC, StatusPostpartum, StatusLoss}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// ShowsDueDate reports whether a due date is meaningful for s.
func (s Status) ShowsDueDate() bool {
	return s == StatusPregnant
}

// ParseStatus accepts a persisted tag or a short alias such as "ttc".
func ParseStatus(s string) (Status, error) {
	raw := strings.TrimSpace(s)
	if st := Status(raw); st.Valid() {
		return st, nil
	}

	switch strings.ToLower(raw) {
	case "pregnant":
		return StatusPregnant, nil
	case "ttc", "trying", "trying to conceive":
		return StatusTTC, nil
	case "postpartum":
		return StatusPostpartum, nil
	case "loss", "miscarriage", "miscarriage/loss":
		return StatusLoss, nil
	}

	return "", fmt.Errorf("unknown status '%s'", s)
}

// daysBetween counts calendar days from a to b, each taken in its own
// location. It is negative when b is before a.
func daysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// GestationalAge returns the completed weeks and remaining days since lmp.
// Dates before lmp count as zero.
func GestationalAge(lmp, now time.Time) (weeks, days int) {
	elapsed := daysBetween(lmp, now.In(lmp.Location()))
	if elapsed < 0 {
		return 0, 0
	}
	return elapsed / 7, elapsed % 7
}

// CurrentWeek is the pregnancy week now falls in, starting at week 1 and
// clamped to 1..40.
func CurrentWeek(lmp, now time.Time) int {
	weeks, _ := GestationalAge(lmp, now)
	return ClampWeek(weeks + 1)
}

// ClampWeek limits week to 1..40.
func ClampWeek(week int) int {
	return max(1, min(week, TermWeeks))
}

// Progress returns how far through the term week is, from 0.025 to 1.
func Progress(week int) float64 {
	return float64(ClampWeek(week)) / TermWeeks
}

// TrimesterOf returns 1, 2 or 3 for the given pregnancy week.
func TrimesterOf(week int) int {
	switch {
	case week <= 13:
		return 1
	case week <= 27:
		return 2
	default:
		return 3
	}
}

// DaysUntilDue counts calendar days from now until the due date. It is
// negative once the due date has passed.
func DaysUntilDue(lmp, now time.Time) int {
	return daysBetween(now.In(lmp.Location()), CalculateDueDate(lmp))
}

// Summary bundles the figures shown for a pregnancy on a given day.
type Summary struct {
	LMP       time.Time
	DueDate   time.Time
	Weeks     int
	Days      int
	Week      int
	Trimester int
	DaysLeft  int
	Progress  float64
}

// Summarize computes the Summary for lmp as of now.
func Summarize(lmp, now time.Time) Summary {
	weeks, days := GestationalAge(lmp, now)
	week := CurrentWeek(lmp, now)
	return Summary{
		LMP:       lmp,
		DueDate:   CalculateDueDate(lmp),
		Weeks:     weeks,
		Days:      days,
		Week:      week,
		Trimester: TrimesterOf(week),
		DaysLeft:  DaysUntilDue(lmp, now),
		Progress:  Progress(week),
	}
}
