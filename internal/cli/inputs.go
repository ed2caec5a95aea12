package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Raghav-2611/saanjha/internal/schedule"
)

// resolveDay parses a --date value relative to now. Empty means today.
func resolveDay(dateFlag string, now time.Time) (schedule.Date, error) {
	d, err := schedule.ParseDate(dateFlag, now)
	if err != nil {
		return schedule.Date{}, fmt.Errorf("invalid --date value: %w", err)
	}
	return d, nil
}

// resolveAt combines --date and --at into an instant in now's location.
// An empty --at keeps now's clock time, truncated to the minute.
func resolveAt(dateFlag, atFlag string, now time.Time) (time.Time, error) {
	day, err := resolveDay(dateFlag, now)
	if err != nil {
		return time.Time{}, err
	}

	clock := schedule.ClockOf(now)
	if strings.TrimSpace(atFlag) != "" {
		clock, err = schedule.ParseTimeOfDay(atFlag)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --at value: %w", err)
		}
	}
	return clock.On(day, now.Location()), nil
}

// parseMonthYearFlags parses the --month and --year flags into year and month.
// Defaults to current month/year if empty.
func parseMonthYearFlags(monthFlag, yearFlag string, now time.Time) (int, time.Month, error) {
	year := now.Year()
	if yearFlag != "" {
		y, err := strconv.Atoi(yearFlag)
		if err != nil || y <= 0 {
			return 0, 0, fmt.Errorf("invalid --year value %q (expected a positive number)", yearFlag)
		}
		year = y
	}

	month := now.Month()
	if monthFlag != "" {
		m, err := strconv.Atoi(monthFlag)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, fmt.Errorf("invalid --month value %q (expected 1-12)", monthFlag)
		}
		month = time.Month(m)
	}

	return year, month, nil
}

// monthBounds returns the first and last day of the month.
func monthBounds(year int, month time.Month) (schedule.Date, schedule.Date) {
	first := schedule.NewDate(year, month, 1)
	last := schedule.NewDate(year, month+1, 0)
	return first, last
}

// describeEntry is the one-line summary printed after a change.
func describeEntry(e schedule.Entry, loc *time.Location) string {
	at := e.OccursAt.In(loc)
	desc := fmt.Sprintf("%s %s: %s on %s, %s",
		e.Kind, Silent(e.ShortID()), Primary(e.Title),
		at.Format("Mon Jan 2 2006"), schedule.FormatClock(schedule.ClockOf(at)))
	if e.Recurrence != schedule.RecurrenceNone && e.Recurrence != "" {
		desc += fmt.Sprintf(" (%s)", schedule.DescribeRecurrence(e.Recurrence, at))
	}
	return desc
}
