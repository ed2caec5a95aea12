package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar day with no time-of-day or zone attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// NewDate builds a Date, normalizing out-of-range values the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Time returns midnight of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) utc() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns d shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return DateOf(d.utc().AddDate(0, 0, n))
}

// Weekday returns the day of the week d falls on.
func (d Date) Weekday() time.Weekday {
	return d.utc().Weekday()
}

func (d Date) Before(o Date) bool { return d.utc().Before(o.utc()) }
func (d Date) After(o Date) bool  { return d.utc().After(o.utc()) }
func (d Date) Equal(o Date) bool  { return d == o }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String returns d in "2006-01-02" format.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ParseDate parses a date expression relative to now.
// Supports: "today", "tomorrow", "yesterday", "monday", "next tuesday", "on Monday",
// "2024-01-15", "Jan 2", "Jan 2 2006", "Jan 2, 2006", "January 2", "January 2 2006",
// "2 Jan", "2 Jan 2006", "2 January", "2 January 2006".
func ParseDate(s string, now time.Time) (Date, error) {
	input := strings.TrimSpace(s)
	s = strings.ToLower(input)

	// Strip "on " prefix
	s = strings.TrimPrefix(s, "on ")
	s = strings.TrimSpace(s)

	today := DateOf(now)

	// Relative dates
	switch s {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	case "yesterday":
		return today.AddDays(-1), nil
	}

	// Weekday names (with optional "next " prefix)
	cleaned := strings.TrimPrefix(s, "next ")
	if wd, ok := parseWeekday(cleaned); ok {
		return nextWeekday(today, wd), nil
	}

	// Absolute date formats. Month tokens in layouts are only recognised
	// as "Jan" and "January", so the value is title-cased to match.
	value := titleWords(strings.Join(strings.Fields(s), " "))
	layouts := []string{
		"2006-01-02",
		"Jan 2",
		"Jan 2 2006",
		"Jan 2, 2006",
		"January 2",
		"January 2 2006",
		"January 2, 2006",
		"2 Jan",
		"2 Jan 2006",
		"2 January",
		"2 January 2006",
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			// For layouts without a year, use the current year
			if !hasYear(layout) {
				return Date{Year: now.Year(), Month: t.Month(), Day: t.Day()}, nil
			}
			return DateOf(t), nil
		}
	}

	return Date{}, fmt.Errorf("unrecognized date %q", input)
}

// titleWords upper-cases the first letter of each space-separated word.
func titleWords(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekday(s string) (time.Weekday, bool) {
	wd, ok := weekdays[s]
	return wd, ok
}

// nextWeekday returns the next occurrence of the given weekday after today.
// If today is that weekday, it returns the following week.
func nextWeekday(today Date, wd time.Weekday) Date {
	daysAhead := int(wd) - int(today.Weekday())
	if daysAhead <= 0 {
		daysAhead += 7
	}
	return today.AddDays(daysAhead)
}

func hasYear(layout string) bool {
	return strings.Contains(layout, "2006")
}
