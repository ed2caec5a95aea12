package schedule

import (
	"fmt"
	"strings"
	"time"
)

// DescribeRecurrence returns a human-readable description of how an entry
// anchored at anchor repeats, e.g. "every Tuesday" or "every month on the 4th".
func DescribeRecurrence(r Recurrence, anchor time.Time) string {
	switch r {
	case RecurrenceDaily:
		return "every day"
	case RecurrenceWeekly:
		return "every " + anchor.Weekday().String()
	case RecurrenceMonthly:
		return fmt.Sprintf("every month on the %s", ordinal(anchor.Day()))
	default:
		return "once on " + anchor.Format("Jan 2, 2006")
	}
}

// FormatClock formats a TimeOfDay as "H:MM AM/PM".
func FormatClock(t TimeOfDay) string {
	suffix := "AM"
	display := t.Hour
	if t.Hour == 0 {
		display = 12
	} else if t.Hour == 12 {
		suffix = "PM"
	} else if t.Hour > 12 {
		display = t.Hour - 12
		suffix = "PM"
	}

	return fmt.Sprintf("%d:%02d %s", display, t.Minute, suffix)
}

// FormatOccurrence returns a single agenda line: "9:00 AM  Prenatal vitamins (every day)".
func FormatOccurrence(o Occurrence) string {
	line := fmt.Sprintf("%8s  %s", FormatClock(ClockOf(o.At)), o.Entry.Title)
	if o.Entry.Recurrence != RecurrenceNone && o.Entry.Recurrence != "" {
		line += fmt.Sprintf(" (%s)", DescribeRecurrence(o.Entry.Recurrence, o.Entry.OccursAt.In(o.At.Location())))
	}
	return line
}

// FormatDayHeading formats a day as "Tue Mar  4".
func FormatDayHeading(d Date) string {
	return d.Time(time.UTC).Format("Mon Jan _2")
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// TrimTitle shortens s to at most n runes, adding an ellipsis when cut.
func TrimTitle(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n || n < 1 {
		return string(r)
	}
	return string(r[:n-1]) + "…"
}
