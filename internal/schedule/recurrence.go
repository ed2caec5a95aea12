package schedule

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// Recurrence says whether and how an entry repeats after its anchor day.
// The string values are the persisted tags.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "everyDay"
	RecurrenceWeekly  Recurrence = "everyWeek"
	RecurrenceMonthly Recurrence = "everyMonth"
)

// Valid reports whether r is one of the known tags.
func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// MarshalJSON writes the zero Recurrence as "none".
func (r Recurrence) MarshalJSON() ([]byte, error) {
	if r == "" {
		r = RecurrenceNone
	}
	return json.Marshal(string(r))
}

// UnmarshalJSON rejects unknown tags so a foreign blob cannot slip through.
func (r *Recurrence) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if !Recurrence(s).Valid() {
		return fmt.Errorf("unknown recurrence tag %q", s)
	}
	*r = Recurrence(s)
	return nil
}

// ParseRecurrence parses a recurrence tag or a natural language phrase.
func ParseRecurrence(s string) (Recurrence, error) {
	raw := strings.TrimSpace(s)
	if r := Recurrence(raw); r.Valid() {
		return r, nil
	}

	switch strings.ToLower(raw) {
	case "", "none", "never", "once":
		return RecurrenceNone, nil
	case "daily", "every day", "everyday":
		return RecurrenceDaily, nil
	case "weekly", "every week":
		return RecurrenceWeekly, nil
	case "monthly", "every month":
		return RecurrenceMonthly, nil
	}

	return "", fmt.Errorf("unrecognized recurrence %q", s)
}

// RRuleValue returns the RFC 5545 RRULE value for r, or "" for RecurrenceNone.
func (r Recurrence) RRuleValue() string {
	switch r {
	case RecurrenceDaily:
		return "FREQ=DAILY"
	case RecurrenceWeekly:
		return "FREQ=WEEKLY"
	case RecurrenceMonthly:
		return "FREQ=MONTHLY"
	}
	return ""
}

// RRule builds the recurrence rule starting at anchor. A non-repeating
// entry yields a single-occurrence rule.
//
// RFC 5545 skips invalid dates, so a monthly rule anchored on the 31st has
// no instance in shorter months.
func (r Recurrence) RRule(anchor time.Time) (*rrule.RRule, error) {
	opts := rrule.ROption{Dtstart: anchor}
	switch r {
	case RecurrenceNone, "":
		opts.Freq = rrule.DAILY
		opts.Count = 1
	case RecurrenceDaily:
		opts.Freq = rrule.DAILY
	case RecurrenceWeekly:
		opts.Freq = rrule.WEEKLY
	case RecurrenceMonthly:
		opts.Freq = rrule.MONTHLY
	default:
		return nil, fmt.Errorf("unknown recurrence %q", string(r))
	}
	return rrule.NewRRule(opts)
}
