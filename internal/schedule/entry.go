package schedule

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind is a descriptive label on an entry. It never affects recurrence.
type Kind string

const (
	KindEvent Kind = "event"
	KindTask  Kind = "task"
)

// ParseKind parses a kind tag, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindEvent, KindTask:
		return k, nil
	}
	return "", fmt.Errorf("unknown kind %q (valid: event, task)", s)
}

// MarshalJSON writes the zero Kind as "event".
func (k Kind) MarshalJSON() ([]byte, error) {
	if k == "" {
		k = KindEvent
	}
	return json.Marshal(string(k))
}

// UnmarshalJSON rejects tags other than "event" and "task".
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch Kind(s) {
	case KindEvent, KindTask:
		*k = Kind(s)
		return nil
	}
	return fmt.Errorf("unknown kind tag %q", s)
}

// Entry is a single schedule item: an event or task anchored at OccursAt,
// optionally repeating after that day.
type Entry struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	OccursAt      time.Time  `json:"date"`
	Notes         string     `json:"notes,omitempty"`
	Kind          Kind       `json:"kind"`
	CreatedByName string     `json:"createdByName,omitempty"`
	Recurrence    Recurrence `json:"repeatRule"`
}

// NewEntry creates a non-repeating entry with a fresh id.
func NewEntry(title string, at time.Time, kind Kind) Entry {
	return Entry{
		ID:         uuid.New(),
		Title:      title,
		OccursAt:   at,
		Kind:       kind,
		Recurrence: RecurrenceNone,
	}
}

// ShortID returns the first 8 characters of the entry id, for display.
func (e Entry) ShortID() string {
	return e.ID.String()[:8]
}

// AnchorDate returns the calendar day of OccursAt in loc.
func (e Entry) AnchorDate(loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	return DateOf(e.OccursAt.In(loc))
}

func encodeEntries(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	return json.Marshal(entries)
}

func decodeEntries(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
