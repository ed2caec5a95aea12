package schedule

import (
	"fmt"
	"sort"
	"time"
)

// Occurrence is one computed appearance of an entry on a particular day.
type Occurrence struct {
	Entry Entry
	At    time.Time // the entry's clock time on that day
}

// DayAgenda holds everything that occurs on a single day, split by kind.
// Each list is sorted by time of day, then by title.
type DayAgenda struct {
	Date   Date
	Events []Occurrence
	Tasks  []Occurrence
}

// Len returns the number of occurrences on the day.
func (a DayAgenda) Len() int {
	return len(a.Events) + len(a.Tasks)
}

// All returns events and tasks merged into a single time-ordered list.
func (a DayAgenda) All() []Occurrence {
	all := make([]Occurrence, 0, a.Len())
	all = append(all, a.Events...)
	all = append(all, a.Tasks...)
	sortOccurrences(all)
	return all
}

func (a *DayAgenda) add(o Occurrence) {
	if o.Entry.Kind == KindTask {
		a.Tasks = append(a.Tasks, o)
	} else {
		a.Events = append(a.Events, o)
	}
}

func occurrenceOn(e Entry, d Date, loc *time.Location) Occurrence {
	return Occurrence{Entry: e, At: ClockOf(e.OccursAt.In(loc)).On(d, loc)}
}

// BuildAgenda collects the entries occurring on d into a DayAgenda.
func BuildAgenda(entries []Entry, d Date, loc *time.Location) DayAgenda {
	if loc == nil {
		loc = time.Local
	}
	agenda := DayAgenda{Date: d}
	for _, e := range entries {
		if OccursOn(e, d, loc) {
			agenda.add(occurrenceOn(e, d, loc))
		}
	}
	sortOccurrences(agenda.Events)
	sortOccurrences(agenda.Tasks)
	return agenda
}

// Expand evaluates entries into concrete day-by-day agendas between from and
// to (inclusive). Recurring entries are expanded through their RRULE; one-off
// entries are checked for inclusion. Days with no occurrences are omitted.
// The result is sorted by date.
//
// Rules run in UTC on the anchor's wall-clock fields in loc. Zones that
// change their clocks at midnight have days with no 00:00, and a rule in
// such a zone would skip those days.
func Expand(entries []Entry, from, to Date, loc *time.Location) ([]DayAgenda, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("range end %s is before start %s", to, from)
	}
	if loc == nil {
		loc = time.Local
	}

	start := from.utc()
	end := to.AddDays(1).utc().Add(-time.Nanosecond)
	dayMap := make(map[Date]*DayAgenda)

	put := func(e Entry, d Date) {
		a, ok := dayMap[d]
		if !ok {
			a = &DayAgenda{Date: d}
			dayMap[d] = a
		}
		a.add(occurrenceOn(e, d, loc))
	}

	for _, e := range entries {
		anchor := e.OccursAt.In(loc)

		if e.Recurrence == RecurrenceNone || e.Recurrence == "" {
			d := DateOf(anchor)
			if !d.Before(from) && !d.After(to) {
				put(e, d)
			}
			continue
		}

		r, err := e.Recurrence.RRule(wallClock(anchor))
		if err != nil {
			return nil, fmt.Errorf("entry '%s': %w", e.ShortID(), err)
		}
		for _, t := range r.Between(start, end, true) {
			put(e, DateOf(t))
		}
	}

	result := make([]DayAgenda, 0, len(dayMap))
	for _, a := range dayMap {
		sortOccurrences(a.Events)
		sortOccurrences(a.Tasks)
		result = append(result, *a)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})

	return result, nil
}

// wallClock returns t's date and clock fields as a UTC time.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func sortOccurrences(occ []Occurrence) {
	sort.SliceStable(occ, func(i, j int) bool {
		if !occ[i].At.Equal(occ[j].At) {
			return occ[i].At.Before(occ[j].At)
		}
		return occ[i].Entry.Title < occ[j].Entry.Title
	})
}
