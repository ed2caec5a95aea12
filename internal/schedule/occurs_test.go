package schedule

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOccursOnWeeklyScenario(t *testing.T) {
	e := testEntry("Prenatal class", time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC), KindEvent, RecurrenceWeekly)

	assert.True(t, OccursOn(e, NewDate(2025, 3, 4), time.UTC), "anchor day")
	assert.True(t, OccursOn(e, NewDate(2025, 3, 11), time.UTC), "one week later")
	assert.False(t, OccursOn(e, NewDate(2025, 3, 5), time.UTC), "next day, different weekday")
	assert.False(t, OccursOn(e, NewDate(2025, 2, 25), time.UTC), "same weekday before anchor")
}

func TestOccursOnNone(t *testing.T) {
	e := testEntry("Scan", time.Date(2025, 3, 4, 23, 59, 0, 0, time.UTC), KindEvent, RecurrenceNone)
	anchor := NewDate(2025, 3, 4)

	for offset := -40; offset <= 40; offset++ {
		d := anchor.AddDays(offset)
		assert.Equal(t, offset == 0, OccursOn(e, d, time.UTC), "day %s", d)
	}
}

func TestOccursOnDaily(t *testing.T) {
	e := testEntry("Vitamins", time.Date(2025, 2, 27, 21, 0, 0, 0, time.UTC), KindTask, RecurrenceDaily)
	anchor := NewDate(2025, 2, 27)

	for offset := -10; offset <= 400; offset++ {
		d := anchor.AddDays(offset)
		assert.Equal(t, offset >= 0, OccursOn(e, d, time.UTC), "day %s", d)
	}
}

func TestOccursOnWeekly(t *testing.T) {
	e := testEntry("Yoga", time.Date(2024, 12, 30, 18, 0, 0, 0, time.UTC), KindTask, RecurrenceWeekly)
	anchor := NewDate(2024, 12, 30)

	for offset := -21; offset <= 400; offset++ {
		d := anchor.AddDays(offset)
		want := offset >= 0 && d.Weekday() == time.Monday
		assert.Equal(t, want, OccursOn(e, d, time.UTC), "day %s", d)
	}
}

func TestOccursOnMonthly(t *testing.T) {
	tests := []struct {
		anchorDay int
		want      []string
	}{
		{4, []string{"2025-01-04", "2025-02-04", "2025-03-04", "2025-04-04", "2025-05-04", "2025-06-04"}},
		{29, []string{"2025-01-29", "2025-03-29", "2025-04-29", "2025-05-29", "2025-06-29"}},
		{30, []string{"2025-01-30", "2025-03-30", "2025-04-30", "2025-05-30", "2025-06-30"}},
		{31, []string{"2025-01-31", "2025-03-31", "2025-05-31"}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("day %d", tt.anchorDay), func(t *testing.T) {
			e := testEntry("Bills", time.Date(2025, 1, tt.anchorDay, 8, 0, 0, 0, time.UTC), KindEvent, RecurrenceMonthly)

			var got []string
			for d := NewDate(2024, 12, 1); !d.After(NewDate(2025, 6, 30)); d = d.AddDays(1) {
				if OccursOn(e, d, time.UTC) {
					got = append(got, d.String())
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOccursOnLeapDayMonthly(t *testing.T) {
	e := testEntry("Leap", time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC), KindEvent, RecurrenceMonthly)

	assert.True(t, OccursOn(e, NewDate(2024, 3, 29), time.UTC))
	assert.False(t, OccursOn(e, NewDate(2025, 2, 28), time.UTC))
	assert.True(t, OccursOn(e, NewDate(2028, 2, 29), time.UTC))
}

func TestOccursOnNeverBeforeAnchor(t *testing.T) {
	anchorTime := time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)
	for _, rec := range []Recurrence{RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly} {
		e := testEntry("x", anchorTime, KindEvent, rec)
		for offset := 1; offset <= 400; offset++ {
			d := NewDate(2025, 3, 4).AddDays(-offset)
			assert.False(t, OccursOn(e, d, time.UTC), "%s on %s", rec, d)
		}
	}
}

func TestOccursOnAnchorDayForEveryRule(t *testing.T) {
	// The anchor day matches unconditionally, whatever time the entry is at.
	for _, rec := range []Recurrence{RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, ""} {
		for _, hour := range []int{0, 12, 23} {
			e := testEntry("x", time.Date(2025, 3, 4, hour, 59, 0, 0, time.UTC), KindEvent, rec)
			assert.True(t, OccursOn(e, NewDate(2025, 3, 4), time.UTC), "%q at %02d:59", rec, hour)
		}
	}
}

func TestOccursOnResolvesAnchorInLocation(t *testing.T) {
	// 23:30 UTC on Tuesday is already Wednesday in Tokyo.
	e := testEntry("Call", time.Date(2025, 3, 4, 23, 30, 0, 0, time.UTC), KindEvent, RecurrenceWeekly)
	tokyo := time.FixedZone("JST", 9*60*60)

	assert.True(t, OccursOn(e, NewDate(2025, 3, 5), tokyo))
	assert.True(t, OccursOn(e, NewDate(2025, 3, 12), tokyo))
	assert.False(t, OccursOn(e, NewDate(2025, 3, 4), tokyo))
	assert.False(t, OccursOn(e, NewDate(2025, 3, 11), tokyo))
}
