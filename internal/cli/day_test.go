package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/Raghav-2611/saanjha/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedSampleWeek stores a mix of one-off and repeating entries around testNow.
func seedSampleWeek(t *testing.T, store *schedule.Store) {
	t.Helper()
	scan := addEntry(t, store, "Scan", time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC), schedule.KindEvent, schedule.RecurrenceNone)
	scan.Notes = "City Hospital"
	require.NoError(t, store.Update(scan))

	addEntry(t, store, "Yoga", time.Date(2025, 2, 25, 18, 30, 0, 0, time.UTC), schedule.KindEvent, schedule.RecurrenceWeekly)
	addEntry(t, store, "Vitamins", time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC), schedule.KindTask, schedule.RecurrenceDaily)
	addEntry(t, store, "Checkup", time.Date(2025, 1, 31, 11, 0, 0, 0, time.UTC), schedule.KindEvent, schedule.RecurrenceMonthly)
}

func TestDayAgenda(t *testing.T) {
	a := newTestApp(t)
	seedSampleWeek(t, a.store)
	cmd, out := testCmd()

	require.NoError(t, runDay(cmd, a.store, "", fixedNow))

	s := out.String()
	assert.Contains(t, s, "Tuesday, March 4 2025")
	assert.Contains(t, s, "10:00 AM  Scan")
	assert.Contains(t, s, "City Hospital")
	assert.Contains(t, s, "6:30 PM  Yoga (every Tuesday)")
	assert.Contains(t, s, "9:00 AM  Vitamins (every day)")
	assert.NotContains(t, s, "Checkup")

	// events section comes first, ordered by time
	assert.Less(t, strings.Index(s, "Events"), strings.Index(s, "Tasks"))
	assert.Less(t, strings.Index(s, "Scan"), strings.Index(s, "Yoga"))
	assert.Less(t, strings.Index(s, "Yoga"), strings.Index(s, "Vitamins"))
}

func TestDayOtherDate(t *testing.T) {
	a := newTestApp(t)
	seedSampleWeek(t, a.store)
	cmd, out := testCmd()

	require.NoError(t, runDay(cmd, a.store, "2025-03-31", fixedNow))

	s := out.String()
	assert.Contains(t, s, "Monday, March 31 2025")
	assert.Contains(t, s, "Checkup (every month on the 31st)")
	assert.Contains(t, s, "Vitamins")
	assert.NotContains(t, s, "Yoga")
}

func TestDayNothingScheduled(t *testing.T) {
	a := newTestApp(t)
	cmd, out := testCmd()

	require.NoError(t, runDay(cmd, a.store, "friday", fixedNow))
	assert.Equal(t, "Friday, March 7 2025\n  nothing scheduled\n", out.String())
}

func TestDayInvalidDate(t *testing.T) {
	a := newTestApp(t)
	cmd, _ := testCmd()

	assert.ErrorContains(t, runDay(cmd, a.store, "not a day", fixedNow), "invalid --date")
}
