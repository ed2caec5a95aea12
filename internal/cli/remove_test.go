package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/Raghav-2611/saanjha/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveConfirmed(t *testing.T) {
	a := newTestApp(t)
	e := addEntry(t, a.store, "Scan", testNow, schedule.KindEvent, schedule.RecurrenceNone)
	keep := addEntry(t, a.store, "Yoga", testNow, schedule.KindEvent, schedule.RecurrenceWeekly)
	cmd, out := testCmd()

	require.NoError(t, runRemove(cmd, a.store, e.ShortID(), AlwaysYes()))

	assert.Contains(t, out.String(), "removed entry "+e.ShortID())
	assert.NotContains(t, out.String(), "every occurrence")
	assert.Equal(t, []schedule.Entry{keep}, a.store.Items())
}

func TestRemoveDeclined(t *testing.T) {
	a := newTestApp(t)
	e := addEntry(t, a.store, "Scan", testNow, schedule.KindEvent, schedule.RecurrenceNone)
	cmd, out := testCmd()

	declined := func(string) (bool, error) { return false, nil }
	require.NoError(t, runRemove(cmd, a.store, e.ShortID(), declined))

	assert.Contains(t, out.String(), "cancelled")
	assert.Len(t, a.store.Items(), 1)
}

func TestRemoveRecurringWarns(t *testing.T) {
	a := newTestApp(t)
	e := addEntry(t, a.store, "Vitamins", time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC), schedule.KindTask, schedule.RecurrenceDaily)
	cmd, out := testCmd()

	require.NoError(t, runRemove(cmd, a.store, e.ShortID(), AlwaysYes()))

	assert.Contains(t, out.String(), "every occurrence of this entry will be removed")
	assert.Empty(t, a.store.OccurringOn(schedule.NewDate(2025, 3, 4)))
}

func TestRemoveUnknown(t *testing.T) {
	a := newTestApp(t)
	cmd, _ := testCmd()

	err := runRemove(cmd, a.store, "deadbeef", AlwaysYes())
	assert.True(t, errors.Is(err, schedule.ErrNotFound))
}
