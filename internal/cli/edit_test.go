package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/Raghav-2611/saanjha/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditTitleOnly(t *testing.T) {
	a := newTestApp(t)
	e := addEntry(t, a.store, "Scan", time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC), schedule.KindEvent, schedule.RecurrenceNone)
	cmd, out := testCmd()

	err := runEdit(cmd, a.store, e.ShortID(), entryFlags{Title: "Anatomy scan"}, map[string]bool{"title": true}, scriptedKit(nil, nil, true), fixedNow)
	require.NoError(t, err)

	got, ok := a.store.Get(e.ID)
	require.True(t, ok)
	assert.Equal(t, "Anatomy scan", got.Title)
	assert.Equal(t, e.OccursAt, got.OccursAt)
	assert.Contains(t, out.String(), "updated event")
}

func TestEditDateKeepsClock(t *testing.T) {
	a := newTestApp(t)
	e := addEntry(t, a.store, "Scan", time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC), schedule.KindEvent, schedule.RecurrenceNone)
	cmd, _ := testCmd()

	err := runEdit(cmd, a.store, e.ShortID(), entryFlags{Date: "2025-03-10"}, map[string]bool{"date": true}, scriptedKit(nil, nil, true), fixedNow)
	require.NoError(t, err)

	got, _ := a.store.Get(e.ID)
	assert.Equal(t, time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC), got.OccursAt)
}

func TestEditAtKeepsDay(t *testing.T) {
	a := newTestApp(t)
	e := addEntry(t, a.store, "Scan", time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC), schedule.KindEvent, schedule.RecurrenceNone)
	cmd, _ := testCmd()

	err := runEdit(cmd, a.store, e.ShortID(), entryFlags{At: "2:15pm"}, map[string]bool{"at": true}, scriptedKit(nil, nil, true), fixedNow)
	require.NoError(t, err)

	got, _ := a.store.Get(e.ID)
	assert.Equal(t, time.Date(2025, 3, 5, 14, 15, 0, 0, time.UTC), got.OccursAt)
}

func TestEditInteractive(t *testing.T) {
	a := newTestApp(t)
	e := addEntry(t, a.store, "Walk", time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC), schedule.KindEvent, schedule.RecurrenceNone)
	cmd, _ := testCmd()

	// title, date, time; kind=task, repeat=weekly; notes keep their initial value
	pk := scriptedKit([]string{"Evening walk", "2025-03-07", "18:30"}, []int{1, 2}, true)
	require.NoError(t, runEdit(cmd, a.store, e.ShortID(), entryFlags{}, nil, pk, fixedNow))

	got, _ := a.store.Get(e.ID)
	assert.Equal(t, "Evening walk", got.Title)
	assert.Equal(t, time.Date(2025, 3, 7, 18, 30, 0, 0, time.UTC), got.OccursAt)
	assert.Equal(t, schedule.KindTask, got.Kind)
	assert.Equal(t, schedule.RecurrenceWeekly, got.Recurrence)
	assert.Empty(t, got.Notes)
}

func TestEditErrors(t *testing.T) {
	a := newTestApp(t)
	e := addEntry(t, a.store, "Scan", testNow, schedule.KindEvent, schedule.RecurrenceNone)
	cmd, _ := testCmd()
	pk := scriptedKit(nil, nil, true)

	err := runEdit(cmd, a.store, "ffffffff", entryFlags{Title: "x"}, map[string]bool{"title": true}, pk, fixedNow)
	assert.True(t, errors.Is(err, schedule.ErrNotFound))

	err = runEdit(cmd, a.store, e.ShortID(), entryFlags{Title: "  "}, map[string]bool{"title": true}, pk, fixedNow)
	assert.EqualError(t, err, "title is required")

	err = runEdit(cmd, a.store, e.ShortID(), entryFlags{Repeat: "hourly"}, map[string]bool{"repeat": true}, pk, fixedNow)
	assert.Error(t, err)

	got, _ := a.store.Get(e.ID)
	assert.Equal(t, e, got)
}
