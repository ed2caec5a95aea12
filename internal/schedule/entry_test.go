package schedule

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry(title string, at time.Time, kind Kind, rec Recurrence) Entry {
	e := NewEntry(title, at, kind)
	e.Recurrence = rec
	return e
}

func TestNewEntry(t *testing.T) {
	at := time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)
	a := NewEntry("Checkup", at, KindEvent)
	b := NewEntry("Checkup", at, KindEvent)

	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, RecurrenceNone, a.Recurrence)
	assert.Len(t, a.ShortID(), 8)
}

func TestEntryJSONTags(t *testing.T) {
	e := Entry{
		ID:            uuid.MustParse("6f1c2d3e-4b5a-4c6d-8e7f-0a1b2c3d4e5f"),
		Title:         "Yoga",
		OccursAt:      time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC),
		Notes:         "bring mat",
		Kind:          KindTask,
		CreatedByName: "Sam",
		Recurrence:    RecurrenceWeekly,
	}

	data, err := json.Marshal(e)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "6f1c2d3e-4b5a-4c6d-8e7f-0a1b2c3d4e5f", raw["id"])
	assert.Equal(t, "Yoga", raw["title"])
	assert.Equal(t, "2025-03-04T09:00:00Z", raw["date"])
	assert.Equal(t, "bring mat", raw["notes"])
	assert.Equal(t, "task", raw["kind"])
	assert.Equal(t, "Sam", raw["createdByName"])
	assert.Equal(t, "everyWeek", raw["repeatRule"])
}

func TestEntryJSONOmitsEmptyOptionals(t *testing.T) {
	e := NewEntry("Walk", time.Date(2025, 3, 4, 18, 30, 0, 0, time.UTC), KindTask)

	data, err := json.Marshal(e)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw, "notes")
	assert.NotContains(t, raw, "createdByName")
	assert.Equal(t, "none", raw["repeatRule"])
}

func TestZeroTagsMarshalAsDefaults(t *testing.T) {
	data, err := json.Marshal(Entry{ID: uuid.New(), Title: "x"})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "event", raw["kind"])
	assert.Equal(t, "none", raw["repeatRule"])
}

func TestDecodeEntriesRejectsUnknownTags(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"unknown kind", `[{"id":"6f1c2d3e-4b5a-4c6d-8e7f-0a1b2c3d4e5f","title":"x","date":"2025-03-04T09:00:00Z","kind":"meeting","repeatRule":"none"}]`},
		{"unknown recurrence", `[{"id":"6f1c2d3e-4b5a-4c6d-8e7f-0a1b2c3d4e5f","title":"x","date":"2025-03-04T09:00:00Z","kind":"event","repeatRule":"everyYear"}]`},
		{"bad id", `[{"id":"nope","title":"x","date":"2025-03-04T09:00:00Z","kind":"event","repeatRule":"none"}]`},
		{"not an array", `{"items":[]}`},
		{"truncated", `[{"id":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeEntries([]byte(tt.blob))
			assert.Error(t, err)
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cet := time.FixedZone("CET", 1*60*60)
	entries := []Entry{
		testEntry("Scan", time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC), KindEvent, RecurrenceNone),
		testEntry("Vitamins", time.Date(2025, 3, 1, 9, 0, 0, 0, cet), KindTask, RecurrenceDaily),
		testEntry("Yoga", time.Date(2025, 3, 5, 18, 0, 0, 0, time.UTC), KindTask, RecurrenceWeekly),
		testEntry("Bills", time.Date(2025, 1, 31, 8, 0, 0, 0, time.UTC), KindEvent, RecurrenceMonthly),
	}
	entries[0].Notes = "City Hospital"
	entries[2].CreatedByName = "Partner"

	data, err := encodeEntries(entries)
	require.NoError(t, err)

	got, err := decodeEntries(data)
	require.NoError(t, err)

	// Timestamps compare by instant; the decoded location is a fixed offset.
	if diff := cmp.Diff(entries, got, cmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) })); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeEmptyCollection(t *testing.T) {
	data, err := encodeEntries(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Event")
	require.NoError(t, err)
	assert.Equal(t, KindEvent, k)

	k, err = ParseKind(" task ")
	require.NoError(t, err)
	assert.Equal(t, KindTask, k)

	_, err = ParseKind("chore")
	assert.Error(t, err)
}

func TestAnchorDate(t *testing.T) {
	e := NewEntry("Late call", time.Date(2025, 3, 4, 23, 30, 0, 0, time.UTC), KindEvent)
	tokyo := time.FixedZone("JST", 9*60*60)

	assert.Equal(t, NewDate(2025, 3, 4), e.AnchorDate(time.UTC))
	assert.Equal(t, NewDate(2025, 3, 5), e.AnchorDate(tokyo))
}
