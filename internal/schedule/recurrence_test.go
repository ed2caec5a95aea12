package schedule

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teambition/rrule-go"
)

func TestParseRecurrence(t *testing.T) {
	tests := []struct {
		input   string
		want    Recurrence
		wantErr bool
	}{
		{input: "none", want: RecurrenceNone},
		{input: "", want: RecurrenceNone},
		{input: "once", want: RecurrenceNone},
		{input: "everyDay", want: RecurrenceDaily},
		{input: "daily", want: RecurrenceDaily},
		{input: "Every Day", want: RecurrenceDaily},
		{input: "everyWeek", want: RecurrenceWeekly},
		{input: "weekly", want: RecurrenceWeekly},
		{input: "every week", want: RecurrenceWeekly},
		{input: "everyMonth", want: RecurrenceMonthly},
		{input: "monthly", want: RecurrenceMonthly},
		{input: "every month", want: RecurrenceMonthly},
		{input: "yearly", wantErr: true},
		{input: "every other week", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRecurrence(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecurrenceJSON(t *testing.T) {
	for _, r := range []Recurrence{RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly} {
		data, err := json.Marshal(r)
		require.NoError(t, err)

		var got Recurrence
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, r, got)
	}

	var r Recurrence
	assert.Error(t, json.Unmarshal([]byte(`"weekly"`), &r), "natural language is not a persisted tag")
}

func TestRRuleValue(t *testing.T) {
	assert.Equal(t, "", RecurrenceNone.RRuleValue())
	assert.Equal(t, "FREQ=DAILY", RecurrenceDaily.RRuleValue())
	assert.Equal(t, "FREQ=WEEKLY", RecurrenceWeekly.RRuleValue())
	assert.Equal(t, "FREQ=MONTHLY", RecurrenceMonthly.RRuleValue())
}

func TestRecurrenceRRule(t *testing.T) {
	anchor := time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		rec      Recurrence
		wantFreq rrule.Frequency
		count    int
	}{
		{RecurrenceNone, rrule.DAILY, 1},
		{RecurrenceDaily, rrule.DAILY, 0},
		{RecurrenceWeekly, rrule.WEEKLY, 0},
		{RecurrenceMonthly, rrule.MONTHLY, 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.rec), func(t *testing.T) {
			r, err := tt.rec.RRule(anchor)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFreq, r.OrigOptions.Freq)
			assert.Equal(t, tt.count, r.OrigOptions.Count)
			assert.True(t, anchor.Equal(r.OrigOptions.Dtstart))
		})
	}

	_, err := Recurrence("fortnightly").RRule(anchor)
	assert.Error(t, err)
}

func TestMonthlyRRuleSkipsShortMonths(t *testing.T) {
	anchor := time.Date(2025, 1, 31, 9, 0, 0, 0, time.UTC)
	r, err := RecurrenceMonthly.RRule(anchor)
	require.NoError(t, err)

	got := r.Between(anchor, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), true)

	var days []string
	for _, d := range got {
		days = append(days, d.Format("2006-01-02"))
	}
	assert.Equal(t, []string{"2025-01-31", "2025-03-31", "2025-05-31"}, days)
}
