package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/Raghav-2611/saanjha/internal/schedule"
	"github.com/spf13/cobra"
)

var editCmd = LeafCommand{
	Use:   "edit <id>",
	Short: "Edit an existing entry (interactive when no flags are given)",
	Args:  cobra.ExactArgs(1),
	StrFlags: append([]StringFlag{
		{Name: "title", Usage: "new title"},
	}, entryStrFlags...),
	ValidArgsFunction: completeEntryIDs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := readEntryFlags(cmd)
		changed := editedFields(cmd)
		return withApp(cmd, func(a *app) error {
			return runEdit(cmd, a.store, args[0], f, changed, NewPromptKit(), time.Now)
		})
	},
}.Build()

// editedFields returns the set of entry flags given on the command line.
func editedFields(cmd *cobra.Command) map[string]bool {
	changed := make(map[string]bool)
	for _, name := range []string{"title", "date", "at", "kind", "repeat", "notes", "by"} {
		if cmd.Flags().Changed(name) {
			changed[name] = true
		}
	}
	return changed
}

var (
	kindOptions   = []schedule.Kind{schedule.KindEvent, schedule.KindTask}
	repeatOptions = []schedule.Recurrence{
		schedule.RecurrenceNone,
		schedule.RecurrenceDaily,
		schedule.RecurrenceWeekly,
		schedule.RecurrenceMonthly,
	}
)

func runEdit(cmd *cobra.Command, store *schedule.Store, idPrefix string, f entryFlags, changed map[string]bool, pk PromptKit, nowFn func() time.Time) error {
	e, err := store.Resolve(idPrefix)
	if err != nil {
		return err
	}

	loc := store.Location()
	anchor := e.OccursAt.In(loc)

	if len(changed) == 0 {
		f, changed, err = promptEdit(e, anchor, pk)
		if err != nil {
			return err
		}
	}

	if changed["title"] {
		title := strings.TrimSpace(f.Title)
		if title == "" {
			return fmt.Errorf("title is required")
		}
		e.Title = title
	}

	if changed["kind"] {
		k, err := schedule.ParseKind(f.Kind)
		if err != nil {
			return err
		}
		e.Kind = k
	}

	if changed["repeat"] {
		r, err := schedule.ParseRecurrence(f.Repeat)
		if err != nil {
			return err
		}
		e.Recurrence = r
	}

	if changed["date"] || changed["at"] {
		day := schedule.DateOf(anchor)
		if changed["date"] {
			day, err = resolveDay(f.Date, nowFn().In(loc))
			if err != nil {
				return err
			}
		}
		clock := schedule.ClockOf(anchor)
		if changed["at"] {
			clock, err = schedule.ParseTimeOfDay(f.At)
			if err != nil {
				return fmt.Errorf("invalid --at value: %w", err)
			}
		}
		e.OccursAt = clock.On(day, loc)
	}

	if changed["notes"] {
		e.Notes = strings.TrimSpace(f.Notes)
	}
	if changed["by"] {
		e.CreatedByName = strings.TrimSpace(f.By)
	}

	if err := store.Update(e); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", describeEntry(e, loc))
	return nil
}

// promptEdit walks through every field, pre-filled with the current values.
func promptEdit(e schedule.Entry, anchor time.Time, pk PromptKit) (entryFlags, map[string]bool, error) {
	var f entryFlags
	var err error

	if f.Title, err = pk.Prompt("Title", e.Title); err != nil {
		return f, nil, err
	}
	if f.Date, err = pk.Prompt("Date", anchor.Format("2006-01-02")); err != nil {
		return f, nil, err
	}
	if f.At, err = pk.Prompt("Time", anchor.Format("15:04")); err != nil {
		return f, nil, err
	}

	kinds := make([]string, len(kindOptions))
	current := 0
	for i, k := range kindOptions {
		kinds[i] = string(k)
		if k == e.Kind {
			current = i
		}
	}
	idx, err := pk.Select("Kind", kinds, current)
	if err != nil {
		return f, nil, err
	}
	f.Kind = kinds[idx]

	repeats := make([]string, len(repeatOptions))
	current = 0
	for i, r := range repeatOptions {
		repeats[i] = schedule.DescribeRecurrence(r, anchor)
		if r == e.Recurrence {
			current = i
		}
	}
	idx, err = pk.Select("Repeat", repeats, current)
	if err != nil {
		return f, nil, err
	}
	f.Repeat = string(repeatOptions[idx])

	if f.Notes, err = pk.Prompt("Notes", e.Notes); err != nil {
		return f, nil, err
	}

	changed := map[string]bool{"title": true, "date": true, "at": true, "kind": true, "repeat": true, "notes": true}
	return f, changed, nil
}
