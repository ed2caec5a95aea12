package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/Raghav-2611/saanjha/internal/schedule"
	"github.com/spf13/cobra"
)

// entryFlags holds the raw flag values shared by add and edit.
type entryFlags struct {
	Title  string
	Date   string
	At     string
	Kind   string
	Repeat string
	Notes  string
	By     string
}

var entryStrFlags = []StringFlag{
	{Name: "date", Shorthand: "d", Usage: "day of the entry: today, tomorrow, friday, 2025-03-14, Mar 14 (default: today)"},
	{Name: "at", Shorthand: "t", Usage: "time of day: 9am, 9:30pm, 14:00 (default: now)"},
	{Name: "kind", Shorthand: "k", Usage: "event or task"},
	{Name: "repeat", Shorthand: "r", Usage: "none, daily, weekly or monthly"},
	{Name: "notes", Shorthand: "n", Usage: "free-form notes (Markdown)"},
	{Name: "by", Usage: "name of the person adding the entry"},
}

func readEntryFlags(cmd *cobra.Command) entryFlags {
	var f entryFlags
	f.Title, _ = cmd.Flags().GetString("title")
	f.Date, _ = cmd.Flags().GetString("date")
	f.At, _ = cmd.Flags().GetString("at")
	f.Kind, _ = cmd.Flags().GetString("kind")
	f.Repeat, _ = cmd.Flags().GetString("repeat")
	f.Notes, _ = cmd.Flags().GetString("notes")
	f.By, _ = cmd.Flags().GetString("by")
	return f
}

var addCmd = LeafCommand{
	Use:     "add [title]",
	Short:   "Add an event or task to the shared schedule",
	Example: `  saanjha add "First trimester scan" --date tomorrow --at 10am --notes "City Hospital"` + "\n" + `  saanjha add "Prenatal vitamins" --kind task --at 9am --repeat daily`,
	Args:    cobra.MaximumNArgs(1),
	StrFlags: entryStrFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := readEntryFlags(cmd)
		if len(args) > 0 {
			f.Title = args[0]
		}
		return withApp(cmd, func(a *app) error {
			return runAdd(cmd, a.store, f, NewPromptKit(), time.Now)
		})
	},
}.Build()

func runAdd(cmd *cobra.Command, store *schedule.Store, f entryFlags, pk PromptKit, nowFn func() time.Time) error {
	now := nowFn().In(store.Location())

	title := strings.TrimSpace(f.Title)
	if title == "" && pk.Prompt != nil {
		answer, err := pk.Prompt("Title", "")
		if err != nil {
			return err
		}
		title = strings.TrimSpace(answer)
	}
	if title == "" {
		return fmt.Errorf("title is required")
	}

	kind := schedule.KindEvent
	if f.Kind != "" {
		k, err := schedule.ParseKind(f.Kind)
		if err != nil {
			return err
		}
		kind = k
	}

	rec, err := schedule.ParseRecurrence(f.Repeat)
	if err != nil {
		return err
	}

	at, err := resolveAt(f.Date, f.At, now)
	if err != nil {
		return err
	}

	e := schedule.NewEntry(title, at, kind)
	e.Recurrence = rec
	e.Notes = strings.TrimSpace(f.Notes)
	e.CreatedByName = strings.TrimSpace(f.By)

	if err := store.Add(e); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", describeEntry(e, store.Location()))
	return nil
}
