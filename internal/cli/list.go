package cli

import (
	"fmt"
	"sort"

	"github.com/Raghav-2611/saanjha/internal/schedule"
	"github.com/spf13/cobra"
)

var listCmd = LeafCommand{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List every entry in the schedule",
	StrFlags: []StringFlag{
		{Name: "kind", Shorthand: "k", Usage: "only show entries of this kind (event or task)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		kindFlag, _ := cmd.Flags().GetString("kind")
		return withApp(cmd, func(a *app) error {
			return runList(cmd, a.store, kindFlag)
		})
	},
}.Build()

func runList(cmd *cobra.Command, store *schedule.Store, kindFlag string) error {
	var only schedule.Kind
	if kindFlag != "" {
		k, err := schedule.ParseKind(kindFlag)
		if err != nil {
			return err
		}
		only = k
	}

	entries := store.Items()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].OccursAt.Before(entries[j].OccursAt)
	})

	w := cmd.OutOrStdout()
	loc := store.Location()
	shown := 0
	for _, e := range entries {
		if only != "" && e.Kind != only {
			continue
		}
		at := e.OccursAt.In(loc)
		_, _ = fmt.Fprintf(w, "%s  %-5s  %s  %8s  %s",
			Silent(e.ShortID()),
			e.Kind,
			at.Format("2006-01-02"),
			schedule.FormatClock(schedule.ClockOf(at)),
			Primary(e.Title))
		if e.Recurrence != schedule.RecurrenceNone && e.Recurrence != "" {
			_, _ = fmt.Fprintf(w, " %s", Info("("+schedule.DescribeRecurrence(e.Recurrence, at)+")"))
		}
		if e.CreatedByName != "" {
			_, _ = fmt.Fprintf(w, " %s", Silent("by "+e.CreatedByName))
		}
		_, _ = fmt.Fprintln(w)
		shown++
	}

	if shown == 0 {
		_, _ = fmt.Fprintln(w, "No entries yet. Add one with 'saanjha add'.")
	}
	return nil
}
