package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/Raghav-2611/saanjha/internal/schedule"
	"github.com/spf13/cobra"
)

var dayCmd = LeafCommand{
	Use:     "day",
	Aliases: []string{"today"},
	Short:   "Show the events and tasks for a day",
	StrFlags: []StringFlag{
		{Name: "date", Shorthand: "d", Usage: "day to show (default: today)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dateFlag, _ := cmd.Flags().GetString("date")
		return withApp(cmd, func(a *app) error {
			return runDay(cmd, a.store, dateFlag, time.Now)
		})
	},
}.Build()

func runDay(cmd *cobra.Command, store *schedule.Store, dateFlag string, nowFn func() time.Time) error {
	day, err := resolveDay(dateFlag, nowFn().In(store.Location()))
	if err != nil {
		return err
	}

	printAgenda(cmd.OutOrStdout(), store.Agenda(day), true)
	return nil
}

// printAgenda writes a day's agenda with events and tasks as separate
// sections. Empty sections are skipped unless showEmpty is set.
func printAgenda(w io.Writer, a schedule.DayAgenda, showEmpty bool) {
	_, _ = fmt.Fprintf(w, "%s\n", Primary(a.Date.Time(time.UTC).Format("Monday, January 2 2006")))

	if a.Len() == 0 {
		if showEmpty {
			_, _ = fmt.Fprintf(w, "  %s\n", Silent("nothing scheduled"))
		}
		return
	}

	section := func(label string, occ []schedule.Occurrence) {
		if len(occ) == 0 {
			return
		}
		_, _ = fmt.Fprintf(w, "  %s\n", label)
		for _, o := range occ {
			_, _ = fmt.Fprintf(w, "    %s  %s\n", schedule.FormatOccurrence(o), Silent(o.Entry.ShortID()))
			if o.Entry.Notes != "" {
				_, _ = fmt.Fprintf(w, "              %s\n", Silent(o.Entry.Notes))
			}
		}
	}

	section(Event("Events"), a.Events)
	section(Task("Tasks"), a.Tasks)
}
