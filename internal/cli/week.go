package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Raghav-2611/saanjha/internal/schedule"
	"github.com/spf13/cobra"
)

var weekCmd = LeafCommand{
	Use:   "week",
	Short: "Show the next seven days starting from a date",
	StrFlags: []StringFlag{
		{Name: "date", Shorthand: "d", Usage: "first day to show (default: today)"},
		{Name: "days", Usage: "number of days to show", Default: "7"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dateFlag, _ := cmd.Flags().GetString("date")
		daysFlag, _ := cmd.Flags().GetString("days")
		return withApp(cmd, func(a *app) error {
			return runWeek(cmd, a.store, dateFlag, daysFlag, time.Now)
		})
	},
}.Build()

func runWeek(cmd *cobra.Command, store *schedule.Store, dateFlag, daysFlag string, nowFn func() time.Time) error {
	from, err := resolveDay(dateFlag, nowFn().In(store.Location()))
	if err != nil {
		return err
	}

	days := 7
	if daysFlag != "" {
		n, err := strconv.Atoi(daysFlag)
		if err != nil || n < 1 || n > 366 {
			return fmt.Errorf("invalid --days value %q (expected 1-366)", daysFlag)
		}
		days = n
	}
	to := from.AddDays(days - 1)

	agendas, err := store.Between(from, to)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(agendas) == 0 {
		_, _ = fmt.Fprintf(w, "Nothing scheduled from %s to %s.\n", from, to)
		return nil
	}

	for i, a := range agendas {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		printAgenda(w, a, false)
	}
	return nil
}

// agendaByDate indexes agendas by their day.
func agendaByDate(agendas []schedule.DayAgenda) map[schedule.Date]schedule.DayAgenda {
	m := make(map[schedule.Date]schedule.DayAgenda, len(agendas))
	for _, a := range agendas {
		m[a.Date] = a
	}
	return m
}
