package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/Raghav-2611/saanjha/internal/pregnancy"
	"github.com/Raghav-2611/saanjha/internal/profile"
	"github.com/Raghav-2611/saanjha/internal/schedule"
	"github.com/spf13/cobra"
)

const progressWidth = 30

var dueCmd = LeafCommand{
	Use:     "due",
	Short:   "Show the estimated due date and how far along the pregnancy is",
	Example: "  saanjha due\n  saanjha due --lmp 2025-01-01",
	StrFlags: []StringFlag{
		{Name: "lmp", Usage: "calculate from this LMP date instead of the saved profile"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		lmpFlag, _ := cmd.Flags().GetString("lmp")
		return withApp(cmd, func(a *app) error {
			return runDue(cmd, a.defaults, a.store.Location(), lmpFlag, time.Now)
		})
	},
}.Build()

func runDue(cmd *cobra.Command, d profile.Defaults, loc *time.Location, lmpFlag string, nowFn func() time.Time) error {
	now := nowFn().In(loc)

	var lmp time.Time
	if strings.TrimSpace(lmpFlag) != "" {
		day, err := schedule.ParseDate(lmpFlag, now)
		if err != nil {
			return fmt.Errorf("invalid --lmp value: %w", err)
		}
		lmp = day.Time(loc)
	} else {
		p, err := profile.Load(d)
		if err != nil {
			return err
		}
		if p.LMP == nil {
			return fmt.Errorf("no LMP date saved (set one with 'saanjha profile set --lmp <date>' or pass --lmp)")
		}
		if !p.Status.ShowsDueDate() {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "status is '%s', due date not shown\n", p.Status)
			return nil
		}
		lmp = lmpIn(*p.LMP, loc)
	}

	s := pregnancy.Summarize(lmp, now)
	w := cmd.OutOrStdout()

	_, _ = fmt.Fprintf(w, "%-12s %s\n", "Due date:", Primary(s.DueDate.Format("Monday, January 2 2006")))
	_, _ = fmt.Fprintf(w, "%-12s %dw %dd\n", "Gestation:", s.Weeks, s.Days)
	_, _ = fmt.Fprintf(w, "%-12s %d of %d (trimester %d)\n", "Week:", s.Week, pregnancy.TermWeeks, s.Trimester)

	switch {
	case s.DaysLeft > 0:
		_, _ = fmt.Fprintf(w, "%-12s %d\n", "Days left:", s.DaysLeft)
	case s.DaysLeft == 0:
		_, _ = fmt.Fprintf(w, "%-12s %s\n", "Days left:", Warning("due today"))
	default:
		_, _ = fmt.Fprintf(w, "%-12s %s\n", "Days left:", Warning(fmt.Sprintf("%d days past due", -s.DaysLeft)))
	}

	_, _ = fmt.Fprintf(w, "%s %3.0f%%\n", progressBar(s.Progress, progressWidth), s.Progress*100)
	return nil
}

// progressBar draws a fixed-width bar for a fraction between 0 and 1.
func progressBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction*float64(width) + 0.5)
	return "[" + Primary(strings.Repeat("█", filled)) + Silent(strings.Repeat("░", width-filled)) + "]"
}
