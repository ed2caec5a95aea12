package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Raghav-2611/saanjha/internal/pregnancy"
	"github.com/Raghav-2611/saanjha/internal/profile"
	"github.com/Raghav-2611/saanjha/internal/schedule"
	"github.com/spf13/cobra"
)

var profileCmd = GroupCommand{
	Use:   "profile",
	Short: "Show or change your profile",
	Subcommands: []*cobra.Command{
		profileShowCmd,
		profileSetCmd,
	},
}.Build()

var profileShowCmd = LeafCommand{
	Use:   "show",
	Short: "Show name, age, location, status and due date",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			return runProfileShow(cmd, a.defaults, a.store.Location(), time.Now)
		})
	},
}.Build()

var profileSetCmd = LeafCommand{
	Use:   "set",
	Short: "Change profile fields (interactive when no flags are given)",
	Example: `  saanjha profile set --name "Priya" --age 29
  saanjha profile set --status pregnant --lmp 2025-01-01
  saanjha profile set --lmp none`,
	StrFlags: []StringFlag{
		{Name: "name", Usage: "display name"},
		{Name: "age", Usage: "age in years"},
		{Name: "location", Usage: "city or region"},
		{Name: "status", Usage: "pregnant, ttc, postpartum or loss"},
		{Name: "lmp", Usage: "first day of the last menstrual period, or none to clear"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var f profileFlags
		f.Name, _ = cmd.Flags().GetString("name")
		f.Age, _ = cmd.Flags().GetString("age")
		f.Location, _ = cmd.Flags().GetString("location")
		f.Status, _ = cmd.Flags().GetString("status")
		f.LMP, _ = cmd.Flags().GetString("lmp")

		changed := make(map[string]bool)
		for _, name := range []string{"name", "age", "location", "status", "lmp"} {
			if cmd.Flags().Changed(name) {
				changed[name] = true
			}
		}

		return withApp(cmd, func(a *app) error {
			return runProfileSet(cmd, a.defaults, a.store.Location(), f, changed, NewPromptKit(), time.Now)
		})
	},
}.Build()

// profileFlags holds the raw values given to profile set.
type profileFlags struct {
	Name     string
	Age      string
	Location string
	Status   string
	LMP      string
}

// lmpIn returns midnight of the stored LMP calendar day in loc. LMP dates are
// persisted as UTC midnight, so the day is read in UTC.
func lmpIn(lmp time.Time, loc *time.Location) time.Time {
	return schedule.DateOf(lmp.UTC()).Time(loc)
}

func runProfileShow(cmd *cobra.Command, d profile.Defaults, loc *time.Location, nowFn func() time.Time) error {
	p, err := profile.Load(d)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%-10s %s\n", "Name:", Primary(p.Name))
	_, _ = fmt.Fprintf(w, "%-10s %d\n", "Age:", p.Age)
	_, _ = fmt.Fprintf(w, "%-10s %s\n", "Location:", p.Location)
	_, _ = fmt.Fprintf(w, "%-10s %s\n", "Status:", p.Status)

	lmp := "N/A"
	if p.LMP != nil {
		lmp = p.LMP.UTC().Format("Jan 2, 2006")
	}
	_, _ = fmt.Fprintf(w, "%-10s %s\n", "LMP:", lmp)

	due, ok := p.DueDate()
	if !ok {
		_, _ = fmt.Fprintf(w, "%-10s %s\n", "Due date:", Silent("N/A"))
		return nil
	}
	_, _ = fmt.Fprintf(w, "%-10s %s\n", "Due date:", Primary(due.UTC().Format("Jan 2, 2006")))

	s := pregnancy.Summarize(lmpIn(*p.LMP, loc), nowFn().In(loc))
	_, _ = fmt.Fprintf(w, "%-10s %d (trimester %d)\n", "Week:", s.Week, s.Trimester)
	return nil
}

func runProfileSet(cmd *cobra.Command, d profile.Defaults, loc *time.Location, f profileFlags, changed map[string]bool, pk PromptKit, nowFn func() time.Time) error {
	p, err := profile.Load(d)
	if err != nil {
		return err
	}

	if len(changed) == 0 {
		f, changed, err = promptProfile(p, pk)
		if err != nil {
			return err
		}
	}

	if changed["name"] {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			return fmt.Errorf("name must not be empty")
		}
		p.Name = name
	}

	if changed["age"] {
		age, err := strconv.Atoi(strings.TrimSpace(f.Age))
		if err != nil || age <= 0 || age > 120 {
			return fmt.Errorf("invalid --age value %q (expected a number between 1 and 120)", f.Age)
		}
		p.Age = age
	}

	if changed["location"] {
		p.Location = strings.TrimSpace(f.Location)
	}

	if changed["status"] {
		st, err := pregnancy.ParseStatus(f.Status)
		if err != nil {
			return err
		}
		p.Status = st
	}

	if changed["lmp"] {
		raw := strings.TrimSpace(strings.ToLower(f.LMP))
		switch raw {
		case "", "none", "clear":
			p.LMP = nil
		default:
			day, err := schedule.ParseDate(raw, nowFn().In(loc))
			if err != nil {
				return fmt.Errorf("invalid --lmp value: %w", err)
			}
			lmp := day.Time(time.UTC)
			p.LMP = &lmp
		}
	}

	if err := profile.Save(d, p); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), Text("profile saved"))
	if due, ok := p.DueDate(); ok {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "estimated due date: %s\n", Primary(due.Format("Jan 2, 2006")))
	}
	return nil
}

// promptProfile walks through every field, pre-filled with the current values.
func promptProfile(p profile.Profile, pk PromptKit) (profileFlags, map[string]bool, error) {
	var f profileFlags
	var err error

	if f.Name, err = pk.Prompt("Name", p.Name); err != nil {
		return f, nil, err
	}
	if f.Age, err = pk.Prompt("Age", strconv.Itoa(p.Age)); err != nil {
		return f, nil, err
	}
	if f.Location, err = pk.Prompt("Location", p.Location); err != nil {
		return f, nil, err
	}

	statuses := make([]string, len(pregnancy.Statuses))
	current := 0
	for i, st := range pregnancy.Statuses {
		statuses[i] = string(st)
		if st == p.Status {
			current = i
		}
	}
	idx, err := pk.Select("Status", statuses, current)
	if err != nil {
		return f, nil, err
	}
	f.Status = statuses[idx]

	initial := "none"
	if p.LMP != nil {
		initial = p.LMP.UTC().Format("2006-01-02")
	}
	if f.LMP, err = pk.Prompt("Last menstrual period (YYYY-MM-DD or none)", initial); err != nil {
		return f, nil, err
	}

	changed := map[string]bool{"name": true, "age": true, "location": true, "status": true, "lmp": true}
	return f, changed, nil
}
