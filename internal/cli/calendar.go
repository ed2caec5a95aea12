package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Raghav-2611/saanjha/internal/schedule"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const dayCellWidth = 4

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	footerStyle   = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	todayStyle    = lipgloss.NewStyle().Underline(true)
	busyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#E75480"))
)

var calendarCmd = LeafCommand{
	Use:     "calendar",
	Aliases: []string{"cal"},
	Short:   "Browse the schedule month by month",
	StrFlags: []StringFlag{
		{Name: "date", Shorthand: "d", Usage: "day to open on (default: today)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dateFlag, _ := cmd.Flags().GetString("date")
		return withApp(cmd, func(a *app) error {
			return runCalendar(cmd, a.store, dateFlag, time.Now)
		})
	},
}.Build()

type calendarModel struct {
	entries []schedule.Entry
	loc     *time.Location
	today   schedule.Date
	cursor  schedule.Date
	month   map[schedule.Date]schedule.DayAgenda
	err     error
}

func newCalendarModel(entries []schedule.Entry, loc *time.Location, today, cursor schedule.Date) calendarModel {
	m := calendarModel{entries: entries, loc: loc, today: today, cursor: cursor}
	return m.loadMonth()
}

// loadMonth expands the entries over the cursor's month.
func (m calendarModel) loadMonth() calendarModel {
	first, last := monthBounds(m.cursor.Year, m.cursor.Month)
	agendas, err := schedule.Expand(m.entries, first, last, m.loc)
	m.err = err
	m.month = agendaByDate(agendas)
	return m
}

func (m calendarModel) Init() tea.Cmd {
	return nil
}

func (m calendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "right", "l":
		return m.moveTo(m.cursor.AddDays(1)), nil
	case "left", "h":
		return m.moveTo(m.cursor.AddDays(-1)), nil
	case "down", "j":
		return m.moveTo(m.cursor.AddDays(7)), nil
	case "up", "k":
		return m.moveTo(m.cursor.AddDays(-7)), nil
	case "n", "]":
		return m.moveTo(shiftMonth(m.cursor, 1)), nil
	case "p", "[":
		return m.moveTo(shiftMonth(m.cursor, -1)), nil
	case "t":
		return m.moveTo(m.today), nil
	}
	return m, nil
}

func (m calendarModel) moveTo(d schedule.Date) calendarModel {
	sameMonth := d.Year == m.cursor.Year && d.Month == m.cursor.Month
	m.cursor = d
	if !sameMonth {
		m = m.loadMonth()
	}
	return m
}

// shiftMonth moves d by n months, clamping the day to the target month's length.
func shiftMonth(d schedule.Date, n int) schedule.Date {
	first := schedule.NewDate(d.Year, d.Month+time.Month(n), 1)
	_, last := monthBounds(first.Year, first.Month)
	day := min(d.Day, last.Day)
	return schedule.NewDate(first.Year, first.Month, day)
}

func (m calendarModel) View() string {
	var b strings.Builder
	b.WriteString(renderMonthGrid(m.cursor.Year, m.cursor.Month, m.month, m.today, m.cursor))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(Error(m.err.Error()) + "\n")
	}

	agenda, ok := m.month[m.cursor]
	if !ok {
		agenda = schedule.DayAgenda{Date: m.cursor}
	}
	var day strings.Builder
	printAgenda(&day, agenda, true)
	b.WriteString(day.String())

	b.WriteString("\n" + footerStyle.Render("←/→ day  ↑/↓ week  n/p month  t today  q quit") + "\n")
	return b.String()
}

// renderMonthGrid draws a Monday-first month grid. Days with occurrences
// are highlighted; today is underlined and the cursor, if in this month,
// is shown reversed.
func renderMonthGrid(year int, month time.Month, agendas map[schedule.Date]schedule.DayAgenda, today, cursor schedule.Date) string {
	var b strings.Builder

	title := fmt.Sprintf("%s %d", month, year)
	width := 7 * dayCellWidth
	pad := max(0, (width-len(title))/2)
	b.WriteString(strings.Repeat(" ", pad) + headerStyle.Render(title) + "\n")

	for _, wd := range []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"} {
		b.WriteString(fmt.Sprintf("%*s", dayCellWidth, wd))
	}
	b.WriteString("\n")

	first, last := monthBounds(year, month)
	offset := (int(first.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat(" ", offset*dayCellWidth))

	col := offset
	for d := first; !d.After(last); d = d.AddDays(1) {
		label := fmt.Sprintf("%2d", d.Day)
		if a, ok := agendas[d]; ok && a.Len() > 0 {
			label = busyStyle.Render(label)
		}
		if d == today {
			label = todayStyle.Render(label)
		}
		if d == cursor {
			label = selectedStyle.Render(label)
		}
		b.WriteString(strings.Repeat(" ", dayCellWidth-2) + label)

		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}
	return b.String()
}

func runCalendar(cmd *cobra.Command, store *schedule.Store, dateFlag string, nowFn func() time.Time) error {
	now := nowFn().In(store.Location())
	cursor, err := resolveDay(dateFlag, now)
	if err != nil {
		return err
	}

	m := newCalendarModel(store.Items(), store.Location(), schedule.DateOf(now), cursor)
	out := cmd.OutOrStdout()

	// Non-TTY fallback: print the month once
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		return printStaticMonth(out, m)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out))
	_, err = p.Run()
	return err
}

func printStaticMonth(w io.Writer, m calendarModel) error {
	if m.err != nil {
		return m.err
	}

	_, _ = fmt.Fprint(w, renderMonthGrid(m.cursor.Year, m.cursor.Month, m.month, m.today, schedule.Date{}))

	first, last := monthBounds(m.cursor.Year, m.cursor.Month)
	for d := first; !d.After(last); d = d.AddDays(1) {
		if a, ok := m.month[d]; ok {
			_, _ = fmt.Fprintln(w)
			printAgenda(w, a, false)
		}
	}
	return nil
}
