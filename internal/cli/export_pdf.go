package cli

import (
	"fmt"
	"time"

	"github.com/Raghav-2611/saanjha/internal/pregnancy"
	"github.com/Raghav-2611/saanjha/internal/profile"
	"github.com/Raghav-2611/saanjha/internal/schedule"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
	pdfEventColor  = props.Color{Red: 199, Green: 21, Blue: 133}
	pdfTaskColor   = props.Color{Red: 46, Green: 139, Blue: 87}
)

// monthExport is everything printed on a monthly agenda PDF.
type monthExport struct {
	Name     string
	Subtitle string
	Year     int
	Month    time.Month
	Days     []schedule.DayAgenda
	Events   int
	Tasks    int
}

func buildMonthExport(p profile.Profile, year int, month time.Month, days []schedule.DayAgenda, now time.Time) monthExport {
	data := monthExport{
		Name:  p.Name,
		Year:  year,
		Month: month,
		Days:  days,
	}
	for _, d := range days {
		data.Events += len(d.Events)
		data.Tasks += len(d.Tasks)
	}

	if due, ok := p.DueDate(); ok {
		s := pregnancy.Summarize(lmpIn(*p.LMP, now.Location()), now)
		data.Subtitle = fmt.Sprintf("Due %s, week %d, trimester %d",
			due.UTC().Format("Jan 2, 2006"), s.Week, s.Trimester)
	} else {
		data.Subtitle = string(p.Status)
	}
	return data
}

// renderAgendaPDF generates a monthly agenda from the export data and saves
// it to the given path.
func renderAgendaPDF(data monthExport, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	// Document header
	m.AddRow(14,
		text.NewCol(12, fmt.Sprintf("%s's schedule", data.Name), props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(8, fmt.Sprintf("%s %d", data.Month, data.Year), props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
		text.NewCol(4, data.Subtitle, props.Text{
			Size:  9,
			Align: align.Right,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4) // spacer

	for _, day := range data.Days {
		m.AddRow(8,
			text.NewCol(12, day.Date.Time(time.UTC).Format("Monday, January 2"), props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Color: &pdfHeaderColor,
			}),
		)

		addSection := func(label string, color *props.Color, occ []schedule.Occurrence) {
			if len(occ) == 0 {
				return
			}
			m.AddRow(6,
				text.NewCol(12, "  "+label, props.Text{
					Style: fontstyle.Bold,
					Size:  9,
					Color: color,
				}),
			)
			for _, o := range occ {
				title := o.Entry.Title
				if o.Entry.Recurrence != schedule.RecurrenceNone && o.Entry.Recurrence != "" {
					title += " (" + schedule.DescribeRecurrence(o.Entry.Recurrence, o.Entry.OccursAt.In(o.At.Location())) + ")"
				}
				m.AddRow(5,
					text.NewCol(2, "    "+schedule.FormatClock(schedule.ClockOf(o.At)), props.Text{Size: 9}),
					text.NewCol(10, title, props.Text{Size: 9}),
				)
				if o.Entry.Notes != "" {
					m.AddRow(5,
						text.NewCol(2, ""),
						text.NewCol(10, o.Entry.Notes, props.Text{
							Size:  8,
							Color: &pdfMutedColor,
						}),
					)
				}
			}
		}

		addSection("Events", &pdfEventColor, day.Events)
		addSection("Tasks", &pdfTaskColor, day.Tasks)

		// Spacer between days
		m.AddRow(4)
	}

	// Totals footer
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(10,
		text.NewCol(9, "Total", props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Color: &pdfHeaderColor,
		}),
		text.NewCol(3, fmt.Sprintf("%d events, %d tasks", data.Events, data.Tasks), props.Text{
			Style: fontstyle.Bold,
			Size:  10,
			Align: align.Right,
			Color: &pdfHeaderColor,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	return doc.Save(outputPath)
}
