package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/Raghav-2611/saanjha/internal/fileutil"
	"github.com/Raghav-2611/saanjha/internal/ics"
	"github.com/Raghav-2611/saanjha/internal/profile"
	"github.com/Raghav-2611/saanjha/internal/schedule"
	"github.com/spf13/cobra"
)

var exportCmd = LeafCommand{
	Use:   "export",
	Short: "Export the schedule as an iCalendar file or a monthly PDF agenda",
	StrFlags: []StringFlag{
		{Name: "format", Shorthand: "f", Usage: "export format: ics or pdf", Default: "ics"},
		{Name: "month", Usage: "month number 1-12 for pdf (default: current month)"},
		{Name: "year", Usage: "year for pdf (default: current year)"},
		{Name: "out", Shorthand: "o", Usage: "output path, or - for stdout (ics only)"},
	},
	BoolFlags: []BoolFlag{
		{Name: "force", Usage: "overwrite an existing output file"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := exportOptions{}
		opts.Format, _ = cmd.Flags().GetString("format")
		opts.Month, _ = cmd.Flags().GetString("month")
		opts.Year, _ = cmd.Flags().GetString("year")
		opts.Out, _ = cmd.Flags().GetString("out")
		opts.Force, _ = cmd.Flags().GetBool("force")
		return withApp(cmd, func(a *app) error {
			p, err := profile.Load(a.defaults)
			if err != nil {
				return err
			}
			return runExport(cmd, a.store, p, opts, time.Now)
		})
	},
}.Build()

type exportOptions struct {
	Format string
	Month  string
	Year   string
	Out    string
	Force  bool
}

func runExport(cmd *cobra.Command, store *schedule.Store, p profile.Profile, opts exportOptions, nowFn func() time.Time) error {
	now := nowFn().In(store.Location())

	switch opts.Format {
	case "", "ics":
		return exportICS(cmd, store, opts, now)
	case "pdf":
		return exportPDF(cmd, store, p, opts, now)
	default:
		return fmt.Errorf("unsupported export format %q (supported: ics, pdf)", opts.Format)
	}
}

func exportICS(cmd *cobra.Command, store *schedule.Store, opts exportOptions, now time.Time) error {
	entries := store.Items()
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No entries to export.")
		return nil
	}

	if opts.Out == "-" {
		return ics.Encode(cmd.OutOrStdout(), entries, now)
	}

	outputPath := opts.Out
	if outputPath == "" {
		outputPath = "saanjha.ics"
	}
	if err := checkOverwrite(outputPath, opts.Force); err != nil {
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	if err := ics.Encode(f, entries, now); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", len(entries), outputPath)
	return nil
}

func exportPDF(cmd *cobra.Command, store *schedule.Store, p profile.Profile, opts exportOptions, now time.Time) error {
	if opts.Out == "-" {
		return fmt.Errorf("pdf export cannot be written to stdout")
	}

	year, month, err := parseMonthYearFlags(opts.Month, opts.Year, now)
	if err != nil {
		return err
	}

	first, last := monthBounds(year, month)
	agendas, err := store.Between(first, last)
	if err != nil {
		return err
	}
	if len(agendas) == 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Nothing scheduled for %s %d.\n", month, year)
		return nil
	}

	outputPath := opts.Out
	if outputPath == "" {
		outputPath = fmt.Sprintf("saanjha-%d-%02d.pdf", year, month)
	}
	if err := checkOverwrite(outputPath, opts.Force); err != nil {
		return err
	}

	data := buildMonthExport(p, year, month, agendas, now)
	if err := renderAgendaPDF(data, outputPath); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %s %d agenda to %s\n", month, year, outputPath)
	return nil
}

func checkOverwrite(path string, force bool) error {
	if !force && fileutil.Exists(path) {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	return nil
}
