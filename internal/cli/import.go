package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/Raghav-2611/saanjha/internal/ics"
	"github.com/Raghav-2611/saanjha/internal/schedule"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var importCmd = LeafCommand{
	Use:     "import <file.ics>",
	Short:   "Import events from an iCalendar file (use - for stdin)",
	Example: "  saanjha import appointments.ics\n  curl -s https://example.com/clinic.ics | saanjha import -",
	Args:    cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "dry-run", Usage: "show what would be imported without saving"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		return withApp(cmd, func(a *app) error {
			return runImport(cmd, a.store, args[0], dryRun, a.logger)
		})
	},
}.Build()

func runImport(cmd *cobra.Command, store *schedule.Store, path string, dryRun bool, log *zap.Logger) error {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	entries, err := ics.Parse(r, log)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	added, skipped := 0, 0
	// Overrides (RECURRENCE-ID) repeat the UID of their series; only the
	// first copy is imported, in a dry run as well.
	seen := make(map[uuid.UUID]bool, len(entries))
	for _, e := range entries {
		_, exists := store.Get(e.ID)
		if exists || seen[e.ID] {
			skipped++
			_, _ = fmt.Fprintf(w, "%s %s\n", Silent("skip"), describeEntry(e, store.Location()))
			continue
		}
		seen[e.ID] = true
		if !dryRun {
			if err := store.Add(e); err != nil {
				return err
			}
		}
		added++
		_, _ = fmt.Fprintf(w, "%s %s\n", Primary("add "), describeEntry(e, store.Location()))
	}

	verb := "Imported"
	if dryRun {
		verb = "Would import"
	}
	_, _ = fmt.Fprintf(w, "%s %d entries (%d already present)\n", verb, added, skipped)
	return nil
}
