package cli

import (
	"fmt"
	"time"

	"github.com/Raghav-2611/saanjha/internal/schedule"
	"github.com/spf13/cobra"
)

var seedCmd = LeafCommand{
	Use:   "seed",
	Short: "Add a few sample entries when the schedule is empty",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			return runSeed(cmd, a.store, time.Now)
		})
	},
}.Build()

func runSeed(cmd *cobra.Command, store *schedule.Store, nowFn func() time.Time) error {
	added, err := store.SeedIfEmpty(nowFn())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if !added {
		_, _ = fmt.Fprintln(w, "schedule already has entries, nothing added")
		return nil
	}

	for _, e := range store.Items() {
		_, _ = fmt.Fprintf(w, "added %s\n", describeEntry(e, store.Location()))
	}
	return nil
}
