package cli

import (
	"fmt"

	"github.com/Raghav-2611/saanjha/internal/schedule"
	"github.com/spf13/cobra"
)

var removeCmd = LeafCommand{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove an entry from the schedule",
	Args:    cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Shorthand: "y", Usage: "skip confirmation prompt"},
	},
	ValidArgsFunction: completeEntryIDs,
	RunE: func(cmd *cobra.Command, args []string) error {
		yesFlag, _ := cmd.Flags().GetBool("yes")
		return withApp(cmd, func(a *app) error {
			return runRemove(cmd, a.store, args[0], ResolveConfirmFunc(yesFlag))
		})
	},
}.Build()

func runRemove(cmd *cobra.Command, store *schedule.Store, idPrefix string, confirm ConfirmFunc) error {
	e, err := store.Resolve(idPrefix)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "  %s\n", describeEntry(e, store.Location()))

	if e.Recurrence != schedule.RecurrenceNone && e.Recurrence != "" {
		_, _ = fmt.Fprintf(w, "  %s\n", Warning("every occurrence of this entry will be removed"))
	}

	if confirm != nil {
		ok, err := confirm("Remove this entry?")
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(w, "cancelled")
			return nil
		}
	}

	if err := store.Remove(e); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "removed entry %s\n", Silent(e.ShortID()))
	return nil
}
