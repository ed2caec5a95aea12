package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/Raghav-2611/saanjha/internal/schedule"
	"github.com/Raghav-2611/saanjha/internal/vault"
	"github.com/spf13/cobra"
)

var vaultCmd = GroupCommand{
	Use:   "vault",
	Short: "Keep scans, lab results and prescriptions in one place",
	Subcommands: []*cobra.Command{
		vaultAddCmd,
		vaultListCmd,
		vaultShowCmd,
		vaultRemoveCmd,
	},
}.Build()

type reportFlags struct {
	Title  string
	Type   string
	Date   string
	Images []string
}

var vaultAddCmd = LeafCommand{
	Use:   "add [title]",
	Short: "Store a medical report (prompts for the title when omitted)",
	Example: `  saanjha vault add "NT scan" --type Scan --date "Feb 20" --image ~/Downloads/nt-scan.jpg
  saanjha vault add "Blood work" --type Lab -i page1.png -i page2.png`,
	Args: cobra.MaximumNArgs(1),
	StrFlags: []StringFlag{
		{Name: "type", Shorthand: "t", Usage: "report type, e.g. Scan, Lab, Prescription (default: General)"},
		{Name: "date", Shorthand: "d", Usage: "date of the report (default: today)"},
	},
	SliceFlags: []StringSliceFlag{
		{Name: "image", Shorthand: "i", Usage: "image or PDF to attach (repeatable)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var f reportFlags
		if len(args) > 0 {
			f.Title = args[0]
		}
		f.Type, _ = cmd.Flags().GetString("type")
		f.Date, _ = cmd.Flags().GetString("date")
		f.Images, _ = cmd.Flags().GetStringSlice("image")
		return withApp(cmd, func(a *app) error {
			return runVaultAdd(cmd, a.vault, a.store.Location(), f, NewPromptKit(), time.Now)
		})
	},
}.Build()

var vaultListCmd = LeafCommand{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List stored reports, newest first",
	StrFlags: []StringFlag{
		{Name: "type", Shorthand: "t", Usage: "only show reports of this type"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		typeFlag, _ := cmd.Flags().GetString("type")
		return withApp(cmd, func(a *app) error {
			return runVaultList(cmd, a.vault, a.store.Location(), typeFlag)
		})
	},
}.Build()

var vaultShowCmd = LeafCommand{
	Use:   "show <id>",
	Short: "Show a report and where its images are stored",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			return runVaultShow(cmd, a.vault, a.store.Location(), args[0])
		})
	},
}.Build()

var vaultRemoveCmd = LeafCommand{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a report and its stored images",
	Args:    cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Shorthand: "y", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		yesFlag, _ := cmd.Flags().GetBool("yes")
		return withApp(cmd, func(a *app) error {
			return runVaultRemove(cmd, a.vault, a.store.Location(), args[0], ResolveConfirmFunc(yesFlag))
		})
	},
}.Build()

func runVaultAdd(cmd *cobra.Command, v *vault.Vault, loc *time.Location, f reportFlags, pk PromptKit, nowFn func() time.Time) error {
	now := nowFn().In(loc)

	title := strings.TrimSpace(f.Title)
	if title == "" && pk.Prompt != nil {
		answer, err := pk.Prompt("Report title", "")
		if err != nil {
			return err
		}
		title = strings.TrimSpace(answer)
	}
	if title == "" {
		return fmt.Errorf("title is required")
	}

	day, err := schedule.ParseDate(f.Date, now)
	if err != nil {
		return fmt.Errorf("invalid --date: %w", err)
	}

	r, err := v.Add(vault.NewReport(title, f.Type, day.Time(loc), now), f.Images...)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "stored report %s %s (%s, %s, %s)\n",
		Silent(r.ShortID()), Primary(r.Title), r.Type, r.Date.In(loc).Format("Jan 2, 2006"), imageCount(len(r.Images)))
	return nil
}

func runVaultList(cmd *cobra.Command, v *vault.Vault, loc *time.Location, typeFlag string) error {
	w := cmd.OutOrStdout()
	shown := 0
	for _, r := range v.List() {
		if typeFlag != "" && !strings.EqualFold(r.Type, strings.TrimSpace(typeFlag)) {
			continue
		}
		_, _ = fmt.Fprintf(w, "%s  %s  %-12s  %s %s\n",
			Silent(r.ShortID()),
			r.Date.In(loc).Format("2006-01-02"),
			r.Type,
			Primary(r.Title),
			Silent("("+imageCount(len(r.Images))+")"))
		shown++
	}
	if shown == 0 {
		_, _ = fmt.Fprintln(w, "No reports yet. Store one with 'saanjha vault add'.")
	}
	return nil
}

func runVaultShow(cmd *cobra.Command, v *vault.Vault, loc *time.Location, idPrefix string) error {
	r, err := v.Resolve(idPrefix)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s\n", Primary(r.Title))
	_, _ = fmt.Fprintf(w, "%-10s %s\n", "Type:", r.Type)
	_, _ = fmt.Fprintf(w, "%-10s %s\n", "Date:", r.Date.In(loc).Format("Jan 2, 2006"))
	_, _ = fmt.Fprintf(w, "%-10s %s\n", "Uploaded:", r.UploadedAt.In(loc).Format("Jan 2, 2006 3:04 PM"))
	if len(r.Images) == 0 {
		_, _ = fmt.Fprintf(w, "%-10s %s\n", "Images:", "none")
		return nil
	}
	_, _ = fmt.Fprintf(w, "%-10s\n", "Images:")
	for _, id := range r.Images {
		_, _ = fmt.Fprintf(w, "  %s\n", v.ImagePath(id))
	}
	return nil
}

func runVaultRemove(cmd *cobra.Command, v *vault.Vault, loc *time.Location, idPrefix string, confirm ConfirmFunc) error {
	r, err := v.Resolve(idPrefix)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "  %s %s (%s, %s)\n", Silent(r.ShortID()), r.Title, r.Type, r.Date.In(loc).Format("Jan 2, 2006"))
	if len(r.Images) > 0 {
		_, _ = fmt.Fprintf(w, "  %s\n", Warning(imageCount(len(r.Images))+" will be deleted"))
	}

	if confirm != nil {
		ok, err := confirm("Remove this report?")
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(w, "cancelled")
			return nil
		}
	}

	if err := v.Remove(r); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "removed report %s\n", Silent(r.ShortID()))
	return nil
}

func imageCount(n int) string {
	if n == 1 {
		return "1 image"
	}
	return fmt.Sprintf("%d images", n)
}
