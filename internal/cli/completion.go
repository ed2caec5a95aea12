package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Raghav-2611/saanjha/internal/schedule"
	"github.com/spf13/cobra"
)

var validShells = []string{"bash", "zsh", "fish", "powershell"}

var completionCmd = GroupCommand{
	Use:   "completion",
	Short: "Manage shell completions",
	Subcommands: []*cobra.Command{
		completionGenerateCmd,
		completionInstallCmd,
	},
}.Build()

var completionGenerateCmd = newCompletionGenerateCmd()

func newCompletionGenerateCmd() *cobra.Command {
	cmd := LeafCommand{
		Use:   "generate [SHELL]",
		Short: "Generate shell completion script",
		Example: "  saanjha completion generate bash > /etc/bash_completion.d/saanjha\n" +
			"  saanjha completion generate zsh > \"${fpath[1]}/_saanjha\"\n" +
			"  saanjha completion generate fish > ~/.config/fish/completions/saanjha.fish",
		Args: cobra.RangeArgs(0, 1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return validShells, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := ""
			if len(args) > 0 {
				shell = args[0]
			} else {
				shell = detectShell()
				if shell == "" {
					return fmt.Errorf("could not detect shell from $SHELL environment variable; please specify one explicitly (bash, zsh, fish, powershell)")
				}
			}
			return runCompletion(cmd, shell)
		},
	}.Build()
	cmd.Long = "Print the completion script for SHELL to stdout. Entry ids for edit and\n" +
		"remove complete from the saved schedule, with titles as descriptions.\n" +
		"Use 'saanjha completion install' to add the script to your shell startup file."
	return cmd
}

func runCompletion(cmd *cobra.Command, shell string) error {
	root := cmd.Root()
	out := cmd.OutOrStdout()

	switch shell {
	case "bash":
		return root.GenBashCompletionV2(out, true)
	case "zsh":
		return root.GenZshCompletion(out)
	case "fish":
		return root.GenFishCompletion(out, true)
	case "powershell":
		return root.GenPowerShellCompletion(out)
	default:
		return fmt.Errorf("unsupported shell: %s (valid: bash, zsh, fish, powershell)", shell)
	}
}

// completeEntryIDs offers the short ids of saved entries for commands that
// take an entry id.
func completeEntryIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	a, err := openApp(homeDir, configFlag, nil, true)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer a.Close()

	return entryCompletions(a.store.Items(), toComplete, a.store.Location()), cobra.ShellCompDirectiveNoFileComp
}

// entryCompletions returns "shortid<TAB>description" for entries whose id
// starts with prefix.
func entryCompletions(entries []schedule.Entry, prefix string, loc *time.Location) []string {
	prefix = strings.ToLower(prefix)
	var out []string
	for _, e := range entries {
		if !strings.HasPrefix(e.ID.String(), prefix) {
			continue
		}
		at := e.OccursAt.In(loc)
		desc := fmt.Sprintf("%s, %s %s", schedule.TrimTitle(e.Title, 40), at.Format("Jan 2"), schedule.FormatClock(schedule.ClockOf(at)))
		out = append(out, e.ShortID()+"\t"+desc)
	}
	return out
}
