package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var completionInstallCmd = LeafCommand{
	Use:   "install [SHELL]",
	Short: "Add saanjha completions to your shell startup file",
	Args:  cobra.RangeArgs(0, 1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Shorthand: "y", Usage: "skip confirmation prompt"},
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

		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		yes, _ := cmd.Flags().GetBool("yes")
		confirm := ResolveConfirmFunc(yes)

		return runCompletionInstall(cmd, shell, homeDir, confirm)
	},
}.Build()

func runCompletionInstall(cmd *cobra.Command, shell, homeDir string, confirm ConfirmFunc) error {
	setup, ok := shellSetups[shell]
	if !ok {
		return fmt.Errorf("unsupported shell for completion install: %s", shell)
	}
	configFile := filepath.Join("~", setup.rcFile)

	if isCompletionInstalled(shell, homeDir) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("shell completions already installed for %s in %s", Primary(shell), Primary(configFile))))
		return nil
	}

	ok, err := confirm(fmt.Sprintf("Install shell completions for %s into %s?", shell, configFile))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := installCompletion(shell, homeDir); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("shell completions installed for %s in %s", Primary(shell), Primary(configFile))))
	return nil
}
