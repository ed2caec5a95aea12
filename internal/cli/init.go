package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Raghav-2611/saanjha/internal/config"
	"github.com/Raghav-2611/saanjha/internal/defaults"
	"github.com/Raghav-2611/saanjha/internal/fileutil"
	"github.com/Raghav-2611/saanjha/internal/profile"
	"github.com/spf13/cobra"
)

var initCmd = LeafCommand{
	Use:   "init",
	Short: "Create the saanjha config and storage",
	Example: `  saanjha init
  saanjha init --storage sqlite --timezone Asia/Kolkata --seed`,
	StrFlags: []StringFlag{
		{Name: "storage", Usage: "storage backend: file or sqlite", Default: string(defaults.KindFile)},
		{Name: "data-path", Usage: "where to keep the data (default: ~/.saanjha/defaults.json or defaults.db)"},
		{Name: "timezone", Usage: "IANA timezone calendar days are counted in (default: Local)"},
	},
	BoolFlags: []BoolFlag{
		{Name: "seed", Usage: "add a few sample entries"},
		{Name: "force", Usage: "overwrite an existing config"},
		{Name: "yes", Shorthand: "y", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts initOptions
		opts.Storage, _ = cmd.Flags().GetString("storage")
		opts.DataPath, _ = cmd.Flags().GetString("data-path")
		opts.Timezone, _ = cmd.Flags().GetString("timezone")
		opts.Seed, _ = cmd.Flags().GetBool("seed")
		opts.Force, _ = cmd.Flags().GetBool("force")
		yes, _ := cmd.Flags().GetBool("yes")

		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		return runInit(cmd, homeDir, configFlag, opts, ResolveConfirmFunc(yes), time.Now)
	},
}.Build()

type initOptions struct {
	Storage  string
	DataPath string
	Timezone string
	Seed     bool
	Force    bool
}

func runInit(cmd *cobra.Command, homeDir, cfgPath string, opts initOptions, confirm ConfirmFunc, nowFn func() time.Time) error {
	if cfgPath == "" {
		cfgPath = config.Path(homeDir)
	}
	if fileutil.Exists(cfgPath) && !opts.Force {
		return fmt.Errorf("saanjha is already initialized at %s (use --force to rewrite the config)", cfgPath)
	}

	kind, err := defaults.ParseKind(opts.Storage)
	if err != nil {
		return err
	}

	tz := strings.TrimSpace(opts.Timezone)
	if tz != "" && tz != "Local" {
		if _, err := time.LoadLocation(tz); err != nil {
			return fmt.Errorf("unknown timezone '%s'", tz)
		}
	}

	cfg := config.DefaultConfig()
	cfg.Storage = kind
	cfg.DataPath = strings.TrimSpace(opts.DataPath)
	cfg.Timezone = tz
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("config written to %s", Silent(cfgPath))))

	a, err := openApp(homeDir, cfgPath, logger, verboseFlag)
	if err != nil {
		return err
	}
	defer a.Close()

	_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("%s storage at %s", Primary(string(kind)), Silent(cfg.ResolveDataPath(homeDir)))))

	if err := profile.MarkOnboarded(a.defaults); err != nil {
		return err
	}

	seed := opts.Seed
	if !seed && len(a.store.Items()) == 0 && confirm != nil {
		seed, err = confirm("Add a few sample entries to get started?")
		if err != nil {
			return err
		}
	}
	if seed {
		if err := runSeed(cmd, a.store, nowFn); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(w, Text("saanjha initialized successfully"))
	return nil
}
