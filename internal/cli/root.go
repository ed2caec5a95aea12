package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configFlag  string
	verboseFlag bool

	logLevel = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	logger   = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:          "saanjha",
	Short:        "A shared pregnancy schedule for you and your partner",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(verboseFlag)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default ~/.saanjha/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	rootCmd.SetHelpFunc(colorizedHelpFunc())

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(vaultCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}

// newLogger builds the process logger. The level stays adjustable through
// logLevel so the config file can lower or raise it once loaded.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		logLevel.SetLevel(zapcore.DebugLevel)
	}
	cfg.Level = logLevel
	return cfg.Build()
}

func Execute() error {
	return rootCmd.Execute()
}
