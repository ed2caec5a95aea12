package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Raghav-2611/saanjha/internal/config"
	"github.com/Raghav-2611/saanjha/internal/defaults"
	"github.com/Raghav-2611/saanjha/internal/schedule"
	"github.com/Raghav-2611/saanjha/internal/vault"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is everything a command needs once configuration and storage are open.
type app struct {
	homeDir  string
	cfgPath  string
	cfg      *config.Config
	defaults defaults.Defaults
	store    *schedule.Store
	vault    *vault.Vault
	logger   *zap.Logger

	// recoveredFrom is where an unreadable defaults file was moved on open.
	recoveredFrom string
}

// openApp loads the config at cfgPath (or the default location under
// homeDir), opens the configured storage and loads the schedule.
func openApp(homeDir, cfgPath string, log *zap.Logger, verbose bool) (*app, error) {
	if cfgPath == "" {
		cfgPath = config.Path(homeDir)
	}
	if log == nil {
		log = zap.NewNop()
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if !verbose {
		logLevel.SetLevel(cfg.Level())
	}

	dataPath := cfg.ResolveDataPath(homeDir)
	d, err := defaults.Open(cfg.Storage, dataPath, defaults.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("opening %s storage at %s: %w", cfg.Storage, dataPath, err)
	}
	log.Debug("storage opened",
		zap.String("kind", string(cfg.Storage)),
		zap.String("path", dataPath),
		zap.String("timezone", cfg.Timezone))

	store := schedule.NewStore(d,
		schedule.WithLogger(log),
		schedule.WithLocation(cfg.Location()))

	a := &app{
		homeDir:  homeDir,
		cfgPath:  cfgPath,
		cfg:      cfg,
		defaults: d,
		store:    store,
		vault:    vault.New(d, filepath.Join(filepath.Dir(dataPath), "vault"), vault.WithLogger(log)),
		logger:   log,
	}
	if f, ok := d.(*defaults.File); ok {
		a.recoveredFrom = f.RecoveredFrom()
	}
	return a, nil
}

func (a *app) Close() error {
	return a.defaults.Close()
}

// now returns the current time in the configured timezone.
func (a *app) now(nowFn func() time.Time) time.Time {
	return nowFn().In(a.store.Location())
}

// withApp opens the app for the duration of fn.
func withApp(cmd *cobra.Command, fn func(a *app) error) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	a, err := openApp(homeDir, configFlag, logger, verboseFlag)
	if err != nil {
		return err
	}
	defer a.Close()

	a.warnRecovery(cmd)
	return fn(a)
}

// warnRecovery tells the user when saved data could not be read.
func (a *app) warnRecovery(cmd *cobra.Command) {
	w := cmd.ErrOrStderr()
	if a.recoveredFrom != "" {
		_, _ = fmt.Fprintf(w, "%s saved data could not be read, moved to %s\n", Warning("warning:"), a.recoveredFrom)
		return
	}
	if err := a.store.LoadErr(); err != nil {
		_, _ = fmt.Fprintf(w, "%s saved schedule could not be read, starting empty\n", Warning("warning:"))
	}
	if err := a.vault.LoadErr(); err != nil {
		_, _ = fmt.Fprintf(w, "%s saved reports could not be read, starting empty\n", Warning("warning:"))
	}
}
