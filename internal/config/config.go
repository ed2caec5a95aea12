package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/Raghav-2611/saanjha/internal/defaults"
	"github.com/Raghav-2611/saanjha/internal/fileutil"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk application configuration.
type Config struct {
	// Storage selects the defaults backend: "file" or "sqlite".
	Storage defaults.Kind `yaml:"storage"`

	// DataPath is where the defaults backend keeps its data. Empty means
	// the backend's default file under the saanjha directory.
	DataPath string `yaml:"data_path"`

	// Timezone is the IANA zone calendar days are resolved in, or "Local".
	Timezone string `yaml:"timezone"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Dir returns the global saanjha directory.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, ".saanjha")
}

// Path returns the default config file path.
func Path(homeDir string) string {
	return filepath.Join(Dir(homeDir), "config.yaml")
}

// DefaultDataPath returns the default data file for the given backend.
func DefaultDataPath(homeDir string, kind defaults.Kind) string {
	if kind == defaults.KindSQLite {
		return filepath.Join(Dir(homeDir), "defaults.db")
	}
	return filepath.Join(Dir(homeDir), "defaults.json")
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() *Config {
	return &Config{
		Storage:  defaults.KindFile,
		Timezone: "Local",
		LogLevel: "warn",
	}
}

// Normalize replaces zero or invalid values with defaults.
func (c *Config) Normalize() {
	if k, err := defaults.ParseKind(string(c.Storage)); err == nil {
		c.Storage = k
	} else {
		c.Storage = defaults.KindFile
	}

	c.Timezone = strings.TrimSpace(c.Timezone)
	if c.Timezone == "" {
		c.Timezone = "Local"
	} else if _, err := time.LoadLocation(c.Timezone); err != nil {
		c.Timezone = "Local"
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = "warn"
	}
}

// Location resolves the configured timezone.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Level returns the zap level for LogLevel.
func (c *Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.WarnLevel
	}
	return lvl
}

// ResolveDataPath returns DataPath with a leading "~/" expanded, or the
// backend's default location when DataPath is empty.
func (c *Config) ResolveDataPath(homeDir string) string {
	p := strings.TrimSpace(c.DataPath)
	switch {
	case p == "":
		return DefaultDataPath(homeDir, c.Storage)
	case p == "~":
		return homeDir
	case strings.HasPrefix(p, "~/"):
		return filepath.Join(homeDir, p[2:])
	}
	return p
}

// Load reads the config at path. On first run the default config is
// written to path and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Normalize()

	return cfg, nil
}

// Save writes cfg to path atomically with 0600 permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return fileutil.WriteAtomic(path, data, 0o600)
}

// Save writes c to path.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
