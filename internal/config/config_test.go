package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Raghav-2611/saanjha/internal/defaults"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadFirstRunWritesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".saanjha", "config.yaml")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadReadsAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "storage: SQLite\ntimezone: Asia/Kolkata\nlog_level: DEBUG\ndata_path: ~/data/saanjha.db\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, defaults.KindSQLite, cfg.Storage)
	assert.Equal(t, "Asia/Kolkata", cfg.Timezone)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, zapcore.DebugLevel, cfg.Level())
	assert.Equal(t, filepath.Join("/home/u", "data", "saanjha.db"), cfg.ResolveDataPath("/home/u"))
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: info\n"), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, defaults.KindFile, cfg.Storage)
	assert.Equal(t, "Local", cfg.Timezone)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [oops"), 0o600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestLoadEmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestNormalizeFixesInvalid(t *testing.T) {
	cfg := &Config{Storage: "postgres", Timezone: "Mars/Olympus", LogLevel: "loud"}
	cfg.Normalize()

	assert.Equal(t, defaults.KindFile, cfg.Storage)
	assert.Equal(t, "Local", cfg.Timezone)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, time.Local, cfg.Location())
}

func TestLocation(t *testing.T) {
	cfg := &Config{Timezone: "UTC"}
	assert.Equal(t, time.UTC, cfg.Location())

	cfg = &Config{Timezone: "Local"}
	assert.Equal(t, time.Local, cfg.Location())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := &Config{Storage: defaults.KindSQLite, DataPath: "/tmp/x.db", Timezone: "UTC", LogLevel: "error"}

	require.NoError(t, cfg.Save(path))
	got, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestResolveDataPathDefaults(t *testing.T) {
	home := "/home/u"

	assert.Equal(t, filepath.Join(home, ".saanjha", "defaults.json"), (&Config{Storage: defaults.KindFile}).ResolveDataPath(home))
	assert.Equal(t, filepath.Join(home, ".saanjha", "defaults.db"), (&Config{Storage: defaults.KindSQLite}).ResolveDataPath(home))
	assert.Equal(t, "/abs/path.json", (&Config{DataPath: "/abs/path.json"}).ResolveDataPath(home))
}

func TestPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("/h", ".saanjha"), Dir("/h"))
	assert.Equal(t, filepath.Join("/h", ".saanjha", "config.yaml"), Path("/h"))
}
