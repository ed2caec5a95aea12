package cli

import (
	"testing"
	"time"

	"github.com/Raghav-2611/saanjha/internal/config"
	"github.com/Raghav-2611/saanjha/internal/defaults"
	"github.com/Raghav-2611/saanjha/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFresh(t *testing.T) {
	home := t.TempDir()
	cmd, out := testCmd()

	opts := initOptions{Storage: "sqlite", Timezone: "Asia/Kolkata", Seed: true}
	require.NoError(t, runInit(cmd, home, "", opts, AlwaysYes(), fixedNow))

	s := out.String()
	assert.Contains(t, s, "config written to")
	assert.Contains(t, s, "sqlite storage at")
	assert.Contains(t, s, "First trimester scan")
	assert.Contains(t, s, "saanjha initialized successfully")

	cfg, err := config.Load(config.Path(home))
	require.NoError(t, err)
	assert.Equal(t, defaults.KindSQLite, cfg.Storage)
	assert.Equal(t, "Asia/Kolkata", cfg.Timezone)

	a, err := openApp(home, "", nil, false)
	require.NoError(t, err)
	defer a.Close()
	assert.Len(t, a.store.Items(), 3)
	assert.Equal(t, "Asia/Kolkata", a.store.Location().String())

	done, err := profile.Onboarded(a.defaults)
	require.NoError(t, err)
	assert.True(t, done)
}

func TestInitDeclineSeed(t *testing.T) {
	home := t.TempDir()
	cmd, _ := testCmd()

	declined := func(string) (bool, error) { return false, nil }
	require.NoError(t, runInit(cmd, home, "", initOptions{}, declined, fixedNow))

	a, err := openApp(home, "", nil, false)
	require.NoError(t, err)
	defer a.Close()
	assert.Equal(t, defaults.KindFile, a.cfg.Storage)
	assert.Empty(t, a.store.Items())
}

func TestInitAlreadyInitialized(t *testing.T) {
	home := t.TempDir()
	cmd, _ := testCmd()
	require.NoError(t, runInit(cmd, home, "", initOptions{Timezone: "UTC"}, AlwaysYes(), fixedNow))

	err := runInit(cmd, home, "", initOptions{}, AlwaysYes(), fixedNow)
	assert.ErrorContains(t, err, "already initialized")

	// --force rewrites the config but keeps existing entries
	require.NoError(t, runInit(cmd, home, "", initOptions{Force: true, Timezone: "UTC"}, AlwaysYes(), fixedNow))
	a, err := openApp(home, "", nil, false)
	require.NoError(t, err)
	defer a.Close()
	assert.Len(t, a.store.Items(), 3)
}

func TestInitInvalidOptions(t *testing.T) {
	home := t.TempDir()
	cmd, _ := testCmd()

	assert.ErrorContains(t, runInit(cmd, home, "", initOptions{Storage: "redis"}, AlwaysYes(), fixedNow), "unknown storage")
	assert.ErrorContains(t, runInit(cmd, home, "", initOptions{Timezone: "Mars/Olympus"}, AlwaysYes(), fixedNow), "unknown timezone")
	assert.NoFileExists(t, config.Path(home))
}

func TestInitSeedUsesNow(t *testing.T) {
	home := t.TempDir()
	cmd, _ := testCmd()
	require.NoError(t, runInit(cmd, home, "", initOptions{Timezone: "UTC", Seed: true}, nil, fixedNow))

	a, err := openApp(home, "", nil, false)
	require.NoError(t, err)
	defer a.Close()
	for _, e := range a.store.Items() {
		assert.False(t, e.OccursAt.Before(time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)), e.Title)
	}
}
