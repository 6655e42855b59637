package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thermograph.yaml")
	body := "listen: 127.0.0.1:9000\ncsv_path: data/mice.csv\nwindow_minutes: 5\ndefault_cohort: female\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9000", cfg.Listen)
	require.Equal(t, "data/mice.csv", cfg.CSVPath)
	require.Equal(t, 5.0, cfg.WindowMinutes)
	require.Equal(t, "female", cfg.DefaultCohort)
	require.Equal(t, Default().DBPath, cfg.DBPath)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("THERMOGRAPH_LISTEN", "127.0.0.1:7777")
	t.Setenv("THERMOGRAPH_WINDOW_MINUTES", "10")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:7777", cfg.Listen)
	require.Equal(t, 10.0, cfg.WindowMinutes)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thermograph.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window_minutes: -1\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("default_cohort: weasel\n"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
}
