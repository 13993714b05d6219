package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestValidate checks required fields, format validations and defaults.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))

	// Missing socket.
	settings := new(Config)

	err := Validate(settings)
	require.Error(t, err)

	// Bad socket.
	settings = &Config{
		ServerAddress: "bad:address",
	}

	err = Validate(settings)
	require.Error(t, err)

	// Bad log level.
	settings = &Config{
		ServerAddress: "127.0.0.1:0",
		LogLevel:      "loud",
	}

	err = Validate(settings)
	require.ErrorIs(t, err, errUnknownLogLevel)

	// Defaults are filled in.
	settings = &Config{
		ServerAddress: "127.0.0.1:0",
	}

	err = Validate(settings)
	require.NoError(t, err)
	require.Equal(t, DefaultTimeout, settings.Timeout)
	require.Equal(t, DefaultAlarmsFilename, settings.AlarmsFile)
	require.Equal(t, DefaultLogLevel, settings.LogLevel)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	settings := &Config{
		ServerAddress: "127.0.0.1:50051",
		AlarmsFile:    filepath.Join(dir, "alarms.json"),
		Timeout:       3 * time.Second,
		LogLevel:      "debug",
	}

	require.NoError(t, Save(path, settings))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, settings, loaded)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

// TestLoad_Missing reports a missing settings file.
func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestLoad_EnvOverrides lets environment variables win over the file.
func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	require.NoError(t, Save(path, &Config{
		ServerAddress: "127.0.0.1:50051",
		LogLevel:      "info",
	}))

	t.Setenv("ALARM_CLOCK_SERVER_ADDR", "127.0.0.1:6000")
	t.Setenv("ALARM_CLOCK_TIMEOUT", "250ms")

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:6000", loaded.ServerAddress)
	require.Equal(t, 250*time.Millisecond, loaded.Timeout)
	require.Equal(t, "info", loaded.LogLevel)
	require.Contains(t, EnvHelp(), "ALARM_CLOCK_ALARMS_FILE")
}
