package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate checks defaulting and the rejected inputs.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Empty settings get defaults.
	cfg := new(Config)
	require.NoError(t, Validate(cfg))
	require.Equal(t, DefaultDeviceName, cfg.DeviceName)
	require.Equal(t, FormatText, cfg.Format)
	require.Equal(t, DefaultAlertChain(), cfg.AlertChain)

	// Format is normalised.
	cfg = &Config{Format: " JSON "}
	require.NoError(t, Validate(cfg))
	require.Equal(t, FormatJSON, cfg.Format)

	// Unknown format.
	err := Validate(&Config{Format: "xml"})
	require.ErrorIs(t, err, errUnknownFormat)

	// Unknown log level.
	err = Validate(&Config{LogLevel: "chatty"})
	require.ErrorIs(t, err, errUnknownLogLevel)

	// Empty category.
	err = Validate(&Config{AlertChain: []AlertRoute{{Label: "x"}}})
	require.ErrorIs(t, err, errEmptyCategory)

	// Duplicate category.
	err = Validate(&Config{AlertChain: []AlertRoute{
		{Category: "motion"},
		{Category: "motion"},
	}})
	require.ErrorIs(t, err, errDuplicateCategory)

	require.ErrorIs(t, Validate(nil), errConfigIsNotSet)
}

// TestLoad_EmptyPathReturnsDefault ensures the CLI works without a settings file.
func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

// TestLoad_MissingFile reports a read error.
func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "smart-home.yaml")

	cfg := &Config{
		DeviceName: "Kitchen Light",
		HubName:    "kitchen_light",
		Format:     FormatJSON,
		AlertChain: []AlertRoute{
			{Category: "smoke", Label: "Smoke detected!"},
			{Category: "police", Label: "Police notified!"},
		},
		InterpreterCommands: []string{"switch on kitchen"},
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)

	_, err = os.Stat(path)
	require.NoError(t, err)
}
