package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	settings, err := Load(LoadOptions{EnvFile: noEnvFile(t)})
	require.NoError(t, err)

	assert.Equal(t, "simple", settings.Format)
	assert.True(t, settings.Summary)
	assert.False(t, settings.Dedupe)
	assert.Equal(t, "revenue", settings.RevKey)
	assert.Equal(t, "profit", settings.ProfKey)
	assert.Equal(t, "auto", settings.Color)
	assert.Equal(t, "Financial Report", settings.Title)
	assert.Equal(t, "error", settings.LogLevel)
	assert.Empty(t, settings.Export)
}

func TestLoad_Precedence(t *testing.T) {
	// Given
	dir := t.TempDir()
	configFile := writeFile(t, dir, "finreport.yaml", `
format: grid
title: From File
rev_key: income
summary: false
`)
	profilesFile := writeFile(t, dir, "profiles.ini", `
[team]
format = github
title = From Profile
`)
	t.Setenv("FINREPORT_FORMAT", "pipe")
	t.Setenv("FINREPORT_COLOR", "never")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", "simple", "")
	flags.String("title", "Flag Default", "")
	flags.String("rev-key", "revenue", "")
	require.NoError(t, flags.Parse([]string{"--format", "rst"}))

	// When
	settings, err := Load(LoadOptions{
		ConfigFile:   configFile,
		Profile:      "team",
		ProfilesFile: profilesFile,
		EnvFile:      noEnvFile(t),
		Flags:        flags,
	})

	// Then
	require.NoError(t, err)
	assert.Equal(t, "rst", settings.Format, "changed flag wins")
	assert.Equal(t, "never", settings.Color, "environment beats defaults")
	assert.Equal(t, "From Profile", settings.Title, "profile beats config file, unchanged flag is ignored")
	assert.Equal(t, "income", settings.RevKey, "config file beats defaults and flag defaults")
	assert.False(t, settings.Summary)
}

func TestLoad_EnvFile(t *testing.T) {
	envFile := writeFile(t, t.TempDir(), ".env", "FINREPORT_DEDUPE=true\n")
	t.Cleanup(func() { _ = os.Unsetenv("FINREPORT_DEDUPE") })

	settings, err := Load(LoadOptions{EnvFile: envFile})
	require.NoError(t, err)
	assert.True(t, settings.Dedupe)
}

func TestLoad_InvalidSettings(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		value   string
		message string
	}{
		{name: "unknown format", env: "FINREPORT_FORMAT", value: "fancy", message: `format "fancy" must be one of`},
		{name: "unknown color", env: "FINREPORT_COLOR", value: "sometimes", message: `color "sometimes" must be one of: auto, always, never`},
		{name: "unknown log level", env: "FINREPORT_LOG_LEVEL", value: "loud", message: `log_level "loud" is not a log level`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)

			_, err := Load(LoadOptions{EnvFile: noEnvFile(t)})

			require.ErrorIs(t, err, ErrInvalidSettings)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoad_EmptyKeyIsRejected(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("prof-key", "profit", "")
	require.NoError(t, flags.Parse([]string{"--prof-key="}))

	_, err := Load(LoadOptions{EnvFile: noEnvFile(t), Flags: flags})

	require.ErrorIs(t, err, ErrInvalidSettings)
	assert.Contains(t, err.Error(), "prof_key is required")
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(LoadOptions{
		ConfigFile: filepath.Join(t.TempDir(), "absent.yaml"),
		EnvFile:    noEnvFile(t),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_UnknownProfile(t *testing.T) {
	profilesFile := writeFile(t, t.TempDir(), "profiles.ini", "[team]\nformat = grid\n")

	_, err := Load(LoadOptions{
		Profile:      "other",
		ProfilesFile: profilesFile,
		EnvFile:      noEnvFile(t),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile other not found (available: team)")
}

func TestFlagName(t *testing.T) {
	assert.Equal(t, "rev-key", FlagName("rev_key"))
	assert.Equal(t, "format", FlagName("format"))
}
