package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRegistry(t *testing.T) {
	path := writeFile(t, t.TempDir(), "profiles.ini", `
[quarterly]
format = grid
Rev-Key = income

[empty]

[monthly]
summary = false
`)

	registry, err := NewProfileRegistry(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"quarterly", "monthly"}, registry.GetProfiles())

	values, err := registry.GetProfile("quarterly")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"format": "grid", "rev_key": "income"}, values)
}

func TestNewProfileRegistry_MissingFile(t *testing.T) {
	_, err := NewProfileRegistry(filepath.Join(t.TempDir(), "nope.ini"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load profiles file")
}

func TestDefaultProfilesPath(t *testing.T) {
	t.Setenv("HOME", "/home/analyst")
	assert.Equal(t, filepath.Join("/home/analyst", DefaultProfilesFile), DefaultProfilesPath())
}
