package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// DefaultProfilesFile is looked up in the home directory
const DefaultProfilesFile = ".finreportcfg"

type ProfileRegistry interface {
	GetProfiles() []string
	GetProfile(name string) (map[string]any, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

// NewProfileRegistry loads an INI file where every section is a named set of settings
func NewProfileRegistry(path string) (ProfileRegistry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles file %s: %w", path, err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func DefaultProfilesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultProfilesFile
	}
	return filepath.Join(home, DefaultProfilesFile)
}

func (cr *cfgRegistry) GetProfiles() []string {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles
}

func (cr *cfgRegistry) GetProfile(name string) (map[string]any, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found (available: %s)", name, strings.Join(cr.GetProfiles(), ", "))
	}

	values := make(map[string]any, len(section.Keys()))
	for _, key := range section.Keys() {
		values[normalizeKey(key.Name())] = key.String()
	}
	return values, nil
}

func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_")
}
