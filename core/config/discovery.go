// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Searches the working directory and the user configuration
//              directory for a snacks configuration file.
// Author: msto63
// Version: v1.0.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-18 v1.0.0: Search paths for the snacks command line tool

package config

import (
	"os"
	"path/filepath"

	mdwerrors "github.com/msto63/snacks/core/errors"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
}

// DefaultDiscoveryOptions searches ./snacks.* and then snacks/snacks.* below
// the user configuration directory ($XDG_CONFIG_HOME or ~/.config)
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "snacks"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"snacks"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// FindConfigFile returns the first existing candidate in search order
func FindConfigFile(options DiscoveryOptions) (string, bool) {
	for _, configPath := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, true
		}
	}
	return "", false
}

// ListPossibleConfigFiles returns a list of all possible configuration file paths
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string

	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}

	return paths
}

// Discover loads the first configuration file found. It fails when no
// candidate exists; use LoadOrDefault to fall back to the defaults.
func Discover(options DiscoveryOptions) (*Config, error) {
	found, ok := FindConfigFile(options)
	if !ok {
		searchPaths := ListPossibleConfigFiles(options)
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("discover").
			Message("no configuration file found").
			Detail("searchPaths", searchPaths).
			Build()
	}
	return Load(found)
}
