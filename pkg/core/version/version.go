// ============================================================================
// snacks - relative values and circular statistics
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and its tools
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

// Version constants for the snacks library and its components
const (
	// Library version
	Library = "1.0.3"

	// Component versions
	Operatorx = "1.0.0"
	Anglex    = "1.0.0"
	Mathx     = "1.0.0"
	Config    = "1.0.0"
	Batch     = "1.0.0"
	CLI       = "1.0.0"
)

// Build metadata, set with -ldflags "-X github.com/msto63/snacks/pkg/core/version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Components lists the component names in display order
var Components = []string{"operatorx", "anglex", "mathx", "config", "batch", "cli"}

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "operatorx":
		return Operatorx
	case "anglex":
		return Anglex
	case "mathx":
		return Mathx
	case "config":
		return Config
	case "batch":
		return Batch
	case "cli":
		return CLI
	default:
		return Library
	}
}
