// File: doc.go
// Title: Package Documentation for config
// Description: Package config loads the snacks configuration from TOML or
//              YAML files with environment variable overrides.
// Author: msto63
// Version: v1.0.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-18 v1.0.0: Typed configuration for the snacks tools

// Package config provides the typed configuration of the snacks tools.
//
// Sources are applied in this order, later ones winning:
//
//  1. Built-in defaults (Default)
//  2. A TOML or YAML file, chosen by extension
//  3. SNACKS_* environment variables
//
// The result is validated before it is returned. Unknown keys in a file are
// rejected so that typos do not go unnoticed.
//
// Example snacks.toml:
//
//	[log]
//	level = "info"      # debug, info, warn, error
//	format = "console"  # console, json
//
//	[output]
//	format = "text"     # text, json, yaml
//	color = "auto"      # auto, always, never
//	precision = -1      # digits after the point, -1 for shortest
//
//	[operators]
//	modulo = "remainder" # remainder, division
//
//	[angles]
//	ring = 360.0
//
// Without an explicit path LoadOrDefault searches ./snacks.{toml,yaml,yml}
// and then snacks/snacks.{toml,yaml,yml} in the user configuration
// directory.
package config
