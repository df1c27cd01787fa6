// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so callers can decide how
//              loudly to report them.
// Author: msto63
// Version: v1.0.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with four severity levels
// - 2026-10-18 v1.0.0: Severity mapping for the reduced code set

package error

import "strings"

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error such as unusable caller input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects a single operation
	SeverityMedium

	// SeverityHigh indicates an error that stops a whole command or batch
	SeverityHigh

	// SeverityCritical indicates an error that makes the process unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the severity level for an error code.
// Module codes ending in a known suffix inherit the generic mapping.
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh

	case CodeInvalidInput, CodeNotFound, CodeValidationFailed,
		CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidOperation:
		return SeverityLow
	}

	s := string(code)
	switch {
	case strings.HasSuffix(s, "_INVALID_INPUT"), strings.HasSuffix(s, "_INVALID_FORMAT"),
		strings.HasSuffix(s, "_NOT_FOUND"), strings.HasSuffix(s, "_NO_OPERATION"),
		strings.HasSuffix(s, "_NOT_COLLECTION"), strings.HasSuffix(s, "_INVALID_ELEMENT"):
		return SeverityLow
	case strings.HasSuffix(s, "_LOAD_FAILED"), strings.HasSuffix(s, "_INVALID"):
		return SeverityHigh
	default:
		return SeverityMedium
	}
}
