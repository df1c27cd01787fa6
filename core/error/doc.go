// Package error provides the structured error type used across snacks.
//
// Package: error
// Title: Structured Error Handling
// Description: Errors carry a machine-readable Code, a Severity and a details
//              map. Two errors with the same known code are equal under
//              errors.Is, which lets packages export sentinels and still attach
//              per-call details to the values they return.
// Author: msto63
// Version: v1.0.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-18 v1.0.0: Code-based equality, trimmed metadata
//
// Usage:
//
//	import mdwerror "github.com/msto63/snacks/core/error"
//
//	var ErrThing = mdwerror.New("thing failed").WithCode("THING_FAILED")
//
//	err := ErrThing.Clone().WithDetail("input", in)
//	errors.Is(err, ErrThing) // true
//
//	if mdwerror.HasCode(err, "THING_FAILED") {
//	    // handle
//	}
package error
