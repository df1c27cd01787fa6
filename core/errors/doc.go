// Package errors provides the standard error constructors for snacks packages.
//
// Package: errors
// Title: Error Standards
// Description: Every snacks package builds its errors through this package so
//              that module, operation and code are filled in the same way
//              everywhere. The resulting values are *core/error.Error.
// Author: msto63
// Version: v1.0.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-18 v1.0.0: Module set for operatorx, anglex, mathx, config and batch
//
// Usage:
//
//	err := errors.InvalidFormat(errors.ModuleMathx, "ratio", "16-9", "a:b")
//	errors.ExtractModule(err)    // "mathx"
//	errors.ExtractOperation(err) // "ratio"
//
//	custom := errors.NewErrorBuilder(errors.ModuleBatch).
//	    Operation("run").
//	    Messagef("job %d failed", i).
//	    Cause(cause).
//	    Build()
package errors
