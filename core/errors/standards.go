// File: standards.go
// Title: Error Standards for snacks Packages
// Description: Module identifiers and error codes shared by the snacks
//              packages, plus the mapping from a module and operation to the
//              code an error should carry.
// Author: msto63
// Version: v1.0.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-18 v1.0.0: Module set replaced by operatorx, anglex, mathx, config, batch

package errors

import (
	"strings"

	mdwerror "github.com/msto63/snacks/core/error"
)

// Module identifiers for error categorization
const (
	ModuleOperatorx = "operatorx"
	ModuleAnglex    = "anglex"
	ModuleMathx     = "mathx"
	ModuleConfig    = "config"
	ModuleBatch     = "batch"
)

// Common error codes
const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeNotFound        = "NOT_FOUND"
	CodeOperationFailed = "OPERATION_FAILED"
)

// Module-specific error codes
const (
	// operatorx
	CodeOperatorxNoOperation   = "OPERATORX_NO_OPERATION"
	CodeOperatorxInvalidInput  = "OPERATORX_INVALID_INPUT"
	CodeOperatorxDuplicateKey  = "OPERATORX_DUPLICATE_KEY"
	CodeOperatorxInvalidFormat = "OPERATORX_INVALID_FORMAT"

	// anglex
	CodeAnglexNotCollection  = "ANGLEX_NOT_COLLECTION"
	CodeAnglexInvalidElement = "ANGLEX_INVALID_ELEMENT"
	CodeAnglexInvalidInput   = "ANGLEX_INVALID_INPUT"

	// mathx
	CodeMathxInvalidFormat = "MATHX_INVALID_FORMAT"
	CodeMathxInvalidInput  = "MATHX_INVALID_INPUT"

	// config
	CodeConfigLoadFailed = "CONFIG_LOAD_FAILED"
	CodeConfigInvalid    = "CONFIG_INVALID"
	CodeConfigNotFound   = "CONFIG_NOT_FOUND"

	// batch
	CodeBatchInvalidFormat = "BATCH_INVALID_FORMAT"
	CodeBatchJobFailed     = "BATCH_JOB_FAILED"
	CodeBatchNotFound      = "BATCH_NOT_FOUND"
)

// getModuleErrorCode returns the appropriate error code for a module operation
func getModuleErrorCode(module, operation string) string {
	op := strings.ToLower(operation)
	switch module {
	case ModuleOperatorx:
		switch {
		case strings.Contains(op, "apply") || strings.Contains(op, "lookup"):
			return CodeOperatorxNoOperation
		case strings.Contains(op, "parse"):
			return CodeOperatorxInvalidFormat
		case strings.Contains(op, "register"):
			return CodeOperatorxDuplicateKey
		default:
			return CodeOperatorxInvalidInput
		}
	case ModuleAnglex:
		switch {
		case strings.Contains(op, "mean"):
			return CodeAnglexNotCollection
		default:
			return CodeAnglexInvalidInput
		}
	case ModuleMathx:
		switch {
		case strings.Contains(op, "parse") || strings.Contains(op, "ratio"):
			return CodeMathxInvalidFormat
		default:
			return CodeMathxInvalidInput
		}
	case ModuleConfig:
		switch {
		case strings.Contains(op, "load") || strings.Contains(op, "read"):
			return CodeConfigLoadFailed
		case strings.Contains(op, "discover") || strings.Contains(op, "find"):
			return CodeConfigNotFound
		default:
			return CodeConfigInvalid
		}
	case ModuleBatch:
		switch {
		case strings.Contains(op, "decode") || strings.Contains(op, "parse"):
			return CodeBatchInvalidFormat
		default:
			return CodeBatchJobFailed
		}
	default:
		return CodeOperationFailed
	}
}

func getFormatErrorCode(module string) string {
	switch module {
	case ModuleOperatorx:
		return CodeOperatorxInvalidFormat
	case ModuleMathx:
		return CodeMathxInvalidFormat
	case ModuleBatch:
		return CodeBatchInvalidFormat
	default:
		return CodeInvalidFormat
	}
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module
}

// ExtractDetails extracts all details from a structured error
func ExtractDetails(err error) map[string]interface{} {
	if mdwErr, ok := err.(*mdwerror.Error); ok {
		return mdwErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}
