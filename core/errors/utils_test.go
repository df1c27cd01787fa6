// File: utils_test.go
// Title: Shared Error Handling Utilities Tests
// Description: Tests for ErrorBuilder, the standard constructors and the
//              module code mapping.
// Author: msto63
// Version: v1.0.0
// Created: 2025-01-25
// Modified: 2026-10-18

package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	mdwerror "github.com/msto63/snacks/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Message("test error").
			Detail("key", "value").
			Severity(mdwerror.SeverityHigh).
			Build()

		if err == nil {
			t.Fatal("Expected error, got nil")
		}

		details := err.Details()
		if details["module"] != "testmodule" {
			t.Errorf("Expected module 'testmodule', got %v", details["module"])
		}
		if details["operation"] != "test_op" {
			t.Errorf("Expected operation 'test_op', got %v", details["operation"])
		}
		if details["key"] != "value" {
			t.Errorf("Expected detail key 'value', got %v", details["key"])
		}
		if err.Operation() != "testmodule.test_op" {
			t.Errorf("Operation() = %q", err.Operation())
		}
		if err.Severity() != mdwerror.SeverityHigh {
			t.Errorf("Severity() = %v, want high", err.Severity())
		}
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Cause(cause).
			Build()

		if !errors.Is(err, cause) {
			t.Error("Expected error to wrap the cause")
		}
	})

	t.Run("auto-generated message", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").Operation("test_op").Build()
		if err.Error() != "testmodule.test_op failed" {
			t.Errorf("Error() = %q", err.Error())
		}

		err = NewErrorBuilder("testmodule").Build()
		if err.Error() != "testmodule operation failed" {
			t.Errorf("Error() = %q", err.Error())
		}
	})
}

func TestModuleErrorCodes(t *testing.T) {
	tests := []struct {
		module    string
		operation string
		want      string
	}{
		{ModuleOperatorx, "Apply", CodeOperatorxNoOperation},
		{ModuleOperatorx, "lookup", CodeOperatorxNoOperation},
		{ModuleOperatorx, "parse", CodeOperatorxInvalidFormat},
		{ModuleOperatorx, "register", CodeOperatorxDuplicateKey},
		{ModuleAnglex, "CircularMeanOf", CodeAnglexNotCollection},
		{ModuleAnglex, "midpoint", CodeAnglexInvalidInput},
		{ModuleMathx, "ratio", CodeMathxInvalidFormat},
		{ModuleConfig, "load", CodeConfigLoadFailed},
		{ModuleConfig, "discover", CodeConfigNotFound},
		{ModuleConfig, "validate", CodeConfigInvalid},
		{ModuleBatch, "decode", CodeBatchInvalidFormat},
		{ModuleBatch, "run", CodeBatchJobFailed},
		{"unknown", "x", CodeOperationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.module+"."+tt.operation, func(t *testing.T) {
			assert.Equal(t, tt.want, getModuleErrorCode(tt.module, tt.operation))
		})
	}
}

func TestStandardConstructors(t *testing.T) {
	err := InvalidInput(ModuleAnglex, "midpoint", "abc", "number")
	assert.Equal(t, mdwerror.Code(CodeInvalidInput), err.Code())
	assert.Equal(t, "abc", err.Details()["input"])
	assert.True(t, IsModuleError(err, ModuleAnglex))

	err = InvalidFormat(ModuleMathx, "ratio", "16-9", "a:b")
	assert.Equal(t, mdwerror.Code(CodeMathxInvalidFormat), err.Code())
	assert.Equal(t, "ratio", ExtractOperation(err))

	err = NotFound(ModuleBatch, "open", "jobs.yaml")
	assert.Equal(t, mdwerror.Code(CodeNotFound), err.Code())

	err = OutOfRange(ModuleConfig, "ring", -1, 0, nil)
	assert.Equal(t, mdwerror.Code(CodeOutOfRange), err.Code())
	assert.Equal(t, -1, err.Details()["value"])

	cause := errors.New("disk")
	err = OperationFailed(ModuleConfig, "load", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, mdwerror.Code(CodeConfigLoadFailed), err.Code())
	assert.Equal(t, mdwerror.SeverityHigh, err.Severity())
}

func TestExtract_NonStructured(t *testing.T) {
	plain := errors.New("plain")
	assert.Nil(t, ExtractDetails(plain))
	assert.Empty(t, ExtractModule(plain))
	assert.Empty(t, ExtractOperation(plain))
	assert.False(t, IsModuleError(plain, ModuleMathx))
}
