// File: validation.go
// Title: Configuration Validation Implementation
// Description: Validates a Config with go-playground/validator struct tags
//              plus a custom "ring" rule, and converts failures into one
//              structured error listing every offending field.
// Author: msto63
// Version: v1.0.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-18 v1.0.0: Struct tag validation with go-playground/validator

package config

import (
	"errors"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	mdwerrors "github.com/msto63/snacks/core/errors"
	"github.com/msto63/snacks/utils/mathx"
)

// configValidate is the validator instance for Config.
// Initialized in init() with custom validators.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New()

	_ = configValidate.RegisterValidation("ring", validateRing)
}

// validateRing accepts a positive, finite ring size
func validateRing(fl validator.FieldLevel) bool {
	ring := fl.Field().Float()
	return mathx.IsUsefulNumber(ring) && ring > 0
}

// Validate checks every section of the configuration
func (c *Config) Validate() error {
	err := configValidate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("validate").
			Message("config validation failed").
			Cause(err).
			Build()
	}

	fields := make(map[string]string, len(fieldErrs))
	names := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		name := fieldName(fe.Namespace())
		fields[name] = describeRule(fe)
		names = append(names, name)
	}
	sort.Strings(names)

	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
		Operation("validate").
		Messagef("invalid config: %s", strings.Join(names, ", ")).
		Detail("fields", fields).
		Build()
}

// fieldName turns "Config.Operators.Modulo" into "operators.modulo"
func fieldName(namespace string) string {
	return strings.ToLower(strings.TrimPrefix(namespace, "Config."))
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return "must be one of: " + fe.Param()
	case "ring":
		return "must be a positive finite number"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}
