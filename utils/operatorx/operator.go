// File: operator.go
// Title: Arithmetic Operators
// Description: Defines the immutable Operator type, the fold rules of the
//              built-in operator set and the modulo mode that selects how
//              the modulo operator reduces.
// Author: msto63
// Version: v1.0.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v1.0.0: Initial implementation

package operatorx

import (
	"math"
	"strings"

	mdwerrors "github.com/msto63/snacks/core/errors"
)

// Canonical keys of the built-in operators. They are valid Symbol refs.
const (
	Add Symbol = "add"
	Sub Symbol = "sub"
	Mul Symbol = "mul"
	Div Symbol = "div"
	Mod Symbol = "mod"
	Exp Symbol = "exp"
	Inc Symbol = "inc"
	Dec Symbol = "dec"
)

// ReduceFunc folds operands onto base and returns the accumulated value
type ReduceFunc func(base float64, operands []float64) float64

// Operator is a named arithmetic transformation with symbol aliases and an
// optional identity element. Operators are created by a Registry and never
// change afterwards.
type Operator struct {
	key         string
	symbols     []string
	identity    float64
	hasIdentity bool
	reduce      ReduceFunc
}

// Key returns the canonical key, which is also the first symbol
func (o *Operator) Key() string {
	return o.key
}

// Symbols returns a copy of the symbols recognized for this operator
func (o *Operator) Symbols() []string {
	out := make([]string, len(o.symbols))
	copy(out, o.symbols)
	return out
}

// Identity returns the identity element and whether the operator has one
func (o *Operator) Identity() (float64, bool) {
	return o.identity, o.hasIdentity
}

// Reduce folds operands onto base using the operator's rule
func (o *Operator) Reduce(base float64, operands ...float64) float64 {
	return o.reduce(base, operands)
}

// String returns the operator key
func (o *Operator) String() string {
	if o == nil {
		return "<nil>"
	}
	return o.key
}

// ModuloMode selects the reduction rule of the modulo operator
type ModuloMode int

const (
	// ModuloRemainder folds with math.Mod; the sign follows the dividend
	ModuloRemainder ModuloMode = iota
	// ModuloDivision folds with plain division, as early releases did
	ModuloDivision
)

// DefaultModuloMode is used by registries built without WithModuloMode
const DefaultModuloMode = ModuloRemainder

// String returns the configuration name of the mode
func (m ModuloMode) String() string {
	switch m {
	case ModuloRemainder:
		return "remainder"
	case ModuloDivision:
		return "division"
	default:
		return "unknown"
	}
}

// ParseModuloMode converts "remainder" or "division" into a ModuloMode.
// An empty string yields DefaultModuloMode.
func ParseModuloMode(s string) (ModuloMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultModuloMode, nil
	case "remainder", "rem":
		return ModuloRemainder, nil
	case "division", "div":
		return ModuloDivision, nil
	default:
		return DefaultModuloMode, mdwerrors.InvalidInput(mdwerrors.ModuleOperatorx, "modulo", s, "remainder or division")
	}
}

// Definition describes an operator to register
type Definition struct {
	Key         string
	Symbols     []string
	Identity    float64
	HasIdentity bool
	Reduce      ReduceFunc
}

// Fold builds a ReduceFunc that applies step to each operand from left to right
func Fold(step func(acc, operand float64) float64) ReduceFunc {
	return func(base float64, operands []float64) float64 {
		acc := base
		for _, operand := range operands {
			acc = step(acc, operand)
		}
		return acc
	}
}

// Step builds a ReduceFunc that adds delta to base once, whatever the operands
func Step(delta float64) ReduceFunc {
	return func(base float64, _ []float64) float64 {
		return base + delta
	}
}

// builtins returns the built-in operators in registration order
func builtins(modulo ModuloMode) []Definition {
	mod := math.Mod
	if modulo == ModuloDivision {
		mod = func(a, b float64) float64 { return a / b }
	}

	return []Definition{
		{
			Key:         string(Add),
			Symbols:     []string{"add", "+", "addition"},
			HasIdentity: true,
			Reduce:      Fold(func(a, b float64) float64 { return a + b }),
		},
		{
			Key:         string(Sub),
			Symbols:     []string{"sub", "-", "subtract", "subtraction"},
			HasIdentity: true,
			Reduce:      Fold(func(a, b float64) float64 { return a - b }),
		},
		{
			Key:         string(Mul),
			Symbols:     []string{"mul", "*", "x", "×", "mult", "multiply", "multiplication"},
			Identity:    1,
			HasIdentity: true,
			Reduce:      Fold(func(a, b float64) float64 { return a * b }),
		},
		{
			Key:         string(Div),
			Symbols:     []string{"div", "/", "÷", "divide", "division"},
			Identity:    1,
			HasIdentity: true,
			Reduce:      Fold(func(a, b float64) float64 { return a / b }),
		},
		{
			Key:     string(Mod),
			Symbols: []string{"mod", "%", "modulo", "modulus", "rem", "remainder"},
			Reduce:  Fold(mod),
		},
		{
			Key:     string(Exp),
			Symbols: []string{"exp", "^", "**", "exponent", "exponentiate", "exponentiation"},
			Reduce:  Fold(math.Pow),
		},
		{
			Key:     string(Inc),
			Symbols: []string{"inc", "++", "increment"},
			Reduce:  Step(1),
		},
		{
			Key:     string(Dec),
			Symbols: []string{"dec", "--", "decrement"},
			Reduce:  Step(-1),
		},
	}
}
