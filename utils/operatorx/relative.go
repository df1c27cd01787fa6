// File: relative.go
// Title: Relative Value Resolution
// Description: Parses relative expressions such as "+6", "-7.8" or "*9"
//              and applies them to a base value. Plain numbers are read as
//              additions to the base. Input that cannot be parsed falls back
//              to adding zero.
// Author: msto63
// Version: v1.0.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v1.0.0: Initial implementation

package operatorx

import (
	"strconv"
	"strings"

	"github.com/msto63/snacks/utils/mathx"
)

// Expression is a parsed relative value: apply Operator with Number to a base
type Expression struct {
	Operator *Operator
	Number   float64
	// Symbol is the registered symbol that matched, empty for plain numbers
	Symbol string
}

// Apply applies the expression to base. A zero Expression returns base.
func (e Expression) Apply(base float64) float64 {
	if e.Operator == nil {
		return base
	}
	return e.Operator.reduce(base, []float64{e.Number})
}

// ApplyStandalone applies the expression to the operator's identity, or to
// 0 when the operator has none.
func (e Expression) ApplyStandalone() float64 {
	if e.Operator == nil {
		return 0
	}
	return e.Apply(e.Operator.identity)
}

// String renders the expression as "<key> <number>"
func (e Expression) String() string {
	return e.Operator.String() + " " + strconv.FormatFloat(e.Number, 'g', -1, 64)
}

// Parse reads a relative expression. The longest symbol the trimmed input
// starts with selects the operator and the rest must begin with a finite
// number. Input without a symbol prefix is parsed as an absolute number,
// which becomes an addition.
//
//	Parse("+6")   // add 6
//	Parse("**2")  // exp 2
//	Parse("12")   // add 12
//	Parse("abc")  // not ok
func (r *Registry) Parse(s string) (Expression, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Expression{}, false
	}

	lower := strings.ToLower(trimmed)
	for _, entry := range r.prefixes {
		if !strings.HasPrefix(lower, entry.symbol) {
			continue
		}
		n, ok := mathx.ParseFloatPrefix(strings.TrimSpace(lower[len(entry.symbol):]))
		if !ok {
			return Expression{}, false
		}
		return Expression{Operator: entry.operator, Number: n, Symbol: entry.symbol}, true
	}

	n, ok := mathx.ParseFloatPrefix(trimmed)
	if !ok {
		return Expression{}, false
	}
	return Expression{Operator: r.byKey[string(Add)], Number: n}, true
}

// ParseNumber turns a finite number into an addition expression
func (r *Registry) ParseNumber(n float64) (Expression, bool) {
	if !mathx.IsUsefulNumber(n) {
		return Expression{}, false
	}
	return Expression{Operator: r.byKey[string(Add)], Number: n}, true
}

// ParseValue parses decoded data. Strings go through Parse and numeric
// kinds, including json.Number, through ParseNumber. Every other type,
// nil included, is rejected.
func (r *Registry) ParseValue(v any) (Expression, bool) {
	switch x := v.(type) {
	case string:
		return r.Parse(x)
	case Expression:
		return x, x.Operator != nil
	}

	n, ok := mathx.ToFloat(v)
	if !ok {
		return Expression{}, false
	}
	return r.ParseNumber(n)
}

// noop is the expression substituted for unparseable input
func (r *Registry) noop() Expression {
	return Expression{Operator: r.byKey[string(Add)]}
}

// ApplyWithBase applies the relative value rel to base. Unparseable rel
// leaves base unchanged.
func (r *Registry) ApplyWithBase(base float64, rel any) float64 {
	expr, ok := r.ParseValue(rel)
	if !ok {
		expr = r.noop()
	}
	return expr.Apply(base)
}

// ApplyStandalone applies rel without a base: the operator's identity is
// used, or 0 when it has none. Unparseable rel yields 0.
func (r *Registry) ApplyStandalone(rel any) float64 {
	expr, ok := r.ParseValue(rel)
	if !ok {
		expr = r.noop()
	}
	return expr.ApplyStandalone()
}

// Parse parses s with the default registry
func Parse(s string) (Expression, bool) {
	return defaultRegistry.Parse(s)
}

// ParseNumber wraps n as an addition with the default registry
func ParseNumber(n float64) (Expression, bool) {
	return defaultRegistry.ParseNumber(n)
}

// ParseValue parses decoded data with the default registry
func ParseValue(v any) (Expression, bool) {
	return defaultRegistry.ParseValue(v)
}

// ApplyWithBase applies rel to base with the default registry
func ApplyWithBase(base float64, rel any) float64 {
	return defaultRegistry.ApplyWithBase(base, rel)
}

// ApplyStandalone applies rel without a base with the default registry
func ApplyStandalone(rel any) float64 {
	return defaultRegistry.ApplyStandalone(rel)
}
