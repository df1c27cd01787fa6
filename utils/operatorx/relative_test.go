// File: relative_test.go
// Title: Unit Tests for Relative Value Resolution
// Description: Tests parsing of relative expressions, the dynamic entry
//              point and both apply entry points including their fallbacks.
// Author: msto63
// Version: v1.0.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v1.0.0: Initial test implementation

package operatorx

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantKey    string
		wantNumber float64
		wantSymbol string
		wantOK     bool
	}{
		{"plus", "+6", "add", 6, "+", true},
		{"minus decimal", "-7.8", "sub", 7.8, "-", true},
		{"star", "*9", "mul", 9, "*", true},
		{"double star is exponent", "**2", "exp", 2, "**", true},
		{"double minus is decrement", "--1", "dec", 1, "--", true},
		{"double plus is increment", "++3", "inc", 3, "++", true},
		{"padded", "  / 4 ", "div", 4, "/", true},
		{"letter x", "x3", "mul", 3, "x", true},
		{"upper case word", "MUL 3", "mul", 3, "mul", true},
		{"longest word wins", "multiply3", "mul", 3, "multiply", true},
		{"remainder over rem", "remainder 3", "mod", 3, "remainder", true},
		{"percent", "%5", "mod", 5, "%", true},
		{"caret fraction", "^0.5", "exp", 0.5, "^", true},
		{"division sign", "÷2", "div", 2, "÷", true},
		{"signed remainder", "+-5", "add", -5, "+", true},
		{"trailing unit", "+6px", "add", 6, "+", true},
		{"plain number", "12", "add", 12, "", true},
		{"plain number with unit", "6px", "add", 6, "", true},
		{"plain exponent notation", "1e3", "add", 1000, "", true},
		{"not a number", "not a number", "", 0, "", false},
		{"symbol without number", "++", "", 0, "", false},
		{"minus alone", "-", "", 0, "", false},
		{"symbol then text", "+abc", "", 0, "", false},
		{"overflow", "+1e999", "", 0, "", false},
		{"empty", "", "", 0, "", false},
		{"blank", "   ", "", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, ok := Parse(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if !ok {
				assert.Nil(t, expr.Operator)
				return
			}
			assert.Equal(t, tt.wantKey, expr.Operator.Key())
			assert.Equal(t, tt.wantNumber, expr.Number)
			assert.Equal(t, tt.wantSymbol, expr.Symbol)
		})
	}
}

func TestParseNumber(t *testing.T) {
	expr, ok := ParseNumber(5)
	require.True(t, ok)
	assert.Equal(t, "add", expr.Operator.Key())
	assert.Equal(t, 5.0, expr.Number)
	assert.Empty(t, expr.Symbol)

	for _, n := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, ok := ParseNumber(n)
		assert.False(t, ok, "ParseNumber(%v)", n)
	}
}

func TestParseValue(t *testing.T) {
	six, _ := Parse("*6")

	tests := []struct {
		name       string
		input      any
		wantKey    string
		wantNumber float64
		wantOK     bool
	}{
		{"string", "+6", "add", 6, true},
		{"int", 3, "add", 3, true},
		{"int64", int64(-4), "add", -4, true},
		{"uint8", uint8(7), "add", 7, true},
		{"float32", float32(1.5), "add", 1.5, true},
		{"float64", 2.25, "add", 2.25, true},
		{"json number", json.Number("2.5"), "add", 2.5, true},
		{"expression", six, "mul", 6, true},
		{"bad json number", json.Number("x"), "", 0, false},
		{"NaN", math.NaN(), "", 0, false},
		{"nil", nil, "", 0, false},
		{"bool", true, "", 0, false},
		{"slice", []float64{1}, "", 0, false},
		{"map", map[string]any{"op": "+"}, "", 0, false},
		{"zero expression", Expression{}, "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, ok := ParseValue(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantKey, expr.Operator.Key())
			assert.Equal(t, tt.wantNumber, expr.Number)
		})
	}
}

func TestApplyWithBase(t *testing.T) {
	tests := []struct {
		name string
		base float64
		rel  any
		want float64
	}{
		{"add", 10, "+6", 16},
		{"sub", 10, "-7.8", 2.2},
		{"mul", 10, "x3", 30},
		{"div", 10, "÷4", 2.5},
		{"exp", 2, "**3", 8},
		{"mod", 10, "%4", 2},
		{"inc ignores number", 10, "++5", 11},
		{"dec ignores number", 10, "--5", 9},
		{"plain number adds", 10, 4, 14},
		{"plain numeric string adds", 10, "4", 14},
		{"unparseable is no-op", 5, "not a number", 5},
		{"nil is no-op", 7, nil, 7},
		{"bool is no-op", 7, true, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ApplyWithBase(tt.base, tt.rel), 1e-12)
		})
	}
}

func TestApplyStandalone(t *testing.T) {
	tests := []struct {
		name string
		rel  any
		want float64
	}{
		{"multiplicative identity", "*9", 9},
		{"additive identity", "+6", 6},
		{"subtract from zero", "-6", -6},
		{"divide identity", "/4", 0.25},
		{"exponent without identity", "**2", 0},
		{"modulo without identity", "%3", 0},
		{"increment from zero", "++1", 1},
		{"decrement from zero", "--1", -1},
		{"plain number", 12, 12},
		{"garbage", "garbage", 0},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyStandalone(tt.rel))
		})
	}
}

func TestApplyWithBase_RegistryModuloMode(t *testing.T) {
	r := MustNewRegistry(WithModuloMode(ModuloDivision))
	assert.Equal(t, 2.5, r.ApplyWithBase(10, "%4"))
	assert.Equal(t, 2.0, ApplyWithBase(10, "%4"))
}

func TestExpression(t *testing.T) {
	expr, ok := Parse("+6")
	require.True(t, ok)
	assert.Equal(t, "add 6", expr.String())
	assert.Equal(t, 16.0, expr.Apply(10))
	assert.Equal(t, 6.0, expr.ApplyStandalone())

	expr, ok = Parse("/0.5")
	require.True(t, ok)
	assert.Equal(t, "div 0.5", expr.String())
	assert.Equal(t, 2.0, expr.ApplyStandalone())

	var zero Expression
	assert.Equal(t, 3.0, zero.Apply(3))
	assert.Equal(t, 0.0, zero.ApplyStandalone())
}
