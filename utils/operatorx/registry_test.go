// File: registry_test.go
// Title: Unit Tests for the Operator Registry
// Description: Tests symbol lookup, handle ownership, folding, the modulo
//              modes, the increment quirk, custom definitions and concurrent
//              readers.
// Author: msto63
// Version: v1.0.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v1.0.0: Initial test implementation

package operatorx

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/snacks/core/error"
	mdwerrors "github.com/msto63/snacks/core/errors"
)

func TestRegistry_BuiltinOrder(t *testing.T) {
	var keys []string
	for _, op := range Operators() {
		keys = append(keys, op.Key())
	}
	assert.Equal(t, []string{"add", "sub", "mul", "div", "mod", "exp", "inc", "dec"}, keys)
}

func TestLookup_Symbols(t *testing.T) {
	tests := []struct {
		name    string
		symbol  string
		wantKey string
		wantOK  bool
	}{
		{"plus", "+", "add", true},
		{"upper case key", "ADD", "add", true},
		{"mixed case alias", "Multiply", "mul", true},
		{"letter x", "x", "mul", true},
		{"upper letter x", "X", "mul", true},
		{"multiplication sign", "×", "mul", true},
		{"division sign", "÷", "div", true},
		{"percent", "%", "mod", true},
		{"remainder alias", "rem", "mod", true},
		{"double star", "**", "exp", true},
		{"caret", "^", "exp", true},
		{"double plus", "++", "inc", true},
		{"double minus", "--", "dec", true},
		{"unknown", "plus", "", false},
		{"empty", "", "", false},
		{"untrimmed", " +", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, ok := Lookup(Symbol(tt.symbol))
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.symbol, ok, tt.wantOK)
			}
			if ok && op.Key() != tt.wantKey {
				t.Errorf("Lookup(%q) = %s, want %s", tt.symbol, op.Key(), tt.wantKey)
			}
		})
	}
}

func TestLookup_Handles(t *testing.T) {
	op := MustLookup(Mul)

	got, ok := Lookup(op)
	require.True(t, ok)
	assert.Same(t, op, got)

	other := MustNewRegistry()
	_, ok = other.Lookup(op)
	assert.False(t, ok, "handle from another registry must not resolve")

	var nilOp *Operator
	_, ok = Lookup(nilOp)
	assert.False(t, ok)

	_, ok = Lookup(nil)
	assert.False(t, ok)
}

func TestMustLookup_Panics(t *testing.T) {
	assert.Panics(t, func() { MustLookup(Symbol("nope")) })
	assert.NotPanics(t, func() { MustLookup(Symbol("÷")) })
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		ref      Ref
		base     float64
		operands []float64
		want     float64
	}{
		{"add folds", Add, 10, []float64{5, 3}, 18},
		{"sub folds", Symbol("-"), 10, []float64{3, 2}, 5},
		{"mul folds", Symbol("x"), 2, []float64{3, 4}, 24},
		{"div folds", Symbol("/"), 100, []float64{5, 2}, 10},
		{"exp", Symbol("^"), 2, []float64{3}, 8},
		{"exp folds left", Exp, 2, []float64{3, 2}, 64},
		{"mod remainder", Mod, 10, []float64{3}, 1},
		{"mod sign follows dividend", Mod, -7, []float64{3}, -1},
		{"no operands", Add, 4, nil, 4},
		{"inc steps once", Inc, 5, []float64{1}, 6},
		{"inc ignores operand values", Inc, 5, []float64{100}, 6},
		{"inc ignores operand count", Symbol("++"), 5, []float64{1, 1, 1}, 6},
		{"inc without operands", Inc, 5, nil, 6},
		{"dec steps once", Symbol("decrement"), 5, []float64{7, 8}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.ref, tt.base, tt.operands...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply_UnknownOperator(t *testing.T) {
	got, err := Apply(Symbol("avg"), 10, 2)
	require.Error(t, err)
	assert.Equal(t, 0.0, got)
	assert.True(t, errors.Is(err, ErrNoOperation))
	assert.True(t, mdwerror.HasCode(err, mdwerrors.CodeOperatorxNoOperation))
	assert.Equal(t, "avg", mdwerrors.ExtractDetails(err)["ref"])
	assert.Equal(t, mdwerrors.ModuleOperatorx, mdwerrors.ExtractModule(err))

	// The sentinel itself is not decorated
	assert.NotContains(t, ErrNoOperation.Details(), "ref")

	_, err = MustNewRegistry().Apply(MustLookup(Add), 1, 1)
	assert.ErrorIs(t, err, ErrNoOperation)
}

func TestApply_IdentityProperty(t *testing.T) {
	values := []float64{-12.5, -1, 0, 0.25, 3, 1e6}

	for _, op := range Operators() {
		id, ok := op.Identity()
		if !ok {
			continue
		}
		for _, x := range values {
			switch op.Key() {
			case "add", "mul":
				// Two-sided identity
				got, err := Apply(op, id, x)
				require.NoError(t, err)
				assert.Equal(t, x, got, "%s(%v, %v)", op.Key(), id, x)
			}
			// Right identity holds for every identity-bearing operator
			got, err := Apply(op, x, id)
			require.NoError(t, err)
			assert.Equal(t, x, got, "%s(%v, %v)", op.Key(), x, id)
		}
	}
}

func TestOperator_Identity(t *testing.T) {
	tests := []struct {
		ref    Symbol
		want   float64
		wantOK bool
	}{
		{Add, 0, true},
		{Sub, 0, true},
		{Mul, 1, true},
		{Div, 1, true},
		{Mod, 0, false},
		{Exp, 0, false},
		{Inc, 0, false},
		{Dec, 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.ref), func(t *testing.T) {
			id, ok := MustLookup(tt.ref).Identity()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestOperator_SymbolsAreCopies(t *testing.T) {
	op := MustLookup(Add)
	symbols := op.Symbols()
	require.Equal(t, []string{"add", "+", "addition"}, symbols)

	symbols[0] = "hacked"
	assert.Equal(t, "add", op.Symbols()[0])
	_, ok := Lookup(Symbol("hacked"))
	assert.False(t, ok)
}

func TestModuloModes(t *testing.T) {
	remainder := MustNewRegistry()
	division := MustNewRegistry(WithModuloMode(ModuloDivision))

	assert.Equal(t, ModuloRemainder, DefaultModuloMode)
	assert.Equal(t, DefaultModuloMode, remainder.ModuloMode())
	assert.Equal(t, ModuloDivision, division.ModuloMode())

	got, err := remainder.Apply(Mod, 10, 4)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	got, err = division.Apply(Mod, 10, 4)
	require.NoError(t, err)
	assert.Equal(t, 2.5, got)

	// Other operators are unaffected by the mode
	got, err = division.Apply(Div, 10, 4)
	require.NoError(t, err)
	assert.Equal(t, 2.5, got)
}

func TestParseModuloMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ModuloMode
		wantErr bool
	}{
		{"", DefaultModuloMode, false},
		{"remainder", ModuloRemainder, false},
		{" Division ", ModuloDivision, false},
		{"rem", ModuloRemainder, false},
		{"div", ModuloDivision, false},
		{"floor", DefaultModuloMode, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseModuloMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "remainder", ModuloRemainder.String())
	assert.Equal(t, "division", ModuloDivision.String())
	assert.Equal(t, "unknown", ModuloMode(9).String())
}

func TestWithDefinitions_FirstRegisteredWins(t *testing.T) {
	percent := Definition{
		Key:     "pct",
		Symbols: []string{"%", "Percent"},
		Reduce: Fold(func(acc, operand float64) float64 {
			return acc * (1 + operand/100)
		}),
	}

	r, err := NewRegistry(WithDefinitions(percent))
	require.NoError(t, err)

	op, ok := r.Lookup(Symbol("%"))
	require.True(t, ok)
	assert.Equal(t, "mod", op.Key(), "built-in registered first keeps the symbol")

	op, ok = r.Lookup(Symbol("percent"))
	require.True(t, ok)
	assert.Equal(t, "pct", op.Key())
	assert.Equal(t, []string{"pct", "%", "percent"}, op.Symbols())

	got, err := r.Apply(Symbol("pct"), 200, 10)
	require.NoError(t, err)
	assert.InDelta(t, 220.0, got, 1e-9)

	expr, ok := r.Parse("percent 50")
	require.True(t, ok)
	assert.Equal(t, "pct", expr.Operator.Key())
	assert.Len(t, r.Operators(), 9)
}

func TestWithDefinitions_Invalid(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
		code mdwerror.Code
	}{
		{"duplicate key", Definition{Key: "ADD", Reduce: Step(2)}, mdwerrors.CodeOperatorxDuplicateKey},
		{"missing key", Definition{Key: " ", Reduce: Step(2)}, mdwerrors.CodeInvalidInput},
		{"missing reduce", Definition{Key: "twice"}, mdwerrors.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRegistry(WithDefinitions(tt.def))
			require.Error(t, err)
			assert.Nil(t, r)
			assert.True(t, mdwerror.HasCode(err, tt.code), "got code %s", mdwerror.GetCode(err))
		})
	}

	assert.Panics(t, func() {
		MustNewRegistry(WithDefinitions(Definition{Key: "mul", Reduce: Step(1)}))
	})
}

func TestRegistry_ConcurrentReaders(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan string, 64)

	for g := 0; g < 32; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if _, ok := Lookup(Symbol("×")); !ok {
					errs <- "lookup failed"
					return
				}
				if v := ApplyWithBase(float64(g), "+1"); v != float64(g+1) {
					errs <- "apply returned wrong value"
					return
				}
			}
		}(g)
	}

	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
}
