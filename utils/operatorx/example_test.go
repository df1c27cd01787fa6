// File: example_test.go
// Title: Example Tests for operatorx Package Documentation
// Description: Executable examples for operator lookup, folding and
//              relative values.
// Author: msto63
// Version: v1.0.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v1.0.0: Initial example implementation

package operatorx_test

import (
	"errors"
	"fmt"

	"github.com/msto63/snacks/utils/operatorx"
)

func ExampleApply() {
	v, err := operatorx.Apply(operatorx.Symbol("×"), 2, 3, 4)
	fmt.Println(v, err)

	_, err = operatorx.Apply(operatorx.Symbol("avg"), 2, 3)
	fmt.Println(errors.Is(err, operatorx.ErrNoOperation))
	// Output:
	// 24 <nil>
	// true
}

func ExampleLookup() {
	op, ok := operatorx.Lookup(operatorx.Symbol("Multiply"))
	id, _ := op.Identity()
	fmt.Println(op.Key(), ok, id)
	// Output:
	// mul true 1
}

func ExampleParse() {
	expr, ok := operatorx.Parse("**2")
	fmt.Println(expr, ok)
	// Output:
	// exp 2 true
}

func ExampleApplyWithBase() {
	fmt.Println(operatorx.ApplyWithBase(10, "+6"))
	fmt.Println(operatorx.ApplyWithBase(5, "not a number"))
	// Output:
	// 16
	// 5
}

func ExampleApplyStandalone() {
	fmt.Println(operatorx.ApplyStandalone("*9"))
	fmt.Println(operatorx.ApplyStandalone("-3"))
	// Output:
	// 9
	// -3
}

func ExampleNewRegistry() {
	r := operatorx.MustNewRegistry(operatorx.WithModuloMode(operatorx.ModuloDivision))
	v, _ := r.Apply(operatorx.Mod, 10, 4)
	fmt.Println(v)
	// Output:
	// 2.5
}
