// File: example_test.go
// Title: Example Tests for mathx Package Documentation
// Description: Executable examples for the unitless helpers.
// Author: msto63
// Version: v1.0.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial example implementation
// - 2026-10-18 v1.0.0: Examples for the float64 helpers

package mathx_test

import (
	"fmt"

	"github.com/msto63/snacks/utils/mathx"
)

func ExampleParseFloatPrefix() {
	n, ok := mathx.ParseFloatPrefix("12.5%")
	fmt.Println(n, ok)
	_, ok = mathx.ParseFloatPrefix("n/a")
	fmt.Println(ok)
	// Output:
	// 12.5 true
	// false
}

func ExampleAverage() {
	fmt.Println(mathx.Average([]float64{2, 4}, nil))
	fmt.Println(mathx.Average([]float64{2, 4}, []float64{3}))
	// Output:
	// 3
	// 2.5
}

func ExampleRatioToQuotient() {
	q, err := mathx.RatioToQuotient("3:4")
	fmt.Println(q, err)
	// Output:
	// 0.75 <nil>
}

func ExampleMapRange() {
	fmt.Println(mathx.MapRange(5, 0, 10, 0, 100))
	// Output:
	// 50
}
