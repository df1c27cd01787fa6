// File: example_test.go
// Title: Example Tests for anglex Package Documentation
// Description: Executable examples for the circular mean and midpoint.
// Author: msto63
// Version: v1.0.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v1.0.0: Initial example implementation

package anglex_test

import (
	"errors"
	"fmt"

	"github.com/msto63/snacks/utils/anglex"
)

func ExampleCircularMean() {
	mean := anglex.CircularMean([]float64{350, 10}, nil)
	fmt.Printf("%.1f\n", mean)
	// Output:
	// 0.0
}

func ExampleMidpoint() {
	fmt.Printf("%.1f\n", anglex.Midpoint(15, 355))
	fmt.Printf("%.1f\n", anglex.MidpointWrapped(15, 355))
	fmt.Printf("%.1f\n", anglex.Midpoint(0, 90, anglex.WithWeights(3, 1)))
	// Output:
	// 365.0
	// 5.0
	// 67.5
}

func ExampleCircularMeanOf() {
	mean, err := anglex.CircularMeanOf([]any{90, 180}, nil)
	fmt.Printf("%.1f %v\n", mean, err)

	_, err = anglex.CircularMeanOf("90,180", nil)
	fmt.Println(errors.Is(err, anglex.ErrNotCollection))
	// Output:
	// 135.0 <nil>
	// true
}
