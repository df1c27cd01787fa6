// File: random.go
// Title: Random Number Helpers
// Description: Uniform random floats and integers in half-open ranges.
// Author: msto63
// Version: v1.0.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v1.0.0: Initial implementation

package mathx

import (
	"math"
	"math/rand"
)

// Random returns a float in [0, n)
func Random(n float64) float64 {
	return rand.Float64() * n
}

// RandomBetween returns a float in [min(a, b), max(a, b)). Equal bounds
// return that bound.
func RandomBetween(a, b float64) float64 {
	lo, hi := math.Min(a, b), math.Max(a, b)
	return rand.Float64()*(hi-lo) + lo
}

// RandomInteger returns an integer-valued float in [0, n)
func RandomInteger(n float64) float64 {
	return math.Floor(Random(n))
}

// RandomIntegerBetween returns floor(RandomBetween(a, b))
func RandomIntegerBetween(a, b float64) float64 {
	return math.Floor(RandomBetween(a, b))
}
