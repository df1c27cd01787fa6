// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides the unitless numeric helpers the rest
//              of snacks builds on: usefulness checks, lenient parsing,
//              clamping, rounding, interpolation and weighted averages.
// Author: msto63
// Version: v1.0.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-18 v1.0.0: Replaced decimal and currency types with unitless float64 helpers

// Package mathx provides unitless numeric helpers for float64 values.
//
// Package: mathx
// Title: Unitless Numeric Helpers
// Description: Small, allocation-free functions over float64 that the
//              operator and angle packages share. The package defines what
//              a "useful" number is and how strings are read leniently.
// Author: msto63
// Version: v1.0.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Overview
//
// A number is useful when it is finite. NaN and ±Inf are rejected at every
// boundary where input enters snacks, so the arithmetic inside can assume
// finite operands.
//
// ParseFloatPrefix reads the longest decimal prefix of a string and ignores
// the rest. "12.5%" parses as 12.5 and "abc" does not parse at all.
//
// Function Groups
//
//   - Validity: IsUsefulNumber, IsNotUsefulNumber, IsUsefulInteger
//   - Parsing: ParseFloatPrefix, RatioToQuotient
//   - Conversion: ToFloat, ToFloats, IsCollection
//   - Shaping: Clamp, ClampMax, Round, Normalize, Normalize01
//   - Interpolation: Lerp, MapRange
//   - Aggregates: AlignWeights, Average
//   - Signs: CopySign, SignedPower
//   - Randomness: Random, RandomBetween, RandomInteger, RandomIntegerBetween
//
// Weights
//
// Functions that take an optional weight slice align it to the values:
// missing weights count as 1 and surplus weights are ignored. The weighted
// mean is delegated to gonum's stat.Mean.
//
// Usage Examples
//
//	mathx.Clamp(12, 0, 10)            // 10
//	mathx.Round(3.14159, 2)           // 3.14
//	mathx.MapRange(5, 0, 10, 0, 100)  // 50
//	mathx.Average([]float64{2, 4}, nil) // 3
//	q, _ := mathx.RatioToQuotient("16:9")
//
// Thread Safety
//
// All functions are pure except the Random family, which uses the
// goroutine-safe top-level generator of math/rand/v2.
package mathx
