// File: doc.go
// Title: Package Documentation for anglex
// Description: Package anglex provides circular statistics and angle
//              helpers for values that wrap around a ring.
// Author: msto63
// Version: v1.0.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v1.0.0: Initial implementation

// Package anglex provides circular statistics for angles, headings, hues and
// any other values that wrap at a fixed period.
//
// Averaging 350° and 10° arithmetically gives 180°, the opposite direction.
// CircularMean sums unit vectors instead and returns 0°. Midpoint finds the
// weighted point on the shorter arc between two values.
//
// Angles are in degrees at the API boundary unless a function says
// otherwise; trigonometry runs in radians internally. Functions ending in
// OnRing, and Midpoint with WithRange, work on any ring size.
//
// Weights
//
// CircularMean pads missing weights with 1 and ignores surplus weights.
// Midpoint weights are magnitudes: an endpoint with more weight travels
// further toward the other one, and the sign of a weight has no effect.
//
//	anglex.CircularMean([]float64{350, 10}, nil)     // 0
//	anglex.Midpoint(15, 355)                         // 365
//	anglex.MidpointWrapped(15, 355)                  // 5
//	anglex.Midpoint(0, 90, anglex.WithWeights(3, 1)) // 67.5
//
// Decoded Input
//
// CircularMeanOf accepts values straight from a YAML or JSON decoder. Input
// that is not a collection yields ErrNotCollection, while an empty
// collection is valid and yields 0.
package anglex
