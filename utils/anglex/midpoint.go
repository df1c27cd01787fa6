// File: midpoint.go
// Title: Shortest-Arc Midpoint
// Description: Weighted point between two values on a ring, measured along
//              the shorter of the two arcs that connect them.
// Author: msto63
// Version: v1.0.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v1.0.0: Initial implementation

package anglex

import (
	"math"

	"github.com/msto63/snacks/utils/mathx"
)

type midpointOptions struct {
	weightA float64
	weightB float64
	ring    float64
}

// MidpointOption configures Midpoint
type MidpointOption func(*midpointOptions)

// WithWeights sets the weights of a and b. Only magnitudes are used; a
// non-finite weight counts as 1.
func WithWeights(weightA, weightB float64) MidpointOption {
	return func(o *midpointOptions) {
		o.weightA = weightA
		o.weightB = weightB
	}
}

// WithRange sets the ring size. The default is 360; a ring that is not a
// positive finite number falls back to it.
func WithRange(ring float64) MidpointOption {
	return func(o *midpointOptions) {
		o.ring = ring
	}
}

// Midpoint returns the weighted point between a and b along the shorter
// arc of the ring. Both inputs are wrapped first. When the short arc crosses
// the wrap boundary the result lies beyond the ring, so 15 and 355 on a
// 360 ring give 365; use MidpointWrapped for the canonical form.
//
// The position is interpolated from the smaller endpoint of the arc toward
// the larger one by |wSmaller| / (|wSmaller| + |wLarger|). Weight signs are
// ignored. Two zero weights give the plain midpoint.
func Midpoint(a, b float64, opts ...MidpointOption) float64 {
	o := midpointOptions{weightA: 1, weightB: 1, ring: FullTurnDegrees}
	for _, opt := range opts {
		opt(&o)
	}

	if mathx.IsNotUsefulNumber(o.weightA) {
		o.weightA = 1
	}
	if mathx.IsNotUsefulNumber(o.weightB) {
		o.weightB = 1
	}
	if mathx.IsNotUsefulNumber(o.ring) || o.ring <= 0 {
		o.ring = FullTurnDegrees
	}

	smaller, smallerW := WrapToRange(a, o.ring), math.Abs(o.weightA)
	larger, largerW := WrapToRange(b, o.ring), math.Abs(o.weightB)
	if larger < smaller {
		smaller, larger = larger, smaller
		smallerW, largerW = largerW, smallerW
	}

	// Walk the other way around so the arc never exceeds half the ring
	if larger-smaller > o.ring/2 {
		smaller, larger = larger, smaller+o.ring
		smallerW, largerW = largerW, smallerW
	}

	fraction := 0.5
	if total := smallerW + largerW; total > 0 {
		fraction = smallerW / total
	}
	return mathx.Lerp(fraction, smaller, larger)
}

// MidpointWrapped is Midpoint wrapped back onto the ring
func MidpointWrapped(a, b float64, opts ...MidpointOption) float64 {
	o := midpointOptions{ring: FullTurnDegrees}
	for _, opt := range opts {
		opt(&o)
	}
	if mathx.IsNotUsefulNumber(o.ring) || o.ring <= 0 {
		o.ring = FullTurnDegrees
	}
	return WrapToRange(Midpoint(a, b, opts...), o.ring)
}
