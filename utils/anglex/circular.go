// File: circular.go
// Title: Circular Mean
// Description: Weighted mean of values on a ring computed by summing unit
//              vectors, so that 350 and 10 average to 0 instead of 180.
// Author: msto63
// Version: v1.0.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v1.0.0: Initial implementation

package anglex

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	mdwerrors "github.com/msto63/snacks/core/errors"
	"github.com/msto63/snacks/utils/mathx"
)

var (
	// ErrNotCollection is returned by CircularMeanOf for input that is not a slice or array
	ErrNotCollection = mdwerrors.NewErrorBuilder(mdwerrors.ModuleAnglex).
		Operation("mean").
		Message("input is not a collection").
		Build()

	// ErrInvalidElement is returned by CircularMeanOf for elements that are not finite numbers
	ErrInvalidElement = mdwerrors.NewErrorBuilder(mdwerrors.ModuleAnglex).
		Operation("mean").
		Code(mdwerrors.CodeAnglexInvalidElement).
		Message("collection element is not a finite number").
		Build()
)

// CircularMean returns the weighted mean of angles in degrees, in [0, 360).
// Missing weights count as 1 and surplus weights are ignored. An empty
// input returns 0; weights summing to zero give NaN.
func CircularMean(values, weights []float64) float64 {
	return CircularMeanOnRing(values, weights, FullTurnDegrees)
}

// CircularMeanOnRing is CircularMean for values on a ring of the given
// size, for example 24 for hours or 1 for hue fractions. A ring that is not
// a positive finite number falls back to 360.
func CircularMeanOnRing(values, weights []float64, ring float64) float64 {
	if len(values) == 0 {
		return 0
	}
	if !mathx.IsUsefulNumber(ring) || ring <= 0 {
		ring = FullTurnDegrees
	}

	aligned, total := mathx.AlignWeights(len(values), weights)
	xs := make([]float64, len(values))
	ys := make([]float64, len(values))
	for i, v := range values {
		xs[i], ys[i] = RadiansToPoint(v / ring * Tau)
	}

	meanX := floats.Dot(xs, aligned) / total
	meanY := floats.Dot(ys, aligned) / total

	mean := math.Atan2(meanY, meanX) / Tau * ring
	if mean < 0 {
		mean += ring
	}
	if mean >= ring {
		mean -= ring
	}
	return mean
}

// CircularMeanOf is CircularMean for decoded data. values must be a slice
// or array of numbers; weights may be nil. Anything that is not a
// collection returns ErrNotCollection, which is distinct from the empty
// collection whose mean is 0.
func CircularMeanOf(values, weights any) (float64, error) {
	return CircularMeanOfOnRing(values, weights, FullTurnDegrees)
}

// CircularMeanOfOnRing is CircularMeanOf on a ring of the given size
func CircularMeanOfOnRing(values, weights any, ring float64) (float64, error) {
	vs, err := toFloats(values, "values")
	if err != nil {
		return 0, err
	}

	var ws []float64
	if weights != nil {
		ws, err = toFloats(weights, "weights")
		if err != nil {
			return 0, err
		}
	}

	return CircularMeanOnRing(vs, ws, ring), nil
}

func toFloats(v any, argument string) ([]float64, error) {
	fs, bad, ok := mathx.ToFloats(v)
	if !ok {
		return nil, ErrNotCollection.Clone().
			WithDetail("argument", argument).
			WithDetail("type", fmt.Sprintf("%T", v))
	}
	if bad >= 0 {
		return nil, ErrInvalidElement.Clone().
			WithDetail("argument", argument).
			WithDetail("index", bad)
	}
	return fs, nil
}
