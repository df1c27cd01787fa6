// File: unitless.go
// Title: Unitless Numeric Helpers
// Description: Clamping, rounding, normalizing, interpolation and range
//              mapping for plain float64 values, plus weighted averages.
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
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	mdwerrors "github.com/msto63/snacks/core/errors"
)

// Clamp limits n to [min, max]. If min > max the result is max.
func Clamp(n, min, max float64) float64 {
	return math.Min(math.Max(n, min), max)
}

// ClampMax limits n to [0, max]
func ClampMax(n, max float64) float64 {
	return Clamp(n, 0, max)
}

// Round rounds n to the given number of decimal places. Halves round
// toward positive infinity, so Round(-2.5, 0) is -2. Negative places round
// to tens, hundreds and so on.
func Round(n float64, places int) float64 {
	f := math.Pow(10, float64(places))
	return math.Floor(n*f+0.5) / f
}

// Normalize maps n from [min, max] onto [0, 1] without clamping
func Normalize(n, min, max float64) float64 {
	return (n - min) / (max - min)
}

// Normalize01 is Normalize clamped to [0, 1]
func Normalize01(n, min, max float64) float64 {
	return Clamp(Normalize(n, min, max), 0, 1)
}

// Lerp linearly interpolates between min and max; t = 0 gives min, t = 1 max
func Lerp(t, min, max float64) float64 {
	return min + (max-min)*t
}

// MapRange maps value from [min1, max1] onto [min2, max2] without clamping
func MapRange(value, min1, max1, min2, max2 float64) float64 {
	return min2 + (max2-min2)*((value-min1)/(max1-min1))
}

// AlignWeights returns a weight per value and their total. Missing weights
// are 1 and surplus weights are dropped. The input slice is not modified.
func AlignWeights(n int, weights []float64) ([]float64, float64) {
	aligned := make([]float64, n)
	for i := range aligned {
		if i < len(weights) {
			aligned[i] = weights[i]
		} else {
			aligned[i] = 1
		}
	}
	return aligned, floats.Sum(aligned)
}

// Average returns the weighted arithmetic mean of values. Weights follow
// AlignWeights. An empty input returns 0; a zero total weight gives NaN.
func Average(values, weights []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	aligned, _ := AlignWeights(len(values), weights)
	return stat.Mean(values, aligned)
}

// CopySign returns the magnitude of x with the sign of y. Unlike
// math.Copysign a zero y yields zero.
func CopySign(x, y float64) float64 {
	return math.Abs(x) * sign(y)
}

// SignedPower raises |x| to y and keeps the sign of x, so odd and even
// exponents both preserve the quadrant of the input.
func SignedPower(x, y float64) float64 {
	return CopySign(math.Pow(math.Abs(x), y), x)
}

func sign(n float64) float64 {
	switch {
	case math.IsNaN(n):
		return math.NaN()
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

// ratioSeparators are the symbols accepted between the two ratio terms
var ratioSeparators = strings.NewReplacer(
	":", ",", "᛬", ",", "/", ",", "÷", ",", "➗", ",",
	"✖️", ",", "x", ",", "×", ",", "✕", ",", "✖", ",",
)

// RatioToQuotient converts a two-term ratio such as "16:9", "4x3", "1/2"
// or "3 ÷ 4" into its quotient.
func RatioToQuotient(ratio string) (float64, error) {
	terms := strings.Split(ratioSeparators.Replace(strings.TrimSpace(ratio)), ",")
	if len(terms) != 2 {
		return 0, mdwerrors.InvalidFormat(mdwerrors.ModuleMathx, "ratio", ratio, "two numbers separated by :, /, ÷ or x")
	}

	numerator, ok := ParseFloatPrefix(terms[0])
	if !ok {
		return 0, mdwerrors.InvalidFormat(mdwerrors.ModuleMathx, "ratio", ratio, "numeric numerator")
	}
	denominator, ok := ParseFloatPrefix(terms[1])
	if !ok {
		return 0, mdwerrors.InvalidFormat(mdwerrors.ModuleMathx, "ratio", ratio, "numeric denominator")
	}
	if denominator == 0 {
		return 0, mdwerrors.InvalidInput(mdwerrors.ModuleMathx, "ratio", ratio, "non-zero denominator")
	}

	return numerator / denominator, nil
}
