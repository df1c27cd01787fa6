// File: angle.go
// Title: Angle Conversions and Planar Geometry
// Description: Degree and radian conversions, ring wrapping and small 2D
//              helpers used by the circular statistics.
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
)

const (
	// Pi is half a turn in radians
	Pi = math.Pi
	// Tau is a full turn in radians
	Tau = 2 * math.Pi
	// FullTurnDegrees is a full turn in degrees and the default ring
	FullTurnDegrees = 360.0
)

// DegreesToRadians converts degrees to radians
func DegreesToRadians(degrees float64) float64 {
	return degrees * Pi / 180
}

// RadiansToDegrees converts radians to degrees
func RadiansToDegrees(radians float64) float64 {
	return radians * 180 / Pi
}

// RadiansToPoint returns the point on the unit circle at the given angle
func RadiansToPoint(radians float64) (x, y float64) {
	return math.Cos(radians), math.Sin(radians)
}

// WrapToRange maps n onto [0, ring). Non-finite input yields NaN.
func WrapToRange(n, ring float64) float64 {
	m := math.Mod(n, ring)
	if m < 0 {
		m += ring
	}
	// A tiny negative remainder plus ring can round up to ring itself
	if m >= ring {
		m = 0
	}
	return m
}

// NormalizeAngle wraps an angle in radians onto [0, Tau)
func NormalizeAngle(radians float64) float64 {
	return WrapToRange(radians, Tau)
}

// NormalizeDegrees wraps an angle in degrees onto [0, 360)
func NormalizeDegrees(degrees float64) float64 {
	return WrapToRange(degrees, FullTurnDegrees)
}

// PolarToCartesian converts a radius and an angle in radians to x and y
func PolarToCartesian(radius, theta float64) (x, y float64) {
	return math.Cos(theta) * radius, math.Sin(theta) * radius
}

// RotateCartesian rotates the point (x, y) about the origin by radians
func RotateCartesian(x, y, radians float64) (float64, float64) {
	sin, cos := math.Sincos(radians)
	return cos*x - sin*y, sin*x + cos*y
}

// Distance2D returns the Euclidean distance between (x1, y1) and (x2, y2)
func Distance2D(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
