// File: sanity.go
// Title: Numeric Usefulness Checks and Lenient Parsing
// Description: The numeric validity contract shared by operatorx and anglex:
//              a number is useful when it is neither NaN nor infinite.
//              ParseFloatPrefix reads the longest numeric prefix of a string,
//              so "6px" yields 6 and "px6" yields nothing.
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
	"regexp"
	"strconv"
	"strings"
)

// floatPrefix matches a decimal number with optional sign, fraction and exponent
var floatPrefix = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?`)

// IsUsefulNumber reports whether n is a finite number (not NaN, not ±Inf)
func IsUsefulNumber(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// IsNotUsefulNumber is the negation of IsUsefulNumber
func IsNotUsefulNumber(n float64) bool {
	return !IsUsefulNumber(n)
}

// IsUsefulInteger reports whether n is finite and has no fractional part
func IsUsefulInteger(n float64) bool {
	return IsUsefulNumber(n) && n == math.Trunc(n)
}

// ParseFloatPrefix parses the longest decimal number at the start of s,
// after leading whitespace. Trailing text is ignored. The result is only
// reported when a prefix exists and the value is finite.
//
//	ParseFloatPrefix("  7.8kg") // 7.8, true
//	ParseFloatPrefix("1e3")     // 1000, true
//	ParseFloatPrefix("abc")     // 0, false
func ParseFloatPrefix(s string) (float64, bool) {
	match := floatPrefix.FindString(strings.TrimLeft(s, " \t\r\n\v\f"))
	if match == "" {
		return 0, false
	}

	n, err := strconv.ParseFloat(match, 64)
	if err != nil || !IsUsefulNumber(n) {
		return 0, false
	}
	return n, true
}
