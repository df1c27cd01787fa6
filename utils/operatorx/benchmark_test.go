// File: benchmark_test.go
// Title: Performance Benchmarks for operatorx
// Description: Benchmarks for lookup, parsing and relative application.
// Author: msto63
// Version: v1.0.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v1.0.0: Initial benchmark implementation

package operatorx

import (
	"testing"
)

func BenchmarkLookup(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Lookup(Symbol("multiply"))
	}
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Parse("exponentiation 2.5")
	}
}

func BenchmarkApplyWithBase(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = ApplyWithBase(10, "+6")
	}
}
