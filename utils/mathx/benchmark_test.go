// File: benchmark_test.go
// Title: Performance Benchmarks for mathx Functions
// Description: Benchmarks for the parsing and aggregate helpers.
// Author: msto63
// Version: v1.0.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial benchmark implementation
// - 2026-10-18 v1.0.0: Benchmarks for the float64 helpers

package mathx

import (
	"testing"
)

func BenchmarkParseFloatPrefix(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseFloatPrefix("123.456px")
	}
}

func BenchmarkAverage(b *testing.B) {
	values := make([]float64, 256)
	for i := range values {
		values[i] = float64(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Average(values, nil)
	}
}

func BenchmarkRatioToQuotient(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = RatioToQuotient("16:9")
	}
}
