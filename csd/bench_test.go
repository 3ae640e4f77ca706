package csd_test

import (
	"testing"

	"github.com/katalvlaran/csdigit/csd"
)

// benchmarkToCSD runs the fixed-places encoder with a given width.
func benchmarkToCSD(b *testing.B, value float64, places int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := csd.ToCSD(value, places); err != nil {
			b.Fatalf("ToCSD failed: %v", err)
		}
	}
}

// BenchmarkToCSD_Narrow benchmarks a typical 8-place coefficient encode.
func BenchmarkToCSD_Narrow(b *testing.B) {
	benchmarkToCSD(b, 28.5, 8)
}

// BenchmarkToCSD_Wide benchmarks a 53-place encode, the full float64
// mantissa width.
func BenchmarkToCSD_Wide(b *testing.B) {
	benchmarkToCSD(b, 12345.6789, 53)
}

// BenchmarkToCSDNNZ benchmarks the budgeted encoder at a tight budget.
func BenchmarkToCSDNNZ(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := csd.ToCSDNNZ(12345.6789, 4); err != nil {
			b.Fatalf("ToCSDNNZ failed: %v", err)
		}
	}
}

// BenchmarkToDecimal benchmarks decoding a 64-digit string.
func BenchmarkToDecimal(b *testing.B) {
	s, err := csd.ToCSD(12345.6789, 50)
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := csd.ToDecimal(s); err != nil {
			b.Fatalf("ToDecimal failed: %v", err)
		}
	}
}
