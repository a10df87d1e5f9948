package core

import (
	"math"
	"testing"
)

func TestRMSEmpty(t *testing.T) {
	if got := RMS[float64](nil); got != 0 {
		t.Fatalf("RMS(nil) = %v, want 0", got)
	}
	if got := RMS([]float64{}); got != 0 {
		t.Fatalf("RMS([]) = %v, want 0", got)
	}
}

func TestRMSConstant(t *testing.T) {
	// RMS of a constant sequence equals its absolute value.
	for _, c := range []float64{0, 0.5, -0.5, 3, -7.25} {
		data := []float64{c, c, c, c, c}
		want := math.Abs(c)
		if got := RMS(data); !NearlyEqual(got, want, 1e-12) {
			t.Fatalf("RMS(const %v) = %v, want %v", c, got, want)
		}
	}
}

func TestRMSSine(t *testing.T) {
	// Full-scale sine has RMS 1/sqrt(2).
	data := make([]float64, 1024)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 8 * float64(i) / float64(len(data)))
	}

	want := 1 / math.Sqrt2
	if got := RMS(data); !NearlyEqual(got, want, 1e-3) {
		t.Fatalf("RMS(sine) = %v, want ~%v", got, want)
	}
}

func TestRMSChannelsEmpty(t *testing.T) {
	if got := RMSChannels[float64](nil); got != 0 {
		t.Fatalf("RMSChannels(nil) = %v, want 0", got)
	}
	if got := RMSChannels([][]float64{{}, {}}); got != 0 {
		t.Fatalf("RMSChannels([[],[]]) = %v, want 0", got)
	}
	if got := RMSChannels([][]float64{{0, 0}, {}}); got != 0 {
		t.Fatalf("RMSChannels([[0,0],[]]) = %v, want 0", got)
	}
}

func TestRMSChannelsOrdering(t *testing.T) {
	// Per-channel mean squares are 1 and 9; their average is 5 and the
	// combined RMS is sqrt(5). Averaging per-channel RMS values would give
	// (1+3)/2 = 2 instead, so this pins the order of operations.
	channels := [][]float64{{1, 1}, {3, 3}}

	got := RMSChannels(channels)
	want := math.Sqrt(5)
	if !NearlyEqual(got, want, 1e-12) {
		t.Fatalf("RMSChannels() = %v, want %v", got, want)
	}
	if NearlyEqual(got, 2, 1e-6) {
		t.Fatalf("RMSChannels() = %v, must differ from averaged RMS 2", got)
	}
}

func TestRMSChannelsSingle(t *testing.T) {
	// With one channel, the combined RMS equals the channel RMS.
	data := []float64{0.25, -1, 0.5, 2}
	got := RMSChannels([][]float64{data})
	if want := RMS(data); !NearlyEqual(got, want, 1e-12) {
		t.Fatalf("RMSChannels(single) = %v, want %v", got, want)
	}
}

func TestRMSFloat32(t *testing.T) {
	data := []float32{2, 2, 2}
	if got := RMS(data); got != 2 {
		t.Fatalf("RMS() = %v, want 2", got)
	}
}

func TestPeak(t *testing.T) {
	if got := Peak[float64](nil); got != 0 {
		t.Fatalf("Peak(nil) = %v, want 0", got)
	}

	data := []float64{0.1, -0.9, 0.5, 0.3}
	if got := Peak(data); got != 0.9 {
		t.Fatalf("Peak() = %v, want 0.9", got)
	}
}

func BenchmarkRMS(b *testing.B) {
	data := make([]float64, 4096)
	for i := range data {
		data[i] = math.Sin(float64(i) * 0.01)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = RMS(data)
	}
}
