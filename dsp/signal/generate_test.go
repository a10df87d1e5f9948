package signal

import (
	"math"
	"testing"
)

func TestSineLength(t *testing.T) {
	g := NewGenerator(WithSampleRate(48000))
	s, err := g.Sine(1000, 1, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
}

func TestSineInvalidLength(t *testing.T) {
	g := NewGenerator()
	if _, err := g.Sine(1000, 1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1 := NewGenerator(WithSeed(42))
	g2 := NewGenerator(WithSeed(42))

	n1, err := g1.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	n2, err := g2.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
	}
}

func TestWhiteNoiseSeeds(t *testing.T) {
	a, err := NewGenerator(WithSeed(99)).WhiteNoise(1, 8)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	b, err := NewGenerator(WithSeed(100)).WhiteNoise(1, 8)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to produce different noise")
	}
}

func TestImpulse(t *testing.T) {
	g := NewGenerator()
	out, err := g.Impulse(8)
	if err != nil {
		t.Fatalf("Impulse() error = %v", err)
	}
	for i, v := range out {
		want := 0.0
		if i == 0 {
			want = 1
		}
		if v != want {
			t.Fatalf("out[%d]=%v, want %v", i, v, want)
		}
	}
}

func TestQuadrature(t *testing.T) {
	g := NewGenerator(WithSampleRate(8))
	out, err := g.Quadrature(1, 1, 8)
	if err != nil {
		t.Fatalf("Quadrature() error = %v", err)
	}
	if len(out) != 16 {
		t.Fatalf("len = %d, want 16", len(out))
	}

	// One full cycle over eight samples: sample 2 sits at a quarter turn.
	if math.Abs(out[4]) > 1e-12 || math.Abs(out[5]-1) > 1e-12 {
		t.Fatalf("quarter turn = (%v, %v), want (0, 1)", out[4], out[5])
	}

	// Unit amplitude everywhere.
	for i := 0; i < 8; i++ {
		mag := math.Hypot(out[2*i], out[2*i+1])
		if math.Abs(mag-1) > 1e-12 {
			t.Fatalf("sample %d magnitude = %v, want 1", i, mag)
		}
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{-0.5, 1.0, -0.25}, 0.5)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out[1] != 0.5 {
		t.Fatalf("peak = %v, want 0.5", out[1])
	}
}

func TestNormalizeSilence(t *testing.T) {
	out, err := Normalize([]float64{0, 0, 0}, 1)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	for i, v := range out {
		if v != 0 {
			t.Fatalf("out[%d]=%v, want 0", i, v)
		}
	}
}
