package testutil

import (
	"math"
	"testing"
)

func TestLinearGrid(t *testing.T) {
	g := LinearGrid(1000, 2000, 5)
	want := []float64{1000, 1250, 1500, 1750, 2000}
	RequireSliceNearlyEqual(t, g, want, 1e-9)

	if one := LinearGrid(3, 9, 1); len(one) != 1 || one[0] != 3 {
		t.Fatalf("LinearGrid n=1 = %v", one)
	}
}

func TestConstant(t *testing.T) {
	c := Constant(184.2, 3)
	RequireSliceNearlyEqual(t, c, []float64{184.2, 184.2, 184.2}, 0)
}

func TestSolarLikeNormalised(t *testing.T) {
	f := SolarLike([]float64{5000})
	if math.Abs(f[0]-184.2) > 1e-9 {
		t.Fatalf("SolarLike(5000) = %v, want 184.2", f[0])
	}
}

func TestSolarLikePeak(t *testing.T) {
	// Wien peak of a 5778 K blackbody lies near 5015 A.
	w := LinearGrid(3000, 9000, 61)
	f := SolarLike(w)
	RequireFinite(t, f)

	peak := 0
	for i := range f {
		if f[i] > f[peak] {
			peak = i
		}
	}
	if w[peak] < 4700 || w[peak] > 5300 {
		t.Fatalf("peak at %v A, want near 5015 A", w[peak])
	}
}

func TestDeterministicJitter(t *testing.T) {
	a := DeterministicJitter(42, 0.1, 64)
	b := DeterministicJitter(42, 0.1, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("jitter not deterministic at index %d", i)
		}
		if a[i] < 0.9 || a[i] > 1.1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}
