package testutil

import (
	"math"
	"math/rand"
)

// LinearGrid returns n evenly spaced values from lo to hi inclusive.
func LinearGrid(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi
	return out
}

// Constant returns a slice of length n filled with value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// SolarLike returns a 5778 K blackbody sampled at waveAngstrom and scaled to
// 184.2 erg s^-1 cm^-2 A^-1 at 5000 A.
func SolarLike(waveAngstrom []float64) []float64 {
	const (
		// hc/k in A K
		c2    = 1.438776877e8
		tSun  = 5778
		vFlux = 184.2
	)
	planck := func(w float64) float64 {
		return 1 / (math.Pow(w, 5) * math.Expm1(c2/(w*tSun)))
	}
	scale := vFlux / planck(5000)

	out := make([]float64, len(waveAngstrom))
	for i, w := range waveAngstrom {
		out[i] = scale * planck(w)
	}
	return out
}

// DeterministicJitter returns values uniformly drawn from
// [1-amplitude, 1+amplitude] with a fixed seed, for multiplicative noise.
func DeterministicJitter(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = 1 + (rng.Float64()*2-1)*amplitude
	}
	return out
}
