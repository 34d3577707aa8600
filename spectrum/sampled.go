package spectrum

import (
	"fmt"
	"math"
	"sort"
)

func checkSamples(x, y []float64) error {
	if len(x) == 0 || len(y) == 0 {
		return fmt.Errorf("spectrum: requires non-empty x and y")
	}
	if len(x) != len(y) {
		return fmt.Errorf("spectrum: x/y length mismatch: %d != %d", len(x), len(y))
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return fmt.Errorf("spectrum: x must be strictly increasing at index %d", i)
		}
	}
	return nil
}

// valueAt evaluates the piecewise-linear curve through (x, y) at q, holding
// the end values outside the sampled range. x must already be validated.
func valueAt(x, y []float64, q float64) float64 {
	if q <= x[0] {
		return y[0]
	}
	if q >= x[len(x)-1] {
		return y[len(y)-1]
	}
	j := sort.SearchFloat64s(x, q)
	if x[j] == q {
		return y[j]
	}
	x0, x1 := x[j-1], x[j]
	t := (q - x0) / (x1 - x0)
	return y[j-1] + t*(y[j]-y[j-1])
}

// InterpolateLinear performs piecewise-linear interpolation at queryX.
//
// x must be strictly increasing and have the same length as y. Queries
// outside [x[0], x[len(x)-1]] take the nearest end value.
func InterpolateLinear(x, y, queryX []float64) ([]float64, error) {
	if err := checkSamples(x, y); err != nil {
		return nil, err
	}

	out := make([]float64, len(queryX))
	for i, q := range queryX {
		out[i] = valueAt(x, y, q)
	}
	return out, nil
}

// IntegrateTrapezoid integrates the piecewise-linear curve through (x, y)
// over [lo, hi] using the trapezoidal rule.
//
// The band is clipped to the sampled range; partial intervals at either
// edge are interpolated. It is an error for the clipped band to be empty.
func IntegrateTrapezoid(x, y []float64, lo, hi float64) (float64, error) {
	if err := checkSamples(x, y); err != nil {
		return 0, err
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || !(hi > lo) {
		return 0, fmt.Errorf("spectrum: integration band must satisfy lo < hi: [%g, %g]", lo, hi)
	}

	a := math.Max(lo, x[0])
	b := math.Min(hi, x[len(x)-1])
	if !(b > a) {
		return 0, fmt.Errorf("spectrum: band [%g, %g] outside sampled range [%g, %g]",
			lo, hi, x[0], x[len(x)-1])
	}

	i0 := sort.SearchFloat64s(x, a)
	i1 := sort.SearchFloat64s(x, b)

	px, py := a, valueAt(x, y, a)
	sum := 0.0
	for j := i0; j < i1; j++ {
		if x[j] <= a {
			continue
		}
		sum += 0.5 * (x[j] - px) * (y[j] + py)
		px, py = x[j], y[j]
	}
	sum += 0.5 * (b - px) * (valueAt(x, y, b) + py)
	return sum, nil
}
