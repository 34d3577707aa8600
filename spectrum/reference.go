package spectrum

import (
	"fmt"
	"math"
)

// Column names of the conventional reference-spectrum binary table.
const (
	ColumnWavelength = "WAVELENGTH"
	ColumnFlux       = "FLUX"
)

// Reference is a sampled solar spectrum.
//
// Wavelength is in Angstrom and Flux in erg s^-1 cm^-2 A^-1. Index i of both
// slices describes the same sample.
type Reference struct {
	Wavelength []float64
	Flux       []float64
}

// NewReference copies wavelength and flux into a new Reference.
// The slices must have equal length.
func NewReference(wavelength, flux []float64) (*Reference, error) {
	if len(wavelength) != len(flux) {
		return nil, fmt.Errorf("spectrum: wavelength/flux length mismatch: %d != %d", len(wavelength), len(flux))
	}
	r := &Reference{
		Wavelength: make([]float64, len(wavelength)),
		Flux:       make([]float64, len(flux)),
	}
	copy(r.Wavelength, wavelength)
	copy(r.Flux, flux)
	return r, nil
}

// Len returns the sample count.
func (r *Reference) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Wavelength)
}

// Clone returns a deep copy of r.
func (r *Reference) Clone() *Reference {
	if r == nil {
		return nil
	}
	return &Reference{
		Wavelength: append([]float64(nil), r.Wavelength...),
		Flux:       append([]float64(nil), r.Flux...),
	}
}

// InvalidSpectrumError reports a reference sample that cannot be used for a
// physical derivation.
type InvalidSpectrumError struct {
	Index  int
	Reason string
}

func (e *InvalidSpectrumError) Error() string {
	if e.Index < 0 {
		return "spectrum: invalid spectrum: " + e.Reason
	}
	return fmt.Sprintf("spectrum: invalid sample %d: %s", e.Index, e.Reason)
}

// Validate checks that r is non-empty, aligned, finite, and that its
// wavelengths are strictly positive and strictly increasing.
func (r *Reference) Validate() error {
	if r.Len() == 0 {
		return &InvalidSpectrumError{Index: -1, Reason: "no samples"}
	}
	if len(r.Wavelength) != len(r.Flux) {
		return &InvalidSpectrumError{
			Index:  -1,
			Reason: fmt.Sprintf("wavelength/flux length mismatch: %d != %d", len(r.Wavelength), len(r.Flux)),
		}
	}
	for i, w := range r.Wavelength {
		switch {
		case math.IsNaN(w) || math.IsInf(w, 0):
			return &InvalidSpectrumError{Index: i, Reason: fmt.Sprintf("non-finite wavelength %v", w)}
		case w <= 0:
			return &InvalidSpectrumError{Index: i, Reason: fmt.Sprintf("wavelength must be > 0: %v", w)}
		case i > 0 && !(w > r.Wavelength[i-1]):
			return &InvalidSpectrumError{Index: i, Reason: "wavelengths must be strictly increasing"}
		}
		if f := r.Flux[i]; math.IsNaN(f) || math.IsInf(f, 0) {
			return &InvalidSpectrumError{Index: i, Reason: fmt.Sprintf("non-finite flux %v", f)}
		}
	}
	return nil
}

// Range returns the first and last wavelength in Angstrom.
func (r *Reference) Range() (lo, hi float64) {
	if r.Len() == 0 {
		return math.NaN(), math.NaN()
	}
	return r.Wavelength[0], r.Wavelength[len(r.Wavelength)-1]
}
