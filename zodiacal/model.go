package zodiacal

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-zodi/spectrum"
	"github.com/cwbudde/algo-zodi/spectrum/refspec"
	"github.com/cwbudde/algo-zodi/units"
)

var (
	// ErrNilSource is wrapped in a SpectrumLoadError when New is given a nil source.
	ErrNilSource = errors.New("zodiacal: nil reference source")
	// ErrOutOfRange is returned by At for wavelengths outside the sampled range.
	ErrOutOfRange = errors.New("zodiacal: wavelength outside sampled range")
)

// Model is a zodiacal light spectrum sampled at the reference wavelengths.
//
// Wavelengths are in micron, FluxDensity in W m^-2 um^-1 arcsec^-2 and
// PhotonFluxDensity in photon s^-1 m^-2 um^-1 arcsec^-2. Index i of all
// three describes the same sample.
type Model struct {
	prescription Prescription
	wavelengths  []float64
	sfd          []float64
	photonSFD    []float64
}

// New loads the reference solar spectrum from src and derives the model.
//
// Any failure to load is returned as a *refspec.SpectrumLoadError. With
// [WithValidation], a malformed spectrum is rejected with a
// *spectrum.InvalidSpectrumError.
func New(src refspec.Source, opts ...Option) (*Model, error) {
	if src == nil {
		return nil, &refspec.SpectrumLoadError{Source: "<nil>", Err: ErrNilSource}
	}
	ref, err := src.Load()
	if err != nil {
		var le *refspec.SpectrumLoadError
		if !errors.As(err, &le) {
			err = &refspec.SpectrumLoadError{Source: fmt.Sprintf("%T", src), Err: err}
		}
		return nil, err
	}
	switch {
	case ref.Len() == 0:
		return nil, &refspec.SpectrumLoadError{Source: fmt.Sprintf("%T", src), Err: refspec.ErrEmpty}
	case len(ref.Flux) != len(ref.Wavelength):
		return nil, &refspec.SpectrumLoadError{
			Source: fmt.Sprintf("%T", src),
			Err:    fmt.Errorf("%w: %d != %d", refspec.ErrLengthMismatch, len(ref.Wavelength), len(ref.Flux)),
		}
	}
	return derive(ref, ApplyOptions(opts...))
}

// Open derives a model from the reference table at path; the format is
// chosen by file extension, see refspec.Open.
func Open(path string, opts ...Option) (*Model, error) {
	src, err := refspec.Open(path)
	if err != nil {
		return nil, err
	}
	return New(src, opts...)
}

// FromReference derives a model from an in-memory reference spectrum.
// ref is copied.
func FromReference(ref *spectrum.Reference, opts ...Option) (*Model, error) {
	return New(refspec.FromReference(ref), opts...)
}

func derive(ref *spectrum.Reference, cfg Config) (*Model, error) {
	if cfg.Validate {
		if err := ref.Validate(); err != nil {
			return nil, err
		}
	}

	p := cfg.Prescription
	n := ref.Len()
	m := &Model{
		prescription: p,
		wavelengths:  make([]float64, n),
		sfd:          make([]float64, n),
		photonSFD:    make([]float64, n),
	}

	units.AngstromToMicron(m.wavelengths, ref.Wavelength)

	for i, w := range m.wavelengths {
		m.sfd[i] = p.Reddening(w)
	}
	vecmath.MulBlockInPlace(m.sfd, ref.Flux)
	vecmath.ScaleBlock(m.sfd, m.sfd, p.Normalisation()*units.SurfaceFluxCGSToSI)

	units.EnergyToPhotonFlux(m.photonSFD, m.sfd, m.wavelengths)

	cfg.Logger.Debug("zodiacal light spectrum derived",
		"samples", n,
		"lambda_min_um", m.wavelengths[0],
		"lambda_max_um", m.wavelengths[n-1],
		"normalisation", p.Normalisation(),
	)
	return m, nil
}

// Len returns the sample count.
func (m *Model) Len() int { return len(m.wavelengths) }

// Prescription returns the constants the model was derived with.
func (m *Model) Prescription() Prescription { return m.prescription }

// Wavelengths returns a copy of the sample wavelengths in micron.
func (m *Model) Wavelengths() []float64 { return clone(m.wavelengths) }

// FluxDensity returns a copy of the surface brightness energy flux density
// in W m^-2 um^-1 arcsec^-2.
func (m *Model) FluxDensity() []float64 { return clone(m.sfd) }

// PhotonFluxDensity returns a copy of the surface brightness photon flux
// density in photon s^-1 m^-2 um^-1 arcsec^-2.
func (m *Model) PhotonFluxDensity() []float64 { return clone(m.photonSFD) }

func clone(s []float64) []float64 {
	return append([]float64(nil), s...)
}

// At returns both flux densities at lambdaMicron by linear interpolation
// between samples.
func (m *Model) At(lambdaMicron float64) (sfd, photon float64, err error) {
	lo, hi := m.wavelengths[0], m.wavelengths[len(m.wavelengths)-1]
	if !(lambdaMicron >= lo && lambdaMicron <= hi) {
		return 0, 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfRange, lambdaMicron, lo, hi)
	}
	q := []float64{lambdaMicron}
	s, err := spectrum.InterpolateLinear(m.wavelengths, m.sfd, q)
	if err != nil {
		return 0, 0, err
	}
	p, err := spectrum.InterpolateLinear(m.wavelengths, m.photonSFD, q)
	if err != nil {
		return 0, 0, err
	}
	return s[0], p[0], nil
}

// Resample interpolates both flux densities onto gridMicron. Grid points
// outside the sampled range take the nearest end value.
func (m *Model) Resample(gridMicron []float64) (sfd, photon []float64, err error) {
	sfd, err = spectrum.InterpolateLinear(m.wavelengths, m.sfd, gridMicron)
	if err != nil {
		return nil, nil, err
	}
	photon, err = spectrum.InterpolateLinear(m.wavelengths, m.photonSFD, gridMicron)
	if err != nil {
		return nil, nil, err
	}
	return sfd, photon, nil
}

// BandIrradiance integrates FluxDensity over [loMicron, hiMicron], giving
// W m^-2 arcsec^-2. The band is clipped to the sampled range.
func (m *Model) BandIrradiance(loMicron, hiMicron float64) (float64, error) {
	return spectrum.IntegrateTrapezoid(m.wavelengths, m.sfd, loMicron, hiMicron)
}

// BandPhotonRate integrates PhotonFluxDensity over [loMicron, hiMicron],
// giving photon s^-1 m^-2 arcsec^-2. The band is clipped to the sampled
// range.
func (m *Model) BandPhotonRate(loMicron, hiMicron float64) (float64, error) {
	return spectrum.IntegrateTrapezoid(m.wavelengths, m.photonSFD, loMicron, hiMicron)
}
