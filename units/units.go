package units

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/unit"
	"gonum.org/v1/gonum/unit/constant"
)

// ErrDimensionMismatch is returned when two quantities cannot be converted
// into one another.
var ErrDimensionMismatch = errors.New("units: dimension mismatch")

// Unit labels of the model outputs.
const (
	WavelengthUnit        = "um"
	FluxDensityUnit       = "W m-2 um-1 arcsec-2"
	PhotonFluxDensityUnit = "photon s-1 m-2 um-1 arcsec-2"
	ReferenceFluxUnit     = "erg s-1 cm-2 A-1"
)

// Base quantities, in SI.
const (
	angstrom = 1e-10
	micron   = 1e-6
	cm       = 1e-2
	erg      = 1e-7
	// arcsecond in radians
	arcsec = math.Pi / (180 * 3600)
)

var (
	// MicronPerAngstrom converts wavelengths from Angstrom to micron.
	MicronPerAngstrom = mustFactor(unit.Length(angstrom), unit.Length(micron))

	// SurfaceFluxCGSToSI converts erg s^-1 cm^-2 A^-1 arcsec^-2 to
	// W m^-2 um^-1 arcsec^-2.
	SurfaceFluxCGSToSI = mustFactor(cgsSurfaceFlux(), siSurfaceFlux())

	// HC is the product of the Planck constant and the speed of light in
	// J m.
	HC = mustHC()

	// photonPerEnergy multiplies sfd * lambda[um] into photon surface flux.
	photonPerEnergy = mustFactor(photonConversion(), photonSurfaceFlux())
)

// Factor returns the multiplier that converts a value expressed in from into
// the same value expressed in to.
func Factor(from, to unit.Uniter) (float64, error) {
	f, t := from.Unit(), to.Unit()
	if !unit.DimensionsMatch(f, t) {
		return 0, fmt.Errorf("%w: %v vs %v", ErrDimensionMismatch, f.Dimensions(), t.Dimensions())
	}
	return f.Value() / t.Value(), nil
}

func mustFactor(from, to unit.Uniter) float64 {
	f, err := Factor(from, to)
	if err != nil {
		panic(err)
	}
	return f
}

// cgsSurfaceFlux is 1 erg s^-1 cm^-2 A^-1 arcsec^-2.
func cgsSurfaceFlux() *unit.Unit {
	u := unit.Energy(erg).Unit()
	u.Div(unit.Time(1))
	u.Div(unit.Length(cm))
	u.Div(unit.Length(cm))
	u.Div(unit.Length(angstrom))
	u.Div(unit.Angle(arcsec))
	u.Div(unit.Angle(arcsec))
	return u
}

// siSurfaceFlux is 1 W m^-2 um^-1 arcsec^-2.
func siSurfaceFlux() *unit.Unit {
	u := unit.Power(1).Unit()
	u.Div(unit.Length(1))
	u.Div(unit.Length(1))
	u.Div(unit.Length(micron))
	u.Div(unit.Angle(arcsec))
	u.Div(unit.Angle(arcsec))
	return u
}

// photonSurfaceFlux is 1 photon s^-1 m^-2 um^-1 arcsec^-2.
func photonSurfaceFlux() *unit.Unit {
	u := unit.New(1, unit.Dimensions{})
	u.Div(unit.Time(1))
	u.Div(unit.Length(1))
	u.Div(unit.Length(1))
	u.Div(unit.Length(micron))
	u.Div(unit.Angle(arcsec))
	u.Div(unit.Angle(arcsec))
	return u
}

// photonConversion is (1 W m^-2 um^-1 arcsec^-2) * (1 um) / (h c).
func photonConversion() *unit.Unit {
	u := siSurfaceFlux()
	u.Mul(unit.Length(micron))
	u.Div(hc())
	return u
}

func hc() *unit.Unit {
	u := constant.Planck.Unit()
	u.Mul(constant.LightSpeedInVacuum)
	return u
}

func mustHC() float64 {
	// J m
	joule := unit.Energy(1).Unit()
	joule.Mul(unit.Length(1))
	return mustFactor(hc(), joule)
}

// Dex converts a logarithmic offset in dex to a linear factor, 10^dex.
func Dex(dex float64) float64 {
	return math.Pow(10, dex)
}

// AngstromToMicron writes src converted from Angstrom to micron into dst.
// Slices must have equal length.
func AngstromToMicron(dst, src []float64) {
	vecmath.ScaleBlock(dst, src, MicronPerAngstrom)
}

// PhotonEnergy returns the energy in J of a photon of wavelength
// lambdaMicron.
func PhotonEnergy(lambdaMicron float64) float64 {
	return HC / (lambdaMicron * micron)
}

// EnergyToPhotonFlux converts energy surface flux density (W m^-2 um^-1
// arcsec^-2) into photon surface flux density, dividing each sample by the
// photon energy at its own wavelength. All slices must have equal length and
// dst must not alias sfd. Panics if lengths differ.
func EnergyToPhotonFlux(dst, sfd, lambdaMicron []float64) {
	checkLengths(dst, sfd, lambdaMicron)
	vecmath.ScaleBlock(dst, lambdaMicron, photonPerEnergy)
	vecmath.MulBlockInPlace(dst, sfd)
}

// PhotonToEnergyFlux is the inverse of [EnergyToPhotonFlux].
// Slices must have equal length.
func PhotonToEnergyFlux(dst, photon, lambdaMicron []float64) {
	checkLengths(dst, photon, lambdaMicron)
	for i, p := range photon {
		dst[i] = p * PhotonEnergy(lambdaMicron[i])
	}
}

func checkLengths(dst, a, b []float64) {
	if len(dst) != len(a) || len(dst) != len(b) {
		panic("units: slice length mismatch")
	}
}
