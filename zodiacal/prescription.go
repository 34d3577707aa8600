package zodiacal

import (
	"math"

	"github.com/cwbudde/algo-zodi/units"
)

// Prescription holds the empirical constants of the zodiacal light model.
type Prescription struct {
	// NEPBrightness is the north ecliptic pole surface brightness at
	// CentralWavelength, erg s^-1 cm^-2 A^-1 arcsec^-2.
	NEPBrightness float64
	// NEPOffsetDex scales NEPBrightness by 10^NEPOffsetDex.
	NEPOffsetDex float64
	// SolarNormalisation is the V band flux the reference solar spectrum
	// is normalised to, erg s^-1 cm^-2 A^-1.
	SolarNormalisation float64
	// CentralWavelength separates the blue and red reddening slopes, um.
	CentralWavelength float64
	BlueSlope         float64
	RedSlope          float64
}

// DefaultPrescription returns the Leinert et al. NEP brightness lowered by
// 0.01 dex, a solar spectrum normalised to 184.2 erg s^-1 cm^-2 A^-1, and
// the Aldering reddening slopes.
func DefaultPrescription() Prescription {
	return Prescription{
		NEPBrightness:      1.81e-18,
		NEPOffsetDex:       -0.01,
		SolarNormalisation: 184.2,
		CentralWavelength:  0.5,
		BlueSlope:          0.9,
		RedSlope:           0.48,
	}
}

// NEP returns the offset-adjusted NEP surface brightness in
// erg s^-1 cm^-2 A^-1 arcsec^-2.
func (p Prescription) NEP() float64 {
	return p.NEPBrightness * units.Dex(p.NEPOffsetDex)
}

// Normalisation returns zl_nep / solar_normalisation, in arcsec^-2.
func (p Prescription) Normalisation() float64 {
	return p.NEP() / p.SolarNormalisation
}

// Reddening returns the reddening factor at lambdaMicron.
//
// Below CentralWavelength the blue slope applies; at and above it the red
// slope applies. Non-positive wavelengths yield NaN or -Inf.
func (p Prescription) Reddening(lambdaMicron float64) float64 {
	x := math.Log(lambdaMicron / p.CentralWavelength)
	if lambdaMicron < p.CentralWavelength {
		return 1 + p.BlueSlope*x
	}
	return 1 + p.RedSlope*x
}

func (p Prescription) valid() bool {
	for _, v := range []float64{p.NEPBrightness, p.NEPOffsetDex, p.SolarNormalisation,
		p.CentralWavelength, p.BlueSlope, p.RedSlope} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return p.SolarNormalisation > 0 && p.CentralWavelength > 0
}
