// Package spectrum provides the sampled reference-spectrum type and the
// wavelength-domain helpers that operate on aligned (x, y) sample arrays.
//
// A [Reference] holds a solar spectrum as loaded from an external table:
// wavelengths in Angstrom and flux density in erg s^-1 cm^-2 A^-1. The
// package does not read files itself; see the refspec subpackage for
// sources.
//
// Helpers work on plain float64 slices so that any derived spectrum can be
// interpolated ([InterpolateLinear]) or integrated over a band
// ([IntegrateTrapezoid]) without conversion.
package spectrum
