// Package units derives the fixed conversion factors used by the zodiacal
// light model and applies them to sample arrays.
//
// Every factor is computed from gonum unit values at package
// initialisation, so a dimensional mistake (for example dropping the
// per-wavelength term) panics at start-up instead of silently scaling the
// spectrum. Array conversions then reduce to plain scalar multiplies.
//
// Internal unit system:
//
//   - wavelength: micron (um) at the model boundary, Angstrom on input
//   - energy surface flux density: W m^-2 um^-1 arcsec^-2
//   - photon surface flux density: photon s^-1 m^-2 um^-1 arcsec^-2
//
// Photon counts are dimensionless in this scheme.
package units
