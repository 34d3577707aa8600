// Package zodiacal models the spectrum of zodiacal light, the diffuse sky
// background of sunlight scattered by interplanetary dust.
//
// A [Model] is derived once from a reference solar spectrum following the
// normalisation of Leinert et al. (1998) with the revised parameters of
// Aldering (2001), as used by the HST exposure time calculator:
//
//	sfd(λ) = F_sun(λ) · (zl_nep / F_sun,V) · r(λ)
//
// where zl_nep is the north ecliptic pole surface brightness at 0.5 um and
// r(λ) is a logarithmic reddening term with separate blue and red slopes.
// The result is exposed in energy units (W m^-2 um^-1 arcsec^-2) and in
// photon units (photon s^-1 m^-2 um^-1 arcsec^-2), sampled at the reference
// wavelengths converted to micron.
//
// Models are immutable after construction and safe for concurrent reads.
package zodiacal
