// Package refspec loads reference solar spectra from external tables.
//
// A table provides two aligned numeric columns, by convention named
// WAVELENGTH (Angstrom) and FLUX (erg s^-1 cm^-2 A^-1). Supported sources:
//
//   - [FITS]:    binary table extension of a FITS file (the format of the
//     CALSPEC/Castelli solar spectra)
//   - [Parquet]: columnar Parquet file
//   - [Text]:    comma or whitespace delimited text, optionally gzip
//     compressed
//   - [Memory]:  samples already held by the caller
//
// Every failure to produce a usable table is reported as a
// [*SpectrumLoadError]; use errors.Is with the package sentinels to
// distinguish causes.
package refspec
