package refspec

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-zodi/spectrum"
)

var (
	// ErrMissingColumn is returned when the wavelength or flux column is absent.
	ErrMissingColumn = errors.New("refspec: required column not found")
	// ErrMissingValue is returned when a row holds a null wavelength or flux.
	ErrMissingValue = errors.New("refspec: null value in required column")
	// ErrEmpty is returned when a table holds no samples.
	ErrEmpty = errors.New("refspec: table has no samples")
	// ErrLengthMismatch is returned when the wavelength and flux columns differ in length.
	ErrLengthMismatch = errors.New("refspec: wavelength/flux length mismatch")
	// ErrUnsupportedFormat is returned by Open for an unrecognised file extension.
	ErrUnsupportedFormat = errors.New("refspec: unsupported table format")
	// ErrNotTable is returned when the selected FITS HDU is missing or not a table.
	ErrNotTable = errors.New("refspec: HDU is not a table")
	// ErrBadValue is returned when a cell cannot be read as a number.
	ErrBadValue = errors.New("refspec: non-numeric value")
)

// Source yields a reference spectrum.
type Source interface {
	Load() (*spectrum.Reference, error)
}

// SpectrumLoadError reports that a reference spectrum could not be read or
// lacks the expected wavelength/flux fields.
type SpectrumLoadError struct {
	Source string
	Err    error
}

func (e *SpectrumLoadError) Error() string {
	return fmt.Sprintf("refspec: load %s: %v", e.Source, e.Err)
}

func (e *SpectrumLoadError) Unwrap() error { return e.Err }

func loadError(source string, err error) error {
	var le *SpectrumLoadError
	if errors.As(err, &le) {
		return err
	}
	return &SpectrumLoadError{Source: source, Err: err}
}

// Option configures a table source.
type Option func(*options)

type options struct {
	wavelength string
	flux       string
	hdu        int
}

func defaultOptions() options {
	return options{
		wavelength: spectrum.ColumnWavelength,
		flux:       spectrum.ColumnFlux,
		hdu:        1,
	}
}

// WithColumns overrides the wavelength and flux column names. Empty names
// are ignored.
func WithColumns(wavelength, flux string) Option {
	return func(o *options) {
		if wavelength != "" {
			o.wavelength = wavelength
		}
		if flux != "" {
			o.flux = flux
		}
	}
}

// WithHDU selects the FITS HDU holding the table. The primary HDU (0) never
// holds a binary table, so values < 1 are ignored.
func WithHDU(index int) Option {
	return func(o *options) {
		if index >= 1 {
			o.hdu = index
		}
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Open returns the Source matching the extension of path. A trailing ".gz"
// is accepted for text tables.
func Open(path string, opts ...Option) (Source, error) {
	name := strings.ToLower(filepath.Base(path))
	gz := strings.HasSuffix(name, ".gz")
	name = strings.TrimSuffix(name, ".gz")

	switch ext := filepath.Ext(name); ext {
	case ".fits", ".fit", ".fts":
		if !gz {
			return NewFITS(path, opts...), nil
		}
	case ".parquet":
		if !gz {
			return NewParquet(path, opts...), nil
		}
	case ".csv", ".txt", ".dat", ".tsv":
		return NewText(path, opts...), nil
	}
	return nil, loadError(path, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path)))
}

// Load is shorthand for Open followed by Source.Load.
func Load(path string, opts ...Option) (*spectrum.Reference, error) {
	src, err := Open(path, opts...)
	if err != nil {
		return nil, err
	}
	return src.Load()
}

func finish(source string, wave, flux []float64) (*spectrum.Reference, error) {
	if len(wave) != len(flux) {
		return nil, loadError(source, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(wave), len(flux)))
	}
	if len(wave) == 0 {
		return nil, loadError(source, ErrEmpty)
	}
	return &spectrum.Reference{Wavelength: wave, Flux: flux}, nil
}

// Memory is a Source over samples held by the caller. Load copies them.
type Memory struct {
	Wavelength []float64
	Flux       []float64
}

// FromReference wraps ref as a Source.
func FromReference(ref *spectrum.Reference) Memory {
	if ref == nil {
		return Memory{}
	}
	return Memory{Wavelength: ref.Wavelength, Flux: ref.Flux}
}

// Load implements Source.
func (m Memory) Load() (*spectrum.Reference, error) {
	wave := append([]float64(nil), m.Wavelength...)
	flux := append([]float64(nil), m.Flux...)
	return finish("memory", wave, flux)
}
