package refspec

import (
	"fmt"
	"os"

	"github.com/astrogo/fitsio"

	"github.com/cwbudde/algo-zodi/spectrum"
)

// FITS reads a reference spectrum from a binary table extension.
type FITS struct {
	Path string
	opts options
}

// NewFITS returns a FITS source for path. The table is read from HDU 1
// unless [WithHDU] says otherwise.
func NewFITS(path string, opts ...Option) *FITS {
	return &FITS{Path: path, opts: applyOptions(opts)}
}

// Load implements Source.
func (s *FITS) Load() (*spectrum.Reference, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, loadError(s.Path, err)
	}
	defer f.Close()

	file, err := fitsio.Open(f)
	if err != nil {
		return nil, loadError(s.Path, err)
	}
	defer file.Close()

	if s.opts.hdu >= len(file.HDUs()) {
		return nil, loadError(s.Path, fmt.Errorf("%w: HDU %d of %d", ErrNotTable, s.opts.hdu, len(file.HDUs())))
	}
	table, ok := file.HDU(s.opts.hdu).(*fitsio.Table)
	if !ok {
		return nil, loadError(s.Path, fmt.Errorf("%w: HDU %d", ErrNotTable, s.opts.hdu))
	}

	wave, flux, err := readTable(table, s.opts.wavelength, s.opts.flux)
	if err != nil {
		return nil, loadError(s.Path, err)
	}
	return finish(s.Path, wave, flux)
}

func readTable(table *fitsio.Table, waveCol, fluxCol string) (wave, flux []float64, err error) {
	for _, name := range []string{waveCol, fluxCol} {
		if table.Index(name) < 0 {
			return nil, nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	nrows := table.NumRows()
	rows, err := table.Read(0, nrows)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	wave = make([]float64, 0, nrows)
	flux = make([]float64, 0, nrows)
	for rows.Next() {
		row := map[string]interface{}{waveCol: nil, fluxCol: nil}
		if err := rows.Scan(&row); err != nil {
			return nil, nil, err
		}
		w, err := toFloat(row[waveCol])
		if err != nil {
			return nil, nil, fmt.Errorf("row %d %s: %w", len(wave), waveCol, err)
		}
		v, err := toFloat(row[fluxCol])
		if err != nil {
			return nil, nil, fmt.Errorf("row %d %s: %w", len(wave), fluxCol, err)
		}
		wave = append(wave, w)
		flux = append(flux, v)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return wave, flux, nil
}

func toFloat(v interface{}) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrBadValue, v)
	}
}
