package refspec

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/cwbudde/algo-zodi/spectrum"
)

const parquetBatch = 1024

// Parquet reads a reference spectrum from a Parquet file.
type Parquet struct {
	Path string
	opts options
}

// NewParquet returns a Parquet source for path.
func NewParquet(path string, opts ...Option) *Parquet {
	return &Parquet{Path: path, opts: applyOptions(opts)}
}

// Load implements Source.
func (s *Parquet) Load() (*spectrum.Reference, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, loadError(s.Path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, loadError(s.Path, err)
	}

	pf, err := parquet.OpenFile(f, info.Size())
	if err != nil {
		return nil, loadError(s.Path, err)
	}

	wave, flux, err := readParquet(pf, s.opts.wavelength, s.opts.flux)
	if err != nil {
		return nil, loadError(s.Path, err)
	}
	return finish(s.Path, wave, flux)
}

func readParquet(pf *parquet.File, waveCol, fluxCol string) (wave, flux []float64, err error) {
	waveLeaf, ok := pf.Schema().Lookup(waveCol)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrMissingColumn, waveCol)
	}
	fluxLeaf, ok := pf.Schema().Lookup(fluxCol)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrMissingColumn, fluxCol)
	}

	nrows := pf.NumRows()
	wave = make([]float64, 0, nrows)
	flux = make([]float64, 0, nrows)

	reader := parquet.NewReader(pf)
	defer reader.Close()

	rows := make([]parquet.Row, parquetBatch)
	for {
		n, err := reader.ReadRows(rows)
		for _, row := range rows[:n] {
			var (
				w, v       float64
				hasW, hasV bool
				verr       error
			)
			for _, value := range row {
				switch value.Column() {
				case waveLeaf.ColumnIndex:
					if w, verr = valueFloat(value); verr != nil {
						return nil, nil, fmt.Errorf("row %d %s: %w", len(wave), waveCol, verr)
					}
					hasW = true
				case fluxLeaf.ColumnIndex:
					if v, verr = valueFloat(value); verr != nil {
						return nil, nil, fmt.Errorf("row %d %s: %w", len(wave), fluxCol, verr)
					}
					hasV = true
				}
			}
			if !hasW {
				return nil, nil, fmt.Errorf("row %d %s: %w", len(wave), waveCol, ErrMissingValue)
			}
			if !hasV {
				return nil, nil, fmt.Errorf("row %d %s: %w", len(wave), fluxCol, ErrMissingValue)
			}
			wave = append(wave, w)
			flux = append(flux, v)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		if n == 0 {
			break
		}
	}
	return wave, flux, nil
}

func valueFloat(v parquet.Value) (float64, error) {
	if v.IsNull() {
		return 0, ErrMissingValue
	}
	switch v.Kind() {
	case parquet.Double:
		return v.Double(), nil
	case parquet.Float:
		return float64(v.Float()), nil
	case parquet.Int32:
		return float64(v.Int32()), nil
	case parquet.Int64:
		return float64(v.Int64()), nil
	default:
		return 0, fmt.Errorf("%w: parquet kind %v", ErrBadValue, v.Kind())
	}
}
