package refspec

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/cwbudde/algo-zodi/spectrum"
)

const readBufferSize = 64 * 1024

// Text reads a reference spectrum from a delimited text table.
//
// Fields are separated by commas or, when a line has no comma, by
// whitespace. Blank lines and lines starting with '#' are skipped. An
// optional header line names the columns (matched case-insensitively);
// without one the first two columns are wavelength and flux. Paths ending
// in ".gz" are decompressed on the fly.
type Text struct {
	Path string
	opts options
}

// NewText returns a Text source for path.
func NewText(path string, opts ...Option) *Text {
	return &Text{Path: path, opts: applyOptions(opts)}
}

// Load implements Source.
func (s *Text) Load() (*spectrum.Reference, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, loadError(s.Path, err)
	}
	defer f.Close()

	var r io.Reader = bufio.NewReaderSize(f, readBufferSize)
	if strings.HasSuffix(strings.ToLower(s.Path), ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, loadError(s.Path, err)
		}
		defer gz.Close()
		r = gz
	}

	wave, flux, err := parseText(r, s.opts)
	if err != nil {
		return nil, loadError(s.Path, err)
	}
	return finish(s.Path, wave, flux)
}

// ReadText parses a text table from r; name identifies r in errors.
func ReadText(r io.Reader, name string, opts ...Option) (*spectrum.Reference, error) {
	wave, flux, err := parseText(r, applyOptions(opts))
	if err != nil {
		return nil, loadError(name, err)
	}
	return finish(name, wave, flux)
}

func splitFields(line string) []string {
	if !strings.Contains(line, ",") {
		return strings.Fields(line)
	}
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

func isNumericRow(fields []string) bool {
	for _, f := range fields {
		if _, err := strconv.ParseFloat(f, 64); err != nil {
			return false
		}
	}
	return true
}

func parseText(r io.Reader, o options) (wave, flux []float64, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, readBufferSize), 1024*1024)

	wi, fi := -1, -1
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := splitFields(line)

		if wi < 0 {
			if isNumericRow(fields) {
				wi, fi = 0, 1
			} else {
				wi, fi = headerIndex(fields, o.wavelength), headerIndex(fields, o.flux)
				if wi < 0 {
					return nil, nil, fmt.Errorf("%w: %s", ErrMissingColumn, o.wavelength)
				}
				if fi < 0 {
					return nil, nil, fmt.Errorf("%w: %s", ErrMissingColumn, o.flux)
				}
				continue
			}
		}

		if wi >= len(fields) || fi >= len(fields) {
			return nil, nil, fmt.Errorf("line %d: %w: want at least %d fields, got %d",
				lineNo, ErrMissingColumn, max(wi, fi)+1, len(fields))
		}
		w, err := strconv.ParseFloat(fields[wi], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrBadValue, fields[wi])
		}
		v, err := strconv.ParseFloat(fields[fi], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrBadValue, fields[fi])
		}
		wave = append(wave, w)
		flux = append(flux, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return wave, flux, nil
}

func headerIndex(fields []string, name string) int {
	for i, f := range fields {
		if strings.EqualFold(f, name) {
			return i
		}
	}
	return -1
}
