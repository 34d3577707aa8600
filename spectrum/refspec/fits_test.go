package refspec

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/astrogo/fitsio"
)

func writeFITSTable(t *testing.T, path string, waveName, fluxName string, wave []float64, flux []float32) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	file, err := fitsio.Create(f)
	if err != nil {
		t.Fatalf("fitsio.Create: %v", err)
	}
	defer file.Close()

	phdu, err := fitsio.NewPrimaryHDU(nil)
	if err != nil {
		t.Fatalf("NewPrimaryHDU: %v", err)
	}
	if err := file.Write(phdu); err != nil {
		t.Fatalf("write primary: %v", err)
	}

	cols := []fitsio.Column{
		{Name: waveName, Format: "D"},
		{Name: fluxName, Format: "E"},
	}
	table, err := fitsio.NewTable("SUN", cols, fitsio.BINARY_TBL)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	defer table.Close()

	for i := range wave {
		w, v := wave[i], flux[i]
		if err := table.Write(&w, &v); err != nil {
			t.Fatalf("table write row %d: %v", i, err)
		}
	}
	if err := file.Write(table); err != nil {
		t.Fatalf("write table: %v", err)
	}
}

func TestFITSSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sun_castelli.fits")
	wave := []float64{3000, 5000, 10000}
	flux := []float32{90, 184.25, 50.5}
	writeFITSTable(t, path, "WAVELENGTH", "FLUX", wave, flux)

	ref, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if ref.Len() != len(wave) {
		t.Fatalf("Len()=%d want=%d", ref.Len(), len(wave))
	}
	for i := range wave {
		if ref.Wavelength[i] != wave[i] || ref.Flux[i] != float64(flux[i]) {
			t.Fatalf("row %d = (%v, %v), want (%v, %v)", i, ref.Wavelength[i], ref.Flux[i], wave[i], flux[i])
		}
	}
}

func TestFITSMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sun.fits")
	writeFITSTable(t, path, "LAMBDA", "FLUX", []float64{5000}, []float32{1})

	_, err := Load(path)
	requireLoadError(t, err, ErrMissingColumn)
}

func TestFITSMissingHDU(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sun.fits")
	writeFITSTable(t, path, "WAVELENGTH", "FLUX", []float64{5000}, []float32{1})

	_, err := Load(path, WithHDU(5))
	requireLoadError(t, err, ErrNotTable)
}

func TestFITSMissingFile(t *testing.T) {
	_, err := NewFITS(filepath.Join(t.TempDir(), "absent.fits")).Load()
	requireLoadError(t, err, os.ErrNotExist)
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		in   any
		want float64
	}{
		{float64(1.5), 1.5},
		{float32(2.5), 2.5},
		{int8(-3), -3},
		{int16(-300), -300},
		{int32(70000), 70000},
		{int64(-5), -5},
		{uint8(200), 200},
		{uint16(60000), 60000},
		{uint32(4000000000), 4000000000},
		{uint64(1 << 40), 1 << 40},
	}
	for _, tt := range tests {
		got, err := toFloat(tt.in)
		if err != nil {
			t.Fatalf("toFloat(%T) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("toFloat(%T(%v))=%v want=%v", tt.in, tt.in, got, tt.want)
		}
	}

	if _, err := toFloat("5000"); !errors.Is(err, ErrBadValue) {
		t.Fatalf("toFloat(string) error = %v, want %v", err, ErrBadValue)
	}
}
