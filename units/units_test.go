package units

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/unit"
)

func relErr(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}

func TestFixedFactors(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"micron per angstrom", MicronPerAngstrom, 1e-4},
		// erg->J 1e-7, cm^-2->m^-2 1e4, A^-1->um^-1 1e4
		{"cgs to si surface flux", SurfaceFluxCGSToSI, 10},
		{"hc", HC, 6.62607015e-34 * 299792458},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if relErr(tc.got, tc.want) > 1e-12 {
				t.Fatalf("%s = %g, want %g", tc.name, tc.got, tc.want)
			}
		})
	}
}

func TestFactorDimensionMismatch(t *testing.T) {
	_, err := Factor(unit.Length(1), unit.Time(1))
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("Factor() error = %v, want ErrDimensionMismatch", err)
	}
}

func TestFactorSameDimensions(t *testing.T) {
	f, err := Factor(unit.Length(1e-2), unit.Length(1))
	if err != nil {
		t.Fatalf("Factor() error = %v", err)
	}
	if relErr(f, 1e-2) > 1e-15 {
		t.Fatalf("Factor() = %g, want 0.01", f)
	}
}

func TestDex(t *testing.T) {
	if relErr(Dex(1), 10) > 1e-15 {
		t.Fatalf("Dex(1) = %g", Dex(1))
	}
	if relErr(Dex(-0.01), 0.977237220955810) > 1e-12 {
		t.Fatalf("Dex(-0.01) = %.15f", Dex(-0.01))
	}
}

func TestAngstromToMicron(t *testing.T) {
	src := []float64{2500, 5000, 10000}
	dst := make([]float64, len(src))
	AngstromToMicron(dst, src)

	want := []float64{0.25, 0.5, 1}
	for i := range want {
		if relErr(dst[i], want[i]) > 1e-12 {
			t.Fatalf("dst[%d] = %g, want %g", i, dst[i], want[i])
		}
	}
}

func TestPhotonEnergy(t *testing.T) {
	// ~2.48 eV at 0.5 um
	got := PhotonEnergy(0.5)
	want := 6.62607015e-34 * 299792458 / 0.5e-6
	if relErr(got, want) > 1e-12 {
		t.Fatalf("PhotonEnergy(0.5) = %g, want %g", got, want)
	}
}

func TestEnergyPhotonRoundTrip(t *testing.T) {
	lambda := []float64{0.2, 0.5, 0.8, 2.5}
	sfd := []float64{1e-17, 3e-17, 2e-17, 5e-18}

	photon := make([]float64, len(sfd))
	EnergyToPhotonFlux(photon, sfd, lambda)

	for i := range sfd {
		want := sfd[i] / PhotonEnergy(lambda[i])
		if relErr(photon[i], want) > 1e-12 {
			t.Fatalf("photon[%d] = %g, want %g", i, photon[i], want)
		}
	}

	back := make([]float64, len(sfd))
	PhotonToEnergyFlux(back, photon, lambda)
	for i := range sfd {
		if relErr(back[i], sfd[i]) > 1e-12 {
			t.Fatalf("back[%d] = %g, want %g", i, back[i], sfd[i])
		}
	}
}

func TestPhotonToEnergyFluxPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched lengths")
		}
	}()
	PhotonToEnergyFlux(make([]float64, 2), make([]float64, 1), make([]float64, 2))
}

func TestEnergyToPhotonFluxPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched lengths")
		}
	}()
	EnergyToPhotonFlux(make([]float64, 2), make([]float64, 2), make([]float64, 3))
}

func TestPhotonSurfaceFluxDimensions(t *testing.T) {
	want := unit.New(1/(micron*arcsec*arcsec), unit.Dimensions{
		unit.TimeDim:   -1,
		unit.LengthDim: -3,
		unit.AngleDim:  -2,
	})
	got := photonSurfaceFlux()
	if !unit.DimensionsMatch(got, want) {
		t.Fatalf("photonSurfaceFlux dimensions = %v, want %v", got.Dimensions(), want.Dimensions())
	}
	if relErr(got.Value(), want.Value()) > 1e-12 {
		t.Fatalf("photonSurfaceFlux value = %g, want %g", got.Value(), want.Value())
	}
}

func TestPhotonPerEnergyFactor(t *testing.T) {
	want := micron / (6.62607015e-34 * 299792458)
	if relErr(photonPerEnergy, want) > 1e-12 {
		t.Fatalf("photonPerEnergy = %g, want %g", photonPerEnergy, want)
	}
}
