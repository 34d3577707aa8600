package zodiacal

import (
	"log/slog"
	"testing"
)

func TestApplyOptions(t *testing.T) {
	p := DefaultPrescription()
	p.RedSlope = 0.5
	logger := slog.New(slog.DiscardHandler)

	cfg := ApplyOptions(WithPrescription(p), WithValidation(), WithLogger(logger))
	if cfg.Prescription != p {
		t.Fatalf("prescription = %+v, want %+v", cfg.Prescription, p)
	}
	if !cfg.Validate {
		t.Fatal("validation not enabled")
	}
	if cfg.Logger != logger {
		t.Fatal("logger not applied")
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	bad := DefaultPrescription()
	bad.CentralWavelength = 0

	cfg := ApplyOptions(WithPrescription(bad), WithLogger(nil), nil)
	def := DefaultConfig()
	if cfg.Prescription != def.Prescription || cfg.Validate != def.Validate {
		t.Fatalf("cfg = %#v, want defaults", cfg)
	}
	if cfg.Logger == nil {
		t.Fatal("nil logger replaced the default")
	}
}
