package zodiacal

import "log/slog"

// Config defines the settings a Model is derived with.
type Config struct {
	Prescription Prescription
	// Validate rejects reference spectra with non-positive, non-finite or
	// non-increasing wavelengths instead of letting NaN propagate.
	Validate bool
	Logger   *slog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the standard prescription with validation off and a
// discarding logger.
func DefaultConfig() Config {
	return Config{
		Prescription: DefaultPrescription(),
		Logger:       slog.New(slog.DiscardHandler),
	}
}

// WithPrescription replaces the model constants. Prescriptions with a
// non-finite field or a non-positive normalisation or central wavelength
// are ignored.
func WithPrescription(p Prescription) Option {
	return func(cfg *Config) {
		if p.valid() {
			cfg.Prescription = p
		}
	}
}

// WithValidation enables reference spectrum validation.
func WithValidation() Option {
	return func(cfg *Config) {
		cfg.Validate = true
	}
}

// WithLogger sets the logger used for derivation diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
