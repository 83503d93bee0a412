package app

import "errors"

// Config holds all the inputs of one configuration run.
type Config struct {
	OSName        string // raw operating system name
	FortranVendor string // Fortran compiler vendor identifier
	CVendor       string // C compiler vendor identifier
	BuildType     string // selected build-type name, accepted without validation
	BuildDir      string // build output directory, holds generated macro files
	SourceDir     string // directory scope for injected preprocessor definitions
	NAGColour     bool   // colorized NAG diagnostics switch
	ProfilesPath  string // optional HCL profile-override file

	Output    string
	LogFormat string
	LogLevel  string
}

// NewConfig validates the required fields of a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.OSName == "" {
		return nil, errors.New("OSName is a required configuration field and cannot be empty")
	}
	if cfg.FortranVendor == "" {
		return nil, errors.New("FortranVendor is a required configuration field and cannot be empty")
	}

	// Build type and vendor values are deliberately not validated here:
	// unrecognized names degrade to generic flags instead of erroring.

	return &cfg, nil
}
