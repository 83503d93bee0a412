package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/fortcfg/internal/app"
	"github.com/vk/fortcfg/internal/render"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("fortcfg", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
fortcfg - Resolves compiler flags and preprocessor macros for one build configuration run.

Usage:
  fortcfg -os OS_NAME -fc FORTRAN_VENDOR [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	osFlag := flagSet.String("os", "", "Operating system name (required).")
	fcFlag := flagSet.String("fc", "", "Fortran compiler vendor identifier, e.g. NAG, GNU, XL, Intel (required).")
	ccFlag := flagSet.String("cc", "", "C compiler vendor identifier. Unrecognized vendors yield generic flags only.")
	buildTypeFlag := flagSet.String("build-type", "None", "Selected build type. Unrecognized names are accepted without validation.")
	buildDirFlag := flagSet.String("build-dir", ".", "Build output directory holding externally generated macro files.")
	sourceDirFlag := flagSet.String("source-dir", ".", "Directory scope for injected preprocessor definitions.")
	nagColourFlag := flagSet.Bool("nag-colour", false, "Enable colorized NAG diagnostic output.")
	profilesFlag := flagSet.String("profiles", "", "Path to an optional HCL profile-override file.")
	outputFlag := flagSet.String("output", "text", "Output format for the resolved snapshot. Options: 'text', 'json' or 'yaml'.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if *osFlag == "" && *fcFlag == "" {
		slog.Debug("No toolchain identity provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	outputFormat := strings.ToLower(*outputFlag)
	if !render.Format(outputFormat).Valid() {
		return nil, false, &ExitError{Code: 2, Message: "invalid output: must be 'text', 'json' or 'yaml'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		OSName:        *osFlag,
		FortranVendor: *fcFlag,
		CVendor:       *ccFlag,
		BuildType:     *buildTypeFlag,
		BuildDir:      *buildDirFlag,
		SourceDir:     *sourceDirFlag,
		NAGColour:     *nagColourFlag,
		ProfilesPath:  *profilesFlag,
		Output:        outputFormat,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
