// Package detector picks the log format for the current environment.
package detector

import (
	"os"
	"strings"

	"go.trai.ch/testbridge/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// LogFormat is the rendering mode for log output.
type LogFormat int

const (
	// FormatAuto defers to environment detection.
	FormatAuto LogFormat = iota
	// FormatPretty renders colored human-readable lines.
	FormatPretty
	// FormatJSON renders one JSON object per record.
	FormatJSON
)

// String returns the flag spelling of f.
func (f LogFormat) String() string {
	switch f {
	case FormatPretty:
		return "pretty"
	case FormatJSON:
		return "json"
	default:
		return "auto"
	}
}

// ParseLogFormat parses a --log-format value.
func ParseLogFormat(s string) (LogFormat, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "pretty":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, zerr.With(domain.ErrInvalidLogFormat, "log_format", s)
	}
}

// Detect chooses pretty output for an interactive terminal outside CI and JSON
// otherwise.
func Detect(isTTY bool, ci string) LogFormat {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return FormatJSON
	}
	return FormatPretty
}

// DetectEnvironment inspects stderr and the CI variable.
func DetectEnvironment() LogFormat {
	return Detect(term.IsTerminal(int(os.Stderr.Fd())), os.Getenv("CI")) //nolint:gosec // fd fits in int
}

// Resolve applies an explicit format over the detected one.
func Resolve(detected, requested LogFormat) LogFormat {
	if requested == FormatAuto {
		return detected
	}
	return requested
}
