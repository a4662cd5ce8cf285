// Package detector picks the presentation for a run from the environment.
package detector

import (
	"os"
	"strings"

	"go.trai.ch/ecfg/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode represents the rendering mode for the application.
type OutputMode int

const (
	// ModeAuto picks ModeTUI or ModeLinear from the environment.
	ModeAuto OutputMode = iota
	// ModeTUI forces the interactive dashboard.
	ModeTUI
	// ModeLinear forces line-oriented output.
	ModeLinear
)

// Detect returns ModeLinear when stdout is not a terminal or CI is set.
func Detect(isTTY bool, getenv func(string) string) OutputMode {
	ci := strings.ToLower(getenv("CI"))
	if !isTTY || ci == "true" || ci == "1" {
		return ModeLinear
	}
	return ModeTUI
}

// DetectEnvironment runs Detect against the process stdout and environment.
func DetectEnvironment() OutputMode {
	return Detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv) //nolint:gosec // file descriptors fit in int
}

// ParseMode parses the value of the --output flag.
func ParseMode(s string) (OutputMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ModeAuto, nil
	case "tui":
		return ModeTUI, nil
	case "linear", "ci":
		return ModeLinear, nil
	default:
		return ModeAuto, zerr.With(zerr.Wrap(domain.ErrInvalidOutputMode, "unsupported output mode"), "mode", s)
	}
}

// ResolveMode applies the user's choice on top of the detected mode.
func ResolveMode(detected, requested OutputMode) OutputMode {
	if requested == ModeAuto {
		return detected
	}
	return requested
}
