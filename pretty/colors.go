package pretty

import (
	"os"
	"strings"
)

// ColorMode is the level of color support detected from the environment.
type ColorMode int

const (
	ColorModeNone ColorMode = iota
	ColorModeBasic
	ColorMode256
	ColorModeTrueColor
)

var (
	detectedColorMode ColorMode
	colorModeDetected bool
)

// DetectColorMode checks NO_COLOR, COLORTERM and TERM, in that order.
func DetectColorMode() ColorMode {
	if colorModeDetected {
		return detectedColorMode
	}
	colorModeDetected = true

	if os.Getenv("NO_COLOR") != "" {
		detectedColorMode = ColorModeNone
		return detectedColorMode
	}

	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		detectedColorMode = ColorModeTrueColor
		return detectedColorMode
	}

	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		detectedColorMode = ColorModeNone
		return detectedColorMode
	}
	if strings.Contains(term, "256color") {
		detectedColorMode = ColorMode256
		return detectedColorMode
	}
	detectedColorMode = ColorModeBasic
	return detectedColorMode
}

// StatusColor maps an outcome word to a terminal color, for event listings.
func StatusColor(status string) string {
	if Colorless || Disabled {
		return ""
	}
	switch strings.ToLower(status) {
	case "pending":
		return Grey
	case "running", "in-progress":
		return Cyan
	case "ok", "done", "success":
		return Green
	case "failed", "failure", "error":
		return Red
	case "skipped", "degraded":
		return Faint
	default:
		return ""
	}
}
