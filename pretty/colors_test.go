package pretty

import (
	"os"
	"testing"
)

func TestDetectColorMode(t *testing.T) {
	origNoColor := os.Getenv("NO_COLOR")
	origColorterm := os.Getenv("COLORTERM")
	origTerm := os.Getenv("TERM")
	defer func() {
		os.Setenv("NO_COLOR", origNoColor)
		os.Setenv("COLORTERM", origColorterm)
		os.Setenv("TERM", origTerm)
		colorModeDetected = false
	}()

	tests := []struct {
		name      string
		noColor   string
		colorterm string
		term      string
		expected  ColorMode
	}{
		{
			name:     "NO_COLOR set disables colors",
			noColor:  "1",
			expected: ColorModeNone,
		},
		{
			name:      "COLORTERM=truecolor enables TrueColor",
			colorterm: "truecolor",
			term:      "xterm-256color",
			expected:  ColorModeTrueColor,
		},
		{
			name:      "COLORTERM=24bit enables TrueColor",
			colorterm: "24bit",
			term:      "xterm-256color",
			expected:  ColorModeTrueColor,
		},
		{
			name:     "TERM=xterm-256color enables 256 colors",
			term:     "xterm-256color",
			expected: ColorMode256,
		},
		{
			name:     "TERM=dumb disables colors",
			term:     "dumb",
			expected: ColorModeNone,
		},
		{
			name:     "Empty TERM disables colors",
			term:     "",
			expected: ColorModeNone,
		},
		{
			name:     "TERM=xterm enables basic colors",
			term:     "xterm",
			expected: ColorModeBasic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colorModeDetected = false

			if tt.noColor != "" {
				os.Setenv("NO_COLOR", tt.noColor)
			} else {
				os.Unsetenv("NO_COLOR")
			}
			if tt.colorterm != "" {
				os.Setenv("COLORTERM", tt.colorterm)
			} else {
				os.Unsetenv("COLORTERM")
			}
			if tt.term != "" {
				os.Setenv("TERM", tt.term)
			} else {
				os.Unsetenv("TERM")
			}

			result := DetectColorMode()
			if result != tt.expected {
				t.Errorf("DetectColorMode() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestDetectColorModeIsCached(t *testing.T) {
	origTerm := os.Getenv("TERM")
	defer func() {
		os.Setenv("TERM", origTerm)
		colorModeDetected = false
	}()

	colorModeDetected = false
	os.Unsetenv("NO_COLOR")
	os.Unsetenv("COLORTERM")
	os.Setenv("TERM", "xterm")
	first := DetectColorMode()

	os.Setenv("TERM", "dumb")
	second := DetectColorMode()
	if first != second {
		t.Errorf("DetectColorMode() changed between calls: %v then %v", first, second)
	}
}

func TestStatusColor(t *testing.T) {
	origColorless := Colorless
	origDisabled := Disabled
	defer func() {
		Colorless = origColorless
		Disabled = origDisabled
	}()

	Colorless = false
	Disabled = false

	tests := []struct {
		status   string
		expected string
	}{
		{"pending", Grey},
		{"running", Cyan},
		{"in-progress", Cyan},
		{"ok", Green},
		{"done", Green},
		{"success", Green},
		{"failed", Red},
		{"failure", Red},
		{"error", Red},
		{"skipped", Faint},
		{"degraded", Faint},
		{"unknown", ""},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			result := StatusColor(tt.status)
			if result != tt.expected {
				t.Errorf("StatusColor(%q) = %q, want %q", tt.status, result, tt.expected)
			}
		})
	}

	Disabled = true
	result := StatusColor("running")
	if result != "" {
		t.Errorf("StatusColor() in disabled mode should return empty string, got %q", result)
	}
}
