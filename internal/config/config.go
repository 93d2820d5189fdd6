// Package config holds runtime configuration: defaults, flag binding, the
// optional TOML config file, and validation. Defaults match the original
// BNpcName tooling so a bare invocation behaves like the legacy scripts.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// --- Enum types for validated string fields ---

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stderr is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// ReportFormat selects how the audit report is rendered.
type ReportFormat string

const (
	FormatText ReportFormat = "text" // Human-readable summary (default).
	FormatYAML ReportFormat = "yaml"
	FormatJSON ReportFormat = "json"
)

// Default paths used when positional arguments are omitted.
const (
	DefaultRewriteInput  = "src/world/Actor/Common.BNpc.h"
	DefaultRewriteOutput = "BNpcName_fixed.h"
	DefaultAuditInput    = "Common.BNpc.h"
	DefaultEnumName      = "BNpcName"
	DefaultEndMarker     = "};"
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then by [LoadFile] when a config file is given, and finally by the bound
// command-line flags.
type Config struct {
	// Paths (set from positional args).
	InputPath  string
	OutputPath string

	// Block recognition.
	EnumName     string   // Default: "BNpcName".
	StartMarkers []string // Derived from EnumName unless set explicitly.
	EndMarker    string   // Default: "};".

	// Behavior flags.
	DryRun           bool
	FailOnDuplicates bool
	ReportFormat     ReportFormat // Default: "text".

	// Display and logging.
	Verbose    bool
	ColorMode  ColorMode // Default: "auto".
	LogFile    string    // Optional log file path.
	ConfigFile string    // Optional TOML config file.
}

// DefaultConfig returns a Config with the legacy script defaults.
func DefaultConfig() Config {
	return Config{
		EnumName:     DefaultEnumName,
		EndMarker:    DefaultEndMarker,
		ReportFormat: FormatText,
		ColorMode:    ColorAuto,
	}
}

// StartMarkersFor returns the plain and class-qualified opening markers for
// an enumeration name, e.g. "enum BNpcName" and "enum class BNpcName".
func StartMarkersFor(enumName string) []string {
	return []string{"enum " + enumName, "enum class " + enumName}
}

// EffectiveStartMarkers returns StartMarkers when set, otherwise the markers
// derived from EnumName.
func (c *Config) EffectiveStartMarkers() []string {
	if len(c.StartMarkers) > 0 {
		return c.StartMarkers
	}
	return StartMarkersFor(c.EnumName)
}

// Validate checks enum fields and block markers. It trims whitespace from
// the enum name and rejects markers that could never match a line.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	switch c.ReportFormat {
	case FormatText, FormatYAML, FormatJSON:
		// valid
	default:
		return errors.New("invalid report format (use 'text', 'yaml' or 'json')")
	}

	c.EnumName = strings.TrimSpace(c.EnumName)
	if c.EnumName == "" {
		return errors.New("enum name must not be empty")
	}
	if !isIdentifier(c.EnumName) {
		return fmt.Errorf("invalid enum name %q (letters, digits and '_' only)", c.EnumName)
	}

	for _, m := range c.StartMarkers {
		if strings.TrimSpace(m) == "" {
			return errors.New("start marker must not be blank")
		}
	}
	if strings.TrimSpace(c.EndMarker) == "" {
		return errors.New("end marker must not be blank")
	}
	return nil
}

func isIdentifier(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b == '_', b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		case b >= '0' && b <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
