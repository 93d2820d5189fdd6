package config

// This file binds command-line flags onto a Config. Flags are split into
// the persistent set shared by every subcommand and the per-command sets.
// Negated flags (--no-color) are applied after parsing so Config defaults
// hold unless the user passes them.

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flag names that map to Config fields. [LoadFile] consults these to decide
// whether a value from the config file was already overridden on the
// command line.
const (
	FlagConfig           = "config"
	FlagEnum             = "enum"
	FlagStartMarker      = "start-marker"
	FlagEndMarker        = "end-marker"
	FlagColor            = "color"
	FlagNoColor          = "no-color"
	FlagVerbose          = "verbose"
	FlagLog              = "log"
	FlagDryRun           = "dry-run"
	FlagFormat           = "format"
	FlagFailOnDuplicates = "fail-on-duplicates"
)

// DisplayFlags holds boolean flags that are applied after Parse because
// they override a default rather than set a field directly.
type DisplayFlags struct {
	forceColor bool
	noColor    bool
}

// BindPersistentFlags registers the flags shared by all subcommands.
func BindPersistentFlags(fs *pflag.FlagSet, cfg *Config, d *DisplayFlags) {
	fs.StringVar(&cfg.ConfigFile, FlagConfig, "", "TOML config file")
	fs.StringVar(&cfg.EnumName, FlagEnum, cfg.EnumName, "Name of the enumeration to process")
	fs.StringArrayVar(&cfg.StartMarkers, FlagStartMarker, nil, "Block start marker (repeatable; default derived from --enum)")
	fs.StringVar(&cfg.EndMarker, FlagEndMarker, cfg.EndMarker, "Block end marker")
	fs.BoolVar(&d.forceColor, FlagColor, false, "Force colored logs")
	fs.BoolVar(&d.noColor, FlagNoColor, false, "Disable colored logs")
	fs.BoolVarP(&cfg.Verbose, FlagVerbose, "v", false, "Verbose output")
	fs.StringVarP(&cfg.LogFile, FlagLog, "l", "", "Append logs to file")
}

// BindRewriteFlags registers flags specific to the rewrite command.
func BindRewriteFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.BoolVarP(&cfg.DryRun, FlagDryRun, "d", false, "Process and report only; do not write output")
}

// BindAuditFlags registers flags specific to the audit command.
func BindAuditFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.Var(&reportFormatValue{&cfg.ReportFormat}, FlagFormat, "Report format: text | yaml | json")
	fs.BoolVar(&cfg.FailOnDuplicates, FlagFailOnDuplicates, false, "Exit non-zero when duplicates are found")
}

// ApplyDisplayFlags copies negated flag values into cfg. --no-color wins
// over --color when both are given.
func ApplyDisplayFlags(cfg *Config, d *DisplayFlags) {
	if d.noColor {
		cfg.ColorMode = ColorNever
	} else if d.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// ChangedFunc reports whether the named flag was set on the command line.
type ChangedFunc func(name string) bool

// FlagSetChanged adapts one or more flag sets into a [ChangedFunc].
func FlagSetChanged(sets ...*pflag.FlagSet) ChangedFunc {
	return func(name string) bool {
		for _, fs := range sets {
			if fs != nil && fs.Changed(name) {
				return true
			}
		}
		return false
	}
}

// pflag.Value adapters so the enum types can be used with fs.Var.

type reportFormatValue struct{ p *ReportFormat }

func (r *reportFormatValue) String() string { return string(*r.p) }
func (r *reportFormatValue) Type() string   { return "format" }
func (r *reportFormatValue) Set(s string) error {
	f, err := ParseReportFormat(s)
	if err != nil {
		return err
	}
	*r.p = f
	return nil
}

// ParseReportFormat maps a case-insensitive name onto a ReportFormat.
func ParseReportFormat(s string) (ReportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid report format %q (use 'text', 'yaml' or 'json')", s)
	}
}

// ParseColorMode maps a case-insensitive name onto a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
}
