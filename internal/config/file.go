package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the keys accepted in a TOML config file. Pointer
// fields distinguish "absent" from a zero value.
type fileConfig struct {
	EnumName     *string  `toml:"enum_name"`
	StartMarkers []string `toml:"start_markers"`
	EndMarker    *string  `toml:"end_marker"`
	ReportFormat *string  `toml:"report_format"`
	Color        *string  `toml:"color"`
	LogFile      *string  `toml:"log_file"`
	Verbose      *bool    `toml:"verbose"`
}

// LoadFile decodes the TOML file at path and applies every key whose
// corresponding flag was not changed on the command line. Unknown keys are
// rejected so typos do not silently fall back to defaults.
func LoadFile(path string, cfg *Config, changed ChangedFunc) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	md, err := toml.Decode(string(data), &fc)
	if err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown config key(s) in %s: %s", path, strings.Join(keys, ", "))
	}

	if changed == nil {
		changed = func(string) bool { return false }
	}
	return fc.apply(cfg, changed)
}

func (fc *fileConfig) apply(cfg *Config, changed ChangedFunc) error {
	if fc.EnumName != nil && !changed(FlagEnum) {
		cfg.EnumName = *fc.EnumName
	}
	if len(fc.StartMarkers) > 0 && !changed(FlagStartMarker) {
		cfg.StartMarkers = append([]string(nil), fc.StartMarkers...)
	}
	if fc.EndMarker != nil && !changed(FlagEndMarker) {
		cfg.EndMarker = *fc.EndMarker
	}
	if fc.ReportFormat != nil && !changed(FlagFormat) {
		f, err := ParseReportFormat(*fc.ReportFormat)
		if err != nil {
			return err
		}
		cfg.ReportFormat = f
	}
	if fc.Color != nil && !changed(FlagColor) && !changed(FlagNoColor) {
		m, err := ParseColorMode(*fc.Color)
		if err != nil {
			return err
		}
		cfg.ColorMode = m
	}
	if fc.LogFile != nil && !changed(FlagLog) {
		cfg.LogFile = *fc.LogFile
	}
	if fc.Verbose != nil && !changed(FlagVerbose) {
		cfg.Verbose = *fc.Verbose
	}
	return nil
}
