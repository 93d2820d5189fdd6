// Package display renders audit reports and rewrite summaries for humans
// and for machines.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/backmassage/enumfix/internal/audit"
	"github.com/backmassage/enumfix/internal/config"
)

// RenderReport writes r to w in the requested format.
func RenderReport(w io.Writer, r *audit.Report, format config.ReportFormat) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		return enc.Close()
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
		return nil
	case config.FormatText, "":
		_, err := io.WriteString(w, FormatReport(r))
		return err
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
}

// FormatReport returns the human-readable summary: a count line, the
// duplicate names, then the values shared by several names.
func FormatReport(r *audit.Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Audited %s in %s: %s, %s\n",
		Plural(r.Pairs, "entry", "entries"), r.Enum,
		Plural(len(r.DuplicateNames), "duplicate name", "duplicate names"),
		Plural(len(r.DuplicateValues), "shared value", "shared values"))

	if len(r.DuplicateNames) > 0 {
		sb.WriteString("Duplicate Enumerator Names found:\n")
		for _, name := range r.DuplicateNames {
			sb.WriteString(" - " + name + "\n")
		}
	} else {
		sb.WriteString("No duplicate enumerator names found.\n")
	}

	if len(r.DuplicateValues) > 0 {
		sb.WriteString("\nDuplicate Enumerator Values found:\n")
		for _, g := range r.DuplicateValues {
			fmt.Fprintf(&sb, "Value %s is assigned to: %s\n", g.Value, strings.Join(g.Names, ", "))
		}
	} else {
		sb.WriteString("No duplicate enumerator values found.\n")
	}
	return sb.String()
}

// Plural formats n with the singular or plural noun.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
