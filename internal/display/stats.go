package display

import (
	"fmt"

	"github.com/backmassage/enumfix/internal/enumblock"
)

// FormatStats summarizes a rewrite pass on one line.
func FormatStats(s enumblock.Stats) string {
	return fmt.Sprintf("%s read, %s, %s formatted, %s commented out, %s renamed",
		Plural(s.Lines, "line", "lines"),
		Plural(s.Blocks, "block", "blocks"),
		Plural(s.Entries, "entry", "entries"),
		Plural(s.Commented, "line", "lines"),
		Plural(s.Renamed, "duplicate", "duplicates"))
}
