package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// prefixScripts covers Hiragana, Katakana (U+3040–U+30FF) and CJK Unified
// Ideographs (U+4E00–U+9FFF). A name containing any of these always gets a
// leading underscore, even though the runes themselves are replaced.
var prefixScripts = runes.In(&unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3040, Hi: 0x30FF, Stride: 1},
		{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1},
	},
})

// isIdentRune reports whether r may appear in an identifier unchanged.
// Only ASCII letters, digits and underscore qualify.
func isIdentRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

func identRune(r rune) rune {
	if isIdentRune(r) {
		return r
	}
	return '_'
}

// sanitizer builds a fresh transform chain. Casers keep state between
// calls, so chains are never shared.
func sanitizer() transform.Transformer {
	return transform.Chain(runes.Map(identRune), cases.Lower(language.Und))
}

// Sanitize converts a raw enumerator name into an identifier base.
//
// Every rune outside [A-Za-z0-9_] becomes a single '_' (invalid UTF-8 bytes
// included) and the result is lowercased. A single '_' is prepended when
// the result starts with a digit or when name contains Hiragana, Katakana
// or CJK Unified Ideographs.
func Sanitize(name string) string {
	clean, _, err := transform.String(sanitizer(), name)
	if err != nil {
		// The chain only maps runes; fall back to the manual equivalent.
		clean = strings.ToLower(strings.Map(identRune, name))
	}

	if startsWithDigit(clean) || ContainsPrefixScript(name) {
		clean = "_" + clean
	}
	return clean
}

// ContainsPrefixScript reports whether s contains a rune from the scripts
// that force an underscore prefix.
func ContainsPrefixScript(s string) bool {
	return strings.IndexFunc(s, prefixScripts.Contains) >= 0
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}
