package enumblock

import "strings"

const indent = "    "

// FormatDeclaration renders one enumerator. number is emitted verbatim,
// so leading zeros survive.
func FormatDeclaration(identifier, number string) string {
	return indent + identifier + " = " + number + ",\n"
}

// FormatComment neutralizes a line that could not be parsed.
func FormatComment(line string) string {
	return indent + "// " + strings.TrimSpace(line) + "\n"
}
