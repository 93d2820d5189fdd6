package enumblock

import (
	"regexp"
	"strings"
)

// Kind identifies what a line is, relative to the target block.
type Kind int

const (
	KindPassthrough Kind = iota // Outside the block; copied unchanged.
	KindBlockStart              // Contains a start marker.
	KindBlockEnd                // Contains the end marker while inside the block.
	KindEntry                   // Inside the block and shaped like "name number".
	KindUnmatched               // Inside the block, any other shape.
)

func (k Kind) String() string {
	switch k {
	case KindPassthrough:
		return "passthrough"
	case KindBlockStart:
		return "block-start"
	case KindBlockEnd:
		return "block-end"
	case KindEntry:
		return "entry"
	case KindUnmatched:
		return "unmatched"
	default:
		return "unknown"
	}
}

// RawEntry is the (name, number) pair extracted from one entry line. Name
// may contain spaces and any script; Number is all ASCII digits.
type RawEntry struct {
	Name   string
	Number string
}

// Classification is the result of classifying one line.
type Classification struct {
	Kind  Kind
	Entry RawEntry // Set only for KindEntry.
}

// reEntry matches "name number": a name that starts with a non-space,
// separating whitespace, and a trailing digit run. The lazy name group makes
// the number the maximal digit run at the end of the line.
var reEntry = regexp.MustCompile(`^\s*(\S.*?)\s+(\d+)\s*$`)

// Classifier decides how each line of the input is treated.
type Classifier struct {
	StartMarkers []string
	EndMarker    string
}

// NewClassifier returns a classifier for the given markers.
func NewClassifier(startMarkers []string, endMarker string) *Classifier {
	return &Classifier{StartMarkers: startMarkers, EndMarker: endMarker}
}

// Classify classifies line given whether the previous lines left the reader
// inside the block. Start markers are honored even inside the block. The
// line may still carry its terminator.
func (c *Classifier) Classify(line string, inBlock bool) Classification {
	if c.isStart(line) {
		return Classification{Kind: KindBlockStart}
	}
	if !inBlock {
		return Classification{Kind: KindPassthrough}
	}
	if c.EndMarker != "" && strings.Contains(line, c.EndMarker) {
		return Classification{Kind: KindBlockEnd}
	}

	m := reEntry.FindStringSubmatch(trimTerminator(line))
	if m == nil {
		return Classification{Kind: KindUnmatched}
	}
	name := strings.TrimSpace(m[1])
	number := strings.TrimSpace(m[2])
	// Unreachable with reEntry (both groups are non-empty by construction);
	// kept so a looser pattern can never emit "    = 1,".
	if name == "" || number == "" {
		return Classification{Kind: KindUnmatched}
	}
	return Classification{Kind: KindEntry, Entry: RawEntry{Name: name, Number: number}}
}

func (c *Classifier) isStart(line string) bool {
	for _, m := range c.StartMarkers {
		if m != "" && strings.Contains(line, m) {
			return true
		}
	}
	return false
}

// trimTerminator removes a trailing "\n" or "\r\n".
func trimTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
