package enumblock

import (
	"bufio"
	"io"

	"github.com/backmassage/enumfix/internal/naming"
)

// Stats counts what one rewrite pass did.
type Stats struct {
	Lines        int  // Lines read.
	Blocks       int  // Start markers seen.
	BlockLines   int  // Lines strictly inside a block.
	Entries      int  // Lines emitted as declarations.
	Commented    int  // Lines emitted as comments.
	Renamed      int  // Declarations that received a duplicate suffix.
	Unterminated bool // Input ended inside a block.
}

// Event describes one line inside the block. It is passed to
// [Rewriter.OnLine] for callers that want per-line diagnostics.
type Event struct {
	LineNo int
	Kind   Kind   // KindEntry or KindUnmatched.
	Line   string // Original line, terminator included.
	Entry  RawEntry
	Base   string // Sanitized name before collision handling.
	Name   string // Emitted identifier.
}

// Rewriter runs rewrite passes with a fixed classifier.
type Rewriter struct {
	Classifier *Classifier
	OnLine     func(Event) // Optional.
}

// NewRewriter returns a rewriter for the given block markers.
func NewRewriter(startMarkers []string, endMarker string) *Rewriter {
	return &Rewriter{Classifier: NewClassifier(startMarkers, endMarker)}
}

// Rewrite reads r to EOF and writes the rewritten text to w. Lines are
// processed strictly in input order with a collision table owned by this
// call. Unparseable lines never fail the pass; only I/O errors do.
func (rw *Rewriter) Rewrite(r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats
	table := naming.NewCollisionTable()
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)
	inBlock := false

	for {
		line, readErr := br.ReadString('\n')
		if line != "" {
			stats.Lines++
			out := rw.processLine(line, &inBlock, table, &stats)
			if _, err := bw.WriteString(out); err != nil {
				return stats, err
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return stats, readErr
		}
	}

	stats.Renamed = table.Renamed()
	stats.Unterminated = inBlock
	return stats, bw.Flush()
}

func (rw *Rewriter) processLine(line string, inBlock *bool, table *naming.CollisionTable, stats *Stats) string {
	c := rw.Classifier.Classify(line, *inBlock)
	switch c.Kind {
	case KindBlockStart:
		*inBlock = true
		stats.Blocks++
		return line
	case KindBlockEnd:
		*inBlock = false
		return line
	case KindEntry:
		stats.BlockLines++
		stats.Entries++
		base := naming.Sanitize(c.Entry.Name)
		name := table.Resolve(base)
		rw.emit(Event{LineNo: stats.Lines, Kind: KindEntry, Line: line, Entry: c.Entry, Base: base, Name: name})
		return FormatDeclaration(name, c.Entry.Number)
	case KindUnmatched:
		stats.BlockLines++
		stats.Commented++
		rw.emit(Event{LineNo: stats.Lines, Kind: KindUnmatched, Line: line})
		return FormatComment(line)
	default:
		return line
	}
}

func (rw *Rewriter) emit(e Event) {
	if rw.OnLine != nil {
		rw.OnLine(e)
	}
}
