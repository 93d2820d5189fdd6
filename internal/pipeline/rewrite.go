package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/backmassage/enumfix/internal/check"
	"github.com/backmassage/enumfix/internal/config"
	"github.com/backmassage/enumfix/internal/display"
	"github.com/backmassage/enumfix/internal/enumblock"
	"github.com/backmassage/enumfix/internal/logging"
)

// Rewrite normalizes the target block of cfg.InputPath into cfg.OutputPath.
// Output is buffered in memory and only committed once the whole input was
// processed; in dry-run mode nothing is written.
func Rewrite(ctx context.Context, cfg *config.Config, log *logging.Logger) (enumblock.Stats, error) {
	var stats enumblock.Stats

	output := cfg.OutputPath
	if cfg.DryRun {
		output = ""
	}
	if err := check.Paths(cfg.InputPath, output, cfg.Verbose, log); err != nil {
		return stats, err
	}

	in, err := os.Open(cfg.InputPath)
	if err != nil {
		return stats, fmt.Errorf("%w: %v", check.ErrSourceUnavailable, err)
	}
	defer in.Close()

	markers := cfg.EffectiveStartMarkers()
	log.Debug(cfg.Verbose, "Start markers: %s", quoteAll(markers))
	log.Debug(cfg.Verbose, "End marker: %q", cfg.EndMarker)

	rw := enumblock.NewRewriter(markers, cfg.EndMarker)
	rw.OnLine = func(e enumblock.Event) {
		logLine(cfg, log, e)
	}

	var buf bytes.Buffer
	stats, err = rw.Rewrite(in, &buf)
	if err != nil {
		return stats, fmt.Errorf("read %s: %w", cfg.InputPath, err)
	}

	if stats.Blocks == 0 {
		log.Warn("No %s block found in %s; output equals input", cfg.EnumName, cfg.InputPath)
	}
	if stats.Unterminated {
		log.Warn("Input ended inside the %s block (no %q line)", cfg.EnumName, cfg.EndMarker)
	}
	log.Info("%s", display.FormatStats(stats))

	// Cancellation after processing but before commit leaves no output.
	if err := ctx.Err(); err != nil {
		return stats, err
	}

	if cfg.DryRun {
		log.Warn("DRY RUN: %s not written", cfg.OutputPath)
		return stats, nil
	}

	if err := WriteFileAtomic(cfg.OutputPath, buf.Bytes(), 0o644); err != nil {
		return stats, err
	}
	log.Success("Formatted enumeration has been saved to %s", cfg.OutputPath)
	return stats, nil
}

// logLine reports renamed and commented-out lines at debug level.
func logLine(cfg *config.Config, log *logging.Logger, e enumblock.Event) {
	switch {
	case e.Kind == enumblock.KindUnmatched:
		log.Debug(cfg.Verbose, "line %d: commented out %q", e.LineNo, strings.TrimSpace(e.Line))
	case e.Base != e.Name:
		log.Debug(cfg.Verbose, "line %d: %q -> %s (duplicate of %s)", e.LineNo, e.Entry.Name, e.Name, e.Base)
	}
}

func quoteAll(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(quoted, ", ")
}
