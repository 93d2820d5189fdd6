package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/backmassage/enumfix/internal/audit"
	"github.com/backmassage/enumfix/internal/check"
	"github.com/backmassage/enumfix/internal/config"
	"github.com/backmassage/enumfix/internal/display"
	"github.com/backmassage/enumfix/internal/logging"
)

// Audit reads cfg.InputPath, audits the cfg.EnumName block and renders the
// report to w. A missing block is logged and returned as
// [audit.ErrBlockNotFound]; nothing is rendered in that case.
func Audit(ctx context.Context, cfg *config.Config, log *logging.Logger, w io.Writer) (*audit.Report, error) {
	if err := check.Paths(cfg.InputPath, "", cfg.Verbose, log); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", check.ErrSourceUnavailable, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report, err := audit.NewAuditor(cfg.EnumName).Audit(string(data))
	if errors.Is(err, audit.ErrBlockNotFound) {
		log.Error("'%s' enum not found in %s", cfg.EnumName, cfg.InputPath)
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	log.Debug(cfg.Verbose, "Audited %d pairs in %s", report.Pairs, cfg.InputPath)
	if err := display.RenderReport(w, report, cfg.ReportFormat); err != nil {
		return report, err
	}

	if report.Clean() {
		log.Success("No duplicates in %s", cfg.EnumName)
	} else {
		log.Warn("%s has %s and %s", cfg.EnumName,
			display.Plural(len(report.DuplicateNames), "duplicate name", "duplicate names"),
			display.Plural(len(report.DuplicateValues), "shared value", "shared values"))
	}
	return report, nil
}
