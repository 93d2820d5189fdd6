package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/backmassage/enumfix/internal/audit"
	"github.com/backmassage/enumfix/internal/config"
	"github.com/backmassage/enumfix/internal/pipeline"
)

func newAuditCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit [input]",
		Short: "Report duplicate names and shared values in a formatted enum",
		Long: `Audit locates the target enum block in input and reports enumerator names
that occur more than once and values assigned to several names. Entries
are matched as "identifier = digits"; comments are not recognized.

Default input: ` + config.DefaultAuditInput + `.`,
		Args: maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.cfg.InputPath = config.DefaultAuditInput
			if len(args) > 0 {
				a.cfg.InputPath = args[0]
			}

			report, err := pipeline.Audit(cmd.Context(), &a.cfg, a.log, cmd.OutOrStdout())
			if errors.Is(err, audit.ErrBlockNotFound) {
				// Already logged by the pipeline.
				return reportedError{err}
			}
			if err != nil {
				return a.report(err)
			}
			if a.cfg.FailOnDuplicates && !report.Clean() {
				return reportedError{errDuplicatesFound}
			}
			return nil
		},
	}
	config.BindAuditFlags(cmd.Flags(), &a.cfg)
	return cmd
}
