package main

import (
	"github.com/spf13/cobra"

	"github.com/backmassage/enumfix/internal/config"
	"github.com/backmassage/enumfix/internal/pipeline"
)

func newRewriteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewrite [input] [output]",
		Short: "Rewrite raw enum entries into formatted declarations",
		Long: `Rewrite copies input to output, replacing every "name number" line inside
the target enum block with "    name = number," using a sanitized, unique
identifier. Lines inside the block that do not parse are commented out.

Defaults: input ` + config.DefaultRewriteInput + `, output ` + config.DefaultRewriteOutput + `.`,
		Args: maxArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.cfg.InputPath = config.DefaultRewriteInput
			a.cfg.OutputPath = config.DefaultRewriteOutput
			if len(args) > 0 {
				a.cfg.InputPath = args[0]
			}
			if len(args) > 1 {
				a.cfg.OutputPath = args[1]
			}

			a.log.Info("In:  %s", a.cfg.InputPath)
			a.log.Info("Out: %s", a.cfg.OutputPath)
			_, err := pipeline.Rewrite(cmd.Context(), &a.cfg, a.log)
			return a.report(err)
		},
	}
	config.BindRewriteFlags(cmd.Flags(), &a.cfg)
	return cmd
}
