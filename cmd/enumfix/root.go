package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/enumfix/internal/config"
	"github.com/backmassage/enumfix/internal/logging"
)

// app carries state shared by the command tree for one invocation.
type app struct {
	cfg     config.Config
	display config.DisplayFlags
	log     *logging.Logger
}

func newApp() *app {
	return &app{cfg: config.DefaultConfig()}
}

// close releases the logger, if one was opened.
func (a *app) close() {
	if a.log != nil {
		a.log.Close()
		a.log = nil
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "enumfix",
		Short: "Normalize and audit generated C++ enumeration blocks",
		Long: `enumfix rewrites raw "name number" lines inside an enumeration block
into valid, unique enumerator declarations, and audits formatted blocks
for duplicate names and shared values.

Examples:
  enumfix rewrite src/world/Actor/Common.BNpc.h BNpcName_fixed.h
  enumfix audit --format yaml Common.BNpc.h`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError{fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())}
			}
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	config.BindPersistentFlags(root.PersistentFlags(), &a.cfg, &a.display)

	root.AddCommand(newRewriteCmd(a), newAuditCmd(a))
	return root
}

// setup finalizes configuration (config file, negated flags, validation)
// and opens the logger. It runs before every subcommand.
func (a *app) setup(cmd *cobra.Command) error {
	if a.cfg.ConfigFile != "" {
		changed := config.FlagSetChanged(cmd.Flags(), cmd.InheritedFlags())
		if err := config.LoadFile(a.cfg.ConfigFile, &a.cfg, changed); err != nil {
			return usageError{err}
		}
	}
	config.ApplyDisplayFlags(&a.cfg, &a.display)
	if err := a.cfg.Validate(); err != nil {
		return usageError{err}
	}

	log, err := logging.NewLogger(&a.cfg)
	if err != nil {
		return err
	}
	a.log = log
	return nil
}

// maxArgs is cobra.MaximumNArgs with the error marked as a usage error.
func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(n)(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// report logs err through the logger and marks it as reported.
func (a *app) report(err error) error {
	if err == nil {
		return nil
	}
	a.log.Error("%v", err)
	return reportedError{err}
}
