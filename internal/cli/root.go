// Package cli implements the horcrux command-line driver: a thin layer over
// internal/gf2n and internal/shamir that marshals hex or BIP-39 text in and
// out, and never reimplements field arithmetic or Lagrange interpolation
// itself.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gendx/horcrux/internal/config"
	"github.com/gendx/horcrux/internal/output"
	horcruxerrors "github.com/gendx/horcrux/pkg/errors"
)

// state holds everything initialized once in PersistentPreRunE and used by
// every subcommand: the resolved config, the logger, and the output
// formatter. It is package-level because cobra command RunE functions don't
// carry arbitrary context through to children by default, matching the
// teacher's global-state-in-PersistentPreRunE pattern.
var state struct {
	cfg        *config.Config
	logger     *config.Logger
	closeLog   func() error
	formatter  *output.Formatter
	home       string
}

var (
	flagHome         string
	flagOutputFormat string
)

// ExitCode turns any error returned by the root command into the process
// exit status the teacher's CLIs use.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var he *horcruxerrors.HorcruxError
	if errAs(err, &he) {
		return he.ExitCode()
	}
	return 1
}

func errAs(err error, target **horcruxerrors.HorcruxError) bool {
	he, ok := err.(*horcruxerrors.HorcruxError)
	if !ok {
		return false
	}
	*target = he
	return true
}

// NewRootCommand builds the horcrux root command and its subcommands.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "horcrux",
		Short:         "Split and reconstruct secrets with GF(2^n) Shamir Secret Sharing",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			home := flagHome
			if home == "" {
				h, err := config.DefaultHome()
				if err != nil {
					return horcruxerrors.Wrap(horcruxerrors.CodeConfig, "resolve home directory", err)
				}
				home = h
			}
			state.home = home

			cfg, err := config.Load(home)
			if err != nil {
				return horcruxerrors.Wrap(horcruxerrors.CodeConfig, "load config", err)
			}
			state.cfg = cfg

			logger, closeLog, err := config.OpenFileLogger(cfg)
			if err != nil {
				return horcruxerrors.Wrap(horcruxerrors.CodeConfig, "open log file", err)
			}
			state.logger = logger
			state.closeLog = closeLog

			mode := output.Mode(flagOutputFormat)
			if mode == "" {
				mode = output.Mode(cfg.OutputFormat)
			}
			state.formatter = output.New(os.Stdout, mode)

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if state.closeLog != nil {
				_ = state.closeLog()
			}
		},
	}

	root.PersistentFlags().StringVar(&flagHome, "home", "", "horcrux home directory (default $HOME/.horcrux)")
	root.PersistentFlags().StringVar(&flagOutputFormat, "output", "", "output format: text or json (default: auto-detected)")

	root.AddCommand(newSplitCommand())
	root.AddCommand(newReconstructCommand())
	root.AddCommand(newVersionCommand())

	return root
}

// Execute runs the CLI and returns the process exit code it should produce.
func Execute() int {
	root := NewRootCommand()
	err := root.Execute()
	if err != nil && state.formatter != nil {
		_ = state.formatter.Error(err)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	return ExitCode(err)
}
