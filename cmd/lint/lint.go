// Package lint contains the "tbops lint" command, the pre-commit gate that
// rejects commits containing forbidden public declarations.
package lint

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toybox-rs/tbops/cmd/util"
	"github.com/toybox-rs/tbops/config"
	"github.com/toybox-rs/tbops/lint"
	"github.com/toybox-rs/tbops/logger"
)

// NewCommand returns the lint command.
func NewCommand() *cobra.Command {
	var (
		configFile string
		flagConf   config.Config
	)

	cmd := &cobra.Command{
		Use:   "lint [dir]",
		Short: "Check project crates for forbidden public declarations.",
		Long: `Check project crates for forbidden public declarations.

Intended to run from a git pre-commit hook. The first forbidden
declaration found aborts the check with a non-zero exit, which rejects
the commit. A clean tree exits silently with status zero.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := util.MergeConfigFileWithFlags(configFile, flagConf)
			if err != nil {
				return fmt.Errorf("error processing config: %v", err)
			}

			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			log := logger.NewLogger("lint", conf.Logger)
			log.Debug("Resolved diff target", "target", lint.DiffTarget(root))

			checker := &lint.Checker{
				Root: root,
				Conf: conf.Lint,
				Log:  log,
			}
			return checker.Check()
		},
	}

	cmd.SetGlobalNormalizationFunc(util.NormalizeFlags)
	f := cmd.Flags()
	f.AddFlagSet(util.LintFlags(&flagConf, &configFile))

	return cmd
}
