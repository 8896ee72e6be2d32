// Package submit contains the "tbops submit" command, which expands the
// training matrix into sbatch files and submits them.
package submit

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toybox-rs/tbops/cmd/util"
	"github.com/toybox-rs/tbops/config"
	"github.com/toybox-rs/tbops/launcher/slurm"
	"github.com/toybox-rs/tbops/logger"
	"github.com/toybox-rs/tbops/version"
)

// NewCommand returns the submit command.
func NewCommand() *cobra.Command {
	var (
		configFile string
		flagConf   config.Config
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Generate sbatch files for the training matrix and submit them.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := util.MergeConfigFileWithFlags(configFile, flagConf)
			if err != nil {
				return fmt.Errorf("error processing config: %v", err)
			}
			if err := conf.Validate(); err != nil {
				return fmt.Errorf("invalid config: %v", err)
			}

			log := logger.NewLogger("submit", conf.Logger)
			log.Debug("Version", version.LogFields()...)

			l := slurm.New(conf, log)
			l.DryRun = dryRun
			return l.Run(context.Background())
		},
	}

	cmd.SetGlobalNormalizationFunc(util.NormalizeFlags)
	f := cmd.Flags()
	f.BoolVar(&dryRun, "dry-run", false, "Render and write job files without submitting them")
	f.AddFlagSet(util.SubmitFlags(&flagConf, &configFile))

	return cmd
}
