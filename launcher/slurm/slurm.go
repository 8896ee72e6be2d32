// Package slurm configures a launcher for SLURM submission via sbatch.
package slurm

import (
	"fmt"
	"regexp"

	"github.com/toybox-rs/tbops/config"
	"github.com/toybox-rs/tbops/launcher"
	"github.com/toybox-rs/tbops/logger"
)

// New returns a new SLURM Launcher instance.
func New(conf config.Config, log *logger.Logger) *launcher.Launcher {
	return &launcher.Launcher{
		Name:       "slurm",
		SubmitCmd:  "sbatch",
		SubmitArgs: submitArgs,
		Template:   conf.Slurm.Template,
		ExtractID:  extractID,
		Conf:       conf,
		Log:        log,
	}
}

// submitArgs builds the sbatch arguments for a job: the partition chosen
// for its timestep budget and the GPU reservation.
func submitArgs(job launcher.Job, conf config.Slurm) []string {
	args := []string{"-p", job.Partition}
	if conf.Gpus > 0 {
		args = append(args, fmt.Sprintf("--gres=gpu:%d", conf.Gpus))
	}
	return args
}

// extractID extracts the job id from the response returned by the `sbatch`
// command. Example response:
// Submitted batch job 2
func extractID(in string) string {
	re := regexp.MustCompile("(Submitted batch job )([0-9]+)\n$")
	return re.ReplaceAllString(in, "$2")
}
