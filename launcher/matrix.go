package launcher

import (
	"path/filepath"

	"github.com/toybox-rs/tbops/config"
)

// Job holds the parameters that fully determine one scheduler submission.
type Job struct {
	Environment      string
	Algorithm        string
	Timesteps        string
	AlternateBackend bool
	Partition        string
	ModelPath        string
}

// ID returns the job identifier, which is used both as the scheduler job
// name and as part of the generated file name.
func (j Job) ID() string {
	return j.Environment + "." + j.Algorithm + "." + j.Timesteps
}

// FileName returns the name of the generated submission file.
func (j Job) FileName() string {
	return "run_cmd_" + j.ID() + ".sbatch"
}

// Partition selects the cluster partition for a timestep budget. The
// comparison is against the literal timestep text, not its numeric value.
func Partition(timesteps string, conf config.Slurm) string {
	if timesteps == conf.ShortTimesteps {
		return conf.Partitions.Short
	}
	return conf.Partitions.Long
}

// Enumerate expands the training matrix into jobs in submission order:
// timestep budgets in the outer loop, algorithms next, environments in the
// inner loop.
//
// When Matrix.FirstPassOnly is set, enumeration stops after one full pass
// over the environments for the first algorithm of the first timestep
// budget.
func Enumerate(conf config.Config) []Job {
	var jobs []Job

	for _, ts := range conf.Matrix.Timesteps {
		for _, alg := range conf.Matrix.Algorithms {
			for _, env := range conf.Matrix.Environments {
				job := Job{
					Environment:      env.Name,
					Algorithm:        alg,
					Timesteps:        ts,
					AlternateBackend: env.AlternateBackend,
					Partition:        Partition(ts, conf.Slurm),
				}
				job.ModelPath = filepath.Join(conf.Trainer.ModelDir, job.ID()+".model")
				jobs = append(jobs, job)
			}
			if conf.Matrix.FirstPassOnly {
				return jobs
			}
		}
	}
	return jobs
}
