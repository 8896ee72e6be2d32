package launcher

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/toybox-rs/tbops/config"
)

func TestDefaultEnvironmentBackends(t *testing.T) {
	conf := config.DefaultConfig()

	// The Toybox variants sit at positions 0 and 2 of the default list and
	// are the only entries that run on the alternate simulator.
	expected := []bool{true, false, true, false}
	assert.Equal(t, len(expected), len(conf.Matrix.Environments))
	for i, env := range conf.Matrix.Environments {
		assert.Equal(t, expected[i], env.AlternateBackend, env.Name)
	}
}

func TestPartitionSelection(t *testing.T) {
	conf := config.DefaultConfig().Slurm

	assert.Equal(t, "titanx-short", Partition("3e6", conf))
	assert.Equal(t, "titanx-long", Partition("1e7", conf))

	// The comparison is literal, not numeric: equivalent spellings of the
	// short budget still go to the long partition.
	assert.Equal(t, "titanx-long", Partition("3000000", conf))
	assert.Equal(t, "titanx-long", Partition("3E6", conf))
}

func TestJobNaming(t *testing.T) {
	job := Job{
		Environment: "BreakoutNoFrameskip-v4",
		Algorithm:   "ppo2",
		Timesteps:   "1e7",
	}
	assert.Equal(t, "BreakoutNoFrameskip-v4.ppo2.1e7", job.ID())
	assert.Equal(t, "run_cmd_BreakoutNoFrameskip-v4.ppo2.1e7.sbatch", job.FileName())
}

func TestEnumerateFullMatrix(t *testing.T) {
	conf := config.DefaultConfig()
	jobs := Enumerate(conf)

	assert.Equal(t,
		len(conf.Matrix.Timesteps)*len(conf.Matrix.Algorithms)*len(conf.Matrix.Environments),
		len(jobs))

	// Timesteps in the outer loop, algorithms next, environments inner.
	assert.Equal(t, "AmidarToyboxNoFrameskip-v4.a2c.3e6", jobs[0].ID())
	assert.Equal(t, "AmidarNoFrameskip-v4.a2c.3e6", jobs[1].ID())
	assert.Equal(t, "AmidarToyboxNoFrameskip-v4.acer.3e6", jobs[4].ID())
	assert.Equal(t, "AmidarToyboxNoFrameskip-v4.a2c.1e7", jobs[12].ID())

	for _, job := range jobs {
		assert.Equal(t, filepath.Join("models", job.ID()+".model"), job.ModelPath)
		assert.Equal(t, Partition(job.Timesteps, conf.Slurm), job.Partition)
	}
}

func TestEnumerateFirstPassOnly(t *testing.T) {
	conf := config.DefaultConfig()
	conf.Matrix.FirstPassOnly = true
	jobs := Enumerate(conf)

	assert.Equal(t, len(conf.Matrix.Environments), len(jobs))
	for i, job := range jobs {
		assert.Equal(t, conf.Matrix.Algorithms[0], job.Algorithm)
		assert.Equal(t, conf.Matrix.Timesteps[0], job.Timesteps)
		assert.Equal(t, conf.Matrix.Environments[i].Name, job.Environment)
		assert.Equal(t, conf.Matrix.Environments[i].AlternateBackend, job.AlternateBackend)
	}
}
