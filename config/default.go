package config

import (
	"time"

	"github.com/toybox-rs/tbops/logger"
)

// DefaultConfig returns configuration with simple defaults.
//
// The default matrix reproduces the benchmark runs used for the Toybox
// experiments: every Atari environment in both its Toybox and ALE variant,
// trained with each baselines algorithm at a short and a long timestep
// budget.
func DefaultConfig() Config {
	return Config{
		Matrix: Matrix{
			Timesteps:  []string{"3e6", "1e7"},
			Algorithms: []string{"a2c", "acer", "ppo2"},
			Environments: []Environment{
				{Name: "AmidarToyboxNoFrameskip-v4", AlternateBackend: true},
				{Name: "AmidarNoFrameskip-v4"},
				{Name: "BreakoutToyboxNoFrameskip-v4", AlternateBackend: true},
				{Name: "BreakoutNoFrameskip-v4"},
			},
		},
		Slurm: Slurm{
			Partitions: Partitions{
				Short: "titanx-short",
				Long:  "titanx-long",
			},
			ShortTimesteps: "3e6",
			Gpus:           1,
			Memory:         "16GB",
			SubmitRate:     Duration(time.Second),
			JobDir:         ".",
			LogDir:         "logs",
			Template:       slurmTemplate,
		},
		Trainer: Trainer{
			Entrypoint:           []string{"python", "-m", "baselines.run"},
			AlternateBackendFlag: "--uses-toybox",
			LibraryPath:          "$HOME/toybox/ctoybox/target/release",
			ModelDir:             "models",
		},
		Lint: Lint{
			ProjectPrefix: "tb_",
			SourceDir:     "src",
			LibFile:       "lib.rs",
			Patterns:      []string{"pub struct", "pub enum"},
		},
		Logger: logger.DefaultConfig(),
	}
}
