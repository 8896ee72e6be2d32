// Package config contains tbops configuration structures and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/units"
	"github.com/ghodss/yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/toybox-rs/tbops/logger"
)

// Config describes configuration for tbops.
type Config struct {
	Matrix  Matrix
	Slurm   Slurm
	Trainer Trainer
	Lint    Lint
	Logger  logger.Config
}

// Environment names a simulation environment variant and records which
// simulator implementation runs it.
type Environment struct {
	Name string
	// AlternateBackend selects the alternate simulator implementation
	// for this environment. It is carried per environment rather than
	// derived from list position, so reordering the list is safe.
	AlternateBackend bool
}

// Matrix enumerates the training combinations to generate and submit.
type Matrix struct {
	// Timestep budgets, as literal strings passed through to the trainer
	// (e.g. "3e6"). Partition selection compares these literally.
	Timesteps    []string
	Algorithms   []string
	Environments []Environment
	// FirstPassOnly stops generation after one full pass over the
	// environments for the first algorithm of the first timestep budget.
	FirstPassOnly bool
}

// Partitions names the cluster partitions used for short and long jobs.
type Partitions struct {
	Short string
	Long  string
}

// Slurm describes how job files are rendered and submitted to SLURM.
type Slurm struct {
	Partitions Partitions
	// Timestep budgets equal to this literal are sent to the short partition,
	// all others to the long partition.
	ShortTimesteps string
	// Number of GPUs requested per job.
	Gpus int
	// Memory reservation per job, e.g. "16GB".
	Memory string
	// Minimum interval between job submissions.
	SubmitRate Duration
	// Directory job files are written to.
	JobDir string
	// Directory the scheduler writes stdout/stderr logs to.
	LogDir string
	// Submission file template. See template.go for the default.
	Template string
}

// MemoryMB returns the configured memory reservation in megabytes,
// the unit SLURM's --mem directive expects.
func (s Slurm) MemoryMB() (int64, error) {
	if s.Memory == "" {
		return 0, nil
	}
	n, err := units.ParseBase2Bytes(s.Memory)
	if err != nil {
		return 0, fmt.Errorf("parsing Slurm.Memory %q: %v", s.Memory, err)
	}
	return int64(n) / int64(units.MiB), nil
}

// Trainer describes the training entry point invoked by each job.
type Trainer struct {
	// Entrypoint is the command that starts a training run,
	// e.g. [python, -m, baselines.run].
	Entrypoint []string
	// AlternateBackendFlag is prepended to the trainer arguments for
	// environments that run on the alternate simulator.
	AlternateBackendFlag string
	// LibraryPath is appended to LD_LIBRARY_PATH so the trainer can load
	// the native simulator library.
	LibraryPath string
	// Directory trained models are saved to.
	ModelDir string
}

// Lint describes which files the declaration linter checks and what it
// rejects.
type Lint struct {
	// Only immediate subdirectories with this name prefix are checked.
	ProjectPrefix string
	// Source subdirectory within each project, e.g. "src".
	SourceDir string
	// Library root file within SourceDir, e.g. "lib.rs".
	LibFile string
	// Forbidden declaration markers.
	Patterns []string
}

// Validate returns an error describing every problem found in the
// configuration, or nil if it is usable.
func (c Config) Validate() error {
	var result *multierror.Error

	if len(c.Matrix.Timesteps) == 0 {
		result = multierror.Append(result, fmt.Errorf("Matrix.Timesteps is empty"))
	}
	if len(c.Matrix.Algorithms) == 0 {
		result = multierror.Append(result, fmt.Errorf("Matrix.Algorithms is empty"))
	}
	if len(c.Matrix.Environments) == 0 {
		result = multierror.Append(result, fmt.Errorf("Matrix.Environments is empty"))
	}
	for i, env := range c.Matrix.Environments {
		if env.Name == "" {
			result = multierror.Append(result, fmt.Errorf("Matrix.Environments[%d].Name is empty", i))
		}
	}
	if c.Slurm.Partitions.Short == "" || c.Slurm.Partitions.Long == "" {
		result = multierror.Append(result, fmt.Errorf("Slurm.Partitions.Short and Slurm.Partitions.Long are required"))
	}
	if c.Slurm.Gpus < 0 {
		result = multierror.Append(result, fmt.Errorf("Slurm.Gpus must not be negative"))
	}
	if _, err := c.Slurm.MemoryMB(); err != nil {
		result = multierror.Append(result, err)
	}
	if c.Slurm.Template == "" {
		result = multierror.Append(result, fmt.Errorf("Slurm.Template is empty"))
	}
	if len(c.Trainer.Entrypoint) == 0 {
		result = multierror.Append(result, fmt.Errorf("Trainer.Entrypoint is empty"))
	}

	return result.ErrorOrNil()
}

// ToYaml formats the configuration into YAML and returns the bytes.
func ToYaml(c Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// ToYamlFile writes the configuration to a YAML file.
func ToYamlFile(c Config, path string) error {
	b, err := ToYaml(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0600)
}

// Parse parses a YAML doc into the given Config instance.
func Parse(raw []byte, conf *Config) error {
	return yaml.Unmarshal(raw, conf)
}

// ParseFile parses a tbops config file, which is formatted in YAML,
// into the given Config instance.
func ParseFile(relpath string, conf *Config) error {
	if relpath == "" {
		return nil
	}

	// Try to get absolute path. If it fails, fall back to relative path.
	path, abserr := filepath.Abs(relpath)
	if abserr != nil {
		path = relpath
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failure reading config at path %s: %v", path, err)
	}

	if err := Parse(source, conf); err != nil {
		return fmt.Errorf("failure parsing config at path %s: %v", path, err)
	}
	return nil
}
