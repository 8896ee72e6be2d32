package util

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/toybox-rs/tbops/config"
)

// SubmitFlags returns a new flag set for configuring the job matrix
// generator.
func SubmitFlags(flagConf *config.Config, configFile *string) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.StringVarP(configFile, "config", "c", *configFile, "Config File")

	f.AddFlagSet(matrixFlags(flagConf))
	f.AddFlagSet(slurmFlags(flagConf))
	f.AddFlagSet(trainerFlags(flagConf))
	f.AddFlagSet(loggerFlags(flagConf))

	return f
}

// LintFlags returns a new flag set for configuring the declaration linter.
func LintFlags(flagConf *config.Config, configFile *string) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.StringVarP(configFile, "config", "c", *configFile, "Config File")

	f.AddFlagSet(lintFlags(flagConf))
	f.AddFlagSet(loggerFlags(flagConf))

	return f
}

func matrixFlags(flagConf *config.Config) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.StringSliceVar(&flagConf.Matrix.Timesteps, "Matrix.Timesteps", flagConf.Matrix.Timesteps, "Timestep budget. This flag can be used multiple times")
	f.StringSliceVar(&flagConf.Matrix.Algorithms, "Matrix.Algorithms", flagConf.Matrix.Algorithms, "Training algorithm. This flag can be used multiple times")
	f.BoolVar(&flagConf.Matrix.FirstPassOnly, "Matrix.FirstPassOnly", flagConf.Matrix.FirstPassOnly, "Stop after one pass over the environments for the first algorithm of the first timestep budget")

	return f
}

func slurmFlags(flagConf *config.Config) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.StringVar(&flagConf.Slurm.Partitions.Short, "Slurm.Partitions.Short", flagConf.Slurm.Partitions.Short, "Partition for short jobs")
	f.StringVar(&flagConf.Slurm.Partitions.Long, "Slurm.Partitions.Long", flagConf.Slurm.Partitions.Long, "Partition for long jobs")
	f.StringVar(&flagConf.Slurm.ShortTimesteps, "Slurm.ShortTimesteps", flagConf.Slurm.ShortTimesteps, "Timestep budget sent to the short partition")
	f.IntVar(&flagConf.Slurm.Gpus, "Slurm.Gpus", flagConf.Slurm.Gpus, "GPUs requested per job")
	f.StringVar(&flagConf.Slurm.Memory, "Slurm.Memory", flagConf.Slurm.Memory, "Memory reservation per job, e.g. 16GB")
	f.Var(&flagConf.Slurm.SubmitRate, "Slurm.SubmitRate", "Minimum interval between submissions")
	f.StringVar(&flagConf.Slurm.JobDir, "Slurm.JobDir", flagConf.Slurm.JobDir, "Directory job files are written to")
	f.StringVar(&flagConf.Slurm.LogDir, "Slurm.LogDir", flagConf.Slurm.LogDir, "Directory scheduler logs are written to")

	return f
}

func trainerFlags(flagConf *config.Config) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.StringSliceVar(&flagConf.Trainer.Entrypoint, "Trainer.Entrypoint", flagConf.Trainer.Entrypoint, "Training entry point command")
	f.StringVar(&flagConf.Trainer.AlternateBackendFlag, "Trainer.AlternateBackendFlag", flagConf.Trainer.AlternateBackendFlag, "Flag passed to the trainer for alternate-backend environments")
	f.StringVar(&flagConf.Trainer.LibraryPath, "Trainer.LibraryPath", flagConf.Trainer.LibraryPath, "Path appended to LD_LIBRARY_PATH")
	f.StringVar(&flagConf.Trainer.ModelDir, "Trainer.ModelDir", flagConf.Trainer.ModelDir, "Directory trained models are saved to")

	return f
}

func lintFlags(flagConf *config.Config) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.StringVar(&flagConf.Lint.ProjectPrefix, "Lint.ProjectPrefix", flagConf.Lint.ProjectPrefix, "Only check directories with this name prefix")
	f.StringVar(&flagConf.Lint.SourceDir, "Lint.SourceDir", flagConf.Lint.SourceDir, "Source subdirectory within each project")
	f.StringVar(&flagConf.Lint.LibFile, "Lint.LibFile", flagConf.Lint.LibFile, "Library root file within the source directory")
	f.StringSliceVar(&flagConf.Lint.Patterns, "Lint.Patterns", flagConf.Lint.Patterns, "Forbidden declaration marker. This flag can be used multiple times")

	return f
}

func loggerFlags(flagConf *config.Config) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.StringVar(&flagConf.Logger.Level, "Logger.Level", flagConf.Logger.Level, "Level of logging")
	f.StringVar(&flagConf.Logger.OutputFile, "Logger.OutputFile", flagConf.Logger.OutputFile, "File path to write logs to")
	f.StringVar(&flagConf.Logger.Formatter, "Logger.Formatter", flagConf.Logger.Formatter, "Logs formatter. One of ['text', 'json']")

	return f
}

func normalize(name string) string {
	from := []string{"-", "_"}
	to := "."
	for _, sep := range from {
		name = strings.Replace(name, sep, to, -1)
	}
	return strings.ToLower(name)
}

// NormalizeFlags allows for flags to be case and separator insensitive.
// Use it by passing it to cobra.Command.SetGlobalNormalizationFunc
func NormalizeFlags(f *pflag.FlagSet, name string) pflag.NormalizedName {
	lookup := map[string]string{"help": "help", normalize(name): name}

	f.VisitAll(func(f *pflag.Flag) {
		lookup[normalize(f.Name)] = f.Name
	})

	return pflag.NormalizedName(lookup[normalize(name)])
}
