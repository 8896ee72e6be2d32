package util

import (
	"path/filepath"
	"testing"

	"github.com/toybox-rs/tbops/config"
)

func TestMergeConfigFileWithFlags(t *testing.T) {
	flagConf := config.Config{}
	flagConf.Slurm.Partitions.Short = "m40-short"
	flagConf.Matrix.Algorithms = []string{"ppo2"}

	result, err := MergeConfigFileWithFlags("", flagConf)
	if err != nil {
		t.Fatal("unexpected error", err)
	}
	if result.Slurm.Partitions.Short != "m40-short" {
		t.Fatal("unexpected short partition")
	}
	if len(result.Matrix.Algorithms) != 1 || result.Matrix.Algorithms[0] != "ppo2" {
		t.Fatal("unexpected algorithms")
	}
	if result.Slurm.Partitions.Long != "titanx-long" {
		t.Fatal("expected long partition to keep its default")
	}

	// Flag values override file values.
	fileConf := config.DefaultConfig()
	fileConf.Slurm.Partitions.Short = "1080ti-short"
	fileConf.Slurm.Memory = "8GB"
	path := filepath.Join(t.TempDir(), "tbops.yaml")
	if err := config.ToYamlFile(fileConf, path); err != nil {
		t.Fatal("unexpected error", err)
	}

	result, err = MergeConfigFileWithFlags(path, flagConf)
	if err != nil {
		t.Fatal("unexpected error", err)
	}
	if result.Slurm.Partitions.Short != "m40-short" {
		t.Fatal("expected flag value to override file value")
	}
	if result.Slurm.Memory != "8GB" {
		t.Fatal("expected file value to override default")
	}
}
