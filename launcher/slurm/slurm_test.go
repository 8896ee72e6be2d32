package slurm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/toybox-rs/tbops/config"
	"github.com/toybox-rs/tbops/launcher"
)

func TestExtractID(t *testing.T) {
	assert.Equal(t, "42", extractID("Submitted batch job 42\n"))
}

func TestSubmitArgs(t *testing.T) {
	conf := config.DefaultConfig().Slurm
	job := launcher.Job{Partition: "titanx-short"}

	assert.Equal(t, []string{"-p", "titanx-short", "--gres=gpu:1"}, submitArgs(job, conf))

	conf.Gpus = 0
	assert.Equal(t, []string{"-p", "titanx-short"}, submitArgs(job, conf))
}
