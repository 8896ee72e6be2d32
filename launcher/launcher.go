// Package launcher expands a training matrix into scheduler job files and
// submits them to an HPC scheduler such as SLURM.
package launcher

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/rs/xid"
	"github.com/toybox-rs/tbops/config"
	"github.com/toybox-rs/tbops/logger"
	"github.com/toybox-rs/tbops/util/fsutil"
	"golang.org/x/time/rate"
)

// Launcher renders one job file per matrix combination and submits each to
// an external scheduler via a command such as "sbatch".
type Launcher struct {
	Name       string
	SubmitCmd  string
	SubmitArgs func(job Job, conf config.Slurm) []string
	Template   string
	ExtractID  func(string) string
	Conf       config.Config
	Log        *logger.Logger
	// DryRun renders and writes job files but skips submission.
	DryRun bool

	limit *rate.Limiter
}

// Run generates and submits the full job matrix. Submission is strictly
// sequential; a failed submission aborts the run. The launcher keeps no
// record of submitted jobs and never retries.
func (l *Launcher) Run(ctx context.Context) error {
	for _, dir := range []string{l.Conf.Slurm.JobDir, l.Conf.Slurm.LogDir, l.Conf.Trainer.ModelDir} {
		if err := fsutil.EnsureDir(dir); err != nil {
			return err
		}
	}

	// Pace submissions so a matrix expansion doesn't hit the scheduler
	// with a burst of near-simultaneous requests.
	l.limit = rate.NewLimiter(rate.Every(time.Duration(l.Conf.Slurm.SubmitRate)), 1)

	run := xid.New().String()
	log := l.Log.WithFields("run", run)

	jobs := Enumerate(l.Conf)
	for _, job := range jobs {
		if err := l.submit(ctx, job, log); err != nil {
			return err
		}
	}

	log.Info("Matrix complete", "jobs", len(jobs))
	return nil
}

func (l *Launcher) submit(ctx context.Context, job Job, log *logger.Logger) error {
	if err := l.limit.Wait(ctx); err != nil {
		return err
	}

	path := filepath.Join(l.Conf.Slurm.JobDir, job.FileName())
	log.Info("Rendering job", "job", job.ID(), "partition", job.Partition, "path", path)

	content, err := l.Render(job)
	if err != nil {
		return fmt.Errorf("rendering %s: %v", job.ID(), err)
	}
	log.Info("Job file", "job", job.ID(), "content", content)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %v", path, err)
	}

	if l.DryRun {
		log.Info("Dry run, skipping submission", "job", job.ID())
		return nil
	}

	args := append(l.SubmitArgs(job, l.Conf.Slurm), path)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd := exec.Command(l.SubmitCmd, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("submitting %s to %s: %v: %s", job.ID(), l.Name, err, stderr.String())
	}

	backendID := l.ExtractID(stdout.String())
	log.Info("Submitted job", "job", job.ID(), l.Name+"_id", backendID)
	return nil
}
