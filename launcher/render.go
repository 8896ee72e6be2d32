package launcher

import (
	"bytes"
	"path/filepath"
	"text/template"

	"github.com/kballard/go-shellquote"
	"github.com/toybox-rs/tbops/config"
)

// Render renders the scheduler submission file for a job.
func (l *Launcher) Render(job Job) (string, error) {
	tpl, err := template.New(job.FileName()).Parse(l.Template)
	if err != nil {
		return "", err
	}

	memory, err := l.Conf.Slurm.MemoryMB()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = tpl.Execute(&buf, map[string]interface{}{
		"JobID":       job.ID(),
		"OutputLog":   filepath.Join(l.Conf.Slurm.LogDir, job.ID()+".out"),
		"ErrorLog":    filepath.Join(l.Conf.Slurm.LogDir, job.ID()+".err"),
		"MemoryMB":    int(memory),
		"LibraryPath": l.Conf.Trainer.LibraryPath,
		"Command":     TrainingCommand(job, l.Conf.Trainer),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// TrainingCommand builds the shell command line that starts the training
// run for a job. Arguments are quoted so environment names survive the
// shell intact.
func TrainingCommand(job Job, conf config.Trainer) string {
	args := append([]string{}, conf.Entrypoint...)
	if job.AlternateBackend {
		args = append(args, conf.AlternateBackendFlag)
	}
	args = append(args,
		"--alg="+job.Algorithm,
		"--env="+job.Environment,
		"--num_timesteps="+job.Timesteps,
		"--save_path="+job.ModelPath,
	)
	return shellquote.Join(args...)
}
