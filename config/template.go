package config

// The following variables are available for use in the template:
//
// JobID          job identifier, <environment>.<algorithm>.<timesteps>
// OutputLog      path the scheduler writes stdout to
// ErrorLog       path the scheduler writes stderr to
// MemoryMB       memory reservation in megabytes
// LibraryPath    path appended to LD_LIBRARY_PATH
// Command        the full training command line

// See https://golang.org/pkg/text/template for more information

var slurmTemplate = `#!/bin/bash
#SBATCH --job-name={{.JobID}}
#SBATCH --output={{.OutputLog}}
#SBATCH --error={{.ErrorLog}}
{{if ne .MemoryMB 0 -}}
{{printf "#SBATCH --mem=%d" .MemoryMB}}
{{- end}}

export LD_LIBRARY_PATH="$LD_LIBRARY_PATH:{{.LibraryPath}}"

{{.Command}}
`
