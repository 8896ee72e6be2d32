// Package examples contains the "tbops examples" command.
package examples

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/toybox-rs/tbops/config"
)

// Cmd represents the examples command
var Cmd = &cobra.Command{
	Use:     "examples [name]",
	Aliases: []string{"example"},
	Short:   "Print example configuration.",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := config.DefaultConfig()

		examples := map[string]func() (string, error){
			"config": func() (string, error) {
				b, err := config.ToYaml(conf)
				return string(b), err
			},
			"template": func() (string, error) {
				return conf.Slurm.Template, nil
			},
		}

		// Print a list of example names and exit
		if len(args) == 0 || args[0] == "list" {
			names := make([]string, 0, len(examples))
			for name := range examples {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		}

		get, ok := examples[args[0]]
		if !ok {
			return fmt.Errorf("no example by the name of %s", args[0])
		}
		text, err := get()
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}
