package version

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toybox-rs/tbops/version"
)

// Cmd represents the "version" command
var Cmd = &cobra.Command{
	Use: "version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
