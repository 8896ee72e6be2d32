// Package cmd contains the tbops CLI commands.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/toybox-rs/tbops/cmd/examples"
	"github.com/toybox-rs/tbops/cmd/lint"
	"github.com/toybox-rs/tbops/cmd/submit"
	"github.com/toybox-rs/tbops/cmd/version"
)

// RootCmd represents the root command
var RootCmd = &cobra.Command{
	Use:           "tbops",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	RootCmd.AddCommand(completionCmd)
	RootCmd.AddCommand(examples.Cmd)
	RootCmd.AddCommand(genMarkdownCmd)
	RootCmd.AddCommand(lint.NewCommand())
	RootCmd.AddCommand(submit.NewCommand())
	RootCmd.AddCommand(version.Cmd)
}
