package main

import (
	"os"

	"github.com/toybox-rs/tbops/cmd"
	"github.com/toybox-rs/tbops/logger"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		logger.PrintSimpleError(err)
		os.Exit(1)
	}
}
