package util

import (
	"github.com/imdario/mergo"
	"github.com/toybox-rs/tbops/config"
)

// MergeConfigFileWithFlags is used by commands that can take both a config
// file and flags that set config values. Flag values override values in the
// provided config file, which in turn override the defaults.
func MergeConfigFileWithFlags(file string, flagConf config.Config) (config.Config, error) {
	conf := config.DefaultConfig()
	if err := config.ParseFile(file, &conf); err != nil {
		return conf, err
	}

	// file vals <- cli val
	if err := mergo.MergeWithOverwrite(&conf, flagConf); err != nil {
		return conf, err
	}

	return conf, nil
}
