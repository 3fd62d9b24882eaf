package main

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rawbytedev/stackvec/internal/bench"
)

const (
	configFileName = "stackbench"
	configFileType = "yaml"
	envPrefix      = "STACKBENCH"

	cfgKeyIterations = "iterations"
	cfgKeySizes      = "sizes"
	cfgKeyKinds      = "kinds"
	cfgKeyFormat     = "format"
)

// loadConfig builds a viper instance layered as flags > env > config file >
// defaults. A missing default config file is not an error; a missing file
// named with --config is.
func loadConfig(path string, flags *pflag.FlagSet) (*viper.Viper, error) {
	def := bench.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyIterations, def.Iterations)
	v.SetDefault(cfgKeySizes, def.Sizes)
	v.SetDefault(cfgKeyKinds, def.Kinds)
	v.SetDefault(cfgKeyFormat, bench.FormatText)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

func benchConfig(v *viper.Viper) bench.Config {
	return bench.Config{
		Iterations: v.GetInt(cfgKeyIterations),
		Sizes:      v.GetIntSlice(cfgKeySizes),
		Kinds:      v.GetStringSlice(cfgKeyKinds),
	}
}
