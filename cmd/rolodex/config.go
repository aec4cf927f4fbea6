// Config loading for the rolodex CLI.
package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

const (
	configName = ".rolodex"
	configType = "yaml"

	cfgKeyBackend = "backend"
)

// loadConfig reads the config file with Viper. When path is empty,
// .rolodex.yaml is searched in the working directory and $HOME; a
// missing config file is not an error and yields the defaults.
func loadConfig(path string) (types.Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendMemory)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
		// Missing config file falls back to defaults.
	}

	cfg := types.Config{
		Backend: v.GetString(cfgKeyBackend),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}
