package main

import (
	"fmt"

	"github.com/spf13/viper"
)

// config holds the settings that do not fit on the fixed command line.
type config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// loadConfig reads MINIGREP_* environment variables.
func loadConfig() (config, error) {
	v := viper.New()
	v.SetEnvPrefix("minigrep")
	v.AutomaticEnv()
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg, nil
}
