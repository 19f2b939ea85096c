package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds tool-wide defaults that flags can override.
type Config struct {
	ManifestName string `mapstructure:"manifest_name"`
	TimeFormat   string `mapstructure:"time_format"`
	ExportFormat string `mapstructure:"export_format"`
}

// Load reads configuration using Viper. A missing config file is fine; the
// defaults below apply.
func Load() (*Config, error) {
	viper.SetConfigName("mbdb-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.mbdb")
	viper.AddConfigPath("/etc/mbdb")

	viper.SetDefault("manifest_name", "Manifest.mbdb")
	viper.SetDefault("time_format", "local")
	viper.SetDefault("export_format", "json")

	// Allow environment variables
	viper.SetEnvPrefix("MBDB")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
