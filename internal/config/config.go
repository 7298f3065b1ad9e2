// Package config manages gradexl configuration from files and environment.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the export configuration.
type Config struct {
	Title      string   `mapstructure:"title"`
	OutputDir  string   `mapstructure:"output_dir"`
	StagingDir string   `mapstructure:"staging_dir"`
	Periods    []string `mapstructure:"periods"`
	Color      bool     `mapstructure:"color"`
	Verbose    bool     `mapstructure:"verbose"`
}

// Load reads the configuration from path, or from gradexl.yaml in the working
// directory or the user config directory when path is empty, and applies
// GRADEXL_* environment overrides. A missing default config file is not an
// error.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("title", "Grades")
	v.SetDefault("output_dir", ".")
	v.SetDefault("staging_dir", "")
	v.SetDefault("periods", []string{})
	v.SetDefault("color", true)
	v.SetDefault("verbose", false)

	// Environment variable overrides
	v.SetEnvPrefix("GRADEXL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("gradexl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir := configDir(); dir != "" {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gradexl")
}
