// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the configuration of the fortune web service.
package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	// DefaultConfigName is the name of the config file searched for in the
	// working directory when no config file is given.
	DefaultConfigName = "Config"

	// DefaultAddress is the default listen address.
	DefaultAddress = ":8000"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"

	// EnvPrefix is the prefix of environment variables that override config
	// file values, e.g. FORTUNE_DATA_PATH.
	EnvPrefix = "FORTUNE"
)

// ErrNoDataPath indicates that the data path was not configured.
var ErrNoDataPath = errors.New("data_path is not set")

// Config is the web service configuration.
type Config struct {
	// DataPath is the directory holding the fortune files.
	DataPath string `mapstructure:"data_path"`

	// Address is the address the server listens on.
	Address string `mapstructure:"address"`

	// LogLevel is the minimum level of log messages.
	LogLevel string `mapstructure:"log_level"`
}

// Load reads the configuration from configPath, or from Config.toml in the
// working directory if configPath is empty. A missing Config.toml is not an
// error as long as the data path is set in the environment.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("toml")
	}

	v.SetDefault("data_path", "")
	v.SetDefault("address", DefaultAddress)
	v.SetDefault("log_level", DefaultLogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if cfg.DataPath == "" {
		return nil, ErrNoDataPath
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Level returns the configured log level.
func (c *Config) Level() (zerolog.Level, error) {
	l, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}
