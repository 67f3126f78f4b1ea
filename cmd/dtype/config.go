// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	envPrefix = "DTYPE"

	cfgKeyCatalogPath   = "catalog_path"
	cfgKeyLogLevel      = "log_level"
	cfgKeyLogFormat     = "log_format"
	cfgKeyLooseMatching = "loose_matching"

	defaultConfigDir   = ".dtype"
	defaultCatalogPath = "dtype.db"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
)

// loadConfig reads config.yaml from configDir using Viper. Environment
// variables DTYPE_<KEY> override file values. A missing file is not an error.
// A relative catalog_path is resolved against configDir.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyCatalogPath, defaultCatalogPath)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogFormat, defaultLogFormat)
	v.SetDefault(cfgKeyLooseMatching, false)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	path := v.GetString(cfgKeyCatalogPath)
	if path != ":memory:" && !filepath.IsAbs(path) {
		v.Set(cfgKeyCatalogPath, filepath.Join(configDir, path))
	}

	return v, nil
}

// ensureConfigDir creates the configuration directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}
