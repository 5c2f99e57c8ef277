// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cclnet/ucsctl/pkg/config/types"
	"github.com/cclnet/ucsctl/pkg/constants"
	"gopkg.in/yaml.v3"
)

// ParseConfig takes a yaml-encoded string and parses it
// into a Config structure.
func ParseConfig(in string) (*types.Config, error) {
	ret := &types.Config{}
	err := yaml.Unmarshal([]byte(in), ret)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// ParseConfigFile takes the path to a file, reads the contents,
// and parses it into a Config structure.
func ParseConfigFile(configPath string) (*types.Config, error) {
	configBytes, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	conf, err := ParseConfig(string(configBytes))
	if err != nil {
		return nil, fmt.Errorf("could not parse config file %s: %s", configPath, err.Error())
	}
	return conf, nil
}

// GetDefaultConfig returns the global default config.  It starts with a
// hard-coded set of defaults.  It then attempts to read a per-user defaults
// file.  If such a file is found, the entries in that file are merged into
// the hard-coded defaults.
func GetDefaultConfig() (*types.Config, error) {
	defaultConfig := types.Config{
		PolicyOwner: constants.DefaultPolicyOwner,
	}

	defaultsPath := os.Getenv(constants.EnvDefaults)
	if defaultsPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return &defaultConfig, nil
		}
		defaultsPath = filepath.Join(homeDir, constants.UserConfigDir, constants.UserConfigDefaults)
	}

	if _, err := os.Stat(defaultsPath); err != nil {
		return &defaultConfig, nil
	}

	overrides, err := ParseConfigFile(defaultsPath)
	if err != nil {
		return nil, err
	}

	merged := types.MergeConfig(&defaultConfig, overrides)
	return &merged, nil
}
