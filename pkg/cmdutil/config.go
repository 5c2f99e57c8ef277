// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package cmdutil

import (
	"fmt"
	"os"

	"github.com/cclnet/ucsctl/pkg/config"
	"github.com/cclnet/ucsctl/pkg/config/types"
	"github.com/cclnet/ucsctl/pkg/constants"
	"github.com/cclnet/ucsctl/pkg/ucs/client"
)

// GetFullConfig resolves the connection configuration for a command.  Flag
// values take precedence over the configuration file, which takes precedence
// over the hard-coded defaults.
func GetFullConfig(flagConfig *types.Config, configPath string) (*types.Config, error) {
	var def *types.Config
	var err error

	// Read the config file, if it was specified.  Otherwise fall back to
	// the global defaults.
	if configPath != "" {
		def, err = config.ParseConfigFile(configPath)
	} else {
		def, err = config.GetDefaultConfig()
	}
	if err != nil {
		return nil, err
	}

	merged := types.MergeConfig(def, flagConfig)
	if merged.PolicyOwner == "" {
		merged.PolicyOwner = constants.DefaultPolicyOwner
	}

	if merged.Hostname == "" {
		return nil, fmt.Errorf("a UCS Manager hostname is required.  Pass --hostname or set it in the defaults file")
	}
	if merged.Username == "" {
		return nil, fmt.Errorf("a UCS Manager username is required.  Pass --username or set it in the defaults file")
	}

	return &merged, nil
}

// GetPassword returns the UCS Manager password from the flag value or the
// environment.  The password is required and is never logged.
func GetPassword(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if pw := os.Getenv(constants.EnvPassword); pw != "" {
		return pw, nil
	}
	return "", fmt.Errorf("a UCS Manager password is required.  Pass --password or set %s", constants.EnvPassword)
}

// NewUCSClient creates a UCS Manager XML API client from a resolved
// connection configuration.
func NewUCSClient(conf *types.Config, password string) (*client.Client, error) {
	ca := ""
	if conf.CAFile != "" {
		caBytes, err := os.ReadFile(conf.CAFile)
		if err != nil {
			return nil, fmt.Errorf("could not read CA file %s: %s", conf.CAFile, err.Error())
		}
		ca = string(caBytes)
	}

	return client.NewClient(client.Options{
		Endpoint: conf.Hostname,
		Credentials: client.Credentials{
			Username: conf.Username,
			Password: password,
		},
		CA:                    ca,
		InsecureSkipTLSVerify: conf.InsecureSkipTLSVerify,
	}), nil
}
