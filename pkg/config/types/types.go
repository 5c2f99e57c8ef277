// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package types

// Config holds the UCS Manager connection settings for one invocation.  The
// password is deliberately not part of this structure so that it can never be
// read from or written to a defaults file.
type Config struct {
	Hostname              string `yaml:"hostname,omitempty"`
	Username              string `yaml:"username,omitempty"`
	PolicyOwner           string `yaml:"policyOwner,omitempty"`
	CAFile                string `yaml:"caFile,omitempty"`
	InsecureSkipTLSVerify bool   `yaml:"insecureSkipTLSVerify,omitempty"`
}

// MergeConfig merges an override configuration into a default configuration.
// A new structure is returned.  Neither input is modified.
func MergeConfig(def *Config, ovr *Config) Config {
	ret := Config{}
	if def != nil {
		ret = *def
	}
	if ovr == nil {
		return ret
	}
	if ovr.Hostname != "" {
		ret.Hostname = ovr.Hostname
	}
	if ovr.Username != "" {
		ret.Username = ovr.Username
	}
	if ovr.PolicyOwner != "" {
		ret.PolicyOwner = ovr.PolicyOwner
	}
	if ovr.CAFile != "" {
		ret.CAFile = ovr.CAFile
	}
	if ovr.InsecureSkipTLSVerify {
		ret.InsecureSkipTLSVerify = true
	}
	return ret
}
