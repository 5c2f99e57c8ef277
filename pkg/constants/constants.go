// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package constants

const (
	// EnvDefaults is the environment variable that overrides the location
	// of the global defaults file
	EnvDefaults = "UCSCTL_DEFAULTS"

	// EnvPassword is the environment variable that supplies the UCS Manager
	// password when the password flag is not set
	EnvPassword = "UCSCTL_PASSWORD"

	// UserConfigDir is the directory under the home directory that holds
	// per-user ucsctl configuration
	UserConfigDir = ".ucsctl"

	// UserConfigDefaults is the per-user defaults file
	UserConfigDefaults = "defaults.yaml"

	// DefaultPolicyOwner is the policy owner used when none is configured
	DefaultPolicyOwner = "local"

	// MinUCSManagerVersion is the oldest UCS Manager release that ucsctl is
	// known to work with.  Older endpoints generate a warning at login.
	MinUCSManagerVersion = "3.1"
)
