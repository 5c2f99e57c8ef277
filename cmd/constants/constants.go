// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package constants

const (
	FlagHostname      = "hostname"
	FlagHostnameShort = "H"
	FlagHostnameHelp  = "The hostname or IP address of UCS Manager"

	FlagUsername      = "username"
	FlagUsernameShort = "u"
	FlagUsernameHelp  = "The username credential for UCS Manager"

	FlagPassword     = "password"
	FlagPasswordHelp = "The password credential for UCS Manager. If this value is not provided, the UCSCTL_PASSWORD environment variable is used. The password is never logged"

	FlagConfig      = "config"
	FlagConfigShort = "c"
	FlagConfigHelp  = "The path to a configuration file with connection defaults. If this value is not provided, ~/.ucsctl/defaults.yaml is used when present"

	FlagOrg      = "org"
	FlagOrgShort = "o"
	FlagOrgHelp  = "The organization hierarchy containing the vNIC template, root first. For root/ccl pass --org root --org ccl"

	FlagTemplate      = "template"
	FlagTemplateShort = "t"
	FlagTemplateHelp  = "The name of the vNIC template"

	FlagPolicyOwner     = "policy-owner"
	FlagPolicyOwnerHelp = "The entity that owns the policy. Valid values are \"local\", \"policy\", and \"pending-policy\""

	FlagInsecure      = "insecure"
	FlagInsecureShort = "k"
	FlagInsecureHelp  = "Skip TLS certificate verification of the UCS Manager endpoint"

	FlagCAFile     = "ca-file"
	FlagCAFileHelp = "The path to a PEM encoded CA certificate used to verify the UCS Manager endpoint"
)
