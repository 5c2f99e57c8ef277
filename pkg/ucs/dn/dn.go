// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

// Package dn builds distinguished names for objects in the UCS Manager
// object tree.  No validation is performed; malformed segments surface as
// errors from UCS Manager itself.
package dn

import "strings"

const (
	orgPrefix       = "org-"
	vnicTemplPrefix = "lan-conn-templ-"
	vlanIfPrefix    = "if-"
)

// VnicTemplate builds the distinguished name of a vNIC template from its
// organization hierarchy, root first, and the template name.
// VnicTemplate([]string{"root", "ccl"}, "data-A") returns
// "org-root/org-ccl/lan-conn-templ-data-A".
func VnicTemplate(orgs []string, template string) string {
	var b strings.Builder
	for _, org := range orgs {
		b.WriteString(orgPrefix)
		b.WriteString(org)
		b.WriteString("/")
	}
	b.WriteString(vnicTemplPrefix)
	b.WriteString(template)
	return b.String()
}

// VlanIf builds the distinguished name of the VLAN association object that
// attaches the named VLAN to the vNIC template at templateDN.
func VlanIf(templateDN string, vlan string) string {
	return templateDN + "/" + vlanIfPrefix + vlan
}
