// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package add

import (
	"github.com/cclnet/ucsctl/pkg/ucs/client"
	"github.com/cclnet/ucsctl/pkg/ucs/dn"
	log "github.com/sirupsen/logrus"
)

// Options are the parameters for ensuring a VLAN is present on a vNIC
// template.
type Options struct {
	// VlanName is the name of the VLAN to associate with the template
	VlanName string

	// TemplateName is the name of the vNIC template to modify
	TemplateName string

	// Org is the organization hierarchy containing the template, root
	// first
	Org []string

	// PolicyOwner is the entity that owns the policy.  It is accepted for
	// compatibility and is not yet consulted by the write.
	PolicyOwner string
}

// Result is the outcome mapping reported to the caller.  LoggedIn and
// LoggedOut appear only once the corresponding step has succeeded; Changed is
// always reported.
type Result struct {
	LoggedIn  bool `json:"logged_in,omitempty"`
	LoggedOut bool `json:"logged_out,omitempty"`
	Changed   bool `json:"changed"`
}

// Add ensures that the named VLAN is associated with the vNIC template.  The
// VLAN must already be defined on the Fabric Interconnects; if it is not,
// the run fails without mutating anything.  The session is closed on every
// exit path, including failures.
func Add(cli *client.Client, opts Options) (result Result, err error) {
	if err = cli.Login(); err != nil {
		return result, err
	}
	result.LoggedIn = true

	defer func() {
		lerr := cli.Logout()
		if lerr == nil {
			result.LoggedOut = true
			return
		}
		if err == nil {
			err = lerr
		} else {
			log.Errorf("Failed to log out of UCS Manager: %v", lerr)
		}
	}()

	templateDN := dn.VnicTemplate(opts.Org, opts.TemplateName)

	onTemplate, err := cli.HasVlanIf(templateDN, opts.VlanName)
	if err != nil {
		return
	}
	onFabric, err := cli.HasFabricVlan(opts.VlanName)
	if err != nil {
		return
	}

	// A VLAN that is missing from the Fabric Interconnects must never be
	// associated with a template.  The association cannot be removed
	// cleanly, and defining the VLAN afterwards bounces every vNIC
	// attached to the template.
	if !onFabric {
		err = &client.PreconditionError{Reason: "VLAN does not exist on UCS Fabric Interconnects"}
		return
	}

	if onTemplate {
		log.Infof("VLAN %s is already associated with vNIC template %s", opts.VlanName, templateDN)
		return
	}

	if err = cli.AddVlanIf(templateDN, opts.VlanName); err != nil {
		return
	}
	result.Changed = true
	log.Infof("Associated VLAN %s with vNIC template %s", opts.VlanName, templateDN)
	return
}
