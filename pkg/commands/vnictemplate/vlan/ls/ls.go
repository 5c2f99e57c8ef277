// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package ls

import (
	"fmt"

	"github.com/cclnet/ucsctl/pkg/ucs/client"
	"github.com/cclnet/ucsctl/pkg/ucs/dn"
	"github.com/cclnet/ucsctl/pkg/ucs/mo"
	log "github.com/sirupsen/logrus"
)

// Options are the parameters for listing the VLANs on a vNIC template.
type Options struct {
	// TemplateName is the name of the vNIC template
	TemplateName string

	// Org is the organization hierarchy containing the template, root
	// first
	Org []string
}

// List returns the VLAN associations that exist on a vNIC template.
func List(cli *client.Client, opts Options) (vlanIfs []mo.VnicEtherIf, err error) {
	if err = cli.Login(); err != nil {
		return
	}

	defer func() {
		if lerr := cli.Logout(); lerr != nil {
			if err == nil {
				err = lerr
			} else {
				log.Errorf("Failed to log out of UCS Manager: %v", lerr)
			}
		}
	}()

	templateDN := dn.VnicTemplate(opts.Org, opts.TemplateName)

	exists, err := cli.ResolveDn(templateDN)
	if err != nil {
		return
	}
	if !exists {
		err = fmt.Errorf("vNIC template %s was not found", templateDN)
		return
	}

	vlanIfs, err = cli.ListVlanIfs(templateDN)
	return
}
