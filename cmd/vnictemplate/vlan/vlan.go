// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package vlan

import (
	"github.com/cclnet/ucsctl/cmd/common"
	"github.com/cclnet/ucsctl/cmd/vnictemplate/vlan/add"
	"github.com/cclnet/ucsctl/cmd/vnictemplate/vlan/list"
	"github.com/spf13/cobra"
)

const (
	CommandName = "vlan"
	helpShort   = "Manage the VLANs on a vNIC template"
	helpLong    = `Manage the VLANs that are associated with a vNIC template in UCS Manager.`
	helpExample = `
ucsctl vnic-template vlan <subcommand>
`
)

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       CommandName,
		Short:     helpShort,
		Long:      helpLong,
		Args:      common.ArgsCheck,
		ValidArgs: []string{add.CommandName, list.CommandName},
	}
	cmd.Example = helpExample

	cmd.AddCommand(add.NewCmd())
	cmd.AddCommand(list.NewCmd())
	return cmd
}
