// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package vnictemplate

import (
	"github.com/cclnet/ucsctl/cmd/common"
	"github.com/cclnet/ucsctl/cmd/vnictemplate/vlan"
	"github.com/spf13/cobra"
)

const (
	CommandName = "vnic-template"
	helpShort   = "Manage UCS vNIC templates"
	helpLong    = `Manage the configuration of vNIC templates in UCS Manager.`
	helpExample = `
ucsctl vnic-template <subcommand>
`
)

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       CommandName,
		Short:     helpShort,
		Long:      helpLong,
		Args:      common.ArgsCheck,
		ValidArgs: []string{vlan.CommandName},
	}
	cmd.Example = helpExample

	cmd.AddCommand(vlan.NewCmd())
	return cmd
}
