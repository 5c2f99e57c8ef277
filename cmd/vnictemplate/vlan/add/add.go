// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package add

import (
	"encoding/json"
	"fmt"

	"github.com/cclnet/ucsctl/cmd/constants"
	"github.com/cclnet/ucsctl/cmd/flags"
	"github.com/cclnet/ucsctl/pkg/cmdutil"
	"github.com/cclnet/ucsctl/pkg/commands/vnictemplate/vlan/add"
	"github.com/cclnet/ucsctl/pkg/config/types"
	"github.com/spf13/cobra"
)

const (
	CommandName = "add"
	helpShort   = "Ensure a VLAN is present on a vNIC template"
	helpLong    = `Ensure a named VLAN is associated with a vNIC template in UCS Manager. The
VLAN must already be defined on the Fabric Interconnects; associating an
undefined VLAN is refused because the association could not be removed
cleanly afterwards. The command prints a JSON result mapping on completion.`
	helpExample = `
ucsctl vnic-template vlan add test-vlan_666 --template data-A --org root --org company --org test --hostname ucsm.example.com --username admin
`
)

var config types.Config
var configPath string
var password string
var templateName string
var org []string

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   CommandName + " VLAN_NAME",
		Short: helpShort,
		Long:  helpLong,
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return RunCmd(cmd, args[0])
	}
	cmd.Example = helpExample
	cmdutil.SilenceUsage(cmd)

	cmd.Flags().StringVarP(&templateName, constants.FlagTemplate, constants.FlagTemplateShort, "", constants.FlagTemplateHelp)
	cmd.Flags().StringArrayVarP(&org, constants.FlagOrg, constants.FlagOrgShort, nil, constants.FlagOrgHelp)
	cmd.Flags().StringVar(&config.PolicyOwner, constants.FlagPolicyOwner, "", constants.FlagPolicyOwnerHelp)
	cmd.Flags().StringVarP(&config.Hostname, constants.FlagHostname, constants.FlagHostnameShort, "", constants.FlagHostnameHelp)
	cmd.Flags().StringVarP(&config.Username, constants.FlagUsername, constants.FlagUsernameShort, "", constants.FlagUsernameHelp)
	cmd.Flags().StringVar(&password, constants.FlagPassword, "", constants.FlagPasswordHelp)
	cmd.Flags().StringVarP(&configPath, constants.FlagConfig, constants.FlagConfigShort, "", constants.FlagConfigHelp)
	cmd.Flags().BoolVarP(&config.InsecureSkipTLSVerify, constants.FlagInsecure, constants.FlagInsecureShort, false, constants.FlagInsecureHelp)
	cmd.Flags().StringVar(&config.CAFile, constants.FlagCAFile, "", constants.FlagCAFileHelp)
	cmd.MarkFlagRequired(constants.FlagTemplate)
	cmd.MarkFlagRequired(constants.FlagOrg)

	return cmd
}

// RunCmd runs the "ucsctl vnic-template vlan add" command
func RunCmd(cmd *cobra.Command, vlanName string) error {
	conf, err := cmdutil.GetFullConfig(&config, configPath)
	if err != nil {
		return err
	}
	if err := flags.ValidatePolicyOwner(conf.PolicyOwner); err != nil {
		return err
	}
	pw, err := cmdutil.GetPassword(password)
	if err != nil {
		return err
	}
	cli, err := cmdutil.NewUCSClient(conf, pw)
	if err != nil {
		return err
	}

	result, err := add.Add(cli, add.Options{
		VlanName:     vlanName,
		TemplateName: templateName,
		Org:          org,
		PolicyOwner:  conf.PolicyOwner,
	})

	// The result mapping is reported on success and on failure so that the
	// calling automation always sees the changed state.
	out, merr := json.Marshal(result)
	if merr == nil {
		fmt.Println(string(out))
	}

	return err
}
