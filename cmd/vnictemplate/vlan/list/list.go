// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package list

import (
	"fmt"

	"github.com/cclnet/ucsctl/cmd/constants"
	"github.com/cclnet/ucsctl/pkg/cmdutil"
	"github.com/cclnet/ucsctl/pkg/commands/vnictemplate/vlan/ls"
	"github.com/cclnet/ucsctl/pkg/config/types"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

const (
	CommandName = "list"
	Alias       = "ls"
	helpShort   = "List the VLANs on a vNIC template"
	helpLong    = `
List the VLANs that are associated with a vNIC template in UCS Manager`
	helpExample = `
ucsctl vnic-template vlan list --template data-A --org root --org ccl --hostname ucsm.example.com --username admin
`
)

var config types.Config
var configPath string
var password string
var templateName string
var org []string

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     CommandName,
		Aliases: []string{Alias},
		Short:   helpShort,
		Long:    helpLong,
		Args:    cobra.MatchAll(cobra.ExactArgs(0), cobra.OnlyValidArgs),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return RunCmd(cmd)
	}
	cmd.Example = helpExample
	cmdutil.SilenceUsage(cmd)

	cmd.Flags().StringVarP(&templateName, constants.FlagTemplate, constants.FlagTemplateShort, "", constants.FlagTemplateHelp)
	cmd.Flags().StringArrayVarP(&org, constants.FlagOrg, constants.FlagOrgShort, nil, constants.FlagOrgHelp)
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

// RunCmd runs the "ucsctl vnic-template vlan list" command
func RunCmd(cmd *cobra.Command) error {
	conf, err := cmdutil.GetFullConfig(&config, configPath)
	if err != nil {
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

	vlanIfs, err := ls.List(cli, ls.Options{
		TemplateName: templateName,
		Org:          org,
	})
	if err != nil {
		return err
	}

	table := uitable.New()

	table.AddRow("NAME", "DEFAULT NET", "DN")
	for _, vlanIf := range vlanIfs {
		table.AddRow(vlanIf.Name, vlanIf.DefaultNet, vlanIf.Dn)
	}
	fmt.Println(table)

	return nil
}
