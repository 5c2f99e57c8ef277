// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package info

import (
	"fmt"

	"github.com/cclnet/ucsctl/cmd/constants"
	"github.com/cclnet/ucsctl/pkg/cmdutil"
	"github.com/cclnet/ucsctl/pkg/commands/info"
	"github.com/cclnet/ucsctl/pkg/config/types"
	pkgconst "github.com/cclnet/ucsctl/pkg/constants"
	"github.com/spf13/cobra"
)

const (
	CommandName = "info"
	helpShort   = "Display information about a UCS Manager endpoint"
	helpLong    = `Display the UCS Manager version of an endpoint and whether that version is supported by this tool.`
	helpExample = `
ucsctl info --hostname ucsm.example.com --username admin
`
)

var config types.Config
var configPath string
var password string

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   CommandName,
		Short: helpShort,
		Long:  helpLong,
		Args:  cobra.MatchAll(cobra.ExactArgs(0), cobra.OnlyValidArgs),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return RunCmd(cmd)
	}
	cmd.Example = helpExample
	cmdutil.SilenceUsage(cmd)

	cmd.Flags().StringVarP(&config.Hostname, constants.FlagHostname, constants.FlagHostnameShort, "", constants.FlagHostnameHelp)
	cmd.Flags().StringVarP(&config.Username, constants.FlagUsername, constants.FlagUsernameShort, "", constants.FlagUsernameHelp)
	cmd.Flags().StringVar(&password, constants.FlagPassword, "", constants.FlagPasswordHelp)
	cmd.Flags().StringVarP(&configPath, constants.FlagConfig, constants.FlagConfigShort, "", constants.FlagConfigHelp)
	cmd.Flags().BoolVarP(&config.InsecureSkipTLSVerify, constants.FlagInsecure, constants.FlagInsecureShort, false, constants.FlagInsecureHelp)
	cmd.Flags().StringVar(&config.CAFile, constants.FlagCAFile, "", constants.FlagCAFileHelp)

	return cmd
}

// RunCmd runs the "ucsctl info" command
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

	i, err := info.Get(cli)
	if err != nil {
		return err
	}

	fmt.Printf("Endpoint: %s\n", i.Endpoint)
	fmt.Printf("UCS Manager version: %s\n", i.Version)
	if i.Supported {
		fmt.Println("The endpoint version is supported.")
	} else {
		fmt.Printf("The endpoint version is older than the oldest supported release %s.\n", pkgconst.MinUCSManagerVersion)
	}
	return nil
}
