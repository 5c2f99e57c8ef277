// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package config

import (
	"testing"

	"github.com/cclnet/ucsctl/pkg/config/types"
	"github.com/stretchr/testify/assert"
)

const confYaml = `
hostname: ucsm.example.com
username: admin
insecureSkipTLSVerify: true
`

func TestParseConfig(t *testing.T) {
	conf, err := ParseConfig(confYaml)
	assert.NoError(t, err)
	assert.Equal(t, "ucsm.example.com", conf.Hostname)
	assert.Equal(t, "admin", conf.Username)
	assert.Equal(t, "", conf.PolicyOwner)
	assert.True(t, conf.InsecureSkipTLSVerify)

	_, err = ParseConfig("hostname: [")
	assert.Error(t, err)
}

func TestMergeConfig(t *testing.T) {
	def := &types.Config{
		Hostname:    "ucsm.example.com",
		Username:    "admin",
		PolicyOwner: "local",
	}
	ovr := &types.Config{
		Hostname:              "ucsm2.example.com",
		InsecureSkipTLSVerify: true,
	}

	merged := types.MergeConfig(def, ovr)
	assert.Equal(t, "ucsm2.example.com", merged.Hostname)
	assert.Equal(t, "admin", merged.Username)
	assert.Equal(t, "local", merged.PolicyOwner)
	assert.True(t, merged.InsecureSkipTLSVerify)

	// neither input is modified
	assert.Equal(t, "ucsm.example.com", def.Hostname)
	assert.False(t, def.InsecureSkipTLSVerify)

	merged = types.MergeConfig(nil, ovr)
	assert.Equal(t, "ucsm2.example.com", merged.Hostname)
	assert.Equal(t, "", merged.Username)

	merged = types.MergeConfig(def, nil)
	assert.Equal(t, "ucsm.example.com", merged.Hostname)
}
