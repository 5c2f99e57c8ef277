// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package add

import (
	"errors"
	"testing"

	"github.com/cclnet/ucsctl/pkg/ucs/client"
	"github.com/cclnet/ucsctl/pkg/ucs/ucstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const templateDN = "org-root/org-company/org-test/lan-conn-templ-data-A"

func newTestClient(s *ucstest.Server) *client.Client {
	return client.NewClient(client.Options{
		Endpoint: s.URL,
		Credentials: client.Credentials{
			Username: ucstest.Username,
			Password: ucstest.Password,
		},
	})
}

func testOptions() Options {
	return Options{
		VlanName:     "test-vlan_666",
		TemplateName: "data-A",
		Org:          []string{"root", "company", "test"},
		PolicyOwner:  "local",
	}
}

// The VLAN exists on the Fabric Interconnects but not on the template, so
// exactly one write is issued and the change is reported.
func TestAddAssociatesVlan(t *testing.T) {
	s := ucstest.NewServer()
	defer s.Close()
	s.AddTemplate(templateDN)
	s.AddFabricVlan("test-vlan_666")

	result, err := Add(newTestClient(s), testOptions())
	require.NoError(t, err)
	assert.True(t, result.LoggedIn)
	assert.True(t, result.LoggedOut)
	assert.True(t, result.Changed)
	assert.Equal(t, 1, s.Commits)
	assert.Contains(t, s.TemplateVlans[templateDN], "test-vlan_666")
}

// The VLAN is already associated with the template, so nothing is written.
func TestAddAlreadyAssociated(t *testing.T) {
	s := ucstest.NewServer()
	defer s.Close()
	s.AddTemplate(templateDN, "test-vlan_666")
	s.AddFabricVlan("test-vlan_666")

	result, err := Add(newTestClient(s), testOptions())
	require.NoError(t, err)
	assert.True(t, result.LoggedIn)
	assert.True(t, result.LoggedOut)
	assert.False(t, result.Changed)
	assert.Equal(t, 0, s.Commits)
}

// The VLAN is missing from the Fabric Interconnects, so the run fails before
// anything is written, regardless of the template state.  The session is
// still closed.
func TestAddVlanMissingFromFabric(t *testing.T) {
	for _, onTemplate := range []bool{false, true} {
		s := ucstest.NewServer()
		if onTemplate {
			s.AddTemplate(templateDN, "test-vlan_666")
		} else {
			s.AddTemplate(templateDN)
		}

		result, err := Add(newTestClient(s), testOptions())
		require.Error(t, err)
		preErr := &client.PreconditionError{}
		assert.True(t, errors.As(err, &preErr))
		assert.Equal(t, "VLAN does not exist on UCS Fabric Interconnects", err.Error())
		assert.False(t, result.Changed)
		assert.Equal(t, 0, s.Commits)
		assert.Equal(t, 1, s.Logouts, "session must be closed on the precondition failure path")
		assert.True(t, result.LoggedOut)
		s.Close()
	}
}

// Running the command twice yields changed then unchanged.
func TestAddIsIdempotent(t *testing.T) {
	s := ucstest.NewServer()
	defer s.Close()
	s.AddTemplate(templateDN)
	s.AddFabricVlan("test-vlan_666")

	result, err := Add(newTestClient(s), testOptions())
	require.NoError(t, err)
	assert.True(t, result.Changed)

	result, err = Add(newTestClient(s), testOptions())
	require.NoError(t, err)
	assert.False(t, result.Changed)

	assert.Equal(t, 1, s.Commits)
}

func TestAddLoginRejected(t *testing.T) {
	s := ucstest.NewServer()
	defer s.Close()
	s.FailLogin = true

	result, err := Add(newTestClient(s), testOptions())
	require.Error(t, err)
	authErr := &client.AuthenticationError{}
	assert.True(t, errors.As(err, &authErr))
	assert.False(t, result.LoggedIn)
	assert.False(t, result.Changed)
	assert.Equal(t, 0, s.Commits)
}

// A rejected commit surfaces as a write error and the result stays unchanged.
func TestAddCommitRejected(t *testing.T) {
	s := ucstest.NewServer()
	defer s.Close()
	s.AddTemplate(templateDN)
	s.AddFabricVlan("test-vlan_666")
	s.FailCommit = true

	result, err := Add(newTestClient(s), testOptions())
	require.Error(t, err)
	writeErr := &client.WriteError{}
	assert.True(t, errors.As(err, &writeErr))
	assert.False(t, result.Changed)
}

// A rejected logout is reported but does not reverse a committed change.
func TestAddLogoutRejected(t *testing.T) {
	s := ucstest.NewServer()
	defer s.Close()
	s.AddTemplate(templateDN)
	s.AddFabricVlan("test-vlan_666")
	s.RejectLogout = true

	result, err := Add(newTestClient(s), testOptions())
	require.Error(t, err)
	sessionErr := &client.SessionError{}
	assert.True(t, errors.As(err, &sessionErr))
	assert.True(t, result.Changed)
	assert.False(t, result.LoggedOut)
	assert.Contains(t, s.TemplateVlans[templateDN], "test-vlan_666")
}
