// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package client

import (
	"errors"
	"testing"

	"github.com/cclnet/ucsctl/pkg/ucs/ucstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(s *ucstest.Server) *Client {
	return NewClient(Options{
		Endpoint: s.URL,
		Credentials: Credentials{
			Username: ucstest.Username,
			Password: ucstest.Password,
		},
	})
}

func TestLogin(t *testing.T) {
	s := ucstest.NewServer()
	defer s.Close()

	cli := newTestClient(s)
	require.NoError(t, cli.Login())
	assert.NotEmpty(t, cli.Cookie)
	assert.Equal(t, "4.2(3d)", cli.Version)
	assert.True(t, cli.VersionSupported())

	assert.NoError(t, cli.Logout())
	assert.Empty(t, cli.Cookie)

	// logging out of a dead session is a no-op
	assert.NoError(t, cli.Logout())
}

func TestLoginRejected(t *testing.T) {
	s := ucstest.NewServer()
	defer s.Close()

	cli := NewClient(Options{
		Endpoint: s.URL,
		Credentials: Credentials{
			Username: ucstest.Username,
			Password: "wrong",
		},
	})

	err := cli.Login()
	require.Error(t, err)
	authErr := &AuthenticationError{}
	assert.True(t, errors.As(err, &authErr))
	assert.Contains(t, authErr.Reason, "Authentication failed")
	assert.Empty(t, cli.Cookie)
}

func TestLoginUnreachable(t *testing.T) {
	s := ucstest.NewServer()
	url := s.URL
	s.Close()

	cli := NewClient(Options{
		Endpoint: url,
		Credentials: Credentials{
			Username: ucstest.Username,
			Password: ucstest.Password,
		},
	})

	err := cli.Login()
	require.Error(t, err)
	authErr := &AuthenticationError{}
	assert.True(t, errors.As(err, &authErr))
}

func TestVersionSupported(t *testing.T) {
	cases := []struct {
		version   string
		supported bool
	}{
		{"4.2(3d)", true},
		{"3.2(3a)", true},
		{"3.1(1e)", true},
		{"3.0(2d)", false},
		{"2.2(8a)", false},
		{"", true},        // unknown versions are not rejected
		{"unknown", true}, // unparseable versions are not rejected
	}

	for i, c := range cases {
		cli := &Client{Version: c.version}
		assert.Equal(t, c.supported, cli.VersionSupported(), "%d: %s", i, c.version)
	}
}

func TestResolveDn(t *testing.T) {
	s := ucstest.NewServer()
	defer s.Close()
	s.AddTemplate("org-root/org-ccl/lan-conn-templ-data-A", "prod")

	cli := newTestClient(s)
	require.NoError(t, cli.Login())
	defer cli.Logout()

	exists, err := cli.ResolveDn("org-root/org-ccl/lan-conn-templ-data-A")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = cli.ResolveDn("org-root/lan-conn-templ-missing")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestHasVlanIf(t *testing.T) {
	s := ucstest.NewServer()
	defer s.Close()
	s.AddTemplate("org-root/lan-conn-templ-data-A", "prod")

	cli := newTestClient(s)
	require.NoError(t, cli.Login())
	defer cli.Logout()

	onTemplate, err := cli.HasVlanIf("org-root/lan-conn-templ-data-A", "prod")
	assert.NoError(t, err)
	assert.True(t, onTemplate)

	onTemplate, err = cli.HasVlanIf("org-root/lan-conn-templ-data-A", "test-vlan_666")
	assert.NoError(t, err)
	assert.False(t, onTemplate)
}

func TestHasFabricVlan(t *testing.T) {
	s := ucstest.NewServer()
	defer s.Close()
	s.AddFabricVlan("prod", "test-vlan_666")

	cli := newTestClient(s)
	require.NoError(t, cli.Login())
	defer cli.Logout()

	onFabric, err := cli.HasFabricVlan("test-vlan_666")
	assert.NoError(t, err)
	assert.True(t, onFabric)

	onFabric, err = cli.HasFabricVlan("absent")
	assert.NoError(t, err)
	assert.False(t, onFabric)
}

func TestQueryWithoutSession(t *testing.T) {
	s := ucstest.NewServer()
	defer s.Close()

	cli := newTestClient(s)

	// no login, so the cookie is rejected
	_, err := cli.ResolveDn("org-root")
	require.Error(t, err)
	queryErr := &QueryError{}
	assert.True(t, errors.As(err, &queryErr))
}

func TestAddVlanIf(t *testing.T) {
	s := ucstest.NewServer()
	defer s.Close()
	s.AddTemplate("org-root/lan-conn-templ-data-A")
	s.AddFabricVlan("test-vlan_666")

	cli := newTestClient(s)
	require.NoError(t, cli.Login())
	defer cli.Logout()

	require.NoError(t, cli.AddVlanIf("org-root/lan-conn-templ-data-A", "test-vlan_666"))
	assert.Equal(t, 1, s.Commits)

	onTemplate, err := cli.HasVlanIf("org-root/lan-conn-templ-data-A", "test-vlan_666")
	assert.NoError(t, err)
	assert.True(t, onTemplate)
}

func TestAddVlanIfRejected(t *testing.T) {
	s := ucstest.NewServer()
	defer s.Close()
	s.AddTemplate("org-root/lan-conn-templ-data-A")
	s.FailCommit = true

	cli := newTestClient(s)
	require.NoError(t, cli.Login())
	defer cli.Logout()

	err := cli.AddVlanIf("org-root/lan-conn-templ-data-A", "test-vlan_666")
	require.Error(t, err)
	writeErr := &WriteError{}
	assert.True(t, errors.As(err, &writeErr))
	assert.Equal(t, "org-root/lan-conn-templ-data-A/if-test-vlan_666", writeErr.DN)
}

func TestLogoutRejected(t *testing.T) {
	s := ucstest.NewServer()
	defer s.Close()
	s.RejectLogout = true

	cli := newTestClient(s)
	require.NoError(t, cli.Login())

	err := cli.Logout()
	require.Error(t, err)
	sessionErr := &SessionError{}
	assert.True(t, errors.As(err, &sessionErr))
}

func TestListVlanIfs(t *testing.T) {
	s := ucstest.NewServer()
	defer s.Close()
	s.AddTemplate("org-root/lan-conn-templ-data-A", "prod", "backup")

	cli := newTestClient(s)
	require.NoError(t, cli.Login())
	defer cli.Logout()

	vlanIfs, err := cli.ListVlanIfs("org-root/lan-conn-templ-data-A")
	require.NoError(t, err)
	require.Len(t, vlanIfs, 2)
	assert.Equal(t, "prod", vlanIfs[0].Name)
	assert.Equal(t, "backup", vlanIfs[1].Name)
	assert.Equal(t, "org-root/lan-conn-templ-data-A/if-prod", vlanIfs[0].Dn)
}
