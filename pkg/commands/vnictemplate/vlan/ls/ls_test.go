// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package ls

import (
	"testing"

	"github.com/cclnet/ucsctl/pkg/ucs/client"
	"github.com/cclnet/ucsctl/pkg/ucs/ucstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(s *ucstest.Server) *client.Client {
	return client.NewClient(client.Options{
		Endpoint: s.URL,
		Credentials: client.Credentials{
			Username: ucstest.Username,
			Password: ucstest.Password,
		},
	})
}

func TestList(t *testing.T) {
	s := ucstest.NewServer()
	defer s.Close()
	s.AddTemplate("org-root/org-ccl/lan-conn-templ-data-A", "prod", "backup")

	vlanIfs, err := List(newTestClient(s), Options{
		TemplateName: "data-A",
		Org:          []string{"root", "ccl"},
	})
	require.NoError(t, err)
	require.Len(t, vlanIfs, 2)
	assert.Equal(t, "prod", vlanIfs[0].Name)
	assert.Equal(t, "backup", vlanIfs[1].Name)
	assert.Equal(t, 1, s.Logouts)
}

func TestListTemplateMissing(t *testing.T) {
	s := ucstest.NewServer()
	defer s.Close()

	_, err := List(newTestClient(s), Options{
		TemplateName: "data-A",
		Org:          []string{"root", "ccl"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "org-root/org-ccl/lan-conn-templ-data-A")
	assert.Equal(t, 1, s.Logouts)
}
