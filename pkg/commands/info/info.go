// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package info

import (
	"github.com/cclnet/ucsctl/pkg/ucs/client"
	log "github.com/sirupsen/logrus"
)

// Info describes a UCS Manager endpoint.
type Info struct {
	Endpoint  string
	Version   string
	Supported bool
}

// Get logs in to UCS Manager and reports the endpoint information seen during
// the session.
func Get(cli *client.Client) (info *Info, err error) {
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

	info = &Info{
		Endpoint:  cli.Endpoint,
		Version:   cli.Version,
		Supported: cli.VersionSupported(),
	}
	return
}
