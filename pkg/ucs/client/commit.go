// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package client

import (
	"encoding/xml"

	"github.com/cclnet/ucsctl/pkg/ucs/dn"
	"github.com/cclnet/ucsctl/pkg/ucs/mo"
)

type configPair struct {
	XMLName     xml.Name `xml:"pair"`
	Key         string   `xml:"key,attr"`
	VnicEtherIf *mo.VnicEtherIf
}

type configConfMosRequest struct {
	XMLName        xml.Name `xml:"configConfMos"`
	Cookie         string   `xml:"cookie,attr"`
	InHierarchical string   `xml:"inHierarchical,attr"`
	InConfigs      struct {
		Pairs []configPair
	} `xml:"inConfigs"`
}

type configConfMosResponse struct {
	XMLName    xml.Name `xml:"configConfMos"`
	ErrorCode  string   `xml:"errorCode,attr"`
	ErrorDescr string   `xml:"errorDescr,attr"`
}

// AddVlanIf associates the named VLAN with the vNIC template at templateDN
// and commits the change as a single transaction.  The caller is responsible
// for checking that the VLAN exists on the Fabric Interconnects first.
func (c *Client) AddVlanIf(templateDN string, vlan string) error {
	ifDN := dn.VlanIf(templateDN, vlan)

	req := &configConfMosRequest{
		Cookie:         c.Cookie,
		InHierarchical: "false",
	}
	req.InConfigs.Pairs = []configPair{{
		Key: ifDN,
		VnicEtherIf: &mo.VnicEtherIf{
			Dn:         ifDN,
			Name:       vlan,
			DefaultNet: mo.DefaultNetNo,
			Status:     mo.StatusCreated,
		},
	}}

	body, err := c.post(req)
	if err != nil {
		return &WriteError{DN: ifDN, Reason: err.Error()}
	}

	resp := &configConfMosResponse{}
	if err := xml.Unmarshal(body, resp); err != nil {
		return &WriteError{DN: ifDN, Reason: err.Error()}
	}
	if resp.ErrorCode != "" {
		return &WriteError{DN: ifDN, Reason: faultReason(resp.ErrorCode, resp.ErrorDescr)}
	}

	return nil
}
