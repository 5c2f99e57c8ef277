// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package client

import (
	"encoding/xml"
	"strings"

	"github.com/cclnet/ucsctl/pkg/ucs/dn"
	"github.com/cclnet/ucsctl/pkg/ucs/mo"
)

const classFabricVlan = "fabricVlan"

type configResolveDnRequest struct {
	XMLName        xml.Name `xml:"configResolveDn"`
	Cookie         string   `xml:"cookie,attr"`
	InHierarchical string   `xml:"inHierarchical,attr"`
	Dn             string   `xml:"dn,attr"`
}

type configResolveDnResponse struct {
	XMLName    xml.Name `xml:"configResolveDn"`
	ErrorCode  string   `xml:"errorCode,attr"`
	ErrorDescr string   `xml:"errorDescr,attr"`
	OutConfig  struct {
		Inner string `xml:",innerxml"`
	} `xml:"outConfig"`
}

type filterEq struct {
	XMLName  xml.Name `xml:"eq"`
	Class    string   `xml:"class,attr"`
	Property string   `xml:"property,attr"`
	Value    string   `xml:"value,attr"`
}

type configResolveClassRequest struct {
	XMLName        xml.Name `xml:"configResolveClass"`
	Cookie         string   `xml:"cookie,attr"`
	ClassId        string   `xml:"classId,attr"`
	InHierarchical string   `xml:"inHierarchical,attr"`
	InFilter       struct {
		Eq filterEq
	} `xml:"inFilter"`
}

type configResolveClassResponse struct {
	XMLName    xml.Name `xml:"configResolveClass"`
	ErrorCode  string   `xml:"errorCode,attr"`
	ErrorDescr string   `xml:"errorDescr,attr"`
	OutConfigs struct {
		Inner string `xml:",innerxml"`
	} `xml:"outConfigs"`
}

type configResolveChildrenRequest struct {
	XMLName        xml.Name `xml:"configResolveChildren"`
	Cookie         string   `xml:"cookie,attr"`
	ClassId        string   `xml:"classId,attr"`
	InDn           string   `xml:"inDn,attr"`
	InHierarchical string   `xml:"inHierarchical,attr"`
}

type configResolveChildrenResponse struct {
	XMLName    xml.Name `xml:"configResolveChildren"`
	ErrorCode  string   `xml:"errorCode,attr"`
	ErrorDescr string   `xml:"errorDescr,attr"`
	OutConfigs struct {
		VlanIfs []mo.VnicEtherIf `xml:"vnicEtherIf"`
	} `xml:"outConfigs"`
}

// ResolveDn reports whether a managed object exists at the given
// distinguished name.
func (c *Client) ResolveDn(objectDN string) (bool, error) {
	body, err := c.post(&configResolveDnRequest{
		Cookie:         c.Cookie,
		InHierarchical: "false",
		Dn:             objectDN,
	})
	if err != nil {
		return false, &QueryError{Op: "configResolveDn", Reason: err.Error()}
	}

	resp := &configResolveDnResponse{}
	if err := xml.Unmarshal(body, resp); err != nil {
		return false, &QueryError{Op: "configResolveDn", Reason: err.Error()}
	}
	if resp.ErrorCode != "" {
		return false, &QueryError{Op: "configResolveDn", Reason: faultReason(resp.ErrorCode, resp.ErrorDescr)}
	}

	return strings.TrimSpace(resp.OutConfig.Inner) != "", nil
}

// HasVlanIf reports whether the named VLAN is already associated with the
// vNIC template at templateDN.
func (c *Client) HasVlanIf(templateDN string, vlan string) (bool, error) {
	return c.ResolveDn(dn.VlanIf(templateDN, vlan))
}

// HasFabricVlan reports whether a VLAN whose name is exactly the given name
// is defined globally on the Fabric Interconnects.
func (c *Client) HasFabricVlan(name string) (bool, error) {
	req := &configResolveClassRequest{
		Cookie:         c.Cookie,
		ClassId:        classFabricVlan,
		InHierarchical: "false",
	}
	req.InFilter.Eq = filterEq{
		Class:    classFabricVlan,
		Property: "name",
		Value:    name,
	}

	body, err := c.post(req)
	if err != nil {
		return false, &QueryError{Op: "configResolveClass", Reason: err.Error()}
	}

	resp := &configResolveClassResponse{}
	if err := xml.Unmarshal(body, resp); err != nil {
		return false, &QueryError{Op: "configResolveClass", Reason: err.Error()}
	}
	if resp.ErrorCode != "" {
		return false, &QueryError{Op: "configResolveClass", Reason: faultReason(resp.ErrorCode, resp.ErrorDescr)}
	}

	return strings.TrimSpace(resp.OutConfigs.Inner) != "", nil
}

// ListVlanIfs returns the VLAN associations that exist on the vNIC template
// at templateDN.
func (c *Client) ListVlanIfs(templateDN string) ([]mo.VnicEtherIf, error) {
	body, err := c.post(&configResolveChildrenRequest{
		Cookie:         c.Cookie,
		ClassId:        "vnicEtherIf",
		InDn:           templateDN,
		InHierarchical: "false",
	})
	if err != nil {
		return nil, &QueryError{Op: "configResolveChildren", Reason: err.Error()}
	}

	resp := &configResolveChildrenResponse{}
	if err := xml.Unmarshal(body, resp); err != nil {
		return nil, &QueryError{Op: "configResolveChildren", Reason: err.Error()}
	}
	if resp.ErrorCode != "" {
		return nil, &QueryError{Op: "configResolveChildren", Reason: faultReason(resp.ErrorCode, resp.ErrorDescr)}
	}

	return resp.OutConfigs.VlanIfs, nil
}
