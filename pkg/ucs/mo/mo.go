// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

// Package mo holds the UCS Manager managed object classes that ucsctl reads
// and writes.  Field names follow the XML API attribute names.
package mo

import "encoding/xml"

const (
	// DefaultNetNo marks a VLAN association as not being the native VLAN
	DefaultNetNo = "no"

	// StatusCreated requests creation of a managed object in a commit
	StatusCreated = "created"
)

// VnicEtherIf is the association of a named VLAN with a vNIC template.  It
// exists as a child of the template in the object tree.
type VnicEtherIf struct {
	XMLName    xml.Name `xml:"vnicEtherIf"`
	Dn         string   `xml:"dn,attr,omitempty"`
	Name       string   `xml:"name,attr"`
	DefaultNet string   `xml:"defaultNet,attr,omitempty"`
	Status     string   `xml:"status,attr,omitempty"`
}

// FabricVlan is a VLAN defined globally on the Fabric Interconnects.
type FabricVlan struct {
	XMLName xml.Name `xml:"fabricVlan"`
	Dn      string   `xml:"dn,attr,omitempty"`
	Name    string   `xml:"name,attr,omitempty"`
	Id      string   `xml:"id,attr,omitempty"`
}

// VnicLanConnTempl is a vNIC template.
type VnicLanConnTempl struct {
	XMLName xml.Name `xml:"vnicLanConnTempl"`
	Dn      string   `xml:"dn,attr,omitempty"`
	Name    string   `xml:"name,attr,omitempty"`
	Descr   string   `xml:"descr,attr,omitempty"`
}
