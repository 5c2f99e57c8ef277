// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

// Package ucstest provides a fake UCS Manager XML API endpoint for tests.
// The fake keeps an in-memory object tree of fabric VLANs and vNIC template
// associations and mutates it on commit, so idempotency can be tested
// end to end.
package ucstest

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
)

const (
	// Username and Password are the credentials the fake accepts.
	Username = "admin"
	Password = "ucs-sekret"

	cookie = "1620000000/8d1c5a60-3f1a-44c8-9e6a-0a5f03b7c101"
)

// Server is a fake UCS Manager XML API endpoint.
type Server struct {
	*httptest.Server

	// Version is the UCS Manager version reported at login
	Version string

	// FailLogin forces every login to be rejected
	FailLogin bool

	// RejectLogout forces every logout to be rejected
	RejectLogout bool

	// FailCommit forces every configConfMos to be rejected
	FailCommit bool

	mu sync.Mutex

	// FabricVlans are the VLAN names defined on the Fabric Interconnects
	FabricVlans []string

	// Templates are the DNs of the vNIC templates that exist
	Templates []string

	// TemplateVlans maps a template DN to the names of its associated VLANs
	TemplateVlans map[string][]string

	// Logins, Logouts and Commits count the respective requests
	Logins  int
	Logouts int
	Commits int
}

// NewServer starts a fake UCS Manager.  Callers must Close it.
func NewServer() *Server {
	s := &Server{
		Version:       "4.2(3d)",
		TemplateVlans: map[string][]string{},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// AddTemplate defines a vNIC template with the given associated VLANs.
func (s *Server) AddTemplate(templateDN string, vlans ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Templates = append(s.Templates, templateDN)
	s.TemplateVlans[templateDN] = append(s.TemplateVlans[templateDN], vlans...)
}

// AddFabricVlan defines a VLAN on the Fabric Interconnects.
func (s *Server) AddFabricVlan(names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FabricVlans = append(s.FabricVlans, names...)
}

type request struct {
	XMLName    xml.Name
	InName     string `xml:"inName,attr"`
	InPassword string `xml:"inPassword,attr"`
	InCookie   string `xml:"inCookie,attr"`
	Cookie     string `xml:"cookie,attr"`
	Dn         string `xml:"dn,attr"`
	InDn       string `xml:"inDn,attr"`
	ClassId    string `xml:"classId,attr"`
	InFilter   struct {
		Eq struct {
			Property string `xml:"property,attr"`
			Value    string `xml:"value,attr"`
		} `xml:"eq"`
	} `xml:"inFilter"`
	InConfigs struct {
		Pairs []struct {
			Key         string `xml:"key,attr"`
			VnicEtherIf struct {
				Dn   string `xml:"dn,attr"`
				Name string `xml:"name,attr"`
			} `xml:"vnicEtherIf"`
		} `xml:"pair"`
	} `xml:"inConfigs"`
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := &request{}
	if err := xml.Unmarshal(body, req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch req.XMLName.Local {
	case "aaaLogin":
		s.login(w, req)
	case "aaaLogout":
		s.logout(w, req)
	case "configResolveDn":
		if s.checkCookie(w, req) {
			s.resolveDn(w, req)
		}
	case "configResolveClass":
		if s.checkCookie(w, req) {
			s.resolveClass(w, req)
		}
	case "configResolveChildren":
		if s.checkCookie(w, req) {
			s.resolveChildren(w, req)
		}
	case "configConfMos":
		if s.checkCookie(w, req) {
			s.confMos(w, req)
		}
	default:
		fmt.Fprintf(w, `<%s response="yes" errorCode="72" errorDescr="unknown method"/>`, req.XMLName.Local)
	}
}

func (s *Server) checkCookie(w http.ResponseWriter, req *request) bool {
	if req.Cookie == cookie {
		return true
	}
	fmt.Fprintf(w, `<%s response="yes" errorCode="552" errorDescr="Authorization required"/>`, req.XMLName.Local)
	return false
}

func (s *Server) login(w http.ResponseWriter, req *request) {
	s.Logins++
	if s.FailLogin || req.InName != Username || req.InPassword != Password {
		fmt.Fprint(w, `<aaaLogin response="yes" errorCode="551" errorDescr="Authentication failed"/>`)
		return
	}
	fmt.Fprintf(w, `<aaaLogin response="yes" outCookie="%s" outVersion="%s" outRefreshPeriod="600"/>`, cookie, s.Version)
}

func (s *Server) logout(w http.ResponseWriter, req *request) {
	s.Logouts++
	if s.RejectLogout || req.InCookie != cookie {
		fmt.Fprint(w, `<aaaLogout response="yes" errorCode="552" errorDescr="Authorization required"/>`)
		return
	}
	fmt.Fprint(w, `<aaaLogout response="yes" outStatus="success"/>`)
}

func (s *Server) resolveDn(w http.ResponseWriter, req *request) {
	// A VLAN association DN is <templateDN>/if-<vlan>; everything else that
	// resolves here is a template DN.
	if templateDN, vlan, ok := splitVlanIfDN(req.Dn); ok {
		if slices.Contains(s.TemplateVlans[templateDN], vlan) {
			fmt.Fprintf(w, `<configResolveDn response="yes" dn="%s"><outConfig><vnicEtherIf dn="%s" name="%s" defaultNet="no"/></outConfig></configResolveDn>`, req.Dn, req.Dn, vlan)
			return
		}
	} else if slices.Contains(s.Templates, req.Dn) {
		fmt.Fprintf(w, `<configResolveDn response="yes" dn="%s"><outConfig><vnicLanConnTempl dn="%s"/></outConfig></configResolveDn>`, req.Dn, req.Dn)
		return
	}
	fmt.Fprintf(w, `<configResolveDn response="yes" dn="%s"><outConfig> </outConfig></configResolveDn>`, req.Dn)
}

func (s *Server) resolveClass(w http.ResponseWriter, req *request) {
	if req.ClassId != "fabricVlan" || req.InFilter.Eq.Property != "name" {
		fmt.Fprint(w, `<configResolveClass response="yes" errorCode="102" errorDescr="unsupported query"/>`)
		return
	}
	if slices.Contains(s.FabricVlans, req.InFilter.Eq.Value) {
		fmt.Fprintf(w, `<configResolveClass response="yes" classId="fabricVlan"><outConfigs><fabricVlan dn="fabric/lan/net-%s" name="%s"/></outConfigs></configResolveClass>`, req.InFilter.Eq.Value, req.InFilter.Eq.Value)
		return
	}
	fmt.Fprint(w, `<configResolveClass response="yes" classId="fabricVlan"><outConfigs> </outConfigs></configResolveClass>`)
}

func (s *Server) resolveChildren(w http.ResponseWriter, req *request) {
	var b strings.Builder
	for _, vlan := range s.TemplateVlans[req.InDn] {
		fmt.Fprintf(&b, `<vnicEtherIf dn="%s/if-%s" name="%s" defaultNet="no"/>`, req.InDn, vlan, vlan)
	}
	fmt.Fprintf(w, `<configResolveChildren response="yes"><outConfigs>%s</outConfigs></configResolveChildren>`, b.String())
}

func (s *Server) confMos(w http.ResponseWriter, req *request) {
	s.Commits++
	if s.FailCommit {
		fmt.Fprint(w, `<configConfMos response="yes" errorCode="103" errorDescr="Update failed"/>`)
		return
	}
	for _, pair := range req.InConfigs.Pairs {
		templateDN, vlan, ok := splitVlanIfDN(pair.Key)
		if !ok || !slices.Contains(s.Templates, templateDN) {
			fmt.Fprint(w, `<configConfMos response="yes" errorCode="150" errorDescr="managed object does not exist"/>`)
			return
		}
		if !slices.Contains(s.TemplateVlans[templateDN], vlan) {
			s.TemplateVlans[templateDN] = append(s.TemplateVlans[templateDN], vlan)
		}
	}
	fmt.Fprint(w, `<configConfMos response="yes"><outConfigs></outConfigs></configConfMos>`)
}

func splitVlanIfDN(objectDN string) (string, string, bool) {
	i := strings.LastIndex(objectDN, "/if-")
	if i < 0 {
		return "", "", false
	}
	return objectDN[:i], objectDN[i+len("/if-"):], true
}
