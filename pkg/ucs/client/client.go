// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

// Package client implements a session-scoped client for the UCS Manager XML
// API.  A Client holds exactly one session; it is created, used for a linear
// sequence of calls, and torn down before the invocation exits.
package client

import (
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/cclnet/ucsctl/pkg/constants"
	"github.com/cclnet/ucsctl/pkg/logger"
	"github.com/cclnet/ucsctl/pkg/ucs/xmlapi"
	log "github.com/sirupsen/logrus"
)

// Credentials are the UCS Manager login credentials.
type Credentials struct {
	Username string
	Password string
}

// Options configures a UCS Manager client.
type Options struct {
	// Endpoint is the hostname or IP address of UCS Manager
	Endpoint string

	// Credentials are the login credentials
	Credentials Credentials

	// CA is PEM encoded CA material for the endpoint certificate.  The CA
	// is only needed for self-signed certs or certs that are not in the
	// local trust store.
	CA string

	// InsecureSkipTLSVerify disables endpoint certificate verification
	InsecureSkipTLSVerify bool
}

// Client is a container for one UCS Manager session.
type Client struct {
	// Endpoint is the hostname or IP address of UCS Manager
	Endpoint string

	// Cookie is the XML API session cookie.  It is empty until Login
	// succeeds and after the session ends.
	Cookie string

	// Version is the UCS Manager version reported at login, for example
	// "4.2(3d)"
	Version string

	credentials Credentials
	api         *xmlapi.API
}

// NewClient creates a client for one UCS Manager session.  No network
// traffic is generated until Login is called.
func NewClient(opts Options) *Client {
	c := &Client{
		Endpoint:    opts.Endpoint,
		credentials: opts.Credentials,
	}
	c.api = xmlapi.NewAPI(c, opts.Endpoint, opts.CA, opts.InsecureSkipTLSVerify)
	return c
}

type aaaLoginRequest struct {
	XMLName    xml.Name `xml:"aaaLogin"`
	InName     string   `xml:"inName,attr"`
	InPassword string   `xml:"inPassword,attr"`
}

type aaaLoginResponse struct {
	XMLName    xml.Name `xml:"aaaLogin"`
	OutCookie  string   `xml:"outCookie,attr"`
	OutVersion string   `xml:"outVersion,attr"`
	ErrorCode  string   `xml:"errorCode,attr"`
	ErrorDescr string   `xml:"errorDescr,attr"`
}

type aaaLogoutRequest struct {
	XMLName  xml.Name `xml:"aaaLogout"`
	InCookie string   `xml:"inCookie,attr"`
}

type aaaLogoutResponse struct {
	XMLName    xml.Name `xml:"aaaLogout"`
	OutStatus  string   `xml:"outStatus,attr"`
	ErrorCode  string   `xml:"errorCode,attr"`
	ErrorDescr string   `xml:"errorDescr,attr"`
}

// Login opens a session with UCS Manager.  The session cookie and the
// reported UCS Manager version are stored on the client.
func (c *Client) Login() error {
	body, err := c.post(&aaaLoginRequest{
		InName:     c.credentials.Username,
		InPassword: c.credentials.Password,
	})
	if err != nil {
		return &AuthenticationError{Endpoint: c.Endpoint, Reason: err.Error()}
	}

	resp := &aaaLoginResponse{}
	if err := xml.Unmarshal(body, resp); err != nil {
		return &AuthenticationError{Endpoint: c.Endpoint, Reason: err.Error()}
	}
	if resp.ErrorCode != "" {
		return &AuthenticationError{Endpoint: c.Endpoint, Reason: faultReason(resp.ErrorCode, resp.ErrorDescr)}
	}
	if resp.OutCookie == "" {
		return &AuthenticationError{Endpoint: c.Endpoint, Reason: "no session cookie returned"}
	}

	c.Cookie = resp.OutCookie
	c.Version = resp.OutVersion
	log.Debugf("Logged in to UCS Manager %s running version %s", c.Endpoint, c.Version)

	if !c.VersionSupported() {
		log.Warnf("UCS Manager version %s is older than the oldest supported release %s", c.Version, constants.MinUCSManagerVersion)
	}
	return nil
}

// Logout closes the session.  Calling Logout without a live session is a
// no-op so that teardown can run unconditionally on every exit path.
func (c *Client) Logout() error {
	if c.Cookie == "" {
		return nil
	}

	body, err := c.post(&aaaLogoutRequest{InCookie: c.Cookie})
	if err != nil {
		return &SessionError{Endpoint: c.Endpoint, Reason: err.Error()}
	}

	resp := &aaaLogoutResponse{}
	if err := xml.Unmarshal(body, resp); err != nil {
		return &SessionError{Endpoint: c.Endpoint, Reason: err.Error()}
	}
	if resp.ErrorCode != "" {
		return &SessionError{Endpoint: c.Endpoint, Reason: faultReason(resp.ErrorCode, resp.ErrorDescr)}
	}

	c.Cookie = ""
	log.Debugf("Logged out of UCS Manager %s", c.Endpoint)
	return nil
}

// VersionSupported reports whether the UCS Manager release seen at login is
// at least the oldest supported release.  An unparseable version is treated
// as supported; the remote system remains authoritative.
func (c *Client) VersionSupported() bool {
	// UCS Manager reports releases as "major.minor(build)"
	release := c.Version
	if i := strings.Index(release, "("); i > 0 {
		release = release[:i]
	}
	v, err := semver.NewVersion(release)
	if err != nil {
		log.Debugf("Could not parse UCS Manager version %q: %v", c.Version, err)
		return true
	}
	min := semver.MustParse(constants.MinUCSManagerVersion)
	return !v.LessThan(min)
}

// ClearCookie implements xmlapi.CookieResetter.  It is called by the
// transport when a request fails, so that a broken session is never reused.
func (c *Client) ClearCookie() {
	c.Cookie = ""
}

// post marshals one request document and sends it to the endpoint.
func (c *Client) post(doc any) ([]byte, error) {
	out, err := xml.Marshal(doc)
	if err != nil {
		return nil, err
	}
	log.Tracef("UCS XML API request: %s", logger.MaskPassword(string(out)))
	return c.api.Post(bytes.NewReader(out))
}

func faultReason(code string, descr string) string {
	if descr == "" {
		return "error code " + code
	}
	return descr + " (error code " + code + ")"
}
