// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

// Package xmlapi is the HTTP transport for the UCS Manager XML API.  Every
// operation is a POST of one XML document to the /nuova endpoint.
package xmlapi

import (
	"crypto/tls"
	"crypto/x509"
	"net/http"
	"strings"
	"time"
)

const apiPath = "/nuova"

// CookieResetter clears a session cookie after a transport failure so that a
// stale session is never reused.
type CookieResetter interface {
	ClearCookie()
}

type API struct {
	endpointURL    string
	client         *http.Client
	cookieResetter CookieResetter
}

// NewAPI creates a transport for the XML API endpoint of a UCS Manager.
func NewAPI(resetter CookieResetter, endpoint string, ca string, insecureSkipTLSVerify bool) *API {
	// Create Transport object
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{
			RootCAs:            rootCertPool([]byte(ca)),
			InsecureSkipVerify: insecureSkipTLSVerify,
		},
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	client := &http.Client{Transport: tr}
	return &API{
		endpointURL:    resolveURL(endpoint),
		client:         client,
		cookieResetter: resetter,
	}
}

func rootCertPool(caData []byte) *x509.CertPool {
	if len(caData) == 0 {
		return nil
	}
	// if we have caData, use it
	certPool := x509.NewCertPool()
	certPool.AppendCertsFromPEM(caData)
	return certPool
}

func resolveURL(endpoint string) string {
	URL := endpoint
	if !strings.HasPrefix(URL, "https://") && !strings.HasPrefix(URL, "http://") {
		URL = "https://" + URL
	}
	URL = strings.TrimSuffix(URL, "/")
	return URL + apiPath
}
