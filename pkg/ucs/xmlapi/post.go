// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package xmlapi

import (
	"fmt"
	"io"
	"net/http"
)

// Post sends one XML API request document and returns the response body
func (a *API) Post(payload io.Reader) ([]byte, error) {
	body, err := a.postPriv(payload)
	if err != nil {
		a.cookieResetter.ClearCookie()
	}
	return body, err
}

// postPriv sends one XML API request document and returns the response body
func (a *API) postPriv(payload io.Reader) ([]byte, error) {
	req, err := http.NewRequest("POST", a.endpointURL, payload)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "text/xml")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("HTTP POST to %s returned a nil response", a.endpointURL)
	}

	defer resp.Body.Close()

	// Always read the body, it may have an error message
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if resp.StatusCode != 200 {
			return nil, fmt.Errorf("HTTP POST to %s returned status code %d", a.endpointURL, resp.StatusCode)
		}
		return nil, err
	}

	// Body was read ok but there is a response code error
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("HTTP POST to %s returned status code %d.  Error Message: %s", a.endpointURL, resp.StatusCode, body)
	}

	return body, nil
}
