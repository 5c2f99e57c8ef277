// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package logger

import "regexp"

var passwordAttr = regexp.MustCompile(`inPassword="[^"]*"`)

// MaskPassword replaces the password attribute of an XML API request document
// with a fixed placeholder.  Request documents must pass through this function
// before being written to any log line.
func MaskPassword(doc string) string {
	return passwordAttr.ReplaceAllString(doc, `inPassword="********"`)
}
