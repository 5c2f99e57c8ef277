// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package flags

import (
	"errors"
	"slices"
	"strings"
)

var ValidPolicyOwners = []string{"local", "policy", "pending-policy"}

// ValidatePolicyOwner validates that the passed in policy owner is one of the valid values
func ValidatePolicyOwner(owner string) error {
	if !slices.Contains(ValidPolicyOwners, owner) {
		return errors.New("Policy owner must be one of: " + strings.Join(ValidPolicyOwners, ", "))
	}
	return nil
}
