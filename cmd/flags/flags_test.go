// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePolicyOwner(t *testing.T) {
	for _, owner := range ValidPolicyOwners {
		assert.NoError(t, ValidatePolicyOwner(owner))
	}
	assert.Error(t, ValidatePolicyOwner(""))
	assert.Error(t, ValidatePolicyOwner("remote"))
	assert.Error(t, ValidatePolicyOwner("Local"))
}
