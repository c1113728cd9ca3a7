package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillkit/skillkit/pkg/license"
)

func TestLicenseApplyConfig_LicenseConfig(t *testing.T) {
	config := &LicenseApplyConfig{
		SkillPath:    ".",
		Tier:         "maximum",
		EntityName:   "Acme Robotics LLC",
		EntityType:   "llc",
		Jurisdiction: "California",
		ContactEmail: "legal@acme.example",
	}

	licenseConfig, err := config.licenseConfig()
	require.NoError(t, err)
	assert.Equal(t, license.TierMaximum, licenseConfig.Tier)
	assert.Equal(t, license.EntityLLC, licenseConfig.EntityType)
}

func TestLicenseApplyConfig_InvalidTier(t *testing.T) {
	config := NewLicenseApplyConfig()
	config.Tier = "military-grade"
	config.EntityName = "Acme"
	config.Jurisdiction = "California"

	_, err := config.licenseConfig()
	assert.Error(t, err)
}

func TestLicenseApplyConfig_InvalidEntityType(t *testing.T) {
	config := NewLicenseApplyConfig()
	config.EntityType = "partnership"
	config.EntityName = "Acme"
	config.Jurisdiction = "California"

	_, err := config.licenseConfig()
	assert.Error(t, err)
}
