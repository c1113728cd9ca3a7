package license

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var renderTime = time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

func standardConfig() *Config {
	return &Config{
		Tier:         TierStandard,
		EntityName:   "Acme Robotics LLC",
		EntityType:   EntityLLC,
		Jurisdiction: "California",
		ContactEmail: "legal@acme.example",
	}
}

func TestParseTier(t *testing.T) {
	tier, err := ParseTier("standard")
	require.NoError(t, err)
	assert.Equal(t, TierStandard, tier)

	tier, err = ParseTier("MAXIMUM")
	require.NoError(t, err)
	assert.Equal(t, TierMaximum, tier)

	_, err = ParseTier("military")
	assert.ErrorContains(t, err, "invalid license tier")
}

func TestParseEntityType(t *testing.T) {
	for _, valid := range []string{"individual", "corporation", "llc", "medical_corporation"} {
		et, err := ParseEntityType(valid)
		require.NoError(t, err)
		assert.Equal(t, EntityType(valid), et)
	}

	_, err := ParseEntityType("partnership")
	assert.ErrorContains(t, err, "invalid entity type")
}

func TestConfigValidate(t *testing.T) {
	config := standardConfig()
	require.NoError(t, config.Validate())

	missing := *config
	missing.EntityName = ""
	assert.ErrorContains(t, missing.Validate(), "entity name is required")

	missing = *config
	missing.Jurisdiction = ""
	assert.ErrorContains(t, missing.Validate(), "jurisdiction is required")
}

func TestRender_Standard(t *testing.T) {
	content, signature, marker, err := Render(standardConfig(), "/tmp/skill", renderTime)
	require.NoError(t, err)
	assert.Empty(t, signature)
	assert.Empty(t, marker)

	assert.Contains(t, content, "PROTECTIVE SKILLS LICENSE v1.0")
	assert.Contains(t, content, "Copyright (c) 2026 Acme Robotics LLC")
	assert.Contains(t, content, "This work is owned by Acme Robotics LLC, a limited liability company.")
	assert.Contains(t, content, "laws of\nCalifornia")
	assert.Contains(t, content, "Email: legal@acme.example")
	assert.Contains(t, content, "Last Updated: March 15, 2026")
	// Singular entity: no pluralized holder references
	assert.Contains(t, content, "Copyright Holder: Acme Robotics LLC")
	assert.NotContains(t, content, "copyright holders")
}

func TestRender_JointOwnership(t *testing.T) {
	config := standardConfig()
	config.SecondaryEntity = "Beta Ventures Inc"

	content, _, _, err := Render(config, "/tmp/skill", renderTime)
	require.NoError(t, err)

	assert.Contains(t, content, "Copyright (c) 2026 Acme Robotics LLC and Beta Ventures Inc")
	assert.Contains(t, content, "This work is jointly owned by Acme Robotics LLC (Llc) and Beta Ventures Inc.")
	assert.Contains(t, content, "copyright holders")
	assert.Contains(t, content, "COPYRIGHT HOLDERS")
	assert.Contains(t, content, "Copyright Holders: Acme Robotics LLC and Beta Ventures Inc")
}

func TestRender_Individual_NoOwnershipStatement(t *testing.T) {
	config := standardConfig()
	config.EntityType = EntityIndividual
	config.EntityName = "Jane Smith"

	content, _, _, err := Render(config, "/tmp/skill", renderTime)
	require.NoError(t, err)
	assert.NotContains(t, content, "This work is owned by")
	assert.NotContains(t, content, "solely owned")
}

func TestRender_Maximum(t *testing.T) {
	config := standardConfig()
	config.Tier = TierMaximum
	config.EntityType = EntityMedicalCorporation
	config.EntityName = "Pacific Medical Group"
	config.County = "Orange"

	content, signature, marker, err := Render(config, "/tmp/skill", renderTime)
	require.NoError(t, err)

	assert.Len(t, signature, 64)
	assert.True(t, strings.HasPrefix(marker, "REG-"))

	assert.Contains(t, content, "MAXIMUM PROTECTION v2.0")
	assert.Contains(t, content, "This work is owned by Pacific Medical Group, a medical corporation.")
	assert.Contains(t, content, "valuable trade secrets")
	assert.Contains(t, content, "LIQUIDATED DAMAGES SCHEDULE")
	assert.Contains(t, content, "$250,000")
	assert.Contains(t, content, "18 U.S.C. §1030")
	assert.Contains(t, content, "Superior Court of California, Orange County")
	assert.Contains(t, content, "Digital Signature: "+signature)
	assert.Contains(t, content, "Registration Marker: "+marker)
	// Singular holder retains the "retains" verb form
	assert.Contains(t, content, "retains jury rights")
}

func TestRender_Maximum_DefaultCounty(t *testing.T) {
	config := standardConfig()
	config.Tier = TierMaximum

	content, _, _, err := Render(config, "/tmp/skill", renderTime)
	require.NoError(t, err)
	assert.Contains(t, content, "Los Angeles County")
}

func TestRender_ContactVariants(t *testing.T) {
	t.Run("name and email", func(t *testing.T) {
		config := standardConfig()
		config.ContactName = "Jane Smith"
		content, _, _, err := Render(config, "/tmp/skill", renderTime)
		require.NoError(t, err)
		assert.Contains(t, content, "Jane Smith\nAcme Robotics LLC\nEmail: legal@acme.example")
	})

	t.Run("no contact standard", func(t *testing.T) {
		config := standardConfig()
		config.ContactEmail = ""
		content, _, _, err := Render(config, "/tmp/skill", renderTime)
		require.NoError(t, err)
		assert.Contains(t, content, "[Contact information to be provided]")
	})

	t.Run("no contact maximum", func(t *testing.T) {
		config := standardConfig()
		config.Tier = TierMaximum
		config.ContactEmail = ""
		content, _, _, err := Render(config, "/tmp/skill", renderTime)
		require.NoError(t, err)
		assert.Contains(t, content, "[SEALED - Contact through counsel only]")
	})

	t.Run("maximum fee notice", func(t *testing.T) {
		config := standardConfig()
		config.Tier = TierMaximum
		content, _, _, err := Render(config, "/tmp/skill", renderTime)
		require.NoError(t, err)
		assert.Contains(t, content, "$10,000 processing fee")
	})
}

func TestDigitalSignature_Deterministic(t *testing.T) {
	a := DigitalSignature("/tmp/skill", "Acme", renderTime)
	b := DigitalSignature("/tmp/skill", "Acme", renderTime)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	c := DigitalSignature("/tmp/other", "Acme", renderTime)
	assert.NotEqual(t, a, c)
}

func TestRegistrationMarker(t *testing.T) {
	a := RegistrationMarker()
	b := RegistrationMarker()
	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^REG-[0-9A-F]{32}$`, a)
}

func TestNewForensicMetadata_IsolatedSchedule(t *testing.T) {
	m := NewForensicMetadata("/tmp/skill", "Acme Robotics LLC", "sig", "REG-ABC", renderTime)
	m.Enforcement.LiquidatedDamages["ai_training"] = 1
	m.Enforcement.CriminalStatutes[0] = "mutated"

	assert.Equal(t, 250000, DamagesSchedule["ai_training"])
	assert.NotEqual(t, "mutated", CriminalStatutes[0])

	fresh := NewForensicMetadata("/tmp/skill", "Acme Robotics LLC", "sig", "REG-ABC", renderTime)
	assert.Equal(t, 250000, fresh.Enforcement.LiquidatedDamages["ai_training"])
}
