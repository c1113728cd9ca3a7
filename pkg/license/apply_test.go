package license

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillkit/skillkit/pkg/skills"
)

const testSkillContent = `---
name: test-skill
description: A skill used to test license application
---

# Test Skill

Instructions here.
`

func setupSkillDir(t *testing.T, content string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "test-skill")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, skills.SkillFileName), []byte(content), 0o644))
	return dir
}

func TestApply_Standard(t *testing.T) {
	dir := setupSkillDir(t, testSkillContent)
	ctx := context.Background()

	result, err := Apply(ctx, dir, standardConfig(), ApplyOptions{})
	require.NoError(t, err)
	assert.True(t, result.SkillUpdated)
	assert.Empty(t, result.Signature)

	licenseContent, err := os.ReadFile(filepath.Join(dir, LicenseFileName))
	require.NoError(t, err)
	assert.Contains(t, string(licenseContent), "Acme Robotics LLC")
	assert.Contains(t, string(licenseContent), "PROTECTIVE SKILLS LICENSE v1.0")

	skillContent, err := os.ReadFile(filepath.Join(dir, skills.SkillFileName))
	require.NoError(t, err)
	assert.Contains(t, string(skillContent), "license: See LICENSE.txt for complete terms")

	// The updated frontmatter must still parse and keep its fields
	skill, err := skills.LoadSkill(filepath.Join(dir, skills.SkillFileName))
	require.NoError(t, err)
	assert.Equal(t, "test-skill", skill.Name)
	assert.Equal(t, "See LICENSE.txt for complete terms", skill.License)

	// No forensic metadata on the standard tier
	_, err = os.Stat(filepath.Join(dir, ForensicFileName))
	assert.True(t, os.IsNotExist(err))
}

func TestApply_Maximum(t *testing.T) {
	dir := setupSkillDir(t, testSkillContent)
	config := standardConfig()
	config.Tier = TierMaximum

	result, err := Apply(context.Background(), dir, config, ApplyOptions{})
	require.NoError(t, err)
	assert.Len(t, result.Signature, 64)
	assert.NotEmpty(t, result.Marker)

	metadata, err := ReadForensicMetadata(dir)
	require.NoError(t, err)
	assert.Equal(t, MaximumLicenseVersion, metadata.LicenseVersion)
	assert.Equal(t, "Acme Robotics LLC", metadata.Entity)
	assert.Equal(t, result.Signature, metadata.DigitalSignature)
	assert.Equal(t, 250000, metadata.Enforcement.LiquidatedDamages["ai_training"])

	skillContent, err := os.ReadFile(filepath.Join(dir, skills.SkillFileName))
	require.NoError(t, err)
	assert.Contains(t, string(skillContent), "license: MAXIMUM PROTECTION v2.0 - See LICENSE.txt")
}

func TestApply_MaximumReplacesExistingLicense(t *testing.T) {
	existing := `---
name: test-skill
description: A skill used to test license application
license: See LICENSE.txt for complete terms
---

Body.
`
	dir := setupSkillDir(t, existing)
	config := standardConfig()
	config.Tier = TierMaximum

	result, err := Apply(context.Background(), dir, config, ApplyOptions{})
	require.NoError(t, err)
	assert.True(t, result.SkillUpdated)

	skillContent, err := os.ReadFile(filepath.Join(dir, skills.SkillFileName))
	require.NoError(t, err)
	assert.Contains(t, string(skillContent), "license: MAXIMUM PROTECTION v2.0 - See LICENSE.txt")
	assert.NotContains(t, string(skillContent), "license: See LICENSE.txt for complete terms")
}

func TestApply_StandardKeepsExistingLicense(t *testing.T) {
	existing := `---
name: test-skill
description: A skill used to test license application
license: custom reference
---

Body.
`
	dir := setupSkillDir(t, existing)

	result, err := Apply(context.Background(), dir, standardConfig(), ApplyOptions{})
	require.NoError(t, err)
	assert.False(t, result.SkillUpdated)
	assert.Empty(t, result.SkillDiff)

	skillContent, err := os.ReadFile(filepath.Join(dir, skills.SkillFileName))
	require.NoError(t, err)
	assert.Contains(t, string(skillContent), "license: custom reference")
}

func TestApply_Backup(t *testing.T) {
	dir := setupSkillDir(t, testSkillContent)

	_, err := Apply(context.Background(), dir, standardConfig(), ApplyOptions{Backup: true})
	require.NoError(t, err)

	backup, err := os.ReadFile(filepath.Join(dir, skills.SkillFileName+".bak"))
	require.NoError(t, err)
	assert.Equal(t, testSkillContent, string(backup))
}

func TestApply_DryRun(t *testing.T) {
	dir := setupSkillDir(t, testSkillContent)

	result, err := Apply(context.Background(), dir, standardConfig(), ApplyOptions{DryRun: true})
	require.NoError(t, err)
	assert.True(t, result.SkillUpdated)
	assert.Contains(t, result.SkillDiff, "+license: See LICENSE.txt for complete terms")
	assert.Contains(t, result.LicenseContent, "PROTECTIVE SKILLS LICENSE v1.0")

	// Nothing written
	_, err = os.Stat(filepath.Join(dir, LicenseFileName))
	assert.True(t, os.IsNotExist(err))

	skillContent, err := os.ReadFile(filepath.Join(dir, skills.SkillFileName))
	require.NoError(t, err)
	assert.Equal(t, testSkillContent, string(skillContent))
}

func TestApply_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing directory", func(t *testing.T) {
		_, err := Apply(ctx, filepath.Join(t.TempDir(), "nope"), standardConfig(), ApplyOptions{})
		assert.ErrorContains(t, err, "skill directory not found")
	})

	t.Run("not a directory", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
		_, err := Apply(ctx, file, standardConfig(), ApplyOptions{})
		assert.ErrorContains(t, err, "not a directory")
	})

	t.Run("missing SKILL.md", func(t *testing.T) {
		_, err := Apply(ctx, t.TempDir(), standardConfig(), ApplyOptions{})
		assert.ErrorContains(t, err, "SKILL.md not found")
	})

	t.Run("invalid config", func(t *testing.T) {
		dir := setupSkillDir(t, testSkillContent)
		config := standardConfig()
		config.EntityName = ""
		_, err := Apply(ctx, dir, config, ApplyOptions{})
		assert.ErrorContains(t, err, "entity name is required")
	})
}

func TestUpdateFrontmatterLicense_NoDescription(t *testing.T) {
	content := "---\nname: x\n---\nbody\n"
	updated, changed := updateFrontmatterLicense(content, TierStandard)
	assert.False(t, changed)
	assert.Equal(t, content, updated)
}
