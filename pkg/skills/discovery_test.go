package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSkill(t *testing.T, dir, name, description string) string {
	t.Helper()
	skillDir := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(skillDir, 0o755))
	content := "---\nname: " + name + "\ndescription: " + description + "\n---\n\n# " + name + "\n\nInstructions here.\n"
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, SkillFileName), []byte(content), 0o644))
	return skillDir
}

func TestNewDiscovery(t *testing.T) {
	t.Run("with default dirs", func(t *testing.T) {
		discovery, err := NewDiscovery()
		require.NoError(t, err)
		assert.NotNil(t, discovery)
		assert.Len(t, discovery.skillDirs, 2)
	})

	t.Run("with custom dirs", func(t *testing.T) {
		customDirs := []string{"/tmp/skills1", "/tmp/skills2"}
		discovery, err := NewDiscovery(WithSkillDirs(customDirs...))
		require.NoError(t, err)
		assert.Equal(t, customDirs, discovery.skillDirs)
	})
}

func TestDiscoverSkills(t *testing.T) {
	tmpDir := t.TempDir()

	skill1Dir := writeSkill(t, tmpDir, "test-skill", "A test skill for unit testing")
	writeSkill(t, tmpDir, "another-skill", "Another test skill")

	discovery, err := NewDiscovery(WithSkillDirs(tmpDir))
	require.NoError(t, err)

	skills, err := discovery.DiscoverSkills()
	require.NoError(t, err)
	assert.Len(t, skills, 2)

	testSkill, exists := skills["test-skill"]
	require.True(t, exists)
	assert.Equal(t, "test-skill", testSkill.Name)
	assert.Equal(t, "A test skill for unit testing", testSkill.Description)
	assert.Equal(t, skill1Dir, testSkill.Directory)
	assert.Contains(t, testSkill.Content, "# test-skill")
	assert.Contains(t, testSkill.Content, "Instructions here.")
}

func TestDiscoverSkills_Precedence(t *testing.T) {
	localDir := t.TempDir()
	globalDir := t.TempDir()

	writeSkill(t, localDir, "shared-skill", "Local version")
	writeSkill(t, globalDir, "shared-skill", "Global version")

	discovery, err := NewDiscovery(WithSkillDirs(localDir, globalDir))
	require.NoError(t, err)

	skills, err := discovery.DiscoverSkills()
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "Local version", skills["shared-skill"].Description)
}

func TestDiscoverSkills_SkipsInvalid(t *testing.T) {
	tmpDir := t.TempDir()

	// Directory without a SKILL.md
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "empty-dir"), 0o755))

	// SKILL.md without frontmatter
	badDir := filepath.Join(tmpDir, "bad-skill")
	require.NoError(t, os.MkdirAll(badDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(badDir, SkillFileName), []byte("# No frontmatter\n"), 0o644))

	// Regular file at the top level
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "README.md"), []byte("readme"), 0o644))

	writeSkill(t, tmpDir, "good-skill", "The only valid one")

	discovery, err := NewDiscovery(WithSkillDirs(tmpDir))
	require.NoError(t, err)

	skills, err := discovery.DiscoverSkills()
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Contains(t, skills, "good-skill")
}

func TestGetSkill(t *testing.T) {
	tmpDir := t.TempDir()
	writeSkill(t, tmpDir, "wanted", "The skill we want")

	discovery, err := NewDiscovery(WithSkillDirs(tmpDir))
	require.NoError(t, err)

	skill, err := discovery.GetSkill("wanted")
	require.NoError(t, err)
	assert.Equal(t, "wanted", skill.Name)

	_, err = discovery.GetSkill("missing")
	assert.ErrorContains(t, err, "skill 'missing' not found")
}

func TestListSkillNames(t *testing.T) {
	tmpDir := t.TempDir()
	writeSkill(t, tmpDir, "alpha", "First")
	writeSkill(t, tmpDir, "beta", "Second")

	discovery, err := NewDiscovery(WithSkillDirs(tmpDir))
	require.NoError(t, err)

	names, err := discovery.ListSkillNames()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alpha", "beta"}, names)
}

func TestLoadSkill_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSkill(filepath.Join(tmpDir, "nope", SkillFileName))
		assert.Error(t, err)
	})

	t.Run("missing name", func(t *testing.T) {
		path := filepath.Join(tmpDir, SkillFileName)
		require.NoError(t, os.WriteFile(path, []byte("---\ndescription: no name\n---\nbody\n"), 0o644))
		_, err := LoadSkill(path)
		assert.ErrorContains(t, err, "name is required")
	})

	t.Run("missing description", func(t *testing.T) {
		path := filepath.Join(tmpDir, SkillFileName)
		require.NoError(t, os.WriteFile(path, []byte("---\nname: no-description\n---\nbody\n"), 0o644))
		_, err := LoadSkill(path)
		assert.ErrorContains(t, err, "description is required")
	})
}

func TestLoadSkill_LicenseField(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, SkillFileName)
	content := `---
name: licensed-skill
description: Has a license reference
license: See LICENSE.txt for complete terms
---

Body.
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	skill, err := LoadSkill(path)
	require.NoError(t, err)
	assert.Equal(t, "See LICENSE.txt for complete terms", skill.License)
}

func TestExtractBodyContent(t *testing.T) {
	t.Run("strips frontmatter", func(t *testing.T) {
		content := "---\nname: x\n---\n\nbody text\n"
		assert.Equal(t, "body text\n", ExtractBodyContent(content))
	})

	t.Run("no frontmatter", func(t *testing.T) {
		content := "just body\n"
		assert.Equal(t, content, ExtractBodyContent(content))
	})

	t.Run("unterminated frontmatter", func(t *testing.T) {
		content := "---\nname: x\nbody without closing"
		assert.Equal(t, content, ExtractBodyContent(content))
	})
}

func TestIsValidName(t *testing.T) {
	valid := []string{"pdf", "pdf-processing", "a1-b2-c3", "x"}
	for _, name := range valid {
		assert.True(t, IsValidName(name), name)
	}

	invalid := []string{"", "PDF", "pdf_processing", "-pdf", "pdf-", "pdf--processing", "pdf processing", "pdf.processing"}
	for _, name := range invalid {
		assert.False(t, IsValidName(name), name)
	}
}
