package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaffold(t *testing.T) {
	tmpDir := t.TempDir()

	skillDir, err := Scaffold(tmpDir, ScaffoldConfig{
		Name:        "pdf-processing",
		Description: "Extract text and tables from PDF files",
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "pdf-processing"), skillDir)

	content, err := os.ReadFile(filepath.Join(skillDir, SkillFileName))
	require.NoError(t, err)
	assert.Contains(t, string(content), "name: pdf-processing")
	assert.Contains(t, string(content), "description: Extract text and tables from PDF files")
	assert.Contains(t, string(content), "# Pdf Processing")

	for _, sub := range []string{"scripts", "references", "assets"} {
		info, err := os.Stat(filepath.Join(skillDir, sub))
		require.NoError(t, err, sub)
		assert.True(t, info.IsDir())
	}

	// The scaffolded skill must load cleanly
	skill, err := LoadSkill(filepath.Join(skillDir, SkillFileName))
	require.NoError(t, err)
	assert.Equal(t, "pdf-processing", skill.Name)
}

func TestScaffold_RejectsInvalidName(t *testing.T) {
	tmpDir := t.TempDir()

	for _, name := range []string{"Bad Name", "UPPER", "under_score", "double--hyphen"} {
		_, err := Scaffold(tmpDir, ScaffoldConfig{Name: name, Description: "d"})
		assert.ErrorContains(t, err, "invalid skill name", name)
	}
}

func TestScaffold_RequiresDescription(t *testing.T) {
	_, err := Scaffold(t.TempDir(), ScaffoldConfig{Name: "ok-name"})
	assert.ErrorContains(t, err, "description is required")
}

func TestScaffold_RefusesOverwrite(t *testing.T) {
	tmpDir := t.TempDir()
	config := ScaffoldConfig{Name: "once-only", Description: "d"}

	_, err := Scaffold(tmpDir, config)
	require.NoError(t, err)

	_, err = Scaffold(tmpDir, config)
	assert.ErrorContains(t, err, "already exists")
}
