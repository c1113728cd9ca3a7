package skills

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Subdirectories created alongside SKILL.md when scaffolding a new skill.
var scaffoldSubdirs = []string{"scripts", "references", "assets"}

const skillTemplate = `---
{{ .Frontmatter }}---

# {{ .Title }}

## Overview

{{ .Description }}

## Instructions

Describe step by step how the agent should use this skill.

## Resources

- ` + "`scripts/`" + ` - executable helpers the skill may invoke
- ` + "`references/`" + ` - documents loaded into context as needed
- ` + "`assets/`" + ` - files used in the skill's output
`

// ScaffoldConfig holds the inputs for creating a new skill directory.
type ScaffoldConfig struct {
	Name        string
	Description string
}

// Scaffold creates a new skill directory under baseDir: the directory itself,
// a SKILL.md rendered from the skill template, and the conventional
// subdirectories. It refuses to overwrite an existing SKILL.md.
func Scaffold(baseDir string, config ScaffoldConfig) (string, error) {
	if !IsValidName(config.Name) {
		return "", errors.Errorf("invalid skill name '%s': must be lowercase words joined by single hyphens", config.Name)
	}
	if config.Description == "" {
		return "", errors.New("skill description is required")
	}

	skillDir := filepath.Join(baseDir, config.Name)
	skillFile := filepath.Join(skillDir, SkillFileName)

	if _, err := os.Stat(skillFile); err == nil {
		return "", errors.Errorf("skill '%s' already exists at %s", config.Name, skillDir)
	}

	if err := os.MkdirAll(skillDir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create skill directory")
	}

	content, err := renderSkillTemplate(config)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(skillFile, []byte(content), 0o644); err != nil {
		return "", errors.Wrap(err, "failed to write SKILL.md")
	}

	for _, sub := range scaffoldSubdirs {
		if err := os.MkdirAll(filepath.Join(skillDir, sub), 0o755); err != nil {
			return "", errors.Wrapf(err, "failed to create %s directory", sub)
		}
	}

	return skillDir, nil
}

func renderSkillTemplate(config ScaffoldConfig) (string, error) {
	tmpl, err := template.New("skill").Parse(skillTemplate)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse skill template")
	}

	// YAML marshalling keeps descriptions with colons or quotes valid
	frontmatter, err := yaml.Marshal(Metadata{
		Name:        config.Name,
		Description: config.Description,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal frontmatter")
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]string{
		"Frontmatter": string(frontmatter),
		"Description": config.Description,
		"Title":       titleFromName(config.Name),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to execute skill template")
	}

	return buf.String(), nil
}

// titleFromName turns a hyphenated skill name into a heading, e.g.
// "pdf-processing" becomes "Pdf Processing".
func titleFromName(name string) string {
	words := strings.Split(name, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
