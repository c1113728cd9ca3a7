package validate

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/skillkit/skillkit/pkg/license"
	"github.com/skillkit/skillkit/pkg/skills"
)

// requiredElements are the sections every protective license must contain,
// paired with the failure message reported when absent.
var requiredElements = []struct {
	element string
	message string
}{
	{"AI/ML TRAINING PROHIBITION", "missing AI/ML training prohibition section"},
	{"SHALL NOT", "missing explicit prohibition language"},
	{"training data for any artificial intelligence", "missing AI training prohibition"},
	{"COMMERCIAL USE RESTRICTION", "missing commercial use restriction"},
	{"REDISTRIBUTION RESTRICTION", "missing redistribution restriction"},
	{"Copyright (c)", "missing copyright notice"},
	{"All rights reserved", "missing rights reservation"},
	{"LICENSE VIOLATIONS", "missing violation consequences section"},
	{"GOVERNING LAW", "missing governing law section"},
}

// aiProhibitionTerms must all appear (case-insensitive) for the AI training
// prohibition to count as comprehensive.
var aiProhibitionTerms = []string{
	"training data",
	"machine learning",
	"large language model",
	"fine-tuning",
	"embeddings",
	"vector representations",
	"retrieval-augmented generation",
	"RAG",
	"data mining",
	"synthetic data generation",
}

// placeholders indicate an unfinished license when left in the text.
var placeholders = []string{
	"[YOUR NAME",
	"[Contact information to be provided]",
	"[YOUR EMAIL",
	"[YOUR JURISDICTION",
}

var copyrightLineRe = regexp.MustCompile(`Copyright \(c\) \d{4} (.+)`)
var frontmatterRe = regexp.MustCompile(`(?s)^---\n(.*?)\n---`)

// Licensing validates that a skill has a properly applied protective license:
// LICENSE.txt with the required sections, a frontmatter reference in SKILL.md,
// a comprehensive AI training prohibition, and complete entity information.
func Licensing(skillPath string) (*Report, error) {
	dir, err := resolveSkillDir(skillPath)
	if err != nil {
		return nil, err
	}

	report := &Report{SkillDir: dir}

	licensePath := filepath.Join(dir, license.LicenseFileName)
	content, readErr := os.ReadFile(licensePath)

	checkLicenseFile(report, content, readErr)
	checkSkillLicenseRef(report, dir)

	if readErr == nil {
		checkAIProhibition(report, string(content))
		checkEntityInfo(report, string(content))
	}

	return report, nil
}

func checkLicenseFile(report *Report, content []byte, readErr error) {
	if readErr != nil {
		report.add("LICENSE.txt", false, "%s not found", license.LicenseFileName)
		return
	}

	text := string(content)
	for _, req := range requiredElements {
		if !strings.Contains(text, req.element) {
			report.add("LICENSE.txt", false, "%s", req.message)
			return
		}
	}

	report.add("LICENSE.txt", true, "%s is properly formatted", license.LicenseFileName)
}

func checkSkillLicenseRef(report *Report, dir string) {
	content, err := os.ReadFile(filepath.Join(dir, skills.SkillFileName))
	if err != nil {
		report.add("SKILL.md", false, "%s not found", skills.SkillFileName)
		return
	}

	text := string(content)
	if !strings.HasPrefix(text, "---") {
		report.add("SKILL.md", false, "missing YAML frontmatter")
		return
	}

	match := frontmatterRe.FindStringSubmatch(text)
	if match == nil {
		report.add("SKILL.md", false, "invalid frontmatter format")
		return
	}

	frontmatter := match[1]
	if !strings.Contains(frontmatter, "license:") {
		report.add("SKILL.md", false, "missing license field in frontmatter")
		return
	}
	if !strings.Contains(frontmatter, license.LicenseFileName) {
		report.add("SKILL.md", false, "license field doesn't reference %s", license.LicenseFileName)
		return
	}

	report.add("SKILL.md", true, "properly references license")
}

func checkAIProhibition(report *Report, content string) {
	lower := strings.ToLower(content)

	var missing []string
	for _, term := range aiProhibitionTerms {
		if !strings.Contains(lower, strings.ToLower(term)) {
			missing = append(missing, term)
		}
	}

	if len(missing) > 0 {
		report.add("AI Prohibition", false, "AI prohibition incomplete, missing terms: %s", strings.Join(missing, ", "))
		return
	}

	report.add("AI Prohibition", true, "comprehensive AI training prohibition found")
}

func checkEntityInfo(report *Report, content string) {
	var found []string
	for _, placeholder := range placeholders {
		if strings.Contains(content, placeholder) {
			found = append(found, placeholder)
		}
	}
	if len(found) > 0 {
		report.add("Entity Info", false, "license contains placeholders: %s", strings.Join(found, ", "))
		return
	}

	match := copyrightLineRe.FindStringSubmatch(content)
	if match == nil {
		report.add("Entity Info", false, "missing or invalid copyright statement")
		return
	}

	entity := strings.TrimSpace(match[1])
	if len(entity) < 3 {
		report.add("Entity Info", false, "entity name appears incomplete")
		return
	}

	report.add("Entity Info", true, "entity information complete: %s", entity)
}
