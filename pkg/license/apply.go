package license

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/aymanbagabas/go-udiff"
	"github.com/pkg/errors"

	"github.com/skillkit/skillkit/pkg/logger"
	"github.com/skillkit/skillkit/pkg/skills"
)

// LicenseFileName is the license document written into the skill directory.
const LicenseFileName = "LICENSE.txt"

// Frontmatter license references written per tier.
const (
	standardLicenseRef = "See LICENSE.txt for complete terms"
	maximumLicenseRef  = "MAXIMUM PROTECTION v2.0 - See LICENSE.txt"
)

// ApplyOptions control side effects of Apply.
type ApplyOptions struct {
	Backup bool // Copy SKILL.md to SKILL.md.bak before rewriting
	DryRun bool // Render everything but write nothing
}

// ApplyResult reports what Apply did (or would do, for dry runs).
type ApplyResult struct {
	SkillDir       string
	LicensePath    string
	LicenseContent string
	Signature      string // Empty for the standard tier
	Marker         string // Empty for the standard tier
	SkillDiff      string // Unified diff of the SKILL.md change, empty if unchanged
	SkillUpdated   bool
}

// Apply renders the license for config and applies it to the skill directory:
// LICENSE.txt is written, the SKILL.md frontmatter gains (or updates) its
// license reference, and the maximum tier also records forensic metadata.
func Apply(ctx context.Context, skillPath string, config *Config, opts ApplyOptions) (*ApplyResult, error) {
	log := logger.G(ctx)

	skillDir, err := filepath.Abs(skillPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve skill path")
	}

	info, err := os.Stat(skillDir)
	if err != nil {
		return nil, errors.Wrapf(err, "skill directory not found: %s", skillDir)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("path is not a directory: %s", skillDir)
	}

	skillFile := filepath.Join(skillDir, skills.SkillFileName)
	skillContent, err := os.ReadFile(skillFile)
	if err != nil {
		return nil, errors.Wrapf(err, "%s not found in %s", skills.SkillFileName, skillDir)
	}

	now := time.Now()
	licenseContent, signature, marker, err := Render(config, skillDir, now)
	if err != nil {
		return nil, err
	}

	updated, changed := updateFrontmatterLicense(string(skillContent), config.Tier)

	result := &ApplyResult{
		SkillDir:       skillDir,
		LicensePath:    filepath.Join(skillDir, LicenseFileName),
		LicenseContent: licenseContent,
		Signature:      signature,
		Marker:         marker,
		SkillUpdated:   changed,
	}
	if changed {
		result.SkillDiff = udiff.Unified(skills.SkillFileName, skills.SkillFileName, string(skillContent), updated)
	}

	if opts.DryRun {
		log.WithField("skill", filepath.Base(skillDir)).Debug("Dry run, skipping writes")
		return result, nil
	}

	if opts.Backup {
		backupPath := skillFile + ".bak"
		if err := os.WriteFile(backupPath, skillContent, 0o644); err != nil {
			return nil, errors.Wrap(err, "failed to write SKILL.md backup")
		}
		log.WithField("backup", backupPath).Debug("Wrote SKILL.md backup")
	}

	if err := os.WriteFile(result.LicensePath, []byte(licenseContent), 0o644); err != nil {
		return nil, errors.Wrap(err, "failed to write LICENSE.txt")
	}

	if config.Tier == TierMaximum {
		metadata := NewForensicMetadata(skillDir, config.FullEntityName(), signature, marker, now)
		if err := metadata.Write(skillDir); err != nil {
			// Forensic metadata is supplementary, the license itself is in place
			log.WithError(err).Warn("Failed to write forensic metadata")
		}
	}

	if changed {
		if err := os.WriteFile(skillFile, []byte(updated), 0o644); err != nil {
			return nil, errors.Wrap(err, "failed to update SKILL.md")
		}
	}

	log.WithFields(map[string]interface{}{
		"skill":  filepath.Base(skillDir),
		"entity": config.FullEntityName(),
		"tier":   config.Tier,
	}).Info("Applied protective license")

	return result, nil
}

var (
	descriptionLineRe = regexp.MustCompile(`(?s)(description:.*?)(\n---)`)
	licenseLineRe     = regexp.MustCompile(`license:[^\n]*`)
)

// updateFrontmatterLicense inserts a license reference into the SKILL.md
// frontmatter after the description field. When a license field already
// exists the standard tier leaves it alone; the maximum tier replaces it.
func updateFrontmatterLicense(content string, tier Tier) (string, bool) {
	ref := standardLicenseRef
	if tier == TierMaximum {
		ref = maximumLicenseRef
	}

	if !strings.Contains(content, "license:") {
		loc := descriptionLineRe.FindStringSubmatchIndex(content)
		if loc == nil {
			return content, false
		}
		updated := content[:loc[3]] + "\nlicense: " + ref + content[loc[4]:]
		return updated, true
	}

	if tier == TierMaximum {
		loc := licenseLineRe.FindStringIndex(content)
		existing := content[loc[0]:loc[1]]
		replacement := "license: " + ref
		if existing == replacement {
			return content, false
		}
		return content[:loc[0]] + replacement + content[loc[1]:], true
	}

	return content, false
}
