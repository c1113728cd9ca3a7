package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skillkit/skillkit/pkg/audit"
	"github.com/skillkit/skillkit/pkg/license"
	"github.com/skillkit/skillkit/pkg/logger"
	"github.com/skillkit/skillkit/pkg/presenter"
)

type LicenseApplyConfig struct {
	SkillPath       string
	Tier            string
	EntityName      string
	EntityType      string
	Jurisdiction    string
	County          string
	ContactName     string
	ContactEmail    string
	SecondaryEntity string
	Backup          bool
	DryRun          bool
}

func NewLicenseApplyConfig() *LicenseApplyConfig {
	return &LicenseApplyConfig{
		SkillPath:  ".",
		Tier:       string(license.TierStandard),
		EntityType: string(license.EntityIndividual),
	}
}

var licenseCmd = &cobra.Command{
	Use:   "license",
	Short: "Apply and verify protective skill licenses",
	Long:  `Apply a protective license to a skill directory, or verify an existing one.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var licenseApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a protective license to a skill",
	Long: `Apply a protective license to a skill directory. Writes LICENSE.txt,
records the license in the SKILL.md frontmatter, and for the maximum tier
emits forensic metadata alongside the license.

Examples:
  skillkit license apply --skill-path ./pdf-processing --entity-name "Acme Robotics LLC" --entity-type llc --jurisdiction California
  skillkit license apply --skill-path . --tier maximum --entity-name "Jane Doe" --contact-email jane@example.com
  skillkit license apply --skill-path . --entity-name "Jane Doe" --secondary-entity "John Doe" --dry-run`,
	Run: func(cmd *cobra.Command, _ []string) {
		config := getLicenseApplyConfigFromFlags(cmd)
		applyLicenseCmd(cmd.Context(), config)
	},
}

var licenseVerifyCmd = &cobra.Command{
	Use:   "verify [path]",
	Short: "Verify the license applied to a skill",
	Long: `Verify that a skill directory carries a complete protective license.
Runs the licensing checks, plus the maximum protection checks when the
license file declares the maximum tier.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		skillPath := "."
		if len(args) > 0 {
			skillPath = args[0]
		}
		verifyLicenseCmd(cmd.Context(), skillPath)
	},
}

func init() {
	defaults := NewLicenseApplyConfig()
	licenseApplyCmd.Flags().String("skill-path", defaults.SkillPath, "Path to the skill directory")
	licenseApplyCmd.Flags().String("tier", defaults.Tier, "License tier (standard or maximum)")
	licenseApplyCmd.Flags().String("entity-name", "", "Name of the licensing entity")
	licenseApplyCmd.Flags().String("entity-type", defaults.EntityType, "Entity type (individual, corporation, llc, medical_corporation)")
	licenseApplyCmd.Flags().String("jurisdiction", "", "Governing jurisdiction (e.g. California)")
	licenseApplyCmd.Flags().String("county", "", "County for venue provisions (maximum tier)")
	licenseApplyCmd.Flags().String("contact-name", "", "Licensing contact name")
	licenseApplyCmd.Flags().String("contact-email", "", "Licensing contact email")
	licenseApplyCmd.Flags().String("secondary-entity", "", "Second owner for joint ownership")
	licenseApplyCmd.Flags().Bool("backup", defaults.Backup, "Write SKILL.md.bak before modifying SKILL.md")
	licenseApplyCmd.Flags().Bool("dry-run", defaults.DryRun, "Show what would change without writing files")

	licenseCmd.AddCommand(licenseApplyCmd)
	licenseCmd.AddCommand(licenseVerifyCmd)
	rootCmd.AddCommand(licenseCmd)
}

func getLicenseApplyConfigFromFlags(cmd *cobra.Command) *LicenseApplyConfig {
	config := NewLicenseApplyConfig()
	flags := map[string]*string{
		"skill-path":       &config.SkillPath,
		"tier":             &config.Tier,
		"entity-name":      &config.EntityName,
		"entity-type":      &config.EntityType,
		"jurisdiction":     &config.Jurisdiction,
		"county":           &config.County,
		"contact-name":     &config.ContactName,
		"contact-email":    &config.ContactEmail,
		"secondary-entity": &config.SecondaryEntity,
	}
	for name, dest := range flags {
		if value, err := cmd.Flags().GetString(name); err == nil {
			*dest = value
		}
	}
	if backup, err := cmd.Flags().GetBool("backup"); err == nil {
		config.Backup = backup
	}
	if dryRun, err := cmd.Flags().GetBool("dry-run"); err == nil {
		config.DryRun = dryRun
	}
	return config
}

func (c *LicenseApplyConfig) licenseConfig() (*license.Config, error) {
	tier, err := license.ParseTier(c.Tier)
	if err != nil {
		return nil, err
	}
	entityType, err := license.ParseEntityType(c.EntityType)
	if err != nil {
		return nil, err
	}

	config := &license.Config{
		Tier:            tier,
		EntityName:      c.EntityName,
		EntityType:      entityType,
		Jurisdiction:    c.Jurisdiction,
		County:          c.County,
		ContactName:     c.ContactName,
		ContactEmail:    c.ContactEmail,
		SecondaryEntity: c.SecondaryEntity,
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func applyLicenseCmd(ctx context.Context, config *LicenseApplyConfig) {
	licenseConfig, err := config.licenseConfig()
	if err != nil {
		presenter.Error(err, "Invalid license configuration")
		os.Exit(1)
	}

	result, err := license.Apply(ctx, config.SkillPath, licenseConfig, license.ApplyOptions{
		Backup: config.Backup,
		DryRun: config.DryRun,
	})
	if err != nil {
		presenter.Error(err, "Failed to apply license")
		os.Exit(1)
	}

	if config.DryRun {
		presenter.Section(fmt.Sprintf("Dry run for %s", result.SkillDir))
		presenter.Info(fmt.Sprintf("Would write %s (%d bytes)", result.LicensePath, len(result.LicenseContent)))
		if result.SkillDiff != "" {
			fmt.Println(result.SkillDiff)
		} else {
			presenter.Info("SKILL.md already references this license")
		}
		return
	}

	presenter.Success(fmt.Sprintf("Applied %s license to %s", licenseConfig.Tier, result.SkillDir))
	presenter.Info(fmt.Sprintf("License: %s", result.LicensePath))
	if licenseConfig.Tier == license.TierMaximum {
		presenter.Info(fmt.Sprintf("Signature: %s", result.Signature))
		presenter.Info(fmt.Sprintf("Registration marker: %s", result.Marker))
	}
	if !result.SkillUpdated {
		presenter.Warning("SKILL.md frontmatter was not updated (no description field found)")
	}

	recordLicenseAudit(ctx, result, licenseConfig)
}

// recordLicenseAudit stores the application in the audit trail. Failures are
// logged, never surfaced to the user as errors.
func recordLicenseAudit(ctx context.Context, result *license.ApplyResult, config *license.Config) {
	store, err := audit.Open(ctx)
	if err != nil {
		logger.G(ctx).WithError(err).Warn("Failed to open audit store")
		return
	}
	defer store.Close()

	skillName := filepath.Base(result.SkillDir)
	if err := store.RecordLicenseApplied(ctx, skillName, result.SkillDir, config.FullEntityName(), string(config.Tier), result.Signature); err != nil {
		logger.G(ctx).WithError(err).Warn("Failed to record license application")
	}
}

func verifyLicenseCmd(ctx context.Context, skillPath string) {
	report, err := runLicenseChecks(skillPath)
	if err != nil {
		presenter.Error(err, "Failed to verify license")
		os.Exit(1)
	}

	failure := printReport(report)
	recordValidationAudit(ctx, report)

	if failure != nil {
		os.Exit(1)
	}
}
