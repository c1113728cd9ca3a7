package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/skillkit/skillkit/pkg/audit"
	"github.com/skillkit/skillkit/pkg/license"
	"github.com/skillkit/skillkit/pkg/logger"
	"github.com/skillkit/skillkit/pkg/presenter"
	"github.com/skillkit/skillkit/pkg/validate"
)

type ValidateConfig struct {
	Licensing    bool
	Tier         string
	Watch        bool
	DebounceTime int
}

func NewValidateConfig() *ValidateConfig {
	return &ValidateConfig{
		Licensing:    false,
		Tier:         "",
		Watch:        false,
		DebounceTime: 500,
	}
}

func (c *ValidateConfig) Validate() error {
	if c.Tier != "" {
		if _, err := license.ParseTier(c.Tier); err != nil {
			return err
		}
	}
	if c.DebounceTime < 0 {
		return errors.Errorf("debounce time cannot be negative: %d", c.DebounceTime)
	}
	return nil
}

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a skill directory",
	Long: `Validate a skill directory against the SKILL.md conventions: frontmatter,
naming, and directory layout.

With --licensing the license checks run too, and --tier maximum adds the
maximum protection checks. With --watch the skill is re-validated whenever
its files change.

Examples:
  skillkit validate ./pdf-processing
  skillkit validate ./pdf-processing --licensing
  skillkit validate ./pdf-processing --licensing --tier maximum
  skillkit validate ./pdf-processing --watch`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getValidateConfigFromFlags(cmd)
		if err := config.Validate(); err != nil {
			presenter.Error(err, "Invalid configuration")
			os.Exit(1)
		}

		skillPath := "."
		if len(args) > 0 {
			skillPath = args[0]
		}

		ctx := cmd.Context()

		if config.Watch {
			runValidateWatch(ctx, skillPath, config)
			return
		}

		report, err := runValidation(skillPath, config)
		if err != nil {
			presenter.Error(err, "Failed to validate skill")
			os.Exit(1)
		}

		failure := printReport(report)
		recordValidationAudit(ctx, report)

		if failure != nil {
			os.Exit(1)
		}
	},
}

func init() {
	defaults := NewValidateConfig()
	validateCmd.Flags().Bool("licensing", defaults.Licensing, "Also run the licensing checks")
	validateCmd.Flags().String("tier", defaults.Tier, "License tier to validate against (implies --licensing)")
	validateCmd.Flags().BoolP("watch", "w", defaults.Watch, "Re-validate whenever the skill files change")
	validateCmd.Flags().Int("debounce", defaults.DebounceTime, "Debounce time in milliseconds for file change events")
	rootCmd.AddCommand(validateCmd)
}

func getValidateConfigFromFlags(cmd *cobra.Command) *ValidateConfig {
	config := NewValidateConfig()
	if licensing, err := cmd.Flags().GetBool("licensing"); err == nil {
		config.Licensing = licensing
	}
	if tier, err := cmd.Flags().GetString("tier"); err == nil {
		config.Tier = tier
	}
	if watch, err := cmd.Flags().GetBool("watch"); err == nil {
		config.Watch = watch
	}
	if debounce, err := cmd.Flags().GetInt("debounce"); err == nil {
		config.DebounceTime = debounce
	}
	return config
}

func runValidation(skillPath string, config *ValidateConfig) (*validate.Report, error) {
	report, err := validate.Skill(skillPath)
	if err != nil {
		return nil, err
	}

	if config.Licensing || config.Tier != "" {
		licensing, err := validate.Licensing(skillPath)
		if err != nil {
			return nil, err
		}
		report.Merge(licensing)
	}

	if config.Tier == string(license.TierMaximum) {
		maximum, err := validate.MaximumProtection(skillPath)
		if err != nil {
			return nil, err
		}
		report.Merge(maximum)
	}

	return report, nil
}

// runLicenseChecks runs the licensing checks, adding the maximum protection
// checks when the license file declares the maximum tier.
func runLicenseChecks(skillPath string) (*validate.Report, error) {
	report, err := validate.Licensing(skillPath)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(filepath.Join(report.SkillDir, license.LicenseFileName))
	if err == nil && strings.Contains(string(content), "MAXIMUM PROTECTION") {
		maximum, err := validate.MaximumProtection(skillPath)
		if err != nil {
			return nil, err
		}
		report.Merge(maximum)
	}

	return report, nil
}

// printReport renders the per-check results and returns the aggregated
// failure error, nil when every check passed.
func printReport(report *validate.Report) error {
	presenter.Section(fmt.Sprintf("Validation for %s", report.SkillDir))

	for _, check := range report.Checks {
		if check.OK {
			presenter.Success(fmt.Sprintf("%s: %s", check.Name, check.Message))
		} else {
			presenter.Error(errors.New(check.Message), check.Name)
		}
	}

	if err := report.Err(); err != nil {
		presenter.Warning(fmt.Sprintf("%d of %d checks failed", len(report.Failures()), len(report.Checks)))
		return err
	}

	presenter.Info(fmt.Sprintf("%d checks passed", len(report.Checks)))
	return nil
}

// recordValidationAudit stores the run in the audit trail. Failures are
// logged, never surfaced to the user as errors.
func recordValidationAudit(ctx context.Context, report *validate.Report) {
	store, err := audit.Open(ctx)
	if err != nil {
		logger.G(ctx).WithError(err).Warn("Failed to open audit store")
		return
	}
	defer store.Close()

	skillName := filepath.Base(report.SkillDir)
	if err := store.RecordValidationRun(ctx, skillName, report.SkillDir, report.Passed(), len(report.Failures())); err != nil {
		logger.G(ctx).WithError(err).Warn("Failed to record validation run")
	}
}

func runValidateWatch(ctx context.Context, skillPath string, config *ValidateConfig) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		presenter.Error(err, "Failed to create file watcher")
		os.Exit(1)
	}
	defer watcher.Close()

	err = filepath.Walk(skillPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if info.Name() == ".git" || info.Name() == "node_modules" {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		presenter.Error(err, "Failed to watch skill directory")
		os.Exit(1)
	}

	validateOnce := func() {
		report, err := runValidation(skillPath, config)
		if err != nil {
			presenter.Error(err, "Failed to validate skill")
			return
		}
		if failure := printReport(report); failure != nil {
			logger.G(ctx).WithError(failure).Warn("Validation failed")
		}
		presenter.Separator()
	}

	validateOnce()
	presenter.Info("Watching for changes... Press Ctrl+C to stop")

	debounce := time.Duration(config.DebounceTime) * time.Millisecond
	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logger.G(ctx).WithFields(map[string]interface{}{
				"file":      event.Name,
				"operation": event.Op.String(),
			}).Debug("File change detected")

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case <-pending:
			validateOnce()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			presenter.Error(err, "File watcher error")
		case <-ctx.Done():
			return
		}
	}
}
