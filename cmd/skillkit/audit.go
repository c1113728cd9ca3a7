package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillkit/skillkit/pkg/audit"
	"github.com/skillkit/skillkit/pkg/presenter"
)

type AuditListConfig struct {
	Limit int
	Skill string
}

func NewAuditListConfig() *AuditListConfig {
	return &AuditListConfig{
		Limit: 20,
		Skill: "",
	}
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Inspect the local audit trail",
	Long:  `Inspect the local history of license applications and validation runs.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var auditListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent audit events",
	Long: `List recent license applications and validation runs, newest first.

Examples:
  skillkit audit list
  skillkit audit list --limit 50
  skillkit audit list --skill pdf-processing`,
	Run: func(cmd *cobra.Command, _ []string) {
		config := getAuditListConfigFromFlags(cmd)
		ctx := cmd.Context()

		store, err := audit.Open(ctx)
		if err != nil {
			presenter.Error(err, "Failed to open audit store")
			os.Exit(1)
		}
		defer store.Close()

		var events []audit.Event
		if config.Skill != "" {
			events, err = store.ListBySkill(ctx, config.Skill, config.Limit)
		} else {
			events, err = store.List(ctx, config.Limit)
		}
		if err != nil {
			presenter.Error(err, "Failed to list audit events")
			os.Exit(1)
		}

		if len(events) == 0 {
			presenter.Info("No audit events recorded")
			return
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "TIME\tEVENT\tSKILL\tDETAILS")
		fmt.Fprintln(tw, "----\t-----\t-----\t-------")

		for _, event := range events {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				event.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				event.Kind,
				event.SkillName,
				eventDetails(event))
		}
		tw.Flush()
	},
}

func eventDetails(event audit.Event) string {
	switch event.Kind {
	case audit.EventLicenseApplied:
		return fmt.Sprintf("%s tier, entity %s", event.Tier, event.Entity)
	case audit.EventValidationRun:
		if event.Passed {
			return "passed"
		}
		return fmt.Sprintf("failed (%d checks)", event.Failures)
	}
	return ""
}

func init() {
	defaults := NewAuditListConfig()
	auditListCmd.Flags().IntP("limit", "n", defaults.Limit, "Maximum number of events to show")
	auditListCmd.Flags().String("skill", defaults.Skill, "Only show events for a single skill")

	auditCmd.AddCommand(auditListCmd)
	rootCmd.AddCommand(auditCmd)
}

func getAuditListConfigFromFlags(cmd *cobra.Command) *AuditListConfig {
	config := NewAuditListConfig()
	if limit, err := cmd.Flags().GetInt("limit"); err == nil {
		config.Limit = limit
	}
	if skill, err := cmd.Flags().GetString("skill"); err == nil {
		config.Skill = skill
	}
	return config
}
