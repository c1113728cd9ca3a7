package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillkit/skillkit/pkg/presenter"
	"github.com/skillkit/skillkit/pkg/skills"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered skills",
	Long:  `List all skills found in the local and global skill directories with their names, descriptions, and paths.`,
	Run: func(_ *cobra.Command, _ []string) {
		discovery, err := skills.NewDiscovery()
		if err != nil {
			presenter.Error(err, "Failed to initialize skill discovery")
			os.Exit(1)
		}

		allSkills, err := discovery.DiscoverSkills()
		if err != nil {
			presenter.Error(err, "Failed to discover skills")
			os.Exit(1)
		}

		if len(allSkills) == 0 {
			presenter.Info("No skills found")
			return
		}

		names := make([]string, 0, len(allSkills))
		for name := range allSkills {
			names = append(names, name)
		}
		sort.Strings(names)

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tLICENSE\tDIRECTORY\tDESCRIPTION")
		fmt.Fprintln(tw, "----\t-------\t---------\t-----------")

		for _, name := range names {
			skill := allSkills[name]
			description := truncateDescription(skill.Description)
			license := skill.License
			if license == "" {
				license = "-"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", skill.Name, license, skill.Directory, description)
		}
		tw.Flush()
	},
}

// truncateDescription shortens long descriptions for the table, counting
// runes so multi-byte characters are never split.
func truncateDescription(description string) string {
	runes := []rune(description)
	if len(runes) > 60 {
		return string(runes[:57]) + "..."
	}
	return description
}

func init() {
	rootCmd.AddCommand(listCmd)
}
