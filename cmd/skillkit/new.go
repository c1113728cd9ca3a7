package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillkit/skillkit/pkg/presenter"
	"github.com/skillkit/skillkit/pkg/skills"
)

type NewConfig struct {
	Description string
	Dir         string
}

func NewNewConfig() *NewConfig {
	return &NewConfig{
		Description: "",
		Dir:         ".",
	}
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Scaffold a new skill directory",
	Long: `Scaffold a new skill directory with a SKILL.md template and the
conventional scripts/, references/, and assets/ subdirectories.

The name must be lowercase letters, digits, and hyphens.

Examples:
  skillkit new pdf-processing --description "Extract text and tables from PDFs"
  skillkit new data-cleanup -d "Normalize CSV exports" --dir ~/.skillkit/skills`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getNewConfigFromFlags(cmd)

		skillDir, err := skills.Scaffold(config.Dir, skills.ScaffoldConfig{
			Name:        args[0],
			Description: config.Description,
		})
		if err != nil {
			presenter.Error(err, "Failed to scaffold skill")
			os.Exit(1)
		}

		presenter.Success(fmt.Sprintf("Created skill '%s' at %s", args[0], skillDir))
	},
}

func init() {
	defaults := NewNewConfig()
	newCmd.Flags().StringP("description", "d", defaults.Description, "One-line description of what the skill does and when to use it")
	newCmd.Flags().String("dir", defaults.Dir, "Base directory to create the skill under")
	rootCmd.AddCommand(newCmd)
}

func getNewConfigFromFlags(cmd *cobra.Command) *NewConfig {
	config := NewNewConfig()
	if description, err := cmd.Flags().GetString("description"); err == nil {
		config.Description = description
	}
	if dir, err := cmd.Flags().GetString("dir"); err == nil {
		config.Dir = dir
	}
	return config
}
