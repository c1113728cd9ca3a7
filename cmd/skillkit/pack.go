package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillkit/skillkit/pkg/archive"
	"github.com/skillkit/skillkit/pkg/presenter"
)

type PackConfig struct {
	Output   string
	Excludes []string
}

func NewPackConfig() *PackConfig {
	return &PackConfig{
		Output:   "",
		Excludes: nil,
	}
}

var packCmd = &cobra.Command{
	Use:   "pack [path]",
	Short: "Package a skill directory into an archive",
	Long: `Package a skill directory into a distributable archive with a SHA-256
checksum file. The format follows the output extension: .zip produces a zip
archive, anything else a gzipped tarball.

Examples:
  skillkit pack ./pdf-processing
  skillkit pack ./pdf-processing --output dist/pdf-processing.zip
  skillkit pack ./pdf-processing --exclude "drafts/**"`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getPackConfigFromFlags(cmd)

		skillPath := "."
		if len(args) > 0 {
			skillPath = args[0]
		}

		result, err := archive.Pack(cmd.Context(), skillPath, archive.PackOptions{
			Output:   config.Output,
			Excludes: config.Excludes,
		})
		if err != nil {
			presenter.Error(err, "Failed to pack skill")
			os.Exit(1)
		}

		presenter.Success(fmt.Sprintf("Packed %d files into %s", result.FileCount, result.ArchivePath))
		presenter.Info(fmt.Sprintf("Checksum: %s (%s)", result.Checksum, result.ChecksumPath))
	},
}

var unpackCmd = &cobra.Command{
	Use:   "unpack <archive>",
	Short: "Extract a skill archive",
	Long: `Extract a skill archive (tar.gz or zip) into a destination directory.

Examples:
  skillkit unpack pdf-processing.skill.tar.gz
  skillkit unpack pdf-processing.zip --dest ~/.skillkit/skills/pdf-processing`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dest := "."
		if flagDest, err := cmd.Flags().GetString("dest"); err == nil && flagDest != "" {
			dest = flagDest
		}

		if err := archive.Unpack(cmd.Context(), args[0], dest); err != nil {
			presenter.Error(err, "Failed to unpack archive")
			os.Exit(1)
		}

		presenter.Success(fmt.Sprintf("Unpacked %s into %s", args[0], dest))
	},
}

func init() {
	defaults := NewPackConfig()
	packCmd.Flags().StringP("output", "o", defaults.Output, "Output archive path (default <name>.skill.tar.gz next to the skill)")
	packCmd.Flags().StringSlice("exclude", defaults.Excludes, "Additional glob patterns to exclude")

	unpackCmd.Flags().StringP("dest", "d", "", "Destination directory (default current directory)")

	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(unpackCmd)
}

func getPackConfigFromFlags(cmd *cobra.Command) *PackConfig {
	config := NewPackConfig()
	if output, err := cmd.Flags().GetString("output"); err == nil {
		config.Output = output
	}
	if excludes, err := cmd.Flags().GetStringSlice("exclude"); err == nil {
		config.Excludes = excludes
	}
	return config
}
