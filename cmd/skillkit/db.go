package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillkit/skillkit/pkg/audit"
	"github.com/skillkit/skillkit/pkg/db"
	"github.com/skillkit/skillkit/pkg/presenter"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management commands",
	Long:  `Commands for managing the skillkit database (migrations, status, etc.)`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var dbStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database migration status",
	Long:  `Shows the current database migration status, including applied and pending migrations.`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		runner, sqlDB := openMigrationRunner(ctx)
		defer sqlDB.Close()

		applied, err := runner.GetAppliedVersions(ctx)
		if err != nil {
			presenter.Error(err, "Failed to get migration status")
			os.Exit(1)
		}

		appliedMap := make(map[int64]bool)
		for _, v := range applied {
			appliedMap[v] = true
		}

		allMigrations := audit.Migrations()

		presenter.Section("Database Migration Status")
		presenter.Info(fmt.Sprintf("Database: %s", databasePath()))

		appliedCount := 0
		for _, m := range allMigrations {
			status := "[ ]"
			if appliedMap[m.Version] {
				status = "[x]"
				appliedCount++
			}
			fmt.Printf("%s %d - %s\n", status, m.Version, m.Description)
		}

		fmt.Printf("\nApplied: %d/%d migrations\n", appliedCount, len(allMigrations))
	},
}

var dbRollbackCmd = &cobra.Command{
	Use:   "rollback",
	Short: "Rollback the last database migration",
	Long:  `Rolls back the most recently applied database migration. Useful for testing or downgrading skillkit.`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		runner, sqlDB := openMigrationRunner(ctx)
		defer sqlDB.Close()

		applied, err := runner.GetAppliedVersions(ctx)
		if err != nil {
			presenter.Error(err, "Failed to get migration status")
			os.Exit(1)
		}

		if len(applied) == 0 {
			presenter.Warning("No migrations to rollback")
			return
		}

		lastVersion := applied[len(applied)-1]
		presenter.Info(fmt.Sprintf("Rolling back migration %d", lastVersion))

		if err := runner.Rollback(ctx, audit.Migrations()); err != nil {
			presenter.Error(err, "Failed to rollback migration")
			os.Exit(1)
		}

		presenter.Success(fmt.Sprintf("Successfully rolled back migration %d", lastVersion))
	},
}

func openMigrationRunner(ctx context.Context) (*db.MigrationRunner, interface{ Close() error }) {
	dbPath, err := db.DefaultDBPath()
	if err != nil {
		presenter.Error(err, "Failed to determine database path")
		os.Exit(1)
	}

	sqlDB, err := db.Open(ctx, dbPath)
	if err != nil {
		presenter.Error(err, "Failed to open database")
		os.Exit(1)
	}

	return db.NewMigrationRunner(sqlDB), sqlDB
}

func databasePath() string {
	path, err := db.DefaultDBPath()
	if err != nil {
		return "unknown"
	}
	return path
}

func init() {
	dbCmd.AddCommand(dbStatusCmd)
	dbCmd.AddCommand(dbRollbackCmd)
	rootCmd.AddCommand(dbCmd)
}
