package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skillkit/skillkit/pkg/logger"
	"github.com/skillkit/skillkit/pkg/presenter"
)

func init() {
	// Environment variables
	viper.SetEnvPrefix("SKILLKIT")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.skillkit")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (json, text, fmt)")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
}

var rootCmd = &cobra.Command{
	Use:   "skillkit",
	Short: "Skillkit CLI for authoring, licensing, and packaging agent skills",
	Long: `Skillkit manages agent skill directories: scaffolding new skills,
applying protective licenses, validating structure and license terms,
and packaging skills into distributable archives.`,
	// Viper resolves the effective value: explicit flag > env > config file > default
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if level := viper.GetString("log_level"); level != "" {
			logger.SetLogLevel(level)
		}
		if format := viper.GetString("log_format"); format != "" {
			logger.SetLogFormat(format)
		}
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
		os.Exit(1)
	},
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		presenter.Warning("Cancellation requested, shutting down...")
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		presenter.Error(err, "Command failed")
		os.Exit(1)
	}
}
