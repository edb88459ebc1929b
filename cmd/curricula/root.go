package main

import (
	"github.com/spf13/cobra"
	"github.com/stemsi/curriforge/internal/config"
	"github.com/stemsi/curriforge/internal/database"
	"github.com/stemsi/curriforge/internal/logger"
	"github.com/stemsi/curriforge/internal/repository"
	"github.com/stemsi/curriforge/internal/service"
)

// Global flag values.
var (
	flagDatabaseURL string
	flagJSON        bool
)

var (
	store             repository.CurriculumRepository
	curriculumService *service.CurriculumService
)

var rootCmd = &cobra.Command{
	Use:           "curricula",
	Short:         "Manage saved curricula",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if flagDatabaseURL != "" {
			cfg.DatabaseURL = flagDatabaseURL
		}

		// Keep the CLI quiet unless asked otherwise.
		level := cfg.LogLevel
		if level == "info" {
			level = "warn"
		}
		log := logger.Setup(level, cfg.LogFormat)

		s, err := database.OpenStore(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		store = s
		curriculumService = service.NewCurriculumService(s, log)
		return nil
	},
}

// closeStore releases the store opened by PersistentPreRunE. It runs after
// Execute returns since cobra skips post-run hooks when RunE fails.
func closeStore() error {
	if store == nil {
		return nil
	}
	err := store.Close()
	store = nil
	curriculumService = nil
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDatabaseURL, "database-url", "", "store location (default: $DATABASE_URL or curricula.db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(deleteCmd)
}
