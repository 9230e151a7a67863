package cmd

import (
	"context"
	"fmt"

	"casedesk/config"
	"casedesk/config/database"
	"casedesk/internal/workspace/model"
	"casedesk/internal/workspace/repository"
	"casedesk/pkg/logger"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "casedesk",
	Short: "Legal case workspace dashboard backend",
	Long: `casedesk serves the case management dashboard: the workspace listing,
the case detail capture flow and live updates for connected dashboards.

Workspaces created through the API live for the lifetime of the process.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	// Running without a subcommand starts the server.
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.AddCommand(serveCmd, listCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	logger.Init(cfg.Log.Level)
	return cfg, nil
}

// loadSeed imports the case catalogue, or the built-in seed when no
// database is configured.
func loadSeed(ctx context.Context, cfg config.SeedConfig) ([]model.Workspace, error) {
	if !cfg.Enabled() {
		logger.Sugar.Info("No seed database configured, using built-in seed")
		return repository.DefaultSeed(), nil
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	seed, err := repository.NewSeedRepository(db).LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	logger.Sugar.Infof("Imported %d workspaces from seed database", len(seed))
	return seed, nil
}
