package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerflow-dev/ledgerflow/internal/buildinfo"
	"github.com/ledgerflow-dev/ledgerflow/internal/config"
	"github.com/ledgerflow-dev/ledgerflow/internal/logging"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "ledgerflow",
		Short:   "Ledger report generation with queryable job flows",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "ledgerflow.yaml", "path to config file")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newGenerateCommand(&configPath))
	rootCmd.AddCommand(newStatusCommand(&configPath))
	rootCmd.AddCommand(newRunCommand(&configPath))
	rootCmd.AddCommand(newWorkerCommand(&configPath))

	return rootCmd
}

// loadConfig loads the config file and initializes logging from it.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		return nil, fmt.Errorf("configuring logging: %w", err)
	}
	return cfg, nil
}
