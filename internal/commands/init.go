package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ledgerflow-dev/ledgerflow/internal/config"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new LedgerFlow project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(absDir)
		},
	}
	return cmd
}

func runInit(dir string) error {
	cfg := config.Default()

	for _, d := range []string{cfg.SourceDir, cfg.ReportDir} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(filepath.Join(dir, "ledgerflow.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Initialized LedgerFlow project at %s\n", dir)
	return nil
}
