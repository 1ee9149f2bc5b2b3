package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerflow-dev/ledgerflow/internal/worker"
)

func newRunCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Generate all reports synchronously in one pass",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			elapsed, err := worker.NewRunner(cfg).RunAll(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("finished in %.2f seconds\n", elapsed.Seconds())
			return nil
		},
	}
}
