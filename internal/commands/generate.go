package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerflow-dev/ledgerflow/internal/queue"
	"github.com/ledgerflow-dev/ledgerflow/internal/reports"
)

func newGenerateCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Submit a generate-all report flow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			store, err := queue.Open(cfg.QueueDB)
			if err != nil {
				return err
			}
			defer store.Close()

			flowID, err := reports.NewService(store).GenerateAll(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println(flowID)
			return nil
		},
	}
}
