package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerflow-dev/ledgerflow/internal/queue"
	"github.com/ledgerflow-dev/ledgerflow/internal/reports"
)

func newStatusCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status <flow-id>",
		Short: "Show per-report status of a flow",
		Args:  cobra.ExactArgs(1),
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

			statuses, err := reports.NewService(store).FlowStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			for _, s := range statuses {
				line := fmt.Sprintf("%s\t%s", s.Name, s.State)
				if s.ExecutionTime != nil {
					line += "\t" + *s.ExecutionTime
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}
