package commands

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgerflow-dev/ledgerflow/internal/queue"
	"github.com/ledgerflow-dev/ledgerflow/internal/worker"
)

func newWorkerCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Run the report worker until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			interval, err := time.ParseDuration(cfg.Worker.PollInterval)
			if err != nil {
				return fmt.Errorf("parsing poll interval: %w", err)
			}

			store, err := queue.Open(cfg.QueueDB)
			if err != nil {
				return err
			}
			defer store.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w := worker.New(store, worker.NewRunner(cfg), interval)
			if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
