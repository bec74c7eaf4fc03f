package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tair/virtual-tryon/kafka"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Work with favorite domain events",
}

var eventsWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print favorite events as they are published",
	RunE:  runEventsWatch,
}

func init() {
	eventsCmd.AddCommand(eventsWatchCmd)
	rootCmd.AddCommand(eventsCmd)
}

func runEventsWatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(cfg.Kafka.Brokers) == 0 {
		return errors.New("kafka.brokers is not configured")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer, err := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID)
	if err != nil {
		return err
	}
	defer consumer.Close()

	out := json.NewEncoder(cmd.OutOrStdout())
	printEvent := func(_ context.Context, event kafka.FavoriteEvent) error {
		if err := out.Encode(event); err != nil {
			return fmt.Errorf("failed to print event: %w", err)
		}
		return nil
	}
	consumer.RegisterHandler(kafka.EventTypeFavoriteAdded, printEvent)
	consumer.RegisterHandler(kafka.EventTypeFavoriteRemoved, printEvent)

	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
