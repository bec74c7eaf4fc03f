package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tair/virtual-tryon/internal/config"
	"github.com/tair/virtual-tryon/pkg/logger"
)

// Version is stamped at build time
var Version = "dev"

var configFile string

var rootCmd = &cobra.Command{
	Use:   "tryon",
	Short: "Virtual shoe try-on",
	Long: `tryon serves the shoe catalog and favorites API used by the web and
mobile try-on clients, and provides tooling for the AR model pipeline.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./tryon.yaml)")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration and sets up the global logger from it
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.App.Name, cfg.App.IsDevelopment())
	logger.SetLevel(cfg.Log.Level)
	return cfg, nil
}
