package cli

import (
	"github.com/spf13/cobra"

	"github.com/eleven-am/tick/internal/logger"
	"github.com/eleven-am/tick/pkg/tick"
)

// Global configuration variables
var (
	configFile  string
	cfg         *Config
	databaseURL string
	serverURL   string
	debug       bool
	verbose     bool
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tick",
		Short: "Tick - Todo Record Service",
		Long: `Tick is a small todo record service: an HTTP CRUD API over a single
todos table, plus a client for driving it from the command line.

Tick provides:
- An API server over sqlite or postgres (tick serve)
- Client commands that talk to a running server (list, add, done, rm)
- A single yaml config file shared by server and client`,
		Version: tick.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(debug, verbose)

			var err error
			cfg, err = LoadConfig(configFile)
			if err != nil {
				if verbose {
					cmd.Printf("Warning: Failed to load config file: %v\n", err)
				}
			}
			if cfg == nil {
				cfg = DefaultConfig()
			}

			if databaseURL != "" {
				cfg.Database.DSN = databaseURL
			}
			if serverURL != "" {
				cfg.Client.BaseURL = serverURL
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: tick.yaml)")
	rootCmd.PersistentFlags().StringVar(&databaseURL, "url", "", "database connection URL or sqlite path")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "base URL of the API server for client commands")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose output")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}
