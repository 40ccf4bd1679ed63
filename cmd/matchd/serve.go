package main

import (
	"fmt"
	"os"

	"github.com/jonathan/cofounder-match/internal/config"
	"github.com/jonathan/cofounder-match/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveConfigPath string
	servePort       int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for profiles, matching,
and chat advice.

Configuration can be loaded from a JSON file using --config. Command-line
arguments and environment variables override config file values.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// Step 1: Load config file if provided
	var fileCfg config.Config
	if serveConfigPath != "" {
		loadedCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		fileCfg = *loadedCfg
	}

	// Step 2: Flags and environment take priority; config file fills the rest
	cfg := config.Config{
		Port:        servePort,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
	}
	cfg = cfg.MergeWithDefaults(fileCfg)
	cfg = cfg.MergeWithDefaults(config.Config{Port: 8080})

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or config database_url is required")
	}

	// API key is optional: chat advice falls back to deterministic explanations

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		APIKey:      cfg.APIKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
