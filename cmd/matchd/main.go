// Package main provides the entry point for the co-founder matching service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "matchd",
	Short: "Co-founder matching service",
	Long:  "matchd scores co-founder compatibility across skills, interests, goals, stage, location, availability, and collaboration style, and serves ranked recommendations via REST API or one-shot CLI runs.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
