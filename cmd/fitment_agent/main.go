// Package main provides the entry point for the resume fitment service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fitment_agent",
	Short: "Resume intake and job fitment service",
	Long:  "fitment_agent parses uploaded resumes into structured profiles, scores them against a job catalog, and builds candidate fitment dossiers, via REST API or directly from the command line.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
