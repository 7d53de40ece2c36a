package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-fitment/internal/config"
	"github.com/jonathan/resume-fitment/internal/server"
	"github.com/jonathan/resume-fitment/internal/store"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the resume fitment HTTP API server",
	Long: `Starts the REST API: resume upload and editing, job matching, and
candidate dossiers. Runs against PostgreSQL when DATABASE_URL is set,
otherwise an in-memory store.`,
	RunE: runServe,
}

var (
	serveConfigPath string
	serveAddr       string
	serveDBURL      string
)

func init() {
	serveCommand.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCommand.Flags().StringVar(&serveAddr, "addr", "", "Listen address (defaults to FITMENT_ADDR or :8080)")
	serveCommand.Flags().StringVar(&serveDBURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(serveCommand)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Addr = serveAddr
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = serveDBURL
	}

	var st store.Store
	if cfg.DatabaseURL != "" {
		st, err = store.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		log.Printf("Using PostgreSQL store")
	} else {
		st = store.NewMemoryStore()
		log.Printf("No DATABASE_URL set, using in-memory store")
	}

	c, err := buildComponents(ctx, cfg)
	if err != nil {
		st.Close()
		return err
	}
	defer c.close()

	if cfg.LLMProvider != "" {
		log.Printf("LLM enhancement enabled (provider: %s)", cfg.LLMProvider)
	} else {
		log.Printf("LLM enhancement disabled, heuristics only")
	}

	srv, err := server.New(server.Config{
		Addr:      cfg.Addr,
		Store:     st,
		Assembler: c.assembler,
		Engine:    c.engine,
		Dossier:   c.dossier,
	})
	if err != nil {
		st.Close()
		return err
	}
	return srv.Start()
}
