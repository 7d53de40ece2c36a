package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-fitment/internal/catalog"
	"github.com/jonathan/resume-fitment/internal/config"
	"github.com/jonathan/resume-fitment/internal/observability"
)

var matchCommand = &cobra.Command{
	Use:   "match <resume-file>",
	Short: "Score a resume against the job catalog",
	Long: `Parses the document, scores it against every catalog listing, and
prints the matches best first. --dossier additionally builds the aggregated
candidate dossier.`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

var (
	matchConfigPath string
	matchJSON       bool
	matchDossier    bool
)

func init() {
	matchCommand.Flags().StringVar(&matchConfigPath, "config", "", "Path to config.json file")
	matchCommand.Flags().BoolVar(&matchJSON, "json", false, "Print results as JSON")
	matchCommand.Flags().BoolVar(&matchDossier, "dossier", false, "Also build the candidate dossier")

	rootCmd.AddCommand(matchCommand)
}

func runMatch(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load(matchConfigPath)
	if err != nil {
		return err
	}

	c, err := buildComponents(ctx, cfg)
	if err != nil {
		return err
	}
	defer c.close()

	result, err := c.assembler.AssembleFile(ctx, args[0])
	if err != nil {
		return err
	}
	for _, notice := range result.Notices {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", notice)
	}

	matches, err := c.engine.MatchAll(ctx, result.Resume, catalog.Listings())
	if err != nil {
		return err
	}

	if matchJSON && !matchDossier {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(matches)
	}

	printer := observability.NewPrinter(os.Stdout)
	if !matchJSON {
		printer.PrintMatches(matches)
	}

	if matchDossier {
		dossier, err := c.dossier.Build(ctx, result.Resume, matches)
		if err != nil {
			return err
		}
		if matchJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{"matches": matches, "dossier": dossier})
		}
		printer.PrintDossier(dossier)
	}
	return nil
}
