package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-fitment/internal/config"
	"github.com/jonathan/resume-fitment/internal/observability"
	"github.com/jonathan/resume-fitment/internal/pipeline"
)

var parseCommand = &cobra.Command{
	Use:   "parse <resume-file>",
	Short: "Parse a resume document into a structured profile",
	Long: `Runs the assembly pipeline on a single document (PDF, DOCX, TXT or
HTML) and prints the structured result. With an LLM provider configured the
heuristic extraction is refined before printing.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

var (
	parseConfigPath string
	parseJSON       bool
	parseVerbose    bool
)

func init() {
	parseCommand.Flags().StringVar(&parseConfigPath, "config", "", "Path to config.json file")
	parseCommand.Flags().BoolVar(&parseJSON, "json", false, "Print the parsed resume as JSON")
	parseCommand.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print pipeline stage progress")

	rootCmd.AddCommand(parseCommand)
}

func runParse(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load(parseConfigPath)
	if err != nil {
		return err
	}

	var opts []pipeline.Option
	if parseVerbose || cfg.Verbose {
		opts = append(opts, pipeline.WithStageCallback(func(stage, message string) {
			fmt.Fprintf(os.Stderr, "[%s] %s\n", stage, message)
		}))
	}

	c, err := buildComponents(ctx, cfg, opts...)
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

	if parseJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Resume)
	}

	observability.NewPrinter(os.Stdout).PrintResume(result.Resume)
	return nil
}
