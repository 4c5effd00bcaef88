// Package main provides the CLI entry point for govsheet.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fairsight/govsheet/pkg/govsheet"
)

var outputPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "govsheet [workbook.xlsx]",
		Short: "Generate governance configuration from an Excel workbook",
		Long: `govsheet converts a staged-governance workbook (gate sheets, artifact
schema sheets, domain mapping sheets) into a normalized JSON configuration.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "governance_config.json",
		"Destination path for the generated JSON configuration")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	config, err := govsheet.Generate(args[0])
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	jsonData, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Printf("Configuration generated at %s\n", outputPath)
	return nil
}
