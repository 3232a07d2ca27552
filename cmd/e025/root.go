package main

import (
	"github.com/spf13/cobra"
)

var (
	envFile      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "e025",
	Short: "Extract E025 outpatient visit documents from transcripts",
	Long: `e025 runs the E025 extraction pipeline from the command line.

It reads a Lithuanian doctor-patient transcript, makes one model call with
the configured provider, validates the output against the document schema
and prints the result.

Examples:
  e025 extract --file visit.json
  e025 extract --file visit.json -o yaml --export visit.xlsx
  e025 schema --strict`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&envFile, "env-file", ".env", "dotenv file with provider settings",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "json", "output format: json or yaml",
	)

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(versionCmd)
}
