package main

import (
	"github.com/spf13/cobra"

	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/schema"
)

var strictSchema bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the extraction result JSON Schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			tree map[string]any
			err  error
		)
		if strictSchema {
			tree, err = schema.StrictDocument()
		} else {
			tree, err = schema.Document()
		}
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), outputFormat, tree)
	},
}

func init() {
	schemaCmd.Flags().BoolVar(&strictSchema, "strict", false, "print the strict structured-output variant")
}
