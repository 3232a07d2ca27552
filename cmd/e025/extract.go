package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/config"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/domain"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/export"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/extractor/providers"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/logging"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/schema"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/service"
)

var (
	transcriptFile string
	exportPath     string
	providerName   string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract an E025 document from a transcript file",
	Long: `Extract reads a transcript JSON file ({"transcript": [...]} or a bare
segment array; "-" reads stdin), runs one extraction and prints the result.
With --export the result is also written as CSV or XLSX, chosen by the file
extension.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&transcriptFile, "file", "f", "", "transcript JSON file, or - for stdin")
	extractCmd.Flags().StringVar(&exportPath, "export", "", "also write the result to this .csv or .xlsx file")
	extractCmd.Flags().StringVar(&providerName, "provider", "", "override LLM_PROVIDER (openai, gemini, claude)")
	_ = extractCmd.MarkFlagRequired("file")
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFrom(envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logging.Setup(cfg.Log, cmd.ErrOrStderr())
	if providerName != "" {
		cfg.LLM.Provider = strings.ToLower(providerName)
	}

	var exportFormat domain.ExportFormat
	if exportPath != "" {
		exportFormat, err = exportFormatFor(exportPath)
		if err != nil {
			return err
		}
	}

	input, err := readTranscript(cmd.InOrStdin(), transcriptFile)
	if err != nil {
		return err
	}

	ext, err := providers.New(&cfg.LLM)
	if err != nil {
		return err
	}
	validator, err := schema.NewValidator()
	if err != nil {
		return err
	}
	svc := service.NewExtractionService(ext, validator, cfg.LLM.Provider)

	result, err := svc.Extract(cmd.Context(), input)
	if err != nil {
		return err
	}

	if exportPath != "" {
		if err := writeExport(exportPath, exportFormat, result); err != nil {
			return err
		}
	}
	return writeOutput(cmd.OutOrStdout(), outputFormat, result)
}

// readTranscript decodes a transcript document or a bare segment array.
func readTranscript(stdin io.Reader, path string) (*domain.TranscriptInput, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading transcript: %w", err)
	}

	trimmed := strings.TrimSpace(string(raw))
	var input domain.TranscriptInput
	if strings.HasPrefix(trimmed, "[") {
		err = json.Unmarshal(raw, &input.Transcript)
	} else {
		err = json.Unmarshal(raw, &input)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidTranscript, err)
	}
	return &input, nil
}

func exportFormatFor(path string) (domain.ExportFormat, error) {
	format := domain.ExportFormat(strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
	if _, ok := domain.AllowedExportFormats[format]; !ok {
		return "", fmt.Errorf("%w: %s (use .csv or .xlsx)", domain.ErrUnsupportedExportFormat, path)
	}
	return format, nil
}

func writeExport(path string, format domain.ExportFormat, result *domain.ExtractionResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := export.Write(f, format, export.Rows(result)); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing export: %w", err)
	}
	return f.Close()
}
