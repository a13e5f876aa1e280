package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/folio-labs/pdfmeta-cli/internal/core/domain"
)

var (
	extractOutput   string
	extractModel    string
	extractLanguage string
	extractNoLLM    bool
	extractMaxPages int
	extractMaxChars int
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract metadata from a PDF file",
	Long: `Reads file properties from the PDF and asks the configured Ollama
model for bibliographic metadata (title, author, journal, year, DOI,
keywords and a short summary).

Use --no-llm to skip the model stage and report file properties only.
Flags override the persisted configuration for a single run.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output format: text or json (default from config)")
	extractCmd.Flags().StringVarP(&extractModel, "model", "m", "", "Ollama model name (default from config)")
	extractCmd.Flags().StringVarP(&extractLanguage, "language", "l", "", "output language for extracted fields, e.g. English, Japanese (default: auto-detect)")
	extractCmd.Flags().BoolVar(&extractNoLLM, "no-llm", false, "skip LLM extraction (only show file properties)")
	extractCmd.Flags().IntVar(&extractMaxPages, "max-pages", 0, "maximum pages to read text from (default from config)")
	extractCmd.Flags().IntVar(&extractMaxChars, "max-chars", 0, "maximum characters sent to the model (default from config)")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	path := args[0]

	if extractorService == nil {
		return errors.New("extractor service not configured")
	}
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: File may not be a PDF: %s\n", path)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	format := settings.Output.Format
	if extractOutput != "" {
		format = domain.OutputFormat(extractOutput)
		if !format.IsValid() {
			return fmt.Errorf("unknown output format %q (valid: %s, %s)",
				extractOutput, domain.OutputFormatText, domain.OutputFormatJSON)
		}
	}

	metadata, err := extractorService.Extract(cmd.Context(), path, resolveExtractOptions(settings))
	if err != nil {
		return err
	}

	if format == domain.OutputFormatJSON {
		return outputMetadataJSON(cmd, metadata)
	}
	return outputMetadataText(cmd, metadata)
}

// resolveExtractOptions layers command flags over persisted settings.
// A flag left at its zero value falls back to the stored setting.
func resolveExtractOptions(settings *domain.Settings) domain.ExtractOptions {
	opts := domain.ExtractOptions{
		UseLLM:   !extractNoLLM,
		Model:    settings.LLM.Model,
		Language: settings.LLM.Language,
		MaxPages: settings.Extract.MaxPages,
		MaxChars: settings.Extract.MaxChars,
	}

	if extractModel != "" {
		opts.Model = extractModel
	}
	if extractLanguage != "" {
		opts.Language = extractLanguage
	}
	if extractMaxPages > 0 {
		opts.MaxPages = extractMaxPages
	}
	if extractMaxChars > 0 {
		opts.MaxChars = extractMaxChars
	}

	return opts
}
