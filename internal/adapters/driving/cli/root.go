// Package cli provides the cobra command tree for the pdfmeta binary.
// Services are injected from main through SetServices before Execute.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/folio-labs/pdfmeta-cli/internal/core/ports/driving"
	"github.com/folio-labs/pdfmeta-cli/internal/logger"
)

// Build metadata, overridden via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Application services, injected from main.
var (
	extractorService driving.MetadataExtractor
	settingsService  driving.SettingsService
)

var debugEnabled bool

var rootCmd = &cobra.Command{
	Use:   "pdfmeta",
	Short: "Extract metadata from PDF files",
	Long: `pdfmeta inspects PDF files and reports their metadata.

File properties (page count, size, PDF version, timestamps) are read
directly from the document. Bibliographic fields (title, author,
journal, summary, keywords) are extracted by a local Ollama model
using schema-constrained decoding.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(debugEnabled)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugEnabled, "debug", false, "show debug output (intermediate data to stderr)")
}

// SetServices injects the application services into the command tree.
// Must be called before Execute.
func SetServices(extractor driving.MetadataExtractor, settings driving.SettingsService) {
	extractorService = extractor
	settingsService = settings
}

// SetVersionInfo records build metadata reported by the version command.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context, so
// commands are cancelled when the process receives a signal.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
