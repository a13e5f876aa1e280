// Command pdfmeta extracts metadata from PDF files, combining direct
// file inspection with bibliographic extraction by a local Ollama model.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/folio-labs/pdfmeta-cli/internal/adapters/driven/ai"
	"github.com/folio-labs/pdfmeta-cli/internal/adapters/driven/config/file"
	"github.com/folio-labs/pdfmeta-cli/internal/adapters/driven/pdf"
	"github.com/folio-labs/pdfmeta-cli/internal/adapters/driving/cli"
	"github.com/folio-labs/pdfmeta-cli/internal/core/domain"
	"github.com/folio-labs/pdfmeta-cli/internal/core/services"
)

// Build metadata, injected via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Exit codes by error class, so scripts can tell failure modes apart.
const (
	exitOK                 = 0
	exitError              = 1
	exitNotFound           = 2
	exitMalformedDocument  = 3
	exitServiceUnavailable = 4
	exitMalformedResponse  = 5
	exitInterrupted        = 130
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersionInfo(version, commit, date)

	if err := wireServices(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}

	if err := cli.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "\nInterrupted")
			return exitInterrupted
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCode(err)
	}

	return exitOK
}

// wireServices builds the adapter stack and injects it into the CLI.
func wireServices() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("failed to open config store: %w", err)
	}

	settingsService := services.NewSettingsService(configStore, ai.NewConfigValidator())

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	chatService := ai.NewChatService(settings.LLM)
	extractorService := services.NewExtractorService(pdf.NewReader(), chatService)

	cli.SetServices(extractorService, settingsService)
	return nil
}

// exitCode maps domain errors to process exit codes.
func exitCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return exitNotFound
	case errors.Is(err, domain.ErrMalformedDocument):
		return exitMalformedDocument
	case errors.Is(err, domain.ErrServiceUnavailable):
		return exitServiceUnavailable
	case errors.Is(err, domain.ErrMalformedResponse):
		return exitMalformedResponse
	default:
		return exitError
	}
}
