package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
	Long: `View and edit the persisted settings for the model service, text
extraction limits and output format.

Settings live in a TOML file; run 'pdfmeta config path' to see where.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a single configuration value addressed by its dot key.

Known keys:
  llm.model           Ollama model name
  llm.base_url        Ollama API endpoint
  llm.language        forced output language (empty = auto-detect)
  llm.timeout_secs    per-call timeout in seconds
  extract.max_pages   page limit for text extraction
  extract.max_chars   character limit for text sent to the model
  output.format       default output format (text or json)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE:  runConfigPath,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the configured Ollama service is reachable",
	Long: `Pings the configured Ollama base URL and reports whether the service
is reachable. Fails with a remediation hint when it is not.`,
	RunE: runConfigValidate,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[LLM]")
	cmd.Printf("  Model: %s\n", settings.LLM.Model)
	cmd.Printf("  Base URL: %s\n", settings.LLM.BaseURL)
	language := settings.LLM.Language
	if language == "" {
		language = "(auto-detect)"
	}
	cmd.Printf("  Language: %s\n", language)
	cmd.Printf("  Timeout: %ds\n", settings.LLM.TimeoutSecs)
	cmd.Println()

	cmd.Println("[Extract]")
	cmd.Printf("  Max Pages: %d\n", settings.Extract.MaxPages)
	cmd.Printf("  Max Chars: %d\n", settings.Extract.MaxChars)
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Format: %s\n", settings.Output.Format.Description())

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.SetKey(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s to: %s\n", key, value)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Println(settingsService.Path())
	return nil
}

func runConfigValidate(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Printf("Checking %s (model %s)... ", settings.LLM.BaseURL, settings.LLM.Model)
	if err := settingsService.ValidateLLMConfig(); err != nil {
		cmd.Println("FAILED")
		return err
	}

	cmd.Println("OK")
	return nil
}
