package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/folio-labs/pdfmeta-cli/internal/core/domain"
)

// Text report layout.
const (
	bannerWidth   = 50
	summaryIndent = "    "
	timeLayout    = "2006-01-02 15:04:05"

	// Wrap width for the summary block when stdout is not a terminal,
	// and the clamp bounds when it is.
	fallbackWrapWidth = 45
	minWrapWidth      = 40
	maxWrapWidth      = 100
)

// Styles for the text report. lipgloss degrades these to plain text
// when stdout is not a terminal.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4"))
)

func outputMetadataJSON(cmd *cobra.Command, metadata *domain.PDFMetadata) error {
	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputMetadataText(cmd *cobra.Command, metadata *domain.PDFMetadata) error {
	cmd.Println(formatTextOutput(metadata, summaryWrapWidth()))
	return nil
}

// formatTextOutput renders the human-readable report. The width bounds
// the summary wrap, not the metadata lines.
func formatTextOutput(metadata *domain.PDFMetadata, width int) string {
	banner := strings.Repeat("=", bannerWidth)

	lines := []string{
		banner,
		titleStyle.Render("PDF Metadata"),
		banner,
	}

	if llm := metadata.LLM; llm != nil {
		lines = append(lines, "\n"+sectionStyle.Render("[Document Metadata]"))
		lines = appendOptional(lines, "Title", llm.Title)
		lines = appendOptional(lines, "Author", llm.Author)
		lines = appendOptional(lines, "Journal", llm.Journal)
		lines = appendOptional(lines, "Volume", llm.Volume)
		lines = appendOptional(lines, "Number", llm.Number)
		lines = appendOptional(lines, "Pages", llm.Pages)
		lines = appendOptional(lines, "Year", llm.Year)
		lines = appendOptional(lines, "DOI", llm.DOI)
		lines = append(lines,
			metaLine("Language", llm.Language),
			metaLine("Category", llm.Category),
			metaLine("Keywords", strings.Join(llm.Keywords, ", ")),
			"\n  Summary:",
		)
		lines = append(lines, wrapText(llm.Summary, width, summaryIndent)...)
	}

	file := metadata.File
	lines = append(lines,
		"\n"+sectionStyle.Render("[File Properties]"),
		metaLine("Pages", fmt.Sprintf("%d", file.PageCount)),
		metaLine("File Size", formatFileSize(file.FileSize)),
	)
	if file.PDFVersion != nil {
		lines = append(lines, metaLine("PDF Version", *file.PDFVersion))
	}
	if file.CreatedAt != nil {
		lines = append(lines, metaLine("Created", file.CreatedAt.Format(timeLayout)))
	}
	if file.ModifiedAt != nil {
		lines = append(lines, metaLine("Modified", file.ModifiedAt.Format(timeLayout)))
	}

	if metadata.LLM != nil && metadata.LLM.Stats != nil {
		stats := metadata.LLM.Stats
		lines = append(lines,
			"\n"+sectionStyle.Render("[LLM Statistics]"),
			statLine("Model", stats.Model),
			statLine("Prompt Tokens", fmt.Sprintf("%d", stats.PromptTokens)),
			statLine("Output Tokens", fmt.Sprintf("%d", stats.OutputTokens)),
			statLine("Total Tokens", fmt.Sprintf("%d", stats.TotalTokens)),
			statLine("Prompt Eval", fmt.Sprintf("%.2f ms (%.2f tokens/sec)", stats.PromptEvalDurationMS, stats.PromptTokensPerSec)),
			statLine("Output Generation", fmt.Sprintf("%.2f ms (%.2f tokens/sec)", stats.EvalDurationMS, stats.OutputTokensPerSec)),
			statLine("Total Duration", fmt.Sprintf("%.2f ms", stats.TotalDurationMS)),
		)
	}

	lines = append(lines, "\n"+banner)

	return strings.Join(lines, "\n")
}

// appendOptional adds a metadata line, skipping fields the model left
// unset.
func appendOptional(lines []string, label string, value *string) []string {
	if value == nil || *value == "" {
		return lines
	}
	return append(lines, metaLine(label, *value))
}

// metaLine pads the label so metadata values align in one column.
func metaLine(label, value string) string {
	return fmt.Sprintf("  %-13s %s", label+":", value)
}

// statLine uses a wider label column for the statistics section.
func statLine(label, value string) string {
	return fmt.Sprintf("  %-19s %s", label+":", value)
}

// formatFileSize renders a byte count with binary units, one decimal.
func formatFileSize(size int64) string {
	value := float64(size)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if value < 1024 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.1f TB", value)
}

// wrapText greedily wraps text into indented lines of at most width
// characters, not counting the indent. Blank text yields no lines.
func wrapText(text string, width int, indent string) []string {
	words := strings.Fields(text)

	var lines []string
	current := indent
	for _, word := range words {
		if len(current)+len(word)+1 <= width+len(indent) {
			if current == indent {
				current += word
			} else {
				current += " " + word
			}
		} else {
			lines = append(lines, current)
			current = indent + word
		}
	}
	if strings.TrimSpace(current) != "" {
		lines = append(lines, current)
	}

	return lines
}

// summaryWrapWidth picks the wrap width for the summary block from the
// terminal size. Falls back to a fixed width when stdout is not a
// terminal, e.g. when piped.
func summaryWrapWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fallbackWrapWidth
	}
	return clampWrapWidth(w - len(summaryIndent) - 1)
}

// clampWrapWidth keeps the wrap width in a readable range regardless of
// how narrow or wide the terminal is.
func clampWrapWidth(width int) int {
	if width < minWrapWidth {
		return minWrapWidth
	}
	if width > maxWrapWidth {
		return maxWrapWidth
	}
	return width
}
