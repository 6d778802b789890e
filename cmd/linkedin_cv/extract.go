package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/linkedin-cv/internal/extraction"
	"github.com/jonathan/linkedin-cv/internal/i18n"
	"github.com/jonathan/linkedin-cv/internal/ingestion"
	"github.com/jonathan/linkedin-cv/internal/llm"
	"github.com/jonathan/linkedin-cv/internal/observability"
)

var extractCommand = &cobra.Command{
	Use:   "extract <profile.pdf>",
	Short: "Extract structured resume data from a LinkedIn profile PDF",
	Long: `Reads an exported LinkedIn profile PDF, recovers its text, and asks the
LLM to produce the structured resume JSON. The result is written to stdout or
to --output.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtractCmd,
}

var (
	extractConfigPath string
	extractLanguage   string
	extractOutput     string
	extractAPIKey     string
	extractVerbose    bool
)

func init() {
	extractCommand.Flags().StringVar(&extractConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	extractCommand.Flags().StringVarP(&extractLanguage, "language", "l", "", "Output language for the extracted resume (default English)")
	extractCommand.Flags().StringVarP(&extractOutput, "output", "o", "", "Write the resume JSON to this file instead of stdout")
	extractCommand.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	extractCommand.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(extractCommand)
}

func runExtractCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd, extractConfigPath)
	if err != nil {
		return err
	}

	lang := i18n.Language(extractLanguage)
	if extractLanguage == "" {
		lang = i18n.Language(cfg.DefaultLanguage)
	}
	if !i18n.Valid(lang) {
		return fmt.Errorf("unsupported language %q (supported: %v)", lang, i18n.Supported())
	}

	apiKey := resolveAPIKey(cmd, extractAPIKey, cfg)
	if apiKey == "" {
		return fmt.Errorf("API key is required: pass --api-key or set GEMINI_API_KEY")
	}

	pdfBytes, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	printer := observability.NewPrinter(os.Stderr)

	start := time.Now()
	text, err := ingestion.ExtractPDFText(pdfBytes)
	if err != nil {
		return fmt.Errorf("failed to read PDF text: %w", err)
	}
	if extractVerbose || cfg.Verbose {
		printer.PrintDocumentStats(text, time.Since(start))
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	data, err := extraction.New(client).Extract(ctx, text, lang)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	if extractVerbose || cfg.Verbose {
		printer.PrintResume(data)
	}

	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode resume JSON: %w", err)
	}

	if extractOutput == "" {
		fmt.Fprintln(os.Stdout, string(payload))
		return nil
	}
	if err := os.WriteFile(extractOutput, payload, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", extractOutput, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", extractOutput)
	return nil
}
