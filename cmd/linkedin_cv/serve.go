package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/linkedin-cv/internal/config"
	"github.com/jonathan/linkedin-cv/internal/export"
	"github.com/jonathan/linkedin-cv/internal/extraction"
	"github.com/jonathan/linkedin-cv/internal/llm"
	"github.com/jonathan/linkedin-cv/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts the REST API that the web client talks to: session management,
PDF extraction, resume editing, template previews, and artifact export.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runServeCmd,
}

var (
	serveConfigPath string
	servePort       int
	serveAPIKey     string
	serveChromePath string
)

func init() {
	serveCommand.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCommand.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP listen port")
	serveCommand.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	serveCommand.Flags().StringVar(&serveChromePath, "chrome-path", "", "Path to the Chrome binary used for PDF export (optional, defaults to CHROME_PATH env var)")

	rootCmd.AddCommand(serveCommand)
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(cmd, serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("chrome-path") {
		cfg.ChromePath = serveChromePath
	}

	apiKey := resolveAPIKey(cmd, serveAPIKey, cfg)
	if apiKey == "" {
		return fmt.Errorf("API key is required: pass --api-key or set GEMINI_API_KEY")
	}
	if cfg.ChromePath != "" {
		// The PDF renderer reads CHROME_PATH at render time.
		if err := os.Setenv("CHROME_PATH", cfg.ChromePath); err != nil {
			return fmt.Errorf("failed to set CHROME_PATH: %w", err)
		}
	}

	client, err := llm.NewClient(context.Background(), llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	srv, err := server.New(server.Config{
		Port:      cfg.Port,
		Extractor: extraction.New(client),
		Exporter:  export.New(export.NewChromeRenderer()),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// loadMergedConfig loads the optional config file and merges the built-in
// defaults underneath it.
func loadMergedConfig(cmd *cobra.Command, path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = true
	}
	return cfg, nil
}

// resolveAPIKey picks the API key in priority order: flag, config file,
// GEMINI_API_KEY.
func resolveAPIKey(cmd *cobra.Command, flagValue string, cfg config.Config) string {
	if cmd.Flags().Changed("api-key") {
		return flagValue
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return cfg.APIKey
}
