// Package main provides the entry point for the LinkedIn-to-CV tool.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "linkedin_cv",
	Short: "LinkedIn profile to resume converter",
	Long:  "linkedin_cv extracts structured resume data from exported LinkedIn profile PDFs via an LLM, renders it through a template catalog, and exports PDF, DOCX, TXT, and JSON artifacts.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
