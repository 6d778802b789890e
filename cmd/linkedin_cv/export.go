package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/linkedin-cv/internal/export"
	"github.com/jonathan/linkedin-cv/internal/i18n"
	"github.com/jonathan/linkedin-cv/internal/observability"
	"github.com/jonathan/linkedin-cv/internal/resume"
	"github.com/jonathan/linkedin-cv/internal/template"
)

var exportCommand = &cobra.Command{
	Use:   "export <resume.json>",
	Short: "Export a resume JSON file as PDF, DOCX, TXT, or JSON",
	Long: `Renders a previously extracted (and possibly hand-edited) resume JSON
file into a downloadable artifact. PDF export requires a Chrome binary; set
--chrome-path or CHROME_PATH when it is not on the lookup path.`,
	Args: cobra.ExactArgs(1),
	RunE: runExportCmd,
}

var (
	exportConfigPath string
	exportFormat     string
	exportTemplate   string
	exportColor      string
	exportLanguage   string
	exportPhotoPath  string
	exportOutput     string
	exportChromePath string
	exportVerbose    bool
)

func init() {
	exportCommand.Flags().StringVar(&exportConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	exportCommand.Flags().StringVarP(&exportFormat, "format", "f", "pdf", "Artifact format: pdf, docx, txt, or json")
	exportCommand.Flags().StringVarP(&exportTemplate, "template", "t", "", "Template id (see 'linkedin_cv templates')")
	exportCommand.Flags().StringVar(&exportColor, "color", "", "Primary color override, e.g. '#1E293B'")
	exportCommand.Flags().StringVarP(&exportLanguage, "language", "l", "", "Section-label language (default English)")
	exportCommand.Flags().StringVar(&exportPhotoPath, "photo", "", "Path to a profile photo to embed (png or jpeg)")
	exportCommand.Flags().StringVarP(&exportOutput, "output", "o", "", "Output path (defaults to the resume owner's name)")
	exportCommand.Flags().StringVar(&exportChromePath, "chrome-path", "", "Path to the Chrome binary used for PDF export")
	exportCommand.Flags().BoolVarP(&exportVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(exportCommand)
}

func runExportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadMergedConfig(cmd, exportConfigPath)
	if err != nil {
		return err
	}

	format := export.Format(exportFormat)
	if !export.ValidFormat(format) {
		return fmt.Errorf("unsupported format %q (use pdf, docx, txt, or json)", exportFormat)
	}

	lang := i18n.Language(exportLanguage)
	if exportLanguage == "" {
		lang = i18n.Language(cfg.DefaultLanguage)
	}
	if !i18n.Valid(lang) {
		return fmt.Errorf("unsupported language %q (supported: %v)", lang, i18n.Supported())
	}

	templateID := exportTemplate
	if templateID == "" {
		templateID = cfg.DefaultTemplate
	}

	if cmd.Flags().Changed("chrome-path") {
		cfg.ChromePath = exportChromePath
	}
	if cfg.ChromePath != "" {
		if err := os.Setenv("CHROME_PATH", cfg.ChromePath); err != nil {
			return fmt.Errorf("failed to set CHROME_PATH: %w", err)
		}
	}

	payload, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	var data resume.ResumeData
	if err := json.Unmarshal(payload, &data); err != nil {
		return fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	data = resume.Normalize(data)

	opts := template.RenderOptions{
		PrimaryColor: exportColor,
		Language:     lang,
	}
	if exportPhotoPath != "" {
		photo, err := loadPhotoDataURI(exportPhotoPath)
		if err != nil {
			return err
		}
		opts.ProfileImage = photo
	}

	artifact, err := export.New(export.NewChromeRenderer()).
		Export(context.Background(), data, template.Get(templateID), opts, format)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	outPath := exportOutput
	if outPath == "" {
		outPath = artifact.Filename
	}
	if err := os.WriteFile(outPath, artifact.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	if exportVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintArtifact(outPath, len(artifact.Data))
	} else {
		fmt.Fprintf(os.Stderr, "Wrote %s\n", outPath)
	}
	return nil
}

// loadPhotoDataURI reads an image file and encodes it as a data URI, the only
// photo form the renderer accepts.
func loadPhotoDataURI(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read photo %s: %w", path, err)
	}
	mime := http.DetectContentType(raw)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("file %s is not an image (detected %s)", path, mime)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}
