// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/linkedin-cv/internal/i18n"
	"github.com/jonathan/linkedin-cv/internal/template"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags or environment.
type Config struct {
	// APIKey is the Gemini API key. GEMINI_API_KEY takes precedence.
	APIKey string `json:"api_key,omitempty"`

	// Port is the HTTP server listen port.
	Port int `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`

	// ChromePath overrides the headless Chrome binary used for PDF export.
	ChromePath string `json:"chrome_path,omitempty"`

	// DefaultTemplate is the template id new sessions start with.
	DefaultTemplate string `json:"default_template,omitempty"`

	// DefaultLanguage is the output language new sessions start with.
	DefaultLanguage string `json:"default_language,omitempty"`

	// Verbose prints detailed debug information.
	Verbose bool `json:"verbose,omitempty"`
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are not checked here; the CLI enforces those after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.DefaultTemplate != "" {
		if template.Get(c.DefaultTemplate).ID != c.DefaultTemplate {
			return fmt.Errorf("config error: unknown template %q", c.DefaultTemplate)
		}
	}
	if c.DefaultLanguage != "" && !i18n.Valid(i18n.Language(c.DefaultLanguage)) {
		return fmt.Errorf("config error: unsupported language %q", c.DefaultLanguage)
	}

	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-value fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.DefaultTemplate == "" {
		result.DefaultTemplate = defaults.DefaultTemplate
	}
	if result.DefaultLanguage == "" {
		result.DefaultLanguage = defaults.DefaultLanguage
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:            8080,
		DefaultTemplate: template.DefaultID,
		DefaultLanguage: string(i18n.English),
	}
}
