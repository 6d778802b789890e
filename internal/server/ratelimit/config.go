package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting for one endpoint pattern. Patterns
// are matched in order; see MatchEndpoint for the supported forms.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // requests per window
	Window time.Duration
	Burst  int           // burst capacity, defaults to Limit
}

// LoadConfig builds the limiter configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         enabled,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-endpoint limits. Extraction calls
// the LLM provider and export runs a headless browser, so both sit in the
// strict tier; edits and previews only touch in-memory state.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: "*/extract", Method: "POST", Limit: 20, Window: time.Hour, Burst: 3},
		{Path: "*/export", Method: "GET", Limit: 60, Window: time.Hour, Burst: 10},

		{Path: "/sessions", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "*/resume", Method: "PUT", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "*/edits", Method: "POST", Limit: 300, Window: time.Minute, Burst: 50},
		{Path: "*/photo", Method: "PUT", Limit: 60, Window: time.Minute, Burst: 10},
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
