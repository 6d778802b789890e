package ratelimit

import (
	"strings"
)

// MatchEndpoint resolves a request path and method to an endpoint
// configuration, or nil when only the default applies. Three pattern forms
// are supported: exact paths, prefix patterns ending in "/", and suffix
// patterns starting with "*" for per-session subresources such as
// "*/extract".
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	// The health check is never limited.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{Limit: 0}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method != method {
			continue
		}
		switch {
		case strings.HasPrefix(config.Path, "*"):
			if strings.HasSuffix(path, config.Path[1:]) {
				return config
			}
		case strings.HasSuffix(config.Path, "/"):
			if strings.HasPrefix(path, config.Path) {
				return config
			}
		case config.Path == path:
			return config
		}
	}
	return nil
}
