package ratelimit

import (
	"strings"
)

// MatchEndpoint matches a request path and method to an endpoint
// configuration. Returns nil if no configuration matches.
//
// Three pattern forms are supported: exact paths, prefix patterns ending in
// "/" (so "/api/resumes/" matches "/api/resumes/{id}"), and suffix patterns
// starting with "*" (so "*/export" matches "/api/resumes/{id}/export").
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Health check endpoint is unlimited
	if path == "/api/health" && method == "GET" {
		return &EndpointConfig{Limit: 0}
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method != method {
			continue
		}
		if strings.HasPrefix(config.Path, "*") && strings.HasSuffix(path, config.Path[1:]) {
			return config
		}
		if strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			return config
		}
	}

	return nil
}
