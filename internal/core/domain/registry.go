package domain

import (
	"net/url"
	"strconv"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

var serviceDescriptions = map[string]string{
	"gateway":     "API Gateway Service",
	"auth":        "Authentication Service",
	"materiality": "Materiality Assessment Service",
	"gri":         "GRI Standards Service",
	"tcfd":        "TCFD Framework Service",
	"chatbot":     "AI Chatbot Service",
}

// ServiceDescription returns the human-readable description for a registered
// service name, or "Unknown Service" for names outside the registry.
func ServiceDescription(name string) string {
	if d, ok := serviceDescriptions[name]; ok {
		return d
	}
	return "Unknown Service"
}

// ServiceEndpoint is a statically registered downstream service. Endpoints
// are built from configuration at startup and immutable for the process
// lifetime.
type ServiceEndpoint struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Port        int    `json:"port"`
	Description string `json:"description"`
}

// NewServiceEndpoint builds an endpoint from a name and base URL, deriving
// the port from the URL.
func NewServiceEndpoint(name, rawURL string) ServiceEndpoint {
	return ServiceEndpoint{
		Name:        name,
		URL:         rawURL,
		Port:        portFromURL(rawURL),
		Description: ServiceDescription(name),
	}
}

// portFromURL extracts the numeric port from a base URL. URLs without an
// explicit port yield 0.
func portFromURL(rawURL string) int {
	u, err := url.Parse(rawURL)
	if err != nil {
		return 0
	}
	port, err := strconv.Atoi(u.Port())
	if err != nil {
		return 0
	}
	return port
}

// HealthReport is the outcome of a single health probe. Response carries the
// decoded payload on success; Error carries the failure text otherwise,
// never both. Reports are produced fresh per aggregation call and not stored.
type HealthReport struct {
	Status   string         `json:"status"`
	Service  string         `json:"service"`
	Port     int            `json:"port"`
	Response map[string]any `json:"response,omitempty"`
	Error    string         `json:"error,omitempty"`
}
