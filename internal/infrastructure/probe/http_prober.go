// Package probe implements the outbound health probe against downstream
// services.
package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/esgmate/esg-platform/internal/core/domain"
)

const defaultTimeout = 5 * time.Second

// HTTPProber issues a single GET <base_url>/health per probe. One attempt,
// no retry; the per-probe timeout is the only bound.
type HTTPProber struct {
	client *http.Client
	log    zerolog.Logger
}

// NewHTTPProber returns a prober whose probes time out after the given
// duration. A non-positive timeout falls back to 5 seconds.
func NewHTTPProber(timeout time.Duration, log zerolog.Logger) *HTTPProber {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPProber{
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// Probe checks one endpoint. Any failure (connection error, timeout,
// non-2xx status, undecodable body) yields an unhealthy report carrying
// the error text; a 2xx with a decodable JSON body yields a healthy report
// carrying the payload verbatim.
func (p *HTTPProber) Probe(ctx context.Context, endpoint domain.ServiceEndpoint) domain.HealthReport {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.URL+"/health", nil)
	if err != nil {
		return unhealthy(endpoint, err.Error())
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return unhealthy(endpoint, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return unhealthy(endpoint, fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return unhealthy(endpoint, "undecodable response: "+err.Error())
	}

	return domain.HealthReport{
		Status:   domain.StatusHealthy,
		Service:  endpoint.Name,
		Port:     endpoint.Port,
		Response: payload,
	}
}

func unhealthy(endpoint domain.ServiceEndpoint, errText string) domain.HealthReport {
	return domain.HealthReport{
		Status:  domain.StatusUnhealthy,
		Service: endpoint.Name,
		Port:    endpoint.Port,
		Error:   errText,
	}
}
