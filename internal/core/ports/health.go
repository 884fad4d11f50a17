package ports

import (
	"context"

	"github.com/esgmate/esg-platform/internal/core/domain"
)

// Prober performs a single bounded health probe against one endpoint. A
// probe never fails as such: every outcome, including timeouts and
// connection errors, is captured in the returned report.
type Prober interface {
	Probe(ctx context.Context, endpoint domain.ServiceEndpoint) domain.HealthReport
}

// HealthChecker aggregates health over all registered endpoints. CheckAll
// always returns exactly one report per registered service.
type HealthChecker interface {
	CheckAll(ctx context.Context) map[string]domain.HealthReport
	Endpoints() []domain.ServiceEndpoint
}
