package ports

import (
	"context"

	"github.com/esgmate/esg-platform/internal/core/domain"
)

// GRIStore holds GRI standards and reporting entries. Lookups on missing
// records return the matching domain not-found error.
type GRIStore interface {
	ListStandards(ctx context.Context) ([]*domain.GRIStandard, error)
	FindStandardByID(ctx context.Context, id int) (*domain.GRIStandard, error)
	FindStandardByCode(ctx context.Context, code string) (*domain.GRIStandard, error)
	CreateStandard(ctx context.Context, standard *domain.GRIStandard) (*domain.GRIStandard, error)
	UpdateStandard(ctx context.Context, id int, patch domain.GRIStandardPatch) (*domain.GRIStandard, error)
	DeleteStandard(ctx context.Context, id int) (bool, error)

	ListReporting(ctx context.Context) ([]*domain.GRIReporting, error)
	FindReportingByID(ctx context.Context, id int) (*domain.GRIReporting, error)
	CreateReporting(ctx context.Context, entry *domain.GRIReporting) (*domain.GRIReporting, error)
	UpdateReporting(ctx context.Context, id int, patch domain.GRIReportingPatch) (*domain.GRIReporting, error)
	DeleteReporting(ctx context.Context, id int) (bool, error)
}

// CreateStandardInput carries the fields for a new GRI standard.
type CreateStandardInput struct {
	Code            string
	Title           string
	Description     string
	Category        domain.GRICategory
	DisclosureLevel string
	Version         string
}

// CreateReportingInput carries the fields for a new reporting entry.
type CreateReportingInput struct {
	StandardID          int
	ReportingPeriod     string
	Status              domain.ReportingStatus
	ImplementationLevel string
	Notes               string
	Reporter            string
}

// GRIService exposes CRUD over GRI standards and reporting entries,
// enforcing code uniqueness and referential checks.
type GRIService interface {
	ListStandards(ctx context.Context) ([]*domain.GRIStandard, error)
	GetStandard(ctx context.Context, id int) (*domain.GRIStandard, error)
	GetStandardByCode(ctx context.Context, code string) (*domain.GRIStandard, error)
	CreateStandard(ctx context.Context, input CreateStandardInput) (*domain.GRIStandard, error)
	UpdateStandard(ctx context.Context, id int, patch domain.GRIStandardPatch) (*domain.GRIStandard, error)
	DeleteStandard(ctx context.Context, id int) (bool, error)

	ListReporting(ctx context.Context) ([]*domain.GRIReporting, error)
	GetReporting(ctx context.Context, id int) (*domain.GRIReporting, error)
	CreateReporting(ctx context.Context, input CreateReportingInput) (*domain.GRIReporting, error)
	UpdateReporting(ctx context.Context, id int, patch domain.GRIReportingPatch) (*domain.GRIReporting, error)
	DeleteReporting(ctx context.Context, id int) (bool, error)
}
