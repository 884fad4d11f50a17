package domain

import (
	"errors"
	"time"
)

// GRICategory classifies a GRI standard.
type GRICategory string

const (
	CategoryFoundation    GRICategory = "Foundation"
	CategoryEconomic      GRICategory = "Economic"
	CategoryEnvironmental GRICategory = "Environmental"
	CategorySocial        GRICategory = "Social"
)

// Valid reports whether the category is a known GRI category.
func (c GRICategory) Valid() bool {
	switch c {
	case CategoryFoundation, CategoryEconomic, CategoryEnvironmental, CategorySocial:
		return true
	}
	return false
}

// ReportingStatus tracks the progress of a GRI reporting entry.
type ReportingStatus string

const (
	ReportingNotStarted ReportingStatus = "Not Started"
	ReportingInProgress ReportingStatus = "In Progress"
	ReportingCompleted  ReportingStatus = "Completed"
	ReportingVerified   ReportingStatus = "Verified"
)

// Valid reports whether the status is a known reporting status.
func (s ReportingStatus) Valid() bool {
	switch s {
	case ReportingNotStarted, ReportingInProgress, ReportingCompleted, ReportingVerified:
		return true
	}
	return false
}

var (
	ErrStandardNotFound  = errors.New("standard not found")
	ErrDuplicateCode     = errors.New("standard code already exists")
	ErrReportingNotFound = errors.New("reporting entry not found")
)

// GRIStandard is a single GRI disclosure standard. Code is unique across all
// standards.
type GRIStandard struct {
	ID              int         `json:"id"`
	Code            string      `json:"code"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Category        GRICategory `json:"category"`
	DisclosureLevel string      `json:"disclosure_level"`
	Version         string      `json:"version"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// GRIStandardPatch is a partial update of a GRIStandard.
type GRIStandardPatch struct {
	Title           *string
	Description     *string
	Category        *GRICategory
	DisclosureLevel *string
	Version         *string
}

// GRIReporting records the implementation progress of one standard for a
// reporting period.
type GRIReporting struct {
	ID                  int             `json:"id"`
	StandardID          int             `json:"standard_id"`
	ReportingPeriod     string          `json:"reporting_period"`
	Status              ReportingStatus `json:"status"`
	ImplementationLevel string          `json:"implementation_level"`
	Notes               string          `json:"notes,omitempty"`
	Reporter            string          `json:"reporter"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// GRIReportingPatch is a partial update of a GRIReporting entry.
type GRIReportingPatch struct {
	ReportingPeriod     *string
	Status              *ReportingStatus
	ImplementationLevel *string
	Notes               *string
	Reporter            *string
}
