package handler

import "github.com/esgmate/esg-platform/internal/core/domain"

type createStandardRequest struct {
	Code            string             `json:"code"             validate:"required,min=1,max=20"`
	Title           string             `json:"title"            validate:"required,min=1,max=200"`
	Description     string             `json:"description"      validate:"required,min=1,max=1000"`
	Category        domain.GRICategory `json:"category"         validate:"required,oneof=Foundation Economic Environmental Social"`
	DisclosureLevel string             `json:"disclosure_level" validate:"required,min=1,max=50"`
	Version         string             `json:"version"          validate:"required,min=1,max=20"`
}

type updateStandardRequest struct {
	Title           *string             `json:"title"            validate:"omitempty,min=1,max=200"`
	Description     *string             `json:"description"      validate:"omitempty,min=1,max=1000"`
	Category        *domain.GRICategory `json:"category"         validate:"omitempty,oneof=Foundation Economic Environmental Social"`
	DisclosureLevel *string             `json:"disclosure_level" validate:"omitempty,min=1,max=50"`
	Version         *string             `json:"version"          validate:"omitempty,min=1,max=20"`
}

type createReportingRequest struct {
	StandardID          int                    `json:"standard_id"          validate:"required"`
	ReportingPeriod     string                 `json:"reporting_period"     validate:"required,min=4,max=10"`
	Status              domain.ReportingStatus `json:"status"               validate:"required,oneof='Not Started' 'In Progress' Completed Verified"`
	ImplementationLevel string                 `json:"implementation_level" validate:"required,min=1,max=50"`
	Notes               string                 `json:"notes"                validate:"max=1000"`
	Reporter            string                 `json:"reporter"             validate:"required,min=1,max=100"`
}

type updateReportingRequest struct {
	ReportingPeriod     *string                 `json:"reporting_period"     validate:"omitempty,min=4,max=10"`
	Status              *domain.ReportingStatus `json:"status"               validate:"omitempty,oneof='Not Started' 'In Progress' Completed Verified"`
	ImplementationLevel *string                 `json:"implementation_level" validate:"omitempty,min=1,max=50"`
	Notes               *string                 `json:"notes"                validate:"omitempty,max=1000"`
	Reporter            *string                 `json:"reporter"             validate:"omitempty,min=1,max=100"`
}
