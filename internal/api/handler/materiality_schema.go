package handler

import (
	"time"

	"github.com/esgmate/esg-platform/internal/core/domain"
)

type createTopicRequest struct {
	Topic                 string             `json:"topic"                  validate:"required,min=1,max=200"`
	Description           string             `json:"description"            validate:"required,min=1,max=1000"`
	ImpactLevel           domain.ImpactLevel `json:"impact_level"           validate:"required,oneof=Low Medium High Critical"`
	StakeholderImportance domain.ImpactLevel `json:"stakeholder_importance" validate:"required,oneof=Low Medium High Critical"`
	Category              string             `json:"category"               validate:"required,min=1,max=100"`
}

type updateTopicRequest struct {
	Topic                 *string             `json:"topic"                  validate:"omitempty,min=1,max=200"`
	Description           *string             `json:"description"            validate:"omitempty,min=1,max=1000"`
	ImpactLevel           *domain.ImpactLevel `json:"impact_level"           validate:"omitempty,oneof=Low Medium High Critical"`
	StakeholderImportance *domain.ImpactLevel `json:"stakeholder_importance" validate:"omitempty,oneof=Low Medium High Critical"`
	Category              *string             `json:"category"               validate:"omitempty,min=1,max=100"`
}

type createAssessmentRequest struct {
	TopicID        int       `json:"topic_id"        validate:"required"`
	AssessmentDate time.Time `json:"assessment_date" validate:"required"`
	Score          float64   `json:"score"           validate:"gte=0,lte=10"`
	Notes          string    `json:"notes"           validate:"max=1000"`
	Assessor       string    `json:"assessor"        validate:"required,min=1,max=100"`
}

type updateAssessmentRequest struct {
	AssessmentDate *time.Time `json:"assessment_date"`
	Score          *float64   `json:"score"    validate:"omitempty,gte=0,lte=10"`
	Notes          *string    `json:"notes"    validate:"omitempty,max=1000"`
	Assessor       *string    `json:"assessor" validate:"omitempty,min=1,max=100"`
}
