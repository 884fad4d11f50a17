package domain

import (
	"errors"
	"time"
)

// ImpactLevel grades the business impact of a materiality topic. The same
// scale is used for stakeholder importance.
type ImpactLevel string

const (
	ImpactLow      ImpactLevel = "Low"
	ImpactMedium   ImpactLevel = "Medium"
	ImpactHigh     ImpactLevel = "High"
	ImpactCritical ImpactLevel = "Critical"
)

// Valid reports whether the level is a known impact level.
func (l ImpactLevel) Valid() bool {
	switch l {
	case ImpactLow, ImpactMedium, ImpactHigh, ImpactCritical:
		return true
	}
	return false
}

var (
	ErrTopicNotFound      = errors.New("topic not found")
	ErrAssessmentNotFound = errors.New("assessment not found")
)

// MaterialityTopic is an ESG topic subject to materiality assessment.
type MaterialityTopic struct {
	ID                     int         `json:"id"`
	Topic                  string      `json:"topic"`
	Description            string      `json:"description"`
	ImpactLevel            ImpactLevel `json:"impact_level"`
	StakeholderImportance  ImpactLevel `json:"stakeholder_importance"`
	Category               string      `json:"category"`
	CreatedAt              time.Time   `json:"created_at"`
	UpdatedAt              time.Time   `json:"updated_at"`
}

// MaterialityTopicPatch is a partial update of a MaterialityTopic.
type MaterialityTopicPatch struct {
	Topic                 *string
	Description           *string
	ImpactLevel           *ImpactLevel
	StakeholderImportance *ImpactLevel
	Category              *string
}

// MaterialityAssessment is a scored evaluation of a topic at a point in time.
// Score ranges 0 to 10 inclusive.
type MaterialityAssessment struct {
	ID             int       `json:"id"`
	TopicID        int       `json:"topic_id"`
	AssessmentDate time.Time `json:"assessment_date"`
	Score          float64   `json:"score"`
	Notes          string    `json:"notes,omitempty"`
	Assessor       string    `json:"assessor"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MaterialityAssessmentPatch is a partial update of a MaterialityAssessment.
type MaterialityAssessmentPatch struct {
	AssessmentDate *time.Time
	Score          *float64
	Notes          *string
	Assessor       *string
}

// MatrixCell is one aggregated point of the materiality matrix: a topic with
// the average score and count of its assessments.
type MatrixCell struct {
	TopicID               int         `json:"topic_id"`
	Topic                 string      `json:"topic"`
	ImpactLevel           ImpactLevel `json:"impact_level"`
	StakeholderImportance ImpactLevel `json:"stakeholder_importance"`
	AverageScore          float64     `json:"average_score"`
	AssessmentCount       int         `json:"assessment_count"`
}

// MaterialityMatrix combines topics and assessments with per-topic
// aggregates for visualisation.
type MaterialityMatrix struct {
	Topics      []MaterialityTopic      `json:"topics"`
	Assessments []MaterialityAssessment `json:"assessments"`
	MatrixData  []MatrixCell            `json:"matrix_data"`
}
