package types

import (
	"github.com/Bryan-Binu-2006/Altscore/internal/database"
	"github.com/Bryan-Binu-2006/Altscore/internal/scoring"
)

// ScoreRequest is the body of the stateless score endpoint.
type ScoreRequest struct {
	Facts        scoring.TraditionalFacts     `json:"facts"`
	Answers      []scoring.PsychometricAnswer `json:"answers"`
	MLPrediction *scoring.MLPrediction        `json:"ml_prediction,omitempty"`
}

// CreateApplicantRequest registers a new applicant.
type CreateApplicantRequest struct {
	Name  string `json:"name" binding:"required"`
	Age   int    `json:"age" binding:"omitempty,gte=18,lte=100"`
	City  string `json:"city"`
	State string `json:"state"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`
}

// CreateAssessmentRequest opens a pending assessment for an applicant.
type CreateAssessmentRequest struct {
	ApplicantID   string                 `json:"applicant_id" binding:"required"`
	EssentialInfo database.EssentialInfo `json:"essential_info"`
}

// CalculateRequest is the body of the calculate endpoint: the declared facts
// and survey answers for one applicant's pending assessment.
type CalculateRequest struct {
	AssessmentID string                       `json:"assessment_id" binding:"required"`
	Facts        scoring.TraditionalFacts     `json:"facts"`
	Answers      []scoring.PsychometricAnswer `json:"answers"`
}

// ScoreResponse wraps the engine result with the assessment linkage.
type ScoreResponse struct {
	AssessmentID string         `json:"assessment_id,omitempty"`
	ApplicantID  string         `json:"applicant_id,omitempty"`
	Result       scoring.Result `json:"result"`
}
