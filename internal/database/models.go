package database

import (
	"time"

	"github.com/google/uuid"
)

// Assessment lifecycle states.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Applicant is a registered loan applicant.
type Applicant struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Age       int       `json:"age,omitempty" db:"age"`
	City      string    `json:"city,omitempty" db:"city"`
	State     string    `json:"state,omitempty" db:"state"`
	Phone     string    `json:"phone" db:"phone"`
	Email     string    `json:"email,omitempty" db:"email"`
	IPAddress string    `json:"-" db:"ip_address"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// EssentialInfo is the demographic and financial profile attached to an
// assessment. It is forwarded to the external ML predictor.
type EssentialInfo struct {
	Gender          string  `json:"gender"`
	MonthlyIncome   float64 `json:"monthly_income"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
	EmploymentType  string  `json:"employment_type"`
	Industry        string  `json:"industry"`
	EducationLevel  string  `json:"education_level"`
	HasLoanHistory  bool    `json:"has_loan_history"`
	CreditCardUsage string  `json:"credit_card_usage"`
	HasDefaults     bool    `json:"has_defaults"`
}

// Assessment is one scoring run for an applicant. The input record and the
// full result breakdown are stored as JSON text columns.
type Assessment struct {
	ID          string     `json:"id" db:"id"`
	ApplicantID string     `json:"applicant_id" db:"applicant_id"`
	Status      string     `json:"status" db:"status"`
	InfoJSON    string     `json:"-" db:"essential_info"`
	InputJSON   string     `json:"-" db:"input"`
	ResultJSON  string     `json:"-" db:"result"`
	FinalScore  float64    `json:"final_score" db:"final_score"`
	Category    string     `json:"category" db:"category"`
	TradScore   float64    `json:"traditional_score" db:"traditional_score"`
	PsychScore  float64    `json:"psychometric_score" db:"psychometric_score"`
	AIScore     float64    `json:"ai_score" db:"ai_score"`
	AIFallback  bool       `json:"ai_fallback" db:"ai_fallback"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}

// AssessmentSummary is the flattened row used by the admin listing and the
// CSV export.
type AssessmentSummary struct {
	ID            string     `json:"id"`
	ApplicantID   string     `json:"applicant_id"`
	ApplicantName string     `json:"applicant_name"`
	FinalScore    float64    `json:"final_score"`
	Category      string     `json:"category"`
	TradScore     float64    `json:"traditional_score"`
	PsychScore    float64    `json:"psychometric_score"`
	AIScore       float64    `json:"ai_score"`
	AIFallback    bool       `json:"ai_fallback"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// ScoreStats is the aggregate view for the admin dashboard.
type ScoreStats struct {
	TotalCompleted int64            `json:"total_completed"`
	AverageScore   float64          `json:"average_score"`
	MinScore       float64          `json:"min_score"`
	MaxScore       float64          `json:"max_score"`
	ByCategory     map[string]int64 `json:"by_category"`
}

// NewApplicant creates an applicant with a generated id.
func NewApplicant(name, phone, email, ipAddress string) *Applicant {
	now := time.Now()
	return &Applicant{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     phone,
		Email:     email,
		IPAddress: ipAddress,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewAssessment creates a pending assessment for an applicant.
func NewAssessment(applicantID, infoJSON string) *Assessment {
	now := time.Now()
	return &Assessment{
		ID:          uuid.New().String(),
		ApplicantID: applicantID,
		Status:      StatusPending,
		InfoJSON:    infoJSON,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
