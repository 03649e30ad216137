package scoring

// RiskCategory is the final classification band for a fused score.
type RiskCategory string

const (
	CategoryExcellent RiskCategory = "EXCELLENT"
	CategorySafe      RiskCategory = "SAFE"
	CategoryMonitor   RiskCategory = "MONITOR"
	CategoryHighRisk  RiskCategory = "HIGH_RISK"
)

// Category thresholds partition [0,10] with inclusive lower bounds.
const (
	thresholdExcellent = 8.5
	thresholdSafe      = 6.5
	thresholdMonitor   = 4.5
)

// Categorize maps a final score to its risk category.
func Categorize(score float64) RiskCategory {
	switch {
	case score >= thresholdExcellent:
		return CategoryExcellent
	case score >= thresholdSafe:
		return CategorySafe
	case score >= thresholdMonitor:
		return CategoryMonitor
	default:
		return CategoryHighRisk
	}
}

// Trait names used by the psychometric model. These are the exact six keys
// of every trait-score map produced by the engine.
const (
	TraitFinancialResponsibility = "financial_responsibility"
	TraitDelayedGratification    = "delayed_gratification"
	TraitImpulsivity             = "impulsivity"
	TraitConsistency             = "consistency"
	TraitRiskAversion            = "risk_aversion"
	TraitEmotionalStability      = "emotional_stability"
)

// traitNames in canonical order.
var traitNames = []string{
	TraitFinancialResponsibility,
	TraitDelayedGratification,
	TraitImpulsivity,
	TraitConsistency,
	TraitRiskAversion,
	TraitEmotionalStability,
}

// TraditionalFacts is the declared/verified fact record behind the
// Traditional sub-model. Absent fields are zero values and simply earn no
// points; every scorer is total over a partially populated record.
type TraditionalFacts struct {
	// Identity / KYC
	PANVerified        bool `json:"pan_verified"`
	AadhaarVerified    bool `json:"aadhaar_verified"`
	VoterIDVerified    bool `json:"voter_id_verified"`
	BankPassbook       bool `json:"bank_passbook"`
	SalarySlips        bool `json:"salary_slips"`
	DigiLockerVerified bool `json:"digilocker_verified"`

	// Financial behavior
	MonthlyUPISpend   float64 `json:"monthly_upi_spend"`
	BillsPaidOnTime   bool    `json:"bills_paid_on_time"`
	SalarySMSDetected bool    `json:"salary_sms_detected"`
	EMIPaidOnTime     bool    `json:"emi_paid_on_time"`
	FailedUPIAttempts bool    `json:"failed_upi_attempts"`
	BNPLDues          bool    `json:"bnpl_dues"`

	// Credit / loan behavior
	LoanApps          int  `json:"loan_apps"`
	EMIRepaidOnTime   bool `json:"emi_repaid_on_time"`
	EMIMissed         bool `json:"emi_missed"`
	NoLoanButVerified bool `json:"no_loan_but_verified"`

	// Education / employment
	DegreeCompleted    bool `json:"degree_completed"`
	EmploymentVerified bool `json:"employment_verified"`
	JobDurationMonths  int  `json:"job_duration_months"`
	SelfEmployed       bool `json:"self_employed"`
	CurrentlyStudying  bool `json:"currently_studying"`
	OnlineCourses      bool `json:"online_courses"`

	// Behavioral / search history
	QuickLoanSearches      bool `json:"quick_loan_searches"`
	FinanceContentSearches bool `json:"finance_content_searches"`
	BettingSiteVisits      bool `json:"betting_site_visits"`
	GovtPortalVisits       bool `json:"govt_portal_visits"`
	BudgetingAppUsed       bool `json:"budgeting_app_used"`

	// App / lifestyle
	OTTSubscription   bool `json:"ott_subscription"`
	ExcessiveGaming   bool `json:"excessive_gaming"`
	BettingApps       int  `json:"betting_apps"`
	FitnessAppUsed    bool `json:"fitness_app_used"`
	InAppCreditRepaid bool `json:"inapp_credit_repaid"`

	// Geolocation
	RegularGPSPattern bool `json:"regular_gps_pattern"`
	BankBranchNearby  bool `json:"bank_branch_nearby"`

	// Asset ownership
	OwnsHouse         bool    `json:"owns_house"`
	OwnsCar           bool    `json:"owns_car"`
	OwnsTwoWheeler    bool    `json:"owns_two_wheeler"`
	MonthlyRentIncome float64 `json:"monthly_rent_income"`
	OwnsLand          bool    `json:"owns_land"`
	GSTRegisteredShop bool    `json:"gst_registered_shop"`
}

// PsychometricAnswer is one survey response. A full assessment carries 30,
// one per question id; fewer is tolerated and lowers confidence.
type PsychometricAnswer struct {
	QuestionID       int     `json:"question_id"`
	Answer           string  `json:"answer"` // "A".."D"
	TimeSpentSeconds float64 `json:"time_spent_seconds"`
}

// AISignals are the risk/protective indicators the PoD heuristic reads.
type AISignals struct {
	BNPLDues          bool    `json:"bnpl_dues"`
	EMIMissed         bool    `json:"emi_missed"`
	FailedUPIAttempts bool    `json:"failed_upi_attempts"`
	LoanApps          int     `json:"loan_apps"`
	BettingApps       int     `json:"betting_apps"`
	QuickLoanSearches bool    `json:"quick_loan_searches"`
	GSTRegisteredShop bool    `json:"gst_registered_shop"`
	MonthlyRentIncome float64 `json:"monthly_rent_income"`
	InAppCreditRepaid bool    `json:"inapp_credit_repaid"`
}

// SignalsFromFacts projects the AI signal record out of the declared facts,
// so a caller supplying only TraditionalFacts still gets an AI sub-score.
func SignalsFromFacts(f TraditionalFacts) AISignals {
	return AISignals{
		BNPLDues:          f.BNPLDues,
		EMIMissed:         f.EMIMissed,
		FailedUPIAttempts: f.FailedUPIAttempts,
		LoanApps:          f.LoanApps,
		BettingApps:       f.BettingApps,
		QuickLoanSearches: f.QuickLoanSearches,
		GSTRegisteredShop: f.GSTRegisteredShop,
		MonthlyRentIncome: f.MonthlyRentIncome,
		InAppCreditRepaid: f.InAppCreditRepaid,
	}
}

// MLPrediction is the external predictor's output. A non-empty Error marks
// the sentinel that triggers the degraded fallback.
type MLPrediction struct {
	AIScore    float64 `json:"ai_score"`
	Confidence float64 `json:"confidence"`
	PoD        float64 `json:"pod"`
	Error      string  `json:"error,omitempty"`
}

// Input is the complete record a single scoring run consumes.
type Input struct {
	Facts        TraditionalFacts     `json:"facts"`
	Answers      []PsychometricAnswer `json:"answers"`
	MLPrediction *MLPrediction        `json:"ml_prediction,omitempty"`
}

// TraditionalPenalties is the penalty block of the traditional breakdown.
type TraditionalPenalties struct {
	Drift float64 `json:"drift"`
}

// TraditionalResult is the Traditional sub-score with its breakdown.
type TraditionalResult struct {
	Score          float64              `json:"score"`
	Confidence     float64              `json:"confidence"`
	CategoryScores map[string]float64   `json:"categoryScores"`
	TrustBonus     float64              `json:"trustBonus"`
	Penalties      TraditionalPenalties `json:"penalties"`
}

// PsychometricPenalties is the penalty block of the psychometric breakdown.
type PsychometricPenalties struct {
	CDD float64 `json:"cdd"`
}

// PsychometricResult is the Psychometric sub-score with its breakdown.
// TraitScores holds the raw accumulated weighted point totals.
type PsychometricResult struct {
	Score        float64               `json:"score"`
	Confidence   float64               `json:"confidence"`
	TraitScores  map[string]float64    `json:"traitScores"`
	ChecksPassed int                   `json:"checksPassed"`
	Penalties    PsychometricPenalties `json:"penalties"`
}

// AIResult is the AI sub-score. UsedFallback marks the degraded triple that
// replaces a failed external prediction.
type AIResult struct {
	Score        float64 `json:"score"`
	Confidence   float64 `json:"confidence"`
	BasePoD      float64 `json:"basePoD"`
	AdjustedPoD  float64 `json:"adjustedPoD"`
	UsedFallback bool    `json:"usedFallback,omitempty"`
}

// FusionWeights are the confidence-proportional model weights, summing to 1.
type FusionWeights struct {
	Traditional  float64 `json:"traditional"`
	Psychometric float64 `json:"psychometric"`
	AI           float64 `json:"ai"`
}

// FusionBonuses and FusionPenalties are the cross-model adjustment blocks.
type FusionBonuses struct {
	Trust float64 `json:"trust"`
}

type FusionPenalties struct {
	Risk float64 `json:"risk"`
}

// FusionDetail explains how the three sub-scores were combined.
type FusionDetail struct {
	Weights   FusionWeights   `json:"weights"`
	Bonuses   FusionBonuses   `json:"bonuses"`
	Penalties FusionPenalties `json:"penalties"`
}

// Result is the terminal output of a scoring run. The structure is a stable
// contract: it is rendered in the score-explanation UI and exported as CSV.
type Result struct {
	FinalScore   float64            `json:"finalScore"`
	Category     RiskCategory       `json:"category"`
	Traditional  TraditionalResult  `json:"traditional"`
	Psychometric PsychometricResult `json:"psychometric"`
	AI           AIResult           `json:"ai"`
	Fusion       FusionDetail       `json:"fusion"`
	Note         string             `json:"note,omitempty"`
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
