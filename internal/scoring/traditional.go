package scoring

// Category keys of the traditional breakdown. These are the eight keys of
// every categoryScores map the engine emits.
const (
	CategoryIdentityKYC         = "identity_kyc"
	CategoryFinancialBehavior   = "financial_behavior"
	CategoryCreditLoan          = "credit_loan"
	CategoryEducationEmployment = "education_employment"
	CategoryBehavioralSearch    = "behavioral_search"
	CategoryAppLifestyle        = "app_lifestyle"
	CategoryGeolocation         = "geolocation"
	CategoryAssetOwnership      = "asset_ownership"
)

// categoryOrder fixes summation order so repeated runs are bit-identical.
var categoryOrder = []string{
	CategoryIdentityKYC,
	CategoryFinancialBehavior,
	CategoryCreditLoan,
	CategoryEducationEmployment,
	CategoryBehavioralSearch,
	CategoryAppLifestyle,
	CategoryGeolocation,
	CategoryAssetOwnership,
}

// categoryWeights sum to 1.0 across the eight life areas.
var categoryWeights = map[string]float64{
	CategoryIdentityKYC:         0.20,
	CategoryFinancialBehavior:   0.25,
	CategoryCreditLoan:          0.15,
	CategoryEducationEmployment: 0.15,
	CategoryBehavioralSearch:    0.05,
	CategoryAppLifestyle:        0.05,
	CategoryGeolocation:         0.05,
	CategoryAssetOwnership:      0.10,
}

// Traditional-scorer tuning constants.
const (
	traditionalBaseConfidence = 0.6
	confidencePerDataPoint    = 0.05
	maxVerifiedDataPoints     = 8
	maxTrustBonus             = 0.5
	maxDriftPenalty           = 1.5

	upiActivityFloor  = 10000
	upiTrustThreshold = 25000
)

// scoreIdentityKYC awards points for verified identity documents. Max 140.
func scoreIdentityKYC(f TraditionalFacts) float64 {
	points := 0.0
	if f.PANVerified {
		points += 30
	}
	if f.AadhaarVerified {
		points += 20
	}
	if f.VoterIDVerified {
		points += 10
	}
	if f.BankPassbook {
		points += 25
	}
	if f.SalarySlips {
		points += 25
	}
	if f.DigiLockerVerified {
		points += 30
	}
	return clamp(points/140, 0, 1)
}

// scoreFinancialBehavior rates payment activity. UPI volume is tiered;
// failed transactions and BNPL dues subtract. Max 160 before clamping.
func scoreFinancialBehavior(f TraditionalFacts) float64 {
	points := 0.0
	switch {
	case f.MonthlyUPISpend >= 50000:
		points += 60
	case f.MonthlyUPISpend >= 20000:
		points += 40
	case f.MonthlyUPISpend >= 10000:
		points += 20
	}
	if f.BillsPaidOnTime {
		points += 40
	}
	if f.SalarySMSDetected {
		points += 30
	}
	if f.EMIPaidOnTime {
		points += 30
	}
	if f.FailedUPIAttempts {
		points -= 20
	}
	if f.BNPLDues {
		points -= 30
	}
	return clamp(points/160, 0, 1)
}

// scoreCreditLoan rates borrowing behavior. The +20 base offset keeps the
// normalized range non-negative under the -20/-25 penalties; span 35.
func scoreCreditLoan(f TraditionalFacts) float64 {
	points := 0.0
	switch {
	case f.LoanApps < 2:
		points += 10
	case f.LoanApps <= 4:
		// neutral
	default:
		points -= 20
	}
	if f.EMIRepaidOnTime {
		points += 20
	}
	if f.EMIMissed {
		points -= 25
	}
	if f.NoLoanButVerified {
		points += 15
	}
	return clamp((points+20)/35, 0, 1)
}

// scoreEducationEmployment awards stability signals. Max 110.
func scoreEducationEmployment(f TraditionalFacts) float64 {
	points := 0.0
	if f.DegreeCompleted {
		points += 25
	}
	if f.EmploymentVerified {
		points += 20
	}
	if f.JobDurationMonths > 6 {
		points += 25
	}
	if f.SelfEmployed {
		points += 20
	}
	if f.CurrentlyStudying {
		points += 10
	}
	if f.OnlineCourses {
		points += 10
	}
	return clamp(points/110, 0, 1)
}

// scoreBehavioralSearch rates search history. Offset +35 over a span of 65.
func scoreBehavioralSearch(f TraditionalFacts) float64 {
	points := 0.0
	if f.QuickLoanSearches {
		points -= 30
	}
	if f.FinanceContentSearches {
		points += 15
	}
	if f.BettingSiteVisits {
		points -= 40
	}
	if f.GovtPortalVisits {
		points += 10
	}
	if f.BudgetingAppUsed {
		points += 10
	}
	return clamp((points+35)/65, 0, 1)
}

// scoreAppLifestyle rates installed-app signals. Offset +40 over 75.
func scoreAppLifestyle(f TraditionalFacts) float64 {
	points := 0.0
	if f.OTTSubscription {
		points += 10
	}
	if f.ExcessiveGaming {
		points -= 10
	}
	if f.BettingApps > 0 {
		points -= 40
	}
	if f.FitnessAppUsed {
		points += 10
	}
	if f.InAppCreditRepaid {
		points += 15
	}
	return clamp((points+40)/75, 0, 1)
}

// scoreGeolocation rewards a stable location pattern. Rural areas without
// a nearby branch are not penalized. Max 30.
func scoreGeolocation(f TraditionalFacts) float64 {
	points := 0.0
	if f.RegularGPSPattern {
		points += 20
	}
	if f.BankBranchNearby {
		points += 10
	}
	return clamp(points/30, 0, 1)
}

// scoreAssetOwnership awards declared assets. Max 165.
func scoreAssetOwnership(f TraditionalFacts) float64 {
	points := 0.0
	if f.OwnsHouse {
		points += 50
	}
	if f.OwnsCar {
		points += 30
	}
	if f.OwnsTwoWheeler {
		points += 10
	}
	if f.MonthlyRentIncome >= 5000 {
		points += 25
	}
	if f.OwnsLand {
		points += 30
	}
	if f.GSTRegisteredShop {
		points += 20
	}
	return clamp(points/165, 0, 1)
}

// categoryScores computes all eight normalized category scores.
func categoryScores(f TraditionalFacts) map[string]float64 {
	return map[string]float64{
		CategoryIdentityKYC:         scoreIdentityKYC(f),
		CategoryFinancialBehavior:   scoreFinancialBehavior(f),
		CategoryCreditLoan:          scoreCreditLoan(f),
		CategoryEducationEmployment: scoreEducationEmployment(f),
		CategoryBehavioralSearch:    scoreBehavioralSearch(f),
		CategoryAppLifestyle:        scoreAppLifestyle(f),
		CategoryGeolocation:         scoreGeolocation(f),
		CategoryAssetOwnership:      scoreAssetOwnership(f),
	}
}

// hasSalaryEvidence is true when income is backed by slips or bank SMS.
func hasSalaryEvidence(f TraditionalFacts) bool {
	return f.SalarySlips || f.SalarySMSDetected
}

// hasLoanData is true when any loan/EMI field carries information.
func hasLoanData(f TraditionalFacts) bool {
	return f.LoanApps > 0 || f.EMIRepaidOnTime || f.EMIMissed || f.EMIPaidOnTime
}

// verifiedDataPoints counts the presence checks backing the confidence
// factor, capped at maxVerifiedDataPoints.
func verifiedDataPoints(f TraditionalFacts) int {
	count := 0
	checks := []bool{
		f.PANVerified,
		f.AadhaarVerified || f.DigiLockerVerified,
		hasSalaryEvidence(f),
		f.BankPassbook,
		f.MonthlyUPISpend >= upiActivityFloor,
		f.BillsPaidOnTime,
		hasLoanData(f),
		f.RegularGPSPattern,
	}
	for _, ok := range checks {
		if ok {
			count++
		}
	}
	if count > maxVerifiedDataPoints {
		count = maxVerifiedDataPoints
	}
	return count
}

// trustBonus rewards agreement between independent verification signals.
func trustBonus(f TraditionalFacts) float64 {
	bonus := 0.0
	if f.PANVerified && f.AadhaarVerified {
		bonus += 0.2
	}
	if hasSalaryEvidence(f) {
		bonus += 0.2
	}
	if f.MonthlyUPISpend >= upiTrustThreshold {
		bonus += 0.2
	}
	if f.RegularGPSPattern {
		bonus += 0.1
	}
	if f.BettingApps == 0 && f.LoanApps < 4 {
		bonus += 0.1
	}
	return clamp(bonus, 0, maxTrustBonus)
}

// driftPenalty accumulates fixed increments for internally inconsistent
// declarations, capped at maxDriftPenalty.
func driftPenalty(f TraditionalFacts) float64 {
	penalty := 0.0
	if f.FailedUPIAttempts && f.BillsPaidOnTime {
		penalty += 0.4
	}
	if f.EMIMissed && f.EMIPaidOnTime {
		penalty += 0.5
	}
	if f.BNPLDues && hasSalaryEvidence(f) {
		penalty += 0.2
	}
	if !f.RegularGPSPattern {
		penalty += 0.3
	}
	return clamp(penalty, 0, maxDriftPenalty)
}

// ScoreTraditional computes the rule-based sub-score over declared facts.
// Total over any partially populated record: absent fields score zero.
func ScoreTraditional(f TraditionalFacts) TraditionalResult {
	scores := categoryScores(f)

	weightedSum := 0.0
	for _, name := range categoryOrder {
		weightedSum += scores[name] * categoryWeights[name]
	}

	confidence := traditionalBaseConfidence + confidencePerDataPoint*float64(verifiedDataPoints(f))
	if confidence > 1.0 {
		confidence = 1.0
	}

	bonus := trustBonus(f)
	drift := driftPenalty(f)

	score := clamp(confidence*weightedSum*10+bonus-drift, 0, 10)

	return TraditionalResult{
		Score:          score,
		Confidence:     confidence,
		CategoryScores: scores,
		TrustBonus:     bonus,
		Penalties:      TraditionalPenalties{Drift: drift},
	}
}
