package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullKYCFacts() TraditionalFacts {
	return TraditionalFacts{
		PANVerified:        true,
		AadhaarVerified:    true,
		VoterIDVerified:    true,
		BankPassbook:       true,
		SalarySlips:        true,
		DigiLockerVerified: true,
		MonthlyUPISpend:    65000,
		BillsPaidOnTime:    true,
		SalarySMSDetected:  true,
		EMIPaidOnTime:      true,
		LoanApps:           1,
		EMIRepaidOnTime:    true,
		DegreeCompleted:    true,
		EmploymentVerified: true,
		JobDurationMonths:  36,
		RegularGPSPattern:  true,
		BankBranchNearby:   true,
	}
}

func riskyFacts() TraditionalFacts {
	return TraditionalFacts{
		BNPLDues:          true,
		EMIMissed:         true,
		FailedUPIAttempts: true,
		LoanApps:          8,
		BettingApps:       3,
		QuickLoanSearches: true,
		BettingSiteVisits: true,
	}
}

func TestCategoryScorersStayInUnitRange(t *testing.T) {
	tests := []struct {
		name  string
		facts TraditionalFacts
	}{
		{"empty", TraditionalFacts{}},
		{"full kyc", fullKYCFacts()},
		{"risky", riskyFacts()},
		{"assets only", TraditionalFacts{OwnsHouse: true, OwnsCar: true, OwnsLand: true, MonthlyRentIncome: 12000, GSTRegisteredShop: true, OwnsTwoWheeler: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := categoryScores(tt.facts)
			assert.Len(t, scores, 8)
			for name, score := range scores {
				assert.GreaterOrEqual(t, score, 0.0, "category %s", name)
				assert.LessOrEqual(t, score, 1.0, "category %s", name)
			}
		})
	}
}

func TestScoreIdentityKYC(t *testing.T) {
	assert.InDelta(t, 1.0, scoreIdentityKYC(fullKYCFacts()), 1e-9)
	assert.InDelta(t, 0.0, scoreIdentityKYC(TraditionalFacts{}), 1e-9)

	// PAN + Aadhaar only: 50 of 140.
	partial := TraditionalFacts{PANVerified: true, AadhaarVerified: true}
	assert.InDelta(t, 50.0/140.0, scoreIdentityKYC(partial), 1e-9)
}

func TestScoreFinancialBehaviorTiers(t *testing.T) {
	tests := []struct {
		name     string
		upi      float64
		expected float64
	}{
		{"below floor", 9999, 0},
		{"first tier", 10000, 20.0 / 160.0},
		{"second tier", 20000, 40.0 / 160.0},
		{"top tier", 50000, 60.0 / 160.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := scoreFinancialBehavior(TraditionalFacts{MonthlyUPISpend: tt.upi})
			assert.InDelta(t, tt.expected, score, 1e-9)
		})
	}

	// Penalties cannot push below zero.
	negative := scoreFinancialBehavior(TraditionalFacts{FailedUPIAttempts: true, BNPLDues: true})
	assert.Equal(t, 0.0, negative)
}

func TestScoreCreditLoanOffsets(t *testing.T) {
	// No loans declared: +10 over the +20 base.
	assert.InDelta(t, 30.0/35.0, scoreCreditLoan(TraditionalFacts{}), 1e-9)
	// Heavy loan-app usage with a missed EMI bottoms out at zero.
	assert.Equal(t, 0.0, scoreCreditLoan(TraditionalFacts{LoanApps: 8, EMIMissed: true}))
	// Repaid history on a light footprint clamps at the top.
	assert.Equal(t, 1.0, scoreCreditLoan(TraditionalFacts{LoanApps: 1, EMIRepaidOnTime: true}))
}

func TestVerifiedDataPoints(t *testing.T) {
	assert.Equal(t, 0, verifiedDataPoints(TraditionalFacts{}))
	assert.Equal(t, 8, verifiedDataPoints(fullKYCFacts()))
	assert.Equal(t, 1, verifiedDataPoints(TraditionalFacts{PANVerified: true}))
	// DigiLocker substitutes for Aadhaar.
	assert.Equal(t, 1, verifiedDataPoints(TraditionalFacts{DigiLockerVerified: true}))
}

func TestTrustBonusCappedAtHalf(t *testing.T) {
	assert.InDelta(t, maxTrustBonus, trustBonus(fullKYCFacts()), 1e-9)
	// Betting apps forfeit the clean-footprint bonus.
	f := fullKYCFacts()
	f.BettingApps = 1
	assert.InDelta(t, 0.5, trustBonus(f), 1e-9) // still capped: 0.2+0.2+0.2+0.1
	f.MonthlyUPISpend = 0
	f.RegularGPSPattern = false
	assert.InDelta(t, 0.4, trustBonus(f), 1e-9)
}

func TestDriftPenaltyPatterns(t *testing.T) {
	tests := []struct {
		name     string
		facts    TraditionalFacts
		expected float64
	}{
		{
			name:     "failed upi while claiming on-time bills",
			facts:    TraditionalFacts{FailedUPIAttempts: true, BillsPaidOnTime: true, RegularGPSPattern: true},
			expected: 0.4,
		},
		{
			name:     "missed emi despite on-time flag",
			facts:    TraditionalFacts{EMIMissed: true, EMIPaidOnTime: true, RegularGPSPattern: true},
			expected: 0.5,
		},
		{
			name:     "bnpl dues with verified salary",
			facts:    TraditionalFacts{BNPLDues: true, SalarySlips: true, RegularGPSPattern: true},
			expected: 0.2,
		},
		{
			name:     "gps pattern lost",
			facts:    TraditionalFacts{},
			expected: 0.3,
		},
		{
			name: "all patterns capped",
			facts: TraditionalFacts{
				FailedUPIAttempts: true, BillsPaidOnTime: true,
				EMIMissed: true, EMIPaidOnTime: true,
				BNPLDues: true, SalarySlips: true,
			},
			expected: 1.4, // 0.4+0.5+0.2+0.3, under the 1.5 cap
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, driftPenalty(tt.facts), 1e-9)
		})
	}
}

func TestScoreTraditional(t *testing.T) {
	t.Run("empty record is total and low", func(t *testing.T) {
		result := ScoreTraditional(TraditionalFacts{})
		assert.InDelta(t, 0.6, result.Confidence, 1e-9)
		// Neutral category baselines minus the missing-GPS drift plus the
		// clean-footprint bonus.
		assert.InDelta(t, 0.893, result.Score, 0.001)
		assert.InDelta(t, 0.3, result.Penalties.Drift, 1e-9)
	})

	t.Run("strong profile", func(t *testing.T) {
		result := ScoreTraditional(fullKYCFacts())
		assert.InDelta(t, 1.0, result.Confidence, 1e-9)
		assert.InDelta(t, 0.5, result.TrustBonus, 1e-9)
		assert.Equal(t, 0.0, result.Penalties.Drift)
		assert.InDelta(t, 8.49, result.Score, 0.01)
	})

	t.Run("risky profile bottoms out", func(t *testing.T) {
		result := ScoreTraditional(riskyFacts())
		assert.Equal(t, 0.0, result.Score)
		assert.InDelta(t, 0.65, result.Confidence, 1e-9)
	})

	t.Run("score always in range", func(t *testing.T) {
		for _, facts := range []TraditionalFacts{{}, fullKYCFacts(), riskyFacts()} {
			result := ScoreTraditional(facts)
			assert.GreaterOrEqual(t, result.Score, 0.0)
			assert.LessOrEqual(t, result.Score, 10.0)
			assert.GreaterOrEqual(t, result.Confidence, 0.0)
			assert.LessOrEqual(t, result.Confidence, 1.0)
		}
	})
}
