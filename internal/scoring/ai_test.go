package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProbabilityOfDefaultBaseline(t *testing.T) {
	result := ScoreAI(AISignals{})
	assert.InDelta(t, basePoD, result.AdjustedPoD, 1e-9)
	assert.InDelta(t, 10*math.Pow(1-basePoD, podCurveExponent), result.Score, 1e-9)
	assert.InDelta(t, 0.4, result.Confidence, 1e-9)
	assert.False(t, result.UsedFallback)
}

func TestProbabilityOfDefaultBounds(t *testing.T) {
	heavy := AISignals{
		BNPLDues:          true,
		EMIMissed:         true,
		FailedUPIAttempts: true,
		LoanApps:          12,
		BettingApps:       20,
		QuickLoanSearches: true,
	}
	assert.InDelta(t, maxPoD, probabilityOfDefault(heavy), 1e-9)

	protective := AISignals{
		GSTRegisteredShop: true,
		MonthlyRentIncome: 8000,
		InAppCreditRepaid: true,
	}
	pod := probabilityOfDefault(protective)
	assert.GreaterOrEqual(t, pod, minPoD)
	assert.InDelta(t, 0.15-0.03-0.02-0.03, pod, 1e-9)
}

func TestLoanAppTiersExclusive(t *testing.T) {
	tests := []struct {
		name     string
		loanApps int
		expected float64
	}{
		{"none", 0, 0.15},
		{"one", 1, 0.15},
		{"two", 2, 0.18},
		{"three", 3, 0.21},
		{"four", 4, 0.21},
		{"five", 5, 0.25},
		{"many", 9, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pod := probabilityOfDefault(AISignals{LoanApps: tt.loanApps})
			assert.InDelta(t, tt.expected, pod, 1e-9)
		})
	}
}

func TestPoDMonotonicInRiskFactors(t *testing.T) {
	base := AISignals{BNPLDues: true}

	prevPoD := 0.0
	prevScore := 11.0
	for _, loanApps := range []int{0, 1, 2, 3, 5, 8} {
		s := base
		s.LoanApps = loanApps
		result := ScoreAI(s)
		assert.GreaterOrEqual(t, result.AdjustedPoD, prevPoD, "loan_apps=%d", loanApps)
		assert.LessOrEqual(t, result.Score, prevScore, "loan_apps=%d", loanApps)
		prevPoD = result.AdjustedPoD
		prevScore = result.Score
	}

	prevPoD = 0.0
	for apps := 0; apps <= 10; apps++ {
		s := base
		s.BettingApps = apps
		result := ScoreAI(s)
		assert.GreaterOrEqual(t, result.AdjustedPoD, prevPoD, "betting_apps=%d", apps)
		prevPoD = result.AdjustedPoD
	}
}

func TestSignalCount(t *testing.T) {
	assert.Equal(t, 0, signalCount(AISignals{}))
	assert.Equal(t, 1, signalCount(AISignals{LoanApps: 3}))
	assert.Equal(t, 6, signalCount(AISignals{
		BNPLDues: true, EMIMissed: true, FailedUPIAttempts: true,
		LoanApps: 1, BettingApps: 1, QuickLoanSearches: true,
	}))
	// Protective signals do not raise confidence.
	assert.Equal(t, 0, signalCount(AISignals{GSTRegisteredShop: true, MonthlyRentIncome: 9000}))
}

func TestAIFromPrediction(t *testing.T) {
	t.Run("valid prediction used verbatim", func(t *testing.T) {
		result := AIFromPrediction(MLPrediction{AIScore: 7.2, Confidence: 0.85, PoD: 0.22})
		assert.Equal(t, 7.2, result.Score)
		assert.Equal(t, 0.85, result.Confidence)
		assert.Equal(t, 0.22, result.AdjustedPoD)
		assert.False(t, result.UsedFallback)
	})

	t.Run("error sentinel degrades to fallback", func(t *testing.T) {
		result := AIFromPrediction(MLPrediction{Error: "timeout"})
		assert.Equal(t, FallbackAIScore, result.Score)
		assert.Equal(t, FallbackConfidence, result.Confidence)
		assert.Equal(t, FallbackPoD, result.AdjustedPoD)
		assert.True(t, result.UsedFallback)
	})

	t.Run("out-of-range prediction clamped to contract", func(t *testing.T) {
		result := AIFromPrediction(MLPrediction{AIScore: 14, Confidence: 1.3, PoD: 0.1})
		assert.Equal(t, 10.0, result.Score)
		assert.Equal(t, 1.0, result.Confidence)
	})
}

func TestSignalsFromFacts(t *testing.T) {
	facts := riskyFacts()
	signals := SignalsFromFacts(facts)
	assert.Equal(t, facts.BNPLDues, signals.BNPLDues)
	assert.Equal(t, facts.LoanApps, signals.LoanApps)
	assert.Equal(t, facts.BettingApps, signals.BettingApps)
	assert.Equal(t, facts.QuickLoanSearches, signals.QuickLoanSearches)
}
