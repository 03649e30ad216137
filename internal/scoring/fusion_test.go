package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func subScores(tScore, tConf, pScore, pConf, aScore, aConf float64) (TraditionalResult, PsychometricResult, AIResult) {
	return TraditionalResult{Score: tScore, Confidence: tConf},
		PsychometricResult{Score: pScore, Confidence: pConf},
		AIResult{Score: aScore, Confidence: aConf}
}

func TestFusionWeightsSumToOne(t *testing.T) {
	tests := []struct {
		name                string
		tConf, pConf, aConf float64
	}{
		{"equal", 0.7, 0.7, 0.7},
		{"skewed", 1.0, 0.3, 0.54},
		{"one dominant", 0.95, 0.05, 0.05},
		{"tiny", 0.01, 0.02, 0.03},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, ps, ai := subScores(5, tt.tConf, 5, tt.pConf, 5, tt.aConf)
			out := Fuse(tr, ps, ai)
			w := out.Detail.Weights
			assert.InDelta(t, 1.0, w.Traditional+w.Psychometric+w.AI, 1e-9)
		})
	}
}

func TestFusionZeroConfidenceFallbackWeights(t *testing.T) {
	tr, ps, ai := subScores(6, 0, 4, 0, 8, 0)
	out := Fuse(tr, ps, ai)

	assert.Equal(t, 0.4, out.Detail.Weights.Traditional)
	assert.Equal(t, 0.3, out.Detail.Weights.Psychometric)
	assert.Equal(t, 0.3, out.Detail.Weights.AI)
	assert.Equal(t, 0.0, out.Detail.Bonuses.Trust)
}

func TestFusionTrustBonusThreshold(t *testing.T) {
	t.Run("average confidence at the threshold earns the bonus", func(t *testing.T) {
		out := Fuse(subScores(7, 0.5, 7, 0.5, 7, 0.5))
		assert.Equal(t, fusionTrustBonus, out.Detail.Bonuses.Trust)
	})

	t.Run("just below the threshold earns nothing", func(t *testing.T) {
		out := Fuse(subScores(7, 0.49, 7, 0.49, 7, 0.49))
		assert.Equal(t, 0.0, out.Detail.Bonuses.Trust)
	})
}

func TestFusionRiskPenalty(t *testing.T) {
	t.Run("two sub-scores below the red-flag line", func(t *testing.T) {
		out := Fuse(subScores(2.0, 0.6, 3.0, 0.6, 8.0, 0.6))
		assert.Equal(t, fusionRiskAmount, out.Detail.Penalties.Risk)
	})

	t.Run("one red flag is tolerated", func(t *testing.T) {
		out := Fuse(subScores(2.0, 0.6, 7.0, 0.6, 8.0, 0.6))
		assert.Equal(t, 0.0, out.Detail.Penalties.Risk)
	})

	t.Run("exactly on the line is not a flag", func(t *testing.T) {
		out := Fuse(subScores(4.5, 0.6, 4.5, 0.6, 8.0, 0.6))
		assert.Equal(t, 0.0, out.Detail.Penalties.Risk)
	})

	t.Run("penalty cannot push below zero", func(t *testing.T) {
		out := Fuse(subScores(0.2, 0.3, 0.1, 0.3, 0.5, 0.3))
		assert.GreaterOrEqual(t, out.FinalScore, 0.0)
	})
}

func TestFusionCategoryBoundary(t *testing.T) {
	// Dyadic confidences give exact weights (0.5, 0.25, 0.25), so identical
	// sub-scores fuse to exactly that value with no rounding slack. Average
	// confidence is 1/3, below the trust threshold.
	t.Run("exactly 8.5 is excellent", func(t *testing.T) {
		out := Fuse(subScores(8.5, 0.5, 8.5, 0.25, 8.5, 0.25))
		assert.Equal(t, 8.5, out.FinalScore)
		assert.Equal(t, CategoryExcellent, out.Category)
	})

	t.Run("just under 8.5 is safe", func(t *testing.T) {
		out := Fuse(subScores(8.4999, 0.5, 8.4999, 0.25, 8.4999, 0.25))
		assert.Equal(t, 8.4999, out.FinalScore)
		assert.Equal(t, CategorySafe, out.Category)
	})
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		score    float64
		expected RiskCategory
	}{
		{10, CategoryExcellent},
		{8.5, CategoryExcellent},
		{8.4999, CategorySafe},
		{6.5, CategorySafe},
		{6.4999, CategoryMonitor},
		{4.5, CategoryMonitor},
		{4.4999, CategoryHighRisk},
		{0, CategoryHighRisk},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Categorize(tt.score), "score %v", tt.score)
	}
}

func TestFusionScoreAlwaysInRange(t *testing.T) {
	fixtures := [][6]float64{
		{10, 1, 10, 1, 10, 1},
		{0, 0, 0, 0, 0, 0},
		{10, 0.01, 0, 0.99, 5, 0.5},
		{9.9, 1, 9.9, 1, 9.9, 1}, // trust bonus near the ceiling
	}
	for _, f := range fixtures {
		out := Fuse(subScores(f[0], f[1], f[2], f[3], f[4], f[5]))
		assert.GreaterOrEqual(t, out.FinalScore, 0.0)
		assert.LessOrEqual(t, out.FinalScore, 10.0)
	}
}
