package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineDeterministic(t *testing.T) {
	engine := NewEngine()
	input := Input{Facts: fullKYCFacts(), Answers: variedAnswers()}

	first := engine.Score(input)
	second := engine.Score(input)
	assert.Equal(t, first, second)
}

func TestEngineStrongApplicant(t *testing.T) {
	engine := NewEngine()
	result := engine.Score(Input{Facts: fullKYCFacts(), Answers: variedAnswers()})

	assert.Equal(t, CategoryExcellent, result.Category)
	assert.GreaterOrEqual(t, result.FinalScore, 8.5)
	assert.Equal(t, fusionTrustBonus, result.Fusion.Bonuses.Trust)
	assert.Equal(t, 0.0, result.Fusion.Penalties.Risk)
	assert.Empty(t, result.Note)
}

func TestEngineRiskyApplicant(t *testing.T) {
	engine := NewEngine()
	result := engine.Score(Input{Facts: riskyFacts(), Answers: uniformAnswers("D", 5)})

	assert.Equal(t, CategoryHighRisk, result.Category)
	assert.Less(t, result.FinalScore, 4.5)
	// Traditional bottoms out and the psychometric run is heavily penalized,
	// so at least two red flags trip the cross-model penalty.
	assert.Equal(t, 0.0, result.Traditional.Score)
	assert.Less(t, result.Psychometric.Score, 4.5)
	assert.Equal(t, fusionRiskAmount, result.Fusion.Penalties.Risk)
}

func TestEngineUsesExternalPrediction(t *testing.T) {
	engine := NewEngine()
	prediction := &MLPrediction{AIScore: 7.2, Confidence: 0.85, PoD: 0.22}
	result := engine.Score(Input{Facts: fullKYCFacts(), Answers: variedAnswers(), MLPrediction: prediction})

	assert.Equal(t, 7.2, result.AI.Score)
	assert.Equal(t, 0.85, result.AI.Confidence)
	assert.Equal(t, 0.22, result.AI.AdjustedPoD)
	assert.False(t, result.AI.UsedFallback)
	assert.Empty(t, result.Note)
}

func TestEnginePredictorFailureDegrades(t *testing.T) {
	engine := NewEngine()
	prediction := &MLPrediction{Error: "timeout"}
	result := engine.Score(Input{Facts: fullKYCFacts(), Answers: variedAnswers(), MLPrediction: prediction})

	require.True(t, result.AI.UsedFallback)
	assert.Equal(t, FallbackAIScore, result.AI.Score)
	assert.Equal(t, FallbackConfidence, result.AI.Confidence)
	assert.Equal(t, FallbackPoD, result.AI.AdjustedPoD)
	assert.NotEmpty(t, result.Note)
	// A degraded AI leg must still yield a complete, in-range result.
	assert.GreaterOrEqual(t, result.FinalScore, 0.0)
	assert.LessOrEqual(t, result.FinalScore, 10.0)
	assert.NotEmpty(t, result.Category)
}

func TestEngineFinalScoreRoundedToOneDecimal(t *testing.T) {
	engine := NewEngine()
	inputs := []Input{
		{Facts: fullKYCFacts(), Answers: variedAnswers()},
		{Facts: riskyFacts(), Answers: uniformAnswers("D", 5)},
		{Facts: TraditionalFacts{}, Answers: nil},
	}
	for _, in := range inputs {
		result := engine.Score(in)
		assert.InDelta(t, result.FinalScore, math.Round(result.FinalScore*10)/10, 1e-12)
	}
}

func TestEngineEmptyInput(t *testing.T) {
	engine := NewEngine()
	result := engine.Score(Input{})

	assert.GreaterOrEqual(t, result.FinalScore, 0.0)
	assert.LessOrEqual(t, result.FinalScore, 10.0)
	assert.NotEmpty(t, result.Category)
	assert.Len(t, result.Traditional.CategoryScores, 8)
	assert.Len(t, result.Psychometric.TraitScores, 6)
	// No risk signals at all: the heuristic sits at its prior.
	assert.InDelta(t, basePoD, result.AI.AdjustedPoD, 1e-9)
}
