package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uniformAnswers builds a full 30-answer sequence of one option with the
// given per-answer time.
func uniformAnswers(option string, perAnswerSeconds float64) []PsychometricAnswer {
	answers := make([]PsychometricAnswer, 0, 30)
	for id := 1; id <= 30; id++ {
		answers = append(answers, PsychometricAnswer{
			QuestionID:       id,
			Answer:           option,
			TimeSpentSeconds: perAnswerSeconds,
		})
	}
	return answers
}

// variedAnswers cycles through options for a plausible honest run.
func variedAnswers() []PsychometricAnswer {
	pattern := []string{"A", "B", "A", "C", "B", "A", "B", "D", "A", "B"}
	answers := make([]PsychometricAnswer, 0, 30)
	for id := 1; id <= 30; id++ {
		answers = append(answers, PsychometricAnswer{
			QuestionID:       id,
			Answer:           pattern[(id-1)%len(pattern)],
			TimeSpentSeconds: 6.5,
		})
	}
	return answers
}

func TestAccumulateTraitsIgnoresUnknownInput(t *testing.T) {
	answers := []PsychometricAnswer{
		{QuestionID: 99, Answer: "A", TimeSpentSeconds: 5},
		{QuestionID: 0, Answer: "B", TimeSpentSeconds: 5},
		{QuestionID: 3, Answer: "E", TimeSpentSeconds: 5},
	}
	totals := accumulateTraits(answers)
	require.Len(t, totals, 6)
	for _, name := range traitNames {
		assert.Equal(t, 0.0, totals[name])
	}
}

func TestAccumulateTraitsAppliesWeightings(t *testing.T) {
	// Question 3 option A: financial_responsibility 5 x 1.4, consistency 5 x 1.2.
	totals := accumulateTraits([]PsychometricAnswer{{QuestionID: 3, Answer: "A", TimeSpentSeconds: 8}})
	assert.InDelta(t, 7.0, totals[TraitFinancialResponsibility], 1e-9)
	assert.InDelta(t, 6.0, totals[TraitConsistency], 1e-9)
	assert.Equal(t, 0.0, totals[TraitImpulsivity])
}

func TestCDDAllSameRushedRun(t *testing.T) {
	// 30 identical answers in 20 seconds total: all-same +0.3, extreme
	// polarity +0.2, rushed +0.2.
	answers := uniformAnswers("A", 20.0/30.0)
	result := ScorePsychometric(answers)

	assert.InDelta(t, 0.7, result.Penalties.CDD, 1e-9)
	// Passing checks: impulsivity/consistency pattern and the mirrored hook.
	assert.Equal(t, 2, result.ChecksPassed)
	assert.InDelta(t, 0.54, result.Confidence, 1e-9)
	assert.LessOrEqual(t, result.Confidence, 0.3+0.12*4)
}

func TestAllSameWithRealisticTiming(t *testing.T) {
	result := ScorePsychometric(uniformAnswers("A", 7.5))
	// Still penalized for the identical pattern and polarity, but not time.
	assert.InDelta(t, 0.5, result.Penalties.CDD, 1e-9)
	assert.InDelta(t, 7.744, result.Score, 0.01)
}

func TestVariedRunPassesAllChecks(t *testing.T) {
	result := ScorePsychometric(variedAnswers())
	assert.Equal(t, psychometricChecks, result.ChecksPassed)
	assert.InDelta(t, 1.0, result.Confidence, 1e-9)
	assert.Equal(t, 0.0, result.Penalties.CDD)
}

func TestImpulsiveInconsistentPattern(t *testing.T) {
	// An all-'D' run racks up impulsivity while starving consistency.
	totals := accumulateTraits(uniformAnswers("D", 5))
	assert.Greater(t, totals[TraitImpulsivity], cddImpulsivityThreshold)
	assert.Less(t, totals[TraitConsistency], cddConsistencyFloor)
	assert.True(t, impulsiveInconsistent(totals))

	result := ScorePsychometric(uniformAnswers("D", 5))
	// all-same +0.3, polarity +0.2, impulsive/inconsistent +0.4
	assert.InDelta(t, 0.9, result.Penalties.CDD, 1e-9)
	assert.Less(t, result.Score, 4.5)
}

func TestPartialAnswerSequences(t *testing.T) {
	tests := []struct {
		name    string
		answers []PsychometricAnswer
	}{
		{"no answers", nil},
		{"single answer", []PsychometricAnswer{{QuestionID: 1, Answer: "B", TimeSpentSeconds: 4}}},
		{"five answers", variedAnswers()[:5]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScorePsychometric(tt.answers)
			assert.GreaterOrEqual(t, result.Score, 0.0)
			assert.LessOrEqual(t, result.Score, 10.0)
			assert.GreaterOrEqual(t, result.Confidence, 0.0)
			assert.LessOrEqual(t, result.Confidence, 1.0)
		})
	}
}

func TestDistinctOptions(t *testing.T) {
	assert.Equal(t, 0, distinctOptions(nil))
	assert.Equal(t, 1, distinctOptions(uniformAnswers("C", 5)))
	assert.Equal(t, 4, distinctOptions(variedAnswers()))
}

func TestMirroredContradictionDisabled(t *testing.T) {
	// The hook stays inert until mirrored pairs are defined.
	assert.False(t, hasMirroredContradiction(uniformAnswers("A", 1)))
	assert.False(t, hasMirroredContradiction(nil))
}
