package scoring

// Fusion constants.
const (
	// Fixed weights for the degenerate case of zero total confidence.
	defaultWeightTraditional  = 0.4
	defaultWeightPsychometric = 0.3
	defaultWeightAI           = 0.3

	fusionTrustThreshold = 0.5
	fusionTrustBonus     = 0.5

	redFlagScore     = 4.5
	minRedFlags      = 2
	fusionRiskAmount = 1.0
)

// FusionOutcome is the fused final score with its explanation block.
type FusionOutcome struct {
	FinalScore float64
	Category   RiskCategory
	Detail     FusionDetail
}

// Fuse combines the three sub-scores using confidence-proportional weights,
// then applies the cross-model trust bonus and risk penalty. Deterministic
// and stateless: safe to re-run for fixtures.
func Fuse(traditional TraditionalResult, psychometric PsychometricResult, ai AIResult) FusionOutcome {
	totalConfidence := traditional.Confidence + psychometric.Confidence + ai.Confidence

	weights := FusionWeights{
		Traditional:  defaultWeightTraditional,
		Psychometric: defaultWeightPsychometric,
		AI:           defaultWeightAI,
	}
	if totalConfidence > 0 {
		weights = FusionWeights{
			Traditional:  traditional.Confidence / totalConfidence,
			Psychometric: psychometric.Confidence / totalConfidence,
			AI:           ai.Confidence / totalConfidence,
		}
	}

	baseScore := traditional.Score*weights.Traditional +
		psychometric.Score*weights.Psychometric +
		ai.Score*weights.AI

	overallConfidence := totalConfidence / 3
	trust := 0.0
	if overallConfidence >= fusionTrustThreshold {
		trust = fusionTrustBonus
	}

	redFlags := 0
	for _, score := range []float64{traditional.Score, psychometric.Score, ai.Score} {
		if score < redFlagScore {
			redFlags++
		}
	}
	risk := 0.0
	if redFlags >= minRedFlags {
		risk = fusionRiskAmount
	}

	final := clamp(baseScore+trust-risk, 0, 10)

	return FusionOutcome{
		FinalScore: final,
		Category:   Categorize(final),
		Detail: FusionDetail{
			Weights:   weights,
			Bonuses:   FusionBonuses{Trust: trust},
			Penalties: FusionPenalties{Risk: risk},
		},
	}
}
