package scoring

import "math"

// PoD heuristic constants.
const (
	basePoD = 0.15
	minPoD  = 0.01
	maxPoD  = 0.95

	// Inverse power curve exponent: moderate PoD still yields a
	// mid-to-high score rather than a linear drop.
	podCurveExponent = 0.6

	aiBaseConfidence    = 0.4
	confidencePerSignal = 0.1
	maxSignalCount      = 6
)

// Degraded fallback used only when the external predictor fails.
const (
	FallbackAIScore    = 5.0
	FallbackConfidence = 0.3
	FallbackPoD        = 0.5
)

// probabilityOfDefault applies the signed risk/protective adjustments to
// the prior baseline and clamps to the supported range.
func probabilityOfDefault(s AISignals) float64 {
	pod := basePoD

	if s.BNPLDues {
		pod += 0.08
	}
	if s.EMIMissed {
		pod += 0.12
	}
	if s.FailedUPIAttempts {
		pod += 0.05
	}
	switch {
	case s.LoanApps >= 5:
		pod += 0.10
	case s.LoanApps >= 3:
		pod += 0.06
	case s.LoanApps >= 2:
		pod += 0.03
	}
	pod += 0.04 * float64(s.BettingApps)
	if s.QuickLoanSearches {
		pod += 0.04
	}

	if s.GSTRegisteredShop {
		pod -= 0.03
	}
	if s.MonthlyRentIncome > 0 {
		pod -= 0.02
	}
	if s.InAppCreditRepaid {
		pod -= 0.03
	}

	return clamp(pod, minPoD, maxPoD)
}

// signalCount counts the defined risk-signal fields that are present,
// capped at maxSignalCount.
func signalCount(s AISignals) int {
	count := 0
	signals := []bool{
		s.BNPLDues,
		s.EMIMissed,
		s.FailedUPIAttempts,
		s.LoanApps > 0,
		s.BettingApps > 0,
		s.QuickLoanSearches,
	}
	for _, present := range signals {
		if present {
			count++
		}
	}
	if count > maxSignalCount {
		count = maxSignalCount
	}
	return count
}

// ScoreAI computes the heuristic probability-of-default sub-score.
func ScoreAI(s AISignals) AIResult {
	pod := probabilityOfDefault(s)
	score := 10 * math.Pow(1-pod, podCurveExponent)

	confidence := aiBaseConfidence + confidencePerSignal*float64(signalCount(s))
	if confidence > 1.0 {
		confidence = 1.0
	}

	return AIResult{
		Score:       clamp(score, 0, 10),
		Confidence:  clamp(confidence, 0, 1),
		BasePoD:     basePoD,
		AdjustedPoD: pod,
	}
}

// AIFromPrediction substitutes an external ML prediction for the heuristic.
// A prediction carrying an error sentinel yields the fixed degraded
// fallback, never a propagated failure.
func AIFromPrediction(p MLPrediction) AIResult {
	if p.Error != "" {
		return FallbackAIResult()
	}
	return AIResult{
		Score:       clamp(p.AIScore, 0, 10),
		Confidence:  clamp(p.Confidence, 0, 1),
		BasePoD:     basePoD,
		AdjustedPoD: p.PoD,
	}
}

// FallbackAIResult is the last-resort AI sub-score when the external
// predictor is unreachable or errors out.
func FallbackAIResult() AIResult {
	return AIResult{
		Score:        FallbackAIScore,
		Confidence:   FallbackConfidence,
		BasePoD:      basePoD,
		AdjustedPoD:  FallbackPoD,
		UsedFallback: true,
	}
}
