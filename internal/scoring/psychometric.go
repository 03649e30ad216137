package scoring

// Psychometric tuning constants.
const (
	psychometricBaseConfidence = 0.3
	confidencePerCheck         = 0.12
	psychometricChecks         = 6

	// Normalization: six questions feed each trait at up to 5 points, so a
	// capped per-trait average tops out at 5 and the six-trait sum at 30.
	questionsPerTrait   = 6.0
	maxPerTraitAverage  = 5.0
	traitSumDenominator = 30.0

	maxCDDPenalty = 1.0

	extremePolarityRatio = 0.8
	minTotalTimeSeconds  = 45.0
	minDistinctOptions   = 3

	cddImpulsivityThreshold = 20.0
	cddConsistencyFloor     = 10.0
)

// accumulateTraits folds the answer sequence into raw weighted trait
// totals. Unknown question ids and options contribute nothing.
func accumulateTraits(answers []PsychometricAnswer) map[string]float64 {
	totals := make(map[string]float64, len(traitNames))
	for _, name := range traitNames {
		totals[name] = 0
	}

	for _, a := range answers {
		q, ok := questionByID(a.QuestionID)
		if !ok {
			continue
		}
		opt, ok := q.Options[a.Answer]
		if !ok {
			continue
		}
		for trait, points := range opt.Points {
			weight := 1.0
			if w, ok := q.Weightings[trait]; ok {
				weight = w
			}
			totals[trait] += points * weight
		}
	}
	return totals
}

// normalizeTraits reduces raw totals to capped per-trait averages and
// returns their sum, the 0-30 basis of the raw score.
func normalizeTraits(totals map[string]float64) float64 {
	sum := 0.0
	for _, name := range traitNames {
		avg := totals[name] / questionsPerTrait
		if avg > maxPerTraitAverage {
			avg = maxPerTraitAverage
		}
		sum += avg
	}
	return sum
}

// hasAllSameAnswers reports a run of identical options. A single answer is
// not evidence of gaming.
func hasAllSameAnswers(answers []PsychometricAnswer) bool {
	if len(answers) < 2 {
		return false
	}
	first := answers[0].Answer
	for _, a := range answers[1:] {
		if a.Answer != first {
			return false
		}
	}
	return true
}

// hasExtremePolarity reports more than 80% of answers at the A/D extremes.
func hasExtremePolarity(answers []PsychometricAnswer) bool {
	if len(answers) == 0 {
		return false
	}
	extremes := 0
	for _, a := range answers {
		if a.Answer == "A" || a.Answer == "D" {
			extremes++
		}
	}
	return float64(extremes)/float64(len(answers)) > extremePolarityRatio
}

// distinctOptions counts how many different options appear.
func distinctOptions(answers []PsychometricAnswer) int {
	seen := make(map[string]struct{}, 4)
	for _, a := range answers {
		seen[a.Answer] = struct{}{}
	}
	return len(seen)
}

// totalTimeSpent sums per-answer time in seconds.
func totalTimeSpent(answers []PsychometricAnswer) float64 {
	total := 0.0
	for _, a := range answers {
		total += a.TimeSpentSeconds
	}
	return total
}

// hasMirroredContradiction is the hook for mirrored-question consistency
// checking. The canonical mirrored pairs are not defined yet, so it always
// reports no contradiction.
// TODO: enable once mirrored question pairs are supplied by the survey team.
func hasMirroredContradiction(answers []PsychometricAnswer) bool {
	_ = answers
	return false
}

// impulsiveInconsistent flags the raw-trait pattern of high impulsivity
// with low consistency.
func impulsiveInconsistent(totals map[string]float64) bool {
	return totals[TraitImpulsivity] > cddImpulsivityThreshold &&
		totals[TraitConsistency] < cddConsistencyFloor
}

// cddPenalty accumulates the consistency-drift penalty from independent
// triggers over the full answer sequence.
func cddPenalty(answers []PsychometricAnswer, totals map[string]float64) float64 {
	penalty := 0.0
	if hasAllSameAnswers(answers) {
		penalty += 0.3
	}
	if hasExtremePolarity(answers) {
		penalty += 0.2
	}
	if impulsiveInconsistent(totals) {
		penalty += 0.4
	}
	if totalTimeSpent(answers) < minTotalTimeSeconds {
		penalty += 0.2
	}
	if hasMirroredContradiction(answers) {
		penalty += 0.3
	}
	return clamp(penalty, 0, maxCDDPenalty)
}

// answerQualityChecks counts how many of the six quality heuristics pass.
func answerQualityChecks(answers []PsychometricAnswer, totals map[string]float64) int {
	passed := 0
	checks := []bool{
		!hasAllSameAnswers(answers),
		!hasExtremePolarity(answers),
		!impulsiveInconsistent(totals),
		totalTimeSpent(answers) >= minTotalTimeSeconds,
		distinctOptions(answers) >= minDistinctOptions,
		!hasMirroredContradiction(answers),
	}
	for _, ok := range checks {
		if ok {
			passed++
		}
	}
	return passed
}

// ScorePsychometric computes the survey sub-score. Fewer than 30 answers is
// tolerated: missing questions contribute zero and the quality checks pull
// the confidence down on their own.
func ScorePsychometric(answers []PsychometricAnswer) PsychometricResult {
	totals := accumulateTraits(answers)

	rawScore := normalizeTraits(totals) / traitSumDenominator * 10
	rawScore = clamp(rawScore, 0, 10)

	penalty := cddPenalty(answers, totals)
	checks := answerQualityChecks(answers, totals)

	confidence := psychometricBaseConfidence + confidencePerCheck*float64(checks)
	if confidence > 1.0 {
		confidence = 1.0
	}

	score := rawScore - penalty
	if score < 0 {
		score = 0
	}

	return PsychometricResult{
		Score:        score,
		Confidence:   confidence,
		TraitScores:  totals,
		ChecksPassed: checks,
		Penalties:    PsychometricPenalties{CDD: penalty},
	}
}
