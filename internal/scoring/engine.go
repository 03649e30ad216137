package scoring

import "math"

// Engine runs the full scoring pipeline: three sub-models fused into one
// final score with a complete breakdown. It holds no state; every call is
// a pure function of its input and concurrent use needs no locking.
type Engine struct{}

// NewEngine creates a scoring engine.
func NewEngine() *Engine {
	return &Engine{}
}

// fallbackNote annotates responses whose AI sub-score came from the
// degraded fallback rather than a real prediction or the heuristic.
const fallbackNote = "AI prediction unavailable; a conservative default was used for the AI component"

// Score computes the final AltScore for one input record. When an external
// ML prediction is attached it substitutes for the AI heuristic; an error
// sentinel on it degrades to the fixed fallback triple. The final score is
// rounded to one decimal for the output contract.
func (e *Engine) Score(in Input) Result {
	traditional := ScoreTraditional(in.Facts)
	psychometric := ScorePsychometric(in.Answers)

	var ai AIResult
	if in.MLPrediction != nil {
		ai = AIFromPrediction(*in.MLPrediction)
	} else {
		ai = ScoreAI(SignalsFromFacts(in.Facts))
	}

	fused := Fuse(traditional, psychometric, ai)

	result := Result{
		FinalScore:   roundTo1dp(fused.FinalScore),
		Category:     fused.Category,
		Traditional:  traditional,
		Psychometric: psychometric,
		AI:           ai,
		Fusion:       fused.Detail,
	}
	if ai.UsedFallback {
		result.Note = fallbackNote
	}
	return result
}

func roundTo1dp(v float64) float64 {
	return math.Round(v*10) / 10
}
