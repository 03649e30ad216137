package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/Bryan-Binu-2006/Altscore/internal/database"
)

// csvHeader is the fixed column order of the admin export.
var csvHeader = []string{
	"assessment_id",
	"applicant_id",
	"applicant_name",
	"final_score",
	"category",
	"traditional_score",
	"psychometric_score",
	"ai_score",
	"ai_fallback",
	"completed_at",
}

var bufferPool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

// AssessmentsCSV renders completed assessment summaries as a CSV document.
func AssessmentsCSV(summaries []database.AssessmentSummary) ([]byte, error) {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufferPool.Put(buf)

	w := csv.NewWriter(buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, s := range summaries {
		completedAt := ""
		if s.CompletedAt != nil {
			completedAt = s.CompletedAt.Format(time.RFC3339)
		}

		record := []string{
			s.ID,
			s.ApplicantID,
			s.ApplicantName,
			strconv.FormatFloat(s.FinalScore, 'f', 1, 64),
			s.Category,
			strconv.FormatFloat(s.TradScore, 'f', 2, 64),
			strconv.FormatFloat(s.PsychScore, 'f', 2, 64),
			strconv.FormatFloat(s.AIScore, 'f', 2, 64),
			strconv.FormatBool(s.AIFallback),
			completedAt,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}
