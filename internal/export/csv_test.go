package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/Bryan-Binu-2006/Altscore/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessmentsCSV(t *testing.T) {
	completed := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	summaries := []database.AssessmentSummary{
		{
			ID:            "as-1",
			ApplicantID:   "ap-1",
			ApplicantName: "Ravi Kumar",
			FinalScore:    8.9,
			Category:      "EXCELLENT",
			TradScore:     8.49,
			PsychScore:    8.24,
			AIScore:       9.07,
			CompletedAt:   &completed,
		},
		{
			ID:            "as-2",
			ApplicantID:   "ap-2",
			ApplicantName: "Priya Singh",
			FinalScore:    2.9,
			Category:      "HIGH_RISK",
			AIFallback:    true,
		},
	}

	data, err := AssessmentsCSV(summaries)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, "as-1", records[1][0])
	assert.Equal(t, "8.9", records[1][3])
	assert.Equal(t, "EXCELLENT", records[1][4])
	assert.Equal(t, "2025-03-15T10:30:00Z", records[1][9])

	assert.Equal(t, "true", records[2][8])
	assert.Equal(t, "", records[2][9], "pending completion renders empty")
}

func TestAssessmentsCSVEmpty(t *testing.T) {
	data, err := AssessmentsCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, csvHeader, records[0])
}
