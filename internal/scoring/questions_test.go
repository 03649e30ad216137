package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionTableShape(t *testing.T) {
	questions := Questions()
	require.Len(t, questions, 30)

	knownTraits := map[string]bool{}
	for _, name := range traitNames {
		knownTraits[name] = true
	}

	for i, q := range questions {
		assert.Equal(t, i+1, q.ID)
		assert.NotEmpty(t, q.Text)
		require.Len(t, q.Options, 4, "question %d", q.ID)

		for _, key := range []string{"A", "B", "C", "D"} {
			opt, ok := q.Options[key]
			require.True(t, ok, "question %d missing option %s", q.ID, key)
			assert.NotEmpty(t, opt.Text)
			for trait, points := range opt.Points {
				assert.True(t, knownTraits[trait], "question %d option %s unknown trait %s", q.ID, key, trait)
				assert.GreaterOrEqual(t, points, 0.0)
				assert.LessOrEqual(t, points, 5.0)
			}
		}

		for trait, weight := range q.Weightings {
			assert.True(t, knownTraits[trait], "question %d weighting for unknown trait %s", q.ID, trait)
			assert.Greater(t, weight, 0.0)
		}
	}
}

func TestQuestionByID(t *testing.T) {
	q, ok := questionByID(1)
	require.True(t, ok)
	assert.Equal(t, 1, q.ID)

	q, ok = questionByID(30)
	require.True(t, ok)
	assert.Equal(t, 30, q.ID)

	_, ok = questionByID(0)
	assert.False(t, ok)
	_, ok = questionByID(31)
	assert.False(t, ok)
}
