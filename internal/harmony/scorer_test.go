package harmony

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harmonia/internal/coordinate"
	"harmonia/internal/reducer"
	"harmonia/internal/tokens"
	"harmonia/internal/vocabulary"
)

func testScorer(t *testing.T) *Scorer {
	t.Helper()
	embedder := coordinate.NewEmbedder(vocabulary.Default())
	return NewScorer(embedder, DefaultThresholds())
}

func TestScore(t *testing.T) {
	s := testScorer(t)

	t.Run("Critical Dissonance", func(t *testing.T) {
		// get_user that only deletes: intent (0,0,0,1) vs execution
		// (0,0,1,0), distance sqrt(2).
		rec := s.Score(reducer.Function{
			Name:    "get_user",
			NameBag: tokens.NewBag("get", "user"),
			BodyBag: tokens.NewBag("delete"),
		})

		assert.Equal(t, coordinate.Coordinate{0, 0, 0, 1}, rec.Intent)
		assert.Equal(t, coordinate.Coordinate{0, 0, 1, 0}, rec.Execution)
		assert.InDelta(t, math.Sqrt2, rec.Distance, 1e-9)
		assert.Equal(t, Critical, rec.Severity)
	})

	t.Run("Perfect Harmony", func(t *testing.T) {
		rec := s.Score(reducer.Function{
			Name:    "get_user",
			NameBag: tokens.NewBag("get", "user"),
			BodyBag: tokens.NewBag("return", "query"),
		})

		assert.Equal(t, rec.Intent, rec.Execution)
		assert.Zero(t, rec.Distance)
		assert.Equal(t, Harmonious, rec.Severity)
	})

	t.Run("Unknown Intent", func(t *testing.T) {
		rec := s.Score(reducer.Function{
			Name:    "qq_zz",
			NameBag: tokens.NewBag("qq", "zz"),
			BodyBag: tokens.NewBag("return"),
		})

		assert.Equal(t, Unknown, rec.Severity)
		assert.Zero(t, rec.Distance)
		assert.True(t, rec.Intent.IsZero())
		assert.False(t, rec.Execution.IsZero())
	})

	t.Run("Unknown Execution", func(t *testing.T) {
		rec := s.Score(reducer.Function{
			Name:    "get_user",
			NameBag: tokens.NewBag("get", "user"),
			BodyBag: tokens.NewBag(),
		})

		assert.Equal(t, Unknown, rec.Severity)
	})

	t.Run("Idempotent", func(t *testing.T) {
		fn := reducer.Function{
			Name:    "get_user",
			NameBag: tokens.NewBag("get", "user"),
			BodyBag: tokens.NewBag("delete", "set"),
		}
		assert.Equal(t, s.Score(fn), s.Score(fn))
	})
}

func TestClassify(t *testing.T) {
	th := DefaultThresholds()

	cases := []struct {
		raw  float64
		want Severity
	}{
		{0, Harmonious},
		{0.2, Harmonious},
		{0.25, Low},
		{0.49, Low},
		{0.5, Medium},
		{0.79, Medium},
		{0.8, High},
		{1.19, High},
		{1.2, Critical},
		{math.Sqrt2, Critical},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, th.Classify(tc.raw), "raw %v", tc.raw)
	}
}

func TestSeverityJSON(t *testing.T) {
	for _, sev := range []Severity{Harmonious, Low, Medium, High, Critical, Unknown} {
		data, err := sev.MarshalJSON()
		require.NoError(t, err)

		var parsed Severity
		require.NoError(t, parsed.UnmarshalJSON(data))
		assert.Equal(t, sev, parsed)
	}
}
