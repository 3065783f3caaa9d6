package harmony

import (
	"harmonia/internal/coordinate"
	"harmonia/internal/reducer"
)

// Record is the scored outcome for one function definition. Immutable once
// produced.
type Record struct {
	Name      string                `json:"name"`
	File      string                `json:"file"`
	Line      int                   `json:"line"`
	Intent    coordinate.Coordinate `json:"intent"`
	Execution coordinate.Coordinate `json:"execution"`
	// Distance is the Euclidean distance between intent and execution. For
	// Unknown records it is 0 and carries no meaning; check Severity first.
	Distance float64  `json:"distance"`
	Severity Severity `json:"severity"`
}

// Scorer turns reduced functions into records using one embedder and one set
// of thresholds. Stateless apart from the embedder's content-addressed cache,
// so one scorer may serve concurrent file analyses.
type Scorer struct {
	embedder   *coordinate.Embedder
	thresholds Thresholds
}

// NewScorer creates a scorer. Pass DefaultThresholds() unless config says
// otherwise.
func NewScorer(embedder *coordinate.Embedder, thresholds Thresholds) *Scorer {
	return &Scorer{embedder: embedder, thresholds: thresholds}
}

// Score embeds the function's name and body bags and classifies the distance
// between them. A zero-vector on either side means "insufficient signal": the
// record gets Severity Unknown rather than a fabricated score, because both a
// zero and a maximal distance would misrepresent "nothing matched".
func (s *Scorer) Score(fn reducer.Function) Record {
	intent := s.embedder.Embed(fn.NameBag)
	execution := s.embedder.Embed(fn.BodyBag)

	rec := Record{
		Name:      fn.Name,
		File:      fn.File,
		Line:      fn.StartLine,
		Intent:    intent,
		Execution: execution,
	}

	if intent.IsZero() || execution.IsZero() {
		rec.Severity = Unknown
		return rec
	}

	rec.Distance = coordinate.Distance(intent, execution)
	rec.Severity = s.thresholds.Classify(rec.Distance)
	return rec
}

// ScoreAll scores every function of a reduced file in source order.
func (s *Scorer) ScoreAll(file *reducer.FileResult) []Record {
	records := make([]Record, 0, len(file.Functions))
	for _, fn := range file.Functions {
		records = append(records, s.Score(fn))
	}
	return records
}
