// Package report assembles scored function records into per-file and per-run
// summaries. Pure aggregation: nothing here recomputes a score.
package report

import (
	"sort"

	"harmonia/internal/harmony"
)

// Summary counts records per severity band. Unknown is its own bucket and is
// never folded into harmonious or critical.
type Summary struct {
	Harmonious int `json:"harmonious"`
	Low        int `json:"low"`
	Medium     int `json:"medium"`
	High       int `json:"high"`
	Critical   int `json:"critical"`
	Unknown    int `json:"unknown"`
}

func (s *Summary) add(sev harmony.Severity) {
	switch sev {
	case harmony.Harmonious:
		s.Harmonious++
	case harmony.Low:
		s.Low++
	case harmony.Medium:
		s.Medium++
	case harmony.High:
		s.High++
	case harmony.Critical:
		s.Critical++
	default:
		s.Unknown++
	}
}

// Flagged returns the number of records at Medium or worse.
func (s *Summary) Flagged() int {
	return s.Medium + s.High + s.Critical
}

// Report is the result for one input unit (file or module).
type Report struct {
	Path    string           `json:"path"`
	Total   int              `json:"total"`
	Summary Summary          `json:"summary"`
	Records []harmony.Record `json:"records"`
}

// Assemble builds a report from records in source order. The output list is
// sorted by descending raw distance with ties broken by original source order
// (stable sort), so Unknown and zero-distance records keep their file order at
// the bottom.
func Assemble(path string, records []harmony.Record) *Report {
	r := &Report{
		Path:    path,
		Total:   len(records),
		Records: append([]harmony.Record(nil), records...),
	}

	for _, rec := range records {
		r.Summary.add(rec.Severity)
	}

	sort.SliceStable(r.Records, func(i, j int) bool {
		return r.Records[i].Distance > r.Records[j].Distance
	})

	return r
}

// Run is the aggregate over all files of one analysis run.
type Run struct {
	Root    string    `json:"root"`
	Files   int       `json:"files"`
	Total   int       `json:"total"`
	Summary Summary   `json:"summary"`
	Reports []*Report `json:"reports"`
}

// NewRun creates an empty run for a root path.
func NewRun(root string) *Run {
	return &Run{Root: root}
}

// Add folds a file report into the run.
func (r *Run) Add(rep *Report) {
	r.Files++
	r.Total += rep.Total
	r.Summary.Harmonious += rep.Summary.Harmonious
	r.Summary.Low += rep.Summary.Low
	r.Summary.Medium += rep.Summary.Medium
	r.Summary.High += rep.Summary.High
	r.Summary.Critical += rep.Summary.Critical
	r.Summary.Unknown += rep.Summary.Unknown
	r.Reports = append(r.Reports, rep)
}

// Records returns every record of the run, file by file.
func (r *Run) Records() []harmony.Record {
	var out []harmony.Record
	for _, rep := range r.Reports {
		out = append(out, rep.Records...)
	}
	return out
}
