package report

import (
	"sort"

	"harmonia/internal/harmony"
)

// Change pairs the baseline and current scores of one function.
type Change struct {
	Record harmony.Record   `json:"record"`
	Was    float64          `json:"was"`
	WasSev harmony.Severity `json:"was_severity"`
}

// Drift is the difference between a baseline run and a current run, keyed by
// file path plus qualified function name. Line numbers are ignored so that
// unrelated edits above a function do not register as churn.
type Drift struct {
	New      []harmony.Record `json:"new"`
	Resolved []harmony.Record `json:"resolved"`
	Worse    []Change         `json:"worse"`
	Better   []Change         `json:"better"`
}

// Empty reports whether the two runs scored identically.
func (d *Drift) Empty() bool {
	return len(d.New) == 0 && len(d.Resolved) == 0 && len(d.Worse) == 0 && len(d.Better) == 0
}

func driftKey(rec harmony.Record) string {
	return rec.File + "\x00" + rec.Name
}

// CompareRuns diffs current records against a baseline. A record counts as new
// or resolved only when it sits at Medium or worse on the side it appears on;
// harmonious functions coming and going is not drift worth reporting.
func CompareRuns(baseline, current []harmony.Record) *Drift {
	base := make(map[string]harmony.Record, len(baseline))
	for _, rec := range baseline {
		base[driftKey(rec)] = rec
	}

	d := &Drift{}
	seen := make(map[string]bool, len(current))

	for _, rec := range current {
		key := driftKey(rec)
		seen[key] = true

		old, ok := base[key]
		if !ok {
			if flagged(rec.Severity) {
				d.New = append(d.New, rec)
			}
			continue
		}

		switch {
		case rec.Severity == old.Severity:
			// no band movement, even if the raw distance wobbled
		case rec.Severity == harmony.Unknown:
			// tokens stopped being recognizable; a visibility change, not drift
		case old.Severity == harmony.Unknown:
			// newly scoreable; report it like a fresh finding
			if flagged(rec.Severity) {
				d.New = append(d.New, rec)
			}
		case rec.Severity > old.Severity:
			d.Worse = append(d.Worse, Change{Record: rec, Was: old.Distance, WasSev: old.Severity})
		default:
			d.Better = append(d.Better, Change{Record: rec, Was: old.Distance, WasSev: old.Severity})
		}
	}

	for key, old := range base {
		if !seen[key] && flagged(old.Severity) {
			d.Resolved = append(d.Resolved, old)
		}
	}

	sort.Slice(d.New, func(i, j int) bool { return d.New[i].Distance > d.New[j].Distance })
	sort.Slice(d.Resolved, func(i, j int) bool {
		return d.Resolved[i].File+d.Resolved[i].Name < d.Resolved[j].File+d.Resolved[j].Name
	})
	sort.Slice(d.Worse, func(i, j int) bool { return d.Worse[i].Record.Distance > d.Worse[j].Record.Distance })
	sort.Slice(d.Better, func(i, j int) bool { return d.Better[i].Record.Distance > d.Better[j].Record.Distance })

	return d
}

func flagged(sev harmony.Severity) bool {
	return sev == harmony.Medium || sev == harmony.High || sev == harmony.Critical
}
