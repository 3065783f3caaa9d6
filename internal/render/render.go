// Package render turns assembled reports into terminal or JSON output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"harmonia/internal/harmony"
	"harmonia/internal/report"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2196F3"))

	pathStyle = lipgloss.NewStyle().
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080"))

	severityStyles = map[harmony.Severity]lipgloss.Style{
		harmony.Harmonious: lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
		harmony.Low:        lipgloss.NewStyle().Foreground(lipgloss.Color("#4db6ac")),
		harmony.Medium:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107")).Bold(true),
		harmony.High:       lipgloss.NewStyle().Foreground(lipgloss.Color("#ff8a65")).Bold(true),
		harmony.Critical:   lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")).Bold(true),
		harmony.Unknown:    lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")).Italic(true),
	}
)

// Badge returns the styled band name for one severity.
func Badge(sev harmony.Severity) string {
	style, ok := severityStyles[sev]
	if !ok {
		style = mutedStyle
	}
	return style.Render(strings.ToUpper(sev.String()))
}

// Text writes a human-readable run report. Harmonious records are summarized,
// not listed; everything Low or worse gets its own line, worst first.
func Text(w io.Writer, run *report.Run) {
	fmt.Fprintln(w, titleStyle.Render("Harmony Report"))
	fmt.Fprintf(w, "%s\n\n", mutedStyle.Render(fmt.Sprintf("%s · %d files · %d functions", run.Root, run.Files, run.Total)))

	for _, rep := range SortedReports(run) {
		if !hasListable(rep) {
			continue
		}
		fmt.Fprintln(w, pathStyle.Render(rep.Path))
		for _, rec := range rep.Records {
			if rec.Severity == harmony.Harmonious {
				continue
			}
			line := fmt.Sprintf("  %-12s %s:%d  %s", Badge(rec.Severity), rep.Path, rec.Line, rec.Name)
			if rec.Severity != harmony.Unknown {
				line += mutedStyle.Render(fmt.Sprintf("  (distance %.3f)", rec.Distance))
			}
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
	}

	writeSummary(w, run.Summary)
}

func hasListable(rep *report.Report) bool {
	return rep.Total > rep.Summary.Harmonious
}

func writeSummary(w io.Writer, s report.Summary) {
	counts := []struct {
		sev harmony.Severity
		n   int
	}{
		{harmony.Critical, s.Critical},
		{harmony.High, s.High},
		{harmony.Medium, s.Medium},
		{harmony.Low, s.Low},
		{harmony.Harmonious, s.Harmonious},
		{harmony.Unknown, s.Unknown},
	}

	var parts []string
	for _, c := range counts {
		if c.n == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d %s", c.n, Badge(c.sev)))
	}
	if len(parts) == 0 {
		parts = append(parts, mutedStyle.Render("nothing analyzed"))
	}
	fmt.Fprintln(w, strings.Join(parts, "  "))
}

// Drift writes a human-readable drift report against a baseline.
func Drift(w io.Writer, d *report.Drift) {
	if d.Empty() {
		fmt.Fprintln(w, mutedStyle.Render("No drift against the baseline."))
		return
	}

	section := func(title string, n int) bool {
		if n == 0 {
			return false
		}
		fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s (%d)", title, n)))
		return true
	}

	if section("New findings", len(d.New)) {
		for _, rec := range d.New {
			fmt.Fprintf(w, "  %-12s %s:%d  %s\n", Badge(rec.Severity), rec.File, rec.Line, rec.Name)
		}
		fmt.Fprintln(w)
	}
	if section("Regressed", len(d.Worse)) {
		for _, ch := range d.Worse {
			fmt.Fprintf(w, "  %s → %s  %s:%d  %s\n",
				Badge(ch.WasSev), Badge(ch.Record.Severity), ch.Record.File, ch.Record.Line, ch.Record.Name)
		}
		fmt.Fprintln(w)
	}
	if section("Improved", len(d.Better)) {
		for _, ch := range d.Better {
			fmt.Fprintf(w, "  %s → %s  %s:%d  %s\n",
				Badge(ch.WasSev), Badge(ch.Record.Severity), ch.Record.File, ch.Record.Line, ch.Record.Name)
		}
		fmt.Fprintln(w)
	}
	if section("Resolved", len(d.Resolved)) {
		for _, rec := range d.Resolved {
			fmt.Fprintf(w, "  %s:%d  %s\n", rec.File, rec.Line, rec.Name)
		}
		fmt.Fprintln(w)
	}
}

// Explain writes the coordinate breakdown of one record so a reader can see
// which axis drives the distance.
func Explain(w io.Writer, rec harmony.Record, axes []string) {
	fmt.Fprintf(w, "%s  %s:%d\n", pathStyle.Render(rec.Name), rec.File, rec.Line)
	fmt.Fprintf(w, "severity: %s", Badge(rec.Severity))
	if rec.Severity != harmony.Unknown {
		fmt.Fprintf(w, "  distance: %.4f", rec.Distance)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-10s %10s %10s %10s\n", "axis", "intent", "execution", "delta")
	for i, axis := range axes {
		delta := rec.Execution[i] - rec.Intent[i]
		fmt.Fprintf(w, "%-10s %10.3f %10.3f %+10.3f\n", axis, rec.Intent[i], rec.Execution[i], delta)
	}
}

// JSON writes the run as indented JSON for machine consumption.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// SortedReports returns the run's reports ordered worst-first, by flagged
// count then path.
func SortedReports(run *report.Run) []*report.Report {
	reps := append([]*report.Report(nil), run.Reports...)
	sort.SliceStable(reps, func(i, j int) bool {
		fi, fj := reps[i].Summary.Flagged(), reps[j].Summary.Flagged()
		if fi != fj {
			return fi > fj
		}
		return reps[i].Path < reps[j].Path
	})
	return reps
}
