// Package harmony scores the dissonance between a function's declared intent
// and its executed operations, and classifies it into severity bands.
package harmony

import "encoding/json"

// Severity is the classification of a raw distance.
type Severity int

const (
	Harmonious Severity = iota
	Low
	Medium
	High
	Critical
	// Unknown marks records where intent or execution had no recognized
	// tokens. It is a first-class outcome, never a score of zero or of
	// maximum distance.
	Unknown
)

var severityNames = map[Severity]string{
	Harmonious: "harmonious",
	Low:        "low",
	Medium:     "medium",
	High:       "high",
	Critical:   "critical",
	Unknown:    "unknown",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalJSON emits the lowercase band name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON parses a lowercase band name.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*s = ParseSeverity(name)
	return nil
}

// ParseSeverity maps a lowercase band name back to its Severity. Unrecognized
// names come back as Unknown.
func ParseSeverity(name string) Severity {
	for sev, n := range severityNames {
		if n == name {
			return sev
		}
	}
	return Unknown
}

// Thresholds are the ascending band boundaries over raw distance. They are
// policy constants, not derived values; config may override any of them.
type Thresholds struct {
	Harmonious float64 `yaml:"harmonious" json:"harmonious"` // below: harmonious
	Medium     float64 `yaml:"medium" json:"medium"`         // low→medium boundary
	High       float64 `yaml:"high" json:"high"`             // medium→high boundary
	Critical   float64 `yaml:"critical" json:"critical"`     // high→critical boundary
}

// DefaultThresholds returns the shipped band boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Harmonious: 0.25,
		Medium:     0.5,
		High:       0.8,
		Critical:   1.2,
	}
}

// Classify maps a raw distance to its severity band.
func (t Thresholds) Classify(raw float64) Severity {
	switch {
	case raw < t.Harmonious:
		return Harmonious
	case raw < t.Medium:
		return Low
	case raw < t.High:
		return Medium
	case raw < t.Critical:
		return High
	default:
		return Critical
	}
}
