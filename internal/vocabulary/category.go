// Package vocabulary defines the fixed word-to-axis table used to embed
// identifier tokens into the four-axis coordinate space.
package vocabulary

import "fmt"

// Category is one of the four coordinate axes. The labels carry no meaning
// beyond being four independent counters.
type Category int

const (
	// Structure covers ordering, validation and guard-style tokens.
	Structure Category = iota
	// Creation covers constructive and mutating tokens.
	Creation
	// Power covers destructive and control-transfer tokens.
	Power
	// Wisdom covers observation, retrieval and query tokens.
	Wisdom

	// NumCategories is the dimensionality of the coordinate space.
	NumCategories = 4
)

var categoryNames = [NumCategories]string{"structure", "creation", "power", "wisdom"}

func (c Category) String() string {
	if c < 0 || int(c) >= NumCategories {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory maps a lowercase label back to its Category.
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if s == name {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category: %q", s)
}
