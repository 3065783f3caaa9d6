package vocabulary

import (
	"fmt"
	"sort"
	"strings"
)

// Entry is a single token-to-category mapping.
type Entry struct {
	Token    string
	Category Category
}

// ConflictError reports a token mapped to two different categories within the
// same source. Raised at construction time, never at lookup.
type ConflictError struct {
	Token    string
	Existing Category
	New      Category
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("vocabulary conflict: token %q mapped to both %s and %s",
		e.Token, e.Existing, e.New)
}

// Table is an immutable token-to-category lookup built once at startup.
// It is safe for concurrent readers; there are no writers after construction.
type Table struct {
	entries map[string]Category
}

// NewTable builds a table from entries, lowercasing tokens. A token listed
// twice with the same category is tolerated; with different categories the
// build fails with *ConflictError.
func NewTable(entries []Entry) (*Table, error) {
	m := make(map[string]Category, len(entries))
	for _, e := range entries {
		token := strings.ToLower(strings.TrimSpace(e.Token))
		if token == "" {
			continue
		}
		if existing, ok := m[token]; ok && existing != e.Category {
			return nil, &ConflictError{Token: token, Existing: existing, New: e.Category}
		}
		m[token] = e.Category
	}
	return &Table{entries: m}, nil
}

// Lookup returns the category for a token. Case-insensitive.
func (t *Table) Lookup(token string) (Category, bool) {
	c, ok := t.entries[strings.ToLower(token)]
	return c, ok
}

// Len returns the number of distinct tokens in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns all mappings sorted by token, for listing and diagnostics.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for token, c := range t.entries {
		out = append(out, Entry{Token: token, Category: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Token < out[j].Token })
	return out
}

// Merge returns a new table with overlay entries added on top of t. Overlay
// entries override the base by policy; conflicts *within* the overlay itself
// have already been rejected by NewTable.
func (t *Table) Merge(overlay *Table) *Table {
	m := make(map[string]Category, len(t.entries)+len(overlay.entries))
	for token, c := range t.entries {
		m[token] = c
	}
	for token, c := range overlay.entries {
		m[token] = c
	}
	return &Table{entries: m}
}
