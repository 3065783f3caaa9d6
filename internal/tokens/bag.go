// Package tokens provides the token multiset used as the input to coordinate
// embedding, plus identifier splitting.
package tokens

import (
	"fmt"
	"sort"
	"strings"
)

// Bag is a multiset of lowercase word tokens.
type Bag map[string]int

// NewBag builds a bag from a token list, counting duplicates.
func NewBag(tokens ...string) Bag {
	b := make(Bag, len(tokens))
	for _, tok := range tokens {
		b.Add(tok)
	}
	return b
}

// Add records one occurrence of a token. Empty tokens are dropped.
func (b Bag) Add(token string) {
	token = strings.ToLower(token)
	if token == "" {
		return
	}
	b[token]++
}

// Merge adds all occurrences from other into b.
func (b Bag) Merge(other Bag) {
	for token, count := range other {
		b[token] += count
	}
}

// Len returns the total number of occurrences in the bag.
func (b Bag) Len() int {
	total := 0
	for _, count := range b {
		total += count
	}
	return total
}

// IsEmpty reports whether the bag has no occurrences.
func (b Bag) IsEmpty() bool {
	return b.Len() == 0
}

// Key returns a canonical, order-independent encoding of the bag: sorted
// token=count pairs. Two bags with the same contents always share a key, so
// the encoding is usable as a cache address.
func (b Bag) Key() string {
	if len(b) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(b))
	for token, count := range b {
		if count <= 0 {
			continue
		}
		pairs = append(pairs, fmt.Sprintf("%s=%d", token, count))
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ";")
}
