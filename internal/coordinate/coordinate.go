// Package coordinate implements the four-axis embedding space: turning token
// bags into normalized category distributions and measuring distances between
// them.
package coordinate

import (
	"fmt"
	"math"

	"harmonia/internal/vocabulary"
)

// SumTolerance is the floating-point slack allowed on the sum-to-1 invariant.
const SumTolerance = 1e-9

// Coordinate is a point in the four-axis space. A non-zero coordinate's
// components are non-negative and sum to 1; the all-zero value is an explicit
// "no recognized tokens" sentinel, not a valid distribution. Callers must
// check IsZero before treating a coordinate as normalized.
type Coordinate [vocabulary.NumCategories]float64

// Zero is the out-of-band sentinel returned when no token matched.
var Zero = Coordinate{}

// Anchor is the fixed boundary reference (1,1,1,1): maximum extension along
// every axis. It deliberately violates the sum-to-1 invariant and is used only
// as a constant for distance comparisons.
var Anchor = Coordinate{1, 1, 1, 1}

// IsZero reports whether c is the no-match sentinel.
func (c Coordinate) IsZero() bool {
	return c == Zero
}

// Component returns the value along one axis.
func (c Coordinate) Component(axis vocabulary.Category) float64 {
	return c[axis]
}

// Sum returns the total mass of the coordinate.
func (c Coordinate) Sum() float64 {
	total := 0.0
	for _, v := range c {
		total += v
	}
	return total
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f, %.3f)", c[0], c[1], c[2], c[3])
}

// Distance is the Euclidean distance between two coordinates. It is symmetric,
// zero iff u == v, and satisfies the triangle inequality. The zero sentinel is
// not special-cased here; callers decide how unscorable inputs are treated.
func Distance(u, v Coordinate) float64 {
	sum := 0.0
	for i := range u {
		d := u[i] - v[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
