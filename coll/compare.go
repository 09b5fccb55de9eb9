package bcoll

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Comparator orders two elements: negative when a < b, zero when they are equal,
// positive when a > b.
type Comparator[E any] func(a, b E) int

// NaturalOrder returns the comparator for a type's built-in ordering.
func NaturalOrder[E constraints.Ordered]() Comparator[E] {
	return cmp.Compare[E]
}

// Reverse flips a comparator.
func (c Comparator[E]) Reverse() Comparator[E] {
	return func(a, b E) int { return c(b, a) }
}
