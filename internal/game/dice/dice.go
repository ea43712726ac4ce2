// Package dice provides the randomness abstraction behind encounter difficulty.
//
// Every random value in the game flows through a Source so that sessions can be
// replayed from a seed and tests can pin outcomes.
package dice

import "fmt"

// Source is the randomness provider.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// Between returns a uniformly distributed int in the closed range [lo, hi].
//
// Precondition: src must be non-nil and lo <= hi.
// Postcondition: lo <= result <= hi.
func Between(src Source, lo, hi int) (int, error) {
	if lo > hi {
		return 0, fmt.Errorf("dice: empty range [%d, %d]", lo, hi)
	}
	return lo + src.Intn(hi-lo+1), nil
}
