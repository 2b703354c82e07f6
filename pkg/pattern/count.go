package pattern

import (
	"errors"
	"fmt"
	"math"

	"github.com/gridlockdev/gridlock/pkg/memo"
)

var (
	// ErrOverflow is returned by the counting functions when the
	// accumulated pattern count exceeds the int64 range. The count for
	// a given input is exact or absent; there is no saturation.
	ErrOverflow = errors.New("pattern count overflows int64")

	// ErrGridSize is returned when the grid size is negative or larger
	// than MaxGridSize.
	ErrGridSize = errors.New("grid size out of range")
)

// MaxGridSize is the largest supported grid edge length. State keys
// pack the unused set into a 64-bit mask, which caps boxes at 8×8.
// Counts for grids beyond 5×5 overflow int64 long before this limit
// matters.
const MaxGridSize = 8

// Counter counts valid unlock patterns using canonical-state
// deduplication and memoized recursion. It owns two typed memo tables:
// one for line-of-sight geometry keyed by unordered point pairs, one
// for subtree counts keyed by canonical state plus path parameters.
// Both grow monotonically and are shared across calls, so a single
// Counter amortizes work over repeated queries with different minimum
// lengths or grid sizes.
//
// Counter is not safe for concurrent use.
type Counter struct {
	between *memo.Table[pointPair, []Point]
	counts  *memo.Table[countKey, int64]
}

// countKey identifies one memoized subproblem.
type countKey struct {
	state     stateKey
	length    int
	minLength int
}

// NewCounter creates a Counter with empty memo tables.
func NewCounter() *Counter {
	return &Counter{
		between: memo.New[pointPair, []Point](),
		counts:  memo.New[countKey, int64](),
	}
}

// CountValidPatterns returns the number of distinct valid patterns with
// at least minLength points on a gridSize×gridSize grid.
//
// A pattern is a sequence of distinct grid points where each move to a
// non-adjacent point must pass only over already visited points. Every
// prefix of length ≥ minLength counts once.
//
// Edge behavior: minLength ≤ 0 additionally counts the empty pattern;
// minLength > gridSize² yields 0; gridSize == 0 has only the empty
// pattern, so the result is 1 when minLength ≤ 0 and 0 otherwise.
// Grid sizes outside [0, MaxGridSize] return ErrGridSize; counts that
// exceed int64 return ErrOverflow.
func (c *Counter) CountValidPatterns(gridSize, minLength int) (int64, error) {
	if gridSize < 0 || gridSize > MaxGridSize {
		return 0, fmt.Errorf("%w: %d", ErrGridSize, gridSize)
	}
	return c.countCompletions(NewState(gridSize), 0, minLength)
}

// countCompletions returns the number of ways to extend state, already
// length points long, counting every extension (and state itself) whose
// length reaches minLength.
func (c *Counter) countCompletions(state State, length, minLength int) (int64, error) {
	state = state.Simplify()
	key := countKey{state: state.key(), length: length, minLength: minLength}
	if total, ok := c.counts.Get(key); ok {
		return total, nil
	}

	var total int64
	if length >= minLength {
		total = 1
	}
	for candidate := range state.unused {
		if !c.legalSuccessor(state, candidate) {
			continue
		}
		sub, err := c.countCompletions(state.Append(candidate), length+1, minLength)
		if err != nil {
			return 0, err
		}
		if total, err = addChecked(total, sub); err != nil {
			return 0, err
		}
	}

	c.counts.Put(key, total)
	return total, nil
}

// legalSuccessor reports whether candidate may follow the state's last
// point: every grid point strictly between the two must already have
// been visited. Any candidate is legal from the empty pattern.
func (c *Counter) legalSuccessor(state State, candidate Point) bool {
	if !state.started {
		return true
	}
	between := c.between.GetOrCompute(orderedPair(state.last, candidate), func() []Point {
		return Between(state.last, candidate)
	})
	for _, p := range between {
		if state.Contains(p) {
			return false
		}
	}
	return true
}

// CountByLength returns the number of valid patterns of each exact
// length on a gridSize×gridSize grid. Entry i holds the count for
// length i+1. The exact count for length L is derived as the difference
// between the totals for minimum lengths L and L+1.
func (c *Counter) CountByLength(gridSize int) ([]int64, error) {
	if gridSize < 0 || gridSize > MaxGridSize {
		return nil, fmt.Errorf("%w: %d", ErrGridSize, gridSize)
	}
	total := gridSize * gridSize
	counts := make([]int64, total)

	atLeast, err := c.CountValidPatterns(gridSize, 1)
	if err != nil {
		return nil, err
	}
	for length := 1; length <= total; length++ {
		next, err := c.CountValidPatterns(gridSize, length+1)
		if err != nil {
			return nil, err
		}
		counts[length-1] = atLeast - next
		atLeast = next
	}
	return counts, nil
}

// CacheSize returns the number of memoized subtree counts. Useful for
// diagnostics; the count grows with each distinct canonical state the
// search encounters.
func (c *Counter) CacheSize() int { return c.counts.Len() }

// CountValidPatterns counts with a fresh Counter. Use a Counter
// directly to share memoized work across multiple queries.
func CountValidPatterns(gridSize, minLength int) (int64, error) {
	return NewCounter().CountValidPatterns(gridSize, minLength)
}

// addChecked adds two non-negative counts, failing instead of wrapping.
// The guard is against the int64 maximum rather than a sign flip, so a
// wrap can never go unnoticed.
func addChecked(a, b int64) (int64, error) {
	if a > math.MaxInt64-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}
