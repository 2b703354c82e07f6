package pattern

import (
	"fmt"

	"github.com/gridlockdev/gridlock/pkg/memo"
)

// CountExhaustive counts valid patterns by plain tree search, with no
// canonicalization and no memoization of subtree counts. The search
// visits every valid pattern once, so the runtime is proportional to
// the result; it is practical for 3×3 grids and serves as an
// independent cross-check for CountValidPatterns.
//
// Input validation and edge behavior match CountValidPatterns.
func CountExhaustive(gridSize, minLength int) (int64, error) {
	if gridSize < 0 || gridSize > MaxGridSize {
		return 0, fmt.Errorf("%w: %d", ErrGridSize, gridSize)
	}
	w := &walker{between: memo.New[pointPair, []Point]()}
	return w.count(NewState(gridSize), 0, minLength)
}

// walker carries the geometry cache through the exhaustive recursion.
type walker struct {
	between *memo.Table[pointPair, []Point]
}

func (w *walker) count(state State, length, minLength int) (int64, error) {
	var total int64
	if length >= minLength {
		total = 1
	}
	for candidate := range state.unused {
		if !w.legal(state, candidate) {
			continue
		}
		sub, err := w.count(state.Append(candidate), length+1, minLength)
		if err != nil {
			return 0, err
		}
		if total, err = addChecked(total, sub); err != nil {
			return 0, err
		}
	}
	return total, nil
}

func (w *walker) legal(state State, candidate Point) bool {
	if !state.started {
		return true
	}
	between := w.between.GetOrCompute(orderedPair(state.last, candidate), func() []Point {
		return Between(state.last, candidate)
	})
	for _, p := range between {
		if state.Contains(p) {
			return false
		}
	}
	return true
}
