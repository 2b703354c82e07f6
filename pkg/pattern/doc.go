// Package pattern counts the valid "connect-the-dots" unlock patterns
// of an N×N grid, the generalization of the classic Android 3×3 lock
// screen problem.
//
// # The problem
//
// A pattern visits distinct grid points in sequence. A move from the
// current point to a non-adjacent one is legal only if every grid point
// lying exactly on the connecting segment has already been visited —
// the stroke may not jump over an untouched dot. Patterns shorter than
// a minimum length do not count.
//
// Naive enumeration is factorial in the number of points and already
// strains at 3×3. The engine here makes larger grids tractable with two
// ideas working together:
//
//   - A partial pattern is reduced to a [State]: its last point plus
//     the set of unused points. The visiting order of earlier points
//     affects neither future legality nor the remaining count.
//   - [State.Simplify] collapses every state that is a translation,
//     rotation, or reflection of another — including states whose free
//     space differs only by an unreachable empty row or column — onto
//     one canonical representative, so the memoization cache in
//     [Counter] stays small enough for grids beyond 3×3.
//
// # Usage
//
// Count with the package-level convenience, or keep a [Counter] to
// share memoized work across queries:
//
//	count, err := pattern.CountValidPatterns(3, 4)
//	// count == 389112, the classic Android lock screen answer
//
//	c := pattern.NewCounter()
//	total, _ := c.CountValidPatterns(4, 4)
//	byLength, _ := c.CountByLength(3)
//
// [CountExhaustive] provides an unmemoized tree search for
// cross-checking small grids, and [VisibilityDOT] renders the grid's
// direct-visibility graph for documentation and debugging.
//
// # Limits and errors
//
// Counts are exact int64 values; [ErrOverflow] is returned instead of a
// wrapped result when a count no longer fits. Grid sizes are capped at
// [MaxGridSize] ([ErrGridSize] beyond it), a bound imposed by the
// bitmask state encoding and irrelevant in practice: counts overflow
// int64 well before the cap.
//
// # Concurrency
//
// The search is single-threaded and purely synchronous. [Counter] is
// not safe for concurrent use; give each goroutine its own Counter or
// synchronize externally. [State] values are immutable and may be
// shared freely.
package pattern
