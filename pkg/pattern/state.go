package pattern

import (
	"fmt"
	"sort"
	"strings"
)

// State is a partially drawn pattern, reduced to the two things future
// legality and counting depend on: the point the pattern currently ends
// on and the set of grid points not yet used. The order in which the
// earlier points were visited is irrelevant and deliberately not kept.
//
// States are derived, never mutated: Append and every geometric
// transform return a fresh State. The zero value is the empty pattern
// on a 0×0 grid; use NewState for real grids.
type State struct {
	last    Point
	started bool
	unused  map[Point]struct{}
}

// NewState returns the empty pattern on a size×size grid: no last
// point, all size² points unused.
func NewState(size int) State {
	unused := make(map[Point]struct{}, size*size)
	for _, p := range gridPoints(size) {
		unused[p] = struct{}{}
	}
	return State{unused: unused}
}

// Started reports whether at least one point has been placed.
func (s State) Started() bool { return s.started }

// Last returns the most recently placed point. The second return value
// is false for the empty pattern.
func (s State) Last() (Point, bool) { return s.last, s.started }

// UnusedCount returns the number of points not yet placed.
func (s State) UnusedCount() int { return len(s.unused) }

// Contains reports whether p has not yet been placed in the pattern.
func (s State) Contains(p Point) bool {
	_, ok := s.unused[p]
	return ok
}

// Unused returns the not-yet-placed points in row-major order.
func (s State) Unused() []Point {
	points := make([]Point, 0, len(s.unused))
	for p := range s.unused {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Row != points[j].Row {
			return points[i].Row < points[j].Row
		}
		return points[i].Col < points[j].Col
	})
	return points
}

// Append returns the state reached by drawing the pattern on to p.
// p must be one of the unused points; the new state has p as its last
// point and one fewer unused point.
func (s State) Append(p Point) State {
	unused := make(map[Point]struct{}, len(s.unused)-1)
	for q := range s.unused {
		if q != p {
			unused[q] = struct{}{}
		}
	}
	return State{last: p, started: true, unused: unused}
}

// box is the bounding rectangle of a state's relevant points.
type box struct {
	minRow, minCol int
	height, width  int
}

// bounds returns the bounding box of the last point and all unused
// points. For the empty pattern only the unused points count; a state
// with no points at all has a zero box.
func (s State) bounds() box {
	first := true
	var minRow, maxRow, minCol, maxCol int
	visit := func(p Point) {
		if first {
			minRow, maxRow, minCol, maxCol = p.Row, p.Row, p.Col, p.Col
			first = false
			return
		}
		if p.Row < minRow {
			minRow = p.Row
		} else if p.Row > maxRow {
			maxRow = p.Row
		}
		if p.Col < minCol {
			minCol = p.Col
		} else if p.Col > maxCol {
			maxCol = p.Col
		}
	}
	if s.started {
		visit(s.last)
	}
	for p := range s.unused {
		visit(p)
	}
	if first {
		return box{}
	}
	return box{
		minRow: minRow,
		minCol: minCol,
		height: maxRow - minRow + 1,
		width:  maxCol - minCol + 1,
	}
}

// mapPoints applies f to the last point and every unused point.
func (s State) mapPoints(f func(Point) Point) State {
	unused := make(map[Point]struct{}, len(s.unused))
	for p := range s.unused {
		unused[f(p)] = struct{}{}
	}
	mapped := State{started: s.started, unused: unused}
	if s.started {
		mapped.last = f(s.last)
	}
	return mapped
}

// shift translates every point by (dRow, dCol).
func (s State) shift(dRow, dCol int) State {
	return s.mapPoints(func(p Point) Point {
		return Point{Row: p.Row + dRow, Col: p.Col + dCol}
	})
}

// transpose swaps row and column coordinates, mirroring the state along
// the main diagonal.
func (s State) transpose() State {
	return s.mapPoints(func(p Point) Point {
		return Point{Row: p.Col, Col: p.Row}
	})
}

// flipVertical mirrors the state top-to-bottom within a box of the
// given height.
func (s State) flipVertical(height int) State {
	return s.mapPoints(func(p Point) Point {
		return Point{Row: height - p.Row - 1, Col: p.Col}
	})
}

// flipHorizontal mirrors the state left-to-right within a box of the
// given width.
func (s State) flipHorizontal(width int) State {
	return s.mapPoints(func(p Point) Point {
		return Point{Row: p.Row, Col: width - p.Col - 1}
	})
}

// dropRow removes row y entirely; every point below shifts up by one.
func (s State) dropRow(y int) State {
	return s.mapPoints(func(p Point) Point {
		if p.Row < y {
			return p
		}
		return Point{Row: p.Row - 1, Col: p.Col}
	})
}

// dropColumn removes column x entirely; every point to the right shifts
// left by one.
func (s State) dropColumn(x int) State {
	return s.mapPoints(func(p Point) Point {
		if p.Col < x {
			return p
		}
		return Point{Row: p.Row, Col: p.Col - 1}
	})
}

// findEmptyRow returns the index of a row within [0, height) that holds
// neither the last point nor any unused point.
func (s State) findEmptyRow(height int) (int, bool) {
	occupied := make([]bool, height)
	occupied[s.last.Row] = true
	for p := range s.unused {
		occupied[p.Row] = true
	}
	for y, o := range occupied {
		if !o {
			return y, true
		}
	}
	return 0, false
}

// findEmptyColumn returns the index of a column within [0, width) that
// holds neither the last point nor any unused point.
func (s State) findEmptyColumn(width int) (int, bool) {
	occupied := make([]bool, width)
	occupied[s.last.Col] = true
	for p := range s.unused {
		occupied[p.Col] = true
	}
	for x, o := range occupied {
		if !o {
			return x, true
		}
	}
	return 0, false
}

// stateKey is a comparable encoding of a state, usable as a memo table
// key. The unused set is packed into a row-major bitmask relative to
// the bounding box, which caps supported boxes at 64 points (8×8); see
// MaxGridSize.
type stateKey struct {
	width, height    int8
	started          bool
	lastRow, lastCol int8
	unused           uint64
}

// key returns the comparable encoding of s. Two states have equal keys
// if and only if they are identical up to translation.
func (s State) key() stateKey {
	b := s.bounds()
	k := stateKey{
		width:   int8(b.width),
		height:  int8(b.height),
		started: s.started,
	}
	if s.started {
		k.lastRow = int8(s.last.Row - b.minRow)
		k.lastCol = int8(s.last.Col - b.minCol)
	}
	for p := range s.unused {
		k.unused |= 1 << uint((p.Row-b.minRow)*b.width + (p.Col - b.minCol))
	}
	return k
}

// String formats the state as "(row|col) -> {unused...}" for debugging.
func (s State) String() string {
	var sb strings.Builder
	if s.started {
		sb.WriteString(s.last.String())
	} else {
		sb.WriteString("(-)")
	}
	sb.WriteString(" -> {")
	for i, p := range s.Unused() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString("}")
	return sb.String()
}

// Ensure State satisfies fmt.Stringer.
var _ fmt.Stringer = State{}
