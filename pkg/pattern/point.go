package pattern

import "fmt"

// Point is a single dot of the pattern grid.
//
// Rows are indexed 0 (top) to height-1 (bottom), columns 0 (left) to
// width-1 (right). Point is a comparable value type: two points with
// the same coordinates are equal, can be used interchangeably as map
// keys, and never need interning.
type Point struct {
	Row int // 0 = top
	Col int // 0 = left
}

// String formats the point as "(row|col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d|%d)", p.Row, p.Col)
}

// pointPair is an unordered pair of points used as a geometry cache key.
// orderedPair normalizes the two points so that (a,b) and (b,a) share
// one cache entry.
type pointPair struct {
	a, b Point
}

// orderedPair returns the pair with the lexicographically smaller point
// first. Between is symmetric, so both query orders must hit the same
// entry.
func orderedPair(a, b Point) pointPair {
	if b.Row < a.Row || (b.Row == a.Row && b.Col < a.Col) {
		return pointPair{b, a}
	}
	return pointPair{a, b}
}

// gridPoints returns all size×size points of a fresh grid.
func gridPoints(size int) []Point {
	points := make([]Point, 0, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			points = append(points, Point{Row: row, Col: col})
		}
	}
	return points
}
