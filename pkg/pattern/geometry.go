package pattern

// Between returns all grid points lying strictly between a and b on the
// straight line segment connecting them.
//
// Three cases cover every pair:
//   - same column: every intermediate row on that column
//   - same row: every intermediate column on that row
//   - otherwise: with g = gcd(|dRow|, |dCol|), the g-1 evenly spaced
//     points at steps of (dRow/g, dCol/g); none when g == 1, because
//     the segment then crosses no other integer coordinate
//
// Between(a, a) is never queried by the engine; both points of a query
// are always distinct. The result is freshly allocated and safe to
// retain or modify.
func Between(a, b Point) []Point {
	switch {
	case a.Col == b.Col:
		lo, hi := minMax(a.Row, b.Row)
		points := make([]Point, 0, hi-lo-1)
		for row := lo + 1; row < hi; row++ {
			points = append(points, Point{Row: row, Col: a.Col})
		}
		return points

	case a.Row == b.Row:
		lo, hi := minMax(a.Col, b.Col)
		points := make([]Point, 0, hi-lo-1)
		for col := lo + 1; col < hi; col++ {
			points = append(points, Point{Row: a.Row, Col: col})
		}
		return points

	default:
		dRow := b.Row - a.Row
		dCol := b.Col - a.Col
		g := gcd(abs(dRow), abs(dCol))
		if g == 1 {
			return nil
		}
		dRow /= g
		dCol /= g
		points := make([]Point, 0, g-1)
		for row, col := a.Row+dRow, a.Col+dCol; row != b.Row || col != b.Col; row, col = row+dRow, col+dCol {
			points = append(points, Point{Row: row, Col: col})
		}
		return points
	}
}

// gcd returns the greatest common divisor of two non-negative integers.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func minMax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}
