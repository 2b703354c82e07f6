package pattern

// Simplify returns the canonical representative of the state's
// equivalence class under the grid symmetries. Two states simplify to
// the same value exactly when one can be turned into the other by a
// combination of translation, transposition, vertical or horizontal
// flips, or removal of an empty row or column from a thin bounding box.
//
// Canonicalization is what keeps the memoized search sub-factorial:
// without it, translated and mirrored copies of the same partial
// pattern would each occupy their own cache entry.
//
// The canonical form satisfies, in order:
//
//  1. The bounding box of the last point and all unused points has its
//     minimum corner at (0,0).
//  2. The box is square or landscape (height ≤ width).
//  3. The last point lies in the upper half of the box, and in the left
//     half; for square boxes it lies in the upper-right triangle
//     (row ≤ col).
//  4. A box with height ≤ 2 has no empty column, and a box with
//     width ≤ 2 has no empty row. Such a line is unreachable dead space
//     and is dropped, shrinking the coordinate range itself.
//
// Simplify runs as a fixed-point loop: each pass applies the first
// violated rule and re-checks from the top. Every transformation either
// shrinks the bounding box or moves the last point strictly closer to
// the upper-left, so the loop terminates. Simplify is pure and
// idempotent; the empty pattern is its own canonical form.
func (s State) Simplify() State {
	if !s.started {
		return s
	}

	for {
		b := s.bounds()

		if b.minRow != 0 || b.minCol != 0 {
			s = s.shift(-b.minRow, -b.minCol)
			continue
		}
		if b.height > b.width {
			s = s.transpose()
			continue
		}
		if s.last.Row > b.height/2 {
			s = s.flipVertical(b.height)
			continue
		}
		if s.last.Col > b.width/2 {
			s = s.flipHorizontal(b.width)
			continue
		}
		if b.height == b.width && s.last.Row > s.last.Col {
			s = s.transpose()
			continue
		}
		if b.height <= 2 {
			if col, ok := s.findEmptyColumn(b.width); ok {
				s = s.dropColumn(col)
				continue
			}
		}
		if b.width <= 2 {
			if row, ok := s.findEmptyRow(b.height); ok {
				s = s.dropRow(row)
				continue
			}
		}
		return s
	}
}
