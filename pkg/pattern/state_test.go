package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	s := NewState(3)

	assert.False(t, s.Started(), "fresh state should have no last point")
	assert.Equal(t, 9, s.UnusedCount())

	_, ok := s.Last()
	assert.False(t, ok)
}

func TestAppend(t *testing.T) {
	s := NewState(3)
	next := s.Append(Point{1, 1})

	last, ok := next.Last()
	require.True(t, ok)
	assert.Equal(t, Point{1, 1}, last)
	assert.Equal(t, 8, next.UnusedCount())
	assert.False(t, next.Contains(Point{1, 1}), "appended point must leave the unused set")

	// The source state is untouched.
	assert.Equal(t, 9, s.UnusedCount())
	assert.True(t, s.Contains(Point{1, 1}))
}

func TestAppendChain(t *testing.T) {
	s := NewState(2)
	for i, p := range []Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}} {
		s = s.Append(p)
		assert.Equal(t, 4-i-1, s.UnusedCount())
	}
	assert.Equal(t, 0, s.UnusedCount())
}

func TestUnusedSorted(t *testing.T) {
	s := NewState(2).Append(Point{0, 1})
	assert.Equal(t, []Point{{0, 0}, {1, 0}, {1, 1}}, s.Unused())
}

func TestBounds(t *testing.T) {
	s := NewState(3)
	b := s.bounds()
	assert.Equal(t, box{minRow: 0, minCol: 0, height: 3, width: 3}, b)
}

func TestBoundsShrinksWithUse(t *testing.T) {
	// Only the top row is still relevant: the box collapses to 1×3.
	s := State{
		last:    Point{0, 0},
		started: true,
		unused:  map[Point]struct{}{{0, 1}: {}, {0, 2}: {}},
	}
	b := s.bounds()
	assert.Equal(t, box{minRow: 0, minCol: 0, height: 1, width: 3}, b)
}

func TestKeyTranslationInvariant(t *testing.T) {
	s := NewState(4).Append(Point{1, 1}).Append(Point{1, 2})
	shifted := s.shift(1, 1)

	assert.Equal(t, s.key(), shifted.key(), "key should be relative to the bounding box")
}

func TestKeyDistinguishesLastPoint(t *testing.T) {
	a := NewState(3).Append(Point{0, 0}).Append(Point{0, 1})
	b := NewState(3).Append(Point{0, 1}).Append(Point{0, 0})

	assert.NotEqual(t, a.key(), b.key(), "same unused set, different last point")
}

func TestTransforms(t *testing.T) {
	s := NewState(3).Append(Point{0, 2})

	last, _ := s.transpose().Last()
	assert.Equal(t, Point{2, 0}, last)

	last, _ = s.flipVertical(3).Last()
	assert.Equal(t, Point{2, 2}, last)

	last, _ = s.flipHorizontal(3).Last()
	assert.Equal(t, Point{0, 0}, last)

	last, _ = s.shift(1, -1).Last()
	assert.Equal(t, Point{1, 1}, last)
}

func TestDropColumn(t *testing.T) {
	// Last at (0,0), only (0,2) unused: column 1 carries nothing.
	s := State{
		last:    Point{0, 0},
		started: true,
		unused:  map[Point]struct{}{{0, 2}: {}},
	}
	dropped := s.dropColumn(1)

	last, _ := dropped.Last()
	assert.Equal(t, Point{0, 0}, last)
	assert.Equal(t, []Point{{0, 1}}, dropped.Unused())
}

func TestFindEmptyColumn(t *testing.T) {
	s := State{
		last:    Point{0, 0},
		started: true,
		unused:  map[Point]struct{}{{0, 2}: {}},
	}
	col, ok := s.findEmptyColumn(3)
	require.True(t, ok)
	assert.Equal(t, 1, col)

	_, ok = s.findEmptyRow(1)
	assert.False(t, ok)
}

func TestStateString(t *testing.T) {
	s := NewState(2).Append(Point{0, 0})
	assert.Equal(t, "(0|0) -> {(0|1), (1|0), (1|1)}", s.String())

	empty := NewState(0)
	assert.Equal(t, "(-) -> {}", empty.String())
}
