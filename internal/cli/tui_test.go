package cli

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	panic("unknown key: " + s)
}

func TestExplorerNavigation(t *testing.T) {
	m := newExplorerModel(DefaultConfig())

	next, _ := m.Update(keyMsg("up"))
	m = next.(explorerModel)
	if m.grid != 4 {
		t.Errorf("grid after up = %d, want 4", m.grid)
	}

	next, _ = m.Update(keyMsg("down"))
	m = next.(explorerModel)
	if m.grid != 3 {
		t.Errorf("grid after down = %d, want 3", m.grid)
	}

	next, _ = m.Update(keyMsg("right"))
	m = next.(explorerModel)
	if m.minLength != 5 {
		t.Errorf("minLength after right = %d, want 5", m.minLength)
	}

	next, _ = m.Update(keyMsg("left"))
	m = next.(explorerModel)
	if m.minLength != 4 {
		t.Errorf("minLength after left = %d, want 4", m.minLength)
	}
}

func TestExplorerClampsMinLengthToGrid(t *testing.T) {
	m := newExplorerModel(Config{Grid: 2, MinLength: 4})

	// 2×2 grid caps min length at 4; shrinking further must clamp.
	next, _ := m.Update(keyMsg("right"))
	m = next.(explorerModel)
	if m.minLength != 4 {
		t.Errorf("minLength = %d, want clamped 4", m.minLength)
	}

	next, _ = m.Update(keyMsg("down"))
	m = next.(explorerModel)
	if m.grid != 1 {
		t.Errorf("grid = %d, want 1", m.grid)
	}
	if m.minLength != 1 {
		t.Errorf("minLength = %d, want clamped 1", m.minLength)
	}
}

func TestExplorerEnterStartsCount(t *testing.T) {
	m := newExplorerModel(DefaultConfig())

	next, cmd := m.Update(keyMsg("enter"))
	m = next.(explorerModel)

	if !m.computing {
		t.Error("enter should put the model into computing state")
	}
	if cmd == nil {
		t.Error("enter should return a command")
	}
}

func TestExplorerResultRecorded(t *testing.T) {
	m := newExplorerModel(DefaultConfig())
	m.computing = true

	msg := countDoneMsg{grid: 3, minLength: 4, count: 389112, elapsed: time.Second}
	next, _ := m.Update(msg)
	m = next.(explorerModel)

	if m.computing {
		t.Error("result should end the computing state")
	}
	if len(m.results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(m.results))
	}
	if m.results[0].count != 389112 {
		t.Errorf("count = %d, want 389112", m.results[0].count)
	}

	view := m.View()
	if !strings.Contains(view, "389112") {
		t.Error("view should show the recorded count")
	}
}

func TestExplorerHistoryBounded(t *testing.T) {
	m := newExplorerModel(DefaultConfig())

	for i := 0; i < 12; i++ {
		next, _ := m.Update(countDoneMsg{grid: 3, minLength: 4, count: int64(i)})
		m = next.(explorerModel)
	}

	if len(m.results) != 8 {
		t.Errorf("len(results) = %d, want history capped at 8", len(m.results))
	}
	// Newest result first.
	if m.results[0].count != 11 {
		t.Errorf("results[0].count = %d, want 11", m.results[0].count)
	}
}

func TestCountCmd(t *testing.T) {
	msg := countCmd(3, 4)()

	done, ok := msg.(countDoneMsg)
	if !ok {
		t.Fatalf("msg type = %T, want countDoneMsg", msg)
	}
	if done.err != nil {
		t.Fatalf("unexpected error: %v", done.err)
	}
	if done.count != 389112 {
		t.Errorf("count = %d, want 389112", done.count)
	}
}
