package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gridlockdev/gridlock/pkg/pattern"
)

// Explorer styles
var (
	tuiSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	tuiNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	tuiDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// tuiCommand creates the tui command, an interactive pattern count
// explorer.
func (c *CLI) tuiCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Explore pattern counts interactively",
		Long: `Open an interactive explorer for pattern counts.

Adjust the grid size and minimum pattern length with the arrow keys
and press enter to count. Results accumulate in a small history so
parameter sets can be compared side by side.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := newExplorerModel(c.Config)
			p := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}
	return cmd
}

// =============================================================================
// ExplorerModel - Interactive count explorer
// =============================================================================

// explorerResult is one completed count shown in the history.
type explorerResult struct {
	grid      int
	minLength int
	count     int64
	elapsed   time.Duration
	err       error
}

// countDoneMsg carries a finished count back into the update loop.
type countDoneMsg explorerResult

// tickMsg drives the spinner animation while a count is running.
type tickMsg time.Time

// explorerModel is the bubbletea model for the count explorer.
type explorerModel struct {
	grid      int
	minLength int
	computing bool
	frame     int
	results   []explorerResult
}

var explorerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func newExplorerModel(cfg Config) explorerModel {
	return explorerModel{
		grid:      cfg.Grid,
		minLength: cfg.MinLength,
	}
}

func (m explorerModel) Init() tea.Cmd {
	return nil
}

func (m explorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.computing {
			// Only allow quitting while a count runs.
			switch msg.String() {
			case "q", "ctrl+c", "esc":
				return m, tea.Quit
			}
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.grid < pattern.MaxGridSize {
				m.grid++
			}
		case "down", "j":
			if m.grid > 1 {
				m.grid--
				if max := m.grid * m.grid; m.minLength > max {
					m.minLength = max
				}
			}
		case "right", "l":
			if m.minLength < m.grid*m.grid {
				m.minLength++
			}
		case "left", "h":
			if m.minLength > 1 {
				m.minLength--
			}
		case "enter":
			m.computing = true
			return m, tea.Batch(countCmd(m.grid, m.minLength), explorerTick())
		}
	case countDoneMsg:
		m.computing = false
		m.results = append([]explorerResult{explorerResult(msg)}, m.results...)
		if len(m.results) > 8 {
			m.results = m.results[:8]
		}
	case tickMsg:
		if m.computing {
			m.frame++
			return m, explorerTick()
		}
	}
	return m, nil
}

func (m explorerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Pattern Count Explorer"))
	b.WriteString("\n")
	b.WriteString(tuiDimStyle.Render("↑/↓ grid  ←/→ min length  ⏎ count  q quit"))
	b.WriteString("\n\n")

	selection := fmt.Sprintf("  grid %d×%d   min length %d", m.grid, m.grid, m.minLength)
	b.WriteString(tuiSelectedStyle.Render(selection))
	b.WriteString("\n\n")

	if m.computing {
		frame := explorerFrames[m.frame%len(explorerFrames)]
		b.WriteString("  " + styleIconSpinner.Render(frame) + " " + tuiDimStyle.Render("counting..."))
		b.WriteString("\n\n")
	}

	for i, r := range m.results {
		var line string
		if r.err != nil {
			line = fmt.Sprintf("  %d×%d m=%d  %s", r.grid, r.grid, r.minLength, r.err)
			b.WriteString(StyleWarning.Render(line))
		} else {
			line = fmt.Sprintf("  %d×%d m=%-2d  %12d  (%s)",
				r.grid, r.grid, r.minLength, r.count, r.elapsed.Round(time.Millisecond))
			if i == 0 {
				b.WriteString(tuiNormalStyle.Render(line))
			} else {
				b.WriteString(tuiDimStyle.Render(line))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// countCmd runs a count off the update loop and reports the result.
func countCmd(grid, minLength int) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		count, err := pattern.CountValidPatterns(grid, minLength)
		return countDoneMsg{
			grid:      grid,
			minLength: minLength,
			count:     count,
			elapsed:   time.Since(start),
			err:       err,
		}
	}
}

func explorerTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
