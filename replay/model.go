// Package replay steps through recorded frames in the terminal.
package replay

import (
	"fmt"
	"strings"

	"github.com/brensch/codebomber/game"
	"github.com/brensch/codebomber/store"
	tea "github.com/charmbracelet/bubbletea"
)

type Model struct {
	frames []store.FrameRow
	pos    int
}

func New(frames []store.FrameRow) Model {
	return Model{frames: frames}
}

// Pos is the index of the frame on screen.
func (m Model) Pos() int { return m.pos }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	}
	if len(m.frames) == 0 {
		return m, nil
	}
	switch key.String() {
	case "right", "l", " ":
		m.pos = min(m.pos+1, len(m.frames)-1)
	case "left", "h":
		m.pos = max(m.pos-1, 0)
	case "home", "g":
		m.pos = 0
	case "end", "G":
		m.pos = len(m.frames) - 1
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.frames) == 0 {
		return "No frames recorded.\n\nPress q to quit.\n"
	}
	f := m.frames[m.pos]

	var sb strings.Builder
	fmt.Fprintf(&sb, "Session %s  tick %d  (%d/%d)\n\n", f.SessionID, f.Tick, m.pos+1, len(m.frames))

	b, err := f.Decode()
	if err != nil {
		fmt.Fprintf(&sb, "Undecodable board: %v\n", err)
	} else {
		sb.WriteString(b.BoardAsString())
		sb.WriteString("\n")
		status := "alive"
		if b.IsHeroDead() {
			status = "dead"
		}
		fmt.Fprintf(&sb, "Hero:     %s (%s)\n", b.Hero(), status)
		fmt.Fprintf(&sb, "Bombs:    %s\n", listPoints(b.Bombs()))
		fmt.Fprintf(&sb, "Expected: %s\n", listPoints(b.FutureBlasts()))
	}
	fmt.Fprintf(&sb, "Command:  %s\n", f.Command)

	sb.WriteString("\n←/→ step, home/end jump, q quit.\n")
	return sb.String()
}

func listPoints(points []game.Point) string {
	if len(points) == 0 {
		return "-"
	}
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
