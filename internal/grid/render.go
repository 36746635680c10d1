package grid

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mark places a glyph on the board.
type Mark struct {
	ID     int
	X, Y   int
	Glyph  string
	Active bool
}

const emptyCell = "."

// Render draws the board with north at the top. When several marks share a
// cell the active one wins, otherwise the lowest id.
func (b Bounds) Render(r *lipgloss.Renderer, marks []Mark) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	activeStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	robotStyle := r.NewStyle().Foreground(lipgloss.Color("39"))
	emptyStyle := r.NewStyle().Faint(true)

	sorted := append([]Mark(nil), marks...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	cells := make(map[[2]int]Mark, len(sorted))
	for _, m := range sorted {
		key := [2]int{m.X, m.Y}
		if prev, ok := cells[key]; ok && (prev.Active || !m.Active) {
			continue
		}
		cells[key] = m
	}

	rows := make([]string, 0, b.Size())
	for y := b.Max; y >= b.Min; y-- {
		row := make([]string, 0, b.Size())
		for x := b.Min; x <= b.Max; x++ {
			m, ok := cells[[2]int{x, y}]
			switch {
			case !ok:
				row = append(row, emptyStyle.Render(emptyCell))
			case m.Active:
				row = append(row, activeStyle.Render(m.Glyph))
			default:
				row = append(row, robotStyle.Render(m.Glyph))
			}
		}
		rows = append(rows, strings.Join(row, " "))
	}
	return strings.Join(rows, "\n")
}
