package gridkey

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	glyphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// View repaints the whole screen: message, help, then the board row by
// row. The cursor cell shows the glyph while the blink state is
// visible, the cell's own value otherwise. It is a pure function of
// the model, so redraws with no intervening state change are
// identical.
func (m model[T]) View() string {
	var b strings.Builder

	b.WriteString(messageStyle.Render(m.message) + "\n")
	b.WriteString(helpStyle.Render(m.help) + "\n\n")

	for y := 0; y < m.grid.height; y++ {
		for x := 0; x < m.grid.width; x++ {
			if x > 0 {
				b.WriteString(" ")
			}
			if x == m.cursor.x && y == m.cursor.y && m.blink.visible {
				b.WriteString(glyphStyle.Render(m.glyph))
			} else {
				b.WriteString(m.grid.At(x, y).String())
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
