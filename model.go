package gridkey

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// model is the bubbletea model behind a session. It holds a pointer to
// the controller's grid, so cell writes made here are visible to the
// controller once the session completes.
type model[T Cell] struct {
	grid     *Grid[T]
	callback Callback[T]
	cursor   cursor
	blink    blink
	glyph    string
	message  string
	help     string

	// finishing is set when enter has been pressed; messages the host
	// delivers after that point are ignored.
	finishing bool
}

func newModel[T Cell](cfg Config[T], grid *Grid[T], message string) model[T] {
	return model[T]{
		grid:     grid,
		callback: cfg.Callback,
		blink:    newBlink(cfg.BlinkInterval),
		glyph:    cfg.CursorGlyph,
		message:  message,
		help:     cfg.Help,
	}
}

// Init starts the blink cycle with the session itself rather than on
// the first key press, so the cursor blinks while the user is idle.
func (m model[T]) Init() tea.Cmd {
	return m.blink.tick()
}

func (m model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.finishing {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case blinkMsg:
		var cmd tea.Cmd
		m.blink, cmd = m.blink.handle(msg)
		return m, cmd
	}
	return m, nil
}

func (m model[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		// Hard interrupt: abort the whole process, skipping the
		// graceful teardown and the completion signal.
		os.Exit(130)
	case "up":
		m.cursor = m.cursor.move(0, -1, m.grid.width, m.grid.height)
	case "down":
		m.cursor = m.cursor.move(0, 1, m.grid.width, m.grid.height)
	case "left":
		m.cursor = m.cursor.move(-1, 0, m.grid.width, m.grid.height)
	case "right":
		m.cursor = m.cursor.move(1, 0, m.grid.width, m.grid.height)
	case " ":
		v := m.callback(m.cursor.x, m.cursor.y, m.grid.At(m.cursor.x, m.cursor.y))
		m.grid.Set(m.cursor.x, m.cursor.y, v)
	case "enter":
		m.finishing = true
		m.blink = m.blink.stop()
		return m, tea.Quit
	default:
		// No state change, but the blink phase still resets and the
		// redraw still happens.
	}
	var cmd tea.Cmd
	m.blink, cmd = m.blink.restart()
	return m, cmd
}
