package gridkey

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// blinkMsg is a timer tick. It carries the generation that scheduled
// it so ticks from a cancelled cycle can be dropped.
type blinkMsg struct {
	gen int
}

// blink is the cursor blink state machine. At most one tick cycle is
// live at a time: restart bumps the generation, which invalidates any
// tick still in flight, then schedules a fresh one. Every keystroke
// restarts the cycle in-phase with the cursor visible.
type blink struct {
	visible  bool
	interval time.Duration
	gen      int
}

func newBlink(interval time.Duration) blink {
	return blink{visible: true, interval: interval}
}

func (b blink) tick() tea.Cmd {
	gen := b.gen
	return tea.Tick(b.interval, func(time.Time) tea.Msg { return blinkMsg{gen: gen} })
}

// restart cancels the current cycle, forces the cursor visible, and
// begins a new cycle.
func (b blink) restart() (blink, tea.Cmd) {
	b.gen++
	b.visible = true
	return b, b.tick()
}

// handle processes one tick. Stale ticks return no follow-up command.
func (b blink) handle(msg blinkMsg) (blink, tea.Cmd) {
	if msg.gen != b.gen {
		return b, nil
	}
	b.visible = !b.visible
	return b, b.tick()
}

// stop cancels the current cycle and pins the cursor visible.
func (b blink) stop() blink {
	b.gen++
	b.visible = true
	return b
}
