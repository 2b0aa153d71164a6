package gridkey

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	DefaultCursorGlyph   = "X"
	DefaultBlinkInterval = 500 * time.Millisecond
	DefaultHelp          = "↑↓←→ move   space select   enter confirm"
)

// Config describes a controller. Zero values for CursorGlyph,
// BlinkInterval, and Help select the package defaults.
type Config[T Cell] struct {
	Width    int
	Height   int
	Initial  T
	Callback Callback[T]

	CursorGlyph   string
	BlinkInterval time.Duration
	Help          string

	// ProgramOptions are passed through to the underlying terminal
	// program. Mainly useful for driving a session headless in tests
	// (custom input/output, no renderer).
	ProgramOptions []tea.ProgramOption
}

// ConfigError reports an invalid Config field at construction.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("gridkey: invalid config: %s %s", e.Field, e.Reason)
}

var (
	// ErrSessionActive is returned by Start while a session is running.
	ErrSessionActive = errors.New("gridkey: session already active")
	// ErrSessionDone is returned by Start after a session has finished.
	// A controller runs exactly one session.
	ErrSessionDone = errors.New("gridkey: session already finished")
)

const (
	sessionIdle int32 = iota
	sessionRunning
	sessionDone
)

// Controller owns the board, the cursor, and the interaction
// lifecycle. Construct with New, run with Start, then read the final
// board with Cells or At.
type Controller[T Cell] struct {
	cfg   Config[T]
	grid  *Grid[T]
	state atomic.Int32

	done   chan struct{}
	cursor cursor
	runErr error
}

// New validates cfg and builds a controller with every cell set to
// cfg.Initial and the cursor at (0, 0).
func New[T Cell](cfg Config[T]) (*Controller[T], error) {
	if cfg.Width <= 0 {
		return nil, &ConfigError{Field: "Width", Reason: "must be positive"}
	}
	if cfg.Height <= 0 {
		return nil, &ConfigError{Field: "Height", Reason: "must be positive"}
	}
	if cfg.Callback == nil {
		return nil, &ConfigError{Field: "Callback", Reason: "must not be nil"}
	}
	if cfg.BlinkInterval < 0 {
		return nil, &ConfigError{Field: "BlinkInterval", Reason: "must not be negative"}
	}
	if cfg.CursorGlyph == "" {
		cfg.CursorGlyph = DefaultCursorGlyph
	}
	if cfg.BlinkInterval == 0 {
		cfg.BlinkInterval = DefaultBlinkInterval
	}
	if cfg.Help == "" {
		cfg.Help = DefaultHelp
	}
	return &Controller[T]{
		cfg:  cfg,
		grid: newGrid(cfg.Width, cfg.Height, cfg.Initial),
	}, nil
}

// Start begins the interactive session: puts the terminal into raw
// keypress mode, renders the board under message, and processes keys
// until the user confirms with enter. The returned channel is closed
// exactly once, when the session has fully quiesced (blink stopped,
// terminal restored). Start fails fast if a session is running or has
// already run.
func (c *Controller[T]) Start(message string) (<-chan struct{}, error) {
	if !c.state.CompareAndSwap(sessionIdle, sessionRunning) {
		if c.state.Load() == sessionDone {
			return nil, ErrSessionDone
		}
		return nil, ErrSessionActive
	}

	c.done = make(chan struct{})
	m := newModel(c.cfg, c.grid, message)
	p := tea.NewProgram(m, c.cfg.ProgramOptions...)

	go func() {
		out, err := p.Run()
		if final, ok := out.(model[T]); ok {
			c.cursor = final.cursor
		}
		c.runErr = err
		c.state.Store(sessionDone)
		close(c.done)
	}()

	return c.done, nil
}

// Wait blocks until the session completes and returns any terminal
// I/O error from the run. Must be called after Start.
func (c *Controller[T]) Wait() error {
	<-c.done
	return c.runErr
}

// Cursor returns the cursor position as of the end of the session.
func (c *Controller[T]) Cursor() (x, y int) { return c.cursor.x, c.cursor.y }

// At returns the value at (x, y).
func (c *Controller[T]) At(x, y int) T { return c.grid.At(x, y) }

// Cells returns a row-major copy of the board.
func (c *Controller[T]) Cells() [][]T { return c.grid.Cells() }
