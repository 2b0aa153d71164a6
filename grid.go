package gridkey

import "fmt"

// Cell bounds the grid's value type. Every cell value must render to a
// deterministic single-line string; that string is what the widget
// prints for the cell on each redraw.
type Cell interface {
	fmt.Stringer
}

// Callback transforms the cell under the cursor when the user presses
// the select key. It receives the cursor position and the cell's
// current value and returns the value to store back.
type Callback[T Cell] func(x, y int, current T) T

// Grid is a fixed-size rectangular board of T values, indexed by
// (x, y) with (0, 0) at the top left. Dimensions never change after
// construction.
type Grid[T Cell] struct {
	width  int
	height int
	cells  [][]T
}

func newGrid[T Cell](width, height int, initial T) *Grid[T] {
	cells := make([][]T, height)
	for y := range cells {
		cells[y] = make([]T, width)
		for x := range cells[y] {
			cells[y][x] = initial
		}
	}
	return &Grid[T]{width: width, height: height, cells: cells}
}

func (g *Grid[T]) Width() int  { return g.width }
func (g *Grid[T]) Height() int { return g.height }

// At returns the value at (x, y). Coordinates must be in range.
func (g *Grid[T]) At(x, y int) T { return g.cells[y][x] }

// Set stores v at (x, y). Coordinates must be in range.
func (g *Grid[T]) Set(x, y int, v T) { g.cells[y][x] = v }

// Cells returns a row-major copy of the board. Mutating the returned
// slices does not affect the grid.
func (g *Grid[T]) Cells() [][]T {
	out := make([][]T, g.height)
	for y, row := range g.cells {
		out[y] = make([]T, g.width)
		copy(out[y], row)
	}
	return out
}
